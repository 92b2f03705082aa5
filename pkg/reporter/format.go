package reporter

import "fmt"

// Format represents an output format.
type Format string

// Output formats supported by the reporter.
const (
	FormatText      Format = "text"
	FormatRanges    Format = "ranges"
	FormatJSON      Format = "json"
	FormatReference Format = "reference"
)

// ParseFormat parses a format string, returning an error for unknown formats.
func ParseFormat(formatStr string) (Format, error) {
	switch formatStr {
	case "text", "":
		return FormatText, nil
	case "ranges":
		return FormatRanges, nil
	case "json":
		return FormatJSON, nil
	case "reference":
		return FormatReference, nil
	default:
		return "", fmt.Errorf("unknown format %q; valid formats: text, ranges, json, reference", formatStr)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatRanges, FormatJSON, FormatReference:
		return true
	default:
		return false
	}
}
