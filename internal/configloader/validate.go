package configloader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/mdspan/pkg/config"
	"github.com/yaklabco/mdspan/pkg/style"
)

// ValidationError describes one invalid configuration value.
type ValidationError struct {
	// Field is the YAML path or environment variable, e.g. "style.base_size".
	Field string
	Value any
	// Message describes the problem.
	Message string
	// FilePath is the config file the value came from, if known.
	FilePath string
}

// Error implements error.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, 3)
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult holds all findings.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// Valid reports whether there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// AllMessages returns errors then warnings, prefixed by their class.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// styleKeys maps style.Options field names to YAML keys.
//
//nolint:gochecknoglobals // read-only lookup table
var styleKeys = map[string]string{
	"BaseColor":              "base_color",
	"BaseSize":               "base_size",
	"CodeColor":              "code_color",
	"QuoteColor":             "quote_color",
	"ListPrefixColor":        "list_prefix_color",
	"LinkColor":              "link_color",
	"HeadingScale":           "heading_scale",
	"ParagraphSpacingBefore": "paragraph_spacing_before",
	"ParagraphSpacingAfter":  "paragraph_spacing_after",
	"QuoteStripeWidth":       "quote_stripe_width",
	"QuoteGapWidth":          "quote_gap_width",
	"QuoteSpacingBefore":     "quote_spacing_before",
	"QuoteSpacingAfter":      "quote_spacing_after",
	"ListPrefixGapWidth":     "list_prefix_gap_width",
	"ListIndentWidth":        "list_indent_width",
	"ListSpacingBefore":      "list_spacing_before",
	"ListSpacingAfter":       "list_spacing_after",
	"CodeBlockIndentation":   "code_block_indentation",
}

// Validate checks cfg. Style values are checked by building the style
// options they describe.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Color != "" && !cfg.Color.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field: "color", Value: cfg.Color,
			Message: fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", cfg.Color),
		})
	}
	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field: "format", Value: cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, ranges, json, reference", cfg.Format),
		})
	}
	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field: "jobs", Value: cfg.Jobs, Message: "jobs must be >= 0 (0 means auto)",
		})
	}
	for i, pattern := range cfg.Ignore {
		if _, err := filepath.Match(pattern, ""); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field: fmt.Sprintf("ignore[%d]", i), Value: pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
	}

	validateStyle(cfg.Style, result)
	return result
}

func validateStyle(sc config.StyleConfig, result *ValidationResult) {
	opts, err := sc.ToStyleOptions()
	if err == nil {
		err = opts.Validate()
	}
	for _, optErr := range optionErrors(err) {
		key := optErr.Option
		if k, ok := styleKeys[key]; ok {
			key = k
		}
		result.Errors = append(result.Errors, ValidationError{
			Field: "style." + key, Value: optErr.Value, Message: optErr.Reason,
		})
	}
	if err != nil {
		return
	}

	if style.Hex(opts.LinkColor) == style.Hex(opts.BaseColor) {
		result.Warnings = append(result.Warnings, ValidationError{
			Field: "style.link_color", Value: style.Hex(opts.LinkColor),
			Message: "links have the same color as body text",
		})
	}
}

// optionErrors flattens wrapped and joined errors into their
// *style.OptionError parts.
func optionErrors(err error) []*style.OptionError {
	switch e := err.(type) {
	case nil:
		return nil
	case *style.OptionError:
		return []*style.OptionError{e}
	case interface{ Unwrap() []error }:
		var out []*style.OptionError
		for _, inner := range e.Unwrap() {
			out = append(out, optionErrors(inner)...)
		}
		return out
	default:
		return optionErrors(errors.Unwrap(err))
	}
}

// ValidateWithFile is Validate with filePath recorded on every finding.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}
	return result
}
