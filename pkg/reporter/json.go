package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/yaklabco/mdspan/pkg/richtext"
	"github.com/yaklabco/mdspan/pkg/runner"
	"github.com/yaklabco/mdspan/pkg/style"
)

// SchemaVersion is the version of the JSON output.
const SchemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string      `json:"version"`
	Files   []JSONFile  `json:"files"`
	Summary JSONSummary `json:"summary"`
}

// JSONFile is the render of a single file. Offsets are rune offsets into Text.
type JSONFile struct {
	Path   string      `json:"path"`
	Text   string      `json:"text"`
	Ranges []JSONRange `json:"ranges"`
	Links  []JSONLink  `json:"links"`
	Error  string      `json:"error,omitempty"`
}

// JSONRange is one styled range.
type JSONRange struct {
	Start      int            `json:"start"`
	End        int            `json:"end"`
	Kind       string         `json:"kind"`
	Level      int            `json:"level,omitempty"`
	Payload    string         `json:"payload,omitempty"`
	Language   string         `json:"language,omitempty"`
	Attributes JSONAttributes `json:"attributes"`
}

// JSONAttributes are the effective attributes of a range. Colors are "#rrggbb".
type JSONAttributes struct {
	Foreground    string  `json:"foreground,omitempty"`
	Size          float64 `json:"size"`
	Bold          bool    `json:"bold,omitempty"`
	Italic        bool    `json:"italic,omitempty"`
	Underline     bool    `json:"underline,omitempty"`
	Typeface      string  `json:"typeface"`
	SpacingBefore int     `json:"spacingBefore,omitempty"`
	SpacingAfter  int     `json:"spacingAfter,omitempty"`
	LeadingMargin int     `json:"leadingMargin,omitempty"`
	StripeWidth   int     `json:"stripeWidth,omitempty"`
	StripeColor   string  `json:"stripeColor,omitempty"`
}

// JSONLink is a live link or image annotation.
type JSONLink struct {
	Kind  string `json:"kind"`
	URI   string `json:"uri"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesRendered int `json:"filesRendered"`
	FilesErrored  int `json:"filesErrored"`
	Runes         int `json:"runes"`
	Ranges        int `json:"ranges"`
	Links         int `json:"links"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := BuildJSON(result, r.opts)
	if err := EncodeJSON(r.bw, output, r.opts.Compact); err != nil {
		return 0, err
	}

	writeSummary(r.opts, result)
	return output.Summary.FilesRendered, nil
}

// EncodeJSON writes v as JSON, indented unless compact.
func EncodeJSON(w io.Writer, v any, compact bool) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if !compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

// BuildJSON converts a run result into the JSON output structure.
func BuildJSON(result *runner.Result, opts Options) *JSONOutput {
	output := &JSONOutput{
		Version: SchemaVersion,
		Files:   make([]JSONFile, 0),
	}
	if result == nil {
		return output
	}

	output.Files = make([]JSONFile, 0, len(result.Files))
	for _, file := range result.Files {
		jsonFile := ExportFile(file)
		jsonFile.Path = opts.displayPath(file.Path)
		output.Files = append(output.Files, jsonFile)

		if file.Error != nil {
			output.Summary.FilesErrored++
			continue
		}
		output.Summary.FilesRendered++
		output.Summary.Runes += file.Buffer.Len()
		output.Summary.Ranges += len(jsonFile.Ranges)
		output.Summary.Links += len(jsonFile.Links)
	}

	return output
}

// ExportFile converts one outcome into its JSON form.
func ExportFile(file runner.FileOutcome) JSONFile {
	out := JSONFile{
		Path:   file.Path,
		Ranges: make([]JSONRange, 0),
		Links:  make([]JSONLink, 0),
	}
	if file.Error != nil {
		out.Error = file.Error.Error()
		return out
	}
	if file.Buffer == nil {
		return out
	}

	out.Text = file.Buffer.Text()
	for _, r := range file.Buffer.Ranges() {
		out.Ranges = append(out.Ranges, exportRange(r))
	}
	for _, link := range file.Buffer.Links() {
		out.Links = append(out.Links, JSONLink{
			Kind:  link.Kind.String(),
			URI:   link.URI,
			Start: link.Start,
			End:   link.End,
		})
	}
	return out
}

func exportRange(r richtext.StyledRange) JSONRange {
	level := 0
	if r.Kind == style.KindHeading || r.Kind == style.KindListItem || r.Kind == style.KindListPrefix {
		level = r.Level
	}
	a := r.Attrs
	return JSONRange{
		Start:    r.Start,
		End:      r.End,
		Kind:     r.Kind.String(),
		Level:    level,
		Payload:  r.Payload,
		Language: r.Language,
		Attributes: JSONAttributes{
			Foreground:    style.Hex(a.Foreground),
			Size:          a.Size,
			Bold:          a.Bold,
			Italic:        a.Italic,
			Underline:     a.Underline,
			Typeface:      a.Typeface.String(),
			SpacingBefore: a.Layout.SpacingBefore,
			SpacingAfter:  a.Layout.SpacingAfter,
			LeadingMargin: a.Layout.LeadingMargin,
			StripeWidth:   a.Layout.StripeWidth,
			StripeColor:   style.Hex(a.Layout.StripeColor),
		},
	}
}
