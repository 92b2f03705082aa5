package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	"github.com/yaklabco/mdspan/internal/ui/pretty"
	"github.com/yaklabco/mdspan/pkg/runner"
)

// ReferenceReporter renders each source file with glamour, a full
// CommonMark terminal renderer, for side-by-side comparison with the
// text preview.
type ReferenceReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewReferenceReporter creates a new reference reporter.
func NewReferenceReporter(opts Options) *ReferenceReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &ReferenceReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *ReferenceReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	glamourStyle := styles.NoTTYStyle
	if r.styles.ColorEnabled() {
		glamourStyle = styles.DarkStyle
	}
	term, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyle),
		glamour.WithWordWrap(r.opts.width()),
	)
	if err != nil {
		return 0, fmt.Errorf("create reference renderer: %w", err)
	}

	reported := 0
	for _, file := range result.Files {
		path := r.opts.displayPath(file.Path)
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		out, err := term.Render(string(file.Source))
		if err != nil {
			return reported, fmt.Errorf("render %s: %w", path, err)
		}
		fmt.Fprintln(r.bw, r.styles.FilePath.Render(path))
		fmt.Fprint(r.bw, out)
		reported++
	}

	writeSummary(r.opts, result)
	return reported, nil
}
