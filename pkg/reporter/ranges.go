package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/mdspan/internal/ui/pretty"
	"github.com/yaklabco/mdspan/pkg/runner"
)

// RangesReporter writes the styled ranges of each buffer as a table.
type RangesReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewRangesReporter creates a new ranges reporter.
func NewRangesReporter(opts Options) *RangesReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &RangesReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *RangesReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	reported := 0
	for idx, file := range result.Files {
		path := r.opts.displayPath(file.Path)
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if idx > 0 {
			fmt.Fprintln(r.bw)
		}
		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, file.Buffer.Len()))
		fmt.Fprint(r.bw, r.styles.FormatRanges(file.Buffer))
		reported++
	}

	writeSummary(r.opts, result)
	return reported, nil
}
