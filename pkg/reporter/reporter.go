// Package reporter writes rendered buffers in the supported output formats.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/mdspan/internal/ui/pretty"
	"github.com/yaklabco/mdspan/pkg/runner"
)

// Reporter formats and writes render results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of files reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}
	if opts.ErrorWriter == nil {
		opts.ErrorWriter = DefaultOptions().ErrorWriter
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatText:
		return NewTextReporter(opts), nil
	case FormatRanges:
		return NewRangesReporter(opts), nil
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatReference:
		return NewReferenceReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// writeSummary writes the one-line run summary to the error writer.
func writeSummary(opts Options, result *runner.Result) {
	if !opts.ShowSummary || opts.ErrorWriter == nil {
		return
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.ErrorWriter))
	fmt.Fprint(opts.ErrorWriter, styles.FormatSummaryOneLine(result.Stats))
}
