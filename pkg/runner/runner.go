package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/yaklabco/mdspan/internal/logging"
	"github.com/yaklabco/mdspan/pkg/fsutil"
	"github.com/yaklabco/mdspan/pkg/render"
	"github.com/yaklabco/mdspan/pkg/style"
)

// ErrNoSheet is returned when Options.Sheet is nil.
var ErrNoSheet = errors.New("runner: no style sheet")

// Runner renders markdown files with a bounded pool of workers.
type Runner struct {
	// ReadFile reads a discovered file; nil means fsutil.ReadFile.
	ReadFile func(ctx context.Context, path string) ([]byte, error)
}

// New returns a Runner that reads from the file system.
func New() *Runner {
	return &Runner{ReadFile: fsutil.ReadFile}
}

// Run discovers and renders files. Outcomes are returned in the sorted
// discovery order regardless of which worker finished first. A file that
// cannot be read is recorded in its outcome; Run itself only fails on
// discovery errors or cancellation.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Sheet == nil {
		return nil, ErrNoSheet
	}

	start := time.Now()
	logger := logging.FromContext(ctx)

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("discovered files", logging.FieldFiles, len(files))

	result := &Result{Stats: Stats{FilesDiscovered: len(files)}}
	if len(files) == 0 {
		result.Stats.Duration = time.Since(start)
		return result, nil
	}

	jobs := workerCount(opts.Jobs, len(files))

	workCh := make(chan string)
	outCh := make(chan FileOutcome, len(files))

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range workCh {
				outCh <- r.renderFile(ctx, path, opts.Sheet, opts.Render)
			}
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	byPath := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		byPath[outcome.Path] = outcome
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("run cancelled: %w", err)
	}

	result.Files = make([]FileOutcome, 0, len(files))
	for _, path := range files {
		outcome, ok := byPath[path]
		if !ok {
			continue
		}
		result.Stats.accumulate(&outcome)
		result.Files = append(result.Files, outcome)
		if outcome.Error != nil {
			logger.Debug("render failed", logging.FieldPath, path, logging.FieldError, outcome.Error)
		}
	}
	result.Stats.Duration = time.Since(start)

	logger.Debug("render finished",
		logging.FieldFiles, result.Stats.FilesRendered,
		logging.FieldFailed, result.Stats.FilesErrored,
		logging.FieldRanges, result.Stats.Ranges,
		logging.FieldDuration, result.Stats.Duration)

	return result, nil
}

func (r *Runner) renderFile(ctx context.Context, path string, sheet *style.StyleSheet, opts []render.Option) FileOutcome {
	read := r.ReadFile
	if read == nil {
		read = fsutil.ReadFile
	}
	content, err := read(ctx, path)
	if err != nil {
		return FileOutcome{Path: path, Error: err}
	}
	return RenderSource(path, content, sheet, opts...)
}

// RenderSource renders in-memory markdown as if it were a file called name.
func RenderSource(name string, content []byte, sheet *style.StyleSheet, opts ...render.Option) FileOutcome {
	start := time.Now()
	buf := render.Render(string(content), sheet, opts...)
	return FileOutcome{
		Path:     name,
		Source:   content,
		Buffer:   buf,
		Duration: time.Since(start),
	}
}

// RenderReader reads all of rd and renders it; used for standard input.
func RenderReader(name string, rd io.Reader, sheet *style.StyleSheet, opts ...render.Option) (*Result, error) {
	if sheet == nil {
		return nil, ErrNoSheet
	}
	content, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	outcome := RenderSource(name, content, sheet, opts...)
	result := &Result{Files: []FileOutcome{outcome}, Stats: Stats{FilesDiscovered: 1, Duration: outcome.Duration}}
	result.Stats.accumulate(&outcome)
	return result, nil
}

// workerCount bounds the pool by the number of files; jobs <= 0 means
// GOMAXPROCS.
func workerCount(jobs, files int) int {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return max(min(jobs, files), 1)
}
