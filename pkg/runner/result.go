package runner

import (
	"time"

	"github.com/yaklabco/mdspan/pkg/richtext"
)

// FileOutcome is the render of one file.
type FileOutcome struct {
	// Path is the absolute path, or the name given to RenderSource.
	Path string

	// Source is the markdown that was read.
	Source []byte

	// Buffer is nil when Error is set.
	Buffer *richtext.Buffer

	// Duration is the time spent parsing and building spans.
	Duration time.Duration

	Error error
}

// Stats aggregates a run.
type Stats struct {
	FilesDiscovered int
	FilesRendered   int
	FilesErrored    int
	Runes           int
	Ranges          int
	Links           int
	Duration        time.Duration
}

// Result holds outcomes in discovery order.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

func (s *Stats) accumulate(outcome *FileOutcome) {
	if outcome.Error != nil {
		s.FilesErrored++
		return
	}
	s.FilesRendered++
	if outcome.Buffer != nil {
		s.Runes += outcome.Buffer.Len()
		s.Ranges += len(outcome.Buffer.Ranges())
		s.Links += len(outcome.Buffer.Links())
	}
}

// Failed reports whether any file could not be rendered.
func (r *Result) Failed() bool {
	return r.Stats.FilesErrored > 0
}
