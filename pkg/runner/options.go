// Package runner renders many markdown files concurrently.
package runner

import (
	"github.com/yaklabco/mdspan/pkg/render"
	"github.com/yaklabco/mdspan/pkg/style"
)

// Options controls a batch render.
type Options struct {
	// Paths are files or directories; empty means the working directory.
	Paths []string

	// WorkingDir resolves relative Paths; empty means the process directory.
	WorkingDir string

	// Extensions are the lower-case markdown extensions, with the dot.
	// Empty means DefaultExtensions.
	Extensions []string

	// Ignore are glob patterns, relative to WorkingDir, for files and
	// directories to skip. "**" matches across directories.
	Ignore []string

	// FollowSymlinks descends into symlinked directories.
	FollowSymlinks bool

	// Jobs bounds the number of workers; 0 or less means GOMAXPROCS.
	Jobs int

	// Sheet styles every file. It is shared read-only between workers.
	Sheet *style.StyleSheet

	// Render holds options passed to every render.
	Render []render.Option
}

// DefaultExtensions returns the markdown file extensions discovered by default.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) paths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
