package pretty

import (
	"fmt"
	"strings"
	"time"

	"github.com/yaklabco/mdspan/pkg/runner"
)

const (
	wordFile  = "file"
	wordFiles = "files"
)

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 files rendered, 120 ranges, 4 links, 1 failed".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesDiscovered == 0 {
		return s.Dim.Render("No markdown files found") + "\n"
	}

	parts := []string{
		s.Success.Render(fmt.Sprintf("%d %s rendered", stats.FilesRendered, plural(stats.FilesRendered, wordFile, wordFiles))),
		fmt.Sprintf("%d %s", stats.Ranges, plural(stats.Ranges, "range", "ranges")),
		fmt.Sprintf("%d %s", stats.Links, plural(stats.Links, "link", "links")),
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d failed", stats.FilesErrored)))
	}

	return strings.Join(parts, ", ") + s.Dim.Render(fmt.Sprintf(" (%s)", stats.Duration.Round(time.Millisecond))) + "\n"
}

// FormatFileHeader formats the heading printed above a file's preview.
func (s *Styles) FormatFileHeader(path string, runes int) string {
	return s.FilePath.Render(path) + s.Dim.Render(fmt.Sprintf(" (%d %s)", runes, plural(runes, "char", "chars")))
}
