// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	Error   lipgloss.Style
	Success lipgloss.Style

	FilePath lipgloss.Style
	Kind     lipgloss.Style
	Payload  lipgloss.Style
	Offset   lipgloss.Style

	TableHeader lipgloss.Style
	TableBorder lipgloss.Style

	Dim  lipgloss.Style
	Bold lipgloss.Style

	renderer *lipgloss.Renderer
	color    bool
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	renderer := lipgloss.NewRenderer(os.Stdout)
	if !colorEnabled {
		renderer.SetColorProfile(termenv.Ascii)
		plain := renderer.NewStyle()
		return &Styles{
			Error:       plain,
			Success:     plain,
			FilePath:    plain,
			Kind:        plain,
			Payload:     plain,
			Offset:      plain,
			TableHeader: plain,
			TableBorder: plain,
			Dim:         plain,
			Bold:        plain,
			renderer:    renderer,
		}
	}

	// Color was asked for; a pipe still gets ANSI256 output.
	if renderer.ColorProfile() == termenv.Ascii {
		renderer.SetColorProfile(termenv.ANSI256)
	}

	return &Styles{
		Error:   renderer.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Success: renderer.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),

		FilePath: renderer.NewStyle().Bold(true),
		Kind:     renderer.NewStyle().Foreground(lipgloss.Color("12")),
		Payload:  renderer.NewStyle().Foreground(lipgloss.Color("10")).Italic(true),
		Offset:   renderer.NewStyle().Foreground(lipgloss.Color("8")),

		TableHeader: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableBorder: renderer.NewStyle().Foreground(lipgloss.Color("8")),

		Dim:  renderer.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: renderer.NewStyle().Bold(true),

		renderer: renderer,
		color:    true,
	}
}

// ColorEnabled reports whether the styles emit escape sequences.
func (s *Styles) ColorEnabled() bool {
	return s.color
}

func (s *Styles) newStyle() lipgloss.Style {
	return s.renderer.NewStyle()
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
