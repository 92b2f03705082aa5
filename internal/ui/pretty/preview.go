package pretty

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/yaklabco/mdspan/pkg/richtext"
	"github.com/yaklabco/mdspan/pkg/style"
)

// PixelsPerColumn converts layout widths in host units to terminal columns.
const PixelsPerColumn = 8

const stripe = "│"

// Preview paints the buffer for a terminal. Each rune takes the attributes
// of the innermost range covering it; block ranges contribute leading
// margins and quote stripes. Lines longer than width are wrapped; a width
// of zero or less disables wrapping.
func (s *Styles) Preview(buf *richtext.Buffer, width int) string {
	text := []rune(buf.Text())
	if len(text) == 0 {
		return ""
	}
	ranges := buf.Ranges()

	owner := make([]int, len(text))
	for i := range owner {
		owner[i] = -1
	}
	var base style.Attributes
	for idx, r := range ranges {
		if r.Kind == style.KindDocument {
			base = r.Attrs
		}
		for pos := max(r.Start, 0); pos < min(r.End, len(text)); pos++ {
			owner[pos] = idx
		}
	}

	var out strings.Builder
	lineStart := 0
	for lineStart <= len(text) {
		lineEnd := lineStart
		for lineEnd < len(text) && text[lineEnd] != '\n' {
			lineEnd++
		}

		margin := s.margin(ranges, lineStart)
		line := s.paintLine(text, owner, ranges, base, lineStart, lineEnd)
		if width > 0 {
			line = wordwrap.String(line, max(width-lipgloss.Width(margin), 1))
		}
		for i, wrapped := range strings.Split(line, "\n") {
			if i > 0 {
				out.WriteByte('\n')
			}
			out.WriteString(margin)
			out.WriteString(wrapped)
		}

		if lineEnd >= len(text) {
			break
		}
		out.WriteByte('\n')
		lineStart = lineEnd + 1
	}
	return out.String()
}

// margin builds the prefix for a line starting at pos from every block
// range containing it, outermost first.
func (s *Styles) margin(ranges []richtext.StyledRange, pos int) string {
	var b strings.Builder
	for _, r := range ranges {
		if !r.Kind.IsBlock() || pos < r.Start || pos >= r.End {
			continue
		}
		cols := r.Attrs.Layout.LeadingMargin / PixelsPerColumn
		if cols <= 0 {
			continue
		}
		if r.Attrs.Layout.StripeWidth > 0 {
			st := s.newStyle()
			if s.color && r.Attrs.Layout.StripeColor != nil {
				st = st.Foreground(lipgloss.Color(style.Hex(r.Attrs.Layout.StripeColor)))
			}
			b.WriteString(st.Render(stripe))
			cols--
		}
		b.WriteString(strings.Repeat(" ", cols))
	}
	return b.String()
}

func (s *Styles) paintLine(text []rune, owner []int, ranges []richtext.StyledRange, base style.Attributes, start, end int) string {
	if !s.color {
		return string(text[start:end])
	}

	var b strings.Builder
	for pos := start; pos < end; {
		next := pos + 1
		for next < end && owner[next] == owner[pos] {
			next++
		}
		segment := string(text[pos:next])
		if idx := owner[pos]; idx >= 0 {
			segment = s.paintSegment(segment, ranges[idx].Attrs, base)
		}
		b.WriteString(segment)
		pos = next
	}
	return b.String()
}

// paintSegment wraps one run of equal attributes in a single escape
// sequence. Sizes have no terminal form beyond the bold headings already
// carry, and the base color is left to the terminal's own foreground.
func (s *Styles) paintSegment(segment string, attrs, base style.Attributes) string {
	profile := s.renderer.ColorProfile()
	out := profile.String(segment)
	if attrs.Bold {
		out = out.Bold()
	}
	if attrs.Italic {
		out = out.Italic()
	}
	if attrs.Underline {
		out = out.Underline()
	}
	if attrs.Typeface == style.Monospace {
		out = out.Faint()
	}
	if attrs.Foreground != nil && !style.SameColor(attrs.Foreground, base.Foreground) {
		out = out.Foreground(profile.Color(style.Hex(attrs.Foreground)))
	}
	return out.String()
}
