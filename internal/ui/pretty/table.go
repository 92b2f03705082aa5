package pretty

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/reflow/truncate"

	"github.com/yaklabco/mdspan/pkg/richtext"
	"github.com/yaklabco/mdspan/pkg/style"
)

// Table formatting constants.
const (
	excerptWidth = 32
	ellipsis     = "…"
	newlineGlyph = "⏎"
)

// rangeHeaders are the columns of the ranges table.
var rangeHeaders = []string{"START", "END", "KIND", "LEVEL", "TEXT", "PAYLOAD"}

// FormatRanges renders the styled ranges of buf as a table, one row per
// range in buffer order.
func (s *Styles) FormatRanges(buf *richtext.Buffer) string {
	text := []rune(buf.Text())
	ranges := buf.Ranges()

	rows := make([][]string, 0, len(ranges))
	for _, r := range ranges {
		level := ""
		if r.Kind == style.KindHeading || r.Kind == style.KindListItem || r.Kind == style.KindListPrefix {
			level = strconv.Itoa(r.Level)
		}
		payload := r.Payload
		if r.Language != "" {
			payload = r.Language
		}
		rows = append(rows, []string{
			strconv.Itoa(r.Start),
			strconv.Itoa(r.End),
			r.Kind.String(),
			level,
			Excerpt(text, r.Start, r.End),
			payload,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.TableBorder).
		Headers(rangeHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			cell := s.newStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return s.TableHeader.Padding(0, 1)
			}
			switch col {
			case 0, 1:
				return s.Offset.Padding(0, 1).Align(lipgloss.Right)
			case 2:
				return s.Kind.Padding(0, 1)
			case 5:
				return s.Payload.Padding(0, 1)
			}
			return cell
		})

	return t.String() + "\n"
}

// Excerpt returns the text of [start, end) on one line, truncated for a
// table cell.
func Excerpt(text []rune, start, end int) string {
	start = max(start, 0)
	end = min(end, len(text))
	if start >= end {
		return ""
	}
	excerpt := strings.ReplaceAll(string(text[start:end]), "\n", newlineGlyph)
	return truncate.StringWithTail(excerpt, excerptWidth, ellipsis)
}
