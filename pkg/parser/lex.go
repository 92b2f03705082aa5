package parser

import "strings"

// tabStop is the column width a tab advances to.
const tabStop = 4

// line is one source line with its leading prefix (quote markers, list
// indentation) already removed. offset is the byte offset of text[0] in the
// original input. lazy marks a quote continuation line that had no marker.
type line struct {
	text   string
	offset int
	lazy   bool
}

func (l line) isBlank() bool {
	return strings.TrimSpace(l.text) == ""
}

// advance returns the line with its first n bytes dropped.
func (l line) advance(n int) line {
	if n > len(l.text) {
		n = len(l.text)
	}
	return line{text: l.text[n:], offset: l.offset + n, lazy: l.lazy}
}

// indent returns the indentation width in columns and its length in bytes.
func indent(s string) (int, int) {
	cols := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ':
			cols++
		case '\t':
			cols += tabStop - cols%tabStop
		default:
			return cols, i
		}
	}
	return cols, len(s)
}

// stripIndent removes up to maxCols columns of leading whitespace.
func stripIndent(l line, maxCols int) line {
	cols := 0
	i := 0
	for i < len(l.text) && cols < maxCols {
		switch l.text[i] {
		case ' ':
			cols++
		case '\t':
			cols += tabStop - cols%tabStop
		default:
			return l.advance(i)
		}
		i++
	}
	return l.advance(i)
}

// trimLeft removes all leading spaces and tabs.
func trimLeft(l line) line {
	_, n := indent(l.text)
	return l.advance(n)
}

func isSpaceOrTab(b byte) bool {
	return b == ' ' || b == '\t'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// atxHeading recognizes "# Title". It returns the level and the heading
// content with any closing '#' sequence removed.
func atxHeading(l line) (int, line, bool) {
	cols, _ := indent(l.text)
	if cols > 3 {
		return 0, line{}, false
	}
	l = trimLeft(l)

	level := 0
	for level < len(l.text) && l.text[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0, line{}, false
	}
	if level < len(l.text) && !isSpaceOrTab(l.text[level]) {
		return 0, line{}, false
	}

	content := trimLeft(l.advance(level))
	text := strings.TrimRight(content.text, " \t")
	closing := strings.TrimRight(text, "#")
	if closing == "" || isSpaceOrTab(closing[len(closing)-1]) {
		text = strings.TrimRight(closing, " \t")
	}
	return level, line{text: text, offset: content.offset}, true
}

// thematicBreak recognizes "***", "- - -", "___" and similar.
func thematicBreak(l line) bool {
	cols, n := indent(l.text)
	if cols > 3 {
		return false
	}
	var marker byte
	count := 0
	for i := n; i < len(l.text); i++ {
		c := l.text[i]
		switch {
		case isSpaceOrTab(c):
			continue
		case marker == 0 && (c == '*' || c == '-' || c == '_'):
			marker = c
			count++
		case marker != 0 && c == marker:
			count++
		default:
			return false
		}
	}
	return count >= 3
}

// setextUnderline reports the heading level for a "===" or "---" line.
func setextUnderline(l line) int {
	cols, n := indent(l.text)
	if cols > 3 {
		return 0
	}
	s := strings.TrimRight(l.text[n:], " \t")
	if s == "" {
		return 0
	}
	if strings.Trim(s, "=") == "" {
		return 1
	}
	if strings.Trim(s, "-") == "" {
		return 2
	}
	return 0
}

// fence describes an opening code fence.
type fence struct {
	char   byte
	length int
	indent int
	info   string
}

func openingFence(l line) (fence, bool) {
	cols, n := indent(l.text)
	if cols > 3 || n >= len(l.text) {
		return fence{}, false
	}
	c := l.text[n]
	if c != '`' && c != '~' {
		return fence{}, false
	}
	length := 0
	for n+length < len(l.text) && l.text[n+length] == c {
		length++
	}
	if length < 3 {
		return fence{}, false
	}
	info := strings.TrimSpace(l.text[n+length:])
	if c == '`' && strings.ContainsRune(info, '`') {
		return fence{}, false
	}
	return fence{char: c, length: length, indent: cols, info: info}, true
}

func (f fence) closedBy(l line) bool {
	cols, n := indent(l.text)
	if cols > 3 {
		return false
	}
	length := 0
	for n+length < len(l.text) && l.text[n+length] == f.char {
		length++
	}
	return length >= f.length && strings.TrimSpace(l.text[n+length:]) == ""
}

// quoteMarker strips every leading '>' marker, each with one optional
// following space. Nested markers collapse into the single supported level.
func quoteMarker(l line) (line, bool) {
	cols, n := indent(l.text)
	if cols > 3 || n >= len(l.text) || l.text[n] != '>' {
		return line{}, false
	}
	l = l.advance(n)
	for len(l.text) > 0 && l.text[0] == '>' {
		l = l.advance(1)
		if len(l.text) > 0 && isSpaceOrTab(l.text[0]) {
			l = l.advance(1)
		}
		next := trimLeft(l)
		if len(next.text) > 0 && next.text[0] == '>' {
			l = next
		}
	}
	return l, true
}

// listMarker describes a list item marker line.
type listMarker struct {
	bullet    byte // '-', '+', '*', or 0 for ordered
	number    int
	delimiter byte // '.' or ')'
	indent    int  // columns before the marker
	content   int  // column where the content starts
	body      line // content after the marker
}

// matchListMarker recognizes a bullet or ordered marker followed by at least
// one space or tab and non-empty content.
func matchListMarker(l line) (listMarker, bool) {
	cols, n := indent(l.text)
	s := l.text[n:]
	if s == "" {
		return listMarker{}, false
	}

	m := listMarker{indent: cols}
	width := 0
	switch {
	case s[0] == '-' || s[0] == '+' || s[0] == '*':
		m.bullet = s[0]
		width = 1
	case isDigit(s[0]):
		for width < len(s) && width < 10 && isDigit(s[width]) {
			m.number = m.number*10 + int(s[width]-'0')
			width++
		}
		if width > 9 || width >= len(s) || (s[width] != '.' && s[width] != ')') {
			return listMarker{}, false
		}
		m.delimiter = s[width]
		width++
	default:
		return listMarker{}, false
	}

	if width >= len(s) || !isSpaceOrTab(s[width]) {
		return listMarker{}, false
	}
	body := l.advance(n + width)
	spaceCols, spaceBytes := indent(body.text)
	body = body.advance(spaceBytes)
	if strings.TrimSpace(body.text) == "" {
		return listMarker{}, false
	}
	if spaceCols > tabStop {
		spaceCols = 1
	}
	m.content = cols + width + spaceCols
	m.body = body
	return m, true
}
