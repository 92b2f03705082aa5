package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yuin/goldmark/util"

	"github.com/yaklabco/mdspan/pkg/mdast"
)

// maxLinkParens bounds parenthesis nesting inside a link destination.
const maxLinkParens = 32

// scanner is a single left-to-right pass over the runes of one block.
// Emphasis runs and brackets are pushed on a delimiter stack as plain text
// nodes and resolved when a closer is seen or the block ends.
type scanner struct {
	parent *mdast.Node
	src    []rune
	off    []int // source byte offset of each rune, plus the end offset

	pos     int
	pending int // start of literal text not yet emitted
	last    *delimiter
}

func scanInlines(parent *mdast.Node, src []rune, off []int) {
	s := &scanner{parent: parent, src: src, off: off}
	s.scan()
	s.processEmphasis(nil)
	mergeText(parent)
}

func (s *scanner) scan() {
	for s.pos < len(s.src) {
		switch c := s.src[s.pos]; c {
		case '\\':
			s.escape()
		case '`':
			s.codeSpan()
		case '*', '_':
			s.emphasisRun(c)
		case '!':
			if s.peek(1) == '[' {
				s.openBracket(true)
			} else {
				s.pos++
			}
		case '[':
			s.openBracket(false)
		case ']':
			s.closeBracket()
		case '<':
			s.autolink()
		case '\n':
			s.lineEnding()
		default:
			s.pos++
		}
	}
	s.flush(len(s.src))
}

func (s *scanner) peek(k int) rune {
	if s.pos+k < len(s.src) {
		return s.src[s.pos+k]
	}
	return 0
}

// flush emits pending literal text up to end.
func (s *scanner) flush(end int) {
	if end <= s.pending {
		return
	}
	n := mdast.NewText(string(s.src[s.pending:end]))
	mdast.SetRange(n, s.off[s.pending], s.off[end])
	mdast.AppendChild(s.parent, n)
	s.pending = end
}

// emit flushes text before start, appends n covering [start, end) and
// resumes scanning at end.
func (s *scanner) emit(n *mdast.Node, start, end int) *mdast.Node {
	s.flush(start)
	mdast.SetRange(n, s.off[start], s.off[end])
	mdast.AppendChild(s.parent, n)
	s.pending = end
	s.pos = end
	return n
}

func (s *scanner) runLength(i int, c rune) int {
	n := 0
	for i+n < len(s.src) && s.src[i+n] == c {
		n++
	}
	return n
}

func (s *scanner) skipSpace(i int) int {
	for i < len(s.src) && (s.src[i] == ' ' || s.src[i] == '\t' || s.src[i] == '\n') {
		i++
	}
	return i
}

func isASCIIPunct(r rune) bool {
	return r < utf8.RuneSelf && util.IsPunct(byte(r))
}

func (s *scanner) escape() {
	next := s.peek(1)
	switch {
	case next == '\n':
		s.emit(mdast.NewNode(mdast.NodeHardBreak), s.pos, s.pos+2)
		s.skipIndent()
	case isASCIIPunct(next):
		s.emit(mdast.NewText(string(next)), s.pos, s.pos+2)
	default:
		s.pos++
	}
}

func (s *scanner) skipIndent() {
	for s.pos < len(s.src) && (s.src[s.pos] == ' ' || s.src[s.pos] == '\t') {
		s.pos++
	}
	s.pending = s.pos
}

// codeSpan matches a backtick run against the next run of equal length.
// An unmatched run stays literal.
func (s *scanner) codeSpan() {
	start := s.pos
	n := s.runLength(start, '`')
	for j := start + n; j < len(s.src); {
		if s.src[j] != '`' {
			j++
			continue
		}
		m := s.runLength(j, '`')
		if m == n {
			s.emit(mdast.NewCodeSpan(normalizeCode(string(s.src[start+n:j]))), start, j+m)
			return
		}
		j += m
	}
	s.pos = start + n
}

func normalizeCode(code string) string {
	code = strings.ReplaceAll(code, "\n", " ")
	if len(code) >= 2 && code[0] == ' ' && code[len(code)-1] == ' ' && strings.Trim(code, " ") != "" {
		code = code[1 : len(code)-1]
	}
	return code
}

// lineEnding turns a newline into a soft break, or a hard break when at
// least two spaces precede it. Trailing spaces are dropped.
func (s *scanner) lineEnding() {
	nl := s.pos
	end := nl
	for end > s.pending && s.src[end-1] == ' ' {
		end--
	}
	s.flush(end)
	s.pending = nl

	kind := mdast.NodeSoftBreak
	if nl-end >= 2 {
		kind = mdast.NodeHardBreak
	}
	s.emit(mdast.NewNode(kind), nl, nl+1)
	s.skipIndent()
}

func (s *scanner) emphasisRun(c rune) {
	start := s.pos
	n := s.runLength(start, c)

	before, after := ' ', ' '
	if start > 0 {
		before = s.src[start-1]
	}
	if start+n < len(s.src) {
		after = s.src[start+n]
	}

	d := &delimiter{char: c, count: n, length: n}
	left, right := flanking(before, after)
	if c == '*' {
		d.canOpen, d.canClose = left, right
	} else {
		d.canOpen = left && (!right || util.IsPunctRune(before))
		d.canClose = right && (!left || util.IsPunctRune(after))
	}

	d.node = s.emit(mdast.NewText(string(s.src[start:start+n])), start, start+n)
	s.push(d)
}

// flanking applies the left- and right-flanking delimiter run rules.
func flanking(before, after rune) (bool, bool) {
	left := !util.IsSpaceRune(after) &&
		(!util.IsPunctRune(after) || util.IsSpaceRune(before) || util.IsPunctRune(before))
	right := !util.IsSpaceRune(before) &&
		(!util.IsPunctRune(before) || util.IsSpaceRune(after) || util.IsPunctRune(after))
	return left, right
}

func (s *scanner) openBracket(image bool) {
	start := s.pos
	d := &delimiter{char: '[', start: start, active: true}
	width := 1
	if image {
		d.char = '!'
		width = 2
	}
	d.node = s.emit(mdast.NewText(string(s.src[start:start+width])), start, start+width)
	s.push(d)
}

// closeBracket resolves "](dest title)" against the nearest open bracket.
// Anything that does not form a link leaves the brackets as literal text.
func (s *scanner) closeBracket() {
	start := s.pos
	opener := s.lastBracket()
	if opener == nil {
		s.pos++
		return
	}
	if !opener.active || s.peek(1) != '(' {
		s.remove(opener)
		s.pos++
		return
	}
	dest, title, end, ok := s.linkTail(start + 1)
	if !ok {
		s.remove(opener)
		s.pos++
		return
	}

	kind := mdast.NodeLink
	if opener.char == '!' {
		kind = mdast.NodeImage
	}

	s.flush(start)
	link := mdast.NewLink(kind, mdast.LinkAttrs{Destination: dest, Title: title})
	mdast.SetRange(link, s.off[opener.start], s.off[end])
	mdast.MoveChildren(link, opener.node, nil)
	mdast.InsertAfter(opener.node, link)

	s.processEmphasis(opener)
	mdast.RemoveChild(opener.node.Parent, opener.node)
	s.remove(opener)

	// Links cannot contain links.
	if kind == mdast.NodeLink {
		for d := s.last; d != nil; d = d.prev {
			if d.char == '[' {
				d.active = false
			}
		}
	}
	s.pending = end
	s.pos = end
}

// linkTail parses "(dest "title")" starting at the '(' at i.
func (s *scanner) linkTail(i int) (string, string, int, bool) {
	j := s.skipSpace(i + 1)
	dest, j, ok := s.linkDestination(j)
	if !ok {
		return "", "", 0, false
	}

	var title string
	k := s.skipSpace(j)
	if k > j && k < len(s.src) && (s.src[k] == '"' || s.src[k] == '\'' || s.src[k] == '(') {
		title, k, ok = s.linkTitle(k)
		if !ok {
			return "", "", 0, false
		}
		k = s.skipSpace(k)
	}
	if k >= len(s.src) || s.src[k] != ')' {
		return "", "", 0, false
	}
	return dest, title, k + 1, true
}

func (s *scanner) linkDestination(j int) (string, int, bool) {
	var sb strings.Builder

	if j < len(s.src) && s.src[j] == '<' {
		for k := j + 1; k < len(s.src); k++ {
			c := s.src[k]
			switch {
			case c == '>':
				return sb.String(), k + 1, true
			case c == '<' || c == '\n':
				return "", 0, false
			case c == '\\' && k+1 < len(s.src) && isASCIIPunct(s.src[k+1]):
				k++
				c = s.src[k]
			}
			sb.WriteRune(c)
		}
		return "", 0, false
	}

	depth := 0
	k := j
	for ; k < len(s.src); k++ {
		c := s.src[k]
		if c == '\\' && k+1 < len(s.src) && isASCIIPunct(s.src[k+1]) {
			k++
			sb.WriteRune(s.src[k])
			continue
		}
		if c == ')' && depth == 0 || util.IsSpaceRune(c) || unicode.IsControl(c) {
			break
		}
		switch c {
		case '(':
			depth++
			if depth > maxLinkParens {
				return "", 0, false
			}
		case ')':
			depth--
		}
		sb.WriteRune(c)
	}
	if depth != 0 {
		return "", 0, false
	}
	return sb.String(), k, true
}

func (s *scanner) linkTitle(k int) (string, int, bool) {
	open := s.src[k]
	closer := open
	if open == '(' {
		closer = ')'
	}

	var sb strings.Builder
	for m := k + 1; m < len(s.src); m++ {
		c := s.src[m]
		switch {
		case c == '\\' && m+1 < len(s.src) && isASCIIPunct(s.src[m+1]):
			m++
			sb.WriteRune(s.src[m])
		case c == closer:
			return sb.String(), m + 1, true
		case open == '(' && c == '(':
			return "", 0, false
		default:
			sb.WriteRune(c)
		}
	}
	return "", 0, false
}

// autolink recognizes "<scheme:rest>" with a 2-32 character scheme.
func (s *scanner) autolink() {
	start := s.pos
	k := start + 1
	for k < len(s.src) && isSchemeRune(s.src[k], k == start+1) {
		k++
	}
	if n := k - start - 1; n < 2 || n > 32 || k >= len(s.src) || s.src[k] != ':' {
		s.pos++
		return
	}

	for k++; k < len(s.src); k++ {
		c := s.src[k]
		if c == '>' {
			uri := string(s.src[start+1 : k])
			link := mdast.NewLink(mdast.NodeLink, mdast.LinkAttrs{Destination: uri, Autolink: true})
			text := mdast.NewText(uri)
			mdast.SetRange(text, s.off[start+1], s.off[k])
			mdast.AppendChild(link, text)
			s.emit(link, start, k+1)
			return
		}
		if c == '<' || util.IsSpaceRune(c) || unicode.IsControl(c) {
			break
		}
	}
	s.pos++
}

func isSchemeRune(r rune, first bool) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case first:
		return false
	default:
		return r >= '0' && r <= '9' || r == '+' || r == '.' || r == '-'
	}
}

// mergeText joins adjacent text nodes and drops empty ones.
func mergeText(n *mdast.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.Next
		switch {
		case c.Kind == mdast.NodeText && c.Inline.Text == "":
			mdast.RemoveChild(n, c)
		case c.Kind == mdast.NodeText && c.Prev != nil && c.Prev.Kind == mdast.NodeText:
			prev := c.Prev
			prev.Inline.Text += c.Inline.Text
			prev.Range.EndOffset = c.Range.EndOffset
			mdast.RemoveChild(n, c)
		default:
			mergeText(c)
		}
		c = next
	}
}
