package parser

import (
	"strings"

	"github.com/yaklabco/mdspan/pkg/mdast"
)

// Nesting limits of the dialect. Quote markers past MaxQuoteDepth are
// stripped so the content joins the outermost quote. List items nested deeper
// than MaxListDepth levels are rendered at the deepest supported level.
const (
	MaxQuoteDepth = 1
	MaxListDepth  = 2
)

type listFrame struct {
	indent  int
	content int
}

// blockParser walks lines with a forward cursor and one line of lookahead.
type blockParser struct {
	cfg   *config
	lines []line
	pos   int

	// lists holds the marker and content columns of the open list items.
	lists []listFrame

	// inList is set while the most recent block was a list item.
	inList bool
}

// Parse parses text into a Document. It never fails; anything it does not
// recognize becomes paragraph text.
func Parse(text string, opts ...Option) *mdast.Node {
	return ParseSource(mdast.NewSource("", []byte(text)), opts...)
}

// ParseSource parses an indexed source into a Document.
func ParseSource(src *mdast.Source, opts ...Option) *mdast.Node {
	doc := mdast.NewDocument()
	mdast.SetRange(doc, 0, len(src.Content))

	content := string(src.Content)
	lines := make([]line, 0, len(src.Lines))
	for _, li := range src.Lines {
		lines = append(lines, line{text: content[li.StartOffset:li.NewlineStart], offset: li.StartOffset})
	}

	p := &blockParser{cfg: newConfig(opts), lines: lines}
	p.parse(doc)
	return doc
}

func (p *blockParser) parse(parent *mdast.Node) {
	for p.pos < len(p.lines) {
		if p.lines[p.pos].isBlank() {
			p.pos++
			continue
		}
		p.parseBlock(parent)
	}
}

func (p *blockParser) parseBlock(parent *mdast.Node) {
	l := p.lines[p.pos]

	if thematicBreak(l) {
		p.resetList()
		node := mdast.NewNode(mdast.NodeThematicBreak)
		p.setRange(node, l, l)
		mdast.AppendChild(parent, node)
		p.pos++
		return
	}
	if m, ok := p.listItemAt(p.pos); ok {
		p.parseListItem(parent, m)
		return
	}

	p.resetList()
	if cols, _ := indent(l.text); cols >= tabStop {
		p.parseIndentedCode(parent)
		return
	}
	if f, ok := openingFence(l); ok {
		p.parseFencedCode(parent, f)
		return
	}
	if level, content, ok := atxHeading(l); ok {
		heading := mdast.NewHeading(level)
		p.setRange(heading, l, l)
		if content.text != "" {
			p.parseInlines(heading, []line{content})
		}
		mdast.AppendChild(parent, heading)
		p.pos++
		return
	}
	if _, ok := quoteMarker(l); ok {
		p.parseQuote(parent)
		return
	}
	p.parseParagraph(parent)
}

func (p *blockParser) resetList() {
	p.inList = false
	p.lists = p.lists[:0]
}

func (p *blockParser) setRange(n *mdast.Node, first, last line) {
	mdast.SetRange(n, first.offset, last.offset+len(last.text))
}

// listItemAt reports whether line i opens a list item. A '*' bullet only
// counts when it continues a list or the following line is also a list item,
// so a lone "* text" line stays a paragraph.
func (p *blockParser) listItemAt(i int) (listMarker, bool) {
	l := p.lines[i]
	if thematicBreak(l) {
		return listMarker{}, false
	}
	m, ok := matchListMarker(l)
	if !ok {
		return listMarker{}, false
	}
	if m.indent >= tabStop && !p.inList {
		return listMarker{}, false
	}
	if m.bullet == '*' && !p.inList && !p.listItemFollows(i) {
		return listMarker{}, false
	}
	return m, true
}

func (p *blockParser) listItemFollows(i int) bool {
	if i+1 >= len(p.lines) || thematicBreak(p.lines[i+1]) {
		return false
	}
	_, ok := matchListMarker(p.lines[i+1])
	return ok
}

// interrupts reports whether line i starts a block that ends running
// paragraph or list item text.
func (p *blockParser) interrupts(i int) bool {
	l := p.lines[i]
	if thematicBreak(l) {
		return true
	}
	if _, ok := openingFence(l); ok {
		return true
	}
	if _, _, ok := atxHeading(l); ok {
		return true
	}
	if _, ok := quoteMarker(l); ok {
		return true
	}
	if m, ok := p.listItemAt(i); ok {
		// An ordered list interrupts a paragraph only when it starts at 1.
		return p.inList || m.bullet != 0 || m.number == 1
	}
	return false
}

func (p *blockParser) parseParagraph(parent *mdast.Node) {
	first := p.lines[p.pos]
	body := []line{trimLeft(first)}
	p.pos++

	for p.pos < len(p.lines) {
		l := p.lines[p.pos]
		if l.isBlank() {
			break
		}
		if level := setextUnderline(l); level > 0 && !l.lazy {
			heading := mdast.NewHeading(level)
			p.setRange(heading, first, l)
			p.parseInlines(heading, body)
			mdast.AppendChild(parent, heading)
			p.pos++
			return
		}
		if p.interrupts(p.pos) {
			break
		}
		body = append(body, trimLeft(l))
		p.pos++
	}

	para := mdast.NewNode(mdast.NodeParagraph)
	p.setRange(para, first, p.lines[p.pos-1])
	p.parseInlines(para, body)
	mdast.AppendChild(parent, para)
}

func (p *blockParser) parseListItem(parent *mdast.Node, m listMarker) {
	for len(p.lists) > 0 && m.indent < p.lists[len(p.lists)-1].content {
		p.lists = p.lists[:len(p.lists)-1]
	}
	depth := min(len(p.lists), MaxListDepth-1)
	p.lists = append(p.lists, listFrame{indent: m.indent, content: m.content})
	p.inList = true

	attrs := mdast.ListItemAttrs{Depth: depth}
	if m.bullet != 0 {
		attrs.BulletMarker = string(m.bullet)
	} else {
		attrs.Ordered = true
		attrs.Number = m.number
		attrs.Delimiter = string(m.delimiter)
	}
	item := mdast.NewListItem(attrs)

	first := p.lines[p.pos]
	body := []line{m.body}
	p.pos++
	for p.pos < len(p.lines) && !p.lines[p.pos].isBlank() && !p.interrupts(p.pos) {
		body = append(body, trimLeft(p.lines[p.pos]))
		p.pos++
	}

	p.setRange(item, first, p.lines[p.pos-1])
	p.parseInlines(item, body)
	mdast.AppendChild(parent, item)
}

func (p *blockParser) parseFencedCode(parent *mdast.Node, f fence) {
	first := p.lines[p.pos]
	last := first
	p.pos++

	var body []string
	for p.pos < len(p.lines) {
		l := p.lines[p.pos]
		p.pos++
		last = l
		if f.closedBy(l) {
			break
		}
		body = append(body, stripIndent(l, f.indent).text)
	}

	literal := strings.Join(body, "\n")
	lang, _, _ := strings.Cut(f.info, " ")
	if lang == "" && p.cfg.detect != nil && literal != "" {
		lang = p.cfg.detect([]byte(literal))
	}

	node := mdast.NewCodeBlock(mdast.CodeBlockAttrs{
		FenceChar:   f.char,
		FenceLength: f.length,
		Info:        f.info,
		Language:    lang,
		Literal:     literal,
	})
	p.setRange(node, first, last)
	mdast.AppendChild(parent, node)
}

func (p *blockParser) parseIndentedCode(parent *mdast.Node) {
	first := p.lines[p.pos]
	var body []line
	for p.pos < len(p.lines) {
		l := p.lines[p.pos]
		if cols, _ := indent(l.text); !l.isBlank() && cols < tabStop {
			break
		}
		body = append(body, stripIndent(l, tabStop))
		p.pos++
	}
	for len(body) > 0 && body[len(body)-1].isBlank() {
		body = body[:len(body)-1]
	}

	texts := make([]string, len(body))
	for i, l := range body {
		texts[i] = l.text
	}
	node := mdast.NewCodeBlock(mdast.CodeBlockAttrs{
		Indented: true,
		Literal:  strings.Join(texts, "\n"),
	})
	p.setRange(node, first, body[len(body)-1])
	mdast.AppendChild(parent, node)
}

// parseQuote collects the quote's lines, including lazy paragraph
// continuations, and parses them as a nested block sequence.
func (p *blockParser) parseQuote(parent *mdast.Node) {
	first := p.lines[p.pos]
	last := first

	var body []line
	lazy := false
	for p.pos < len(p.lines) {
		l := p.lines[p.pos]
		if inner, ok := quoteMarker(l); ok {
			body = append(body, inner)
			lazy = !inner.isBlank()
		} else if l.isBlank() || !lazy || p.interrupts(p.pos) {
			break
		} else {
			l.lazy = true
			body = append(body, l)
		}
		last = l
		p.pos++
	}

	quote := mdast.NewNode(mdast.NodeBlockquote)
	p.setRange(quote, first, last)
	sub := &blockParser{cfg: p.cfg, lines: body}
	sub.parse(quote)
	mdast.AppendChild(parent, quote)
}

// parseInlines runs the inline scanner over the joined lines of a block.
func (p *blockParser) parseInlines(parent *mdast.Node, lines []line) {
	src, off := joinLines(lines)
	scanInlines(parent, src, off)
}

// joinLines joins block lines with '\n' into a rune slice, keeping the source
// byte offset of every rune plus one trailing end offset. Trailing whitespace
// of the final line is dropped.
func joinLines(lines []line) ([]rune, []int) {
	var src []rune
	var off []int
	end := 0
	for i, l := range lines {
		text := l.text
		if i == len(lines)-1 {
			text = strings.TrimRight(text, " \t")
		}
		if i > 0 {
			src = append(src, '\n')
			off = append(off, end)
		}
		for j, r := range text {
			src = append(src, r)
			off = append(off, l.offset+j)
		}
		end = l.offset + len(text)
	}
	return src, append(off, end)
}

// ParseInline scans a single block's raw text into inline nodes.
func ParseInline(text string) []*mdast.Node {
	holder := mdast.NewNode(mdast.NodeParagraph)
	src, off := joinLines([]line{{text: text}})
	scanInlines(holder, src, off)

	nodes := holder.Children()
	for _, n := range nodes {
		mdast.RemoveChild(holder, n)
	}
	return nodes
}
