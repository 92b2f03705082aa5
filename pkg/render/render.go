package render

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/mdspan/pkg/mdast"
	"github.com/yaklabco/mdspan/pkg/parser"
	"github.com/yaklabco/mdspan/pkg/richtext"
	"github.com/yaklabco/mdspan/pkg/style"
)

// Bullet is the prefix written for unordered list items.
const Bullet = "•"

// ThematicBreak is the text written for a thematic break.
const ThematicBreak = "---"

// Render parses text and builds its rich text buffer using sheet. It never
// fails; unrecognized markup is kept as literal text.
func Render(text string, sheet *style.StyleSheet, opts ...Option) *richtext.Buffer {
	cfg := newConfig(opts)
	return Document(parser.Parse(text, cfg.parse...), sheet)
}

// Document builds the rich text buffer for an already parsed document.
func Document(doc *mdast.Node, sheet *style.StyleSheet) *richtext.Buffer {
	b := &builder{sheet: sheet, counters: make(map[int]int)}
	base := sheet.Attributes(style.Attributes{}, style.KindDocument, 0)
	b.blocks(doc, base, 1)
	return b.finish(base)
}

// pending is a range waiting for the output length to be known.
type pending struct {
	r     richtext.StyledRange
	depth int
}

type builder struct {
	sheet  *style.StyleSheet
	out    strings.Builder
	pos    int
	ranges []pending

	// counters holds the next ordered number per list depth within the
	// current run of list items.
	counters map[int]int
}

func (b *builder) write(s string) {
	b.out.WriteString(s)
	b.pos += utf8.RuneCountInString(s)
}

func (b *builder) add(kind style.Kind, level int, attrs style.Attributes, start, depth int) *richtext.StyledRange {
	b.ranges = append(b.ranges, pending{
		r:     richtext.StyledRange{Start: start, End: b.pos, Kind: kind, Level: level, Attrs: attrs},
		depth: depth,
	})
	return &b.ranges[len(b.ranges)-1].r
}

func (b *builder) blocks(parent *mdast.Node, attrs style.Attributes, depth int) {
	for n := parent.FirstChild; n != nil; n = n.Next {
		if n.Kind != mdast.NodeListItem {
			b.endListRun()
		}
		b.block(n, attrs, depth)
	}
	b.endListRun()
}

func (b *builder) block(n *mdast.Node, parent style.Attributes, depth int) {
	start := b.pos

	switch n.Kind {
	case mdast.NodeParagraph:
		attrs := b.sheet.Attributes(parent, style.KindParagraph, 0)
		b.inlines(n, attrs, depth+1)
		b.write("\n")
		b.add(style.KindParagraph, 0, attrs, start, depth)

	case mdast.NodeHeading:
		level := n.HeadingLevel()
		attrs := b.sheet.Attributes(parent, style.KindHeading, level)
		b.inlines(n, attrs, depth+1)
		b.write("\n")
		b.add(style.KindHeading, level, attrs, start, depth)

	case mdast.NodeBlockquote:
		attrs := b.sheet.Attributes(parent, style.KindQuote, 0)
		b.blocks(n, attrs, depth+1)
		b.add(style.KindQuote, 0, attrs, start, depth)

	case mdast.NodeListItem:
		b.listItem(n, parent, depth)

	case mdast.NodeCodeBlock:
		attrs := b.sheet.Attributes(parent, style.KindCodeBlock, 0)
		var lang string
		if cb := n.Block.CodeBlock; cb != nil {
			b.write(cb.Literal)
			lang = cb.Language
		}
		b.write("\n")
		b.add(style.KindCodeBlock, 0, attrs, start, depth).Language = lang

	case mdast.NodeThematicBreak:
		attrs := b.sheet.Attributes(parent, style.KindThematicBreak, 0)
		b.write(ThematicBreak + "\n")
		b.add(style.KindThematicBreak, 0, attrs, start, depth)

	default:
		// Inline content directly under a container.
		b.inline(n, parent, depth)
	}
}

func (b *builder) listItem(n *mdast.Node, parent style.Attributes, depth int) {
	item := n.Block.ListItem
	level := 0
	if item != nil {
		level = item.Depth
	}

	start := b.pos
	attrs := b.sheet.Attributes(parent, style.KindListItem, level)

	prefix := b.sheet.Attributes(attrs, style.KindListPrefix, level)
	b.write(b.marker(item, level))
	b.add(style.KindListPrefix, level, prefix, start, depth+1)
	b.write(" ")

	b.inlines(n, attrs, depth+1)
	b.write("\n")
	b.add(style.KindListItem, level, attrs, start, depth)
}

// marker returns the prefix for item, numbering ordered items from the
// first item of their run at the same depth.
func (b *builder) marker(item *mdast.ListItemAttrs, level int) string {
	for d := range b.counters {
		if d > level {
			delete(b.counters, d)
		}
	}
	if item == nil || !item.Ordered {
		delete(b.counters, level)
		return Bullet
	}

	next, ok := b.counters[level]
	if !ok {
		next = item.Number
	}
	b.counters[level] = next + 1
	return strconv.Itoa(next) + "."
}

func (b *builder) endListRun() {
	clear(b.counters)
}

func (b *builder) inlines(parent *mdast.Node, attrs style.Attributes, depth int) {
	for n := parent.FirstChild; n != nil; n = n.Next {
		b.inline(n, attrs, depth)
	}
}

func (b *builder) inline(n *mdast.Node, parent style.Attributes, depth int) {
	start := b.pos

	switch n.Kind {
	case mdast.NodeText:
		b.write(n.Inline.Text)
		b.add(style.KindText, 0, b.sheet.Attributes(parent, style.KindText, 0), start, depth)

	case mdast.NodeCodeSpan:
		b.write(n.Inline.Text)
		b.add(style.KindCode, 0, b.sheet.Attributes(parent, style.KindCode, 0), start, depth)

	case mdast.NodeEmphasis, mdast.NodeStrong:
		kind := style.KindEmphasis
		if n.Kind == mdast.NodeStrong {
			kind = style.KindStrong
		}
		attrs := b.sheet.Attributes(parent, kind, 0)
		b.inlines(n, attrs, depth+1)
		b.add(kind, 0, attrs, start, depth)

	case mdast.NodeLink:
		attrs := b.sheet.Attributes(parent, style.KindLink, 0)
		b.inlines(n, attrs, depth+1)
		b.add(style.KindLink, 0, attrs, start, depth).Payload = n.Destination()

	case mdast.NodeImage:
		attrs := b.sheet.Attributes(parent, style.KindImage, 0)
		alt := mdast.PlainText(n)
		if alt == "" {
			alt = n.Destination()
		}
		b.write(alt)
		b.add(style.KindImage, 0, attrs, start, depth).Payload = n.Destination()

	case mdast.NodeSoftBreak, mdast.NodeHardBreak:
		b.write("\n")
		b.add(style.KindLineBreak, 0, b.sheet.Attributes(parent, style.KindLineBreak, 0), start, depth)

	default:
		if n.IsBlock() {
			b.block(n, parent, depth)
		}
	}
}

// finish trims trailing newlines, clamps ranges to the result, and attaches
// them outermost first.
func (b *builder) finish(base style.Attributes) *richtext.Buffer {
	text := strings.TrimRight(b.out.String(), "\n")
	length := utf8.RuneCountInString(text)

	ranges := make([]pending, 0, len(b.ranges)+1)
	ranges = append(ranges, pending{
		r: richtext.StyledRange{Start: 0, End: length, Kind: style.KindDocument, Attrs: base},
	})
	for _, p := range b.ranges {
		p.r.End = min(p.r.End, length)
		if p.r.Start >= p.r.End {
			continue
		}
		ranges = append(ranges, p)
	}
	slices.SortStableFunc(ranges, func(x, y pending) int {
		return cmp.Or(
			cmp.Compare(x.r.Start, y.r.Start),
			cmp.Compare(y.r.End, x.r.End),
			cmp.Compare(x.depth, y.depth),
		)
	})

	buf := richtext.New(text)
	for _, p := range ranges {
		if p.r.Kind == style.KindDocument && length == 0 {
			continue
		}
		flags := richtext.ExclusiveExclusive
		if p.r.Kind == style.KindDocument {
			flags = richtext.InclusiveInclusive
		}
		prims := b.sheet.Primitives(p.r.Kind, p.r.Level, p.r.Payload)
		//nolint:errcheck // ranges are clamped to the text above
		buf.AddRange(p.r, prims, flags)
	}
	return buf
}
