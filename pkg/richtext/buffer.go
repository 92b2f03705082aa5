package richtext

import (
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/yaklabco/mdspan/pkg/style"
)

// ErrOutOfRange is returned by host mutations given offsets outside the text.
var ErrOutOfRange = errors.New("offset out of range")

// StyledRange is a styled extent of the rendered text in rune offsets,
// [Start, End). Attrs are the effective attributes, inherited from the
// enclosing ranges. Payload is the URI of link and image ranges.
type StyledRange struct {
	Start    int
	End      int
	Kind     style.Kind
	Level    int
	Attrs    style.Attributes
	Payload  string
	Language string
}

// Len returns the length of the range in runes.
func (r StyledRange) Len() int {
	return r.End - r.Start
}

// Contains reports whether o lies inside r. Equal extents contain each other.
func (r StyledRange) Contains(o StyledRange) bool {
	return r.Start <= o.Start && o.End <= r.End
}

// Group is the table object for one styled range. It owns the primitive
// handles that realize the range's style.
type Group struct {
	Kind     style.Kind
	Level    int
	Attrs    style.Attributes
	Payload  string
	Language string

	handles []*Handle
	index   int
}

// Handles returns the group's primitive handles in application order.
func (g *Group) Handles() []*Handle {
	return slices.Clone(g.handles)
}

func (g *Group) String() string {
	if g.Payload != "" {
		return fmt.Sprintf("group:%s(%s)", g.Kind, g.Payload)
	}
	return "group:" + g.Kind.String()
}

// Handle is one primitive attached to the span table on behalf of a group.
type Handle struct {
	Primitive style.Primitive
	group     *Group
}

// Group returns the owning group.
func (h *Handle) Group() *Group {
	return h.group
}

func (h *Handle) String() string {
	if h.Primitive.URI != "" {
		return fmt.Sprintf("%s(%s)", h.Primitive.Type, h.Primitive.URI)
	}
	return h.Primitive.Type.String()
}

// Link is the host-facing payload of a link or image range.
type Link struct {
	Kind  style.Kind
	URI   string
	Start int
	End   int
}

// Buffer is rendered text with its span table. It is owned by one host at
// a time and is not safe for concurrent mutation.
type Buffer struct {
	text   []rune
	table  *SpanTable
	groups []*Group
	live   []*Group
}

// New returns a buffer holding text and no ranges.
func New(text string) *Buffer {
	return &Buffer{
		text:  []rune(text),
		table: NewSpanTable(),
	}
}

// AddRange attaches a group for r and one handle per primitive, all with
// the same extent and flags. Ranges must be added outermost first.
func (b *Buffer) AddRange(r StyledRange, prims []style.Primitive, flags Flags) (*Group, error) {
	if r.Start < 0 || r.End > len(b.text) || r.Start > r.End {
		return nil, fmt.Errorf("range [%d,%d) in text of length %d: %w", r.Start, r.End, len(b.text), ErrOutOfRange)
	}

	g := &Group{
		Kind:     r.Kind,
		Level:    r.Level,
		Attrs:    r.Attrs,
		Payload:  r.Payload,
		Language: r.Language,
		index:    len(b.groups),
	}
	b.table.Set(g, r.Start, r.End, flags)
	for _, p := range prims {
		h := &Handle{Primitive: p, group: g}
		g.handles = append(g.handles, h)
		b.table.Set(h, r.Start, r.End, flags)
	}

	b.groups = append(b.groups, g)
	if r.Kind.IsLive() {
		b.live = append(b.live, g)
	}
	return g, nil
}

// Text returns the rendered text.
func (b *Buffer) Text() string {
	return string(b.text)
}

// Len returns the text length in runes.
func (b *Buffer) Len() int {
	return len(b.text)
}

// Table exposes the span table.
func (b *Buffer) Table() *SpanTable {
	return b.table
}

// Snapshot is shorthand for Table().Snapshot().
func (b *Buffer) Snapshot() []SpanState {
	return b.table.Snapshot()
}

// Ranges returns the styled ranges whose groups are still attached, at their
// current positions, ordered by start, then end descending, then creation.
func (b *Buffer) Ranges() []StyledRange {
	type positioned struct {
		r     StyledRange
		index int
	}
	var list []positioned
	for _, g := range b.groups {
		if !b.table.Contains(g) {
			continue
		}
		list = append(list, positioned{
			r: StyledRange{
				Start:    b.table.Start(g),
				End:      b.table.End(g),
				Kind:     g.Kind,
				Level:    g.Level,
				Attrs:    g.Attrs,
				Payload:  g.Payload,
				Language: g.Language,
			},
			index: g.index,
		})
	}
	slices.SortStableFunc(list, func(a, c positioned) int {
		switch {
		case a.r.Start != c.r.Start:
			return a.r.Start - c.r.Start
		case a.r.End != c.r.End:
			return c.r.End - a.r.End
		default:
			return a.index - c.index
		}
	})

	out := make([]StyledRange, len(list))
	for i, p := range list {
		out[i] = p.r
	}
	return out
}

// Links returns the attached link and image ranges in document order.
func (b *Buffer) Links() []Link {
	var out []Link
	for _, g := range b.live {
		if !b.table.Contains(g) {
			continue
		}
		out = append(out, Link{Kind: g.Kind, URI: g.Payload, Start: b.table.Start(g), End: b.table.End(g)})
	}
	return out
}

// Insert inserts s at rune offset, shifting spans according to their flags.
func (b *Buffer) Insert(offset int, s string) error {
	if offset < 0 || offset > len(b.text) {
		return fmt.Errorf("insert at %d in text of length %d: %w", offset, len(b.text), ErrOutOfRange)
	}
	runes := []rune(s)
	b.text = slices.Insert(b.text, offset, runes...)
	b.table.insert(offset, len(runes))
	return nil
}

// Delete removes the runes in [start, end).
func (b *Buffer) Delete(start, end int) error {
	if start < 0 || end > len(b.text) || start > end {
		return fmt.Errorf("delete [%d,%d) in text of length %d: %w", start, end, len(b.text), ErrOutOfRange)
	}
	b.text = slices.Delete(b.text, start, end)
	b.table.delete(start, end)
	return nil
}

// DetachPrimitives removes every primitive handle overlapping [start, end)
// from the table while leaving groups attached. It mirrors a host that drops
// composite style objects during an edit, and returns the number removed.
func (b *Buffer) DetachPrimitives(start, end int) int {
	removed := 0
	for _, obj := range b.table.Spans(start, end) {
		if h, ok := obj.(*Handle); ok {
			b.table.Remove(h)
			removed++
		}
	}
	return removed
}

// Activate runs the link handler of the innermost clickable primitive at
// offset. It reports whether a clickable primitive was found.
func (b *Buffer) Activate(offset int) bool {
	var best *Handle
	for _, obj := range b.table.Spans(offset, offset) {
		h, ok := obj.(*Handle)
		if !ok || h.Primitive.Type != style.PrimClickable {
			continue
		}
		// Table order puts inner spans after outer ones.
		best = h
	}
	if best == nil {
		return false
	}
	if best.Primitive.Handler != nil {
		best.Primitive.Handler(best.Primitive.URI, b.table.Start(best), b.table.End(best))
	}
	return true
}

// UTF16Offset converts a rune offset into a UTF-16 code unit offset, for
// hosts that index text that way. Offsets past the end are clamped.
func (b *Buffer) UTF16Offset(offset int) int {
	offset = min(max(offset, 0), len(b.text))
	n := 0
	for _, r := range b.text[:offset] {
		if r >= 0x10000 && r <= utf8.MaxRune {
			n += 2
		} else {
			n++
		}
	}
	return n
}
