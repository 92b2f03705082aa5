package richtext

import (
	"fmt"
	"slices"
)

type entry struct {
	obj   any
	start int
	end   int
	flags Flags
	seq   uint64
}

// SpanTable maps style objects to their current extent and flags.
// Lookups by object are O(1).
type SpanTable struct {
	entries map[any]*entry
	seq     uint64
}

// NewSpanTable returns an empty table.
func NewSpanTable() *SpanTable {
	return &SpanTable{entries: make(map[any]*entry)}
}

// Set attaches obj to [start, end) with flags. Setting an object that is
// already attached moves it.
func (t *SpanTable) Set(obj any, start, end int, flags Flags) {
	if e, ok := t.entries[obj]; ok {
		e.start, e.end, e.flags = start, end, flags
		return
	}
	t.seq++
	t.entries[obj] = &entry{obj: obj, start: start, end: end, flags: flags, seq: t.seq}
}

// Remove detaches obj. Removing an unknown object is a no-op.
func (t *SpanTable) Remove(obj any) {
	delete(t.entries, obj)
}

// Contains reports whether obj is attached.
func (t *SpanTable) Contains(obj any) bool {
	_, ok := t.entries[obj]
	return ok
}

// Start returns the start of obj, or -1 if it is not attached.
func (t *SpanTable) Start(obj any) int {
	if e, ok := t.entries[obj]; ok {
		return e.start
	}
	return -1
}

// End returns the end of obj, or -1 if it is not attached.
func (t *SpanTable) End(obj any) int {
	if e, ok := t.entries[obj]; ok {
		return e.end
	}
	return -1
}

// Flags returns the flags of obj, or ExclusiveExclusive if it is not attached.
func (t *SpanTable) Flags(obj any) Flags {
	if e, ok := t.entries[obj]; ok {
		return e.flags
	}
	return ExclusiveExclusive
}

// Len returns the number of attached objects.
func (t *SpanTable) Len() int {
	return len(t.entries)
}

// sorted returns entries ordered by start, then end descending, then
// attachment order.
func (t *SpanTable) sorted() []*entry {
	out := make([]*entry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b *entry) int {
		switch {
		case a.start != b.start:
			return a.start - b.start
		case a.end != b.end:
			return b.end - a.end
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		default:
			return 0
		}
	})
	return out
}

// Spans returns the objects overlapping [start, end) in table order.
// An empty query range matches spans containing that point.
func (t *SpanTable) Spans(start, end int) []any {
	var out []any
	for _, e := range t.sorted() {
		if overlaps(e.start, e.end, start, end) {
			out = append(out, e.obj)
		}
	}
	return out
}

func overlaps(s1, e1, s2, e2 int) bool {
	if s2 == e2 {
		return s1 <= s2 && s2 < e1
	}
	return s1 < e2 && s2 < e1
}

// SpanState is one row of a table snapshot.
type SpanState struct {
	Start  int
	End    int
	Flags  Flags
	Object string
}

// Snapshot lists the table in order, describing objects by their String
// method. Two snapshots are equal when the table holds the same kinds of
// object at the same positions with the same flags.
func (t *SpanTable) Snapshot() []SpanState {
	sorted := t.sorted()
	out := make([]SpanState, len(sorted))
	for i, e := range sorted {
		out[i] = SpanState{Start: e.start, End: e.end, Flags: e.flags, Object: describe(e.obj)}
	}
	return out
}

func describe(obj any) string {
	if s, ok := obj.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", obj)
}

// insert shifts spans for n runes inserted at offset.
func (t *SpanTable) insert(offset, n int) {
	for _, e := range t.entries {
		e.start = shiftPoint(e.start, offset, n, !e.flags.startInclusive())
		e.end = shiftPoint(e.end, offset, n, e.flags.endInclusive())
		if e.end < e.start {
			e.end = e.start
		}
	}
}

// shiftPoint moves a point for an insertion. A point exactly at the
// insertion offset moves only when after is set.
func shiftPoint(x, offset, n int, after bool) int {
	if x > offset || (x == offset && after) {
		return x + n
	}
	return x
}

// delete collapses spans for the runes in [start, end) being removed.
// Exclusive-exclusive spans left empty are detached.
func (t *SpanTable) delete(start, end int) {
	n := end - start
	for obj, e := range t.entries {
		wasEmpty := e.start == e.end
		e.start = collapsePoint(e.start, start, end, n)
		e.end = collapsePoint(e.end, start, end, n)
		if e.flags == ExclusiveExclusive && e.start == e.end && !wasEmpty {
			delete(t.entries, obj)
		}
	}
}

func collapsePoint(x, start, end, n int) int {
	switch {
	case x <= start:
		return x
	case x >= end:
		return x - n
	default:
		return start
	}
}
