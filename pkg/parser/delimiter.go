package parser

import "github.com/yaklabco/mdspan/pkg/mdast"

// delimiter is an entry on the scanner's delimiter stack: an emphasis run
// ('*' or '_') or an open bracket ('[' for links, '!' for images).
type delimiter struct {
	node *mdast.Node
	char rune

	// count is the number of delimiter characters not yet used;
	// length is the original run length.
	count  int
	length int

	canOpen  bool
	canClose bool

	// Bracket fields.
	start  int
	active bool

	prev, next *delimiter
}

func (d *delimiter) isBracket() bool {
	return d.char == '[' || d.char == '!'
}

func (s *scanner) push(d *delimiter) {
	d.prev = s.last
	if s.last != nil {
		s.last.next = d
	}
	s.last = d
}

func (s *scanner) remove(d *delimiter) {
	if d.prev != nil {
		d.prev.next = d.next
	}
	if d.next != nil {
		d.next.prev = d.prev
	} else {
		s.last = d.prev
	}
}

func (s *scanner) lastBracket() *delimiter {
	for d := s.last; d != nil; d = d.prev {
		if d.isBracket() {
			return d
		}
	}
	return nil
}

// firstAbove returns the oldest delimiter above bottom.
func (s *scanner) firstAbove(bottom *delimiter) *delimiter {
	if bottom != nil {
		return bottom.next
	}
	d := s.last
	for d != nil && d.prev != nil {
		d = d.prev
	}
	return d
}

type openerKey struct {
	char    rune
	canOpen bool
	mod3    int
}

// processEmphasis resolves emphasis among the delimiters above bottom and
// then removes them from the stack.
func (s *scanner) processEmphasis(bottom *delimiter) {
	openersBottom := make(map[openerKey]*delimiter)

	closer := s.firstAbove(bottom)
	for closer != nil {
		if closer.isBracket() || !closer.canClose {
			closer = closer.next
			continue
		}

		key := openerKey{char: closer.char, canOpen: closer.canOpen, mod3: closer.length % 3}
		limit, seen := openersBottom[key]
		if !seen {
			limit = bottom
		}

		var opener *delimiter
		for d := closer.prev; d != nil && d != bottom && d != limit; d = d.prev {
			if d.char == closer.char && d.canOpen && !oddMatch(d, closer) {
				opener = d
				break
			}
		}

		if opener == nil {
			openersBottom[key] = closer.prev
			next := closer.next
			if !closer.canOpen {
				s.remove(closer)
			}
			closer = next
			continue
		}
		closer = s.match(opener, closer)
	}

	for s.last != nil && s.last != bottom {
		s.remove(s.last)
	}
}

// oddMatch is the rule of three: when either run can both open and close,
// the sum of the run lengths must not be a multiple of 3 unless both are.
func oddMatch(opener, closer *delimiter) bool {
	return (opener.canClose || closer.canOpen) &&
		(opener.length+closer.length)%3 == 0 &&
		(opener.length%3 != 0 || closer.length%3 != 0)
}

// match wraps the nodes between opener and closer in an emphasis node and
// returns the closer to continue from.
func (s *scanner) match(opener, closer *delimiter) *delimiter {
	n, kind := 1, mdast.NodeEmphasis
	if opener.count >= 2 && closer.count >= 2 {
		n, kind = 2, mdast.NodeStrong
	}
	opener.count -= n
	closer.count -= n

	on, cn := opener.node, closer.node
	on.Inline.Text = on.Inline.Text[:opener.count]
	on.Range.EndOffset -= n
	cn.Inline.Text = cn.Inline.Text[n:]
	cn.Range.StartOffset += n

	emph := mdast.NewNode(kind)
	mdast.SetRange(emph, on.Range.EndOffset, cn.Range.StartOffset)
	mdast.MoveChildren(emph, on, cn)
	mdast.InsertAfter(on, emph)

	opener.next = closer
	closer.prev = opener

	if opener.count == 0 {
		mdast.RemoveChild(on.Parent, on)
		s.remove(opener)
	}
	if closer.count == 0 {
		next := closer.next
		mdast.RemoveChild(cn.Parent, cn)
		s.remove(closer)
		return next
	}
	return closer
}
