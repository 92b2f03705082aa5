package mdast

// SourceRange represents a byte range in the source content.
type SourceRange struct {
	// StartOffset is the byte index where the range begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the range ends (exclusive).
	EndOffset int
}

// Len returns the length of the range in bytes.
func (r SourceRange) Len() int {
	return r.EndOffset - r.StartOffset
}

// IsEmpty returns true if the range has zero length.
func (r SourceRange) IsEmpty() bool {
	return r.StartOffset == r.EndOffset
}

// Contains returns true if the given offset is within this range.
func (r SourceRange) Contains(offset int) bool {
	return offset >= r.StartOffset && offset < r.EndOffset
}

// Position represents a 1-based line and column.
type Position struct {
	Line   int
	Column int
}

// IsValid returns true if this position has valid (positive) values.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// StartPosition returns the line/column where n begins in src.
func (n *Node) StartPosition(src *Source) Position {
	if src == nil {
		return Position{}
	}
	line, col := src.LineAt(n.Range.StartOffset)
	return Position{Line: line, Column: col}
}

// Text returns the source bytes covered by n.
// Returns nil if the range does not fit src.
func (n *Node) Text(src *Source) []byte {
	if src == nil || n.Range.EndOffset > len(src.Content) || n.Range.StartOffset > n.Range.EndOffset {
		return nil
	}
	return src.Content[n.Range.StartOffset:n.Range.EndOffset]
}
