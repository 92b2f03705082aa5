package style

import "image/color"

// Typeface selects the font family class.
type Typeface uint8

// Typefaces.
const (
	Proportional Typeface = iota
	Monospace
)

func (t Typeface) String() string {
	if t == Monospace {
		return "monospace"
	}
	return "proportional"
}

// Attributes are the effective visual attributes of a styled range.
// Character attributes are inherited from the enclosing range; the Layout
// belongs to the range alone.
type Attributes struct {
	Foreground color.Color
	Size       float64
	Bold       bool
	Italic     bool
	Underline  bool
	Typeface   Typeface

	Layout Layout
}

// Layout holds paragraph-level attributes of block ranges.
type Layout struct {
	SpacingBefore int
	SpacingAfter  int
	LeadingMargin int

	// StripeWidth and StripeColor describe a quote stripe drawn in the margin.
	StripeWidth int
	StripeColor color.Color
}

// Equal compares attributes, treating colors as equal when their RGBA
// values match.
func (a Attributes) Equal(b Attributes) bool {
	return SameColor(a.Foreground, b.Foreground) &&
		a.Size == b.Size &&
		a.Bold == b.Bold &&
		a.Italic == b.Italic &&
		a.Underline == b.Underline &&
		a.Typeface == b.Typeface &&
		a.Layout.SpacingBefore == b.Layout.SpacingBefore &&
		a.Layout.SpacingAfter == b.Layout.SpacingAfter &&
		a.Layout.LeadingMargin == b.Layout.LeadingMargin &&
		a.Layout.StripeWidth == b.Layout.StripeWidth &&
		SameColor(a.Layout.StripeColor, b.Layout.StripeColor)
}

// SameColor reports whether a and b have equal RGBA values. Two nil colors
// are the same.
func SameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
