package style

import "image/color"

// PrimitiveType enumerates the low-level style objects a host text buffer
// understands.
type PrimitiveType uint8

// Primitive types.
const (
	PrimForeground PrimitiveType = iota
	PrimRelativeSize
	PrimBold
	PrimItalic
	PrimUnderline
	PrimTypeface
	PrimClickable
	PrimImage
	PrimLeadingMargin
	PrimQuoteStripe
	PrimSpacing
)

var primitiveNames = [...]string{
	PrimForeground:    "foreground",
	PrimRelativeSize:  "relative_size",
	PrimBold:          "bold",
	PrimItalic:        "italic",
	PrimUnderline:     "underline",
	PrimTypeface:      "typeface",
	PrimClickable:     "clickable",
	PrimImage:         "image",
	PrimLeadingMargin: "leading_margin",
	PrimQuoteStripe:   "quote_stripe",
	PrimSpacing:       "spacing",
}

func (t PrimitiveType) String() string {
	if int(t) < len(primitiveNames) {
		return primitiveNames[t]
	}
	return "unknown"
}

// Primitive is one low-level style object. Only the fields relevant to Type
// are set.
type Primitive struct {
	Type PrimitiveType

	Color    color.Color
	Scale    float64
	Typeface Typeface
	Width    int
	Before   int
	After    int

	// URI is the link target or image source of clickable primitives.
	URI     string
	Handler LinkHandler
}
