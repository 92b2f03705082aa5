package style

import "fmt"

// StyleSheet maps construct kinds to attributes and host primitives.
// It is immutable after Configure and safe to share between renders.
//
//nolint:revive // StyleSheet reads better than Sheet at call sites.
type StyleSheet struct {
	opts  Options
	scale [7]float64
}

// Configure validates opts and builds a StyleSheet. The only error class is
// ErrInvalidOption.
func Configure(opts Options) (*StyleSheet, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("configure style sheet: %w", err)
	}

	sheet := &StyleSheet{opts: opts}
	defaults := DefaultHeadingScale()
	for level := 1; level <= 6; level++ {
		if s, ok := opts.HeadingScale[level]; ok {
			sheet.scale[level] = s
		} else {
			sheet.scale[level] = defaults[level]
		}
	}
	sheet.opts.HeadingScale = nil
	return sheet, nil
}

// Options returns a copy of the options the sheet was built from, with the
// effective heading scale filled in.
func (s *StyleSheet) Options() Options {
	opts := s.opts
	opts.HeadingScale = make(map[int]float64, 6)
	for level := 1; level <= 6; level++ {
		opts.HeadingScale[level] = s.scale[level]
	}
	return opts
}

// HeadingScale returns the size multiplier for a heading level. Levels
// outside 1-6 are clamped.
func (s *StyleSheet) HeadingScale(level int) float64 {
	return s.scale[min(max(level, 1), 6)]
}

// LinkHandler returns the configured activation handler, possibly nil.
func (s *StyleSheet) LinkHandler() LinkHandler {
	return s.opts.LinkActivationHandler
}

// Base returns the document-level attributes.
func (s *StyleSheet) Base() Attributes {
	return Attributes{
		Foreground: s.opts.BaseColor,
		Size:       s.opts.BaseSize,
	}
}

// Attributes derives the effective attributes of a range of the given kind
// nested in a range with attributes parent. level is the heading level for
// headings and the nesting depth for list items.
func (s *StyleSheet) Attributes(parent Attributes, kind Kind, level int) Attributes {
	attrs := parent
	attrs.Layout = Layout{}
	o := s.opts

	switch kind {
	case KindDocument:
		attrs = s.Base()
	case KindParagraph:
		attrs.Layout.SpacingBefore = o.ParagraphSpacingBefore
		attrs.Layout.SpacingAfter = o.ParagraphSpacingAfter
	case KindHeading:
		attrs.Size = o.BaseSize * s.HeadingScale(level)
		attrs.Bold = true
	case KindQuote:
		attrs.Foreground = o.QuoteColor
		attrs.Layout = Layout{
			SpacingBefore: o.QuoteSpacingBefore,
			SpacingAfter:  o.QuoteSpacingAfter,
			LeadingMargin: o.QuoteStripeWidth + o.QuoteGapWidth,
			StripeWidth:   o.QuoteStripeWidth,
			StripeColor:   o.QuoteColor,
		}
	case KindListItem:
		attrs.Layout = Layout{
			SpacingBefore: o.ListSpacingBefore,
			SpacingAfter:  o.ListSpacingAfter,
			LeadingMargin: level * o.ListIndentWidth,
		}
	case KindListPrefix:
		attrs.Foreground = o.ListPrefixColor
		attrs.Size = o.BaseSize
	case KindCodeBlock:
		attrs.Foreground = o.CodeColor
		attrs.Typeface = Monospace
		attrs.Layout.LeadingMargin = o.CodeBlockIndentation
	case KindCode:
		attrs.Foreground = o.CodeColor
		attrs.Typeface = Monospace
	case KindEmphasis:
		attrs.Italic = true
	case KindStrong:
		attrs.Bold = true
	case KindLink, KindImage:
		attrs.Foreground = o.LinkColor
		attrs.Underline = true
	case KindText, KindLineBreak, KindThematicBreak:
	}
	return attrs
}

// Primitives returns the host style objects a range of kind applies on top
// of its enclosing ranges. uri is the payload of link and image ranges.
func (s *StyleSheet) Primitives(kind Kind, level int, uri string) []Primitive {
	o := s.opts

	switch kind {
	case KindDocument:
		return []Primitive{
			{Type: PrimForeground, Color: o.BaseColor},
		}
	case KindParagraph:
		return []Primitive{
			{Type: PrimSpacing, Before: o.ParagraphSpacingBefore, After: o.ParagraphSpacingAfter},
		}
	case KindHeading:
		return []Primitive{
			{Type: PrimRelativeSize, Scale: s.HeadingScale(level)},
			{Type: PrimBold},
		}
	case KindQuote:
		return []Primitive{
			{Type: PrimQuoteStripe, Color: o.QuoteColor, Width: o.QuoteStripeWidth},
			{Type: PrimLeadingMargin, Width: o.QuoteStripeWidth + o.QuoteGapWidth},
			{Type: PrimForeground, Color: o.QuoteColor},
			{Type: PrimSpacing, Before: o.QuoteSpacingBefore, After: o.QuoteSpacingAfter},
		}
	case KindListItem:
		prims := []Primitive{
			{Type: PrimSpacing, Before: o.ListSpacingBefore, After: o.ListSpacingAfter},
		}
		if level > 0 {
			prims = append(prims, Primitive{Type: PrimLeadingMargin, Width: level * o.ListIndentWidth})
		}
		return prims
	case KindListPrefix:
		return []Primitive{
			{Type: PrimForeground, Color: o.ListPrefixColor},
			{Type: PrimRelativeSize, Scale: 1},
		}
	case KindCodeBlock:
		prims := []Primitive{
			{Type: PrimTypeface, Typeface: Monospace},
			{Type: PrimForeground, Color: o.CodeColor},
		}
		if o.CodeBlockIndentation > 0 {
			prims = append(prims, Primitive{Type: PrimLeadingMargin, Width: o.CodeBlockIndentation})
		}
		return prims
	case KindCode:
		return []Primitive{
			{Type: PrimTypeface, Typeface: Monospace},
			{Type: PrimForeground, Color: o.CodeColor},
		}
	case KindEmphasis:
		return []Primitive{{Type: PrimItalic}}
	case KindStrong:
		return []Primitive{{Type: PrimBold}}
	case KindLink:
		return []Primitive{
			{Type: PrimClickable, URI: uri, Handler: o.LinkActivationHandler},
			{Type: PrimForeground, Color: o.LinkColor},
			{Type: PrimUnderline},
		}
	case KindImage:
		return []Primitive{
			{Type: PrimImage, URI: uri},
			{Type: PrimClickable, URI: uri, Handler: o.LinkActivationHandler},
			{Type: PrimForeground, Color: o.LinkColor},
		}
	default:
		return nil
	}
}
