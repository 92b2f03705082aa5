package style

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// LinkHandler is invoked when the host activates a link or image range.
// start and end are the range's current rune offsets.
type LinkHandler func(uri string, start, end int)

// Options are the inputs to Configure. Colors are opaque color values and
// sizes are in host units.
type Options struct {
	BaseColor       color.Color
	BaseSize        float64
	CodeColor       color.Color
	QuoteColor      color.Color
	ListPrefixColor color.Color
	LinkColor       color.Color

	// LinkActivationHandler may be nil, in which case activation is a no-op.
	LinkActivationHandler LinkHandler

	// HeadingScale maps heading levels 1-6 to a multiple of BaseSize.
	// Missing levels use the default scale.
	HeadingScale map[int]float64

	ParagraphSpacingBefore int
	ParagraphSpacingAfter  int

	QuoteStripeWidth     int
	QuoteGapWidth        int
	QuoteSpacingBefore   int
	QuoteSpacingAfter    int
	ListPrefixGapWidth   int
	ListIndentWidth      int
	ListSpacingBefore    int
	ListSpacingAfter     int
	CodeBlockIndentation int
}

// Default colors, matching the stock light theme.
var (
	DefaultBaseColor = color.Color(color.Black)
	DefaultGray      = color.Color(color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff})
	DefaultLinkColor = color.Color(color.RGBA{B: 0xff, A: 0xff})
)

// DefaultBaseSize is the stock body text size.
const DefaultBaseSize = 17

// DefaultHeadingScale returns the default heading size multipliers.
func DefaultHeadingScale() map[int]float64 {
	return map[int]float64{1: 1.7, 2: 1.5, 3: 1.25, 4: 1.25, 5: 1.25, 6: 1.25}
}

// DefaultOptions returns the stock style options.
func DefaultOptions() Options {
	return Options{
		BaseColor:              DefaultBaseColor,
		BaseSize:               DefaultBaseSize,
		CodeColor:              DefaultGray,
		QuoteColor:             DefaultGray,
		ListPrefixColor:        DefaultGray,
		LinkColor:              DefaultLinkColor,
		HeadingScale:           DefaultHeadingScale(),
		ParagraphSpacingBefore: 6,
		ParagraphSpacingAfter:  6,
		QuoteStripeWidth:       2,
		QuoteGapWidth:          16,
		QuoteSpacingBefore:     16,
		QuoteSpacingAfter:      16,
		ListPrefixGapWidth:     8,
		ListIndentWidth:        32,
		ListSpacingBefore:      4,
		ListSpacingAfter:       4,
		CodeBlockIndentation:   0,
	}
}

// ErrInvalidOption is the error class returned by Configure.
var ErrInvalidOption = errors.New("invalid style option")

// OptionError describes one rejected option.
type OptionError struct {
	Option string
	Value  any
	Reason string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("style option %s (%v): %s", e.Option, e.Value, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidOption) hold.
func (e *OptionError) Unwrap() error {
	return ErrInvalidOption
}

// Validate checks every option and joins all failures.
func (o Options) Validate() error {
	var errs []error
	add := func(option string, value any, reason string) {
		errs = append(errs, &OptionError{Option: option, Value: value, Reason: reason})
	}

	colors := []struct {
		name string
		c    color.Color
	}{
		{"BaseColor", o.BaseColor},
		{"CodeColor", o.CodeColor},
		{"QuoteColor", o.QuoteColor},
		{"ListPrefixColor", o.ListPrefixColor},
		{"LinkColor", o.LinkColor},
	}
	for _, c := range colors {
		if c.c == nil {
			add(c.name, nil, "color is required")
		}
	}

	if o.BaseSize <= 0 {
		add("BaseSize", o.BaseSize, "must be positive")
	} else if o.BaseSize != math.Trunc(o.BaseSize) {
		add("BaseSize", o.BaseSize, "must be a whole number")
	}

	for level, scale := range o.HeadingScale {
		if level < 1 || level > 6 {
			add("HeadingScale", level, "heading level must be between 1 and 6")
		} else if scale <= 0 {
			add("HeadingScale", scale, fmt.Sprintf("scale for level %d must be positive", level))
		}
	}

	dims := []struct {
		name string
		v    int
	}{
		{"ParagraphSpacingBefore", o.ParagraphSpacingBefore},
		{"ParagraphSpacingAfter", o.ParagraphSpacingAfter},
		{"QuoteStripeWidth", o.QuoteStripeWidth},
		{"QuoteGapWidth", o.QuoteGapWidth},
		{"QuoteSpacingBefore", o.QuoteSpacingBefore},
		{"QuoteSpacingAfter", o.QuoteSpacingAfter},
		{"ListPrefixGapWidth", o.ListPrefixGapWidth},
		{"ListIndentWidth", o.ListIndentWidth},
		{"ListSpacingBefore", o.ListSpacingBefore},
		{"ListSpacingAfter", o.ListSpacingAfter},
		{"CodeBlockIndentation", o.CodeBlockIndentation},
	}
	for _, d := range dims {
		if d.v < 0 {
			add(d.name, d.v, "must not be negative")
		}
	}

	return errors.Join(errs...)
}
