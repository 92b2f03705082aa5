package config

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/yaklabco/mdspan/pkg/style"
)

// spacing names one optional integer style field.
type spacing struct {
	key   string
	field **int
	dst   func(*style.Options) *int
}

func (s *StyleConfig) spacings() []spacing {
	return []spacing{
		{"paragraph_spacing_before", &s.ParagraphSpacingBefore, func(o *style.Options) *int { return &o.ParagraphSpacingBefore }},
		{"paragraph_spacing_after", &s.ParagraphSpacingAfter, func(o *style.Options) *int { return &o.ParagraphSpacingAfter }},
		{"quote_stripe_width", &s.QuoteStripeWidth, func(o *style.Options) *int { return &o.QuoteStripeWidth }},
		{"quote_gap_width", &s.QuoteGapWidth, func(o *style.Options) *int { return &o.QuoteGapWidth }},
		{"quote_spacing_before", &s.QuoteSpacingBefore, func(o *style.Options) *int { return &o.QuoteSpacingBefore }},
		{"quote_spacing_after", &s.QuoteSpacingAfter, func(o *style.Options) *int { return &o.QuoteSpacingAfter }},
		{"list_prefix_gap_width", &s.ListPrefixGapWidth, func(o *style.Options) *int { return &o.ListPrefixGapWidth }},
		{"list_indent_width", &s.ListIndentWidth, func(o *style.Options) *int { return &o.ListIndentWidth }},
		{"list_spacing_before", &s.ListSpacingBefore, func(o *style.Options) *int { return &o.ListSpacingBefore }},
		{"list_spacing_after", &s.ListSpacingAfter, func(o *style.Options) *int { return &o.ListSpacingAfter }},
		{"code_block_indentation", &s.CodeBlockIndentation, func(o *style.Options) *int { return &o.CodeBlockIndentation }},
	}
}

// colors lists the hex color fields with their YAML keys.
func (s *StyleConfig) colors() []struct {
	key   string
	value string
	dst   func(*style.Options) *color.Color
} {
	return []struct {
		key   string
		value string
		dst   func(*style.Options) *color.Color
	}{
		{"base_color", s.BaseColor, func(o *style.Options) *color.Color { return &o.BaseColor }},
		{"code_color", s.CodeColor, func(o *style.Options) *color.Color { return &o.CodeColor }},
		{"quote_color", s.QuoteColor, func(o *style.Options) *color.Color { return &o.QuoteColor }},
		{"list_prefix_color", s.ListPrefixColor, func(o *style.Options) *color.Color { return &o.ListPrefixColor }},
		{"link_color", s.LinkColor, func(o *style.Options) *color.Color { return &o.LinkColor }},
	}
}

// ToStyleOptions overlays the set fields of s on style.DefaultOptions.
// Malformed colors are reported as *style.OptionError; range checks are
// left to style.Configure.
func (s StyleConfig) ToStyleOptions() (style.Options, error) {
	opts := style.DefaultOptions()

	var errs []error
	for _, c := range s.colors() {
		if c.value == "" {
			continue
		}
		parsed, err := style.ParseHex(c.value)
		if err != nil {
			errs = append(errs, &style.OptionError{Option: c.key, Value: c.value, Reason: "not a hex color"})
			continue
		}
		*c.dst(&opts) = parsed
	}
	if err := errors.Join(errs...); err != nil {
		return opts, fmt.Errorf("style config: %w", err)
	}

	if s.BaseSize != 0 {
		opts.BaseSize = s.BaseSize
	}
	for level, scale := range s.HeadingScale {
		opts.HeadingScale[level] = scale
	}
	for _, sp := range s.spacings() {
		if *sp.field != nil {
			*sp.dst(&opts) = **sp.field
		}
	}
	return opts, nil
}

// FromStyleOptions is the inverse of ToStyleOptions, writing every field.
func FromStyleOptions(opts style.Options) StyleConfig {
	s := StyleConfig{
		BaseColor:       style.Hex(opts.BaseColor),
		BaseSize:        opts.BaseSize,
		CodeColor:       style.Hex(opts.CodeColor),
		QuoteColor:      style.Hex(opts.QuoteColor),
		ListPrefixColor: style.Hex(opts.ListPrefixColor),
		LinkColor:       style.Hex(opts.LinkColor),
		HeadingScale:    make(map[int]float64, len(opts.HeadingScale)),
	}
	for level, scale := range opts.HeadingScale {
		s.HeadingScale[level] = scale
	}
	for _, sp := range s.spacings() {
		v := *sp.dst(&opts)
		*sp.field = &v
	}
	return s
}
