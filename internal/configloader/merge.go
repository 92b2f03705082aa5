package configloader

import (
	"maps"

	"github.com/yaklabco/mdspan/pkg/config"
)

// merge layers override on base:
//   - strings and numbers replace when non-zero
//   - DetectLanguage can only be switched on
//   - heading scales merge per level
//   - optional spacings replace when set
//   - Ignore replaces when non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()
	result.Style = mergeStyle(result.Style, override.Style)

	if override.DetectLanguage {
		result.DetectLanguage = true
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	return result
}

func mergeStyle(base, override config.StyleConfig) config.StyleConfig {
	out := base
	for _, f := range []struct {
		dst *string
		src string
	}{
		{&out.BaseColor, override.BaseColor},
		{&out.CodeColor, override.CodeColor},
		{&out.QuoteColor, override.QuoteColor},
		{&out.ListPrefixColor, override.ListPrefixColor},
		{&out.LinkColor, override.LinkColor},
	} {
		if f.src != "" {
			*f.dst = f.src
		}
	}
	if override.BaseSize != 0 {
		out.BaseSize = override.BaseSize
	}
	if override.HeadingScale != nil {
		if out.HeadingScale == nil {
			out.HeadingScale = make(map[int]float64, len(override.HeadingScale))
		}
		maps.Copy(out.HeadingScale, override.HeadingScale)
	}
	for _, f := range []struct {
		dst **int
		src *int
	}{
		{&out.ParagraphSpacingBefore, override.ParagraphSpacingBefore},
		{&out.ParagraphSpacingAfter, override.ParagraphSpacingAfter},
		{&out.QuoteStripeWidth, override.QuoteStripeWidth},
		{&out.QuoteGapWidth, override.QuoteGapWidth},
		{&out.QuoteSpacingBefore, override.QuoteSpacingBefore},
		{&out.QuoteSpacingAfter, override.QuoteSpacingAfter},
		{&out.ListPrefixGapWidth, override.ListPrefixGapWidth},
		{&out.ListIndentWidth, override.ListIndentWidth},
		{&out.ListSpacingBefore, override.ListSpacingBefore},
		{&out.ListSpacingAfter, override.ListSpacingAfter},
		{&out.CodeBlockIndentation, override.CodeBlockIndentation},
	} {
		if f.src != nil {
			v := *f.src
			*f.dst = &v
		}
	}
	return out
}

// MergeAll merges configs in order; later ones win.
func MergeAll(configs ...*config.Config) *config.Config {
	var result *config.Config
	for _, cfg := range configs {
		result = merge(result, cfg)
	}
	return result
}
