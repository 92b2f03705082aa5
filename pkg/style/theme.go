package style

import "image/color"

// Named colors a Theme may supply.
const (
	ThemeText       = "text"
	ThemeCode       = "code"
	ThemeQuote      = "quote"
	ThemeListPrefix = "listPrefix"
	ThemeLink       = "link"
)

// Theme is the host's source of named colors. The renderer only reads a
// theme when a style sheet is configured.
type Theme interface {
	Color(name string) (color.Color, bool)
}

// ThemeFunc adapts a function to Theme.
type ThemeFunc func(name string) (color.Color, bool)

// Color implements Theme.
func (f ThemeFunc) Color(name string) (color.Color, bool) {
	return f(name)
}

// ThemeMap is a Theme backed by a map.
type ThemeMap map[string]color.Color

// Color implements Theme.
func (m ThemeMap) Color(name string) (color.Color, bool) {
	c, ok := m[name]
	return c, ok && c != nil
}

// FromTheme overrides the colors in base with those theme supplies.
// A nil theme returns base unchanged.
func FromTheme(theme Theme, base Options) Options {
	if theme == nil {
		return base
	}
	for name, dst := range map[string]*color.Color{
		ThemeText:       &base.BaseColor,
		ThemeCode:       &base.CodeColor,
		ThemeQuote:      &base.QuoteColor,
		ThemeListPrefix: &base.ListPrefixColor,
		ThemeLink:       &base.LinkColor,
	} {
		if c, ok := theme.Color(name); ok {
			*dst = c
		}
	}
	return base
}

// ConfigureFromTheme is Configure over DefaultOptions with theme colors
// applied and handler installed.
func ConfigureFromTheme(theme Theme, handler LinkHandler) (*StyleSheet, error) {
	opts := FromTheme(theme, DefaultOptions())
	opts.LinkActivationHandler = handler
	return Configure(opts)
}
