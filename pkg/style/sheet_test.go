package style_test

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdspan/pkg/style"
)

func TestConfigure_Defaults(t *testing.T) {
	t.Parallel()

	sheet, err := style.Configure(style.DefaultOptions())
	require.NoError(t, err)

	assert.InDelta(t, 1.7, sheet.HeadingScale(1), 1e-9)
	assert.InDelta(t, 1.5, sheet.HeadingScale(2), 1e-9)
	assert.InDelta(t, 1.25, sheet.HeadingScale(6), 1e-9)
	assert.InDelta(t, 1.25, sheet.HeadingScale(9), 1e-9, "levels clamp to 6")
	assert.Nil(t, sheet.LinkHandler())

	base := sheet.Base()
	assert.Equal(t, "#000000", style.Hex(base.Foreground))
	assert.InDelta(t, 17.0, base.Size, 1e-9)
}

func TestConfigure_PartialHeadingScale(t *testing.T) {
	t.Parallel()

	opts := style.DefaultOptions()
	opts.HeadingScale = map[int]float64{1: 2}
	sheet, err := style.Configure(opts)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, sheet.HeadingScale(1), 1e-9)
	assert.InDelta(t, 1.5, sheet.HeadingScale(2), 1e-9)
	assert.Len(t, sheet.Options().HeadingScale, 6)
}

func TestConfigure_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(o *style.Options)
		option string
	}{
		{"nil base color", func(o *style.Options) { o.BaseColor = nil }, "BaseColor"},
		{"nil link color", func(o *style.Options) { o.LinkColor = nil }, "LinkColor"},
		{"zero size", func(o *style.Options) { o.BaseSize = 0 }, "BaseSize"},
		{"negative size", func(o *style.Options) { o.BaseSize = -3 }, "BaseSize"},
		{"fractional size", func(o *style.Options) { o.BaseSize = 0.5 }, "BaseSize"},
		{"fractional size above one", func(o *style.Options) { o.BaseSize = 16.5 }, "BaseSize"},
		{"heading level", func(o *style.Options) { o.HeadingScale = map[int]float64{7: 1} }, "HeadingScale"},
		{"heading scale", func(o *style.Options) { o.HeadingScale = map[int]float64{1: 0} }, "HeadingScale"},
		{"negative spacing", func(o *style.Options) { o.QuoteGapWidth = -1 }, "QuoteGapWidth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := style.DefaultOptions()
			tt.mutate(&opts)

			sheet, err := style.Configure(opts)
			require.Error(t, err)
			assert.Nil(t, sheet)
			assert.ErrorIs(t, err, style.ErrInvalidOption)

			var optErr *style.OptionError
			require.True(t, errors.As(err, &optErr))
			assert.Equal(t, tt.option, optErr.Option)
			assert.Contains(t, err.Error(), tt.option)
		})
	}
}

func TestConfigure_JoinsAllFailures(t *testing.T) {
	t.Parallel()

	err := style.Options{}.Validate()
	require.Error(t, err)
	for _, name := range []string{"BaseColor", "CodeColor", "QuoteColor", "ListPrefixColor", "LinkColor", "BaseSize"} {
		assert.Contains(t, err.Error(), name)
	}
}

func TestStyleSheet_Attributes(t *testing.T) {
	t.Parallel()

	sheet, err := style.Configure(style.DefaultOptions())
	require.NoError(t, err)

	doc := sheet.Attributes(style.Attributes{}, style.KindDocument, 0)
	assert.True(t, doc.Equal(sheet.Base()))

	para := sheet.Attributes(doc, style.KindParagraph, 0)
	assert.Equal(t, 6, para.Layout.SpacingBefore)

	strong := sheet.Attributes(para, style.KindStrong, 0)
	assert.True(t, strong.Bold)
	assert.Zero(t, strong.Layout.SpacingBefore, "layout is not inherited")

	text := sheet.Attributes(strong, style.KindText, 0)
	assert.True(t, text.Bold, "character attributes are inherited")

	heading := sheet.Attributes(doc, style.KindHeading, 2)
	assert.InDelta(t, 17*1.5, heading.Size, 1e-9)
	assert.True(t, heading.Bold)

	prefix := sheet.Attributes(heading, style.KindListPrefix, 0)
	assert.InDelta(t, 17.0, prefix.Size, 1e-9)
	assert.Equal(t, "#888888", style.Hex(prefix.Foreground))

	code := sheet.Attributes(doc, style.KindCode, 0)
	assert.Equal(t, style.Monospace, code.Typeface)

	link := sheet.Attributes(doc, style.KindLink, 0)
	assert.Equal(t, "#0000ff", style.Hex(link.Foreground))
	assert.True(t, link.Underline)

	quote := sheet.Attributes(doc, style.KindQuote, 0)
	assert.Equal(t, 18, quote.Layout.LeadingMargin)
	assert.Equal(t, 2, quote.Layout.StripeWidth)

	item := sheet.Attributes(doc, style.KindListItem, 1)
	assert.Equal(t, 32, item.Layout.LeadingMargin)
}

func TestStyleSheet_Primitives(t *testing.T) {
	t.Parallel()

	var got string
	opts := style.DefaultOptions()
	opts.LinkActivationHandler = func(uri string, _, _ int) { got = uri }
	sheet, err := style.Configure(opts)
	require.NoError(t, err)

	link := sheet.Primitives(style.KindLink, 0, "http://x")
	require.NotEmpty(t, link)
	assert.Equal(t, style.PrimClickable, link[0].Type)
	assert.Equal(t, "http://x", link[0].URI)
	link[0].Handler(link[0].URI, 0, 1)
	assert.Equal(t, "http://x", got)

	image := sheet.Primitives(style.KindImage, 0, "cat.png")
	assert.Equal(t, style.PrimImage, image[0].Type)

	assert.Len(t, sheet.Primitives(style.KindListItem, 0, ""), 1)
	assert.Len(t, sheet.Primitives(style.KindListItem, 1, ""), 2)
	assert.Empty(t, sheet.Primitives(style.KindText, 0, ""))
	assert.Equal(t, style.PrimRelativeSize, sheet.Primitives(style.KindHeading, 1, "")[0].Type)
}

func TestFromTheme(t *testing.T) {
	t.Parallel()

	red := color.RGBA{R: 0xff, A: 0xff}
	theme := style.ThemeMap{style.ThemeText: red, style.ThemeLink: nil}

	opts := style.FromTheme(theme, style.DefaultOptions())
	assert.Equal(t, "#ff0000", style.Hex(opts.BaseColor))
	assert.Equal(t, "#0000ff", style.Hex(opts.LinkColor), "nil theme colors are ignored")

	calls := 0
	fn := style.ThemeFunc(func(string) (color.Color, bool) {
		calls++
		return nil, false
	})
	sheet, err := style.ConfigureFromTheme(fn, nil)
	require.NoError(t, err)
	assert.NotNil(t, sheet)
	assert.Equal(t, 5, calls)

	assert.Equal(t, style.DefaultOptions().BaseSize, style.FromTheme(nil, style.DefaultOptions()).BaseSize)
}

func TestHex(t *testing.T) {
	t.Parallel()

	c, err := style.ParseHex("#336699")
	require.NoError(t, err)
	assert.Equal(t, "#336699", style.Hex(c))

	short, err := style.ParseHex("#fff")
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", style.Hex(short))

	_, err = style.ParseHex("blue")
	require.Error(t, err)

	assert.Empty(t, style.Hex(nil))
}

func TestKind(t *testing.T) {
	t.Parallel()

	for k := style.KindDocument; k <= style.KindLineBreak; k++ {
		parsed, ok := style.ParseKind(k.String())
		require.True(t, ok)
		assert.Equal(t, k, parsed)
	}
	_, ok := style.ParseKind("nope")
	assert.False(t, ok)

	assert.True(t, style.KindLink.IsLive())
	assert.True(t, style.KindImage.IsLive())
	assert.False(t, style.KindText.IsLive())
	assert.True(t, style.KindQuote.IsBlock())
	assert.False(t, style.KindCode.IsBlock())
}
