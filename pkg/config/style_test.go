package config_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdspan/pkg/config"
	"github.com/yaklabco/mdspan/pkg/style"
)

func TestToStyleOptions(t *testing.T) {
	t.Parallel()

	t.Run("empty keeps defaults", func(t *testing.T) {
		t.Parallel()

		opts, err := config.StyleConfig{}.ToStyleOptions()
		require.NoError(t, err)
		assert.Equal(t, style.DefaultOptions().BaseSize, opts.BaseSize)
		assert.Equal(t, style.DefaultLinkColor, opts.LinkColor)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Parallel()

		opts, err := config.StyleConfig{
			LinkColor:            "#ff0000",
			BaseSize:             12,
			HeadingScale:         map[int]float64{1: 3},
			CodeBlockIndentation: intPtr(10),
		}.ToStyleOptions()
		require.NoError(t, err)

		assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, opts.LinkColor)
		assert.InDelta(t, 12.0, opts.BaseSize, 1e-9)
		assert.InDelta(t, 3.0, opts.HeadingScale[1], 1e-9)
		assert.InDelta(t, 1.5, opts.HeadingScale[2], 1e-9)
		assert.Equal(t, 10, opts.CodeBlockIndentation)

		_, err = style.Configure(opts)
		require.NoError(t, err)
	})

	t.Run("bad colors", func(t *testing.T) {
		t.Parallel()

		_, err := config.StyleConfig{BaseColor: "black", QuoteColor: "#12"}.ToStyleOptions()
		require.ErrorIs(t, err, style.ErrInvalidOption)
		assert.Contains(t, err.Error(), "base_color")
		assert.Contains(t, err.Error(), "quote_color")
	})
}

func TestFromStyleOptions(t *testing.T) {
	t.Parallel()

	defaults := style.DefaultOptions()
	sc := config.FromStyleOptions(defaults)
	assert.Equal(t, "#0000ff", sc.LinkColor)
	require.NotNil(t, sc.ListIndentWidth)
	assert.Equal(t, defaults.ListIndentWidth, *sc.ListIndentWidth)

	back, err := sc.ToStyleOptions()
	require.NoError(t, err)
	assert.Equal(t, defaults.ListIndentWidth, back.ListIndentWidth)
	assert.Equal(t, style.Hex(defaults.QuoteColor), style.Hex(back.QuoteColor))
}
