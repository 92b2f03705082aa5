package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdspan/pkg/config"
)

func intPtr(v int) *int { return &v }

func TestConfigClone(t *testing.T) {
	t.Parallel()

	t.Run("nil config returns nil", func(t *testing.T) {
		t.Parallel()

		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("deep copies style and ignore", func(t *testing.T) {
		t.Parallel()

		original := &config.Config{
			Style: config.StyleConfig{
				HeadingScale:     map[int]float64{1: 2},
				QuoteStripeWidth: intPtr(4),
			},
			Ignore: []string{"vendor/**"},
			Format: config.FormatJSON,
			Jobs:   3,
		}

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.Equal(t, original, clone)

		clone.Style.HeadingScale[1] = 9
		*clone.Style.QuoteStripeWidth = 8
		clone.Ignore[0] = "other"

		assert.InDelta(t, 2.0, original.Style.HeadingScale[1], 1e-9)
		assert.Equal(t, 4, *original.Style.QuoteStripeWidth)
		assert.Equal(t, "vendor/**", original.Ignore[0])
	})
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	original := &config.Config{
		Style: config.StyleConfig{
			BaseColor:        "#112233",
			BaseSize:         14,
			HeadingScale:     map[int]float64{2: 1.4},
			ListIndentWidth:  intPtr(20),
			QuoteStripeWidth: intPtr(0),
		},
		DetectLanguage: true,
		Color:          config.ColorNever,
		Format:         config.FormatRanges,
	}

	data, err := original.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "base_color:")
	assert.NotContains(t, string(data), "format", "CLI fields are not persisted")

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, original.Style, parsed.Style)
	assert.True(t, parsed.DetectLanguage)
	assert.Equal(t, config.ColorNever, parsed.Color)
	require.NotNil(t, parsed.Style.QuoteStripeWidth, "explicit zero survives")
	assert.Zero(t, *parsed.Style.QuoteStripeWidth)
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", false},
		{"comments only", "# nothing\n", false},
		{"style block", "style:\n  link_color: '#00f'\n", false},
		{"unknown key", "stlye:\n  base_size: 3\n", true},
		{"wrong type", "style:\n  base_size: big\n", true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := config.FromYAML([]byte(testCase.input))
			if testCase.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, cfg)
		})
	}
}

func TestOutputFormatAndColorMode(t *testing.T) {
	t.Parallel()

	for _, f := range []config.OutputFormat{config.FormatText, config.FormatRanges, config.FormatJSON, config.FormatReference} {
		assert.True(t, f.IsValid(), f)
	}
	assert.False(t, config.OutputFormat("sarif").IsValid())
	assert.True(t, config.ColorAlways.IsValid())
	assert.False(t, config.ColorMode("sometimes").IsValid())
}
