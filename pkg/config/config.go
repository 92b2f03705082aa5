// Package config defines the serializable configuration of mdspan.
// These are plain data types; discovery and layering live in
// internal/configloader.
package config

// OutputFormat selects how rendered buffers are printed.
type OutputFormat string

const (
	FormatText      OutputFormat = "text"
	FormatRanges    OutputFormat = "ranges"
	FormatJSON      OutputFormat = "json"
	FormatReference OutputFormat = "reference"
)

// IsValid reports whether f is a known format.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatRanges, FormatJSON, FormatReference:
		return true
	default:
		return false
	}
}

// ColorMode controls terminal colors.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid reports whether m is a known mode.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// StyleConfig mirrors style.Options in file form. Colors are hex strings
// and unset fields keep their defaults.
type StyleConfig struct {
	BaseColor       string  `yaml:"base_color,omitempty"`
	BaseSize        float64 `yaml:"base_size,omitempty"`
	CodeColor       string  `yaml:"code_color,omitempty"`
	QuoteColor      string  `yaml:"quote_color,omitempty"`
	ListPrefixColor string  `yaml:"list_prefix_color,omitempty"`
	LinkColor       string  `yaml:"link_color,omitempty"`

	HeadingScale map[int]float64 `yaml:"heading_scale,omitempty"`

	ParagraphSpacingBefore *int `yaml:"paragraph_spacing_before,omitempty"`
	ParagraphSpacingAfter  *int `yaml:"paragraph_spacing_after,omitempty"`
	QuoteStripeWidth       *int `yaml:"quote_stripe_width,omitempty"`
	QuoteGapWidth          *int `yaml:"quote_gap_width,omitempty"`
	QuoteSpacingBefore     *int `yaml:"quote_spacing_before,omitempty"`
	QuoteSpacingAfter      *int `yaml:"quote_spacing_after,omitempty"`
	ListPrefixGapWidth     *int `yaml:"list_prefix_gap_width,omitempty"`
	ListIndentWidth        *int `yaml:"list_indent_width,omitempty"`
	ListSpacingBefore      *int `yaml:"list_spacing_before,omitempty"`
	ListSpacingAfter       *int `yaml:"list_spacing_after,omitempty"`
	CodeBlockIndentation   *int `yaml:"code_block_indentation,omitempty"`
}

// Config is the root configuration.
type Config struct {
	Style StyleConfig `yaml:"style"`

	// DetectLanguage tags untagged fenced code blocks by content.
	DetectLanguage bool `yaml:"detect_language"`

	// Color is the terminal color mode.
	Color ColorMode `yaml:"color,omitempty"`

	// Ignore holds glob patterns skipped during file discovery.
	Ignore []string `yaml:"ignore,omitempty"`

	// CLI-level options, not persisted.

	Format OutputFormat `yaml:"-"`

	// Jobs is the number of render workers; 0 means GOMAXPROCS.
	Jobs int `yaml:"-"`

	// Width wraps the text preview; 0 means the terminal width.
	Width int `yaml:"-"`
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		Color:  ColorAuto,
		Format: FormatText,
	}
}
