package render

import "github.com/yaklabco/mdspan/pkg/parser"

// Option configures Render.
type Option func(*config)

type config struct {
	parse []parser.Option
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithLanguageDetection tags untagged fenced code blocks with a guessed
// language.
func WithLanguageDetection() Option {
	return WithParserOptions(parser.WithLanguageDetection())
}

// WithParserOptions forwards opts to the parser.
func WithParserOptions(opts ...parser.Option) Option {
	return func(c *config) {
		c.parse = append(c.parse, opts...)
	}
}
