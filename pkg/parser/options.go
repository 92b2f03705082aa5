package parser

import "github.com/yaklabco/mdspan/pkg/langdetect"

// Option configures parsing.
type Option func(*config)

type config struct {
	detect func(content []byte) string
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

// WithLanguageDetection tags fenced code blocks that have no info string
// with a language guessed from their content.
func WithLanguageDetection() Option {
	return WithLanguageDetector(langdetect.Guess)
}

// WithLanguageDetector is like WithLanguageDetection but uses detect.
// detect returns an empty string when it has no answer.
func WithLanguageDetector(detect func(content []byte) string) Option {
	return func(c *config) {
		c.detect = detect
	}
}
