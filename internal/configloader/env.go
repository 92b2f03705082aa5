package configloader

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/mdspan/pkg/config"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MDSPAN_"

// envVar binds one environment variable to a config field.
type envVar struct {
	suffix string
	help   string
	apply  func(cfg *config.Config, value string) error
}

func stringVar(suffix, help string, dst func(*config.Config) *string) envVar {
	return envVar{suffix, help, func(cfg *config.Config, value string) error {
		*dst(cfg) = value
		return nil
	}}
}

//nolint:gochecknoglobals // read-only lookup table
var envVars = []envVar{
	stringVar("BASE_COLOR", "Body text color (#rrggbb)", func(c *config.Config) *string { return &c.Style.BaseColor }),
	stringVar("CODE_COLOR", "Code color (#rrggbb)", func(c *config.Config) *string { return &c.Style.CodeColor }),
	stringVar("QUOTE_COLOR", "Quote color (#rrggbb)", func(c *config.Config) *string { return &c.Style.QuoteColor }),
	stringVar("LIST_PREFIX_COLOR", "List bullet and number color (#rrggbb)", func(c *config.Config) *string { return &c.Style.ListPrefixColor }),
	stringVar("LINK_COLOR", "Link color (#rrggbb)", func(c *config.Config) *string { return &c.Style.LinkColor }),
	{"BASE_SIZE", "Body text size", func(cfg *config.Config, value string) error {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("expected a number: %w", err)
		}
		cfg.Style.BaseSize = f
		return nil
	}},
	{"DETECT_LANGUAGE", "Guess code block languages: true or false", func(cfg *config.Config, value string) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("expected true or false: %w", err)
		}
		cfg.DetectLanguage = b
		return nil
	}},
	{"COLOR", "Terminal colors: auto, always or never", func(cfg *config.Config, value string) error {
		cfg.Color = config.ColorMode(strings.ToLower(value))
		return nil
	}},
	{"FORMAT", "Output format: text, ranges, json or reference", func(cfg *config.Config, value string) error {
		cfg.Format = config.OutputFormat(strings.ToLower(value))
		return nil
	}},
	{"JOBS", "Render workers (0 = auto)", func(cfg *config.Config, value string) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("expected an integer: %w", err)
		}
		cfg.Jobs = n
		return nil
	}},
	{"IGNORE", "Comma-separated ignore globs", func(cfg *config.Config, value string) error {
		cfg.Ignore = parseSliceValue(value)
		return nil
	}},
}

// LoadFromEnv applies MDSPAN_* overrides read through getenv.
func LoadFromEnv(cfg *config.Config, getenv func(string) string) error {
	if cfg == nil {
		return nil
	}
	for _, v := range envVars {
		name := EnvPrefix + v.suffix
		value := strings.TrimSpace(getenv(name))
		if value == "" {
			continue
		}
		if err := v.apply(cfg, value); err != nil {
			return &ValidationError{Field: name, Value: value, Message: err.Error()}
		}
	}
	return nil
}

func parseSliceValue(value string) []string {
	var out []string
	for part := range strings.SplitSeq(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ListEnvVars returns the supported variables with descriptions, sorted.
func ListEnvVars() [][2]string {
	out := make([][2]string, 0, len(envVars))
	for _, v := range envVars {
		out = append(out, [2]string{EnvPrefix + v.suffix, v.help})
	}
	slices.SortFunc(out, func(a, b [2]string) int { return strings.Compare(a[0], b[0]) })
	return out
}
