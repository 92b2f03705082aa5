package config

import (
	"bytes"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/yaklabco/mdspan/pkg/style"
)

const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every style field with its default value. Otherwise the
	// template is all comments.
	Full bool
}

// fieldDoc documents one template entry.
type fieldDoc struct {
	key  string
	help string
}

var styleDocs = []fieldDoc{
	{"base_color", "Body text color as #rrggbb. Everything inherits it unless a construct sets its own color."},
	{"base_size", "Body text size in host units. Headings multiply it by heading_scale."},
	{"code_color", "Color of inline code and code blocks."},
	{"quote_color", "Color of quoted text and of the quote stripe."},
	{"list_prefix_color", "Color of list bullets and numbers."},
	{"link_color", "Color of links and images."},
	{"heading_scale", "Size multiplier per heading level, 1 to 6."},
	{"paragraph_spacing_before", "Space above and below paragraphs."},
	{"quote_stripe_width", "Width of the bar drawn to the left of quotes; quote_gap_width is the space after it."},
	{"list_indent_width", "Leading margin added per list nesting level."},
	{"code_block_indentation", "Leading margin of code blocks."},
}

// GenerateTemplate returns a commented .mdspan.yml.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString("\n\n")

	writeComment(&buf, "", "Guess the language of fenced code blocks that have no info string.")
	if opts.Full {
		buf.WriteString("detect_language: false\n\n")
	} else {
		buf.WriteString("# detect_language: false\n\n")
	}

	writeComment(&buf, "", "Terminal colors for the text preview: auto, always or never.")
	if opts.Full {
		buf.WriteString("color: auto\n\n")
	} else {
		buf.WriteString("# color: auto\n\n")
	}

	writeComment(&buf, "", "Glob patterns skipped when rendering directories.")
	buf.WriteString("# ignore:\n#   - \"vendor/**\"\n\n")

	if !opts.Full {
		buf.WriteString("# style:\n")
		for _, doc := range styleDocs {
			writeComment(&buf, "  ", doc.help)
			buf.WriteString("#   " + doc.key + ": ...\n")
		}
		return buf.Bytes(), nil
	}

	body, err := encode(FromStyleOptions(style.DefaultOptions()))
	if err != nil {
		return nil, err
	}
	buf.WriteString("style:\n")
	for _, line := range strings.Split(strings.TrimRight(string(body), "\n"), "\n") {
		key, _, _ := strings.Cut(strings.TrimSpace(line), ":")
		for _, doc := range styleDocs {
			if doc.key == key && !strings.HasPrefix(line, " ") {
				writeComment(&buf, "  ", doc.help)
			}
		}
		buf.WriteString("  " + line + "\n")
	}
	return buf.Bytes(), nil
}

func writeComment(buf *bytes.Buffer, indent, text string) {
	for _, line := range strings.Split(wordwrap.String(text, commentWrapWidth), "\n") {
		buf.WriteString(indent + "# " + strings.TrimRight(line, " ") + "\n")
	}
}

// DefaultTemplateHeader returns the header of generated configs.
func DefaultTemplateHeader() string {
	return `# mdspan configuration
# Colors are hex strings; unset fields keep their defaults.`
}
