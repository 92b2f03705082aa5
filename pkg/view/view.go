// Package view is a headless markdown text view: it holds source text,
// renders it on demand with a lazily configured style sheet, and exposes
// the link operations a host widget needs.
//
// A View is owned by one goroutine at a time. Markdown replaces the previous
// buffer, so repeated calls never accumulate ranges.
package view

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/mdspan/pkg/render"
	"github.com/yaklabco/mdspan/pkg/richtext"
	"github.com/yaklabco/mdspan/pkg/style"
)

// Option configures a View.
type Option func(*View)

// WithOptions sets the style options the theme colors are applied over.
// The default is style.DefaultOptions.
func WithOptions(opts style.Options) Option {
	return func(v *View) {
		v.base = opts
	}
}

// WithLinkHandler installs the link activation handler.
func WithLinkHandler(h style.LinkHandler) Option {
	return func(v *View) {
		v.handler = h
	}
}

// WithRenderOptions forwards opts to every render.
func WithRenderOptions(opts ...render.Option) Option {
	return func(v *View) {
		v.renderOpts = append(v.renderOpts, opts...)
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(v *View) {
		v.logger = l
	}
}

// View renders markdown for a host.
type View struct {
	theme      style.Theme
	base       style.Options
	handler    style.LinkHandler
	renderOpts []render.Option
	logger     *log.Logger

	sheet  *style.StyleSheet
	source string
	buf    *richtext.Buffer
}

// New returns a view reading colors from theme. theme may be nil.
func New(theme style.Theme, opts ...Option) *View {
	v := &View{
		theme: theme,
		base:  style.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// SetText replaces the source text and drops the rendered buffer.
func (v *View) SetText(s string) {
	v.source = s
	v.buf = nil
}

// Text returns the rendered text, or the source text before Markdown.
func (v *View) Text() string {
	if v.buf == nil {
		return v.source
	}
	return v.buf.Text()
}

// Sheet returns the configured style sheet, or nil before the first Markdown.
func (v *View) Sheet() *style.StyleSheet {
	return v.sheet
}

// Buffer returns the rendered buffer, or nil before Markdown.
func (v *View) Buffer() *richtext.Buffer {
	return v.buf
}

// Markdown renders the source text. The style sheet is configured from the
// theme on first use; a configuration error leaves the view unrendered.
func (v *View) Markdown() error {
	if v.sheet == nil {
		opts := style.FromTheme(v.theme, v.base)
		if v.handler != nil {
			opts.LinkActivationHandler = v.handler
		}
		sheet, err := style.Configure(opts)
		if err != nil {
			return fmt.Errorf("markdown: %w", err)
		}
		v.sheet = sheet
	}

	v.buf = render.Render(v.source, v.sheet, v.renderOpts...)
	if v.logger != nil {
		v.logger.Debug("rendered view", "runes", v.buf.Len(), "links", len(v.buf.Links()))
	}
	return nil
}

// RefreshLinks re-anchors link and image ranges after the host mutated
// the buffer. It is a no-op before Markdown.
func (v *View) RefreshLinks() {
	richtext.Reanchor(v.buf)
}

// Click activates the link under offset and reports whether there was one.
func (v *View) Click(offset int) bool {
	if v.buf == nil {
		return false
	}
	return v.buf.Activate(offset)
}
