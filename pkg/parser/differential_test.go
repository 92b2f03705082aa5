package parser_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/mdspan/pkg/mdast"
	"github.com/yaklabco/mdspan/pkg/parser"
)

type emphasisSpan struct {
	level int
	text  string
}

func goldmarkEmphasis(t *testing.T, input string) []emphasisSpan {
	t.Helper()

	source := []byte(input)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var spans []emphasisSpan
	err := gast.Walk(doc, func(n gast.Node, entering bool) (gast.WalkStatus, error) {
		if em, ok := n.(*gast.Emphasis); ok && entering {
			spans = append(spans, emphasisSpan{level: em.Level, text: goldmarkText(em, source)})
		}
		return gast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walk goldmark tree: %v", err)
	}
	return spans
}

func goldmarkText(n gast.Node, source []byte) string {
	var buf bytes.Buffer
	//nolint:errcheck,revive // the callback never fails
	gast.Walk(n, func(c gast.Node, entering bool) (gast.WalkStatus, error) {
		if txt, ok := c.(*gast.Text); ok && entering {
			buf.Write(txt.Segment.Value(source))
		}
		return gast.WalkContinue, nil
	})
	return buf.String()
}

func ownEmphasis(input string) []emphasisSpan {
	var spans []emphasisSpan
	for _, n := range mdast.FindAll(parser.Parse(input), func(n *mdast.Node) bool {
		return n.Kind == mdast.NodeEmphasis || n.Kind == mdast.NodeStrong
	}) {
		level := 1
		if n.Kind == mdast.NodeStrong {
			level = 2
		}
		spans = append(spans, emphasisSpan{level: level, text: mdast.PlainText(n)})
	}
	return spans
}

// TestEmphasis_MatchesGoldmark checks delimiter resolution against goldmark's
// CommonMark implementation on inputs inside the supported dialect.
func TestEmphasis_MatchesGoldmark(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"*a*",
		"**a**",
		"__a__",
		"***a***",
		"a*b*c",
		"a_b_c",
		"_foo_bar",
		"**a*",
		"*a **b** c*",
		"*foo**bar**baz*",
		"*(a)*",
		"* not emphasis *",
		"plain text",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, goldmarkEmphasis(t, input), ownEmphasis(input))
		})
	}
}
