package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdspan/pkg/mdast"
	"github.com/yaklabco/mdspan/pkg/parser"
)

func TestParseInline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", `"hello"`},
		{"strong", "**bold**", `Strong["bold"]`},
		{"emphasis star", "*a*", `Emphasis["a"]`},
		{"emphasis underscore", "_a_", `Emphasis["a"]`},
		{"strong underscore", "__a__", `Strong["a"]`},
		{"triple", "***a***", `Emphasis[Strong["a"]]`},
		{"stray star", "* unmatched", `"* unmatched"`},
		{"intraword star", "a*b*c", `"a" Emphasis["b"] "c"`},
		{"intraword underscore", "a_b_c", `"a_b_c"`},
		{"underscore closer inside word", "_foo_bar", `"_foo_bar"`},
		{"nested strong", "*a **b** c*", `Emphasis["a " Strong["b"] " c"]`},
		{"rule of three", "*foo**bar**baz*", `Emphasis["foo" Strong["bar"] "baz"]`},
		{"leftover opener", "**a*", `"*" Emphasis["a"]`},
		{"punctuation inside", "*(a)*", `Emphasis["(a)"]`},
		{"unicode", "héllo *wörld*", `"héllo " Emphasis["wörld"]`},
		{"code span", "`code`", `code("code")`},
		{"code span strips one space", "`` a`b ``", "code(\"a`b\")"},
		{"code span is verbatim", "`*not emph*`", `code("*not emph*")`},
		{"unmatched backticks", "``unmatched", "\"``unmatched\""},
		{"link", "[click](http://x)", `Link(http://x)["click"]`},
		{"image", "![alt](img.png)", `Image(img.png)["alt"]`},
		{"angle destination", `[a](<b c> "t")`, `Link(b c)["a"]`},
		{"balanced parens", "[a](b(c)d)", `Link(b(c)d)["a"]`},
		{"empty destination", "[a]()", `Link()["a"]`},
		{"no destination", "[no link]", `"[no link]"`},
		{"unclosed destination", "[a](b", `"[a](b"`},
		{"link inside link", "[a [b](c) d](e)", `"[a " Link(c)["b"] " d](e)"`},
		{"emphasis around link", "**[a](b)**", `Strong[Link(b)["a"]]`},
		{"emphasis inside link", "[*a*](b)", `Link(b)[Emphasis["a"]]`},
		{"escapes", `foo\*bar\*`, `"foo*bar*"`},
		{"backslash before letter", `a\b`, `"a\\b"`},
		{"soft break", "a\nb", `"a" SoftBreak "b"`},
		{"hard break spaces", "line one  \nline two", `"line one" HardBreak "line two"`},
		{"hard break backslash", "a\\\nb", `"a" HardBreak "b"`},
		{"autolink", "<https://example.com>", `Link(https://example.com)["https://example.com"]`},
		{"not an autolink", "<not a link>", `"<not a link>"`},
		{"lone bang", "wow!", `"wow!"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, dump(parser.ParseInline(tt.input)))
		})
	}
}

func TestParseInline_LinkTitle(t *testing.T) {
	t.Parallel()

	nodes := parser.ParseInline(`[link](url "the title")`)
	require.Len(t, nodes, 1)
	require.Equal(t, mdast.NodeLink, nodes[0].Kind)
	assert.Equal(t, "url", nodes[0].Inline.Link.Destination)
	assert.Equal(t, "the title", nodes[0].Inline.Link.Title)

	nodes = parser.ParseInline(`[x](u 'single')`)
	require.Len(t, nodes, 1)
	assert.Equal(t, "single", nodes[0].Inline.Link.Title)
}

func TestParseInline_Detached(t *testing.T) {
	t.Parallel()

	for _, n := range parser.ParseInline("a *b* c") {
		assert.Nil(t, n.Parent)
	}
}

func TestParseInline_Ranges(t *testing.T) {
	t.Parallel()

	doc := parser.Parse("a **b** [c](d)")
	para := doc.FirstChild
	require.NotNil(t, para)

	strong := mdast.FindByKind(para, mdast.NodeStrong)
	require.Len(t, strong, 1)
	assert.Equal(t, mdast.SourceRange{StartOffset: 2, EndOffset: 7}, strong[0].Range)
	assert.Equal(t, mdast.SourceRange{StartOffset: 4, EndOffset: 5}, strong[0].FirstChild.Range)

	links := mdast.FindByKind(para, mdast.NodeLink)
	require.Len(t, links, 1)
	assert.Equal(t, mdast.SourceRange{StartOffset: 8, EndOffset: 14}, links[0].Range)
}
