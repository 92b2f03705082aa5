package parser_test

import (
	"testing"

	"github.com/yaklabco/mdspan/pkg/mdast"
	"github.com/yaklabco/mdspan/pkg/parser"
)

var fuzzSeeds = []string{
	"",
	"Hello, world!",
	"# Heading",
	"- list item\n  - nested",
	"* a\n* b",
	"1. ordered item",
	"> quote\n> > nested",
	"```\ncode\n```",
	"```go\nfunc main() {}\n```",
	"*emphasis* and **strong** and ***both***",
	"`code` and ``more `code``",
	"[link](url \"title\") ![image](src)",
	"[a [b](c) d](e)",
	"<https://example.com>",
	"---",
	"\\*escaped\\*",
	"Title\n=====",
	"line1  \nline2\\\nline3",
	"line1\r\nline2",
	"**[*a*](b)**",
	"*foo**bar**baz*",
}

// FuzzParse checks that parsing never panics and that every node's source
// range lies inside the input.
func FuzzParse(f *testing.F) {
	for _, seed := range fuzzSeeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		doc := parser.Parse(input)

		//nolint:errcheck,revive // callback never fails
		mdast.Walk(doc, func(n *mdast.Node) error {
			r := n.Range
			if r.StartOffset < 0 || r.StartOffset > r.EndOffset || r.EndOffset > len(input) {
				t.Errorf("%s has range %+v outside input of length %d", n.Kind, r, len(input))
			}
			if n.IsBlock() && n.Parent != nil && !n.Parent.IsContainer() {
				t.Errorf("block %s under %s", n.Kind, n.Parent.Kind)
			}
			return nil
		})
	})
}

// FuzzParseInline checks that scanning never panics and that text nodes
// come out merged and non-empty.
func FuzzParseInline(f *testing.F) {
	for _, seed := range fuzzSeeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		for _, n := range parser.ParseInline(input) {
			//nolint:errcheck,revive // callback never fails
			mdast.Walk(n, func(c *mdast.Node) error {
				if c.Kind == mdast.NodeText && c.Inline.Text == "" {
					t.Errorf("empty text node in %q", input)
				}
				if c.Kind == mdast.NodeText && c.Prev != nil && c.Prev.Kind == mdast.NodeText {
					t.Errorf("adjacent text nodes in %q", input)
				}
				return nil
			})
		}
	})
}
