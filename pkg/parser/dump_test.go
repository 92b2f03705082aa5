package parser_test

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdspan/pkg/mdast"
)

// dump renders nodes in a compact form for assertions, e.g.
// `Paragraph["a " Strong["b"]]`.
func dump(nodes []*mdast.Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = dumpNode(n)
	}
	return strings.Join(parts, " ")
}

func dumpNode(n *mdast.Node) string {
	children := ""
	if n.HasChildren() {
		children = "[" + dump(n.Children()) + "]"
	}

	switch n.Kind {
	case mdast.NodeText:
		return fmt.Sprintf("%q", n.Inline.Text)
	case mdast.NodeCodeSpan:
		return fmt.Sprintf("code(%q)", n.Inline.Text)
	case mdast.NodeLink, mdast.NodeImage:
		return fmt.Sprintf("%s(%s)%s", n.Kind, n.Destination(), children)
	case mdast.NodeHeading:
		return fmt.Sprintf("Heading%d%s", n.HeadingLevel(), children)
	case mdast.NodeListItem:
		li := n.Block.ListItem
		marker := li.BulletMarker
		if li.Ordered {
			marker = fmt.Sprintf("%d%s", li.Number, li.Delimiter)
		}
		return fmt.Sprintf("ListItem(%s d%d)%s", marker, li.Depth, children)
	case mdast.NodeCodeBlock:
		cb := n.Block.CodeBlock
		return fmt.Sprintf("CodeBlock(%s %q)", cb.Language, cb.Literal)
	default:
		return n.Kind.String() + children
	}
}
