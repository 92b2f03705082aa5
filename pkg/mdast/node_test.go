package mdast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdspan/pkg/mdast"
)

func TestNode_IsBlockIsInline(t *testing.T) {
	t.Parallel()

	blocks := []mdast.NodeKind{
		mdast.NodeDocument,
		mdast.NodeParagraph,
		mdast.NodeHeading,
		mdast.NodeListItem,
		mdast.NodeBlockquote,
		mdast.NodeCodeBlock,
		mdast.NodeThematicBreak,
	}
	for _, kind := range blocks {
		node := mdast.NewNode(kind)
		assert.True(t, node.IsBlock(), "%s should be block", kind)
		assert.False(t, node.IsInline(), "%s should not be inline", kind)
	}

	inlines := []mdast.NodeKind{
		mdast.NodeText,
		mdast.NodeEmphasis,
		mdast.NodeStrong,
		mdast.NodeCodeSpan,
		mdast.NodeLink,
		mdast.NodeImage,
		mdast.NodeSoftBreak,
		mdast.NodeHardBreak,
	}
	for _, kind := range inlines {
		node := mdast.NewNode(kind)
		assert.True(t, node.IsInline(), "%s should be inline", kind)
		assert.False(t, node.IsBlock(), "%s should not be block", kind)
	}
}

func TestNodeKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Document", mdast.NodeDocument.String())
	assert.Equal(t, "ListItem", mdast.NodeListItem.String())
	assert.Equal(t, "HardBreak", mdast.NodeHardBreak.String())
	assert.Equal(t, "Unknown", mdast.NodeKind(999).String())
}

func TestNode_Children(t *testing.T) {
	t.Parallel()

	doc := mdast.NewDocument()
	assert.False(t, doc.HasChildren())
	assert.Equal(t, 0, doc.ChildCount())

	para := mdast.NewNode(mdast.NodeParagraph)
	heading := mdast.NewHeading(2)
	mdast.AppendChild(doc, para)
	mdast.AppendChild(doc, heading)

	assert.True(t, doc.HasChildren())
	assert.Equal(t, 2, doc.ChildCount())
	assert.Equal(t, []*mdast.Node{para, heading}, doc.Children())
	assert.Equal(t, 2, heading.HeadingLevel())
	assert.Equal(t, 0, para.HeadingLevel())
}

func TestNode_Depth(t *testing.T) {
	t.Parallel()

	doc := mdast.NewDocument()
	quote := mdast.NewNode(mdast.NodeBlockquote)
	para := mdast.NewNode(mdast.NodeParagraph)
	text := mdast.NewText("x")
	mdast.AppendChild(doc, quote)
	mdast.AppendChild(quote, para)
	mdast.AppendChild(para, text)

	assert.Equal(t, 0, doc.Depth())
	assert.Equal(t, 3, text.Depth())
	assert.True(t, quote.IsContainer())
	assert.False(t, para.IsContainer())
}

func TestNode_Literal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", mdast.NewText("abc").Literal())
	assert.Equal(t, "x := 1", mdast.NewCodeSpan("x := 1").Literal())
	assert.Equal(t, "fmt.Println()", mdast.NewCodeBlock(mdast.CodeBlockAttrs{Literal: "fmt.Println()"}).Literal())
	assert.Empty(t, mdast.NewNode(mdast.NodeParagraph).Literal())

	link := mdast.NewLink(mdast.NodeLink, mdast.LinkAttrs{Destination: "http://x"})
	assert.Equal(t, "http://x", link.Destination())
	assert.Empty(t, mdast.NewText("a").Destination())
}

func TestNode_TextAndPosition(t *testing.T) {
	t.Parallel()

	src := mdast.NewSource("doc.md", []byte("# Title\n\nbody text"))
	para := mdast.NewNode(mdast.NodeParagraph)
	mdast.SetRange(para, 9, 18)

	assert.Equal(t, "body text", string(para.Text(src)))
	assert.Equal(t, mdast.Position{Line: 3, Column: 1}, para.StartPosition(src))
	assert.True(t, para.StartPosition(src).IsValid())
	assert.Nil(t, para.Text(nil))

	bad := mdast.NewNode(mdast.NodeText)
	mdast.SetRange(bad, 0, 100)
	require.Nil(t, bad.Text(src))
}

func TestSourceRange(t *testing.T) {
	t.Parallel()

	r := mdast.SourceRange{StartOffset: 2, EndOffset: 5}
	assert.Equal(t, 3, r.Len())
	assert.False(t, r.IsEmpty())
	assert.True(t, r.Contains(2))
	assert.False(t, r.Contains(5))
	assert.True(t, mdast.SourceRange{}.IsEmpty())
}
