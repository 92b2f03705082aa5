package mdast

// BlockAttrs holds attributes for block-level nodes.
type BlockAttrs struct {
	// HeadingLevel is the heading level (1-6) for NodeHeading.
	HeadingLevel int

	// ListItem holds list item attributes for NodeListItem.
	ListItem *ListItemAttrs

	// CodeBlock holds code block attributes for NodeCodeBlock.
	CodeBlock *CodeBlockAttrs
}

// ListItemAttrs holds attributes for list items.
type ListItemAttrs struct {
	// Ordered is true for ordered items (1., 2), etc.).
	Ordered bool

	// BulletMarker is the bullet character used ("-", "+", "*").
	BulletMarker string

	// Number is the number written in the source for ordered items.
	Number int

	// Delimiter is the delimiter for ordered items ("." or ")").
	Delimiter string

	// Depth is the nesting depth, starting at 0.
	Depth int
}

// CodeBlockAttrs holds attributes for code block nodes.
type CodeBlockAttrs struct {
	// FenceChar is the fence character ('`' or '~'); zero for indented blocks.
	FenceChar byte

	// FenceLength is the number of fence characters.
	FenceLength int

	// Info is the full info string.
	Info string

	// Language is the language tag, from the info string or detection.
	Language string

	// Indented is true for indented code blocks (vs fenced).
	Indented bool

	// Literal is the verbatim content, without the trailing newline.
	Literal string
}

// InlineAttrs holds attributes for inline-level nodes.
type InlineAttrs struct {
	// Text holds the literal content for NodeText and NodeCodeSpan.
	Text string

	// Link holds link attributes for NodeLink and NodeImage.
	Link *LinkAttrs
}

// LinkAttrs holds attributes for link and image nodes.
type LinkAttrs struct {
	// Destination is the link URL or image source.
	Destination string

	// Title is the optional link title.
	Title string

	// Autolink is true for <scheme:...> links.
	Autolink bool
}

// NewHeading creates a heading node of the given level.
func NewHeading(level int) *Node {
	n := NewNode(NodeHeading)
	n.Block = &BlockAttrs{HeadingLevel: level}
	return n
}

// NewListItem creates a list item node.
func NewListItem(attrs ListItemAttrs) *Node {
	n := NewNode(NodeListItem)
	n.Block = &BlockAttrs{ListItem: &attrs}
	return n
}

// NewCodeBlock creates a code block node.
func NewCodeBlock(attrs CodeBlockAttrs) *Node {
	n := NewNode(NodeCodeBlock)
	n.Block = &BlockAttrs{CodeBlock: &attrs}
	return n
}

// NewText creates a text node holding s.
func NewText(s string) *Node {
	n := NewNode(NodeText)
	n.Inline = &InlineAttrs{Text: s}
	return n
}

// NewCodeSpan creates a code span node holding s.
func NewCodeSpan(s string) *Node {
	n := NewNode(NodeCodeSpan)
	n.Inline = &InlineAttrs{Text: s}
	return n
}

// NewLink creates a link or image node.
func NewLink(kind NodeKind, attrs LinkAttrs) *Node {
	n := NewNode(kind)
	n.Inline = &InlineAttrs{Link: &attrs}
	return n
}

// HeadingLevel returns the heading level, or 0 for non-headings.
func (n *Node) HeadingLevel() int {
	if n.Kind != NodeHeading || n.Block == nil {
		return 0
	}
	return n.Block.HeadingLevel
}

// Destination returns the link destination or image source.
func (n *Node) Destination() string {
	if n.Inline == nil || n.Inline.Link == nil {
		return ""
	}
	return n.Inline.Link.Destination
}
