package mdast

// NewNode creates a new node of the specified kind.
// The node has no parent, children, or source range.
func NewNode(kind NodeKind) *Node {
	return &Node{Kind: kind}
}

// NewDocument creates a new document root node.
func NewDocument() *Node {
	return NewNode(NodeDocument)
}

// detach unlinks n from its current parent, if any.
func detach(n *Node) {
	if n.Parent != nil {
		RemoveChild(n.Parent, n)
	}
}

// AppendChild appends a child node to a parent.
// A child that already has a parent is moved.
func AppendChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}
	detach(child)

	child.Parent = parent
	child.Prev = parent.LastChild
	child.Next = nil

	if parent.LastChild != nil {
		parent.LastChild.Next = child
	} else {
		parent.FirstChild = child
	}
	parent.LastChild = child
}

// PrependChild prepends a child node to a parent.
func PrependChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}
	if parent.FirstChild == nil {
		AppendChild(parent, child)
		return
	}
	InsertBefore(parent.FirstChild, child)
}

// InsertBefore inserts newNode before sibling.
// sibling must have a parent.
func InsertBefore(sibling, newNode *Node) {
	if sibling == nil || newNode == nil || sibling.Parent == nil || sibling == newNode {
		return
	}
	detach(newNode)

	newNode.Parent = sibling.Parent
	newNode.Prev = sibling.Prev
	newNode.Next = sibling

	if sibling.Prev != nil {
		sibling.Prev.Next = newNode
	} else {
		sibling.Parent.FirstChild = newNode
	}
	sibling.Prev = newNode
}

// InsertAfter inserts newNode after sibling.
// sibling must have a parent.
func InsertAfter(sibling, newNode *Node) {
	if sibling == nil || newNode == nil || sibling.Parent == nil || sibling == newNode {
		return
	}
	detach(newNode)

	newNode.Parent = sibling.Parent
	newNode.Prev = sibling
	newNode.Next = sibling.Next

	if sibling.Next != nil {
		sibling.Next.Prev = newNode
	} else {
		sibling.Parent.LastChild = newNode
	}
	sibling.Next = newNode
}

// RemoveChild removes a child from its parent.
func RemoveChild(parent, child *Node) {
	if parent == nil || child == nil || child.Parent != parent {
		return
	}

	if child.Prev != nil {
		child.Prev.Next = child.Next
	} else {
		parent.FirstChild = child.Next
	}
	if child.Next != nil {
		child.Next.Prev = child.Prev
	} else {
		parent.LastChild = child.Prev
	}

	child.Parent = nil
	child.Prev = nil
	child.Next = nil
}

// ReplaceChild replaces oldChild with newChild in the tree.
func ReplaceChild(parent, oldChild, newChild *Node) {
	if parent == nil || oldChild == nil || newChild == nil || oldChild.Parent != parent {
		return
	}
	InsertBefore(oldChild, newChild)
	RemoveChild(parent, oldChild)
}

// MoveChildren moves the siblings strictly between first and last (exclusive
// of both) under dst, preserving order. first and last must share a parent.
func MoveChildren(dst, first, last *Node) {
	for n := first.Next; n != nil && n != last; {
		next := n.Next
		AppendChild(dst, n)
		n = next
	}
}

// SetRange sets the source byte range for a node.
func SetRange(n *Node, start, end int) {
	if n == nil {
		return
	}
	n.Range = SourceRange{StartOffset: start, EndOffset: end}
}
