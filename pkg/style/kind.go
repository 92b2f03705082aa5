package style

// Kind identifies the construct a styled range was produced for.
type Kind uint8

// Construct kinds, block-level first.
const (
	KindDocument Kind = iota
	KindParagraph
	KindHeading
	KindQuote
	KindListItem
	KindListPrefix
	KindCodeBlock
	KindThematicBreak
	KindText
	KindEmphasis
	KindStrong
	KindCode
	KindLink
	KindImage
	KindLineBreak
)

var kindNames = [...]string{
	KindDocument:      "document",
	KindParagraph:     "paragraph",
	KindHeading:       "heading",
	KindQuote:         "quote",
	KindListItem:      "list_item",
	KindListPrefix:    "list_prefix",
	KindCodeBlock:     "code_block",
	KindThematicBreak: "thematic_break",
	KindText:          "text",
	KindEmphasis:      "emphasis",
	KindStrong:        "strong",
	KindCode:          "code",
	KindLink:          "link",
	KindImage:         "image",
	KindLineBreak:     "line_break",
}

// String returns the snake_case name used in reports.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind is the inverse of String.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// IsBlock reports whether ranges of this kind cover whole lines.
func (k Kind) IsBlock() bool {
	return k <= KindThematicBreak
}

// IsLive reports whether ranges of this kind reference an external resource
// and must be re-anchored after host mutations.
func (k Kind) IsLive() bool {
	return k == KindLink || k == KindImage
}
