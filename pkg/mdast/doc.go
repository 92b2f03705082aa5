// Package mdast is the document tree produced by the Markdown parser.
//
// A Document node owns an ordered list of blocks. Paragraph-like blocks own
// inline nodes. The tree is a first-child/next-sibling linked structure and is
// treated as immutable once the parser returns it.
package mdast
