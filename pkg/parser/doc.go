// Package parser turns Markdown text into an mdast Document.
//
// Blocks are recognized line by line with one line of lookahead. Paragraph,
// heading and list item text is handed to an inline scanner that resolves
// emphasis with a delimiter stack, matches brackets for links and images, and
// pairs backtick runs for code spans. Parsing is total: input that does not
// form a construct is kept as literal text.
package parser
