// Package render turns markdown into a rich text buffer.
//
// Render parses its input with package parser, then walks the tree in order,
// writing the de-marked text and one styled range per construct. Block
// ranges include their trailing newline. Range attributes are cumulative:
// each range carries its enclosing range's attributes overlaid with its own.
package render
