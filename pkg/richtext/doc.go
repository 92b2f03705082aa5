// Package richtext is the rendered artifact handed to a host: text plus a
// span table of style objects, the same model a platform text widget keeps.
//
// Every styled range is a Group object in the table that owns an ordered
// list of primitive Handles covering the same extent. Hosts may lose the
// primitives of a group during buffer operations; Reanchor restores the
// primitives of link and image groups from the group's current position.
package richtext
