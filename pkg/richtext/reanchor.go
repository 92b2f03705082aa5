package richtext

// Reanchor restores the primitives of every attached link and image group.
// For each group it reads the group's current start, end and flags from the
// span table, removes the group's primitive handles and attaches them again
// with that extent and those flags. Work is proportional to the number of
// link and image groups. Calling it again immediately leaves the table
// unchanged. A nil buffer or one without ranges is a no-op.
func Reanchor(b *Buffer) {
	if b == nil {
		return
	}
	for _, g := range b.live {
		if !b.table.Contains(g) {
			continue
		}
		start, end, flags := b.table.Start(g), b.table.End(g), b.table.Flags(g)
		for _, h := range g.handles {
			b.table.Remove(h)
			b.table.Set(h, start, end, flags)
		}
	}
}
