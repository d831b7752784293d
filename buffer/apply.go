package buffer

// Apply applies edits in order as one transaction. Each edit's range is
// interpreted against the state left by the previous edit.
//
//   - Ranges are clamped into document bounds, so an edit past the last line
//     lands on the last line.
//   - Edits that change nothing are skipped.
//   - The cursor moves to the end of the last effective edit and the
//     selection is cleared.
//   - The whole call is one undo entry and one Change.
func (b *Buffer) Apply(edits ...TextEdit) {
	if len(edits) == 0 {
		return
	}
	t := b.begin()
	for _, e := range edits {
		b.replace(t, e.Range, e.Text)
	}
	b.commit(t)
}
