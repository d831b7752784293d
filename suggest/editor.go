package suggest

import "github.com/iw2rmb/amend/editor"

// FromEditorEvent converts an editor change. ok is false when only the
// cursor or selection moved.
func FromEditorEvent(ev editor.ChangeEvent) (out ChangeEvent, ok bool) {
	if !ev.TextChanged() {
		return ChangeEvent{}, false
	}
	return ChangeEvent{Edits: FromAppliedEdits(ev.Edits), Text: ev.Text}, true
}
