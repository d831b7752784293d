package editor

import (
	"strings"

	"github.com/iw2rmb/amend/buffer"
	"github.com/iw2rmb/amend/internal/grapheme"
)

// ChangeEvent reports editor state after an effective change.
type ChangeEvent struct {
	Version     uint64
	TextVersion uint64
	Cursor      buffer.Pos
	Selection   buffer.SelectionState

	// Edits lists the text edits since the previous event in the order they
	// were applied. Empty when only the cursor or selection moved.
	Edits []buffer.AppliedEdit

	// Text is the full document after the change.
	Text string
}

// TextChanged reports whether the event carries a content change.
func (ev ChangeEvent) TextChanged() bool { return len(ev.Edits) > 0 }

// sync compares the buffer with the last observed state and emits a
// ChangeEvent when anything moved. It reports whether the cursor moved.
func (m *Model) sync() (cursorChanged bool) {
	ver := m.buf.Version()
	if ver == m.seen.version {
		return false
	}
	cur := m.buf.Cursor()
	cursorChanged = cur != m.seen.cursor

	ev := ChangeEvent{
		Version:     ver,
		TextVersion: m.buf.TextVersion(),
		Cursor:      cur,
		Text:        m.buf.Text(),
	}
	if r, ok := m.buf.Selection(); ok {
		ev.Selection = buffer.SelectionState{Active: true, Range: r}
	}
	if ev.TextVersion != m.seen.textVersion {
		ev.Edits = m.editsSince(ev.TextVersion, ev.Text)
	}

	m.seen = observed{version: ver, textVersion: ev.TextVersion, cursor: cur, text: ev.Text}
	m.rebuildContent()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(ev)
	}
	return cursorChanged
}

// editsSince returns the buffer's last change when exactly one text
// transaction happened since the previous sync. Several transactions
// (host mutations between updates) collapse into one whole-document edit.
func (m *Model) editsSince(textVersion uint64, text string) []buffer.AppliedEdit {
	if textVersion == m.seen.textVersion+1 {
		if ch, ok := m.buf.LastChange(); ok {
			return ch.AppliedEdits
		}
	}
	if text == m.seen.text {
		return nil
	}
	before := documentRange(m.seen.text)
	return []buffer.AppliedEdit{{
		RangeBefore: before,
		RangeAfter:  documentRange(text),
		InsertText:  text,
		DeletedText: m.seen.text,
	}}
}

func documentRange(text string) buffer.Range {
	tail := text[strings.LastIndexByte(text, '\n')+1:]
	return buffer.Range{End: buffer.Pos{Row: strings.Count(text, "\n"), GraphemeCol: grapheme.Count(tail)}}
}
