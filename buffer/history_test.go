package buffer

import "testing"

func TestBuffer_UndoRedo_BasicTyping(t *testing.T) {
	b := New("", Options{})
	if b.CanUndo() || b.CanRedo() {
		t.Fatalf("fresh buffer has history")
	}

	b.InsertText("a")
	b.InsertText("b")
	if got, want := b.Text(), "ab"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}

	if ok := b.Undo(); !ok {
		t.Fatalf("expected Undo=true")
	}
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text after undo: got %q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{GraphemeCol: 1}); got != want {
		t.Fatalf("cursor after undo: got %v, want %v", got, want)
	}
	if !b.CanRedo() {
		t.Fatalf("expected CanRedo=true")
	}

	if ok := b.Redo(); !ok {
		t.Fatalf("expected Redo=true")
	}
	if got, want := b.Text(), "ab"; got != want {
		t.Fatalf("text after redo: got %q, want %q", got, want)
	}
}

func TestBuffer_Undo_ReportsWholeDocumentChange(t *testing.T) {
	b := New("x", Options{})
	b.InsertText("y")
	tv := b.TextVersion()

	b.Undo()
	if got := b.TextVersion(); got != tv+1 {
		t.Fatalf("text version: got %d, want %d", got, tv+1)
	}
	ch, ok := b.LastChange()
	if !ok || len(ch.AppliedEdits) != 1 {
		t.Fatalf("expected one applied edit, got %v", ch.AppliedEdits)
	}
	e := ch.AppliedEdits[0]
	if e.DeletedText != "yx" || e.InsertText != "x" {
		t.Fatalf("undo edit: got deleted=%q insert=%q", e.DeletedText, e.InsertText)
	}
}

func TestBuffer_NewEditClearsRedo(t *testing.T) {
	b := New("", Options{})
	b.InsertText("a")
	b.Undo()
	b.InsertText("b")
	if b.CanRedo() {
		t.Fatalf("redo should be cleared by a new edit")
	}
}

func TestBuffer_HistoryLimit(t *testing.T) {
	b := New("", Options{HistoryLimit: 2})
	for _, s := range []string{"a", "b", "c"} {
		b.InsertText(s)
	}
	b.Undo()
	b.Undo()
	if b.CanUndo() {
		t.Fatalf("history limit not enforced")
	}
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestBuffer_HistoryDisabled(t *testing.T) {
	b := New("", Options{HistoryLimit: -1})
	b.InsertText("a")
	if b.CanUndo() {
		t.Fatalf("negative limit should disable history")
	}
}
