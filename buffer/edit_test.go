package buffer

import "testing"

func TestBuffer_InsertText(t *testing.T) {
	b := New("ac", Options{})
	b.SetCursor(Pos{GraphemeCol: 1})

	b.InsertText("b")
	if got, want := b.Text(), "abc"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{GraphemeCol: 2}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
	if got := b.TextVersion(); got != 1 {
		t.Fatalf("text version: got %d, want 1", got)
	}
}

func TestBuffer_InsertText_ReplacesSelection(t *testing.T) {
	b := New("hello world", Options{})
	b.SetSelection(Range{Start: Pos{GraphemeCol: 6}, End: Pos{GraphemeCol: 11}})

	b.InsertText("there")
	if got, want := b.Text(), "hello there"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if _, ok := b.Selection(); ok {
		t.Fatalf("selection should be cleared")
	}
}

func TestBuffer_InsertNewline_SplitsLine(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{GraphemeCol: 1})

	b.InsertNewline()
	if got, want := b.Text(), "a\nb"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 1}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
}

func TestBuffer_DeleteBackward(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCursor(Pos{Row: 1})

	b.DeleteBackward() // joins lines
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text after join: got %q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{GraphemeCol: 2}); got != want {
		t.Fatalf("cursor after join: got %v, want %v", got, want)
	}

	b.DeleteBackward()
	if got, want := b.Text(), "acd"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}

	b.SetCursor(Pos{})
	v := b.Version()
	b.DeleteBackward()
	if got := b.Version(); got != v {
		t.Fatalf("backspace at origin changed version: got %d, want %d", got, v)
	}
}

func TestBuffer_DeleteForward(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCursor(Pos{GraphemeCol: 2})

	b.DeleteForward()
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}

	b.SetCursor(Pos{GraphemeCol: 4})
	v := b.Version()
	b.DeleteForward()
	if got := b.Version(); got != v {
		t.Fatalf("delete at end changed version: got %d, want %d", got, v)
	}
}

func TestBuffer_DeleteBackward_GraphemeCluster(t *testing.T) {
	b := New("aé", Options{})
	b.SetCursor(Pos{GraphemeCol: 2})

	b.DeleteBackward()
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestBuffer_DeleteSelection_MultiLine(t *testing.T) {
	b := New("one\ntwo\nthree", Options{})
	b.SetSelection(Range{Start: Pos{GraphemeCol: 1}, End: Pos{Row: 2, GraphemeCol: 2}})

	b.DeleteSelection()
	if got, want := b.Text(), "oree"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestBuffer_TextInRange(t *testing.T) {
	b := New("one\ntwo", Options{})
	got := b.TextInRange(Range{Start: Pos{Row: 1, GraphemeCol: 2}, End: Pos{GraphemeCol: 1}})
	if want := "ne\ntw"; got != want {
		t.Fatalf("text in range: got %q, want %q", got, want)
	}
}
