package buffer

import "testing"

func TestBuffer_Move_GraphemeWrapsLines(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCursor(Pos{GraphemeCol: 2})

	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	if got, want := b.Cursor(), (Pos{Row: 1}); got != want {
		t.Fatalf("right at EOL: got %v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if got, want := b.Cursor(), (Pos{GraphemeCol: 2}); got != want {
		t.Fatalf("left at BOL: got %v, want %v", got, want)
	}
}

func TestBuffer_Move_VerticalClampsColumn(t *testing.T) {
	b := New("abcdef\nx", Options{})
	b.SetCursor(Pos{GraphemeCol: 5})

	b.Move(Move{Unit: MoveGrapheme, Dir: DirDown})
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 1}); got != want {
		t.Fatalf("down: got %v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveGrapheme, Dir: DirUp})
	if got, want := b.Cursor(), (Pos{GraphemeCol: 1}); got != want {
		t.Fatalf("up: got %v, want %v", got, want)
	}
}

func TestBuffer_Move_Word(t *testing.T) {
	b := New("const empty_x = a", Options{})

	b.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got, want := b.Cursor(), (Pos{GraphemeCol: 5}); got != want {
		t.Fatalf("word right: got %v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got, want := b.Cursor(), (Pos{GraphemeCol: 13}); got != want {
		t.Fatalf("word right over identifier: got %v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveWord, Dir: DirLeft})
	if got, want := b.Cursor(), (Pos{GraphemeCol: 6}); got != want {
		t.Fatalf("word left: got %v, want %v", got, want)
	}
}

func TestBuffer_Move_HomeEndAndDoc(t *testing.T) {
	b := New("ab\ncde", Options{})
	b.SetCursor(Pos{Row: 1, GraphemeCol: 1})

	b.Move(Move{Unit: MoveLine, Dir: DirEnd})
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 3}); got != want {
		t.Fatalf("end: got %v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveLine, Dir: DirHome})
	if got, want := b.Cursor(), (Pos{Row: 1}); got != want {
		t.Fatalf("home: got %v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveDoc, Dir: DirHome})
	if got, want := b.Cursor(), (Pos{}); got != want {
		t.Fatalf("doc home: got %v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveDoc, Dir: DirEnd})
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 3}); got != want {
		t.Fatalf("doc end: got %v, want %v", got, want)
	}
}

func TestBuffer_Move_ExtendSelection(t *testing.T) {
	b := New("abc", Options{})

	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})
	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection")
	}
	if want := (Range{End: Pos{GraphemeCol: 2}}); r != want {
		t.Fatalf("selection: got %v, want %v", r, want)
	}

	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if _, ok := b.Selection(); ok {
		t.Fatalf("plain move should clear selection")
	}
}

func TestBuffer_Move_NoOpKeepsVersion(t *testing.T) {
	b := New("a", Options{})
	v := b.Version()
	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if got := b.Version(); got != v {
		t.Fatalf("version: got %d, want %d", got, v)
	}
}
