package buffer

import "github.com/iw2rmb/amend/internal/grapheme"

type MoveUnit uint8

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir uint8

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome
	DirEnd
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // extend the selection instead of clearing it
}

func (b *Buffer) Move(m Move) {
	from := b.cursor
	to := b.clampPos(b.target(from, m))

	var sel selectionState
	if m.Extend {
		anchor := from
		if b.sel.active && b.sel.anchor != b.sel.end {
			anchor = b.sel.anchor
		}
		if anchor != to {
			sel = selectionState{active: true, anchor: anchor, end: to}
		}
	}
	if from == to && sel == b.sel {
		return
	}
	b.cursor = to
	b.sel = sel
	b.version++
}

func (b *Buffer) target(p Pos, m Move) Pos {
	row, col := p.Row, p.GraphemeCol
	last := len(b.lines) - 1
	line := b.lines[row]

	switch m.Dir {
	case DirHome:
		if m.Unit == MoveDoc {
			return Pos{}
		}
		return Pos{Row: row}
	case DirEnd:
		if m.Unit == MoveDoc {
			return Pos{Row: last, GraphemeCol: len(b.lines[last])}
		}
		return Pos{Row: row, GraphemeCol: len(line)}
	case DirUp:
		if m.Unit == MoveDoc {
			return Pos{}
		}
		if row == 0 {
			return Pos{Row: 0}
		}
		return Pos{Row: row - 1, GraphemeCol: min(col, len(b.lines[row-1]))}
	case DirDown:
		if m.Unit == MoveDoc {
			return Pos{Row: last, GraphemeCol: len(b.lines[last])}
		}
		if row == last {
			return Pos{Row: last, GraphemeCol: len(line)}
		}
		return Pos{Row: row + 1, GraphemeCol: min(col, len(b.lines[row+1]))}
	case DirLeft:
		if m.Unit == MoveWord && col > 0 {
			return Pos{Row: row, GraphemeCol: prevWordStart(line, col)}
		}
		if col > 0 {
			return Pos{Row: row, GraphemeCol: col - 1}
		}
		if row > 0 {
			return Pos{Row: row - 1, GraphemeCol: len(b.lines[row-1])}
		}
	case DirRight:
		if m.Unit == MoveWord && col < len(line) {
			return Pos{Row: row, GraphemeCol: nextWordEnd(line, col)}
		}
		if col < len(line) {
			return Pos{Row: row, GraphemeCol: col + 1}
		}
		if row < last {
			return Pos{Row: row + 1}
		}
	}
	return p
}

// prevWordStart skips spaces left of col, then one run of same-class
// clusters.
func prevWordStart(line []string, col int) int {
	i := col
	for i > 0 && grapheme.Classify(line[i-1]) == grapheme.ClassSpace {
		i--
	}
	if i == 0 {
		return 0
	}
	class := grapheme.Classify(line[i-1])
	for i > 0 && grapheme.Classify(line[i-1]) == class {
		i--
	}
	return i
}

func nextWordEnd(line []string, col int) int {
	i := col
	for i < len(line) && grapheme.Classify(line[i]) == grapheme.ClassSpace {
		i++
	}
	if i == len(line) {
		return i
	}
	class := grapheme.Classify(line[i])
	for i < len(line) && grapheme.Classify(line[i]) == class {
		i++
	}
	return i
}
