package buffer

import (
	"strings"

	"github.com/iw2rmb/amend/internal/grapheme"
)

// InsertText inserts s at the cursor, replacing the active selection.
func (b *Buffer) InsertText(s string) {
	r, ok := b.Selection()
	if !ok {
		if s == "" {
			return
		}
		r = Range{Start: b.cursor, End: b.cursor}
	}
	t := b.begin()
	b.replace(t, r, s)
	b.commit(t)
}

func (b *Buffer) InsertNewline() { b.InsertText("\n") }

// DeleteBackward deletes the selection, or the cluster before the cursor,
// joining with the previous line at column 0.
func (b *Buffer) DeleteBackward() {
	if r, ok := b.Selection(); ok {
		b.deleteRange(r)
		return
	}
	row, col := b.cursor.Row, b.cursor.GraphemeCol
	switch {
	case col > 0:
		b.deleteRange(Range{Start: Pos{Row: row, GraphemeCol: col - 1}, End: b.cursor})
	case row > 0:
		b.deleteRange(Range{Start: Pos{Row: row - 1, GraphemeCol: len(b.lines[row-1])}, End: b.cursor})
	}
}

// DeleteForward deletes the selection, or the cluster after the cursor,
// joining with the next line at end of line.
func (b *Buffer) DeleteForward() {
	if r, ok := b.Selection(); ok {
		b.deleteRange(r)
		return
	}
	row, col := b.cursor.Row, b.cursor.GraphemeCol
	switch {
	case col < len(b.lines[row]):
		b.deleteRange(Range{Start: b.cursor, End: Pos{Row: row, GraphemeCol: col + 1}})
	case row < len(b.lines)-1:
		b.deleteRange(Range{Start: b.cursor, End: Pos{Row: row + 1}})
	}
}

func (b *Buffer) DeleteSelection() {
	if r, ok := b.Selection(); ok {
		b.deleteRange(r)
	}
}

func (b *Buffer) deleteRange(r Range) {
	t := b.begin()
	b.replace(t, r, "")
	b.commit(t)
}

// TextInRange returns the text covered by r after clamping.
func (b *Buffer) TextInRange(r Range) string {
	return textForRange(b.lines, NormalizeRange(ClampRange(r, len(b.lines), b.lineLen)))
}

func (b *Buffer) replaceRange(r Range, text string) (next Pos, applied AppliedEdit, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	deleted := textForRange(b.lines, r)
	if deleted == text {
		return b.cursor, AppliedEdit{}, false
	}

	start, end := r.Start, r.End
	prefix := b.lines[start.Row][:start.GraphemeCol]
	suffix := b.lines[end.Row][end.GraphemeCol:]

	parts := strings.Split(text, "\n")
	repl := make([][]string, len(parts))
	for i, p := range parts {
		repl[i] = grapheme.Split(p)
	}
	last := len(repl) - 1
	next = Pos{Row: start.Row + last, GraphemeCol: len(repl[last])}
	if last == 0 {
		next.GraphemeCol += len(prefix)
	}
	repl[0] = append(append([]string(nil), prefix...), repl[0]...)
	repl[last] = append(repl[last], suffix...)

	out := make([][]string, 0, len(b.lines)-(end.Row-start.Row)+last)
	out = append(out, b.lines[:start.Row]...)
	out = append(out, repl...)
	out = append(out, b.lines[end.Row+1:]...)
	b.lines = out

	return next, AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: start, End: next},
		InsertText:  text,
		DeletedText: deleted,
	}, true
}

func textForRange(lines [][]string, r Range) string {
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Row == r.End.Row {
		return grapheme.Join(lines[r.Start.Row][r.Start.GraphemeCol:r.End.GraphemeCol])
	}
	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		from, to := 0, len(lines[row])
		if row == r.Start.Row {
			from = r.Start.GraphemeCol
		} else {
			sb.WriteByte('\n')
		}
		if row == r.End.Row {
			to = r.End.GraphemeCol
		}
		sb.WriteString(grapheme.Join(lines[row][from:to]))
	}
	return sb.String()
}
