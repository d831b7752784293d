package buffer

import (
	"strings"

	"github.com/iw2rmb/amend/internal/grapheme"
)

const defaultHistoryLimit = 1000

type Options struct {
	// HistoryLimit caps the undo stack. Zero means the default (1000);
	// negative disables history.
	HistoryLimit int
}

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer holds document text, cursor, selection, and undo history.
//
// A Buffer is not safe for concurrent use. Hosts serialize all mutations on
// one goroutine (the Bubble Tea update loop for the editor).
type Buffer struct {
	lines       [][]string
	version     uint64
	textVersion uint64

	cursor Pos
	sel    selectionState

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = defaultHistoryLimit
	}
	return &Buffer{
		lines: splitLines(text),
		opt:   opt,
	}
}

func (b *Buffer) Text() string { return joinLines(b.lines) }

// Version bumps on every effective change to text, cursor, or selection.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion bumps only when the text changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return grapheme.Join(b.lines[row])
}

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor && !b.sel.active {
		return
	}
	b.cursor = next
	b.sel = selectionState{}
	b.version++
}

// Selection returns the normalized active selection. Empty selections are
// reported as inactive.
func (b *Buffer) Selection() (Range, bool) {
	return selectionRange(b.sel)
}

// SetSelection selects r (clamped) and moves the cursor to r.End. The
// direction of r is preserved as anchor -> end.
func (b *Buffer) SetSelection(r Range) {
	clamped := ClampRange(r, len(b.lines), b.lineLen)
	next := selectionState{active: true, anchor: clamped.Start, end: clamped.End}
	if clamped.IsEmpty() {
		next = selectionState{}
	}
	prevRange, prevOK := b.Selection()
	nextRange, nextOK := selectionRange(next)
	if prevOK == nextOK && prevRange == nextRange && b.cursor == clamped.End {
		b.sel = next
		return
	}
	b.sel = next
	b.cursor = clamped.End
	b.version++
}

func (b *Buffer) ClearSelection() {
	if _, ok := b.Selection(); !ok {
		b.sel = selectionState{}
		return
	}
	b.sel = selectionState{}
	b.version++
}

func selectionRange(sel selectionState) (Range, bool) {
	if !sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: sel.anchor, End: sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(s))
	}
	return lines
}

func joinLines(lines [][]string) string {
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(grapheme.Join(line))
	}
	return sb.String()
}
