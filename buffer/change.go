package buffer

// SelectionState captures a normalized selection at a point in time.
type SelectionState struct {
	Active bool
	Range  Range
}

// AppliedEdit is one effective edit inside a Change. RangeBefore is in the
// coordinates of the document before this edit ran; RangeAfter covers the
// inserted text afterwards.
type AppliedEdit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
}

// Change describes one text transaction.
type Change struct {
	VersionBefore   uint64
	VersionAfter    uint64
	CursorBefore    Pos
	CursorAfter     Pos
	SelectionBefore SelectionState
	SelectionAfter  SelectionState
	AppliedEdits    []AppliedEdit
}

// LastChange returns the most recent text change, if any.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	out := b.lastChange
	out.AppliedEdits = append([]AppliedEdit(nil), b.lastChange.AppliedEdits...)
	return out, true
}

func selectionStateOf(sel selectionState) SelectionState {
	r, ok := selectionRange(sel)
	if !ok {
		return SelectionState{}
	}
	return SelectionState{Active: true, Range: r}
}

// txn accumulates the edits of one mutation so they commit as a single
// version bump, undo entry, and Change.
type txn struct {
	prev            bufferSnapshot
	versionBefore   uint64
	cursorBefore    Pos
	selectionBefore SelectionState
	edits           []AppliedEdit
	cursor          Pos
}

func (b *Buffer) begin() *txn {
	return &txn{
		prev:            b.snapshot(),
		versionBefore:   b.version,
		cursorBefore:    b.cursor,
		selectionBefore: selectionStateOf(b.sel),
		cursor:          b.cursor,
	}
}

// replace runs one edit inside t against the current state.
func (b *Buffer) replace(t *txn, r Range, text string) {
	next, applied, ok := b.replaceRange(r, text)
	if !ok {
		return
	}
	t.edits = append(t.edits, applied)
	t.cursor = next
}

// commit finalizes t. It reports false when nothing changed.
func (b *Buffer) commit(t *txn) bool {
	if len(t.edits) == 0 {
		return false
	}
	b.cursor = b.clampPos(t.cursor)
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	b.recordUndo(t.prev)
	b.recordChange(t.versionBefore, t.cursorBefore, t.selectionBefore, t.edits)
	return true
}

func (b *Buffer) recordChange(versionBefore uint64, cursorBefore Pos, selBefore SelectionState, edits []AppliedEdit) {
	b.lastChange = Change{
		VersionBefore:   versionBefore,
		VersionAfter:    b.version,
		CursorBefore:    cursorBefore,
		CursorAfter:     b.cursor,
		SelectionBefore: selBefore,
		SelectionAfter:  selectionStateOf(b.sel),
		AppliedEdits:    append([]AppliedEdit(nil), edits...),
	}
	b.hasLastChange = true
}

// wholeDocumentEdit describes replacing before with after as one edit
// spanning the full document. Undo and redo report their changes this way.
func wholeDocumentEdit(before, after string) (AppliedEdit, bool) {
	if before == after {
		return AppliedEdit{}, false
	}
	return AppliedEdit{
		RangeBefore: documentRange(before),
		RangeAfter:  documentRange(after),
		InsertText:  after,
		DeletedText: before,
	}, true
}

func documentRange(text string) Range {
	lines := splitLines(text)
	last := len(lines) - 1
	return Range{End: Pos{Row: last, GraphemeCol: len(lines[last])}}
}
