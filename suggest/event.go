package suggest

import "github.com/iw2rmb/amend/buffer"

// RangeEdit is one contiguous replacement. Lines and columns are 1-based.
type RangeEdit struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
	Text        string
}

// ChangeEvent is one editor mutation: its range edits in application order
// and the document text once they were applied.
type ChangeEvent struct {
	Edits []RangeEdit
	Text  string
}

// CandidateEdit proposes Text as the full new content of Line (1-based).
type CandidateEdit struct {
	Line int    `json:"line"`
	Text string `json:"text"`
}

// FromAppliedEdits converts buffer edits to 1-based range edits. Ranges are
// taken in pre-edit coordinates.
func FromAppliedEdits(edits []buffer.AppliedEdit) []RangeEdit {
	out := make([]RangeEdit, 0, len(edits))
	for _, e := range edits {
		r := e.RangeBefore
		out = append(out, RangeEdit{
			StartLine:   r.Start.Row + 1,
			StartColumn: r.Start.GraphemeCol + 1,
			EndLine:     r.End.Row + 1,
			EndColumn:   r.End.GraphemeCol + 1,
			Text:        e.InsertText,
		})
	}
	return out
}
