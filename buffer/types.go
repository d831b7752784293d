package buffer

// Pos points into the document by row and grapheme column, both 0-based.
type Pos struct {
	Row         int
	GraphemeCol int
}

// Range is a half-open span [Start, End).
type Range struct {
	Start Pos
	End   Pos
}

// TextEdit replaces the text in Range with Text, which may contain '\n'.
type TextEdit struct {
	Range Range
	Text  string
}

// EndOfLine is a column past the end of any line. Ranges using it clamp to
// the line's end.
const EndOfLine = int(^uint(0) >> 1)

// LineRange spans the whole of row, excluding its line break.
func LineRange(row int) Range {
	return Range{
		Start: Pos{Row: row, GraphemeCol: 0},
		End:   Pos{Row: row, GraphemeCol: EndOfLine},
	}
}

func ComparePos(a, b Pos) int {
	switch {
	case a.Row != b.Row:
		if a.Row < b.Row {
			return -1
		}
		return 1
	case a.GraphemeCol < b.GraphemeCol:
		return -1
	case a.GraphemeCol > b.GraphemeCol:
		return 1
	default:
		return 0
	}
}

// NormalizeRange orders Start before End.
func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool { return r.Start == r.End }

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampPos clamps p into a document with rowCount rows (at least one) where
// lineLen(row) is the grapheme length of row.
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	if rowCount <= 0 {
		rowCount = 1
	}
	row := clampInt(p.Row, 0, rowCount-1)
	maxCol := 0
	if lineLen != nil {
		maxCol = max(lineLen(row), 0)
	}
	return Pos{Row: row, GraphemeCol: clampInt(p.GraphemeCol, 0, maxCol)}
}

func ClampRange(r Range, rowCount int, lineLen func(row int) int) Range {
	return Range{
		Start: ClampPos(r.Start, rowCount, lineLen),
		End:   ClampPos(r.End, rowCount, lineLen),
	}
}
