package suggest

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrMalformedResponse = errors.New("suggest: malformed model response")

	ErrNotArray      = fmt.Errorf("%w: not a JSON array", ErrMalformedResponse)
	ErrEmpty         = fmt.Errorf("%w: empty array", ErrMalformedResponse)
	ErrMissingFields = fmt.Errorf("%w: first element lacks line or text", ErrMalformedResponse)
	ErrInvalidEdit   = fmt.Errorf("%w: invalid edit", ErrMalformedResponse)
)

// Parse extracts candidate edits from a model reply.
//
// Markdown code fences are stripped wherever they occur. The remainder must
// be a non-empty JSON array whose first element carries both "line" and
// "text". Later elements that do not decode to a positive line and a string
// text are skipped.
func Parse(raw string) ([]CandidateEdit, error) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		var probe any
		if json.Unmarshal([]byte(cleaned), &probe) == nil {
			return nil, ErrNotArray
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if items == nil {
		// JSON null decodes to a nil slice.
		return nil, ErrNotArray
	}
	if len(items) == 0 {
		return nil, ErrEmpty
	}

	var first map[string]json.RawMessage
	if err := json.Unmarshal(items[0], &first); err != nil {
		return nil, ErrMissingFields
	}
	if _, ok := first["line"]; !ok {
		return nil, ErrMissingFields
	}
	if _, ok := first["text"]; !ok {
		return nil, ErrMissingFields
	}

	edits := make([]CandidateEdit, 0, len(items))
	for i, item := range items {
		e, err := decodeEdit(item)
		if err != nil {
			if i == 0 {
				return nil, err
			}
			continue
		}
		edits = append(edits, e)
	}
	return edits, nil
}

func decodeEdit(item json.RawMessage) (CandidateEdit, error) {
	var e struct {
		Line *json.Number `json:"line"`
		Text *string      `json:"text"`
	}
	if err := json.Unmarshal(item, &e); err != nil {
		return CandidateEdit{}, fmt.Errorf("%w: %v", ErrInvalidEdit, err)
	}
	if e.Line == nil || e.Text == nil {
		return CandidateEdit{}, ErrMissingFields
	}
	line, err := lineNumber(*e.Line)
	if err != nil {
		return CandidateEdit{}, err
	}
	return CandidateEdit{Line: line, Text: *e.Text}, nil
}

// lineNumber accepts any whole positive number, so 3.0 and 3e0 mean line 3.
func lineNumber(n json.Number) (int, error) {
	if i, err := n.Int64(); err == nil {
		if i < 1 || i > math.MaxInt32 {
			return 0, fmt.Errorf("%w: line %s", ErrInvalidEdit, n)
		}
		return int(i), nil
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f < 1 || f > math.MaxInt32 {
		return 0, fmt.Errorf("%w: line %s", ErrInvalidEdit, n)
	}
	return int(f), nil
}
