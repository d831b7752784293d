package suggest

import "fmt"

// Describe renders one range edit in the form the instruction template
// expects.
func Describe(e RangeEdit) string {
	return fmt.Sprintf("User edit: %s at line %d column %d to line %d column %d",
		e.Text, e.StartLine, e.StartColumn, e.EndLine, e.EndColumn)
}

// Summarize flattens the range edits of events in arrival order and
// describes each one. The result is empty, never nil, for no edits.
func Summarize(events []ChangeEvent) []string {
	n := 0
	for _, ev := range events {
		n += len(ev.Edits)
	}
	out := make([]string, 0, n)
	for _, ev := range events {
		for _, e := range ev.Edits {
			out = append(out, Describe(e))
		}
	}
	return out
}
