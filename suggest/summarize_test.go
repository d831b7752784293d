package suggest

import (
	"testing"

	"github.com/iw2rmb/amend/buffer"
	"github.com/iw2rmb/amend/editor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	got := Describe(RangeEdit{StartLine: 2, StartColumn: 5, EndLine: 2, EndColumn: 7, Text: "foo"})
	assert.Equal(t, "User edit: foo at line 2 column 5 to line 2 column 7", got)
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil)
	require.NotNil(t, got)
	assert.Empty(t, got)

	got = Summarize([]ChangeEvent{{Text: "x"}})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSummarizePreservesOrder(t *testing.T) {
	events := []ChangeEvent{
		{Edits: []RangeEdit{
			{StartLine: 1, StartColumn: 1, EndLine: 1, EndColumn: 1, Text: "a"},
			{StartLine: 3, StartColumn: 1, EndLine: 3, EndColumn: 4, Text: ""},
		}},
		{Edits: []RangeEdit{{StartLine: 1, StartColumn: 2, EndLine: 1, EndColumn: 2, Text: "b"}}},
	}
	assert.Equal(t, []string{
		"User edit: a at line 1 column 1 to line 1 column 1",
		"User edit:  at line 3 column 1 to line 3 column 4",
		"User edit: b at line 1 column 2 to line 1 column 2",
	}, Summarize(events))
}

func TestFromAppliedEdits(t *testing.T) {
	b := buffer.New("abc\ndef", buffer.Options{})
	b.SetCursor(buffer.Pos{Row: 1, GraphemeCol: 1})
	b.InsertText("X")
	ch, ok := b.LastChange()
	require.True(t, ok)

	assert.Equal(t, []RangeEdit{{StartLine: 2, StartColumn: 2, EndLine: 2, EndColumn: 2, Text: "X"}},
		FromAppliedEdits(ch.AppliedEdits))

	b.Apply(buffer.TextEdit{Range: buffer.Range{Start: buffer.Pos{Row: 0, GraphemeCol: 1}, End: buffer.Pos{Row: 1, GraphemeCol: 0}}, Text: ""})
	ch, _ = b.LastChange()
	assert.Equal(t, []RangeEdit{{StartLine: 1, StartColumn: 2, EndLine: 2, EndColumn: 1, Text: ""}},
		FromAppliedEdits(ch.AppliedEdits))
}

func TestFromEditorEvent(t *testing.T) {
	_, ok := FromEditorEvent(editor.ChangeEvent{Text: "abc"})
	assert.False(t, ok)

	got, ok := FromEditorEvent(editor.ChangeEvent{
		Text: "abXc",
		Edits: []buffer.AppliedEdit{{
			RangeBefore: buffer.Range{Start: buffer.Pos{GraphemeCol: 2}, End: buffer.Pos{GraphemeCol: 2}},
			InsertText:  "X",
		}},
	})
	require.True(t, ok)
	assert.Equal(t, ChangeEvent{
		Text:  "abXc",
		Edits: []RangeEdit{{StartLine: 1, StartColumn: 3, EndLine: 1, EndColumn: 3, Text: "X"}},
	}, got)
}
