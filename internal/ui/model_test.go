package ui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/iw2rmb/amend/suggest"
)

const doc = "const a = \"\"\nconst empty = a == \"\""

func newTestModel(t *testing.T, path string) (Model, *suggest.Pipeline) {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)
	backend := suggest.BackendFunc(func(context.Context, string) (string, error) { return "[]", nil })
	p := suggest.New(suggest.Config{QuietInterval: time.Hour}, backend, nil)
	t.Cleanup(p.Close)

	m := New(Options{Text: doc, Path: path, ShowLineNumbers: true, Pipeline: p})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 150, Height: 10})
	return next.(Model), p
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func withSuggestions(t *testing.T, m Model, p *suggest.Pipeline, edits ...suggest.CandidateEdit) Model {
	t.Helper()
	p.Store().Replace(edits)
	next, _ := m.Update(suggestionsMsg{})
	return next.(Model)
}

func TestTypingFeedsPipeline(t *testing.T) {
	m, p := newTestModel(t, "")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, p.Pending())
	assert.True(t, strings.HasPrefix(m.editor.Buffer().Text(), "xconst"))
}

func TestPanelListsSuggestions(t *testing.T) {
	m, p := newTestModel(t, "")
	assert.NotContains(t, m.View(), "Suggested edits")

	m = withSuggestions(t, m, p, suggest.CandidateEdit{Line: 2, Text: `const empty = a === ""`})
	view := m.View()
	assert.Contains(t, view, "Suggested edits")
	assert.Contains(t, view, `Line 2: const empty = a === ""`)
	assert.Contains(t, view, "1 suggested edit(s)")
	assert.Contains(t, view, "2•const empty")
	assert.Contains(t, view, "ctrl+z undo")
}

func TestAcceptAppliesSelected(t *testing.T) {
	m, p := newTestModel(t, "")
	m = withSuggestions(t, m, p,
		suggest.CandidateEdit{Line: 1, Text: `const a = ''`},
		suggest.CandidateEdit{Line: 2, Text: `const empty = a === ""`},
	)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, 1, m.selected)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})

	assert.Equal(t, "const a = \"\"\nconst empty = a === \"\"", m.editor.Buffer().Text())
	assert.Equal(t, []suggest.CandidateEdit{{Line: 1, Text: `const a = ''`}}, m.suggestions)
	assert.Equal(t, 0, m.selected)
	assert.Equal(t, 1, p.Pending())
	assert.Equal(t, "applied line 2", m.status)
}

func TestAcceptUsesCurrentStoreEntry(t *testing.T) {
	m, p := newTestModel(t, "")
	m = withSuggestions(t, m, p, suggest.CandidateEdit{Line: 1, Text: "OLD"})

	// A newer cycle lands before its notification is handled.
	p.Store().Replace([]suggest.CandidateEdit{{Line: 1, Text: "NEW"}, {Line: 2, Text: "other"}})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})

	assert.Equal(t, "NEW", m.editor.Buffer().Line(0))
	assert.Equal(t, []suggest.CandidateEdit{{Line: 2, Text: "other"}}, p.Store().Edits())
	assert.Equal(t, p.Store().Edits(), m.suggestions)
}

func TestAcceptLineRetiredByNewerCycle(t *testing.T) {
	m, p := newTestModel(t, "")
	m = withSuggestions(t, m, p, suggest.CandidateEdit{Line: 1, Text: "OLD"})

	p.Store().Replace([]suggest.CandidateEdit{{Line: 2, Text: "other"}})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})

	assert.Equal(t, doc, m.editor.Buffer().Text())
	assert.Equal(t, []suggest.CandidateEdit{{Line: 2, Text: "other"}}, p.Store().Edits())
	assert.Equal(t, []suggest.CandidateEdit{{Line: 2, Text: "other"}}, m.suggestions)
	assert.Contains(t, m.status, "no suggestion for line")
}

func TestRequestNowNeedsBufferedEdits(t *testing.T) {
	m, p := newTestModel(t, "")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlG})
	assert.Equal(t, "no new edits to send", m.status)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	require.Equal(t, 1, p.Pending())
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlG})
	assert.Equal(t, "requesting suggestions", m.status)
	assert.Equal(t, 0, p.Pending())
}

func TestAcceptWithoutSuggestions(t *testing.T) {
	m, _ := newTestModel(t, "")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	assert.Equal(t, doc, m.editor.Buffer().Text())
	assert.Equal(t, "no suggestions", m.status)
}

func TestDismissAndWrap(t *testing.T) {
	m, p := newTestModel(t, "")
	m = withSuggestions(t, m, p,
		suggest.CandidateEdit{Line: 1, Text: "a"},
		suggest.CandidateEdit{Line: 2, Text: "b"},
	)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	assert.Equal(t, 1, m.selected)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, 0, m.selected)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlK})
	assert.Equal(t, []suggest.CandidateEdit{{Line: 2, Text: "b"}}, p.Store().Edits())
	assert.Equal(t, doc, m.editor.Buffer().Text())
	assert.Equal(t, 0, p.Pending())
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.ts")
	m, _ := newTestModel(t, path)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, doc, string(data))
	assert.Equal(t, "wrote "+path, m.status)

	m, _ = newTestModel(t, "")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Equal(t, "no file to save to", m.status)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, "")
	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlQ})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestNotifierListen(t *testing.T) {
	defer goleak.VerifyNone(t)

	n := NewNotifier()
	m := New(Options{Updates: n})
	cmd := m.Init()
	require.NotNil(t, cmd)

	n.Notify(nil)
	n.Notify(nil)
	assert.Equal(t, suggestionsMsg{}, cmd())

	n.Close()
	n.Close()
	assert.Nil(t, cmd())
}
