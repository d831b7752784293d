// Package ui is the terminal front end: an editor with a panel of pending
// suggestions that can be applied or dismissed.
package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	overlay "github.com/rmhubbert/bubbletea-overlay"
	"go.uber.org/zap"

	"github.com/iw2rmb/amend/editor"
	"github.com/iw2rmb/amend/suggest"
)

type Options struct {
	Text string
	// Path is written by the save binding. Empty disables saving.
	Path string

	ShowLineNumbers bool
	TabWidth        int
	HistoryLimit    int

	Pipeline *suggest.Pipeline
	Updates  *Notifier
	Logger   *zap.Logger
}

type Model struct {
	editor   editor.Model
	pipeline *suggest.Pipeline
	updates  *Notifier
	logger   *zap.Logger

	keys   KeyMap
	styles Styles
	help   help.Model

	path        string
	suggestions []suggest.CandidateEdit
	selected    int
	status      string

	width, height int
}

type suggestionsMsg struct{}

func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	p := opts.Pipeline
	ed := editor.New(editor.Config{
		Text:         opts.Text,
		ShowLineNums: opts.ShowLineNumbers,
		Style:        editor.DefaultStyle(),
		TabWidth:     opts.TabWidth,
		HistoryLimit: opts.HistoryLimit,
		OnChange: func(ev editor.ChangeEvent) {
			if ce, ok := suggest.FromEditorEvent(ev); ok && p != nil {
				p.OnChange(ce)
			}
		},
	})
	return Model{
		editor:   ed,
		pipeline: p,
		updates:  opts.Updates,
		logger:   logger,
		keys:     DefaultKeyMap(),
		styles:   DefaultStyles(),
		help:     help.New(),
		path:     opts.Path,
	}
}

func (m Model) Init() tea.Cmd { return m.listen() }

// listen waits for the next suggestion update.
func (m Model) listen() tea.Cmd {
	if m.updates == nil {
		return nil
	}
	ch := m.updates.ch
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return suggestionsMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.editor = m.editor.SetSize(msg.Width, max(msg.Height-1, 0))
		return m, nil
	case suggestionsMsg:
		m.refresh()
		if n := len(m.suggestions); n > 0 {
			m.status = fmt.Sprintf("%d suggested edit(s)", n)
		}
		return m, m.listen()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.move(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.move(-1)
			return m, nil
		case key.Matches(msg, m.keys.Accept):
			return m.accept()
		case key.Matches(msg, m.keys.Dismiss):
			m.dismiss()
			return m, nil
		case key.Matches(msg, m.keys.Request):
			switch {
			case m.pipeline == nil:
			case m.pipeline.Pending() == 0:
				m.status = "no new edits to send"
			default:
				m.pipeline.Flush()
				m.status = "requesting suggestions"
			}
			return m, nil
		case key.Matches(msg, m.keys.Save):
			m.save()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *Model) refresh() {
	if m.pipeline == nil {
		m.suggestions = nil
	} else {
		m.suggestions = m.pipeline.Store().Edits()
	}
	m.selected = min(m.selected, max(len(m.suggestions)-1, 0))

	rows := make([]int, 0, len(m.suggestions))
	for _, e := range m.suggestions {
		rows = append(rows, e.Line-1)
	}
	m.editor = m.editor.MarkLines(rows...)
}

func (m *Model) move(delta int) {
	n := len(m.suggestions)
	if n == 0 {
		return
	}
	m.selected = ((m.selected+delta)%n + n) % n
}

// accept applies the current candidate for the selected line. The store is
// read again because a newer cycle may have replaced it since the last
// refresh. The edit then flows back through the editor's change stream like
// any typed change.
func (m Model) accept() (tea.Model, tea.Cmd) {
	if len(m.suggestions) == 0 || m.pipeline == nil {
		m.status = "no suggestions"
		return m, nil
	}
	line := m.suggestions[m.selected].Line
	if err := m.pipeline.Applicator().ApplyLine(m.editor.Buffer(), line); err != nil {
		m.logger.Warn("apply failed", zap.Int("line", line), zap.Error(err))
		m.status = err.Error()
		m.refresh()
		return m, nil
	}
	m.status = fmt.Sprintf("applied line %d", line)
	m.refresh()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(nil)
	return m, cmd
}

func (m *Model) dismiss() {
	if len(m.suggestions) == 0 || m.pipeline == nil {
		return
	}
	line := m.suggestions[m.selected].Line
	m.pipeline.Applicator().Dismiss(line)
	m.status = fmt.Sprintf("dismissed line %d", line)
	m.refresh()
}

func (m *Model) save() {
	if m.path == "" {
		m.status = "no file to save to"
		return
	}
	if err := os.WriteFile(m.path, []byte(m.editor.Buffer().Text()), 0o644); err != nil {
		m.logger.Error("save failed", zap.String("path", m.path), zap.Error(err))
		m.status = "save failed: " + err.Error()
		return
	}
	m.status = "wrote " + m.path
}

func (m Model) View() string {
	view := m.editor.View()
	if len(m.suggestions) > 0 && m.width > 0 {
		panel := m.renderPanel()
		x := max(m.width-lipgloss.Width(panel), 0)
		view = overlay.Composite(panel, view, overlay.Left, overlay.Top, x, 0)
	}
	return lipgloss.JoinVertical(lipgloss.Left, view, m.statusLine())
}

func (m Model) renderPanel() string {
	width := min(max(m.width/3, 24), 56)
	inner := width - m.styles.Panel.GetHorizontalFrameSize()

	rows := make([]string, 0, len(m.suggestions)+1)
	rows = append(rows, m.styles.Title.Render("Suggested edits"))
	for i, e := range m.suggestions {
		text := runewidth.Truncate(itemLabel(e), inner, "…")
		text = runewidth.FillRight(text, inner)
		if i == m.selected {
			rows = append(rows, m.styles.Selected.Render(text))
		} else {
			rows = append(rows, m.styles.Item.Render(text))
		}
	}
	return m.styles.Panel.Render(strings.Join(rows, "\n"))
}

func itemLabel(e suggest.CandidateEdit) string {
	return fmt.Sprintf("Line %d: %s", e.Line, strings.ReplaceAll(e.Text, "\n", "⏎"))
}

func (m Model) statusLine() string {
	left := m.status
	right := m.help.ShortHelpView(append(m.keys.ShortHelp(), m.editor.KeyMap().ShortHelp()...))
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if gap < 1 {
		return m.styles.Status.Render(runewidth.Truncate(left+" "+right, max(m.width, 0), "…"))
	}
	return m.styles.Status.Render(left + strings.Repeat(" ", gap+1) + right)
}

// Run blocks until the user quits or ctx ends.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(m, opts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
