package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/amend/buffer"
)

// Model is a Bubble Tea component that renders and edits a buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model
	xOffset  int

	// marked rows show a gutter marker.
	marked map[int]struct{}

	seen observed
}

// observed is the buffer state last reported through OnChange.
type observed struct {
	version     uint64
	textVersion uint64
	cursor      buffer.Pos
	text        string
}

func New(cfg Config) Model {
	if len(cfg.KeyMap.Left.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.seen = observed{
		version:     m.buf.Version(),
		textVersion: m.buf.TextVersion(),
		cursor:      m.buf.Cursor(),
		text:        m.buf.Text(),
	}
	m.rebuildContent()
	return m
}

// Buffer exposes the underlying document. Mutations made through it are
// picked up on the next Update.
func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) KeyMap() KeyMap { return m.cfg.KeyMap }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)
	m.followCursor()
	m.rebuildContent()
	return m
}

func (m Model) Width() int { return m.viewport.Width }

func (m Model) Height() int { return m.viewport.Height }

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.followCursor()
		m.rebuildContent()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// MarkLines replaces the set of marked rows (0-based). Marks are drawn only
// when line numbers are shown.
func (m Model) MarkLines(rows ...int) Model {
	marked := make(map[int]struct{}, len(rows))
	for _, r := range rows {
		marked[r] = struct{}{}
	}
	m.marked = marked
	m.rebuildContent()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m = m.updateKey(msg)
	case tea.MouseMsg:
		// Wheel scrolling only; the cursor is not forced back into view.
		m.viewport, cmd = m.viewport.Update(msg)
		m.sync()
		return m, cmd
	}
	if m.sync() {
		m.followCursor()
		m.rebuildContent()
	}
	return m, cmd
}

func (m Model) View() string { return m.viewport.View() }

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// followCursor scrolls so the cursor row and cell are visible.
func (m *Model) followCursor() {
	cur := m.buf.Cursor()
	if h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize(); h > 0 {
		y := m.viewport.YOffset
		switch {
		case cur.Row < y:
			m.viewport.SetYOffset(cur.Row)
		case cur.Row >= y+h:
			m.viewport.SetYOffset(cur.Row - h + 1)
		}
	}
	if w := m.contentWidth(); w > 0 {
		cell := cellOffset(m.buf.Line(cur.Row), cur.GraphemeCol, m.cfg.tabWidth())
		switch {
		case cell < m.xOffset:
			m.xOffset = cell
		case cell >= m.xOffset+w:
			m.xOffset = cell - w + 1
		}
	}
}
