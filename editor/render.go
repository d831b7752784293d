package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/amend/buffer"
	"github.com/iw2rmb/amend/internal/grapheme"
)

func (m *Model) renderContent() string {
	n := m.buf.LineCount()
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	digits := m.gutterDigits()
	width := m.contentWidth()

	rows := make([]string, 0, n)
	for row := 0; row < n; row++ {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == cursor.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
			if _, ok := m.marked[row]; ok {
				sb.WriteString(m.cfg.Style.Marker.Render(markerGlyph))
			} else {
				sb.WriteString(m.cfg.Style.Gutter.Render(" "))
			}
		}

		lr := lineRender{
			style:  m.cfg.Style,
			left:   m.xOffset,
			right:  m.xOffset + width,
			noClip: width <= 0,
		}
		clusters := grapheme.Split(m.buf.Line(row))
		lr.render(&sb, clusters, row, m.cfg.tabWidth(), func(p buffer.Pos) cellKind {
			switch {
			case m.focused && p == cursor:
				return cellCursor
			case selOK && buffer.ComparePos(p, sel.Start) >= 0 && buffer.ComparePos(p, sel.End) < 0:
				return cellSelected
			default:
				return cellText
			}
		}, m.focused && cursor.Row == row && cursor.GraphemeCol == len(clusters))
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, "\n")
}

type cellKind uint8

const (
	cellText cellKind = iota
	cellSelected
	cellCursor
)

func (s Style) forKind(k cellKind) lipgloss.Style {
	switch k {
	case cellCursor:
		return s.Cursor
	case cellSelected:
		return s.Selection
	default:
		return s.Text
	}
}

// lineRender draws one logical line clipped to cells [left, right).
type lineRender struct {
	style       Style
	left, right int
	noClip      bool
}

func (lr lineRender) render(sb *strings.Builder, clusters []string, row, tabWidth int, kindAt func(buffer.Pos) cellKind, cursorAtEOL bool) {
	var (
		run     strings.Builder
		runKind cellKind
		hasRun  bool
		cell    int
	)
	flush := func() {
		if hasRun {
			sb.WriteString(lr.style.forKind(runKind).Render(run.String()))
			run.Reset()
			hasRun = false
		}
	}

	cols := len(clusters)
	if cursorAtEOL {
		cols++
	}
	for col := 0; col < cols; col++ {
		text, w := " ", 1
		if col < len(clusters) {
			text, w = expandCluster(clusters[col], cell, tabWidth)
		}
		start := cell
		cell += w
		if !lr.noClip && (start < lr.left || cell > lr.right) {
			if start >= lr.right {
				break
			}
			continue
		}
		k := kindAt(buffer.Pos{Row: row, GraphemeCol: col})
		if !hasRun || k != runKind {
			flush()
			runKind, hasRun = k, true
		}
		run.WriteString(text)
	}
	flush()
}

func expandCluster(cluster string, cell, tabWidth int) (string, int) {
	if cluster == "\t" {
		w := tabWidth - cell%tabWidth
		return strings.Repeat(" ", w), w
	}
	return cluster, grapheme.Width(cluster)
}

// cellOffset returns the cell where col starts on line.
func cellOffset(line string, col, tabWidth int) int {
	cell := 0
	for i, c := range grapheme.Split(line) {
		if i >= col {
			break
		}
		_, w := expandCluster(c, cell, tabWidth)
		cell += w
	}
	return cell
}

func (m *Model) gutterDigits() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return len(strconv.Itoa(m.buf.LineCount()))
}

// contentWidth is the number of text cells per row, or 0 when unsized.
func (m *Model) contentWidth() int {
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()
	if m.cfg.ShowLineNums {
		w -= m.gutterDigits() + 1
	}
	return max(w, 0)
}
