package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/amend/buffer"
)

var moves = []struct {
	binding func(KeyMap) key.Binding
	move    buffer.Move
}{
	{func(k KeyMap) key.Binding { return k.Left }, buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft}},
	{func(k KeyMap) key.Binding { return k.Right }, buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight}},
	{func(k KeyMap) key.Binding { return k.Up }, buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirUp}},
	{func(k KeyMap) key.Binding { return k.Down }, buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirDown}},
	{func(k KeyMap) key.Binding { return k.ShiftLeft }, buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft, Extend: true}},
	{func(k KeyMap) key.Binding { return k.ShiftRight }, buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight, Extend: true}},
	{func(k KeyMap) key.Binding { return k.ShiftUp }, buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirUp, Extend: true}},
	{func(k KeyMap) key.Binding { return k.ShiftDown }, buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirDown, Extend: true}},
	{func(k KeyMap) key.Binding { return k.WordLeft }, buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft}},
	{func(k KeyMap) key.Binding { return k.WordRight }, buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight}},
	{func(k KeyMap) key.Binding { return k.Home }, buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome}},
	{func(k KeyMap) key.Binding { return k.End }, buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd}},
	{func(k KeyMap) key.Binding { return k.DocStart }, buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome}},
	{func(k KeyMap) key.Binding { return k.DocEnd }, buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd}},
}

func (m Model) updateKey(msg tea.KeyMsg) Model {
	if !m.focused {
		return m
	}

	// Paste always inserts literal text and never triggers shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste {
		if !m.cfg.ReadOnly && len(msg.Runes) > 0 {
			m.buf.InsertText(normalizeNewlines(string(msg.Runes)))
		}
		return m
	}

	km := m.cfg.KeyMap
	for _, mv := range moves {
		if key.Matches(msg, mv.binding(km)) {
			m.buf.Move(mv.move)
			return m
		}
	}

	if m.cfg.ReadOnly {
		return m
	}
	switch {
	case key.Matches(msg, km.Backspace):
		m.buf.DeleteBackward()
	case key.Matches(msg, km.Delete):
		m.buf.DeleteForward()
	case key.Matches(msg, km.Enter):
		m.buf.InsertNewline()
	case key.Matches(msg, km.Tab):
		m.buf.InsertText("\t")
	case key.Matches(msg, km.Undo):
		m.buf.Undo()
	case key.Matches(msg, km.Redo):
		m.buf.Redo()
	case msg.Type == tea.KeySpace:
		m.buf.InsertText(" ")
	case msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) > 0:
		m.buf.InsertText(string(msg.Runes))
	}
	return m
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
