package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering. The zero Style renders plain text.
type Style struct {
	// Gutter styles the separator between line numbers and text.
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style
	// Marker replaces the separator on marked lines.
	Marker lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style
}

// markerGlyph is one cell wide, like the separator it replaces.
const markerGlyph = "•"

func DefaultStyle() Style {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        dim,
		LineNum:       dim,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Marker:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
	}
}
