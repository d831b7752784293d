package editor

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	ShowLineNums bool
	// Style is used as given; the zero Style renders plain text.
	Style Style
	// KeyMap defaults to DefaultKeyMap when left empty.
	KeyMap KeyMap
	// TabWidth in cells. Default 4.
	TabWidth int

	// Forwarded to buffer.Options.
	HistoryLimit int

	// ReadOnly allows movement and selection but no text mutation.
	ReadOnly bool

	// OnChange is called after every effective change to text, cursor, or
	// selection. It runs on the Update goroutine.
	OnChange func(ChangeEvent)
}

func (c Config) tabWidth() int {
	if c.TabWidth <= 0 {
		return 4
	}
	return c.TabWidth
}
