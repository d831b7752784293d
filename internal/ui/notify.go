package ui

import (
	"sync"

	"github.com/iw2rmb/amend/suggest"
)

// Notifier carries "suggestions changed" signals from request goroutines
// to the program loop. Signals coalesce; the UI re-reads the store.
type Notifier struct {
	ch   chan struct{}
	once sync.Once
}

func NewNotifier() *Notifier {
	return &Notifier{ch: make(chan struct{}, 1)}
}

// Notify matches suggest.Config.OnSuggestions.
func (n *Notifier) Notify([]suggest.CandidateEdit) {
	select {
	case n.ch <- struct{}{}:
	default:
	}
}

// Close releases a pending listener. Notify must not be called afterwards.
func (n *Notifier) Close() {
	n.once.Do(func() { close(n.ch) })
}
