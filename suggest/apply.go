package suggest

import (
	"errors"
	"fmt"

	"github.com/iw2rmb/amend/buffer"
	"go.uber.org/zap"
)

var (
	ErrNoSuggestion = errors.New("suggest: no suggestion for line")
	ErrApplyFailed  = errors.New("suggest: apply failed")
)

// Document is the edit surface of a host buffer. *buffer.Buffer satisfies it.
type Document interface {
	Apply(edits ...buffer.TextEdit)
}

// Applicator writes accepted candidates into a document and retires them
// from the store.
type Applicator struct {
	store  *Store
	logger *zap.Logger
}

func NewApplicator(store *Store, logger *zap.Logger) *Applicator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Applicator{store: store, logger: logger}
}

// Apply replaces the whole of edit.Line with edit.Text as one edit, then
// removes the line's entry from the store. Lines past the end of the
// document clamp to the last line.
//
// Apply must run on the goroutine that owns doc.
func (a *Applicator) Apply(doc Document, edit CandidateEdit) (err error) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("applying suggestion panicked", zap.Int("line", edit.Line), zap.Any("panic", r))
			err = fmt.Errorf("%w: line %d: %v", ErrApplyFailed, edit.Line, r)
		}
	}()
	doc.Apply(buffer.TextEdit{Range: buffer.LineRange(edit.Line - 1), Text: edit.Text})
	a.store.Remove(edit.Line)
	a.logger.Debug("applied suggestion", zap.Int("line", edit.Line))
	return nil
}

// ApplyLine applies the stored candidate for line.
func (a *Applicator) ApplyLine(doc Document, line int) error {
	edit, ok := a.store.Get(line)
	if !ok {
		return fmt.Errorf("%w %d", ErrNoSuggestion, line)
	}
	return a.Apply(doc, edit)
}

// Dismiss drops the candidate for line without touching the document.
func (a *Applicator) Dismiss(line int) bool {
	return a.store.Remove(line)
}
