package suggest

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrBackend wraps any failure reported by a Backend.
var ErrBackend = errors.New("suggest: backend failed")

// Backend sends a prompt to a language model and returns its raw reply.
type Backend interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// BackendFunc adapts a function to Backend.
type BackendFunc func(ctx context.Context, prompt string) (string, error)

func (f BackendFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Requester performs one model round trip per call.
type Requester struct {
	Backend Backend

	// Template defaults to Prompt.
	Template string

	OmitEditHistory bool

	// Timeout bounds a single round trip. Zero means no bound beyond ctx.
	Timeout time.Duration
}

// Request sends the summaries and document text and returns the unparsed
// reply. No retry happens here; backends may retry internally.
func (r *Requester) Request(ctx context.Context, summaries []string, documentText string) (string, error) {
	if r.Backend == nil {
		return "", fmt.Errorf("%w: no backend configured", ErrBackend)
	}
	template := r.Template
	if template == "" {
		template = Prompt
	}
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}
	raw, err := r.Backend.Generate(ctx, BuildRequest(template, summaries, documentText, r.OmitEditHistory))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBackend, err)
	}
	return raw, nil
}
