package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

var ErrUnknownProvider = errors.New("llm: unknown provider")

const (
	ProviderGemini = "gemini"
	ProviderFake   = "fake"
)

type Options struct {
	Provider    string
	Model       string
	APIKey      string
	MaxAttempts int

	// FakeReplies feeds the fake provider.
	FakeReplies []string
}

// New builds the client for opts.Provider wrapped with logging.
func New(ctx context.Context, opts Options, logger *zap.Logger) (Client, error) {
	var (
		c   Client
		err error
	)
	switch strings.ToLower(strings.TrimSpace(opts.Provider)) {
	case "", ProviderGemini:
		c, err = NewGeminiClient(ctx, opts.APIKey, opts.Model, opts.MaxAttempts)
	case ProviderFake:
		c = NewFakeClient(opts.FakeReplies...)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownProvider, opts.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("llm: create %s client: %w", opts.Provider, err)
	}
	return Wrap(c, WithLogging(logger)), nil
}
