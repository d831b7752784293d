package llm

import (
	"context"
	"sync"
)

// FakeClient returns canned replies in rotation for offline runs and tests.
type FakeClient struct {
	mu      sync.Mutex
	replies []string
	next    int
	prompts []string
}

// NewFakeClient replies with an empty suggestion list when no replies are
// given.
func NewFakeClient(replies ...string) *FakeClient {
	if len(replies) == 0 {
		replies = []string{"```json\n[]\n```"}
	}
	return &FakeClient{replies: replies}
}

func (f *FakeClient) Name() string { return "FakeLLM" }
func (f *FakeClient) Close() error { return nil }

func (f *FakeClient) Generate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	out := f.replies[f.next%len(f.replies)]
	f.next++
	return out, nil
}

// Prompts returns every prompt received so far.
func (f *FakeClient) Prompts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}
