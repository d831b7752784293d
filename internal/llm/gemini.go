package llm

import (
	"context"
	"strings"
	"time"

	"google.golang.org/genai"
)

const DefaultMaxAttempts = 3

// GeminiClient is a thin wrapper around the official genai client. Failed
// calls are retried with exponential backoff.
type GeminiClient struct {
	cli      *genai.Client
	model    string
	attempts int
	backoff  func(attempt int) time.Duration
}

func NewGeminiClient(ctx context.Context, apiKey, model string, attempts int) (*GeminiClient, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}
	return &GeminiClient{cli: cli, model: model, attempts: attempts, backoff: exponentialBackoff}, nil
}

func (g *GeminiClient) Name() string { return "Gemini:" + g.model }
func (g *GeminiClient) Close() error { return nil }

func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	return retry(ctx, g.attempts, g.backoff, func() (string, error) {
		resp, err := g.cli.Models.GenerateContent(ctx, g.model, contents, nil)
		if err != nil {
			return "", err
		}
		return responseText(resp)
	})
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}
	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p != nil && !p.Thought {
			sb.WriteString(p.Text)
		}
	}
	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}

func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(300*(1<<attempt)) * time.Millisecond
}

// retry calls fn up to attempts times, sleeping backoff(i) after the i-th
// failure. It gives up early when ctx ends.
func retry(ctx context.Context, attempts int, backoff func(int) time.Duration, fn func() (string, error)) (string, error) {
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		out, err := fn()
		if err == nil {
			return out, nil
		}
		lastErr = err
		if attempt == attempts-1 {
			break
		}
		t := time.NewTimer(backoff(attempt))
		select {
		case <-ctx.Done():
			t.Stop()
			return "", ctx.Err()
		case <-t.C:
		}
	}
	return "", lastErr
}
