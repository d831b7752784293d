package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// WithLogging logs request size, latency and errors.
func WithLogging(logger *zap.Logger) Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next Client) Client {
		return &logging{next: next, log: logger.With(zap.String("client", next.Name()))}
	}
}

type logging struct {
	next Client
	log  *zap.Logger
}

func (l *logging) Name() string { return l.next.Name() }
func (l *logging) Close() error { return l.next.Close() }

func (l *logging) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	l.log.Debug("llm request", zap.Int("bytes", len(prompt)))
	out, err := l.next.Generate(ctx, prompt)
	if err != nil {
		l.log.Warn("llm error", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return out, err
	}
	l.log.Debug("llm response", zap.Int("bytes", len(out)), zap.Duration("elapsed", time.Since(start)))
	return out, nil
}
