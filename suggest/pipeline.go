package suggest

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Config struct {
	// QuietInterval defaults to DefaultQuietInterval.
	QuietInterval time.Duration

	// Template defaults to Prompt.
	Template string

	// OmitEditHistory sends the template without substituting edit
	// summaries.
	OmitEditHistory bool

	// AcceptStaleResponses lets whichever cycle resolves last replace the
	// suggestion set, even when a newer cycle already delivered.
	AcceptStaleResponses bool

	// RequestTimeout bounds each model round trip. Zero means unbounded.
	RequestTimeout time.Duration

	// Clock defaults to SystemClock.
	Clock Clock

	// OnSuggestions receives the new set after every accepted response. It
	// runs on a request goroutine, never the caller of OnChange.
	OnSuggestions func([]CandidateEdit)
}

// Pipeline wires a Scheduler, a Requester, a Store and an Applicator.
type Pipeline struct {
	cfg        Config
	logger     *zap.Logger
	sched      *Scheduler
	requester  *Requester
	store      *Store
	applicator *Applicator

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	cycle  uint64
	closed bool
	wg     sync.WaitGroup
}

func New(cfg Config, backend Backend, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	store := NewStore()
	p := &Pipeline{
		cfg:    cfg,
		logger: logger,
		requester: &Requester{
			Backend:         backend,
			Template:        cfg.Template,
			OmitEditHistory: cfg.OmitEditHistory,
			Timeout:         cfg.RequestTimeout,
		},
		store:      store,
		applicator: NewApplicator(store, logger),
		ctx:        ctx,
		cancel:     cancel,
	}
	p.sched = NewScheduler(cfg.QuietInterval, cfg.Clock, p.runCycle, logger)
	return p
}

// OnChange feeds one editor change into the collector. It never blocks on
// the model.
func (p *Pipeline) OnChange(ev ChangeEvent) { p.sched.Add(ev) }

// Flush starts a cycle now with whatever is buffered.
func (p *Pipeline) Flush() { p.sched.Flush() }

// Pending returns the number of events waiting for the next cycle.
func (p *Pipeline) Pending() int { return p.sched.Pending() }

func (p *Pipeline) Store() *Store { return p.store }

func (p *Pipeline) Applicator() *Applicator { return p.applicator }

// Close stops the collector, cancels in-flight requests and waits for them
// to return.
func (p *Pipeline) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()

	p.sched.Stop()
	p.cancel()
	p.wg.Wait()
}

func (p *Pipeline) runCycle(events []ChangeEvent) {
	if len(events) == 0 {
		return
	}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.cycle++
	cycle := p.cycle
	p.wg.Add(1)
	p.mu.Unlock()

	summaries := Summarize(events)
	text := events[len(events)-1].Text
	log := p.logger.With(zap.Uint64("cycle", cycle))
	log.Debug("starting suggestion cycle", zap.Int("events", len(events)), zap.Int("edits", len(summaries)))

	go func() {
		defer p.wg.Done()
		start := time.Now()
		raw, err := p.requester.Request(p.ctx, summaries, text)
		if err != nil {
			log.Warn("suggestion request failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
			return
		}
		edits, err := Parse(raw)
		if err != nil {
			log.Debug("ignoring model response", zap.Error(err), zap.String("response", raw))
			return
		}
		if !p.accept(cycle, edits) {
			log.Debug("dropping stale suggestions", zap.Uint64("current", p.store.Cycle()))
			return
		}
		log.Info("suggestions updated", zap.Int("count", p.store.Len()), zap.Duration("elapsed", time.Since(start)))
		if p.cfg.OnSuggestions != nil {
			p.cfg.OnSuggestions(p.store.Edits())
		}
	}()
}

func (p *Pipeline) accept(cycle uint64, edits []CandidateEdit) bool {
	if p.cfg.AcceptStaleResponses {
		p.store.Replace(edits)
		return true
	}
	return p.store.Offer(cycle, edits)
}
