package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/san-kum/portfolio/internal/bubble"
	"github.com/san-kum/portfolio/internal/sequence"
)

type Engine struct {
	cfg Config

	state  atomic.Int32
	cycles atomic.Int64

	mu     sync.Mutex
	handle *Handle
}

// New validates cfg and returns an idle engine. A nil Clock or Source is
// replaced with the wall clock and a time-seeded source.
func New(cfg Config) (*Engine, error) {
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	if cfg.Source == nil {
		cfg.Source = sequence.NewSource(0)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Handle owns one running driver.
type Handle struct {
	frames chan Frame
	done   chan struct{}
	cancel context.CancelFunc
}

// Frames yields every snapshot in publication order. It is closed when
// the driver exits.
func (h *Handle) Frames() <-chan Frame { return h.frames }

// Done is closed once the driver goroutine has exited.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Stop cancels the driver and waits for it to exit. It is safe to call
// more than once and on a nil handle. It must not be called from a
// goroutine that the driver is blocked on.
func (h *Handle) Stop() {
	if h == nil {
		return
	}
	h.cancel()
	<-h.done
}

// Start launches the endless generate, sort, pause loop. While a driver is
// still running the existing handle is returned.
func (e *Engine) Start(ctx context.Context) *Handle {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.handle != nil {
		select {
		case <-e.handle.done:
		default:
			return e.handle
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{
		frames: make(chan Frame),
		done:   make(chan struct{}),
		cancel: cancel,
	}
	e.handle = h
	go e.run(ctx, h)
	return h
}

// Stop stops the active driver, if any. Calling it before Start or
// repeatedly is a no-op.
func (e *Engine) Stop() {
	e.mu.Lock()
	h := e.handle
	e.mu.Unlock()
	h.Stop()
}

func (e *Engine) State() State { return State(e.state.Load()) }

// Cycles is the number of sequences generated since the engine was built.
func (e *Engine) Cycles() int { return int(e.cycles.Load()) }

func (e *Engine) Config() Config { return e.cfg }

func (e *Engine) setState(s State) {
	prev := State(e.state.Swap(int32(s)))
	if prev != s {
		e.cfg.Logger.Debug().Str("from", prev.String()).Str("to", s.String()).Msg("state change")
	}
}

func (e *Engine) run(ctx context.Context, h *Handle) {
	defer close(h.done)
	defer close(h.frames)
	defer e.setState(Idle)

	e.cfg.Logger.Debug().Int("count", e.cfg.Count).Dur("step_delay", e.cfg.StepDelay).Dur("pause", e.cfg.Pause).Msg("driver started")
	for e.cycle(ctx, h) {
	}
	e.cfg.Logger.Debug().Int("cycles", e.Cycles()).Msg("driver stopped")
}

// cycle runs one generate, sort, dwell round. It reports false once the
// driver has to exit.
func (e *Engine) cycle(ctx context.Context, h *Handle) bool {
	if ctx.Err() != nil {
		return false
	}

	seq, err := sequence.Generate(e.cfg.Source, e.cfg.Count, e.cfg.MinValue, e.cfg.MaxValue)
	if err != nil {
		e.cfg.Logger.Error().Err(err).Msg("generate sequence")
		return false
	}
	n := int(e.cycles.Add(1))
	e.setState(Sorting)

	if !e.publish(ctx, h, Frame{Cycle: n, State: Sorting, Sequence: seq.Clone(), Swapped: -1}) {
		return false
	}

	started := e.cfg.Clock.Now()
	last, swaps := seq, 0
	for step := range bubble.Steps(seq) {
		last, swaps = step.Snapshot, step.Swaps
		if !e.publish(ctx, h, Frame{Cycle: n, State: Sorting, Sequence: step.Snapshot, Swaps: swaps, Swapped: step.Index}) {
			return false
		}
		if !e.sleep(ctx, e.cfg.StepDelay) {
			return false
		}
	}

	e.setState(Paused)
	e.cfg.Logger.Debug().Int("cycle", n).Int("swaps", swaps).Dur("elapsed", e.cfg.Clock.Since(started)).Msg("sequence sorted")
	if !e.publish(ctx, h, Frame{Cycle: n, State: Paused, Sequence: last.Clone(), Swaps: swaps, Swapped: -1}) {
		return false
	}
	if !e.sleep(ctx, e.cfg.Pause) {
		return false
	}

	e.setState(Idle)
	return true
}

func (e *Engine) publish(ctx context.Context, h *Handle, f Frame) bool {
	if ctx.Err() != nil {
		return false
	}
	select {
	case h.frames <- f:
		return true
	case <-ctx.Done():
		return false
	}
}

// sleep waits d on the engine clock. The timer is always released.
func (e *Engine) sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := e.cfg.Clock.Timer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
