package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/fadedpez/tucojack/internal/logging"
)

var errDone = errors.New("stepper done")

// Stepper performs one paced action and reports whether the sequence is over
type Stepper func(ctx context.Context) (done bool, err error)

// Pacer calls a Stepper at a fixed interval so automated play is visible
type Pacer struct {
	clock quartz.Clock
	delay time.Duration
}

// NewPacer creates a pacer. A non-positive delay runs every step at once.
func NewPacer(clock quartz.Clock, delay time.Duration) *Pacer {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Pacer{
		clock: clock,
		delay: delay,
	}
}

// Start schedules step every delay until it reports done, fails, or ctx
// ends. The first step runs one delay after Start returns.
func (p *Pacer) Start(ctx context.Context, name string, step Stepper) *Run {
	ctx, cancel := context.WithCancel(ctx)
	run := &Run{
		name:   name,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	if p.delay <= 0 {
		run.finish(drain(ctx, step))
		return run
	}

	waiter := p.clock.TickerFunc(ctx, p.delay, func() error {
		done, err := step(ctx)
		if err != nil {
			return err
		}
		if done {
			return errDone
		}
		return nil
	}, name)

	go func() {
		run.finish(waiter.Wait())
	}()
	return run
}

func drain(ctx context.Context, step Stepper) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		done, err := step(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Run is a started sequence of paced steps
type Run struct {
	name   string
	cancel context.CancelFunc
	done   chan struct{}

	once sync.Once
	err  error
}

func (r *Run) finish(err error) {
	r.once.Do(func() {
		if errors.Is(err, errDone) {
			err = nil
		}
		r.err = err
		r.cancel()
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Default.Warn("[PACER] %s stopped: %v", r.name, err)
		}
		close(r.done)
	})
}

// Done is closed once the run has ended
func (r *Run) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the run ends. It returns nil when the stepper reported
// done, the stepper's error, or the context error when stopped early.
func (r *Run) Wait() error {
	<-r.done
	return r.err
}

// Stop cancels the remaining steps
func (r *Run) Stop() {
	r.cancel()
}
