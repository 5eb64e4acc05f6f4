package core

import (
	"context"
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) Now() time.Time                         { return time.Now() }
func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// Ticker calls a function once per interval on its own goroutine until
// stopped.
type Ticker struct {
	mu       sync.Mutex
	clock    Clock
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{clock: realClock{}, interval: interval}
}

// Run blocks, calling fn after every interval, until ctx is cancelled.
func (t *Ticker) Run(ctx context.Context, fn func(time.Time)) {
	for {
		select {
		case now := <-t.clock.After(t.interval):
			if ctx.Err() != nil {
				return
			}
			fn(now)
		case <-ctx.Done():
			return
		}
	}
}

// Start replaces any running loop with a new one driving fn.
func (t *Ticker) Start(fn func(time.Time)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	t.cancel = cancel
	t.done = done
	go func() {
		defer close(done)
		t.Run(ctx, fn)
	}()
}

// Stop cancels the loop and waits for its goroutine to exit.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

func (t *Ticker) stopLocked() {
	if t.cancel == nil {
		return
	}
	t.cancel()
	<-t.done
	t.cancel = nil
	t.done = nil
}
