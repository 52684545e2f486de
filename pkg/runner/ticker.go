package runner

import (
	"sync"
	"time"
)

// Ticker is a cancellable periodic callback.
type Ticker interface {
	Stop()
}

// TickerFactory starts a Ticker that invokes fn every d until stopped.
type TickerFactory func(d time.Duration, fn func()) Ticker

type timeTicker struct {
	t    *time.Ticker
	done chan struct{}
	once sync.Once
}

// NewTimeTicker is the wall-clock TickerFactory.
// A callback already in flight may still run once after Stop returns.
func NewTimeTicker(d time.Duration, fn func()) Ticker {
	tt := &timeTicker{
		t:    time.NewTicker(d),
		done: make(chan struct{}),
	}
	go func() {
		for {
			select {
			case <-tt.done:
				return
			case <-tt.t.C:
				fn()
			}
		}
	}()
	return tt
}

func (tt *timeTicker) Stop() {
	tt.once.Do(func() {
		tt.t.Stop()
		close(tt.done)
	})
}

// ManualClock is a TickerFactory driven by explicit Fire calls, for tests and
// step-by-step replays.
type ManualClock struct {
	mu      sync.Mutex
	tickers []*manualTicker
}

type manualTicker struct {
	clock    *ManualClock
	interval time.Duration
	fn       func()
	stopped  bool
}

// NewManualClock creates a clock with no tickers.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Factory returns the TickerFactory bound to this clock.
func (c *ManualClock) Factory() TickerFactory {
	return func(d time.Duration, fn func()) Ticker {
		c.mu.Lock()
		defer c.mu.Unlock()
		t := &manualTicker{clock: c, interval: d, fn: fn}
		c.tickers = append(c.tickers, t)
		return t
	}
}

// Fire invokes every live ticker once, in creation order.
func (c *ManualClock) Fire() {
	for _, t := range c.live() {
		t.fn()
	}
}

// Active reports the number of tickers not yet stopped.
func (c *ManualClock) Active() int {
	return len(c.live())
}

// Intervals returns the periods of the live tickers.
func (c *ManualClock) Intervals() []time.Duration {
	live := c.live()
	out := make([]time.Duration, len(live))
	for i, t := range live {
		out[i] = t.interval
	}
	return out
}

func (c *ManualClock) live() []*manualTicker {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []*manualTicker
	for _, t := range c.tickers {
		if !t.stopped {
			out = append(out, t)
		}
	}
	return out
}

func (t *manualTicker) Stop() {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	t.stopped = true
}
