package runner

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// SignalGrace bounds how long Settle waits for a signal to land after a read
// error. On some terminals Ctrl+C reaches stdin as EOF slightly before SIGINT.
const SignalGrace = 100 * time.Millisecond

// SignalManager cancels a playback context on SIGINT or SIGTERM.
type SignalManager struct {
	ctx  context.Context
	stop context.CancelFunc
}

// NewSignalManager derives a context from parent that is also cancelled by
// SIGINT and SIGTERM. Call Stop to release the signal handlers.
func NewSignalManager(parent context.Context) *SignalManager {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	return &SignalManager{ctx: ctx, stop: stop}
}

// Context is cancelled on signal, on parent cancellation or on Stop.
func (sm *SignalManager) Context() context.Context {
	return sm.ctx
}

// Stop cancels the context and stops relaying signals. Safe to call twice.
func (sm *SignalManager) Stop() {
	sm.stop()
}

// Settle gives a pending signal up to SignalGrace to cancel the context.
// It returns true when the context ended.
func (sm *SignalManager) Settle() bool {
	if sm.ctx.Err() != nil {
		return true
	}
	t := time.NewTimer(SignalGrace)
	defer t.Stop()
	select {
	case <-sm.ctx.Done():
		return true
	case <-t.C:
		return false
	}
}
