package testutils

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/sortvis/pkg/runner"
)

// FastTicker ignores the requested period and ticks every millisecond,
// so real-clock replays finish quickly in tests.
func FastTicker(_ time.Duration, fn func()) runner.Ticker {
	return runner.NewTimeTicker(time.Millisecond, fn)
}

// StartRedis starts an in-memory Redis for the duration of the test and
// returns it with its redis:// URL.
// It fails the test immediately on error.
func StartRedis(t *testing.T) (*miniredis.Miniredis, string) {
	t.Helper()

	mr := miniredis.RunT(t)
	return mr, "redis://" + mr.Addr()
}
