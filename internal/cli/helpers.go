package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/sortvis/internal/config"
	"github.com/aretw0/sortvis/internal/logging"
	"github.com/aretw0/sortvis/pkg/adapters/memory"
	"github.com/aretw0/sortvis/pkg/adapters/redis"
	"github.com/aretw0/sortvis/pkg/ports"
	"github.com/aretw0/sortvis/pkg/runner"
	backend "github.com/redis/go-redis/v9"
)

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from Stdout frames).
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// serverLogger always logs to Stderr, at Debug level when debug is set.
func serverLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.New(slog.LevelInfo)
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

// openCache connects the Redis step cache when a URL is configured and falls
// back to a bounded in-process cache otherwise.
func openCache(ctx context.Context, cfg config.Config, logger *slog.Logger) (ports.StepCache, func() error, error) {
	nop := func() error { return nil }
	if cfg.RedisURL == "" {
		logger.Debug("step cache in memory", "max_entries", memory.DefaultMaxEntries)
		return memory.NewCache(), nop, nil
	}
	opts, err := backend.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nop, fmt.Errorf("parse redis url: %w", err)
	}
	cache := redis.NewFromClient(backend.NewClient(opts), redis.WithTTL(cfg.CacheTTL))
	if err := cache.Ping(ctx); err != nil {
		_ = cache.Close()
		return nil, nop, fmt.Errorf("connect redis: %w", err)
	}
	logger.Info("step cache enabled", "addr", opts.Addr, "ttl", cfg.CacheTTL)
	return cache, cache.Close, nil
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, runner.ErrQuit)
}

// handleExecutionError maps user interruptions to a clean exit.
func handleExecutionError(err error) error {
	if err == nil || isInterrupted(err) {
		return nil
	}
	return err
}
