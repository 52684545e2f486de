package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/sortvis"
	"github.com/aretw0/sortvis/internal/config"
	"github.com/aretw0/sortvis/internal/presentation/tui"
	"github.com/aretw0/sortvis/pkg/observability"
	"github.com/aretw0/sortvis/pkg/ports"
	"github.com/aretw0/sortvis/pkg/runner"
	"golang.org/x/term"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	Config config.Config

	// JSON streams NDJSON frames and plays to completion.
	JSON bool
	// Headless plays to completion without controls and prints the final frame.
	Headless bool
	// Values replaces the random array when non-empty.
	Values []int

	In  io.Reader
	Out io.Writer

	// Tickers overrides the wall clock ticker, mostly for tests.
	Tickers runner.TickerFactory
}

func (o RunOptions) jsonMode() bool {
	return o.JSON || o.Config.Renderer == config.RendererJSON
}

// Execute runs one visualizer session in the mode selected by opts.
func Execute(ctx context.Context, opts RunOptions) error {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	cfg := opts.Config
	logger := createLogger(cfg.Debug)

	cache, closeCache, err := openCache(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeCache(); err != nil {
			logger.Warn("closing step cache", "err", err)
		}
	}()

	switch {
	case opts.jsonMode():
		v := newVisualizer(opts, logger, cache, runner.NewJSONRenderer(opts.Out))
		return handleExecutionError(playToEnd(ctx, v, opts))
	case opts.Headless:
		v := newVisualizer(opts, logger, cache, nil)
		if err := playToEnd(ctx, v, opts); err != nil {
			return handleExecutionError(err)
		}
		return tui.NewBarRenderer(opts.Out).Render(ctx, v.Snapshots())
	default:
		return handleExecutionError(runInteractive(ctx, opts, logger, cache))
	}
}

func newVisualizer(opts RunOptions, logger *slog.Logger, cache ports.StepCache, renderer ports.Renderer) *sortvis.Visualizer {
	cfg := opts.Config
	visOpts := []sortvis.Option{
		sortvis.WithLogger(logger),
		sortvis.WithSize(cfg.Size),
		sortvis.WithSpeed(cfg.Speed),
		sortvis.WithTickerFactory(opts.Tickers),
	}
	if cfg.Seed != 0 {
		visOpts = append(visOpts, sortvis.WithSeed(cfg.Seed))
	}
	if cfg.Debug {
		visOpts = append(visOpts, sortvis.WithLifecycleHooks(observability.LoggingHooks(logger)))
	}
	if cache != nil {
		visOpts = append(visOpts, sortvis.WithStepCache(cache))
	}
	if renderer != nil {
		visOpts = append(visOpts, sortvis.WithRenderer(renderer))
	}
	return sortvis.New(visOpts...)
}

func playToEnd(ctx context.Context, v *sortvis.Visualizer, opts RunOptions) error {
	sm := runner.NewSignalManager(ctx)
	defer sm.Stop()
	sigCtx := sm.Context()

	if len(opts.Values) > 0 {
		v.Load(sigCtx, opts.Values)
	}
	if err := v.Play(sigCtx); err != nil {
		return err
	}
	return v.Wait(sigCtx)
}

func runInteractive(ctx context.Context, opts RunOptions, logger *slog.Logger, cache ports.StepCache) error {
	out := opts.Out
	width := 0

	if in, ok := opts.In.(*os.File); ok && term.IsTerminal(int(in.Fd())) {
		state, err := term.MakeRaw(int(in.Fd()))
		if err != nil {
			return fmt.Errorf("enter raw mode: %w", err)
		}
		defer func() {
			if err := term.Restore(int(in.Fd()), state); err != nil {
				logger.Warn("restoring terminal", "err", err)
			}
		}()
		if cols, _, err := term.GetSize(int(in.Fd())); err == nil {
			width = cols
		}
		// Raw mode disables the newline translation; the terminal writer restores it.
		out = term.NewTerminal(struct {
			io.Reader
			io.Writer
		}{opts.In, opts.Out}, "")
	}

	tui.PrintBanner(out, sortvis.Version)
	if legend, err := tui.Legend(width); err == nil {
		fmt.Fprint(out, legend)
	} else {
		logger.Debug("legend unavailable", "err", err)
	}

	renderer := tui.NewBarRenderer(out, tui.WithClearScreen(true), tui.WithWidth(width))
	v := newVisualizer(opts, logger, cache, renderer)

	sm := runner.NewSignalManager(ctx)
	defer sm.Stop()
	sigCtx := sm.Context()

	if len(opts.Values) > 0 {
		v.Load(sigCtx, opts.Values)
	}
	if err := v.Play(sigCtx); err != nil {
		return err
	}
	err := runner.NewControls(v.Runner(), opts.In, sm).Run(sigCtx)
	v.Pause()
	printSystemMessage(out, "Stopped after %d steps.", totalCursor(v))
	return err
}

func totalCursor(v *sortvis.Visualizer) int {
	n := 0
	for _, s := range v.Snapshots() {
		n += s.Cursor
	}
	return n
}
