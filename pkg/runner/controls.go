package runner

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/aretw0/sortvis/pkg/pacing"
)

// ErrQuit is returned by Controls.Run when the user asks to leave.
var ErrQuit = errors.New("quit requested")

// SizeStep is the increment applied by the resize keys.
const SizeStep = 5

// Controls maps single key presses to runner commands:
//
//	space/p  play or pause
//	+ / -    speed up or slow down by one stepper increment
//	] / [    grow or shrink the array (reshuffles)
//	s        shuffle
//	q        quit
type Controls struct {
	Runner  *Runner
	Reader  *bufio.Reader
	Signals *SignalManager
}

// NewControls reads key presses from r. The terminal should already be in raw
// mode when r is a TTY.
func NewControls(runner *Runner, r io.Reader, signals *SignalManager) *Controls {
	return &Controls{
		Runner:  runner,
		Reader:  bufio.NewReader(r),
		Signals: signals,
	}
}

// Run consumes keys until EOF, ErrQuit or ctx cancellation.
func (c *Controls) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		key, err := c.Reader.ReadByte()
		if err != nil {
			if c.Signals != nil {
				c.Signals.Settle()
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if err := c.Handle(ctx, key); err != nil {
			return err
		}
	}
}

// Handle applies a single key. Unknown keys are ignored.
func (c *Controls) Handle(ctx context.Context, key byte) error {
	r := c.Runner
	switch key {
	case ' ', 'p':
		if r.Playing() {
			r.Pause()
			return nil
		}
		return r.Play(ctx)
	case '+', '=':
		r.SetSpeed(pacing.Nudge(r.Speed(), 1))
	case '-', '_':
		r.SetSpeed(pacing.Nudge(r.Speed(), -1))
	case ']':
		r.Resize(ctx, r.Size()+SizeStep)
	case '[':
		r.Resize(ctx, r.Size()-SizeStep)
	case 's':
		r.Shuffle(ctx)
	case 'q', 3: // 3 is Ctrl+C in raw mode
		r.Pause()
		return ErrQuit
	}
	return nil
}
