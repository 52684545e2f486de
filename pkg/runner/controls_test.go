package runner_test

import (
	"strings"
	"testing"

	"github.com/aretw0/sortvis/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControls_Keys(t *testing.T) {
	r, clock := newTestRunner(t)
	c := runner.NewControls(r, strings.NewReader(""), nil)
	ctx := t.Context()

	require.NoError(t, c.Handle(ctx, ' '))
	assert.True(t, r.Playing())
	assert.Equal(t, 2, clock.Active())

	require.NoError(t, c.Handle(ctx, '+'))
	assert.InDelta(t, 1.05, r.Speed(), 1e-9)
	require.NoError(t, c.Handle(ctx, '-'))
	require.NoError(t, c.Handle(ctx, '-'))
	assert.InDelta(t, 0.95, r.Speed(), 1e-9)

	require.NoError(t, c.Handle(ctx, 'p'))
	assert.False(t, r.Playing())

	require.NoError(t, c.Handle(ctx, ']'))
	assert.Equal(t, 8+runner.SizeStep, r.Size())
	require.NoError(t, c.Handle(ctx, '['))
	assert.Equal(t, 8, r.Size())

	before := r.Base()
	require.NoError(t, c.Handle(ctx, 's'))
	assert.NotEqual(t, before, r.Base())

	require.NoError(t, c.Handle(ctx, 'x'), "unknown keys are ignored")
	assert.ErrorIs(t, c.Handle(ctx, 'q'), runner.ErrQuit)
}

func TestControls_Run(t *testing.T) {
	r, _ := newTestRunner(t)

	err := runner.NewControls(r, strings.NewReader("+ "), nil).Run(t.Context())
	assert.NoError(t, err, "EOF ends the loop cleanly")
	assert.True(t, r.Playing())

	err = runner.NewControls(r, strings.NewReader("q+"), nil).Run(t.Context())
	assert.ErrorIs(t, err, runner.ErrQuit)
	assert.False(t, r.Playing())
}
