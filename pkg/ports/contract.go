package ports

import (
	"context"
	"testing"

	"github.com/aretw0/sortvis/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStepCacheContract runs a suite of tests to verify that a StepCache implementation
// adheres to the defined interface contract.
func RunStepCacheContract(t *testing.T, cache StepCache) {
	ctx := context.Background()
	values := []int{3, 1, 2}

	t.Run("Put and Get", func(t *testing.T) {
		steps := []domain.Step{
			domain.Range{Lo: 0, Hi: 2},
			domain.Pivot{Index: 2},
			domain.Boundary{K: 0, Lo: 0, Hi: 2},
			domain.Compare{I: 0, J: 2},
			domain.MarkLeft{I: 0},
			domain.Swap{I: 0, J: 1},
			domain.ClearMarks{},
			domain.ClearPivot{},
			domain.ClearRange{},
		}

		err := cache.Put(ctx, domain.Quick, values, steps)
		require.NoError(t, err, "Put should not return error")

		loaded, err := cache.Get(ctx, domain.Quick, values)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, steps, loaded)
	})

	t.Run("Get Missing", func(t *testing.T) {
		_, err := cache.Get(ctx, domain.Bubble, []int{9, 8, 7, 6})
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("Keys Are Per Algorithm", func(t *testing.T) {
		bubble := []domain.Step{domain.Compare{I: 0, J: 1}}
		require.NoError(t, cache.Put(ctx, domain.Bubble, []int{1, 2}, bubble))

		_, err := cache.Get(ctx, domain.Quick, []int{1, 2})
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("Empty Step List", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, domain.Bubble, []int{1}, nil))

		loaded, err := cache.Get(ctx, domain.Bubble, []int{1})
		require.NoError(t, err)
		assert.Empty(t, loaded)
	})

	t.Run("Caller Mutation Is Isolated", func(t *testing.T) {
		steps := []domain.Step{domain.Compare{I: 0, J: 1}, domain.Swap{I: 0, J: 1}}
		require.NoError(t, cache.Put(ctx, domain.Bubble, []int{2, 1}, steps))
		steps[0] = domain.ClearMarks{}

		loaded, err := cache.Get(ctx, domain.Bubble, []int{2, 1})
		require.NoError(t, err)
		assert.Equal(t, domain.Compare{I: 0, J: 1}, loaded[0])
	})
}
