package ports

import (
	"context"

	"github.com/aretw0/sortvis/pkg/domain"
)

// StepCache memoizes step lists. Steps are a pure function of the algorithm and
// the input values, so an entry never goes stale.
type StepCache interface {
	// Get retrieves the steps built for alg over values.
	// Returns domain.ErrCacheMiss if no entry exists.
	Get(ctx context.Context, alg domain.Algorithm, values []int) ([]domain.Step, error)

	// Put stores the steps built for alg over values.
	Put(ctx context.Context, alg domain.Algorithm, values []int, steps []domain.Step) error
}
