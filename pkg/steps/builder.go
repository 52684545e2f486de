package steps

import (
	"fmt"

	"github.com/aretw0/sortvis/pkg/domain"
)

// Builder turns an input sequence into the full ordered list of steps needed
// to sort and visualize it. Builders never mutate their input.
type Builder func(values []int) []domain.Step

// For returns the builder registered for an algorithm.
func For(alg domain.Algorithm) (Builder, error) {
	switch alg {
	case domain.Bubble:
		return BuildBubbleSteps, nil
	case domain.Quick:
		return BuildQuickSteps, nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAlgorithm, alg)
}

// ApplySwaps replays only the Swap steps over a copy of values.
// For any builder output this yields the ascending sort of values.
func ApplySwaps(values []int, list []domain.Step) []int {
	a := append([]int(nil), values...)
	for _, s := range list {
		if sw, ok := s.(domain.Swap); ok {
			a[sw.I], a[sw.J] = a[sw.J], a[sw.I]
		}
	}
	return a
}
