package steps

import "github.com/aretw0/sortvis/pkg/domain"

// BuildBubbleSteps returns the steps of a classic adjacent-pair bubble sort.
//
// Every inner iteration emits one Compare(j, j+1), followed by Swap(j, j+1) when
// the pair is out of order. There is no early exit on a pass without swaps, so an
// n-element input always yields exactly n*(n-1)/2 comparisons.
func BuildBubbleSteps(values []int) []domain.Step {
	a := append([]int(nil), values...)
	n := len(a)
	var out []domain.Step
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1-i; j++ {
			out = append(out, domain.Compare{I: j, J: j + 1})
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
				out = append(out, domain.Swap{I: j, J: j + 1})
			}
		}
	}
	return out
}
