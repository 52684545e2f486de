package steps

import "github.com/aretw0/sortvis/pkg/domain"

type span struct{ lo, hi int }

// quickBuilder accumulates steps over a private working copy.
type quickBuilder struct {
	a   []int
	out []domain.Step
}

func (b *quickBuilder) emit(s domain.Step) {
	b.out = append(b.out, s)
}

func (b *quickBuilder) swap(i, j int) {
	if i == j {
		return
	}
	b.a[i], b.a[j] = b.a[j], b.a[i]
	b.emit(domain.Swap{I: i, J: j})
}

// BuildQuickSteps returns the steps of an iterative quicksort using two-pointer
// partitioning with the rightmost element of each range as the pivot.
//
// Ranges are processed from an explicit stack; the right subrange is pushed
// before the left one so the left is partitioned next.
func BuildQuickSteps(values []int) []domain.Step {
	b := &quickBuilder{a: append([]int(nil), values...)}
	stack := []span{{0, len(b.a) - 1}}

	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if r.lo >= r.hi {
			continue
		}
		mid := b.partition(r.lo, r.hi)
		stack = append(stack, span{mid + 1, r.hi}, span{r.lo, mid - 1})
	}

	b.emit(domain.ClearPivot{})
	b.emit(domain.ClearRange{})
	return b.out
}

// partition places a[hi] at its final position within [lo, hi] and returns it.
func (b *quickBuilder) partition(lo, hi int) int {
	a := b.a
	p := hi
	pivot := a[p]
	b.emit(domain.Range{Lo: lo, Hi: hi})
	b.emit(domain.Pivot{Index: p})

	i, j := lo, hi-1
	b.emit(domain.Boundary{K: i, Lo: lo, Hi: hi})

	for {
		for i <= j && a[i] <= pivot {
			b.emit(domain.Compare{I: i, J: p})
			i++
		}
		if i <= j {
			b.emit(domain.Compare{I: i, J: p})
			b.emit(domain.MarkLeft{I: i})
			b.emit(domain.Boundary{K: i, Lo: lo, Hi: hi})
		}
		for i <= j && a[j] >= pivot {
			b.emit(domain.Compare{I: j, J: p})
			j--
		}
		if i <= j {
			b.emit(domain.Compare{I: j, J: p})
			b.emit(domain.MarkRight{I: j})
		}
		if i >= j {
			b.emit(domain.ClearMarks{})
			break
		}
		b.swap(i, j)
		b.emit(domain.ClearMarks{})
		i++
		j--
		b.emit(domain.Boundary{K: i, Lo: lo, Hi: hi})
	}

	if i > hi {
		i = hi
	}
	b.swap(i, hi)
	b.emit(domain.Pivot{Index: i})
	b.emit(domain.Boundary{K: i, Lo: lo, Hi: hi})
	b.emit(domain.ClearRange{})
	return i
}
