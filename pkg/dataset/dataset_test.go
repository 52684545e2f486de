package dataset_test

import (
	"slices"
	"testing"

	"github.com/aretw0/sortvis/pkg/dataset"
	"github.com/stretchr/testify/assert"
)

func TestGenArray_Permutation(t *testing.T) {
	for _, n := range []int{1, 2, dataset.MinSize, dataset.DefaultSize, dataset.MaxSize, 200} {
		arr := dataset.GenArray(n)
		assert.Len(t, arr, n)
		assert.True(t, dataset.IsPermutation(arr), "n=%d: %v", n, arr)
		assert.Equal(t, 1, slices.Min(arr))
		assert.Equal(t, n, slices.Max(arr))
	}
}

func TestGenArray_NonPositive(t *testing.T) {
	assert.Empty(t, dataset.GenArray(0))
	assert.Empty(t, dataset.GenArray(-4))
}

func TestSeededGenerator_Reproducible(t *testing.T) {
	a := dataset.NewSeededGenerator(99).GenArray(30)
	b := dataset.NewSeededGenerator(99).GenArray(30)
	c := dataset.NewSeededGenerator(100).GenArray(30)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestIsPermutation(t *testing.T) {
	assert.True(t, dataset.IsPermutation(nil))
	assert.True(t, dataset.IsPermutation([]int{2, 3, 1}))
	assert.False(t, dataset.IsPermutation([]int{1, 1, 2}))
	assert.False(t, dataset.IsPermutation([]int{0, 1, 2}))
	assert.False(t, dataset.IsPermutation([]int{1, 2, 4}))
}

func TestClampSize(t *testing.T) {
	assert.Equal(t, dataset.MinSize, dataset.ClampSize(-3))
	assert.Equal(t, 17, dataset.ClampSize(17))
	assert.Equal(t, dataset.MaxSize, dataset.ClampSize(1000))
}
