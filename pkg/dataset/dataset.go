// Package dataset generates the shuffled inputs fed to both boards.
package dataset

import (
	"math/rand/v2"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// Size bounds of the array size control.
const (
	MinSize     = 5
	MaxSize     = 50
	DefaultSize = 20
)

// ClampSize bounds a requested size to [MinSize, MaxSize].
func ClampSize(n int) int {
	return min(MaxSize, max(MinSize, n))
}

// Generator produces uniform random permutations from its own source.
// Safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator creates a generator with a random seed.
func NewGenerator() *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededGenerator creates a generator whose output is reproducible.
func NewSeededGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// GenArray returns a Fisher-Yates shuffled permutation of 1..n.
// Negative sizes yield an empty slice.
func (g *Generator) GenArray(n int) []int {
	n = max(0, n)
	arr := make([]int, n)
	for i := range arr {
		arr[i] = i + 1
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for i := n - 1; i > 0; i-- {
		j := g.rng.IntN(i + 1)
		arr[i], arr[j] = arr[j], arr[i]
	}
	return arr
}

var defaultGenerator = NewGenerator()

// GenArray returns a random permutation of 1..n from the package generator.
func GenArray(n int) []int {
	return defaultGenerator.GenArray(n)
}

// IsPermutation reports whether values holds each of 1..len(values) exactly once.
func IsPermutation(values []int) bool {
	seen := mapset.NewThreadUnsafeSet[int]()
	for _, v := range values {
		if v < 1 || v > len(values) || !seen.Add(v) {
			return false
		}
	}
	return seen.Cardinality() == len(values)
}
