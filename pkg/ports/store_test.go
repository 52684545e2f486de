package ports_test

import (
	"context"
	"testing"

	"github.com/aretw0/sortvis/pkg/domain"
	"github.com/aretw0/sortvis/pkg/ports"
	"github.com/stretchr/testify/assert"
)

// MockCache is a minimal StepCache used to exercise the contract suite itself.
type MockCache struct {
	data map[string][]domain.Step
}

func NewMockCache() *MockCache {
	return &MockCache{data: make(map[string][]domain.Step)}
}

func (m *MockCache) Get(ctx context.Context, alg domain.Algorithm, values []int) ([]domain.Step, error) {
	steps, ok := m.data[ports.CacheKey(alg, values)]
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	return append([]domain.Step(nil), steps...), nil
}

func (m *MockCache) Put(ctx context.Context, alg domain.Algorithm, values []int, steps []domain.Step) error {
	m.data[ports.CacheKey(alg, values)] = append([]domain.Step(nil), steps...)
	return nil
}

func TestStepCache_Contract(t *testing.T) {
	ports.RunStepCacheContract(t, NewMockCache())
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "quick:3,1,2", ports.CacheKey(domain.Quick, []int{3, 1, 2}))
	assert.Equal(t, "bubble:", ports.CacheKey(domain.Bubble, nil))
	assert.NotEqual(t, ports.CacheKey(domain.Bubble, []int{1, 23}), ports.CacheKey(domain.Bubble, []int{12, 3}))
}
