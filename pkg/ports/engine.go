package ports

import (
	"context"

	"github.com/aretw0/sortvis/pkg/domain"
)

// Replayer defines the stateless surface of the replay core.
// This is the primary interface used by adapters (e.g., HTTP, MCP) that work per-request.
type Replayer interface {
	// BuildSteps returns the full step list of an algorithm over values.
	BuildSteps(ctx context.Context, alg domain.Algorithm, values []int) ([]domain.Step, error)

	// Simulate replays every step on a fresh board and returns its final snapshot.
	Simulate(ctx context.Context, alg domain.Algorithm, values []int) (domain.Snapshot, error)
}
