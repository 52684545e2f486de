package ports

import (
	"context"

	"github.com/aretw0/sortvis/pkg/domain"
)

// Renderer draws board snapshots. It is the only contact point between the
// replay core and a UI binding (terminal, NDJSON, SSE...).
// Render is called once per tick with one snapshot per board, in board order.
type Renderer interface {
	Render(ctx context.Context, boards []domain.Snapshot) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(ctx context.Context, boards []domain.Snapshot) error

// Render calls f.
func (f RendererFunc) Render(ctx context.Context, boards []domain.Snapshot) error {
	return f(ctx, boards)
}
