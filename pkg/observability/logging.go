package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/sortvis/pkg/domain"
)

// LoggingHooks logs board lifecycle events. Individual steps are logged at
// debug level only.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnArm: func(ctx context.Context, e *domain.BoardEvent) {
			logger.InfoContext(ctx, "board_arm", "algorithm", e.Algorithm, "steps", e.StepCount)
		},
		OnStep: func(ctx context.Context, e *domain.BoardEvent) {
			if e.Step == nil {
				return
			}
			logger.DebugContext(ctx, "board_step",
				"algorithm", e.Algorithm,
				"cursor", e.Cursor,
				"kind", e.Step.Kind(),
			)
		},
		OnFinish: func(ctx context.Context, e *domain.BoardEvent) {
			logger.InfoContext(ctx, "board_finish", "algorithm", e.Algorithm, "steps", e.StepCount)
		},
		OnReset: func(ctx context.Context, e *domain.BoardEvent) {
			logger.DebugContext(ctx, "board_reset", "algorithm", e.Algorithm)
		},
	}
}
