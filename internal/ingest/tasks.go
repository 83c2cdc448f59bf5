package ingest

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"studypulse/internal/insight"
	"studypulse/internal/jobs"
	"studypulse/internal/streak"
)

// TaskHandlers routes the background task types to the components that
// execute them. Both the queue worker and the inline dispatcher use it.
func TaskHandlers(engine *streak.Engine, gen *insight.Generator) jobs.Handlers {
	return jobs.Handlers{
		jobs.TypeWeeklySummary: func(ctx context.Context, userID uuid.UUID, _ []byte) error {
			_, err := gen.GenerateWeeklySummary(ctx, userID)
			return err
		},
		jobs.TypeStreakRecompute: func(ctx context.Context, userID uuid.UUID, payload []byte) error {
			var p StreakPayload
			if err := json.Unmarshal(payload, &p); err != nil {
				return fmt.Errorf("decode streak payload: %w", err)
			}
			_, err := engine.Recompute(ctx, userID, p.AsOf)
			return err
		},
	}
}
