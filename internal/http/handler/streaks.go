package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"studypulse/internal/auth"
	"studypulse/internal/logger"
	"studypulse/internal/store"
	"studypulse/internal/streak"
)

type StreakEvaluator interface {
	Evaluate(ctx context.Context, userID uuid.UUID, asOf store.Day) (streak.Set, error)
}

type StreakHandler struct {
	Streaks StreakEvaluator
	Log     *logger.Logger

	Now      func() time.Time
	Location *time.Location
}

// List reports the caller's streaks as of their local today.
func (h *StreakHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	set, err := h.Streaks.Evaluate(r.Context(), uid, localToday(h.Now, h.Location))
	if err != nil {
		fromError(w, h.Log, err)
		return
	}
	ok(w, http.StatusOK, set.Rows())
}
