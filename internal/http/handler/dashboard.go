package handler

import (
	"net/http"

	"studypulse/internal/auth"
	"studypulse/internal/dashboard"
	"studypulse/internal/logger"
)

type DashboardHandler struct {
	Agg *dashboard.Aggregator
	Log *logger.Logger
}

// Get always answers 200: failed sections are defaulted and only logged.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	snap, failed := h.Agg.BuildSnapshot(r.Context(), uid)
	for _, se := range failed {
		if h.Log != nil {
			h.Log.Warn("dashboard section failed", "user_id", uid.String(), "section", se.Section, "error", se.Err)
		}
	}
	ok(w, http.StatusOK, snap)
}
