package handler

import (
	"net/http"
	"strconv"

	"studypulse/internal/auth"
	"studypulse/internal/logger"
	"studypulse/internal/store"
)

const (
	defaultInsightLimit = 5
	maxInsightLimit     = 50
)

type InsightHandler struct {
	Insights store.InsightStore
	Log      *logger.Logger
}

func (h *InsightHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	limit := defaultInsightLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			fail(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = min(n, maxInsightLimit)
	}

	rows, err := h.Insights.LatestInsights(r.Context(), uid, limit)
	if err != nil {
		fromError(w, h.Log, err)
		return
	}
	ok(w, http.StatusOK, rows)
}

func (h *InsightHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	id, valid := idParam(w, r)
	if !valid {
		return
	}
	if err := h.Insights.MarkInsightRead(r.Context(), uid, id); err != nil {
		fromError(w, h.Log, err)
		return
	}
	ok(w, http.StatusOK, map[string]any{"id": id, "is_read": true})
}
