package handler

import (
	"net/http"

	"studypulse/internal/auth"
)

type MeHandler struct{}

func (h *MeHandler) Me(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	ok(w, http.StatusOK, map[string]any{"user_id": uid})
}
