package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"studypulse/internal/auth"
	"studypulse/internal/logger"
	"studypulse/internal/store"
)

type DeadlineHandler struct {
	Deadlines store.DeadlineStore
	Subjects  store.SubjectStore
	Log       *logger.Logger

	Now      func() time.Time
	Location *time.Location
}

type createDeadlineReq struct {
	Title     string  `json:"title" validate:"required,max=200"`
	Type      string  `json:"type" validate:"omitempty,oneof=task exam assignment"`
	Priority  string  `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate   string  `json:"due_date" validate:"required"`
	SubjectID *string `json:"subject_id"`
}

type updateDeadlineReq struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed"`
}

// List returns deadlines due today or later, soonest first.
func (h *DeadlineHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	rows, err := h.Deadlines.UpcomingDeadlines(r.Context(), uid, h.today())
	if err != nil {
		fromError(w, h.Log, err)
		return
	}
	ok(w, http.StatusOK, rows)
}

func (h *DeadlineHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req createDeadlineReq
	if !decode(w, r, &req) {
		return
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		fail(w, http.StatusBadRequest, "invalid input: Title required")
		return
	}
	due, err := store.ParseDay(strings.TrimSpace(req.DueDate))
	if err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}
	subjectID, err := parseUUIDPtr(req.SubjectID)
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid subject_id")
		return
	}
	if subjectID != nil {
		if _, err := h.Subjects.GetSubject(r.Context(), uid, *subjectID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				fail(w, http.StatusBadRequest, "unknown subject_id")
				return
			}
			fromError(w, h.Log, err)
			return
		}
	}

	d := store.Deadline{
		UserID:    uid,
		SubjectID: subjectID,
		Title:     title,
		Type:      store.DeadlineType(req.Type),
		Priority:  req.Priority,
		DueDate:   due,
	}
	if err := h.Deadlines.CreateDeadline(r.Context(), &d); err != nil {
		fromError(w, h.Log, err)
		return
	}
	ok(w, http.StatusCreated, d)
}

func (h *DeadlineHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	id, valid := idParam(w, r)
	if !valid {
		return
	}

	var req updateDeadlineReq
	if !decode(w, r, &req) {
		return
	}
	d, err := h.Deadlines.UpdateDeadlineStatus(r.Context(), uid, id, store.DeadlineStatus(req.Status))
	if err != nil {
		fromError(w, h.Log, err)
		return
	}
	ok(w, http.StatusOK, d)
}

func (h *DeadlineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	id, valid := idParam(w, r)
	if !valid {
		return
	}
	if err := h.Deadlines.DeleteDeadline(r.Context(), uid, id); err != nil {
		fromError(w, h.Log, err)
		return
	}
	ok(w, http.StatusOK, map[string]any{"id": id})
}

func (h *DeadlineHandler) today() store.Day {
	return localToday(h.Now, h.Location)
}
