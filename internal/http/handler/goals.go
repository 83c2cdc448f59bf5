package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"studypulse/internal/auth"
	"studypulse/internal/goal"
	"studypulse/internal/logger"
	"studypulse/internal/store"
)

// GoalTracker reports progress on every goal of a user.
type GoalTracker interface {
	Progress(ctx context.Context, userID uuid.UUID) ([]goal.Progress, error)
}

type GoalHandler struct {
	Goals   store.GoalStore
	Tracker GoalTracker
	Log     *logger.Logger

	Now      func() time.Time
	Location *time.Location
}

type createGoalReq struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description" validate:"max=2000"`
	GoalType    string  `json:"goal_type" validate:"required,oneof=hours subjects streak"`
	TargetValue float64 `json:"target_value" validate:"gt=0"`
	StartDate   *string `json:"start_date"`
	Deadline    *string `json:"deadline"`
}

type updateGoalReq struct {
	Title         *string  `json:"title" validate:"omitempty,min=1,max=200"`
	Description   *string  `json:"description" validate:"omitempty,max=2000"`
	TargetValue   *float64 `json:"target_value" validate:"omitempty,gt=0"`
	Deadline      *string  `json:"deadline"`
	ClearDeadline bool     `json:"clear_deadline"`
}

// List returns every goal with its progress, newest first.
func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	rows, err := h.Tracker.Progress(r.Context(), uid)
	if err != nil {
		fromError(w, h.Log, err)
		return
	}
	ok(w, http.StatusOK, rows)
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req createGoalReq
	if !decode(w, r, &req) {
		return
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		fail(w, http.StatusBadRequest, "invalid input: Title required")
		return
	}
	start, err := parseDayPtr(req.StartDate)
	if err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if start == nil {
		today := localToday(h.Now, h.Location)
		start = &today
	}
	deadline, err := parseDayPtr(req.Deadline)
	if err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if deadline != nil && deadline.Before(*start) {
		fail(w, http.StatusBadRequest, "deadline is before start_date")
		return
	}

	g := store.Goal{
		UserID:      uid,
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		GoalType:    store.GoalType(req.GoalType),
		TargetValue: req.TargetValue,
		StartDate:   *start,
		Deadline:    deadline,
	}
	if err := h.Goals.CreateGoal(r.Context(), &g); err != nil {
		fromError(w, h.Log, err)
		return
	}
	ok(w, http.StatusCreated, g)
}

// Update edits the definition only; progress is never written.
func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	id, valid := idParam(w, r)
	if !valid {
		return
	}

	var req updateGoalReq
	if !decode(w, r, &req) {
		return
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			fail(w, http.StatusBadRequest, "invalid input: Title min")
			return
		}
		req.Title = &title
	}
	deadline, err := parseDayPtr(req.Deadline)
	if err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	g, err := h.Goals.UpdateGoal(r.Context(), uid, id, store.GoalPatch{
		Title:         req.Title,
		Description:   req.Description,
		TargetValue:   req.TargetValue,
		Deadline:      deadline,
		ClearDeadline: req.ClearDeadline,
	})
	if err != nil {
		fromError(w, h.Log, err)
		return
	}
	ok(w, http.StatusOK, g)
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	id, valid := idParam(w, r)
	if !valid {
		return
	}
	if err := h.Goals.DeleteGoal(r.Context(), uid, id); err != nil {
		fromError(w, h.Log, err)
		return
	}
	ok(w, http.StatusOK, map[string]any{"id": id})
}
