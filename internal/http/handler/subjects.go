package handler

import (
	"net/http"
	"strings"

	"studypulse/internal/auth"
	"studypulse/internal/logger"
	"studypulse/internal/store"
	"studypulse/internal/subject"
)

type SubjectHandler struct {
	Subjects           store.SubjectStore
	DefaultTargetHours float64
	Log                *logger.Logger
}

type createSubjectReq struct {
	Name               string   `json:"name" validate:"required,max=100"`
	Color              *string  `json:"color" validate:"omitempty,hexcolor"`
	TargetHoursPerWeek *float64 `json:"target_hours_per_week" validate:"omitempty,gte=0,lte=168"`
}

type updateSubjectReq struct {
	Name               *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Color              *string  `json:"color" validate:"omitempty,hexcolor"`
	TargetHoursPerWeek *float64 `json:"target_hours_per_week" validate:"omitempty,gte=0,lte=168"`
}

func (h *SubjectHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	rows, err := h.Subjects.ListSubjects(r.Context(), uid)
	if err != nil {
		fromError(w, h.Log, err)
		return
	}
	ok(w, http.StatusOK, rows)
}

// Create is the explicit create path; unlike ingestion it reports a
// duplicate name as a conflict.
func (h *SubjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req createSubjectReq
	if !decode(w, r, &req) {
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		fail(w, http.StatusBadRequest, "invalid input: Name required")
		return
	}

	s := store.Subject{
		UserID:             uid,
		Name:               name,
		Color:              subject.ColorFor(name),
		TargetHoursPerWeek: h.DefaultTargetHours,
	}
	if req.Color != nil {
		s.Color = *req.Color
	}
	if req.TargetHoursPerWeek != nil {
		s.TargetHoursPerWeek = *req.TargetHoursPerWeek
	}
	if err := h.Subjects.CreateSubject(r.Context(), &s); err != nil {
		fromError(w, h.Log, err)
		return
	}
	ok(w, http.StatusCreated, s)
}

func (h *SubjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	id, valid := idParam(w, r)
	if !valid {
		return
	}

	var req updateSubjectReq
	if !decode(w, r, &req) {
		return
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			fail(w, http.StatusBadRequest, "invalid input: Name min")
			return
		}
		req.Name = &name
	}

	s, err := h.Subjects.UpdateSubject(r.Context(), uid, id, store.SubjectPatch{
		Name:               req.Name,
		Color:              req.Color,
		TargetHoursPerWeek: req.TargetHoursPerWeek,
	})
	if err != nil {
		fromError(w, h.Log, err)
		return
	}
	ok(w, http.StatusOK, s)
}

// Delete removes the subject; its logs and deadlines stay, unlinked.
func (h *SubjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	id, valid := idParam(w, r)
	if !valid {
		return
	}
	if err := h.Subjects.DeleteSubject(r.Context(), uid, id); err != nil {
		fromError(w, h.Log, err)
		return
	}
	ok(w, http.StatusOK, map[string]any{"id": id})
}
