package handler

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"studypulse/internal/auth"
	"studypulse/internal/extract"
	"studypulse/internal/ingest"
	"studypulse/internal/logger"
	"studypulse/internal/store"
)

type StudyLogHandler struct {
	Svc  *ingest.Service
	Logs store.LogStore
	Log  *logger.Logger
}

type processReq struct {
	RawText   string  `json:"raw_text"`
	UserID    string  `json:"user_id" validate:"required,uuid"`
	StudyDate *string `json:"study_date"`
}

type processResp struct {
	Success       bool                 `json:"success"`
	Data          store.StudyLog       `json:"data"`
	ProcessedData extract.ExtractedLog `json:"processed_data"`
}

// Process is the ingest endpoint. The body's user_id must name the caller.
func (h *StudyLogHandler) Process(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req processReq
	if !decode(w, r, &req) {
		return
	}
	bodyUser, err := uuid.Parse(req.UserID)
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid user_id")
		return
	}
	if bodyUser != uid {
		fail(w, http.StatusForbidden, "user_id does not match the authenticated user")
		return
	}
	date, err := parseDayPtr(req.StudyDate)
	if err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.Svc.Ingest(r.Context(), ingest.Input{UserID: uid, RawText: req.RawText, StudyDate: date})
	if err != nil {
		fromError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, processResp{Success: true, Data: res.Log, ProcessedData: res.Extracted})
}

func (h *StudyLogHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var rng *store.DateRange
	from := strings.TrimSpace(r.URL.Query().Get("from"))
	to := strings.TrimSpace(r.URL.Query().Get("to"))
	if from != "" || to != "" {
		rng = &store.DateRange{}
		for _, p := range []struct {
			raw string
			dst *store.Day
		}{{from, &rng.From}, {to, &rng.To}} {
			if p.raw == "" {
				continue
			}
			d, err := store.ParseDay(p.raw)
			if err != nil {
				fail(w, http.StatusBadRequest, err.Error())
				return
			}
			*p.dst = d
		}
	}

	logs, err := h.Logs.QueryLogs(r.Context(), uid, rng)
	if err != nil {
		fromError(w, h.Log, err)
		return
	}
	ok(w, http.StatusOK, logs)
}

type updateLogReq struct {
	RawText         *string `json:"raw_text"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,gte=0"`
	StudyDate       *string `json:"study_date"`
	MoodScore       *int    `json:"mood_score" validate:"omitempty,min=1,max=5"`
	DifficultyLevel *int    `json:"difficulty_level" validate:"omitempty,min=1,max=5"`
	SubjectID       *string `json:"subject_id"`
	ClearSubject    bool    `json:"clear_subject"`
}

func (h *StudyLogHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	id, valid := idParam(w, r)
	if !valid {
		return
	}

	var req updateLogReq
	if !decode(w, r, &req) {
		return
	}
	date, err := parseDayPtr(req.StudyDate)
	if err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}
	subjectID, err := parseUUIDPtr(req.SubjectID)
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid subject_id")
		return
	}

	updated, err := h.Svc.UpdateLog(r.Context(), uid, id, ingest.Edit{
		RawText:         req.RawText,
		DurationMinutes: req.DurationMinutes,
		StudyDate:       date,
		MoodScore:       req.MoodScore,
		DifficultyLevel: req.DifficultyLevel,
		SubjectID:       subjectID,
		ClearSubject:    req.ClearSubject,
	})
	if err != nil {
		fromError(w, h.Log, err)
		return
	}
	ok(w, http.StatusOK, updated)
}

func (h *StudyLogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	id, valid := idParam(w, r)
	if !valid {
		return
	}
	if err := h.Svc.DeleteLog(r.Context(), uid, id); err != nil {
		fromError(w, h.Log, err)
		return
	}
	ok(w, http.StatusOK, map[string]any{"id": id})
}
