// Package ingest is the write path: it turns a raw study note into a stored
// log and keeps the derived streak and insight data in step with it.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"studypulse/internal/extract"
	"studypulse/internal/jobs"
	"studypulse/internal/logger"
	"studypulse/internal/store"
	"studypulse/internal/streak"
)

var ErrValidation = errors.New("validation failed")

// insightMinMinutes is the session length above which a weekly summary is
// regenerated after an append.
const insightMinMinutes = 30

type SubjectResolver interface {
	Resolve(ctx context.Context, userID uuid.UUID, name string) (*uuid.UUID, error)
}

type StreakRecomputer interface {
	Recompute(ctx context.Context, userID uuid.UUID, asOf store.Day) (streak.Set, error)
}

type Service struct {
	Logs     store.LogStore
	Subjects store.SubjectStore
	Resolver SubjectResolver
	Streaks  StreakRecomputer
	Jobs     jobs.Dispatcher
	Log      *logger.Logger

	Now      func() time.Time
	Location *time.Location
}

type Input struct {
	UserID    uuid.UUID
	RawText   string
	StudyDate *store.Day
}

type Result struct {
	Log       store.StudyLog
	Extracted extract.ExtractedLog
}

// StreakPayload is the payload of a STREAK_RECOMPUTE task.
type StreakPayload struct {
	AsOf store.Day `json:"as_of"`
}

// Ingest validates, extracts, resolves the subject and appends the log.
// Streak and insight work that follows is best-effort: its failures are
// logged and never fail an append that has already happened.
func (s *Service) Ingest(ctx context.Context, in Input) (Result, error) {
	raw := strings.TrimSpace(in.RawText)
	if in.UserID == uuid.Nil {
		return Result{}, fmt.Errorf("%w: user_id is required", ErrValidation)
	}
	if raw == "" {
		return Result{}, fmt.Errorf("%w: raw_text is required", ErrValidation)
	}
	date := s.today()
	if in.StudyDate != nil {
		if !in.StudyDate.Valid() {
			return Result{}, fmt.Errorf("%w: study_date must be YYYY-MM-DD", ErrValidation)
		}
		date = *in.StudyDate
	}

	ex := extract.Extract(raw)

	subjectID, err := s.Resolver.Resolve(ctx, in.UserID, ex.Subject)
	if err != nil {
		return Result{}, fmt.Errorf("resolve subject: %w", err)
	}

	log := store.StudyLog{
		UserID:          in.UserID,
		SubjectID:       subjectID,
		RawText:         raw,
		ExtractedTopics: datatypes.JSONSlice[string](ex.Topics),
		DurationMinutes: ex.DurationMinutes,
		StudyDate:       date,
		MoodScore:       &ex.MoodScore,
		DifficultyLevel: &ex.DifficultyLevel,
		Insights:        ex.Insights,
	}
	if err := s.Logs.AppendLog(ctx, &log); err != nil {
		return Result{}, fmt.Errorf("append log: %w", err)
	}

	s.recomputeStreaks(ctx, in.UserID)
	if ex.DurationMinutes > insightMinMinutes {
		if err := s.Jobs.Dispatch(ctx, in.UserID, jobs.TypeWeeklySummary, struct{}{}); err != nil {
			s.logger().Warn("dispatch weekly summary failed", "user_id", in.UserID.String(), "error", err)
		}
	}

	return Result{Log: log, Extracted: ex}, nil
}

// Edit is a user-initiated change to a stored log. Nil fields are unchanged.
// A new RawText is re-extracted; explicit fields in the same edit win over
// the extracted values.
type Edit struct {
	RawText         *string
	DurationMinutes *int
	StudyDate       *store.Day
	MoodScore       *int
	DifficultyLevel *int
	SubjectID       *uuid.UUID
	ClearSubject    bool
}

func (s *Service) UpdateLog(ctx context.Context, userID, id uuid.UUID, e Edit) (store.StudyLog, error) {
	if err := s.validateEdit(ctx, userID, e); err != nil {
		return store.StudyLog{}, err
	}

	patch := store.LogPatch{
		DurationMinutes: e.DurationMinutes,
		StudyDate:       e.StudyDate,
		MoodScore:       e.MoodScore,
		DifficultyLevel: e.DifficultyLevel,
		SubjectID:       e.SubjectID,
		ClearSubject:    e.ClearSubject,
	}
	if e.RawText != nil {
		raw := strings.TrimSpace(*e.RawText)
		ex := extract.Extract(raw)
		patch.RawText = &raw
		patch.ExtractedTopics = ex.Topics
		patch.Insights = &ex.Insights
		if patch.DurationMinutes == nil {
			patch.DurationMinutes = &ex.DurationMinutes
		}
		if patch.MoodScore == nil {
			patch.MoodScore = &ex.MoodScore
		}
		if patch.DifficultyLevel == nil {
			patch.DifficultyLevel = &ex.DifficultyLevel
		}
		if patch.SubjectID == nil && !patch.ClearSubject {
			subjectID, err := s.Resolver.Resolve(ctx, userID, ex.Subject)
			if err != nil {
				return store.StudyLog{}, fmt.Errorf("resolve subject: %w", err)
			}
			patch.SubjectID = subjectID
			patch.ClearSubject = subjectID == nil
		}
	}

	updated, err := s.Logs.UpdateLog(ctx, userID, id, patch)
	if err != nil {
		return store.StudyLog{}, fmt.Errorf("update log: %w", err)
	}
	s.recomputeStreaks(ctx, userID)
	return updated, nil
}

func (s *Service) DeleteLog(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.Logs.RemoveLog(ctx, userID, id); err != nil {
		return fmt.Errorf("remove log: %w", err)
	}
	s.recomputeStreaks(ctx, userID)
	return nil
}

func (s *Service) validateEdit(ctx context.Context, userID uuid.UUID, e Edit) error {
	switch {
	case e.RawText != nil && strings.TrimSpace(*e.RawText) == "":
		return fmt.Errorf("%w: raw_text must not be empty", ErrValidation)
	case e.DurationMinutes != nil && *e.DurationMinutes < 0:
		return fmt.Errorf("%w: duration_minutes must be >= 0", ErrValidation)
	case e.StudyDate != nil && !e.StudyDate.Valid():
		return fmt.Errorf("%w: study_date must be YYYY-MM-DD", ErrValidation)
	case e.MoodScore != nil && (*e.MoodScore < 1 || *e.MoodScore > 5):
		return fmt.Errorf("%w: mood_score must be 1-5", ErrValidation)
	case e.DifficultyLevel != nil && (*e.DifficultyLevel < 1 || *e.DifficultyLevel > 5):
		return fmt.Errorf("%w: difficulty_level must be 1-5", ErrValidation)
	}
	if e.SubjectID != nil {
		if _, err := s.Subjects.GetSubject(ctx, userID, *e.SubjectID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%w: unknown subject_id", ErrValidation)
			}
			return fmt.Errorf("check subject: %w", err)
		}
	}
	return nil
}

// recomputeStreaks runs the engine inline and falls back to a background
// task when that fails.
func (s *Service) recomputeStreaks(ctx context.Context, userID uuid.UUID) {
	asOf := s.today()
	_, err := s.Streaks.Recompute(ctx, userID, asOf)
	if err == nil {
		return
	}
	s.logger().Warn("streak recompute failed", "user_id", userID.String(), "error", err)
	if err := s.Jobs.Dispatch(ctx, userID, jobs.TypeStreakRecompute, StreakPayload{AsOf: asOf}); err != nil {
		s.logger().Error("dispatch streak recompute failed", "user_id", userID.String(), "error", err)
	}
}

func (s *Service) today() store.Day {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	loc := s.Location
	if loc == nil {
		loc = time.UTC
	}
	return store.DayOf(now().In(loc))
}

func (s *Service) logger() *logger.Logger {
	if s.Log == nil {
		return logger.NewNop()
	}
	return s.Log
}
