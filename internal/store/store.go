package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock_store/mock_store.go -package=mock_store studypulse/internal/store LogStore,SubjectStore,StreakStore,InsightStore,DeadlineStore,GoalStore

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// Every method is scoped by the owning user id; rows belonging to another
// user behave as if they did not exist.

// LogStore is the single source of truth for time spent.
type LogStore interface {
	AppendLog(ctx context.Context, log *StudyLog) error
	// QueryLogs returns logs newest first. A nil range means the full history.
	QueryLogs(ctx context.Context, userID uuid.UUID, r *DateRange) ([]StudyLog, error)
	GetLog(ctx context.Context, userID, id uuid.UUID) (StudyLog, error)
	UpdateLog(ctx context.Context, userID, id uuid.UUID, patch LogPatch) (StudyLog, error)
	RemoveLog(ctx context.Context, userID, id uuid.UUID) error
	// ActiveSubjectCount counts distinct subjects with at least one log on or
	// after since. An empty since counts over the full history.
	ActiveSubjectCount(ctx context.Context, userID uuid.UUID, since Day) (int, error)
}

type SubjectStore interface {
	ListSubjects(ctx context.Context, userID uuid.UUID) ([]Subject, error)
	GetSubject(ctx context.Context, userID, id uuid.UUID) (Subject, error)
	// FindSubjectByName matches case-insensitively.
	FindSubjectByName(ctx context.Context, userID uuid.UUID, name string) (Subject, error)
	// CreateSubject fails with ErrConflict when the name is taken.
	CreateSubject(ctx context.Context, s *Subject) error
	// CreateSubjectIfAbsent inserts s unless a subject with the same name
	// already exists, reporting whether s was inserted. It never returns ErrConflict.
	CreateSubjectIfAbsent(ctx context.Context, s *Subject) (bool, error)
	UpdateSubject(ctx context.Context, userID, id uuid.UUID, patch SubjectPatch) (Subject, error)
	// DeleteSubject removes the subject and nulls every log and deadline
	// reference to it. Logs themselves are never deleted.
	DeleteSubject(ctx context.Context, userID, id uuid.UUID) error
}

type StreakStore interface {
	ListStreaks(ctx context.Context, userID uuid.UUID) ([]Streak, error)
	// SaveStreaks upserts rows on (user_id, streak_type).
	SaveStreaks(ctx context.Context, userID uuid.UUID, rows []Streak) error
}

type InsightStore interface {
	AppendInsight(ctx context.Context, in *AIInsight) error
	LatestInsights(ctx context.Context, userID uuid.UUID, limit int) ([]AIInsight, error)
	MarkInsightRead(ctx context.Context, userID, id uuid.UUID) error
}

type DeadlineStore interface {
	CreateDeadline(ctx context.Context, d *Deadline) error
	// UpcomingDeadlines returns deadlines due on or after from, soonest first.
	UpcomingDeadlines(ctx context.Context, userID uuid.UUID, from Day) ([]Deadline, error)
	UpdateDeadlineStatus(ctx context.Context, userID, id uuid.UUID, status DeadlineStatus) (Deadline, error)
	DeleteDeadline(ctx context.Context, userID, id uuid.UUID) error
}

type GoalStore interface {
	CreateGoal(ctx context.Context, g *Goal) error
	// ListGoals returns goals newest first.
	ListGoals(ctx context.Context, userID uuid.UUID) ([]Goal, error)
	UpdateGoal(ctx context.Context, userID, id uuid.UUID, patch GoalPatch) (Goal, error)
	DeleteGoal(ctx context.Context, userID, id uuid.UUID) error
}

// Store is the full persistence surface. Implementations: Gorm (postgres,
// sqlite) and Memory.
type Store interface {
	LogStore
	SubjectStore
	StreakStore
	InsightStore
	DeadlineStore
	GoalStore
}
