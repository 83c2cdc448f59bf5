package store

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StudyLog is one submitted study session. Owned by UserID; SubjectID is a
// weak reference that is nulled when the subject is deleted.
type StudyLog struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID                   `gorm:"type:uuid;index;not null" json:"user_id"`
	SubjectID       *uuid.UUID                  `gorm:"type:uuid;index" json:"subject_id"`
	RawText         string                      `gorm:"type:text;not null" json:"raw_text"`
	ExtractedTopics datatypes.JSONSlice[string] `gorm:"not null" json:"extracted_topics"`
	DurationMinutes int                         `gorm:"not null;default:0" json:"duration_minutes"`
	StudyDate       Day                         `gorm:"type:varchar(10);index;not null" json:"study_date"`
	MoodScore       *int                        `json:"mood_score"`
	DifficultyLevel *int                        `json:"difficulty_level"`
	Insights        string                      `gorm:"type:text;not null;default:''" json:"insights"`
	CreatedAt       time.Time                   `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time                   `gorm:"not null" json:"updated_at"`
}

// LogPatch is a user-initiated edit. Nil fields are left unchanged.
// ClearSubject unlinks the log from its subject.
type LogPatch struct {
	RawText         *string
	ExtractedTopics []string
	DurationMinutes *int
	StudyDate       *Day
	MoodScore       *int
	DifficultyLevel *int
	Insights        *string
	SubjectID       *uuid.UUID
	ClearSubject    bool
}

type Subject struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Name               string    `gorm:"type:text;not null" json:"name"`
	Color              string    `gorm:"type:varchar(16);not null" json:"color"`
	TargetHoursPerWeek float64   `gorm:"not null;default:0" json:"target_hours_per_week"`
	CreatedAt          time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time `gorm:"not null" json:"updated_at"`
}

type SubjectPatch struct {
	Name               *string
	Color              *string
	TargetHoursPerWeek *float64
}

type StreakType string

const (
	StreakDaily   StreakType = "daily"
	StreakWeekly  StreakType = "weekly"
	StreakMonthly StreakType = "monthly"
)

// StreakTypes lists every streak kind in display order.
var StreakTypes = []StreakType{StreakDaily, StreakWeekly, StreakMonthly}

// Streak is one row per (user, streak type). Rows are replaced wholesale by
// the streak engine; LongestStreak >= CurrentStreak always holds.
type Streak struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_streaks_user_type" json:"user_id"`
	StreakType    StreakType `gorm:"type:varchar(16);not null;uniqueIndex:uq_streaks_user_type" json:"streak_type"`
	CurrentStreak int        `gorm:"not null;default:0" json:"current_streak"`
	LongestStreak int        `gorm:"not null;default:0" json:"longest_streak"`
	LastActivity  *Day       `gorm:"type:varchar(10)" json:"last_activity"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"not null" json:"updated_at"`
}

const InsightWeeklySummary = "weekly_summary"

// AIInsight is append-only apart from the IsRead flag.
type AIInsight struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;index;not null" json:"user_id"`
	InsightType string         `gorm:"type:varchar(32);not null" json:"insight_type"`
	Content     datatypes.JSON `gorm:"not null" json:"content"`
	GeneratedAt time.Time      `gorm:"index;not null" json:"generated_at"`
	IsRead      bool           `gorm:"not null;default:false" json:"is_read"`
}

func (AIInsight) TableName() string { return "ai_insights" }

type DeadlineType string

const (
	DeadlineTask       DeadlineType = "task"
	DeadlineExam       DeadlineType = "exam"
	DeadlineAssignment DeadlineType = "assignment"
)

type DeadlineStatus string

const (
	StatusPending    DeadlineStatus = "pending"
	StatusInProgress DeadlineStatus = "in_progress"
	StatusCompleted  DeadlineStatus = "completed"
)

// Deadline is a task or exam on the student's calendar.
type Deadline struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;index;not null" json:"user_id"`
	SubjectID *uuid.UUID     `gorm:"type:uuid;index" json:"subject_id"`
	Title     string         `gorm:"type:text;not null" json:"title"`
	Type      DeadlineType   `gorm:"type:varchar(16);not null;default:'task'" json:"type"`
	Priority  string         `gorm:"type:varchar(16);not null;default:'medium'" json:"priority"`
	Status    DeadlineStatus `gorm:"type:varchar(16);not null;default:'pending'" json:"status"`
	DueDate   Day            `gorm:"type:varchar(10);index;not null" json:"due_date"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
}

type GoalType string

const (
	GoalHours    GoalType = "hours"
	GoalSubjects GoalType = "subjects"
	GoalStreak   GoalType = "streak"
)

// Goal is a user-set target over [StartDate, Deadline]. Only the definition
// is stored; the current value is derived from the log when read.
type Goal struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Description string    `gorm:"type:text;not null;default:''" json:"description"`
	GoalType    GoalType  `gorm:"type:varchar(16);not null" json:"goal_type"`
	TargetValue float64   `gorm:"not null" json:"target_value"`
	StartDate   Day       `gorm:"type:varchar(10);not null" json:"start_date"`
	Deadline    *Day      `gorm:"type:varchar(10)" json:"deadline"`
	CreatedAt   time.Time `gorm:"index;not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// GoalPatch edits a goal's definition. The type and start date are fixed.
type GoalPatch struct {
	Title         *string
	Description   *string
	TargetValue   *float64
	Deadline      *Day
	ClearDeadline bool
}
