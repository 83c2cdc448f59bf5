package dashboard

import (
	"github.com/google/uuid"

	"studypulse/internal/goal"
	"studypulse/internal/store"
)

// Snapshot is computed per request and never stored.
type Snapshot struct {
	Subjects       []SubjectProgress `json:"subjects"`
	StudyHoursData []DayHours        `json:"studyHoursData"`
	CalendarEvents []CalendarEvent   `json:"calendarEvents"`
	Insights       []store.AIInsight `json:"insights"`
	Stats          Stats             `json:"stats"`
	Streaks        []store.Streak    `json:"streaks"`
	Goals          []goal.Progress   `json:"goals"`
}

type SubjectProgress struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Color              string    `json:"color"`
	TargetHoursPerWeek float64   `json:"target_hours_per_week"`
	WeeklyHours        float64   `json:"weekly_hours"`
	Progress           int       `json:"progress"`
}

// DayHours is one chart point; Label is a display form such as "Fri, Oct 16".
type DayHours struct {
	Date  store.Day `json:"date"`
	Label string    `json:"label"`
	Hours float64   `json:"hours"`
}

type CalendarEvent struct {
	ID       uuid.UUID            `json:"id"`
	Title    string               `json:"title"`
	Date     store.Day            `json:"date"`
	Type     store.DeadlineType   `json:"type"`
	Priority string               `json:"priority"`
	Status   store.DeadlineStatus `json:"status"`
	Subject  string               `json:"subject"`
	Color    string               `json:"color"`
}

type Stats struct {
	TotalHoursThisWeek  float64 `json:"total_hours_this_week"`
	TotalHoursThisMonth float64 `json:"total_hours_this_month"`
	ActiveSubjects      int     `json:"active_subjects"`
	UpcomingDeadlines   int     `json:"upcoming_deadlines"`
}
