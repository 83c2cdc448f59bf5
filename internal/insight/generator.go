// Package insight produces the weekly summary insight from recent logs.
package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"studypulse/internal/store"
)

const (
	recommendMore       = "Try to increase your weekly study time to 10+ hours"
	recommendConsistent = "Great weekly study consistency!"

	defaultWeeklyGoal = 10
	windowDays        = 7
)

// WeeklySummary is the content of a weekly_summary insight.
type WeeklySummary struct {
	TotalHours      float64 `json:"total_hours"`
	SubjectsStudied int     `json:"subjects_studied"`
	AverageSession  int     `json:"average_session"`
	Recommendation  string  `json:"recommendation"`
}

type Generator struct {
	Logs     store.LogStore
	Insights store.InsightStore

	Now        func() time.Time
	Location   *time.Location
	WeeklyGoal float64
}

// GenerateWeeklySummary appends a summary of the trailing seven days
// (today and the six before it). It returns nil, nil when there are no logs
// in that window.
func (g *Generator) GenerateWeeklySummary(ctx context.Context, userID uuid.UUID) (*store.AIInsight, error) {
	today := g.today()
	logs, err := g.Logs.QueryLogs(ctx, userID, &store.DateRange{From: today.AddDays(-(windowDays - 1)), To: today})
	if err != nil {
		return nil, fmt.Errorf("weekly summary: query logs: %w", err)
	}

	summary, ok := Summarize(logs, g.goal())
	if !ok {
		return nil, nil
	}
	content, err := json.Marshal(summary)
	if err != nil {
		return nil, fmt.Errorf("weekly summary: encode: %w", err)
	}

	in := &store.AIInsight{
		UserID:      userID,
		InsightType: store.InsightWeeklySummary,
		Content:     datatypes.JSON(content),
		GeneratedAt: g.now().UTC(),
	}
	if err := g.Insights.AppendInsight(ctx, in); err != nil {
		return nil, fmt.Errorf("weekly summary: append: %w", err)
	}
	return in, nil
}

// Summarize reports false when logs is empty.
func Summarize(logs []store.StudyLog, weeklyGoal float64) (WeeklySummary, bool) {
	if len(logs) == 0 {
		return WeeklySummary{}, false
	}

	minutes := 0
	subjects := map[uuid.UUID]struct{}{}
	for _, l := range logs {
		minutes += l.DurationMinutes
		if l.SubjectID != nil {
			subjects[*l.SubjectID] = struct{}{}
		}
	}
	hours := float64(minutes) / 60

	s := WeeklySummary{
		TotalHours:      math.Round(hours*10) / 10,
		SubjectsStudied: len(subjects),
		AverageSession:  int(math.Round(float64(minutes) / float64(len(logs)))),
		Recommendation:  recommendConsistent,
	}
	if hours < weeklyGoal {
		s.Recommendation = recommendMore
	}
	return s, true
}

func (g *Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

func (g *Generator) today() store.Day {
	loc := g.Location
	if loc == nil {
		loc = time.UTC
	}
	return store.DayOf(g.now().In(loc))
}

func (g *Generator) goal() float64 {
	if g.WeeklyGoal > 0 {
		return g.WeeklyGoal
	}
	return defaultWeeklyGoal
}
