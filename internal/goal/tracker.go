// Package goal derives progress toward user-set goals from the study log.
// Goals store only their definition, so progress always reflects the
// current log, including backdated and deleted entries.
package goal

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"studypulse/internal/store"
	"studypulse/internal/streak"
)

// Progress is a goal with its derived state.
type Progress struct {
	store.Goal
	CurrentValue float64 `json:"current_value"`
	Percent      int     `json:"progress"`
	Completed    bool    `json:"completed"`
}

type Tracker struct {
	Goals store.GoalStore
	Logs  store.LogStore

	Now      func() time.Time
	Location *time.Location
}

// Progress evaluates every goal of the user as of the local today, newest
// goal first.
func (t *Tracker) Progress(ctx context.Context, userID uuid.UUID) ([]Progress, error) {
	goals, err := t.Goals.ListGoals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	out := make([]Progress, 0, len(goals))
	if len(goals) == 0 {
		return out, nil
	}

	today := t.today()
	from := goals[0].StartDate
	for _, g := range goals[1:] {
		from = min(from, g.StartDate)
	}
	logs, err := t.Logs.QueryLogs(ctx, userID, &store.DateRange{From: from, To: today})
	if err != nil {
		return nil, fmt.Errorf("query logs: %w", err)
	}

	for _, g := range goals {
		out = append(out, Evaluate(g, logs, today))
	}
	return out, nil
}

// Evaluate computes one goal's progress. Only logs dated inside
// [StartDate, min(Deadline, today)] count:
//   - hours: total logged hours
//   - subjects: distinct subjects studied
//   - streak: longest run of consecutive study days
func Evaluate(g store.Goal, logs []store.StudyLog, today store.Day) Progress {
	end := today
	if g.Deadline != nil && *g.Deadline < end {
		end = *g.Deadline
	}
	window := store.DateRange{From: g.StartDate, To: end}

	var (
		minutes  int
		subjects = map[uuid.UUID]struct{}{}
		dates    []store.Day
	)
	for _, l := range logs {
		if !window.Contains(l.StudyDate) {
			continue
		}
		minutes += l.DurationMinutes
		if l.SubjectID != nil {
			subjects[*l.SubjectID] = struct{}{}
		}
		dates = append(dates, l.StudyDate)
	}

	p := Progress{Goal: g}
	switch g.GoalType {
	case store.GoalHours:
		p.CurrentValue = math.Round(float64(minutes)/60*10) / 10
	case store.GoalSubjects:
		p.CurrentValue = float64(len(subjects))
	case store.GoalStreak:
		p.CurrentValue = float64(streak.Compute(store.StreakDaily, dates, end, 0).Longest)
	}
	p.Percent = percent(p.CurrentValue, g.TargetValue)
	p.Completed = g.TargetValue > 0 && p.CurrentValue >= g.TargetValue
	return p
}

func percent(current, target float64) int {
	if target <= 0 || current <= 0 {
		return 0
	}
	return int(math.Round(math.Min(current/target*100, 100)))
}

func (t *Tracker) today() store.Day {
	now := time.Now
	if t.Now != nil {
		now = t.Now
	}
	loc := t.Location
	if loc == nil {
		loc = time.UTC
	}
	return store.DayOf(now().In(loc))
}
