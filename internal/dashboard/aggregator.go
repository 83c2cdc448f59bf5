// Package dashboard assembles the read-only dashboard snapshot from the
// subject, log, deadline and insight stores, the streak engine and the goal
// tracker.
package dashboard

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"studypulse/internal/goal"
	"studypulse/internal/store"
	"studypulse/internal/streak"
)

const (
	SectionSubjects       = "subjects"
	SectionLogs           = "logs"
	SectionDeadlines      = "deadlines"
	SectionInsights       = "insights"
	SectionStreaks        = "streaks"
	SectionActiveSubjects = "active_subjects"
	SectionGoals          = "goals"
)

const (
	insightLimit   = 5
	calendarLimit  = 20
	chartDays      = 7
	trailingDays   = 30
	generalSubject = "General"
	generalColor   = "#3B82F6"
	labelLayout    = "Mon, Jan 2"
)

// ActiveWindowWeek counts active subjects over the current week only.
const ActiveWindowWeek = "week"

// SectionError reports a branch that failed and was replaced by its default.
type SectionError struct {
	Section string
	Err     error
}

func (e SectionError) Error() string { return fmt.Sprintf("dashboard %s: %v", e.Section, e.Err) }
func (e SectionError) Unwrap() error { return e.Err }

// StreakEvaluator reports a user's streaks as of a day without persisting
// them. *streak.Engine implements it.
type StreakEvaluator interface {
	Evaluate(ctx context.Context, userID uuid.UUID, asOf store.Day) (streak.Set, error)
}

// GoalTracker reports progress on every goal of a user. *goal.Tracker
// implements it.
type GoalTracker interface {
	Progress(ctx context.Context, userID uuid.UUID) ([]goal.Progress, error)
}

type Aggregator struct {
	Subjects  store.SubjectStore
	Logs      store.LogStore
	Deadlines store.DeadlineStore
	Insights  store.InsightStore
	Streaks   StreakEvaluator
	Goals     GoalTracker

	Now          func() time.Time
	Location     *time.Location
	WeekStart    time.Weekday
	ActiveWindow string
}

// sources is everything the branches fetched. A failed branch leaves its
// field at the zero value.
type sources struct {
	subjects       []store.Subject
	logs           []store.StudyLog
	deadlines      []store.Deadline
	insights       []store.AIInsight
	streaks        []store.Streak
	activeSubjects int
	goals          []goal.Progress
}

// BuildSnapshot runs every branch in parallel and always returns a complete
// snapshot. Branch failures are defaulted and listed in the second result.
func (a *Aggregator) BuildSnapshot(ctx context.Context, userID uuid.UUID) (Snapshot, []SectionError) {
	today := a.today()
	w := newWindows(today, a.WeekStart)

	var (
		src  sources
		errs = make([]error, 7)
		g    errgroup.Group
	)
	// each branch records its own error and returns nil so siblings keep running
	g.Go(func() error {
		src.subjects, errs[0] = a.Subjects.ListSubjects(ctx, userID)
		return nil
	})
	g.Go(func() error {
		src.logs, errs[1] = a.Logs.QueryLogs(ctx, userID, &store.DateRange{From: w.earliest(), To: today})
		return nil
	})
	g.Go(func() error {
		src.deadlines, errs[2] = a.Deadlines.UpcomingDeadlines(ctx, userID, today)
		return nil
	})
	g.Go(func() error {
		src.insights, errs[3] = a.Insights.LatestInsights(ctx, userID, insightLimit)
		return nil
	})
	g.Go(func() error {
		var set streak.Set
		set, errs[4] = a.Streaks.Evaluate(ctx, userID, today)
		src.streaks = set.Rows()
		return nil
	})
	g.Go(func() error {
		since := store.Day("")
		if a.ActiveWindow == ActiveWindowWeek {
			since = w.weekStart
		}
		src.activeSubjects, errs[5] = a.Logs.ActiveSubjectCount(ctx, userID, since)
		return nil
	})
	g.Go(func() error {
		src.goals, errs[6] = a.Goals.Progress(ctx, userID)
		return nil
	})
	_ = g.Wait()

	var failed []SectionError
	for i, section := range []string{
		SectionSubjects, SectionLogs, SectionDeadlines,
		SectionInsights, SectionStreaks, SectionActiveSubjects, SectionGoals,
	} {
		if errs[i] != nil {
			failed = append(failed, SectionError{Section: section, Err: errs[i]})
		}
	}
	return assemble(src, w), failed
}

func (a *Aggregator) today() store.Day {
	now := time.Now
	if a.Now != nil {
		now = a.Now
	}
	loc := a.Location
	if loc == nil {
		loc = time.UTC
	}
	return store.DayOf(now().In(loc))
}

// windows holds the date boundaries a snapshot is computed over.
type windows struct {
	today      store.Day
	weekStart  store.Day
	monthStart store.Day
	chartStart store.Day
}

func newWindows(today store.Day, first time.Weekday) windows {
	t := today.Time()
	back := (int(t.Weekday()) - int(first) + 7) % 7
	return windows{
		today:      today,
		weekStart:  today.AddDays(-back),
		monthStart: store.DayOf(time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)),
		chartStart: today.AddDays(-(chartDays - 1)),
	}
}

// earliest is the oldest day any section reads logs for.
func (w windows) earliest() store.Day {
	return min(w.monthStart, w.weekStart, w.today.AddDays(-(trailingDays - 1)))
}

func assemble(src sources, w windows) Snapshot {
	thisWeek := store.DateRange{From: w.weekStart, To: w.today}
	thisMonth := store.DateRange{From: w.monthStart, To: w.today}

	weeklyMinutes := map[uuid.UUID]int{}
	daily := map[store.Day]int{}
	monthMinutes := 0
	for _, l := range src.logs {
		if l.SubjectID != nil && thisWeek.Contains(l.StudyDate) {
			weeklyMinutes[*l.SubjectID] += l.DurationMinutes
		}
		if thisMonth.Contains(l.StudyDate) {
			monthMinutes += l.DurationMinutes
		}
		daily[l.StudyDate] += l.DurationMinutes
	}

	snap := Snapshot{
		Subjects:       make([]SubjectProgress, 0, len(src.subjects)),
		StudyHoursData: make([]DayHours, 0, chartDays),
		CalendarEvents: []CalendarEvent{},
		Insights:       src.insights,
		Streaks:        src.streaks,
		Goals:          src.goals,
	}
	if snap.Insights == nil {
		snap.Insights = []store.AIInsight{}
	}
	if snap.Streaks == nil {
		snap.Streaks = []store.Streak{}
	}
	if snap.Goals == nil {
		snap.Goals = []goal.Progress{}
	}

	weekHours := 0.0
	byID := make(map[uuid.UUID]store.Subject, len(src.subjects))
	for _, s := range src.subjects {
		byID[s.ID] = s
		hours := float64(weeklyMinutes[s.ID]) / 60
		weekHours += hours
		snap.Subjects = append(snap.Subjects, SubjectProgress{
			ID:                 s.ID,
			Name:               s.Name,
			Color:              s.Color,
			TargetHoursPerWeek: s.TargetHoursPerWeek,
			WeeklyHours:        round1(hours),
			Progress:           Progress(hours, s.TargetHoursPerWeek),
		})
	}

	for d := w.chartStart; d <= w.today; d = d.AddDays(1) {
		snap.StudyHoursData = append(snap.StudyHoursData, DayHours{
			Date:  d,
			Label: d.Time().Format(labelLayout),
			Hours: round1(float64(daily[d]) / 60),
		})
	}

	for i, dl := range src.deadlines {
		if i == calendarLimit {
			break
		}
		ev := CalendarEvent{
			ID:       dl.ID,
			Title:    dl.Title,
			Date:     dl.DueDate,
			Type:     dl.Type,
			Priority: dl.Priority,
			Status:   dl.Status,
			Subject:  generalSubject,
			Color:    generalColor,
		}
		if dl.SubjectID != nil {
			if s, ok := byID[*dl.SubjectID]; ok {
				ev.Subject, ev.Color = s.Name, s.Color
			}
		}
		snap.CalendarEvents = append(snap.CalendarEvents, ev)
	}

	snap.Stats = Stats{
		TotalHoursThisWeek:  round1(weekHours),
		TotalHoursThisMonth: round1(float64(monthMinutes) / 60),
		ActiveSubjects:      src.activeSubjects,
		UpcomingDeadlines:   len(src.deadlines),
	}
	return snap
}

// Progress is the rounded percentage of the weekly target reached, in [0, 100].
// A subject without a positive target has no progress.
func Progress(weeklyHours, target float64) int {
	if target <= 0 || weeklyHours <= 0 {
		return 0
	}
	return int(math.Round(math.Min(weeklyHours/target*100, 100)))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
