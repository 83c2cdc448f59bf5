package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studypulse/internal/store"
)

// runContract exercises the behavior every Store implementation shares.
func runContract(t *testing.T, newStore func(t *testing.T) store.Store) {
	t.Run("logs", func(t *testing.T) { testLogs(t, newStore(t)) })
	t.Run("subjects", func(t *testing.T) { testSubjects(t, newStore(t)) })
	t.Run("subject delete unlinks", func(t *testing.T) { testSubjectDelete(t, newStore(t)) })
	t.Run("concurrent create if absent", func(t *testing.T) { testCreateIfAbsent(t, newStore(t)) })
	t.Run("streaks", func(t *testing.T) { testStreaks(t, newStore(t)) })
	t.Run("insights", func(t *testing.T) { testInsights(t, newStore(t)) })
	t.Run("deadlines", func(t *testing.T) { testDeadlines(t, newStore(t)) })
	t.Run("goals", func(t *testing.T) { testGoals(t, newStore(t)) })
}

func testLogs(t *testing.T, s store.Store) {
	ctx := context.Background()
	user, other := uuid.New(), uuid.New()
	mood := 4

	in := []store.StudyLog{
		{UserID: user, RawText: "a", StudyDate: "2026-10-01", DurationMinutes: 30, ExtractedTopics: []string{"integral", "problem"}, MoodScore: &mood},
		{UserID: user, RawText: "b", StudyDate: "2026-10-03", DurationMinutes: 45},
		{UserID: user, RawText: "c", StudyDate: "2026-10-02", DurationMinutes: 60},
		{UserID: other, RawText: "d", StudyDate: "2026-10-02", DurationMinutes: 90},
	}
	for i := range in {
		require.NoError(t, s.AppendLog(ctx, &in[i]))
		assert.NotEqual(t, uuid.Nil, in[i].ID)
	}

	all, err := s.QueryLogs(ctx, user, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{all[0].RawText, all[1].RawText, all[2].RawText})
	assert.Equal(t, []string{"integral", "problem"}, []string(all[2].ExtractedTopics))
	require.NotNil(t, all[2].MoodScore)
	assert.Equal(t, 4, *all[2].MoodScore)
	assert.Nil(t, all[0].MoodScore)

	ranged, err := s.QueryLogs(ctx, user, &store.DateRange{From: "2026-10-02", To: "2026-10-02"})
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, "c", ranged[0].RawText)

	_, err = s.GetLog(ctx, other, in[0].ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	text := "a edited"
	minutes := -5
	day := store.Day("2026-10-04")
	updated, err := s.UpdateLog(ctx, user, in[0].ID, store.LogPatch{RawText: &text, DurationMinutes: &minutes, StudyDate: &day})
	require.NoError(t, err)
	assert.Equal(t, text, updated.RawText)
	assert.Equal(t, 0, updated.DurationMinutes)
	assert.Equal(t, day, updated.StudyDate)

	got, err := s.GetLog(ctx, user, in[0].ID)
	require.NoError(t, err)
	assert.Equal(t, text, got.RawText)

	_, err = s.UpdateLog(ctx, other, in[0].ID, store.LogPatch{RawText: &text})
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, s.RemoveLog(ctx, other, in[1].ID), store.ErrNotFound)
	require.NoError(t, s.RemoveLog(ctx, user, in[1].ID))
	assert.ErrorIs(t, s.RemoveLog(ctx, user, in[1].ID), store.ErrNotFound)

	none, err := s.QueryLogs(ctx, uuid.New(), nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func testSubjects(t *testing.T, s store.Store) {
	ctx := context.Background()
	user := uuid.New()

	calc := store.Subject{UserID: user, Name: "Calculus", Color: "#3B82F6", TargetHoursPerWeek: 5}
	require.NoError(t, s.CreateSubject(ctx, &calc))

	dup := store.Subject{UserID: user, Name: "calculus", Color: "#000000"}
	assert.ErrorIs(t, s.CreateSubject(ctx, &dup), store.ErrConflict)

	// another user may use the same name
	require.NoError(t, s.CreateSubject(ctx, &store.Subject{UserID: uuid.New(), Name: "Calculus", Color: "#3B82F6"}))

	found, err := s.FindSubjectByName(ctx, user, "CALCULUS")
	require.NoError(t, err)
	assert.Equal(t, calc.ID, found.ID)

	_, err = s.FindSubjectByName(ctx, user, "physics")
	assert.ErrorIs(t, err, store.ErrNotFound)

	phys := store.Subject{UserID: user, Name: "Physics", Color: "#8B5CF6"}
	require.NoError(t, s.CreateSubject(ctx, &phys))

	target := 7.5
	updated, err := s.UpdateSubject(ctx, user, calc.ID, store.SubjectPatch{TargetHoursPerWeek: &target})
	require.NoError(t, err)
	assert.Equal(t, 7.5, updated.TargetHoursPerWeek)

	taken := "physics"
	_, err = s.UpdateSubject(ctx, user, calc.ID, store.SubjectPatch{Name: &taken})
	assert.ErrorIs(t, err, store.ErrConflict)

	list, err := s.ListSubjects(ctx, user)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func testSubjectDelete(t *testing.T, s store.Store) {
	ctx := context.Background()
	user := uuid.New()

	sub := store.Subject{UserID: user, Name: "History", Color: "#6B7280"}
	require.NoError(t, s.CreateSubject(ctx, &sub))

	log := store.StudyLog{UserID: user, SubjectID: &sub.ID, RawText: "history 1 hour", StudyDate: "2026-10-10", DurationMinutes: 60}
	require.NoError(t, s.AppendLog(ctx, &log))
	dl := store.Deadline{UserID: user, SubjectID: &sub.ID, Title: "Essay", DueDate: "2026-10-30"}
	require.NoError(t, s.CreateDeadline(ctx, &dl))

	n, err := s.ActiveSubjectCount(ctx, user, "")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.ErrorIs(t, s.DeleteSubject(ctx, uuid.New(), sub.ID), store.ErrNotFound)
	require.NoError(t, s.DeleteSubject(ctx, user, sub.ID))

	got, err := s.GetLog(ctx, user, log.ID)
	require.NoError(t, err, "logs survive subject deletion")
	assert.Nil(t, got.SubjectID)

	dls, err := s.UpcomingDeadlines(ctx, user, "2026-10-01")
	require.NoError(t, err)
	require.Len(t, dls, 1)
	assert.Nil(t, dls[0].SubjectID)

	n, err = s.ActiveSubjectCount(ctx, user, "")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func testCreateIfAbsent(t *testing.T, s store.Store) {
	ctx := context.Background()
	user := uuid.New()

	const n = 20
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := s.CreateSubjectIfAbsent(ctx, &store.Subject{UserID: user, Name: "Algebra", Color: "#10B981"})
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	list, err := s.ListSubjects(ctx, user)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	ok, err := s.CreateSubjectIfAbsent(ctx, &store.Subject{UserID: user, Name: "ALGEBRA", Color: "#10B981"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func testStreaks(t *testing.T, s store.Store) {
	ctx := context.Background()
	user := uuid.New()
	last := store.Day("2026-10-16")

	require.NoError(t, s.SaveStreaks(ctx, user, []store.Streak{
		{StreakType: store.StreakMonthly, CurrentStreak: 1, LongestStreak: 1, LastActivity: &last},
		{StreakType: store.StreakDaily, CurrentStreak: 2, LongestStreak: 2, LastActivity: &last},
		{StreakType: store.StreakWeekly, CurrentStreak: 1, LongestStreak: 1, LastActivity: &last},
	}))
	require.NoError(t, s.SaveStreaks(ctx, user, []store.Streak{
		{StreakType: store.StreakDaily, CurrentStreak: 3, LongestStreak: 3, LastActivity: &last},
	}))

	rows, err := s.ListStreaks(ctx, user)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, store.StreakDaily, rows[0].StreakType)
	assert.Equal(t, store.StreakWeekly, rows[1].StreakType)
	assert.Equal(t, store.StreakMonthly, rows[2].StreakType)
	assert.Equal(t, 3, rows[0].CurrentStreak)
	require.NotNil(t, rows[0].LastActivity)
	assert.Equal(t, last, *rows[0].LastActivity)
}

func testInsights(t *testing.T, s store.Store) {
	ctx := context.Background()
	user := uuid.New()
	base := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)

	var ids []uuid.UUID
	for i := 0; i < 7; i++ {
		in := store.AIInsight{
			UserID:      user,
			InsightType: store.InsightWeeklySummary,
			Content:     []byte(`{"total_hours":1}`),
			GeneratedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, s.AppendInsight(ctx, &in))
		ids = append(ids, in.ID)
	}

	latest, err := s.LatestInsights(ctx, user, 5)
	require.NoError(t, err)
	require.Len(t, latest, 5)
	assert.Equal(t, ids[6], latest[0].ID)
	assert.JSONEq(t, `{"total_hours":1}`, string(latest[0].Content))

	require.NoError(t, s.MarkInsightRead(ctx, user, ids[6]))
	assert.ErrorIs(t, s.MarkInsightRead(ctx, uuid.New(), ids[5]), store.ErrNotFound)

	latest, err = s.LatestInsights(ctx, user, 1)
	require.NoError(t, err)
	assert.True(t, latest[0].IsRead)
}

func testDeadlines(t *testing.T, s store.Store) {
	ctx := context.Background()
	user := uuid.New()

	for _, d := range []store.Deadline{
		{UserID: user, Title: "late", DueDate: "2026-11-01", Type: store.DeadlineExam, Priority: "high"},
		{UserID: user, Title: "soon", DueDate: "2026-10-17"},
		{UserID: user, Title: "past", DueDate: "2026-10-01"},
	} {
		d := d
		require.NoError(t, s.CreateDeadline(ctx, &d))
	}

	up, err := s.UpcomingDeadlines(ctx, user, "2026-10-16")
	require.NoError(t, err)
	require.Len(t, up, 2)
	assert.Equal(t, "soon", up[0].Title)
	assert.Equal(t, store.DeadlineTask, up[0].Type)
	assert.Equal(t, "medium", up[0].Priority)
	assert.Equal(t, store.StatusPending, up[0].Status)

	done, err := s.UpdateDeadlineStatus(ctx, user, up[0].ID, store.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, store.StatusCompleted, done.Status)

	_, err = s.UpdateDeadlineStatus(ctx, uuid.New(), up[0].ID, store.StatusCompleted)
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.DeleteDeadline(ctx, user, up[1].ID))
	assert.ErrorIs(t, s.DeleteDeadline(ctx, user, up[1].ID), store.ErrNotFound)
}

func testGoals(t *testing.T, s store.Store) {
	ctx := context.Background()
	user, other := uuid.New(), uuid.New()
	deadline := store.Day("2026-10-31")

	hours := store.Goal{UserID: user, Title: "Study 20 hours", GoalType: store.GoalHours, TargetValue: 20, StartDate: "2026-10-01", Deadline: &deadline}
	require.NoError(t, s.CreateGoal(ctx, &hours))
	assert.NotEqual(t, uuid.Nil, hours.ID)
	streakGoal := store.Goal{UserID: user, Title: "Week streak", GoalType: store.GoalStreak, TargetValue: 7, StartDate: "2026-10-01"}
	require.NoError(t, s.CreateGoal(ctx, &streakGoal))
	require.NoError(t, s.CreateGoal(ctx, &store.Goal{UserID: other, Title: "theirs", GoalType: store.GoalSubjects, TargetValue: 3, StartDate: "2026-10-01"}))

	list, err := s.ListGoals(ctx, user)
	require.NoError(t, err)
	require.Len(t, list, 2)
	byID := map[uuid.UUID]store.Goal{}
	for _, g := range list {
		byID[g.ID] = g
	}
	require.NotNil(t, byID[hours.ID].Deadline)
	assert.Equal(t, deadline, *byID[hours.ID].Deadline)
	assert.Equal(t, store.GoalHours, byID[hours.ID].GoalType)
	assert.Nil(t, byID[streakGoal.ID].Deadline)

	title, target := "Study 25 hours", 25.0
	updated, err := s.UpdateGoal(ctx, user, hours.ID, store.GoalPatch{Title: &title, TargetValue: &target, ClearDeadline: true})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.Equal(t, 25.0, updated.TargetValue)
	assert.Nil(t, updated.Deadline)
	assert.Equal(t, store.Day("2026-10-01"), updated.StartDate)

	_, err = s.UpdateGoal(ctx, other, hours.ID, store.GoalPatch{Title: &title})
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, s.DeleteGoal(ctx, other, hours.ID), store.ErrNotFound)
	require.NoError(t, s.DeleteGoal(ctx, user, hours.ID))
	list, err = s.ListGoals(ctx, user)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, streakGoal.ID, list[0].ID)
}
