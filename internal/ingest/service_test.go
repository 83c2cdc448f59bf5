package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"studypulse/internal/db"
	"studypulse/internal/extract"
	"studypulse/internal/insight"
	"studypulse/internal/jobs"
	"studypulse/internal/logger"
	"studypulse/internal/store"
	"studypulse/internal/store/mock_store"
	"studypulse/internal/streak"
	"studypulse/internal/subject"
)

func fixedNow() time.Time { return time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC) }

type dispatched struct {
	userID  uuid.UUID
	typ     string
	payload any
}

type recordingDispatcher struct {
	mu    sync.Mutex
	calls []dispatched
	err   error
}

func (d *recordingDispatcher) Dispatch(_ context.Context, userID uuid.UUID, typ string, payload any) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, dispatched{userID, typ, payload})
	return d.err
}

func (d *recordingDispatcher) types() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := []string{}
	for _, c := range d.calls {
		out = append(out, c.typ)
	}
	return out
}

type failingStreaks struct{ err error }

func (f failingStreaks) Recompute(context.Context, uuid.UUID, store.Day) (streak.Set, error) {
	return nil, f.err
}

func newService(mem *store.Memory, d jobs.Dispatcher) *Service {
	return &Service{
		Logs:     mem,
		Subjects: mem,
		Resolver: &subject.Resolver{Subjects: mem, DefaultTargetHours: 5},
		Streaks:  &streak.Engine{Logs: mem, Streaks: mem},
		Jobs:     d,
		Log:      logger.NewNop(),
		Now:      fixedNow,
	}
}

func TestIngest(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	mem := store.NewMemory()
	d := &recordingDispatcher{}
	svc := newService(mem, d)

	res, err := svc.Ingest(ctx, Input{UserID: userID, RawText: "Studied calculus for 2 hours, practiced problems"})
	require.NoError(t, err)

	assert.Equal(t, "calculus", res.Extracted.Subject)
	assert.Equal(t, 120, res.Log.DurationMinutes)
	assert.Equal(t, store.Day("2026-10-16"), res.Log.StudyDate)
	assert.Equal(t, []string{"problem"}, []string(res.Log.ExtractedTopics))
	assert.Equal(t, 3, *res.Log.MoodScore)
	assert.Equal(t, 3, *res.Log.DifficultyLevel)
	assert.Contains(t, res.Log.Insights, "Great job")
	require.NotNil(t, res.Log.SubjectID)

	s, err := mem.GetSubject(ctx, userID, *res.Log.SubjectID)
	require.NoError(t, err)
	assert.Equal(t, "Calculus", s.Name)
	assert.Equal(t, "#3B82F6", s.Color)
	assert.Equal(t, 5.0, s.TargetHoursPerWeek)

	stored, err := mem.QueryLogs(ctx, userID, nil)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, res.Log.ID, stored[0].ID)
	assert.Equal(t, res.Log.RawText, stored[0].RawText)
	assert.Equal(t, res.Log.SubjectID, stored[0].SubjectID)

	streaks, err := mem.ListStreaks(ctx, userID)
	require.NoError(t, err)
	require.Len(t, streaks, 3)
	assert.Equal(t, 1, streaks[0].CurrentStreak)

	assert.Equal(t, []string{jobs.TypeWeeklySummary}, d.types())

	// second mention reuses the subject
	again, err := svc.Ingest(ctx, Input{UserID: userID, RawText: "more CALCULUS, 20 minutes"})
	require.NoError(t, err)
	assert.Equal(t, *res.Log.SubjectID, *again.Log.SubjectID)
	all, err := mem.ListSubjects(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestIngest_StoredLogMatchesExtraction(t *testing.T) {
	texts := []string{
		"Studied calculus for 2 hours, practiced problems",
		"45 minutes of chemistry, everything was clear and easy",
		"Physics 50 mins, confused and it was hard",
		"Read chapter 3 on the derivative and integral of a function for 1 hr",
		"reviewed notes",
	}

	stores := map[string]func(t *testing.T) store.Store{
		"memory": func(*testing.T) store.Store { return store.NewMemory() },
		"sqlite": func(t *testing.T) store.Store {
			gdb, err := db.Connect("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared", nil)
			require.NoError(t, err)
			require.NoError(t, db.AutoMigrateAndIndexes(gdb))
			return store.NewGorm(gdb)
		},
	}

	for name, open := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			st := open(t)
			svc := &Service{
				Logs:     st,
				Subjects: st,
				Resolver: &subject.Resolver{Subjects: st, DefaultTargetHours: 5},
				Streaks:  &streak.Engine{Logs: st, Streaks: st},
				Jobs:     &recordingDispatcher{},
				Log:      logger.NewNop(),
				Now:      fixedNow,
			}

			for _, text := range texts {
				userID := uuid.New()
				res, err := svc.Ingest(ctx, Input{UserID: userID, RawText: text})
				require.NoError(t, err, text)

				logs, err := st.QueryLogs(ctx, userID, nil)
				require.NoError(t, err)
				require.Len(t, logs, 1, text)
				got := logs[0]
				want := extract.Extract(text)

				assert.Equal(t, res.Log.ID, got.ID, text)
				assert.Equal(t, want.Topics, []string(got.ExtractedTopics), text)
				assert.Equal(t, want.DurationMinutes, got.DurationMinutes, text)
				require.NotNil(t, got.MoodScore, text)
				assert.Equal(t, want.MoodScore, *got.MoodScore, text)
				require.NotNil(t, got.DifficultyLevel, text)
				assert.Equal(t, want.DifficultyLevel, *got.DifficultyLevel, text)
				assert.Equal(t, want.Insights, got.Insights, text)

				if want.Subject == "" {
					assert.Nil(t, got.SubjectID, text)
					continue
				}
				require.NotNil(t, got.SubjectID, text)
				s, err := st.GetSubject(ctx, userID, *got.SubjectID)
				require.NoError(t, err, text)
				assert.Equal(t, subject.DisplayName(want.Subject), s.Name, text)
			}
		})
	}
}

func TestIngest_Validation(t *testing.T) {
	bad := store.Day("16/10/2026")
	tests := []struct {
		name string
		in   Input
	}{
		{"empty text", Input{UserID: uuid.New(), RawText: ""}},
		{"whitespace text", Input{UserID: uuid.New(), RawText: "   \n\t"}},
		{"missing user", Input{RawText: "calculus 1 hour"}},
		{"bad date", Input{UserID: uuid.New(), RawText: "calculus 1 hour", StudyDate: &bad}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := store.NewMemory()
			d := &recordingDispatcher{}
			_, err := newService(mem, d).Ingest(context.Background(), tt.in)
			assert.ErrorIs(t, err, ErrValidation)

			logs, err := mem.QueryLogs(context.Background(), tt.in.UserID, nil)
			require.NoError(t, err)
			assert.Empty(t, logs)
			assert.Empty(t, d.calls)
		})
	}
}

func TestIngest_InsightThreshold(t *testing.T) {
	tests := []struct {
		raw          string
		wantDispatch bool
	}{
		{"physics 30 minutes", false},
		{"physics 31 minutes", true},
		{"just some notes", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			d := &recordingDispatcher{}
			_, err := newService(store.NewMemory(), d).Ingest(context.Background(), Input{UserID: uuid.New(), RawText: tt.raw})
			require.NoError(t, err)
			if tt.wantDispatch {
				assert.Equal(t, []string{jobs.TypeWeeklySummary}, d.types())
			} else {
				assert.Empty(t, d.types())
			}
		})
	}
}

func TestIngest_BestEffortFailuresDoNotFailAppend(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	mem := store.NewMemory()
	d := &recordingDispatcher{err: errors.New("queue down")}
	svc := newService(mem, d)
	svc.Streaks = failingStreaks{err: errors.New("streak store down")}

	backdated := store.Day("2026-10-01")
	res, err := svc.Ingest(ctx, Input{UserID: userID, RawText: "biology 45 minutes", StudyDate: &backdated})
	require.NoError(t, err)
	assert.Equal(t, backdated, res.Log.StudyDate)

	_, err = mem.GetLog(ctx, userID, res.Log.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{jobs.TypeStreakRecompute, jobs.TypeWeeklySummary}, d.types())
	assert.Equal(t, StreakPayload{AsOf: "2026-10-16"}, d.calls[0].payload)
}

func TestIngest_ResolverFailureFailsRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	subjects := mock_store.NewMockSubjectStore(ctrl)
	subjects.EXPECT().FindSubjectByName(gomock.Any(), gomock.Any(), "history").Return(store.Subject{}, errors.New("db down"))

	mem := store.NewMemory()
	svc := newService(mem, &recordingDispatcher{})
	svc.Resolver = &subject.Resolver{Subjects: subjects}

	userID := uuid.New()
	_, err := svc.Ingest(context.Background(), Input{UserID: userID, RawText: "history 1 hour"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrValidation)

	logs, err := mem.QueryLogs(context.Background(), userID, nil)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestUpdateLog(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	mem := store.NewMemory()
	svc := newService(mem, &recordingDispatcher{})

	res, err := svc.Ingest(ctx, Input{UserID: userID, RawText: "calculus 1 hour"})
	require.NoError(t, err)

	t.Run("raw text edit re-extracts", func(t *testing.T) {
		text := "physics 45 minutes, confused by the theory"
		got, err := svc.UpdateLog(ctx, userID, res.Log.ID, Edit{RawText: &text})
		require.NoError(t, err)
		assert.Equal(t, 45, got.DurationMinutes)
		assert.Equal(t, 2, *got.MoodScore)
		assert.Equal(t, []string{"theory"}, []string(got.ExtractedTopics))

		s, err := mem.GetSubject(ctx, userID, *got.SubjectID)
		require.NoError(t, err)
		assert.Equal(t, "Physics", s.Name)
	})

	t.Run("explicit fields win over extraction", func(t *testing.T) {
		text := "chemistry 10 minutes"
		minutes := 90
		got, err := svc.UpdateLog(ctx, userID, res.Log.ID, Edit{RawText: &text, DurationMinutes: &minutes})
		require.NoError(t, err)
		assert.Equal(t, 90, got.DurationMinutes)
	})

	t.Run("text without a subject unlinks", func(t *testing.T) {
		text := "reviewed notes for 20 minutes"
		got, err := svc.UpdateLog(ctx, userID, res.Log.ID, Edit{RawText: &text})
		require.NoError(t, err)
		assert.Nil(t, got.SubjectID)
	})

	t.Run("backdating recomputes streaks", func(t *testing.T) {
		day := store.Day("2026-10-15")
		_, err := svc.UpdateLog(ctx, userID, res.Log.ID, Edit{StudyDate: &day})
		require.NoError(t, err)

		streaks, err := mem.ListStreaks(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 0, streaks[0].CurrentStreak)
		assert.Equal(t, 1, streaks[0].LongestStreak)
	})

	t.Run("validation", func(t *testing.T) {
		mood := 9
		_, err := svc.UpdateLog(ctx, userID, res.Log.ID, Edit{MoodScore: &mood})
		assert.ErrorIs(t, err, ErrValidation)

		unknown := uuid.New()
		_, err = svc.UpdateLog(ctx, userID, res.Log.ID, Edit{SubjectID: &unknown})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("foreign log is not found", func(t *testing.T) {
		minutes := 5
		_, err := svc.UpdateLog(ctx, uuid.New(), res.Log.ID, Edit{DurationMinutes: &minutes})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestDeleteLog(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	mem := store.NewMemory()
	svc := newService(mem, &recordingDispatcher{})

	res, err := svc.Ingest(ctx, Input{UserID: userID, RawText: "algebra 1 hour"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteLog(ctx, userID, res.Log.ID))
	_, err = mem.GetLog(ctx, userID, res.Log.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	streaks, err := mem.ListStreaks(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 0, streaks[0].CurrentStreak)
	assert.Equal(t, 1, streaks[0].LongestStreak)

	assert.ErrorIs(t, svc.DeleteLog(ctx, userID, res.Log.ID), store.ErrNotFound)
}

func TestTaskHandlers(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	mem := store.NewMemory()
	engine := &streak.Engine{Logs: mem, Streaks: mem}
	gen := &insight.Generator{Logs: mem, Insights: mem, Now: fixedNow}
	h := TaskHandlers(engine, gen)

	require.NoError(t, mem.AppendLog(ctx, &store.StudyLog{UserID: userID, RawText: "x", DurationMinutes: 60, StudyDate: "2026-10-16"}))

	payload, err := json.Marshal(StreakPayload{AsOf: "2026-10-16"})
	require.NoError(t, err)
	require.NoError(t, h[jobs.TypeStreakRecompute](ctx, userID, payload))
	streaks, err := mem.ListStreaks(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, streaks, 3)

	require.NoError(t, h[jobs.TypeWeeklySummary](ctx, userID, []byte(`{}`)))
	insights, err := mem.LatestInsights(ctx, userID, 5)
	require.NoError(t, err)
	assert.Len(t, insights, 1)

	assert.Error(t, h[jobs.TypeStreakRecompute](ctx, userID, []byte("not json")))
}
