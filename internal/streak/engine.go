// Package streak derives consecutive-activity counters from the study log.
// Rows are always rebuilt from the full history, so a recompute after a
// backdated or deleted log gives the same answer as one from scratch.
package streak

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"studypulse/internal/store"
)

// Set holds one row per streak type.
type Set map[store.StreakType]store.Streak

// Rows returns the set in display order.
func (s Set) Rows() []store.Streak {
	out := make([]store.Streak, 0, len(s))
	for _, t := range store.StreakTypes {
		if row, ok := s[t]; ok {
			out = append(out, row)
		}
	}
	return out
}

type Engine struct {
	Logs    store.LogStore
	Streaks store.StreakStore
}

// Recompute rebuilds all three streak rows for the user as of the given day
// and upserts them. On error the stored rows are left untouched.
func (e *Engine) Recompute(ctx context.Context, userID uuid.UUID, asOf store.Day) (Set, error) {
	set, err := e.evaluate(ctx, userID, asOf, true)
	if err != nil {
		return nil, fmt.Errorf("recompute streaks: %w", err)
	}
	if err := e.Streaks.SaveStreaks(ctx, userID, set.Rows()); err != nil {
		return nil, fmt.Errorf("recompute streaks: save: %w", err)
	}
	return set, nil
}

// Evaluate reports the streaks as of the given day without writing them.
// Stored rows only contribute their longest counts and identities, so a
// user who stopped logging sees current streaks fall to 0. A user with no
// logs and no stored rows gets an empty set.
func (e *Engine) Evaluate(ctx context.Context, userID uuid.UUID, asOf store.Day) (Set, error) {
	set, err := e.evaluate(ctx, userID, asOf, false)
	if err != nil {
		return nil, fmt.Errorf("evaluate streaks: %w", err)
	}
	return set, nil
}

func (e *Engine) evaluate(ctx context.Context, userID uuid.UUID, asOf store.Day, always bool) (Set, error) {
	if !asOf.Valid() {
		return nil, fmt.Errorf("invalid as-of day %q", asOf)
	}

	logs, err := e.Logs.QueryLogs(ctx, userID, nil)
	if err != nil {
		return nil, fmt.Errorf("query logs: %w", err)
	}
	stored, err := e.Streaks.ListStreaks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list streaks: %w", err)
	}
	if !always && len(logs) == 0 && len(stored) == 0 {
		return Set{}, nil
	}

	prev := map[store.StreakType]store.Streak{}
	for _, row := range stored {
		prev[row.StreakType] = row
	}

	dates := make([]store.Day, 0, len(logs))
	for _, l := range logs {
		dates = append(dates, l.StudyDate)
	}

	set := Set{}
	for _, t := range store.StreakTypes {
		row := prev[t]
		c := Compute(t, dates, asOf, row.LongestStreak)
		row.UserID = userID
		row.StreakType = t
		row.CurrentStreak = c.Current
		row.LongestStreak = c.Longest
		row.LastActivity = c.LastActivity
		set[t] = row
	}
	return set, nil
}

// Counts is the result of Compute for one streak type.
type Counts struct {
	Current      int
	Longest      int
	LastActivity *store.Day
}

// Compute is the pure streak calculation. A bucket counts as active when any
// log falls in it. Current walks back from asOf's bucket and is 0 when that
// bucket is empty; Longest is never below floor or Current.
func Compute(t store.StreakType, dates []store.Day, asOf store.Day, floor int) Counts {
	occupied := map[store.Day]struct{}{}
	var last store.Day
	for _, d := range dates {
		if !d.Valid() {
			continue
		}
		occupied[Bucket(t, d)] = struct{}{}
		if d > last {
			last = d
		}
	}

	var c Counts
	if last != "" {
		c.LastActivity = &last
	}

	for k := Bucket(t, asOf); ; k = step(t, k, -1) {
		if _, ok := occupied[k]; !ok {
			break
		}
		c.Current++
	}

	keys := make([]store.Day, 0, len(occupied))
	for k := range occupied {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	run := 0
	for i, k := range keys {
		if i > 0 && step(t, keys[i-1], 1) == k {
			run++
		} else {
			run = 1
		}
		c.Longest = max(c.Longest, run)
	}
	c.Longest = max(c.Longest, floor, c.Current)
	return c
}

// Bucket maps a day onto its bucket key: the day itself, the Monday of its
// ISO week, or the first of its month.
func Bucket(t store.StreakType, d store.Day) store.Day {
	tm := d.Time()
	switch t {
	case store.StreakWeekly:
		// time.Weekday has Sunday = 0; ISO weeks start on Monday
		offset := (int(tm.Weekday()) + 6) % 7
		return store.DayOf(tm.AddDate(0, 0, -offset))
	case store.StreakMonthly:
		return store.DayOf(time.Date(tm.Year(), tm.Month(), 1, 0, 0, 0, 0, time.UTC))
	default:
		return d
	}
}

// step moves a bucket key n buckets forward (or back when n < 0).
func step(t store.StreakType, key store.Day, n int) store.Day {
	switch t {
	case store.StreakWeekly:
		return key.AddDays(7 * n)
	case store.StreakMonthly:
		return store.DayOf(key.Time().AddDate(0, n, 0))
	default:
		return key.AddDays(n)
	}
}
