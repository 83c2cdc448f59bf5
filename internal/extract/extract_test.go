package extract

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want ExtractedLog
	}{
		{
			name: "calculus session with practice",
			raw:  "Studied calculus for 2 hours, practiced problems",
			want: ExtractedLog{
				Subject:         "calculus",
				DurationMinutes: 120,
				Topics:          []string{"problem"},
				MoodScore:       3,
				DifficultyLevel: 3,
				Insights:        "Great job on the extended study session! Practice problems are excellent for reinforcing concepts.",
			},
		},
		{
			name: "empty text falls back to defaults",
			raw:  "",
			want: ExtractedLog{
				Topics:          []string{},
				MoodScore:       3,
				DifficultyLevel: 3,
				Insights:        "Consider longer study sessions for better retention.",
			},
		},
		{
			name: "positive mood and easy difficulty",
			raw:  "45 minutes of chemistry, everything was clear and easy",
			want: ExtractedLog{
				Subject:         "chemistry",
				DurationMinutes: 45,
				Topics:          []string{},
				MoodScore:       4,
				DifficultyLevel: 2,
				Insights:        "Keep up the consistent study routine!",
			},
		},
		{
			name: "negative mood and hard difficulty",
			raw:  "Physics 50 mins, confused and it was hard",
			want: ExtractedLog{
				Subject:         "physics",
				DurationMinutes: 50,
				Topics:          []string{},
				MoodScore:       2,
				DifficultyLevel: 4,
				Insights:        "Keep up the consistent study routine!",
			},
		},
		{
			name: "topics follow keyword order and breadth rule fires",
			raw:  "Read chapter 3 on the derivative and integral of a function for 1 hr",
			want: ExtractedLog{
				DurationMinutes: 60,
				Topics:          []string{"derivative", "integral", "function", "chapter"},
				MoodScore:       3,
				DifficultyLevel: 3,
				Insights:        "You covered multiple topics - good breadth of learning.",
			},
		},
		{
			name: "synonyms are not deduplicated",
			raw:  "problem set with an exercise and another problem, 40 minutes",
			want: ExtractedLog{
				DurationMinutes: 40,
				Topics:          []string{"problem", "exercise"},
				MoodScore:       3,
				DifficultyLevel: 3,
				Insights:        "Practice problems are excellent for reinforcing concepts.",
			},
		},
		{
			name: "first subject in vocabulary order wins",
			raw:  "programming then computer science for 30 minutes",
			want: ExtractedLog{
				Subject:         "computer science",
				DurationMinutes: 30,
				Topics:          []string{},
				MoodScore:       3,
				DifficultyLevel: 3,
				Insights:        "Keep up the consistent study routine!",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.raw))
		})
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{raw: "no numbers here", want: 0},
		{raw: "chapter 5 review", want: 0},
		{raw: "1 hour", want: 60},
		{raw: "3 hours", want: 180},
		{raw: "2 HRS", want: 120},
		{raw: "2hr", want: 120},
		{raw: "90 minutes", want: 90},
		{raw: "1 minute", want: 1},
		{raw: "25mins", want: 25},
		{raw: "20 minutes then 2 hours", want: 20},
		{raw: "0 hours", want: 0},
		{raw: "999999999999999999999 hours", want: maxDurationMinutes},
		{raw: "500 hours", want: maxDurationMinutes},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := Duration(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
		})
	}
}

func TestDuration_UnitProperties(t *testing.T) {
	for n := 0; n <= 48; n++ {
		assert.Equal(t, n*60, Duration(fmt.Sprintf("studied for %d hours", n)), "hours n=%d", n)
		assert.Equal(t, n*60, Duration(fmt.Sprintf("studied for %d hour", n)), "hour n=%d", n)
		assert.Equal(t, n, Duration(fmt.Sprintf("studied for %d minutes", n)), "minutes n=%d", n)
		assert.Equal(t, n, Duration(fmt.Sprintf("studied for %d minute", n)), "minute n=%d", n)
	}
}

func TestExtract_ExtendedSessionBoundary(t *testing.T) {
	tests := []struct {
		minutes   int
		wantGreat bool
	}{
		{minutes: 119, wantGreat: false},
		{minutes: 120, wantGreat: true},
		{minutes: 121, wantGreat: true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.minutes), func(t *testing.T) {
			got := Extract(fmt.Sprintf("calculus for %d minutes", tt.minutes))
			assert.Equal(t, tt.minutes, got.DurationMinutes)
			if tt.wantGreat {
				assert.Contains(t, got.Insights, "Great job")
			} else {
				assert.NotContains(t, got.Insights, "Great job")
			}
		})
	}
}

func TestExtract_ShortSessionRule(t *testing.T) {
	assert.Contains(t, Extract("algebra 29 minutes").Insights, "Consider longer study sessions")
	assert.NotContains(t, Extract("algebra 30 minutes").Insights, "Consider longer study sessions")
}
