// Package extract turns a free-text study note into structured facts using
// fixed keyword tables and one duration pattern. It is deterministic and
// never fails: unrecognised input falls back to defaults.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// ExtractedLog is what Extract recovers from one note. Subject is empty when
// no known subject name appears.
type ExtractedLog struct {
	Subject         string   `json:"subject,omitempty"`
	DurationMinutes int      `json:"duration_minutes"`
	Topics          []string `json:"topics"`
	Insights        string   `json:"insights"`
	MoodScore       int      `json:"mood_score"`
	DifficultyLevel int      `json:"difficulty_level"`
}

// Vocabulary holds the keyword tables. Order matters: the first subject that
// matches wins and topics are reported in list order.
type Vocabulary struct {
	Subjects       []string
	Topics         []string
	PositiveMood   []string
	NegativeMood   []string
	HardDifficulty []string
	EasyDifficulty []string
	PracticeWords  []string
}

var Default = Vocabulary{
	Subjects: []string{
		"calculus", "algebra", "physics", "chemistry", "biology",
		"history", "english", "literature", "computer science", "programming",
	},
	Topics: []string{
		"derivative", "integral", "function", "equation", "theory",
		"concept", "chapter", "problem", "exercise",
	},
	PositiveMood:   []string{"understood", "clear", "easy", "good", "well", "progress"},
	NegativeMood:   []string{"difficult", "hard", "confused", "struggle", "complex"},
	HardDifficulty: []string{"difficult", "hard"},
	EasyDifficulty: []string{"easy", "simple"},
	PracticeWords:  []string{"practice", "problem"},
}

const (
	neutralScore = 3
	// a week of minutes; keeps absurd numbers from overflowing downstream sums
	maxDurationMinutes = 7 * 24 * 60

	extendedSessionMinutes = 120
	shortSessionMinutes    = 30
	breadthTopicCount      = 2
)

const (
	msgExtended   = "Great job on the extended study session!"
	msgShort      = "Consider longer study sessions for better retention."
	msgBreadth    = "You covered multiple topics - good breadth of learning."
	msgPractice   = "Practice problems are excellent for reinforcing concepts."
	msgEncouraged = "Keep up the consistent study routine!"
)

var durationRe = regexp.MustCompile(`(?i)(\d+)\s*(hours?|hrs?|minutes?|mins?)`)

// Extract applies the Default vocabulary.
func Extract(raw string) ExtractedLog {
	return Default.Extract(raw)
}

func (v Vocabulary) Extract(raw string) ExtractedLog {
	lower := strings.ToLower(raw)

	out := ExtractedLog{
		Subject:         firstContained(lower, v.Subjects),
		DurationMinutes: Duration(raw),
		Topics:          allContained(lower, v.Topics),
		MoodScore:       v.mood(lower),
		DifficultyLevel: v.difficulty(lower),
	}
	out.Insights = v.insight(lower, out.DurationMinutes, out.Topics)
	return out
}

// Duration returns the first "<n> <unit>" quantity in minutes, or 0.
func Duration(raw string) int {
	m := durationRe.FindStringSubmatch(raw)
	if len(m) < 3 {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n > maxDurationMinutes {
		// only overflow gets here: the pattern guarantees digits
		return maxDurationMinutes
	}
	unit := strings.ToLower(m[2])
	if strings.HasPrefix(unit, "h") {
		n *= 60
	}
	return min(n, maxDurationMinutes)
}

func (v Vocabulary) mood(lower string) int {
	pos := len(allContained(lower, v.PositiveMood))
	neg := len(allContained(lower, v.NegativeMood))
	switch {
	case pos > neg:
		return 4
	case neg > pos:
		return 2
	default:
		return neutralScore
	}
}

func (v Vocabulary) difficulty(lower string) int {
	level := neutralScore
	if firstContained(lower, v.HardDifficulty) != "" {
		level = 4
	}
	if firstContained(lower, v.EasyDifficulty) != "" {
		level = 2
	}
	return level
}

func (v Vocabulary) insight(lower string, minutes int, topics []string) string {
	var parts []string
	switch {
	case minutes >= extendedSessionMinutes:
		parts = append(parts, msgExtended)
	case minutes < shortSessionMinutes:
		parts = append(parts, msgShort)
	}
	if len(topics) > breadthTopicCount {
		parts = append(parts, msgBreadth)
	}
	if firstContained(lower, v.PracticeWords) != "" {
		parts = append(parts, msgPractice)
	}
	if len(parts) == 0 {
		return msgEncouraged
	}
	return strings.Join(parts, " ")
}

func firstContained(lower string, words []string) string {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return w
		}
	}
	return ""
}

func allContained(lower string, words []string) []string {
	out := []string{}
	for _, w := range words {
		if strings.Contains(lower, w) {
			out = append(out, w)
		}
	}
	return out
}
