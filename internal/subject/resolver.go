package subject

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/google/uuid"

	"studypulse/internal/store"
)

const DefaultColor = "#3B82F6"

var colors = map[string]string{
	"calculus":         "#3B82F6",
	"algebra":          "#10B981",
	"physics":          "#8B5CF6",
	"chemistry":        "#F59E0B",
	"biology":          "#EF4444",
	"history":          "#6B7280",
	"english":          "#EC4899",
	"literature":       "#14B8A6",
	"computer science": "#6366F1",
	"programming":      "#84CC16",
}

// ColorFor returns the fixed display color for a subject name.
func ColorFor(name string) string {
	if c, ok := colors[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return DefaultColor
}

// DisplayName title-cases each word: "computer science" -> "Computer Science".
func DisplayName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Resolver maps subject names to ids, creating subjects on first mention.
type Resolver struct {
	Subjects           store.SubjectStore
	DefaultTargetHours float64
}

// Resolve returns nil for an empty name. Otherwise it returns the id of the
// user's subject with that name (case-insensitive), creating it if needed.
// Two concurrent calls for a new name yield one subject: the insert is
// conflict-tolerant and the loser re-reads the winner's row.
func (r *Resolver) Resolve(ctx context.Context, userID uuid.UUID, name string) (*uuid.UUID, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	existing, err := r.Subjects.FindSubjectByName(ctx, userID, name)
	if err == nil {
		return &existing.ID, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("find subject: %w", err)
	}

	s := store.Subject{
		UserID:             userID,
		Name:               DisplayName(name),
		Color:              ColorFor(name),
		TargetHoursPerWeek: r.DefaultTargetHours,
	}
	created, err := r.Subjects.CreateSubjectIfAbsent(ctx, &s)
	if err != nil {
		return nil, fmt.Errorf("create subject: %w", err)
	}
	if created {
		return &s.ID, nil
	}

	// lost the race; the winner's row may take a moment to become visible
	var winner store.Subject
	err = retry.Do(
		func() error {
			var err error
			winner, err = r.Subjects.FindSubjectByName(ctx, userID, name)
			if err != nil && !errors.Is(err, store.ErrNotFound) {
				return retry.Unrecoverable(err)
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(4),
		retry.Delay(20*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("find subject after conflict: %w", err)
	}
	return &winner.ID, nil
}
