package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Memory is an in-process Store used for demo mode and tests. A single
// mutex serializes all access, which also makes subject find-or-create atomic.
type Memory struct {
	mu        sync.Mutex
	logs      map[uuid.UUID]StudyLog
	subjects  map[uuid.UUID]Subject
	streaks   map[uuid.UUID]map[StreakType]Streak
	insights  map[uuid.UUID]AIInsight
	deadlines map[uuid.UUID]Deadline
	goals     map[uuid.UUID]Goal

	Now func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		logs:      map[uuid.UUID]StudyLog{},
		subjects:  map[uuid.UUID]Subject{},
		streaks:   map[uuid.UUID]map[StreakType]Streak{},
		insights:  map[uuid.UUID]AIInsight{},
		deadlines: map[uuid.UUID]Deadline{},
		goals:     map[uuid.UUID]Goal{},
		Now:       func() time.Time { return time.Now().UTC() },
	}
}

var _ Store = (*Memory)(nil)

func cloneLog(l StudyLog) StudyLog {
	l.ExtractedTopics = datatypes.JSONSlice[string](append([]string{}, l.ExtractedTopics...))
	if l.SubjectID != nil {
		id := *l.SubjectID
		l.SubjectID = &id
	}
	if l.MoodScore != nil {
		l.MoodScore = intPtr(*l.MoodScore)
	}
	if l.DifficultyLevel != nil {
		l.DifficultyLevel = intPtr(*l.DifficultyLevel)
	}
	return l
}

// ---- logs ----

func (m *Memory) AppendLog(_ context.Context, log *StudyLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.Now()
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	if _, ok := m.logs[log.ID]; ok {
		return ErrConflict
	}
	if log.ExtractedTopics == nil {
		log.ExtractedTopics = datatypes.JSONSlice[string]{}
	}
	log.CreatedAt, log.UpdatedAt = now, now
	m.logs[log.ID] = cloneLog(*log)
	return nil
}

func (m *Memory) QueryLogs(_ context.Context, userID uuid.UUID, r *DateRange) ([]StudyLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []StudyLog{}
	for _, l := range m.logs {
		if l.UserID != userID {
			continue
		}
		if r != nil && !r.Contains(l.StudyDate) {
			continue
		}
		out = append(out, cloneLog(l))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StudyDate != out[j].StudyDate {
			return out[i].StudyDate > out[j].StudyDate
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *Memory) GetLog(_ context.Context, userID, id uuid.UUID) (StudyLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.logs[id]
	if !ok || l.UserID != userID {
		return StudyLog{}, ErrNotFound
	}
	return cloneLog(l), nil
}

func (m *Memory) UpdateLog(_ context.Context, userID, id uuid.UUID, patch LogPatch) (StudyLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.logs[id]
	if !ok || l.UserID != userID {
		return StudyLog{}, ErrNotFound
	}
	patch.apply(&l)
	l.UpdatedAt = m.Now()
	m.logs[id] = cloneLog(l)
	return cloneLog(l), nil
}

func (m *Memory) RemoveLog(_ context.Context, userID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.logs[id]
	if !ok || l.UserID != userID {
		return ErrNotFound
	}
	delete(m.logs, id)
	return nil
}

func (m *Memory) ActiveSubjectCount(_ context.Context, userID uuid.UUID, since Day) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	seen := map[uuid.UUID]struct{}{}
	for _, l := range m.logs {
		if l.UserID != userID || l.SubjectID == nil {
			continue
		}
		if since != "" && l.StudyDate < since {
			continue
		}
		seen[*l.SubjectID] = struct{}{}
	}
	return len(seen), nil
}

// ---- subjects ----

func (m *Memory) ListSubjects(_ context.Context, userID uuid.UUID) ([]Subject, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []Subject{}
	for _, s := range m.subjects {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (m *Memory) GetSubject(_ context.Context, userID, id uuid.UUID) (Subject, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.subjects[id]
	if !ok || s.UserID != userID {
		return Subject{}, ErrNotFound
	}
	return s, nil
}

func (m *Memory) FindSubjectByName(_ context.Context, userID uuid.UUID, name string) (Subject, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.findByNameLocked(userID, name, uuid.Nil); ok {
		return s, nil
	}
	return Subject{}, ErrNotFound
}

func (m *Memory) findByNameLocked(userID uuid.UUID, name string, except uuid.UUID) (Subject, bool) {
	for _, s := range m.subjects {
		if s.UserID == userID && s.ID != except && strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Subject{}, false
}

func (m *Memory) CreateSubject(_ context.Context, s *Subject) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.findByNameLocked(s.UserID, s.Name, uuid.Nil); ok {
		return ErrConflict
	}
	m.insertSubjectLocked(s)
	return nil
}

func (m *Memory) CreateSubjectIfAbsent(_ context.Context, s *Subject) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.findByNameLocked(s.UserID, s.Name, uuid.Nil); ok {
		return false, nil
	}
	m.insertSubjectLocked(s)
	return true, nil
}

func (m *Memory) insertSubjectLocked(s *Subject) {
	now := m.Now()
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.CreatedAt, s.UpdatedAt = now, now
	m.subjects[s.ID] = *s
}

func (m *Memory) UpdateSubject(_ context.Context, userID, id uuid.UUID, patch SubjectPatch) (Subject, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.subjects[id]
	if !ok || s.UserID != userID {
		return Subject{}, ErrNotFound
	}
	if patch.Name != nil {
		if _, taken := m.findByNameLocked(userID, *patch.Name, id); taken {
			return Subject{}, ErrConflict
		}
	}
	patch.apply(&s)
	s.UpdatedAt = m.Now()
	m.subjects[id] = s
	return s, nil
}

func (m *Memory) DeleteSubject(_ context.Context, userID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.subjects[id]
	if !ok || s.UserID != userID {
		return ErrNotFound
	}
	now := m.Now()
	for lid, l := range m.logs {
		if l.UserID == userID && l.SubjectID != nil && *l.SubjectID == id {
			l.SubjectID = nil
			l.UpdatedAt = now
			m.logs[lid] = l
		}
	}
	for did, d := range m.deadlines {
		if d.UserID == userID && d.SubjectID != nil && *d.SubjectID == id {
			d.SubjectID = nil
			d.UpdatedAt = now
			m.deadlines[did] = d
		}
	}
	delete(m.subjects, id)
	return nil
}

// ---- streaks ----

func (m *Memory) ListStreaks(_ context.Context, userID uuid.UUID) ([]Streak, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []Streak{}
	for _, s := range m.streaks[userID] {
		out = append(out, s)
	}
	return sortStreaks(out), nil
}

func (m *Memory) SaveStreaks(_ context.Context, userID uuid.UUID, rows []Streak) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.Now()
	byType, ok := m.streaks[userID]
	if !ok {
		byType = map[StreakType]Streak{}
		m.streaks[userID] = byType
	}
	for _, row := range rows {
		row.UserID = userID
		if prev, ok := byType[row.StreakType]; ok {
			row.ID = prev.ID
			row.CreatedAt = prev.CreatedAt
		} else {
			if row.ID == uuid.Nil {
				row.ID = uuid.New()
			}
			row.CreatedAt = now
		}
		row.UpdatedAt = now
		byType[row.StreakType] = row
	}
	return nil
}

// ---- insights ----

func (m *Memory) AppendInsight(_ context.Context, in *AIInsight) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if in.ID == uuid.Nil {
		in.ID = uuid.New()
	}
	if in.GeneratedAt.IsZero() {
		in.GeneratedAt = m.Now()
	}
	m.insights[in.ID] = *in
	return nil
}

func (m *Memory) LatestInsights(_ context.Context, userID uuid.UUID, limit int) ([]AIInsight, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []AIInsight{}
	for _, in := range m.insights {
		if in.UserID == userID {
			out = append(out, in)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GeneratedAt.After(out[j].GeneratedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *Memory) MarkInsightRead(_ context.Context, userID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	in, ok := m.insights[id]
	if !ok || in.UserID != userID {
		return ErrNotFound
	}
	in.IsRead = true
	m.insights[id] = in
	return nil
}

// ---- deadlines ----

func (m *Memory) CreateDeadline(_ context.Context, d *Deadline) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.Now()
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	d.applyDefaults()
	d.CreatedAt, d.UpdatedAt = now, now
	m.deadlines[d.ID] = *d
	return nil
}

func (m *Memory) UpcomingDeadlines(_ context.Context, userID uuid.UUID, from Day) ([]Deadline, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []Deadline{}
	for _, d := range m.deadlines {
		if d.UserID == userID && d.DueDate >= from {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DueDate != out[j].DueDate {
			return out[i].DueDate < out[j].DueDate
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (m *Memory) UpdateDeadlineStatus(_ context.Context, userID, id uuid.UUID, status DeadlineStatus) (Deadline, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.deadlines[id]
	if !ok || d.UserID != userID {
		return Deadline{}, ErrNotFound
	}
	d.Status = status
	d.UpdatedAt = m.Now()
	m.deadlines[id] = d
	return d, nil
}

func (m *Memory) DeleteDeadline(_ context.Context, userID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.deadlines[id]
	if !ok || d.UserID != userID {
		return ErrNotFound
	}
	delete(m.deadlines, id)
	return nil
}

// ---- goals ----

func cloneGoal(g Goal) Goal {
	if g.Deadline != nil {
		d := *g.Deadline
		g.Deadline = &d
	}
	return g
}

func (m *Memory) CreateGoal(_ context.Context, g *Goal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.Now()
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	g.CreatedAt, g.UpdatedAt = now, now
	m.goals[g.ID] = cloneGoal(*g)
	return nil
}

func (m *Memory) ListGoals(_ context.Context, userID uuid.UUID) ([]Goal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []Goal{}
	for _, g := range m.goals {
		if g.UserID == userID {
			out = append(out, cloneGoal(g))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (m *Memory) UpdateGoal(_ context.Context, userID, id uuid.UUID, patch GoalPatch) (Goal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.goals[id]
	if !ok || g.UserID != userID {
		return Goal{}, ErrNotFound
	}
	patch.apply(&g)
	g.UpdatedAt = m.Now()
	m.goals[id] = g
	return cloneGoal(g), nil
}

func (m *Memory) DeleteGoal(_ context.Context, userID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.goals[id]
	if !ok || g.UserID != userID {
		return ErrNotFound
	}
	delete(m.goals, id)
	return nil
}
