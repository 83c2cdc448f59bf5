package store

import (
	"sort"

	"gorm.io/datatypes"
)

func (p LogPatch) apply(row *StudyLog) {
	if p.RawText != nil {
		row.RawText = *p.RawText
	}
	if p.ExtractedTopics != nil {
		row.ExtractedTopics = datatypes.JSONSlice[string](append([]string{}, p.ExtractedTopics...))
	}
	if p.DurationMinutes != nil {
		row.DurationMinutes = max(*p.DurationMinutes, 0)
	}
	if p.StudyDate != nil {
		row.StudyDate = *p.StudyDate
	}
	if p.MoodScore != nil {
		row.MoodScore = intPtr(*p.MoodScore)
	}
	if p.DifficultyLevel != nil {
		row.DifficultyLevel = intPtr(*p.DifficultyLevel)
	}
	if p.Insights != nil {
		row.Insights = *p.Insights
	}
	switch {
	case p.ClearSubject:
		row.SubjectID = nil
	case p.SubjectID != nil:
		id := *p.SubjectID
		row.SubjectID = &id
	}
}

func (p SubjectPatch) apply(row *Subject) {
	if p.Name != nil {
		row.Name = *p.Name
	}
	if p.Color != nil {
		row.Color = *p.Color
	}
	if p.TargetHoursPerWeek != nil {
		row.TargetHoursPerWeek = max(*p.TargetHoursPerWeek, 0)
	}
}

func (p GoalPatch) apply(row *Goal) {
	if p.Title != nil {
		row.Title = *p.Title
	}
	if p.Description != nil {
		row.Description = *p.Description
	}
	if p.TargetValue != nil {
		row.TargetValue = *p.TargetValue
	}
	switch {
	case p.ClearDeadline:
		row.Deadline = nil
	case p.Deadline != nil:
		d := *p.Deadline
		row.Deadline = &d
	}
}

func (d *Deadline) applyDefaults() {
	if d.Type == "" {
		d.Type = DeadlineTask
	}
	if d.Priority == "" {
		d.Priority = "medium"
	}
	if d.Status == "" {
		d.Status = StatusPending
	}
}

func sortStreaks(rows []Streak) []Streak {
	order := map[StreakType]int{}
	for i, t := range StreakTypes {
		order[t] = i
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return order[rows[i].StreakType] < order[rows[j].StreakType]
	})
	return rows
}

func intPtr(v int) *int { return &v }
