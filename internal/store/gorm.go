package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Gorm implements Store on a relational database through gorm. The schema
// is portable between postgres and sqlite; see db.AutoMigrateAndIndexes.
type Gorm struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{DB: db, Now: func() time.Time { return time.Now().UTC() }}
}

var _ Store = (*Gorm)(nil)

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	default:
		return err
	}
}

// ---- logs ----

func (s *Gorm) AppendLog(ctx context.Context, log *StudyLog) error {
	now := s.Now()
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	if log.ExtractedTopics == nil {
		log.ExtractedTopics = datatypes.JSONSlice[string]{}
	}
	log.CreatedAt, log.UpdatedAt = now, now
	return translate(s.DB.WithContext(ctx).Create(log).Error)
}

func (s *Gorm) QueryLogs(ctx context.Context, userID uuid.UUID, r *DateRange) ([]StudyLog, error) {
	q := s.DB.WithContext(ctx).Where("user_id = ?", userID)
	if r != nil {
		if r.From != "" {
			q = q.Where("study_date >= ?", r.From)
		}
		if r.To != "" {
			q = q.Where("study_date <= ?", r.To)
		}
	}

	var rows []StudyLog
	if err := q.Order("study_date desc, created_at desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Gorm) GetLog(ctx context.Context, userID, id uuid.UUID) (StudyLog, error) {
	var row StudyLog
	err := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&row).Error
	return row, translate(err)
}

func (s *Gorm) UpdateLog(ctx context.Context, userID, id uuid.UUID, patch LogPatch) (StudyLog, error) {
	var row StudyLog
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(lockingFor(tx)...).
			Where("id = ? AND user_id = ?", id, userID).
			First(&row).Error; err != nil {
			return err
		}
		patch.apply(&row)
		row.UpdatedAt = s.Now()
		return tx.Save(&row).Error
	})
	return row, translate(err)
}

func (s *Gorm) RemoveLog(ctx context.Context, userID, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&StudyLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Gorm) ActiveSubjectCount(ctx context.Context, userID uuid.UUID, since Day) (int, error) {
	q := s.DB.WithContext(ctx).Model(&StudyLog{}).
		Where("user_id = ? AND subject_id IS NOT NULL", userID)
	if since != "" {
		q = q.Where("study_date >= ?", since)
	}
	var n int64
	if err := q.Distinct("subject_id").Count(&n).Error; err != nil {
		return 0, err
	}
	return int(n), nil
}

// ---- subjects ----

func (s *Gorm) ListSubjects(ctx context.Context, userID uuid.UUID) ([]Subject, error) {
	var rows []Subject
	if err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc, name asc").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Gorm) GetSubject(ctx context.Context, userID, id uuid.UUID) (Subject, error) {
	var row Subject
	err := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&row).Error
	return row, translate(err)
}

func (s *Gorm) FindSubjectByName(ctx context.Context, userID uuid.UUID, name string) (Subject, error) {
	var row Subject
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND lower(name) = lower(?)", userID, name).
		First(&row).Error
	return row, translate(err)
}

func (s *Gorm) CreateSubject(ctx context.Context, sub *Subject) error {
	s.stampSubject(sub)
	return translate(s.DB.WithContext(ctx).Create(sub).Error)
}

// CreateSubjectIfAbsent relies on the unique index on (user_id, lower(name)):
// the losing side of a concurrent insert affects zero rows instead of failing.
func (s *Gorm) CreateSubjectIfAbsent(ctx context.Context, sub *Subject) (bool, error) {
	s.stampSubject(sub)
	res := s.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(sub)
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (s *Gorm) stampSubject(sub *Subject) {
	now := s.Now()
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	sub.CreatedAt, sub.UpdatedAt = now, now
}

func (s *Gorm) UpdateSubject(ctx context.Context, userID, id uuid.UUID, patch SubjectPatch) (Subject, error) {
	var row Subject
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(lockingFor(tx)...).
			Where("id = ? AND user_id = ?", id, userID).
			First(&row).Error; err != nil {
			return err
		}
		patch.apply(&row)
		row.UpdatedAt = s.Now()
		return tx.Save(&row).Error
	})
	return row, translate(err)
}

func (s *Gorm) DeleteSubject(ctx context.Context, userID, id uuid.UUID) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row Subject
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&row).Error; err != nil {
			return err
		}
		now := s.Now()
		if err := tx.Model(&StudyLog{}).
			Where("user_id = ? AND subject_id = ?", userID, id).
			Updates(map[string]any{"subject_id": nil, "updated_at": now}).Error; err != nil {
			return err
		}
		if err := tx.Model(&Deadline{}).
			Where("user_id = ? AND subject_id = ?", userID, id).
			Updates(map[string]any{"subject_id": nil, "updated_at": now}).Error; err != nil {
			return err
		}
		return tx.Delete(&row).Error
	})
	return translate(err)
}

// ---- streaks ----

func (s *Gorm) ListStreaks(ctx context.Context, userID uuid.UUID) ([]Streak, error) {
	var rows []Streak
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return sortStreaks(rows), nil
}

func (s *Gorm) SaveStreaks(ctx context.Context, userID uuid.UUID, rows []Streak) error {
	now := s.Now()
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			row := rows[i]
			row.UserID = userID
			if row.ID == uuid.Nil {
				row.ID = uuid.New()
			}
			if row.CreatedAt.IsZero() {
				row.CreatedAt = now
			}
			row.UpdatedAt = now
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "streak_type"}},
				DoUpdates: clause.AssignmentColumns([]string{"current_streak", "longest_streak", "last_activity", "updated_at"}),
			}).Create(&row).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// ---- insights ----

func (s *Gorm) AppendInsight(ctx context.Context, in *AIInsight) error {
	if in.ID == uuid.Nil {
		in.ID = uuid.New()
	}
	if in.GeneratedAt.IsZero() {
		in.GeneratedAt = s.Now()
	}
	return translate(s.DB.WithContext(ctx).Create(in).Error)
}

func (s *Gorm) LatestInsights(ctx context.Context, userID uuid.UUID, limit int) ([]AIInsight, error) {
	q := s.DB.WithContext(ctx).Where("user_id = ?", userID).Order("generated_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []AIInsight
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Gorm) MarkInsightRead(ctx context.Context, userID, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Model(&AIInsight{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- deadlines ----

func (s *Gorm) CreateDeadline(ctx context.Context, d *Deadline) error {
	now := s.Now()
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	d.applyDefaults()
	d.CreatedAt, d.UpdatedAt = now, now
	return translate(s.DB.WithContext(ctx).Create(d).Error)
}

func (s *Gorm) UpcomingDeadlines(ctx context.Context, userID uuid.UUID, from Day) ([]Deadline, error) {
	var rows []Deadline
	if err := s.DB.WithContext(ctx).
		Where("user_id = ? AND due_date >= ?", userID, from).
		Order("due_date asc, created_at asc").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Gorm) UpdateDeadlineStatus(ctx context.Context, userID, id uuid.UUID, status DeadlineStatus) (Deadline, error) {
	var row Deadline
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&row).Error; err != nil {
			return err
		}
		row.Status = status
		row.UpdatedAt = s.Now()
		return tx.Save(&row).Error
	})
	return row, translate(err)
}

func (s *Gorm) DeleteDeadline(ctx context.Context, userID, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&Deadline{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- goals ----

func (s *Gorm) CreateGoal(ctx context.Context, g *Goal) error {
	now := s.Now()
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	g.CreatedAt, g.UpdatedAt = now, now
	return translate(s.DB.WithContext(ctx).Create(g).Error)
}

func (s *Gorm) ListGoals(ctx context.Context, userID uuid.UUID) ([]Goal, error) {
	var rows []Goal
	if err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc, id asc").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Gorm) UpdateGoal(ctx context.Context, userID, id uuid.UUID, patch GoalPatch) (Goal, error) {
	var row Goal
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(lockingFor(tx)...).
			Where("id = ? AND user_id = ?", id, userID).
			First(&row).Error; err != nil {
			return err
		}
		patch.apply(&row)
		row.UpdatedAt = s.Now()
		return tx.Save(&row).Error
	})
	return row, translate(err)
}

func (s *Gorm) DeleteGoal(ctx context.Context, userID, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&Goal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// lockingFor adds FOR UPDATE on dialects that support row locks.
func lockingFor(tx *gorm.DB) []clause.Expression {
	if tx.Dialector.Name() == "postgres" {
		return []clause.Expression{clause.Locking{Strength: "UPDATE"}}
	}
	return nil
}
