package db

import (
	"fmt"
	"time"

	"studypulse/internal/jobs"
	"studypulse/internal/logger"
	"studypulse/internal/store"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens a gorm handle for driver ("postgres" or "sqlite").
// Unique violations are translated to gorm.ErrDuplicatedKey on both.
// Slow queries and errors go to log; record-not-found misses are routine
// lookups and are not logged.
func Connect(driver, dsn string, log *logger.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         newGormLogger(log),
	})
	if err != nil {
		return nil, err
	}

	if driver == "sqlite" {
		// one writer; shared-cache memory databases also need a single connection
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return gdb, nil
}

func newGormLogger(log *logger.Logger) gormlogger.Interface {
	if log == nil {
		log = logger.NewNop()
	}
	return gormlogger.New(log.With("component", "gorm"), gormlogger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	// Tables
	if err := gdb.AutoMigrate(
		&store.Subject{},
		&store.StudyLog{},
		&store.Streak{},
		&store.AIInsight{},
		&store.Deadline{},
		&store.Goal{},
	); err != nil {
		return err
	}

	// Subject names are unique per user, case-insensitively. Resolver's
	// insert-on-conflict depends on this index.
	if err := gdb.Exec(`create unique index if not exists uq_subjects_user_lower_name on subjects(user_id, lower(name));`).Error; err != nil {
		return err
	}

	// Helpful indexes
	stmts := []string{
		`create index if not exists idx_logs_user_date on study_logs(user_id, study_date desc);`,
		`create index if not exists idx_logs_user_subject on study_logs(user_id, subject_id);`,
		`create index if not exists idx_insights_user_generated on ai_insights(user_id, generated_at desc);`,
		`create index if not exists idx_deadlines_user_due on deadlines(user_id, due_date);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	// The job queue claims with FOR UPDATE SKIP LOCKED, postgres only.
	if gdb.Dialector.Name() == "postgres" {
		if err := gdb.AutoMigrate(&jobs.Job{}); err != nil {
			return err
		}
		jobStmts := []string{
			`create index if not exists idx_jobs_due on jobs(status, run_at);`,
			`create index if not exists idx_jobs_lock on jobs(status, locked_at);`,
		}
		for _, s := range jobStmts {
			if err := gdb.Exec(s).Error; err != nil {
				return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
			}
		}
	}

	return nil
}
