package jobs

import (
	"context"
	"fmt"
	"math"
	"time"

	"studypulse/internal/logger"
)

// Queue is the part of Repo the worker drives.
type Queue interface {
	Claim(ctx context.Context, workerID string) (*Job, error)
	MarkDone(ctx context.Context, id uint64) error
	MarkFailed(ctx context.Context, id uint64, errMsg string) error
	RetryLater(ctx context.Context, id uint64, attempts int, runAt time.Time, errMsg string) error
}

type Worker struct {
	ID       string
	Queue    Queue
	Handlers Handlers
	Log      *logger.Logger
	Interval time.Duration
}

// Run polls until ctx is cancelled. A job claimed before cancellation runs
// to completion and is marked, so callers should wait for Run to return
// before closing the database.
func (w *Worker) Run(ctx context.Context) {
	interval := w.Interval
	if interval == 0 {
		interval = 800 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			job, err := w.Queue.Claim(ctx, w.ID)
			if err != nil {
				w.Log.Warn("worker claim error", "worker", w.ID, "error", err)
				continue
			}
			if job == nil {
				continue
			}
			w.handle(context.WithoutCancel(ctx), job)
		}
	}
}

func (w *Worker) handle(ctx context.Context, job *Job) {
	h, ok := w.Handlers[job.Type]
	if !ok {
		_ = w.Queue.MarkFailed(ctx, job.ID, "unknown job type")
		return
	}

	if err := h(ctx, job.UserID, job.Payload); err != nil {
		w.Log.Warn("job failed", "job_id", job.ID, "type", job.Type, "attempt", job.Attempts+1, "error", err)
		w.retry(ctx, job, err.Error())
		return
	}
	_ = w.Queue.MarkDone(ctx, job.ID)
}

// retry reschedules with exponential backoff; after MaxAttempts the job is
// dropped as FAILED.
func (w *Worker) retry(ctx context.Context, job *Job, errMsg string) {
	attempts := job.Attempts + 1
	if attempts >= job.MaxAttempts {
		_ = w.Queue.MarkFailed(ctx, job.ID, fmt.Sprintf("gave up after %d attempts: %s", attempts, errMsg))
		return
	}

	sec := math.Min(math.Pow(2, float64(attempts)), 600)
	next := time.Now().Add(time.Duration(sec) * time.Second)

	_ = w.Queue.RetryLater(ctx, job.ID, attempts, next, errMsg)
}
