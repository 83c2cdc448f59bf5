package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/avast/retry-go"
	"github.com/google/uuid"

	"studypulse/internal/logger"
)

// Inline runs tasks in-process on their own goroutine. It backs the sqlite
// and memory modes, where there is no shared queue table. Tasks are retried
// with backoff and dropped with a log line once attempts run out.
type Inline struct {
	Handlers Handlers
	Log      *logger.Logger
	Attempts uint
	Delay    time.Duration

	wg sync.WaitGroup
}

var _ Dispatcher = (*Inline)(nil)

func (d *Inline) Dispatch(ctx context.Context, userID uuid.UUID, typ string, payload any) error {
	h, ok := d.Handlers[typ]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownType, typ)
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	attempts := d.Attempts
	if attempts == 0 {
		attempts = 3
	}
	delay := d.Delay
	if delay == 0 {
		delay = 200 * time.Millisecond
	}
	// the request that dispatched us is about to finish
	bg := context.WithoutCancel(ctx)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		err := retry.Do(
			func() error { return h(bg, userID, b) },
			retry.Context(bg),
			retry.Attempts(attempts),
			retry.Delay(delay),
			retry.DelayType(retry.BackOffDelay),
			retry.LastErrorOnly(true),
		)
		if err != nil && d.Log != nil {
			d.Log.Warn("background task dropped", "type", typ, "user_id", userID.String(), "error", err)
		}
	}()
	return nil
}

// Wait blocks until every dispatched task has finished or been dropped.
func (d *Inline) Wait() {
	d.wg.Wait()
}
