package jobs

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrUnknownType = errors.New("unknown job type")

// Handler runs one background task for a user. Payload is the JSON the
// task was dispatched with.
type Handler func(ctx context.Context, userID uuid.UUID, payload []byte) error

type Handlers map[string]Handler

// Dispatcher hands a task off for best-effort background execution.
// A nil error means the task was accepted, not that it ran.
type Dispatcher interface {
	Dispatch(ctx context.Context, userID uuid.UUID, typ string, payload any) error
}
