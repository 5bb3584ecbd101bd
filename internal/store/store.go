package store

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	practicesession "github.com/qbank-local/backend/internal/domain/practice_session"
)

var (
	ErrNotFound = errors.New("not found")
)

// CorruptError is returned when a stored progress document cannot be decoded.
type CorruptError struct {
	Location string
	Wrapped  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt progress document at %s: %v", e.Location, e.Wrapped)
}

func (e *CorruptError) Unwrap() error {
	return e.Wrapped
}

// ProgressStore persists the progress snapshot of one session.
// Save fully replaces the previous document; there is no history.
type ProgressStore interface {
	Save(ctx context.Context, snap *practicesession.Snapshot) error
	// Load returns ErrNotFound when nothing was saved yet and *CorruptError
	// when the stored document is unreadable.
	Load(ctx context.Context) (*practicesession.Snapshot, error)
}
