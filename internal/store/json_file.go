package store

import (
	"context"
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	practicesession "github.com/qbank-local/backend/internal/domain/practice_session"
)

// JSONFileStore keeps progress in a single JSON file at a fixed path.
// Each save overwrites the file; a crash mid-write can leave it corrupt,
// which Load reports as *CorruptError.
type JSONFileStore struct {
	path string
}

// Compile-time check: *JSONFileStore satisfies the ProgressStore interface.
var _ ProgressStore = (*JSONFileStore)(nil)

func NewJSONFile(path string) *JSONFileStore {
	return &JSONFileStore{path: path}
}

func (s *JSONFileStore) Path() string {
	return s.path
}

func (s *JSONFileStore) Save(ctx context.Context, snap *practicesession.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode progress")
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return errors.Wrap(err, "write progress file")
	}
	return nil
}

func (s *JSONFileStore) Load(ctx context.Context) (*practicesession.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "read progress file")
	}
	return decode(s.path, data)
}

func decode(location string, data []byte) (*practicesession.Snapshot, error) {
	var snap practicesession.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, &CorruptError{Location: location, Wrapped: err}
	}
	return &snap, nil
}
