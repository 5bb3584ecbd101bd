package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	practicesession "github.com/qbank-local/backend/internal/domain/practice_session"
	"github.com/qbank-local/backend/internal/domain/questionbank"
	"github.com/qbank-local/backend/internal/store"
)

func boolPtr(b bool) *bool { return &b }

func sampleSnapshot() *practicesession.Snapshot {
	return &practicesession.Snapshot{
		Timestamp: "2026-03-14T09:26:53Z",
		Answers: map[string]practicesession.RecordDocument{
			"0": {Choice: "A", IsCorrect: true, Timestamp: "2026-03-14T09:20:00Z", QuestionID: "abcdef0123456789"},
			"3": {Choice: "C", IsCorrect: false, Timestamp: "2026-03-14T09:21:00Z"},
		},
		Flags:    []int{1, 3},
		Favs:     []int{2},
		Filters:  questionbank.FilterSpec{Category: []string{"Net"}, Difficulty: []string{}},
		Shuffle:  boolPtr(true),
		Order:    []int{3, 0, 2, 1},
		Position: 1,
	}
}

// storeFactories builds every ProgressStore implementation against fresh storage.
func storeFactories(t *testing.T) map[string]func() store.ProgressStore {
	return map[string]func() store.ProgressStore{
		"json": func() store.ProgressStore {
			return store.NewJSONFile(filepath.Join(t.TempDir(), "progress.json"))
		},
		"sqlite": func() store.ProgressStore {
			db, err := store.NewSQLite(filepath.Join(t.TempDir(), "progress.db"))
			require.NoError(t, err)
			t.Cleanup(func() { db.Close() })
			return db.ForSession("local")
		},
	}
}

func TestProgressStore_RoundTrip(t *testing.T) {
	for name, factory := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := factory()

			require.NoError(t, s.Save(ctx, sampleSnapshot()))
			got, err := s.Load(ctx)

			require.NoError(t, err)
			assert.Equal(t, sampleSnapshot(), got)
		})
	}
}

func TestProgressStore_SaveOverwrites(t *testing.T) {
	for name, factory := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := factory()
			require.NoError(t, s.Save(ctx, sampleSnapshot()))

			next := sampleSnapshot()
			next.Answers = map[string]practicesession.RecordDocument{}
			next.Flags = []int{}
			require.NoError(t, s.Save(ctx, next))

			got, err := s.Load(ctx)
			require.NoError(t, err)
			assert.Empty(t, got.Answers)
			assert.Empty(t, got.Flags)
		})
	}
}

func TestProgressStore_MissingIsNotFound(t *testing.T) {
	for name, factory := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			_, err := factory().Load(context.Background())

			assert.ErrorIs(t, err, store.ErrNotFound)
		})
	}
}

func TestJSONFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"answers": [1, 2`), 0o644))

	_, err := store.NewJSONFile(path).Load(context.Background())

	var corrupt *store.CorruptError
	require.ErrorAs(t, err, &corrupt)
	assert.Equal(t, path, corrupt.Location)
}

func TestJSONFileStore_WrongShapeIsCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"answers": "nope"}`), 0o644))

	_, err := store.NewJSONFile(path).Load(context.Background())

	var corrupt *store.CorruptError
	assert.ErrorAs(t, err, &corrupt)
}

func TestJSONFileStore_ReadsLegacyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	legacy := `{
  "timestamp": "2024-05-01T10:00:00.123456",
  "answers": {"2": {"choice": "B", "is_correct": true, "timestamp": "2024-05-01T09:59:00.000001"}},
  "flags": [0],
  "favs": [],
  "filters": {"Category": ["Cardiology"], "Difficulty": []},
  "shuffle": false
}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	snap, err := store.NewJSONFile(path).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "B", snap.Answers["2"].Choice)
	assert.Empty(t, snap.Answers["2"].QuestionID)
	assert.Equal(t, []string{"Cardiology"}, snap.Filters.Category)
	assert.False(t, snap.Config().Shuffle)
	assert.Nil(t, snap.Order)
}

func TestJSONFileStore_MissingShuffleDefaultsOn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	legacy := `{"answers": {}, "flags": [], "favs": [], "filters": {"Category": [], "Difficulty": ["Hard"]}}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	snap, err := store.NewJSONFile(path).Load(context.Background())

	require.NoError(t, err)
	assert.Nil(t, snap.Shuffle)
	config := snap.Config()
	assert.True(t, config.Shuffle)
	assert.Equal(t, []string{"Hard"}, config.Filter.Difficulty)
}

func TestJSONFileStore_SaveFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "progress.json")
	s := store.NewJSONFile(path)
	assert.Equal(t, path, s.Path())

	err := s.Save(context.Background(), sampleSnapshot())

	assert.Error(t, err)
}

func TestSQLiteStore_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	db, err := store.NewSQLite(filepath.Join(t.TempDir(), "progress.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.ForSession("alice").Save(ctx, sampleSnapshot()))
	other := sampleSnapshot()
	other.Shuffle = boolPtr(false)
	require.NoError(t, db.ForSession("bob").Save(ctx, other))

	alice, err := db.ForSession("alice").Load(ctx)
	require.NoError(t, err)
	assert.True(t, alice.Config().Shuffle)

	bob, err := db.ForSession("bob").Load(ctx)
	require.NoError(t, err)
	assert.False(t, bob.Config().Shuffle)

	ids, err := db.ListSessions(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice", "bob"}, ids)

	require.NoError(t, db.DeleteSession(ctx, "alice"))
	assert.ErrorIs(t, db.DeleteSession(ctx, "alice"), store.ErrNotFound)
	_, err = db.ForSession("alice").Load(ctx)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
