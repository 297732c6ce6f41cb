package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "ledger", "timeclerk.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRecordAndRuns(t *testing.T) {
	db := openTestDB(t)

	ranAt := time.Date(2024, time.February, 1, 10, 30, 0, 0, time.UTC)
	require.NoError(t, db.Record(Run{
		Client:          "acme",
		Dataset:         "jan",
		Stage:           "clean",
		Policy:          "keep_best_completeness",
		RowsIn:          120,
		RowsOut:         117,
		DuplicateGroups: 2,
		RanAt:           ranAt,
	}))
	require.NoError(t, db.Record(Run{
		Client:         "acme",
		Dataset:        "jan",
		Stage:          "check",
		RowsIn:         117,
		RowsOut:        117,
		IncompleteRows: 9,
	}))

	runs, err := db.Runs("acme", 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, "check", runs[0].Stage, "newest first")
	assert.Equal(t, 9, runs[0].IncompleteRows)
	assert.False(t, runs[0].RanAt.IsZero(), "zero RanAt recorded as now")

	assert.Equal(t, "clean", runs[1].Stage)
	assert.Equal(t, "keep_best_completeness", runs[1].Policy)
	assert.Equal(t, 2, runs[1].DuplicateGroups)
	assert.True(t, ranAt.Equal(runs[1].RanAt))
}

func TestRunsLimit(t *testing.T) {
	db := openTestDB(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, db.Record(Run{Client: "acme", Dataset: "jan", Stage: "clean"}))
	}

	runs, err := db.Runs("acme", 3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestRunsScopedToClient(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Record(Run{Client: "acme", Dataset: "jan", Stage: "clean"}))
	require.NoError(t, db.Record(Run{Client: "globex", Dataset: "jan", Stage: "clean"}))

	runs, err := db.Runs("acme", 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "acme", runs[0].Client)
}

func TestRunsEmptyLedger(t *testing.T) {
	db := openTestDB(t)
	runs, err := db.Runs("nobody", 0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timeclerk.db")

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Record(Run{Client: "acme", Dataset: "jan", Stage: "clean"}))
	require.NoError(t, db.Close())

	db2, err := Open(path)
	require.NoError(t, err)
	defer db2.Close()

	runs, err := db2.Runs("acme", 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
