package dataio

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftbooks/timeclerk/internal/workspace"
	"github.com/shiftbooks/timeclerk/pkg/dedupe"
	"github.com/shiftbooks/timeclerk/pkg/errors"
	"github.com/shiftbooks/timeclerk/pkg/timecard"
)

// newTestClient creates a client tree under root and returns its
// resolver.
func newTestClient(t *testing.T, root string) workspace.Client {
	t.Helper()
	ws := workspace.New(root, "acme")
	require.NoError(t, ws.Create())
	return ws
}

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestSaveDuplicateReport(t *testing.T) {
	ws := newTestClient(t, t.TempDir())
	store := NewStore(ws)

	groups := []dedupe.Group{
		{
			Key:     timecard.CompositeKey{EmployeeID: "E1", Date: "2024-01-05", ClockIn: "2024-01-05 08:00"},
			Records: make([]*timecard.ShiftRecord, 3),
		},
		{
			Key:     timecard.CompositeKey{EmployeeID: "E2", Date: "2024-01-06", ClockIn: "2024-01-06 09:00"},
			Records: make([]*timecard.ShiftRecord, 2),
		},
	}

	t.Run("three key", func(t *testing.T) {
		require.NoError(t, store.SaveDuplicateReport("jan", timecard.ThreeKey, groups))

		rows := readRows(t, filepath.Join(ws.ProcessedDir(), "jan_duplicate_keys_report.csv"))
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"employee_id", "date", "clock_in", "count"}, rows[0])
		assert.Equal(t, []string{"E1", "2024-01-05", "2024-01-05 08:00", "3"}, rows[1])
		assert.Equal(t, []string{"E2", "2024-01-06", "2024-01-06 09:00", "2"}, rows[2])
	})

	t.Run("two key drops the clock-in column", func(t *testing.T) {
		require.NoError(t, store.SaveDuplicateReport("feb", timecard.TwoKey, groups))

		rows := readRows(t, filepath.Join(ws.ProcessedDir(), "feb_duplicate_keys_report.csv"))
		assert.Equal(t, []string{"employee_id", "date", "count"}, rows[0])
		assert.Equal(t, []string{"E1", "2024-01-05", "3"}, rows[1])
	})

	t.Run("no duplicates still writes the header", func(t *testing.T) {
		require.NoError(t, store.SaveDuplicateReport("mar", timecard.ThreeKey, nil))

		rows := readRows(t, filepath.Join(ws.ProcessedDir(), "mar_duplicate_keys_report.csv"))
		require.Len(t, rows, 1)
	})
}

func TestSaveIncompleteReport(t *testing.T) {
	ws := newTestClient(t, t.TempDir())
	store := NewStore(ws)

	ds := timecard.NewDataset(&timecard.ShiftRecord{
		EmployeeID: "E1",
		Issues:     []string{"missing clock_out"},
	})

	require.NoError(t, store.SaveIncompleteReport("jan", ds))

	rows := readRows(t, filepath.Join(ws.IncompleteRowsDir(), "jan_incomplete_rows_report.csv"))
	require.Len(t, rows, 2)
	assert.Equal(t, "data_issues", rows[0][len(rows[0])-1])
	assert.Equal(t, "missing clock_out", rows[1][len(rows[1])-1])
}

func TestSaveIncompleteReportRequiresClientTree(t *testing.T) {
	ws := workspace.New(t.TempDir(), "ghost")
	store := NewStore(ws)

	err := store.SaveIncompleteReport("jan", timecard.NewDataset())
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
