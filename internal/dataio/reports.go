package dataio

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shiftbooks/timeclerk/pkg/dedupe"
	"github.com/shiftbooks/timeclerk/pkg/errors"
	"github.com/shiftbooks/timeclerk/pkg/logging"
	"github.com/shiftbooks/timeclerk/pkg/timecard"
)

// SaveDuplicateReport writes the duplicate-key audit beside the
// cleaned data: one row per duplicated key with its occurrence count,
// largest group first (the detector's ordering).
func (s *Store) SaveDuplicateReport(name string, mode timecard.KeyMode, groups []dedupe.Group) error {
	path := filepath.Join(s.ws.ProcessedDir(), name+"_duplicate_keys_report.csv")

	f, err := os.Create(path)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	keyCols := mode.Columns()
	head := make([]string, 0, len(keyCols)+1)
	for _, c := range keyCols {
		head = append(head, c.String())
	}
	head = append(head, "count")
	if err := w.Write(head); err != nil {
		return errors.WrapIO("write", path, err)
	}

	for _, g := range groups {
		row := []string{g.Key.EmployeeID, g.Key.Date}
		if mode == timecard.ThreeKey {
			row = append(row, g.Key.ClockIn)
		}
		row = append(row, strconv.Itoa(g.Count()))
		if err := w.Write(row); err != nil {
			return errors.WrapIO("write", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.WrapIO("write", path, err)
	}

	logging.Info().Str("path", path).Int("groups", len(groups)).
		Msg("Duplicate key report saved")
	return nil
}

// SaveIncompleteReport writes the incomplete-rows report for client
// review. The target folder must already exist; a missing client tree
// fails before any output is written.
func (s *Store) SaveIncompleteReport(name string, ds *timecard.Dataset) error {
	if _, err := os.Stat(s.ws.IncompleteRowsDir()); err != nil {
		return errors.WrapIO("open", s.ws.IncompleteRowsDir(), errors.ErrNotFound)
	}

	path := filepath.Join(s.ws.IncompleteRowsDir(), name+"_incomplete_rows_report.csv")
	if err := WriteCSV(path, ds, true); err != nil {
		return err
	}
	logging.Info().Str("path", path).Int("rows", ds.Len()).
		Msg("Incomplete rows report saved")
	return nil
}
