package dataio

import (
	"encoding/csv"
	"os"

	"github.com/shiftbooks/timeclerk/pkg/errors"
	"github.com/shiftbooks/timeclerk/pkg/logging"
	"github.com/shiftbooks/timeclerk/pkg/timecard"
)

// ReadCSV loads a dataset from a CSV file. The first row is the
// header; rows keep their file order as arrival order.
func ReadCSV(path string) (*timecard.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged vendor exports

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.WrapParse("csv", path, err)
	}
	if len(rows) == 0 {
		return nil, errors.NewParseError("csv", path, "file has no header row", nil)
	}

	h := parseHeader(rows[0])
	ds := timecard.NewDataset()
	for _, r := range rows[1:] {
		ds.Append(h.record(r))
	}

	logging.Debug().Str("path", path).Int("rows", ds.Len()).Msg("Loaded CSV dataset")
	return ds, nil
}

// WriteCSV saves a dataset to a CSV file. withIssues appends the
// data_issues column for flagged output.
func WriteCSV(path string, ds *timecard.Dataset, withIssues bool) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(headerRow(withIssues)); err != nil {
		return errors.WrapIO("write", path, err)
	}
	for _, r := range ds.Records() {
		if err := w.Write(row(r, withIssues)); err != nil {
			return errors.WrapIO("write", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.WrapIO("write", path, err)
	}

	logging.Debug().Str("path", path).Int("rows", ds.Len()).Msg("Saved CSV dataset")
	return nil
}
