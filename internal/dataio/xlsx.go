package dataio

import (
	"github.com/xuri/excelize/v2"

	"github.com/shiftbooks/timeclerk/pkg/errors"
	"github.com/shiftbooks/timeclerk/pkg/logging"
	"github.com/shiftbooks/timeclerk/pkg/timecard"
)

// ReadXLSX loads a dataset from the first sheet of an XLSX workbook.
// The first row is the header; rows keep their sheet order as arrival
// order.
func ReadXLSX(path string) (*timecard.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.NewParseError("xlsx", path, "workbook has no sheets", nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.WrapParse("xlsx", path, err)
	}
	if len(rows) == 0 {
		return nil, errors.NewParseError("xlsx", path, "sheet has no header row", nil)
	}

	h := parseHeader(rows[0])
	ds := timecard.NewDataset()
	for _, r := range rows[1:] {
		if empty(r) {
			continue
		}
		ds.Append(h.record(r))
	}

	logging.Debug().Str("path", path).Str("sheet", sheets[0]).
		Int("rows", ds.Len()).Msg("Loaded XLSX dataset")
	return ds, nil
}

// empty reports whether every cell in the row is blank. Spreadsheets
// routinely carry trailing blank rows.
func empty(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
