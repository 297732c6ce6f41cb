// Package dataio loads and saves timecard datasets and audit reports
// under the per-client folder layout. CSV is the primary interchange
// format; XLSX is accepted on input for clients that deliver
// spreadsheets. All value parsing degrades malformed cells to missing
// values rather than failing the load.
package dataio

import (
	"strconv"
	"strings"

	"github.com/agentstation/utc"

	"github.com/shiftbooks/timeclerk/pkg/logging"
	"github.com/shiftbooks/timeclerk/pkg/normalize"
	"github.com/shiftbooks/timeclerk/pkg/timecard"
)

// Output layouts. Dates carry no time of day; stamps keep seconds so
// saved datasets round-trip what the clock exported.
const (
	dateLayout  = "2006-01-02"
	stampLayout = "2006-01-02 15:04:05"
)

// issueSeparator joins issue codes in the data_issues output column.
const issueSeparator = "; "

// header maps column names from a file's first row to column indexes.
type header map[timecard.Column]int

// parseHeader builds the column index for a header row. Unknown
// columns are ignored with a debug log so extra vendor columns don't
// fail the load.
func parseHeader(row []string) header {
	h := make(header, len(row))
	for i, name := range row {
		col, ok := timecard.ParseColumn(strings.TrimSpace(strings.ToLower(name)))
		if !ok {
			logging.Debug().Str("column", name).Msg("Ignoring unknown column")
			continue
		}
		h[col] = i
	}
	return h
}

// cell returns the raw trimmed value of a column in a row, or "" when
// the column is absent or the row is short.
func (h header) cell(row []string, col timecard.Column) string {
	i, ok := h[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// record converts one data row into a ShiftRecord. Temporal cells go
// through the normalize parse helpers, which degrade malformed values
// to missing; numeric and boolean cells degrade the same way here.
func (h header) record(row []string) *timecard.ShiftRecord {
	r := &timecard.ShiftRecord{
		EmployeeID:             h.cell(row, timecard.ColEmployeeID),
		Date:                   normalize.ParseDay(h.cell(row, timecard.ColDate)),
		ClockIn:                normalize.ParseStamp(h.cell(row, timecard.ColClockIn)),
		ClockOut:               normalize.ParseStamp(h.cell(row, timecard.ColClockOut)),
		LunchStart:             normalize.ParseStamp(h.cell(row, timecard.ColLunchStart)),
		LunchEnd:               normalize.ParseStamp(h.cell(row, timecard.ColLunchEnd)),
		SecondLunchStart:       normalize.ParseStamp(h.cell(row, timecard.ColSecondLunchStart)),
		SecondLunchEnd:         normalize.ParseStamp(h.cell(row, timecard.ColSecondLunchEnd)),
		WageRate:               parseFloat(h.cell(row, timecard.ColWageRate)),
		OvertimeRate:           parseFloat(h.cell(row, timecard.ColOvertimeRate)),
		DoubletimeRate:         parseFloat(h.cell(row, timecard.ColDoubletimeRate)),
		PayDate:                normalize.ParseDay(h.cell(row, timecard.ColPayDate)),
		TotalPayActual:         parseFloat(h.cell(row, timecard.ColTotalPayActual)),
		FirstMealWaiverSigned:  parseBool(h.cell(row, timecard.ColFirstMealWaiverSigned)),
		SecondMealWaiverSigned: parseBool(h.cell(row, timecard.ColSecondMealWaiverSigned)),
		EmploymentStatus:       parseText(h.cell(row, timecard.ColEmploymentStatus)),
		ExemptStatus:           parseText(h.cell(row, timecard.ColExemptStatus)),
	}
	if issues := h.cell(row, timecard.ColDataIssues); issues != "" {
		r.Issues = strings.Split(issues, issueSeparator)
	}
	return r
}

func parseFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		logging.Debug().Str("value", s).Msg("Unparsable number degraded to null")
		return nil
	}
	return &f
}

func parseBool(s string) *bool {
	switch strings.ToLower(s) {
	case "":
		return nil
	case "true", "t", "1", "yes", "y":
		return timecard.Bool(true)
	case "false", "f", "0", "no", "n":
		return timecard.Bool(false)
	}
	logging.Debug().Str("value", s).Msg("Unparsable boolean degraded to null")
	return nil
}

func parseText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// row renders a record into cells following Columns order, with the
// issue list appended when withIssues is set.
func row(r *timecard.ShiftRecord, withIssues bool) []string {
	cells := []string{
		r.EmployeeID,
		formatDay(r.Date),
		formatStamp(r.ClockIn),
		formatStamp(r.ClockOut),
		formatStamp(r.LunchStart),
		formatStamp(r.LunchEnd),
		formatStamp(r.SecondLunchStart),
		formatStamp(r.SecondLunchEnd),
		formatFloat(r.WageRate),
		formatFloat(r.OvertimeRate),
		formatFloat(r.DoubletimeRate),
		formatDay(r.PayDate),
		formatBool(r.FirstMealWaiverSigned),
		formatBool(r.SecondMealWaiverSigned),
		formatText(r.EmploymentStatus),
		formatText(r.ExemptStatus),
		formatFloat(r.TotalPayActual),
	}
	if withIssues {
		cells = append(cells, strings.Join(r.Issues, issueSeparator))
	}
	return cells
}

// headerRow returns the canonical output header.
func headerRow(withIssues bool) []string {
	cols := timecard.Columns()
	names := make([]string, 0, len(cols)+1)
	for _, c := range cols {
		names = append(names, c.String())
	}
	if withIssues {
		names = append(names, timecard.ColDataIssues.String())
	}
	return names
}

func formatDay(t *utc.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func formatStamp(t *utc.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(stampLayout)
}

func formatFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'g', -1, 64)
}

func formatBool(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}

func formatText(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
