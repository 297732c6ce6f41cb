// Package quality annotates shift records with completeness and
// consistency issues ahead of payroll computation. It never drops a
// row; incomplete records are surfaced through a derived view for the
// external audit report.
package quality

import "github.com/shiftbooks/timeclerk/pkg/timecard"

// Issue codes attached to records, in rule order. The codes are part
// of the report format consumed by client reviewers.
const (
	IssueMissingClockIn          = "missing clock_in"
	IssueMissingClockOut         = "missing clock_out"
	IssueMissingLunchEnd         = "missing lunch_end (partial lunch)"
	IssueMissingLunchStart       = "missing lunch_start (partial lunch)"
	IssueMissingSecondLunchEnd   = "missing second_lunch_end (partial second lunch)"
	IssueMissingSecondLunchStart = "missing second_lunch_start (partial second lunch)"
	IssueMissingWageRate         = "missing wage_rate"
	IssueMissingTotalPayActual   = "missing total_pay_actual"
	IssueMissingPayDate          = "missing pay_date"
	IssueMissingEmploymentStatus = "missing employment_status"
	IssueMissingExemptStatus     = "missing exempt_status"
	IssueMissingEmployeeID       = "missing employee_id"
	IssueMissingWorkDate         = "missing work date"
)

// rule pairs an issue code with the predicate that triggers it.
type rule struct {
	code    string
	applies func(*timecard.ShiftRecord) bool
}

// rules is the fixed, ordered rule list. Evaluation order determines
// the order of issue codes on each record, so the list must not be
// reordered without coordinating with report consumers.
var rules = []rule{
	{IssueMissingClockIn, missing(timecard.ColClockIn)},
	{IssueMissingClockOut, missing(timecard.ColClockOut)},
	{IssueMissingLunchEnd, partial(timecard.ColLunchStart, timecard.ColLunchEnd)},
	{IssueMissingLunchStart, partial(timecard.ColLunchEnd, timecard.ColLunchStart)},
	{IssueMissingSecondLunchEnd, partial(timecard.ColSecondLunchStart, timecard.ColSecondLunchEnd)},
	{IssueMissingSecondLunchStart, partial(timecard.ColSecondLunchEnd, timecard.ColSecondLunchStart)},
	{IssueMissingWageRate, missing(timecard.ColWageRate)},
	{IssueMissingTotalPayActual, missing(timecard.ColTotalPayActual)},
	{IssueMissingPayDate, missing(timecard.ColPayDate)},
	{IssueMissingEmploymentStatus, missing(timecard.ColEmploymentStatus)},
	{IssueMissingExemptStatus, missing(timecard.ColExemptStatus)},
	{IssueMissingEmployeeID, missing(timecard.ColEmployeeID)},
	{IssueMissingWorkDate, missing(timecard.ColDate)},
}

// missing builds a predicate that triggers when the column carries no
// value.
func missing(col timecard.Column) func(*timecard.ShiftRecord) bool {
	return func(r *timecard.ShiftRecord) bool {
		return !r.Present(col)
	}
}

// partial builds a predicate for a half-entered pair: present triggers
// the rule when it has a value while absent does not.
func partial(present, absent timecard.Column) func(*timecard.ShiftRecord) bool {
	return func(r *timecard.ShiftRecord) bool {
		return r.Present(present) && !r.Present(absent)
	}
}
