package timecard

// Column names a ShiftRecord field. Configuration (critical fields,
// text normalization tables) and file headers refer to records by
// column name rather than by Go field, so the set of columns a client
// cares about stays data, not code.
type Column string

// String returns the string representation of a column name.
func (c Column) String() string {
	return string(c)
}

// Columns of a shift record, in canonical file order.
const (
	ColEmployeeID             Column = "employee_id"
	ColDate                   Column = "date"
	ColClockIn                Column = "clock_in"
	ColClockOut               Column = "clock_out"
	ColLunchStart             Column = "lunch_start"
	ColLunchEnd               Column = "lunch_end"
	ColSecondLunchStart       Column = "second_lunch_start"
	ColSecondLunchEnd         Column = "second_lunch_end"
	ColWageRate               Column = "wage_rate"
	ColOvertimeRate           Column = "overtime_rate"
	ColDoubletimeRate         Column = "doubletime_rate"
	ColPayDate                Column = "pay_date"
	ColFirstMealWaiverSigned  Column = "first_meal_waiver_signed"
	ColSecondMealWaiverSigned Column = "second_meal_waiver_signed"
	ColEmploymentStatus       Column = "employment_status"
	ColExemptStatus           Column = "exempt_status"
	ColTotalPayActual         Column = "total_pay_actual"
	ColDataIssues             Column = "data_issues"
)

// Columns returns every data column in canonical order. ColDataIssues
// is excluded; it only exists on flagged output.
func Columns() []Column {
	return []Column{
		ColEmployeeID, ColDate, ColClockIn, ColClockOut,
		ColLunchStart, ColLunchEnd, ColSecondLunchStart, ColSecondLunchEnd,
		ColWageRate, ColOvertimeRate, ColDoubletimeRate,
		ColPayDate, ColFirstMealWaiverSigned, ColSecondMealWaiverSigned,
		ColEmploymentStatus, ColExemptStatus, ColTotalPayActual,
	}
}

// ParseColumn maps a column name from configuration or a file header
// to its Column, reporting whether the name is known.
func ParseColumn(name string) (Column, bool) {
	c := Column(name)
	if c == ColDataIssues {
		return c, true
	}
	for _, known := range Columns() {
		if c == known {
			return c, true
		}
	}
	return "", false
}

// Present reports whether the record carries a value for the column.
// Unknown columns report false.
func (r *ShiftRecord) Present(c Column) bool {
	switch c {
	case ColEmployeeID:
		return r.EmployeeID != ""
	case ColDate:
		return r.Date != nil
	case ColClockIn:
		return r.ClockIn != nil
	case ColClockOut:
		return r.ClockOut != nil
	case ColLunchStart:
		return r.LunchStart != nil
	case ColLunchEnd:
		return r.LunchEnd != nil
	case ColSecondLunchStart:
		return r.SecondLunchStart != nil
	case ColSecondLunchEnd:
		return r.SecondLunchEnd != nil
	case ColWageRate:
		return r.WageRate != nil
	case ColOvertimeRate:
		return r.OvertimeRate != nil
	case ColDoubletimeRate:
		return r.DoubletimeRate != nil
	case ColPayDate:
		return r.PayDate != nil
	case ColFirstMealWaiverSigned:
		return r.FirstMealWaiverSigned != nil
	case ColSecondMealWaiverSigned:
		return r.SecondMealWaiverSigned != nil
	case ColEmploymentStatus:
		return r.EmploymentStatus != nil
	case ColExemptStatus:
		return r.ExemptStatus != nil
	case ColTotalPayActual:
		return r.TotalPayActual != nil
	case ColDataIssues:
		return len(r.Issues) > 0
	}
	return false
}

// TextValue returns the value of a free-text column and whether the
// column both exists and carries a value.
func (r *ShiftRecord) TextValue(c Column) (string, bool) {
	switch c {
	case ColEmployeeID:
		return r.EmployeeID, r.EmployeeID != ""
	case ColEmploymentStatus:
		if r.EmploymentStatus == nil {
			return "", false
		}
		return *r.EmploymentStatus, true
	case ColExemptStatus:
		if r.ExemptStatus == nil {
			return "", false
		}
		return *r.ExemptStatus, true
	}
	return "", false
}

// SetText sets the value of a free-text column. It reports whether the
// column is a known text column; other columns are left untouched.
func (r *ShiftRecord) SetText(c Column, v string) bool {
	switch c {
	case ColEmployeeID:
		r.EmployeeID = v
		return true
	case ColEmploymentStatus:
		r.EmploymentStatus = &v
		return true
	case ColExemptStatus:
		r.ExemptStatus = &v
		return true
	}
	return false
}
