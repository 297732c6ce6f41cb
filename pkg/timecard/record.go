// Package timecard defines the core data model for shift records:
// the ShiftRecord row type, the ordered Dataset collection, the column
// registry used by configuration-driven components, and the composite
// key that identifies a unique shift.
//
// The package holds no I/O and no global state. Loaders construct
// records, the normalization/dedup/merge/quality packages transform
// them, and writers persist the results.
package timecard

import (
	"github.com/agentstation/utc"
)

// ShiftRecord is one row of timecard data for a single shift.
// Optional fields are pointers; nil means the value is missing.
// A missing employee ID is represented by the empty string.
type ShiftRecord struct {
	// Identity
	EmployeeID string    `json:"employee_id" yaml:"employee_id"`
	Date       *utc.Time `json:"date,omitempty" yaml:"date,omitempty"`

	// Clock times
	ClockIn  *utc.Time `json:"clock_in,omitempty" yaml:"clock_in,omitempty"`
	ClockOut *utc.Time `json:"clock_out,omitempty" yaml:"clock_out,omitempty"`

	// Meal breaks
	LunchStart       *utc.Time `json:"lunch_start,omitempty" yaml:"lunch_start,omitempty"`
	LunchEnd         *utc.Time `json:"lunch_end,omitempty" yaml:"lunch_end,omitempty"`
	SecondLunchStart *utc.Time `json:"second_lunch_start,omitempty" yaml:"second_lunch_start,omitempty"`
	SecondLunchEnd   *utc.Time `json:"second_lunch_end,omitempty" yaml:"second_lunch_end,omitempty"`

	// Pay
	WageRate       *float64  `json:"wage_rate,omitempty" yaml:"wage_rate,omitempty"`
	OvertimeRate   *float64  `json:"overtime_rate,omitempty" yaml:"overtime_rate,omitempty"`
	DoubletimeRate *float64  `json:"doubletime_rate,omitempty" yaml:"doubletime_rate,omitempty"`
	PayDate        *utc.Time `json:"pay_date,omitempty" yaml:"pay_date,omitempty"`
	TotalPayActual *float64  `json:"total_pay_actual,omitempty" yaml:"total_pay_actual,omitempty"`

	// Meal waivers. nil means no value was supplied; downstream stages
	// default that to "not signed" before any rule runs.
	FirstMealWaiverSigned  *bool `json:"first_meal_waiver_signed,omitempty" yaml:"first_meal_waiver_signed,omitempty"`
	SecondMealWaiverSigned *bool `json:"second_meal_waiver_signed,omitempty" yaml:"second_meal_waiver_signed,omitempty"`

	// Employment
	EmploymentStatus *string `json:"employment_status,omitempty" yaml:"employment_status,omitempty"`
	ExemptStatus     *string `json:"exempt_status,omitempty" yaml:"exempt_status,omitempty"`

	// Issues holds data-quality issue codes attached by the flagger.
	// Empty means the record passed every completeness rule.
	Issues []string `json:"data_issues,omitempty" yaml:"data_issues,omitempty"`
}

// Clone returns a deep copy of the record. Pointer fields are copied
// by value so mutating the clone never touches the original.
func (r *ShiftRecord) Clone() *ShiftRecord {
	if r == nil {
		return nil
	}
	out := *r
	out.Date = cloneTime(r.Date)
	out.ClockIn = cloneTime(r.ClockIn)
	out.ClockOut = cloneTime(r.ClockOut)
	out.LunchStart = cloneTime(r.LunchStart)
	out.LunchEnd = cloneTime(r.LunchEnd)
	out.SecondLunchStart = cloneTime(r.SecondLunchStart)
	out.SecondLunchEnd = cloneTime(r.SecondLunchEnd)
	out.PayDate = cloneTime(r.PayDate)
	out.WageRate = cloneFloat(r.WageRate)
	out.OvertimeRate = cloneFloat(r.OvertimeRate)
	out.DoubletimeRate = cloneFloat(r.DoubletimeRate)
	out.TotalPayActual = cloneFloat(r.TotalPayActual)
	out.FirstMealWaiverSigned = cloneBool(r.FirstMealWaiverSigned)
	out.SecondMealWaiverSigned = cloneBool(r.SecondMealWaiverSigned)
	out.EmploymentStatus = cloneString(r.EmploymentStatus)
	out.ExemptStatus = cloneString(r.ExemptStatus)
	if r.Issues != nil {
		out.Issues = make([]string, len(r.Issues))
		copy(out.Issues, r.Issues)
	}
	return &out
}

func cloneTime(t *utc.Time) *utc.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// Ptr helpers for building records in loaders and tests.

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// String returns a pointer to s.
func String(s string) *string { return &s }

// Time returns a pointer to t.
func Time(t utc.Time) *utc.Time { return &t }
