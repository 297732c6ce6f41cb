package timecard

import (
	"fmt"
	"time"
)

// KeyMode selects the fields that form shift identity.
type KeyMode int

const (
	// TwoKey identifies a shift by (employee_id, date).
	TwoKey KeyMode = iota
	// ThreeKey identifies a shift by (employee_id, date, clock_in),
	// which keeps split shifts on the same day distinct.
	ThreeKey
)

// Key mode names as they appear in configuration.
const (
	KeyModeTwoKey   = "two_key"
	KeyModeThreeKey = "three_key"
)

// String returns the configuration name of the key mode.
func (m KeyMode) String() string {
	switch m {
	case ThreeKey:
		return KeyModeThreeKey
	default:
		return KeyModeTwoKey
	}
}

// ParseKeyMode parses a configuration key mode name.
func ParseKeyMode(s string) (KeyMode, error) {
	switch s {
	case KeyModeTwoKey:
		return TwoKey, nil
	case KeyModeThreeKey:
		return ThreeKey, nil
	}
	return TwoKey, fmt.Errorf("unknown composite_key_mode: %q", s)
}

// Columns returns the key columns for the mode, in key order.
func (m KeyMode) Columns() []Column {
	if m == ThreeKey {
		return []Column{ColEmployeeID, ColDate, ColClockIn}
	}
	return []Column{ColEmployeeID, ColDate}
}

// Layouts used to render key components. Date carries no time of day;
// clock-in is already truncated to the minute by normalization.
const (
	keyDateLayout  = "2006-01-02"
	keyStampLayout = "2006-01-02 15:04"
)

// CompositeKey identifies a unique shift within a dataset. Components
// are rendered to canonical strings so the key is comparable and has a
// natural ordering. A missing component renders as the empty string;
// records with every component missing therefore share one key.
type CompositeKey struct {
	EmployeeID string
	Date       string
	ClockIn    string
}

// String formats the key for error messages and reports.
func (k CompositeKey) String() string {
	if k.ClockIn != "" {
		return fmt.Sprintf("(%s, %s, %s)", k.EmployeeID, k.Date, k.ClockIn)
	}
	return fmt.Sprintf("(%s, %s)", k.EmployeeID, k.Date)
}

// Less orders keys by employee, then date, then clock-in.
func (k CompositeKey) Less(other CompositeKey) bool {
	if k.EmployeeID != other.EmployeeID {
		return k.EmployeeID < other.EmployeeID
	}
	if k.Date != other.Date {
		return k.Date < other.Date
	}
	return k.ClockIn < other.ClockIn
}

// Key derives the record's composite key under the given mode.
func (r *ShiftRecord) Key(mode KeyMode) CompositeKey {
	k := CompositeKey{EmployeeID: r.EmployeeID}
	if r.Date != nil {
		k.Date = r.Date.Format(keyDateLayout)
	}
	if mode == ThreeKey && r.ClockIn != nil {
		k.ClockIn = r.ClockIn.Truncate(time.Minute).Format(keyStampLayout)
	}
	return k
}
