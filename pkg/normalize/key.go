package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/shiftbooks/timeclerk/pkg/timecard"
)

// upper is the case mapper for employee IDs. Und keeps the mapping
// locale-independent so "e1" and "E1" collapse the same way on every
// machine.
var upper = cases.Upper(language.Und)

// KeyNormalizer canonicalizes the fields that form shift identity so
// records that nominally differ only by formatting or precision derive
// the same composite key.
type KeyNormalizer struct {
	mode timecard.KeyMode
}

// NewKeyNormalizer creates a key normalizer for the given key mode.
func NewKeyNormalizer(mode timecard.KeyMode) *KeyNormalizer {
	return &KeyNormalizer{mode: mode}
}

// Record returns a normalized copy of the record:
//   - employee_id is trimmed and uppercased
//   - date keeps only the calendar day
//   - clock_in is floored to the minute in three-key mode
//
// The input record is never mutated.
func (n *KeyNormalizer) Record(r *timecard.ShiftRecord) *timecard.ShiftRecord {
	out := r.Clone()
	out.EmployeeID = upper.String(strings.TrimSpace(out.EmployeeID))
	if out.Date != nil {
		out.Date = dayOf(out.Date)
	}
	if n.mode == timecard.ThreeKey && out.ClockIn != nil {
		out.ClockIn = floorMinute(out.ClockIn)
	}
	return out
}

// Dataset returns a new dataset with every record normalized, in the
// same arrival order.
func (n *KeyNormalizer) Dataset(d *timecard.Dataset) *timecard.Dataset {
	out := timecard.NewDataset()
	for _, r := range d.Records() {
		out.Append(n.Record(r))
	}
	return out
}
