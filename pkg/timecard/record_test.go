package timecard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneIsDeep(t *testing.T) {
	r := &ShiftRecord{
		EmployeeID:       "E1",
		Date:             day(2024, time.January, 5),
		WageRate:         Float(15),
		EmploymentStatus: String("full_time"),
		Issues:           []string{"missing clock_out"},
	}

	c := r.Clone()
	require.Equal(t, r, c)

	*c.WageRate = 20
	*c.EmploymentStatus = "part_time"
	c.Issues[0] = "changed"

	assert.Equal(t, 15.0, *r.WageRate)
	assert.Equal(t, "full_time", *r.EmploymentStatus)
	assert.Equal(t, "missing clock_out", r.Issues[0])
}

func TestCloneNil(t *testing.T) {
	var r *ShiftRecord
	assert.Nil(t, r.Clone())
}

func TestPresent(t *testing.T) {
	r := &ShiftRecord{
		EmployeeID: "E1",
		ClockIn:    stamp(2024, time.January, 5, 8, 0),
		WageRate:   Float(15),
	}

	assert.True(t, r.Present(ColEmployeeID))
	assert.True(t, r.Present(ColClockIn))
	assert.True(t, r.Present(ColWageRate))
	assert.False(t, r.Present(ColClockOut))
	assert.False(t, r.Present(ColDate))
	assert.False(t, r.Present(ColFirstMealWaiverSigned))
	assert.False(t, r.Present(Column("bogus")))
}

func TestTextValueAndSetText(t *testing.T) {
	r := &ShiftRecord{EmployeeID: "E1", EmploymentStatus: String("fulltime")}

	v, ok := r.TextValue(ColEmploymentStatus)
	require.True(t, ok)
	assert.Equal(t, "fulltime", v)

	_, ok = r.TextValue(ColExemptStatus)
	assert.False(t, ok)

	_, ok = r.TextValue(ColWageRate)
	assert.False(t, ok, "numeric columns are not text columns")

	require.True(t, r.SetText(ColExemptStatus, "non_exempt"))
	assert.Equal(t, "non_exempt", *r.ExemptStatus)
	assert.False(t, r.SetText(ColWageRate, "nope"))
}

func TestParseColumn(t *testing.T) {
	col, ok := ParseColumn("wage_rate")
	require.True(t, ok)
	assert.Equal(t, ColWageRate, col)

	col, ok = ParseColumn("data_issues")
	require.True(t, ok)
	assert.Equal(t, ColDataIssues, col)

	_, ok = ParseColumn("favourite_color")
	assert.False(t, ok)
}

func TestDatasetKeysFirstArrivalOrder(t *testing.T) {
	ds := NewDataset(
		&ShiftRecord{EmployeeID: "B", Date: day(2024, time.January, 5)},
		&ShiftRecord{EmployeeID: "A", Date: day(2024, time.January, 5)},
		&ShiftRecord{EmployeeID: "B", Date: day(2024, time.January, 5)},
	)

	keys := ds.Keys(TwoKey)
	require.Len(t, keys, 2)
	assert.Equal(t, "B", keys[0].EmployeeID)
	assert.Equal(t, "A", keys[1].EmployeeID)
}

func TestConcatCopiesRecords(t *testing.T) {
	a := NewDataset(&ShiftRecord{EmployeeID: "A", WageRate: Float(10)})
	b := NewDataset(&ShiftRecord{EmployeeID: "B"})

	combined := Concat(a, b)
	require.Equal(t, 2, combined.Len())

	*combined.At(0).WageRate = 99
	assert.Equal(t, 10.0, *a.At(0).WageRate)
}
