package timecard

import (
	"testing"
	"time"

	"github.com/agentstation/utc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stamp(y int, m time.Month, d, hh, mm int) *utc.Time {
	t := utc.New(time.Date(y, m, d, hh, mm, 0, 0, time.UTC))
	return &t
}

func day(y int, m time.Month, d int) *utc.Time {
	return stamp(y, m, d, 0, 0)
}

func TestKeyDerivation(t *testing.T) {
	r := &ShiftRecord{
		EmployeeID: "E1",
		Date:       day(2024, time.January, 5),
		ClockIn:    stamp(2024, time.January, 5, 8, 0),
	}

	tests := []struct {
		name string
		mode KeyMode
		want CompositeKey
	}{
		{
			name: "two key ignores clock in",
			mode: TwoKey,
			want: CompositeKey{EmployeeID: "E1", Date: "2024-01-05"},
		},
		{
			name: "three key includes clock in",
			mode: ThreeKey,
			want: CompositeKey{EmployeeID: "E1", Date: "2024-01-05", ClockIn: "2024-01-05 08:00"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Key(tt.mode))
		})
	}
}

func TestKeyAllNilComponentsShareOneKey(t *testing.T) {
	a := &ShiftRecord{}
	b := &ShiftRecord{}
	assert.Equal(t, a.Key(ThreeKey), b.Key(ThreeKey))
}

func TestKeySubMinuteJitterAbsorbed(t *testing.T) {
	early := utc.New(time.Date(2024, time.January, 5, 8, 0, 12, 0, time.UTC))
	late := utc.New(time.Date(2024, time.January, 5, 8, 0, 47, 500000, time.UTC))

	a := &ShiftRecord{EmployeeID: "E1", Date: day(2024, time.January, 5), ClockIn: &early}
	b := &ShiftRecord{EmployeeID: "E1", Date: day(2024, time.January, 5), ClockIn: &late}
	assert.Equal(t, a.Key(ThreeKey), b.Key(ThreeKey))
}

func TestKeyOrdering(t *testing.T) {
	a := CompositeKey{EmployeeID: "E1", Date: "2024-01-05"}
	b := CompositeKey{EmployeeID: "E1", Date: "2024-01-06"}
	c := CompositeKey{EmployeeID: "E2", Date: "2024-01-01"}

	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.False(t, c.Less(a))
}

func TestKeyString(t *testing.T) {
	k := CompositeKey{EmployeeID: "E1", Date: "2024-01-05", ClockIn: "2024-01-05 08:00"}
	assert.Equal(t, "(E1, 2024-01-05, 2024-01-05 08:00)", k.String())

	two := CompositeKey{EmployeeID: "E1", Date: "2024-01-05"}
	assert.Equal(t, "(E1, 2024-01-05)", two.String())
}

func TestParseKeyMode(t *testing.T) {
	mode, err := ParseKeyMode("three_key")
	require.NoError(t, err)
	assert.Equal(t, ThreeKey, mode)

	mode, err = ParseKeyMode("two_key")
	require.NoError(t, err)
	assert.Equal(t, TwoKey, mode)

	_, err = ParseKeyMode("four_key")
	assert.Error(t, err)
}

func TestKeyModeColumns(t *testing.T) {
	assert.Equal(t, []Column{ColEmployeeID, ColDate}, TwoKey.Columns())
	assert.Equal(t, []Column{ColEmployeeID, ColDate, ColClockIn}, ThreeKey.Columns())
}
