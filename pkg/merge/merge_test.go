package merge

import (
	"testing"
	"time"

	"github.com/agentstation/utc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftbooks/timeclerk/pkg/dedupe"
	"github.com/shiftbooks/timeclerk/pkg/errors"
	"github.com/shiftbooks/timeclerk/pkg/timecard"
)

func stamp(y int, m time.Month, d, hh, mm int) *utc.Time {
	t := utc.New(time.Date(y, m, d, hh, mm, 0, 0, time.UTC))
	return &t
}

func shift(id string, d, hour int, wage float64) *timecard.ShiftRecord {
	return &timecard.ShiftRecord{
		EmployeeID: id,
		Date:       stamp(2024, time.January, d, 0, 0),
		ClockIn:    stamp(2024, time.January, d, hour, 0),
		WageRate:   timecard.Float(wage),
	}
}

func newTestMerger(policy dedupe.Policy) *Merger {
	return NewMerger(timecard.ThreeKey, policy,
		[]timecard.Column{timecard.ColWageRate, timecard.ColTotalPayActual}, nil)
}

func byKey(t *testing.T, ds *timecard.Dataset) map[timecard.CompositeKey]*timecard.ShiftRecord {
	t.Helper()
	out := make(map[timecard.CompositeKey]*timecard.ShiftRecord, ds.Len())
	for _, r := range ds.Records() {
		k := r.Key(timecard.ThreeKey)
		require.NotContains(t, out, k, "merged output must hold one record per key")
		out[k] = r
	}
	return out
}

func TestMergeOverridesSharedKeys(t *testing.T) {
	base := timecard.NewDataset(
		shift("E1", 5, 8, 15),
		shift("E2", 5, 9, 18),
	)
	correction := timecard.NewDataset(shift("E1", 5, 8, 20))

	merged, err := newTestMerger(dedupe.PolicyError).Merge(base, correction)
	require.NoError(t, err)
	require.Equal(t, 2, merged.Len())

	recs := byKey(t, merged)
	assert.Equal(t, 20.0, *recs[shift("E1", 5, 8, 0).Key(timecard.ThreeKey)].WageRate,
		"correction wins on shared keys")
	assert.Equal(t, 18.0, *recs[shift("E2", 5, 9, 0).Key(timecard.ThreeKey)].WageRate,
		"base-only keys survive unchanged")
}

func TestMergeAddsCorrectionOnlyKeys(t *testing.T) {
	base := timecard.NewDataset(shift("E1", 5, 8, 15))
	correction := timecard.NewDataset(shift("E3", 6, 10, 25))

	merged, err := newTestMerger(dedupe.PolicyError).Merge(base, correction)
	require.NoError(t, err)
	assert.Equal(t, 2, merged.Len())
}

func TestMergeNormalizesBeforeKeying(t *testing.T) {
	base := timecard.NewDataset(shift("E1", 5, 8, 15))

	// Same shift with a lowercase padded id and sub-minute jitter on
	// the clock-in; it must still collide with the base key.
	corr := shift("e1 ", 5, 8, 20)
	sec := corr.ClockIn.Add(42 * time.Second)
	corr.ClockIn = &sec

	merged, err := newTestMerger(dedupe.PolicyError).Merge(base, timecard.NewDataset(corr))
	require.NoError(t, err)
	require.Equal(t, 1, merged.Len())
	assert.Equal(t, "E1", merged.At(0).EmployeeID)
	assert.Equal(t, 20.0, *merged.At(0).WageRate)
}

func TestMergeResolvesCorrectionDuplicates(t *testing.T) {
	base := timecard.NewDataset(shift("E1", 5, 8, 15))
	correction := timecard.NewDataset(
		shift("E1", 5, 8, 20),
		shift("E1", 5, 8, 21),
	)

	merged, err := newTestMerger(dedupe.PolicyKeepLast).Merge(base, correction)
	require.NoError(t, err)
	require.Equal(t, 1, merged.Len())
	assert.Equal(t, 21.0, *merged.At(0).WageRate)
}

func TestMergeFailsOnCorrectionDuplicatesUnderErrorPolicy(t *testing.T) {
	base := timecard.NewDataset(shift("E1", 5, 8, 15))
	correction := timecard.NewDataset(
		shift("E2", 5, 9, 20),
		shift("E2", 5, 9, 21),
	)

	_, err := newTestMerger(dedupe.PolicyError).Merge(base, correction)
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateKeys(err))

	var dup *errors.DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "corrected", dup.Dataset)
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	base := timecard.NewDataset(shift("e1 ", 5, 8, 15))
	correction := timecard.NewDataset(shift("E1", 5, 8, 20))

	_, err := newTestMerger(dedupe.PolicyError).Merge(base, correction)
	require.NoError(t, err)
	assert.Equal(t, "e1 ", base.At(0).EmployeeID, "base left as loaded")
	assert.Equal(t, 15.0, *base.At(0).WageRate)
}

func TestMergeEmptyCorrectionIsIdentityOnKeys(t *testing.T) {
	base := timecard.NewDataset(
		shift("E1", 5, 8, 15),
		shift("E2", 5, 9, 18),
	)

	merged, err := newTestMerger(dedupe.PolicyError).Merge(base, timecard.NewDataset())
	require.NoError(t, err)
	require.Equal(t, 2, merged.Len())
	assert.Equal(t, base.Keys(timecard.ThreeKey), merged.Keys(timecard.ThreeKey))
}

func TestMergeTextNormalizationApplied(t *testing.T) {
	tables := map[timecard.Column]map[string]string{
		timecard.ColEmploymentStatus: {"ft": "full_time"},
	}
	m := NewMerger(timecard.ThreeKey, dedupe.PolicyError, nil, tables)

	rec := shift("E1", 5, 8, 15)
	rec.EmploymentStatus = timecard.String("FT")

	merged, err := m.Merge(timecard.NewDataset(rec), timecard.NewDataset())
	require.NoError(t, err)
	require.Equal(t, 1, merged.Len())
	assert.Equal(t, "full_time", *merged.At(0).EmploymentStatus)
}
