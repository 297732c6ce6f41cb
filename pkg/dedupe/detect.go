package dedupe

import (
	"sort"

	"github.com/shiftbooks/timeclerk/pkg/timecard"
)

// Group is a composite key plus the records sharing it, in arrival
// order. Positions holds each record's row index in the source
// dataset.
type Group struct {
	Key       timecard.CompositeKey
	Records   []*timecard.ShiftRecord
	Positions []int
}

// Count returns the number of records sharing the key.
func (g Group) Count() int {
	return len(g.Records)
}

// Detector reports duplicate-key groups for auditing. It never alters
// the dataset it inspects.
type Detector struct {
	mode timecard.KeyMode
}

// NewDetector creates a detector for the given key mode.
func NewDetector(mode timecard.KeyMode) *Detector {
	return &Detector{mode: mode}
}

// Groups returns every duplicate group (key shared by more than one
// record), ordered by descending group size with ties broken by the
// key's natural ordering. Records with every key component missing
// share a single key and are grouped together, not excluded.
func (d *Detector) Groups(ds *timecard.Dataset) []Group {
	groups := groupByKey(ds, d.mode)

	dups := make([]Group, 0)
	for _, g := range groups {
		if g.Count() > 1 {
			dups = append(dups, g)
		}
	}

	sort.SliceStable(dups, func(i, j int) bool {
		if dups[i].Count() != dups[j].Count() {
			return dups[i].Count() > dups[j].Count()
		}
		return dups[i].Key.Less(dups[j].Key)
	})
	return dups
}

// groupByKey buckets a dataset's records by composite key. Groups come
// back in first-arrival order of their keys, each group's records in
// arrival order, so every record is counted exactly once.
func groupByKey(ds *timecard.Dataset, mode timecard.KeyMode) []Group {
	index := make(map[timecard.CompositeKey]int, ds.Len())
	groups := make([]Group, 0, ds.Len())

	for pos, r := range ds.Records() {
		k := r.Key(mode)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Key: k})
		}
		groups[i].Records = append(groups[i].Records, r)
		groups[i].Positions = append(groups[i].Positions, pos)
	}
	return groups
}
