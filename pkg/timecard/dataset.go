package timecard

// Dataset is an ordered collection of shift records. Row order is the
// arrival order of the source extract; tie-break and keep-last logic
// depend on it, so every non-reordering stage preserves it.
type Dataset struct {
	records []*ShiftRecord
}

// NewDataset creates a dataset holding the given records.
func NewDataset(records ...*ShiftRecord) *Dataset {
	d := &Dataset{records: make([]*ShiftRecord, 0, len(records))}
	d.records = append(d.records, records...)
	return d
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// At returns the record at position i in arrival order.
func (d *Dataset) At(i int) *ShiftRecord {
	return d.records[i]
}

// Records returns the records in arrival order. The slice is shared
// with the dataset; callers that mutate it should Clone first.
func (d *Dataset) Records() []*ShiftRecord {
	if d == nil {
		return nil
	}
	return d.records
}

// Append adds records to the end of the dataset.
func (d *Dataset) Append(records ...*ShiftRecord) {
	d.records = append(d.records, records...)
}

// Clone returns a deep copy of the dataset.
func (d *Dataset) Clone() *Dataset {
	if d == nil {
		return nil
	}
	out := &Dataset{records: make([]*ShiftRecord, 0, len(d.records))}
	for _, r := range d.records {
		out.records = append(out.records, r.Clone())
	}
	return out
}

// Concat returns a new dataset holding a's records followed by b's.
// Records are deep-copied so later stages never mutate the inputs.
func Concat(a, b *Dataset) *Dataset {
	out := &Dataset{records: make([]*ShiftRecord, 0, a.Len()+b.Len())}
	for _, r := range a.Records() {
		out.records = append(out.records, r.Clone())
	}
	for _, r := range b.Records() {
		out.records = append(out.records, r.Clone())
	}
	return out
}

// Keys returns the distinct composite keys present in the dataset, in
// first-arrival order.
func (d *Dataset) Keys(mode KeyMode) []CompositeKey {
	seen := make(map[CompositeKey]bool, d.Len())
	keys := make([]CompositeKey, 0, d.Len())
	for _, r := range d.Records() {
		k := r.Key(mode)
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	return keys
}
