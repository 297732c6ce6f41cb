package quality

import (
	"github.com/shiftbooks/timeclerk/pkg/logging"
	"github.com/shiftbooks/timeclerk/pkg/timecard"
)

// Flagger evaluates the completeness rule list over a dataset.
type Flagger struct{}

// NewFlagger creates a flagger.
func NewFlagger() *Flagger {
	return &Flagger{}
}

// DefaultWaivers returns a copy of the dataset with missing meal
// waiver values filled with false: a blank waiver means no waiver was
// signed. This must run before Flag so absent waivers are never
// reported as missing fields.
func (f *Flagger) DefaultWaivers(ds *timecard.Dataset) *timecard.Dataset {
	out := timecard.NewDataset()
	for _, r := range ds.Records() {
		c := r.Clone()
		if c.FirstMealWaiverSigned == nil {
			c.FirstMealWaiverSigned = timecard.Bool(false)
		}
		if c.SecondMealWaiverSigned == nil {
			c.SecondMealWaiverSigned = timecard.Bool(false)
		}
		out.Append(c)
	}
	return out
}

// Flag returns a copy of the dataset with every record annotated with
// its issue codes, in rule order. The result has the same cardinality
// as the input; a complete record carries an empty issue list.
func (f *Flagger) Flag(ds *timecard.Dataset) *timecard.Dataset {
	out := timecard.NewDataset()
	flagged := 0
	for _, r := range ds.Records() {
		c := r.Clone()
		c.Issues = nil
		for _, rule := range rules {
			if rule.applies(c) {
				c.Issues = append(c.Issues, rule.code)
			}
		}
		if len(c.Issues) > 0 {
			flagged++
		}
		out.Append(c)
	}
	logging.Info().
		Int("rows", ds.Len()).
		Int("flagged", flagged).
		Msg("Evaluated completeness rules")
	return out
}

// Incomplete returns the subset of records with a non-empty issue
// list, in arrival order. This is the dataset handed to the external
// incomplete-rows report writer.
func Incomplete(ds *timecard.Dataset) *timecard.Dataset {
	out := timecard.NewDataset()
	for _, r := range ds.Records() {
		if len(r.Issues) > 0 {
			out.Append(r.Clone())
		}
	}
	return out
}
