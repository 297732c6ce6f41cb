package dedupe

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shiftbooks/timeclerk/pkg/errors"
	"github.com/shiftbooks/timeclerk/pkg/logging"
	"github.com/shiftbooks/timeclerk/pkg/timecard"
)

// previewLimit bounds the record preview carried by a
// DuplicateKeyError.
const previewLimit = 15

// Resolver collapses duplicate-key groups to one surviving record per
// composite key.
type Resolver struct {
	mode     timecard.KeyMode
	policy   Policy
	critical []timecard.Column
}

// NewResolver creates a resolver. critical is the ordered set of
// columns counted by the completeness score; it only matters under
// PolicyKeepBestCompleteness.
func NewResolver(mode timecard.KeyMode, policy Policy, critical []timecard.Column) *Resolver {
	return &Resolver{mode: mode, policy: policy, critical: critical}
}

// Resolve returns a dataset with exactly one record per composite key.
// Non-duplicated records pass through unchanged; the surviving records
// keep the first-arrival order of their keys, which is stable across
// repeated invocations on the same input. name identifies the dataset
// in errors and logs ("raw", "corrected", ...).
func (r *Resolver) Resolve(name string, ds *timecard.Dataset) (*timecard.Dataset, error) {
	// An invalid policy is a configuration error before any record is
	// touched.
	if !r.policy.valid() {
		return nil, errors.NewConfigError("dedupe",
			fmt.Sprintf("unknown dedup policy: %s", r.policy), nil)
	}

	groups := groupByKey(ds, r.mode)

	if r.policy == PolicyError {
		if err := r.checkNoDuplicates(name, groups); err != nil {
			return nil, err
		}
	}

	out := timecard.NewDataset()
	dropped := 0
	for _, g := range groups {
		winner := g.Records[r.winner(g)]
		out.Append(winner.Clone())
		dropped += g.Count() - 1
	}

	if dropped > 0 {
		logging.Info().
			Str("dataset", name).
			Str("policy", r.policy.String()).
			Int("rows_in", ds.Len()).
			Int("rows_out", out.Len()).
			Int("dropped", dropped).
			Msg("Resolved duplicate keys")
	}
	return out, nil
}

// winner returns the index within the group of the surviving record.
func (r *Resolver) winner(g Group) int {
	switch r.policy {
	case PolicyKeepBestCompleteness:
		// Highest score wins; scanning in arrival order with >= makes
		// the later arrival win ties. Equivalent to sorting by
		// (score asc, position asc) and taking the last entry.
		best, bestScore := 0, -1
		for i, rec := range g.Records {
			if score := r.score(rec); score >= bestScore {
				best, bestScore = i, score
			}
		}
		return best
	default:
		// PolicyKeepLast; PolicyError only reaches here for singleton
		// groups.
		return g.Count() - 1
	}
}

// score counts non-null values among the critical columns.
func (r *Resolver) score(rec *timecard.ShiftRecord) int {
	score := 0
	for _, col := range r.critical {
		if rec.Present(col) {
			score++
		}
	}
	return score
}

// checkNoDuplicates builds a DuplicateKeyError when any group has more
// than one member. Keys are reported largest group first; the record
// preview is bounded.
func (r *Resolver) checkNoDuplicates(name string, groups []Group) error {
	var dups []Group
	for _, g := range groups {
		if g.Count() > 1 {
			dups = append(dups, g)
		}
	}
	if len(dups) == 0 {
		return nil
	}

	sort.SliceStable(dups, func(i, j int) bool {
		if dups[i].Count() != dups[j].Count() {
			return dups[i].Count() > dups[j].Count()
		}
		return dups[i].Key.Less(dups[j].Key)
	})

	keys := make([]string, 0, len(dups))
	var preview []string
	for _, g := range dups {
		keys = append(keys, g.Key.String())
		for i, rec := range g.Records {
			if len(preview) >= previewLimit {
				break
			}
			preview = append(preview, fmt.Sprintf("  %s row %d: %s",
				g.Key, g.Positions[i], formatRecord(rec)))
		}
	}
	return errors.NewDuplicateKeyError(name, keys, preview)
}

// formatRecord renders a compact one-line view of a record for error
// previews.
func formatRecord(rec *timecard.ShiftRecord) string {
	parts := []string{}
	if rec.ClockOut != nil {
		parts = append(parts, "clock_out="+rec.ClockOut.Format("15:04"))
	}
	if rec.WageRate != nil {
		parts = append(parts, fmt.Sprintf("wage_rate=%g", *rec.WageRate))
	}
	if rec.TotalPayActual != nil {
		parts = append(parts, fmt.Sprintf("total_pay_actual=%g", *rec.TotalPayActual))
	}
	if rec.EmploymentStatus != nil {
		parts = append(parts, "employment_status="+*rec.EmploymentStatus)
	}
	if len(parts) == 0 {
		return "(no non-key fields)"
	}
	return strings.Join(parts, " ")
}
