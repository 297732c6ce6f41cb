// Package merge combines a base timecard dataset with a later
// "corrected" extract under override semantics: a composite key
// present in both sets resolves to the correction's record, keys only
// in the base survive unchanged, and correction-only keys are added.
package merge

import (
	"github.com/shiftbooks/timeclerk/pkg/dedupe"
	"github.com/shiftbooks/timeclerk/pkg/logging"
	"github.com/shiftbooks/timeclerk/pkg/normalize"
	"github.com/shiftbooks/timeclerk/pkg/timecard"
)

// Merger merges a correction dataset into a base dataset. Both inputs
// are normalized independently, the correction set is resolved under
// the configured policy, and the merge itself is a keep-last
// resolution over base-then-correction concatenation, which gives the
// correction precedence.
type Merger struct {
	keys     *normalize.KeyNormalizer
	text     *normalize.TextNormalizer
	resolver *dedupe.Resolver
	keepLast *dedupe.Resolver
}

// NewMerger creates a merger. policy and critical apply to the
// correction set's own duplicate resolution; tables configures text
// normalization for both inputs.
func NewMerger(mode timecard.KeyMode, policy dedupe.Policy,
	critical []timecard.Column, tables map[timecard.Column]map[string]string) *Merger {
	return &Merger{
		keys:     normalize.NewKeyNormalizer(mode),
		text:     normalize.NewTextNormalizer(tables),
		resolver: dedupe.NewResolver(mode, policy, critical),
		keepLast: dedupe.NewResolver(mode, dedupe.PolicyKeepLast, nil),
	}
}

// Merge returns the merged dataset. The result holds exactly one
// record per composite key; it is never smaller than the base's
// unique-key count minus the keys the correction overrides, and never
// larger than the sum of both inputs' unique-key counts.
func (m *Merger) Merge(base, correction *timecard.Dataset) (*timecard.Dataset, error) {
	cleanBase := m.keys.Dataset(m.text.Dataset(base))

	cleanCorr := m.keys.Dataset(m.text.Dataset(correction))
	cleanCorr, err := m.resolver.Resolve("corrected", cleanCorr)
	if err != nil {
		return nil, err
	}

	// Correction records physically last, so keep-last resolution
	// prefers them wherever keys collide.
	combined := timecard.Concat(cleanBase, cleanCorr)
	merged, err := m.keepLast.Resolve("merged", combined)
	if err != nil {
		return nil, err
	}

	logging.Info().
		Int("base_rows", base.Len()).
		Int("correction_rows", correction.Len()).
		Int("combined_rows", combined.Len()).
		Int("merged_rows", merged.Len()).
		Msg("Merged corrected dataset")
	return merged, nil
}
