// Package pipeline wires the core stages together: text and key
// normalization, duplicate audit, duplicate resolution, correction
// merging, and quality flagging. Each stage consumes a complete
// in-memory dataset and produces a new one; no stage mutates its
// input.
package pipeline

import (
	"github.com/shiftbooks/timeclerk/pkg/dedupe"
	"github.com/shiftbooks/timeclerk/pkg/logging"
	"github.com/shiftbooks/timeclerk/pkg/merge"
	"github.com/shiftbooks/timeclerk/pkg/normalize"
	"github.com/shiftbooks/timeclerk/pkg/quality"
	"github.com/shiftbooks/timeclerk/pkg/timecard"
)

// Options carries the configuration bundle recognized by the core.
type Options struct {
	// KeyMode selects two-key or three-key shift identity.
	KeyMode timecard.KeyMode
	// Policy resolves duplicate-key groups.
	Policy dedupe.Policy
	// Critical is the ordered set of columns counted by the
	// completeness score.
	Critical []timecard.Column
	// TextTables maps categorical columns to their cleaned-value to
	// canonical-value lookup tables.
	TextTables map[timecard.Column]map[string]string
}

// Pipeline runs the reconciliation stages over in-memory datasets.
// It holds no state across invocations.
type Pipeline struct {
	opts     Options
	text     *normalize.TextNormalizer
	keys     *normalize.KeyNormalizer
	detector *dedupe.Detector
	resolver *dedupe.Resolver
	merger   *merge.Merger
	flagger  *quality.Flagger
}

// New creates a pipeline from options.
func New(opts Options) *Pipeline {
	return &Pipeline{
		opts:     opts,
		text:     normalize.NewTextNormalizer(opts.TextTables),
		keys:     normalize.NewKeyNormalizer(opts.KeyMode),
		detector: dedupe.NewDetector(opts.KeyMode),
		resolver: dedupe.NewResolver(opts.KeyMode, opts.Policy, opts.Critical),
		merger:   merge.NewMerger(opts.KeyMode, opts.Policy, opts.Critical, opts.TextTables),
		flagger:  quality.NewFlagger(),
	}
}

// Clean normalizes a raw dataset, audits duplicate keys and resolves
// them under the configured policy. The returned groups are the
// duplicate audit as observed after normalization but before
// resolution; name identifies the dataset in errors and logs.
func (p *Pipeline) Clean(name string, ds *timecard.Dataset) (*timecard.Dataset, []dedupe.Group, error) {
	cleaned := p.keys.Dataset(p.text.Dataset(ds))

	audit := p.detector.Groups(cleaned)
	if len(audit) > 0 {
		logging.Warn().
			Str("dataset", name).
			Int("groups", len(audit)).
			Msg("Duplicate keys found")
	} else {
		logging.Info().Str("dataset", name).Msg("No duplicate keys found")
	}

	resolved, err := p.resolver.Resolve(name, cleaned)
	if err != nil {
		return nil, audit, err
	}
	return resolved, audit, nil
}

// MergeCorrected merges a correction extract into an already cleaned
// base dataset with override semantics.
func (p *Pipeline) MergeCorrected(base, correction *timecard.Dataset) (*timecard.Dataset, error) {
	return p.merger.Merge(base, correction)
}

// Check defaults missing waivers and evaluates the completeness rules.
// It returns the full flagged dataset (same cardinality as the input)
// and the derived view of records with a non-empty issue list.
func (p *Pipeline) Check(ds *timecard.Dataset) (flagged, incomplete *timecard.Dataset) {
	flagged = p.flagger.Flag(p.flagger.DefaultWaivers(ds))
	incomplete = quality.Incomplete(flagged)
	return flagged, incomplete
}
