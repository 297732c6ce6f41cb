package normalize

import (
	"strings"

	"github.com/shiftbooks/timeclerk/pkg/timecard"
)

// cleaner rewrites separators to underscores after lowercasing, so
// "Full-Time", "full time" and "full/time" all clean to "full_time".
var cleaner = strings.NewReplacer("-", "_", " ", "_", "/", "_")

// Clean applies the textual cleaning steps to a single value:
// trim, lowercase, then separator replacement.
func Clean(s string) string {
	return cleaner.Replace(strings.ToLower(strings.TrimSpace(s)))
}

// TextNormalizer standardizes free-text categorical columns. Each
// configured column is cleaned and then passed through a lookup table
// mapping cleaned spellings to final canonical values. Values missing
// from the table keep their cleaned form; missing values stay missing.
type TextNormalizer struct {
	tables map[timecard.Column]map[string]string
}

// NewTextNormalizer creates a text normalizer from per-column lookup
// tables. Table keys must be post-clean values (lowercase,
// underscores, no slashes).
func NewTextNormalizer(tables map[timecard.Column]map[string]string) *TextNormalizer {
	return &TextNormalizer{tables: tables}
}

// Record returns a copy of the record with every configured column
// standardized. Columns outside the configured set pass through
// untouched.
func (n *TextNormalizer) Record(r *timecard.ShiftRecord) *timecard.ShiftRecord {
	out := r.Clone()
	for col, table := range n.tables {
		v, ok := out.TextValue(col)
		if !ok {
			continue
		}
		cleaned := Clean(v)
		if canonical, mapped := table[cleaned]; mapped {
			cleaned = canonical
		}
		out.SetText(col, cleaned)
	}
	return out
}

// Dataset returns a new dataset with every record standardized, in the
// same arrival order.
func (n *TextNormalizer) Dataset(d *timecard.Dataset) *timecard.Dataset {
	out := timecard.NewDataset()
	for _, r := range d.Records() {
		out.Append(n.Record(r))
	}
	return out
}
