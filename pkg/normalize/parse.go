// Package normalize canonicalizes shift records ahead of duplicate
// detection and merging. KeyNormalizer makes composite-key fields
// comparable across sources; TextNormalizer standardizes free-text
// categorical columns through a cleaning pipeline plus per-column
// lookup tables.
//
// Both normalizers are pure: they never mutate their input and return
// new records. Normalizing an already-normalized record yields the
// same record.
package normalize

import (
	"strings"
	"time"

	"github.com/agentstation/utc"

	"github.com/shiftbooks/timeclerk/pkg/logging"
)

// Timestamp layouts accepted from client extracts, tried in order.
// Clients deliver a mix of ISO and US formats; sub-second precision
// shows up in exports from at least one timeclock vendor.
var stampLayouts = []string{
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"1/2/2006 15:04",
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
}

// ParseStamp parses a timestamp string from a client extract. An
// unparsable or empty value degrades to nil rather than an error;
// the degradation is logged at debug so malformed extracts can be
// traced without failing the run.
func ParseStamp(s string) *utc.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range stampLayouts {
		if t, err := utc.Parse(layout, s); err == nil {
			return &t
		}
	}
	logging.Debug().Str("value", s).Msg("Unparsable timestamp degraded to null")
	return nil
}

// ParseDay parses a calendar-day string, discarding any time of day.
// Unparsable input degrades to nil, same as ParseStamp.
func ParseDay(s string) *utc.Time {
	t := ParseStamp(s)
	if t == nil {
		return nil
	}
	return dayOf(t)
}

// dayOf truncates a timestamp to midnight UTC.
func dayOf(t *utc.Time) *utc.Time {
	y, m, d := t.Date()
	day := utc.New(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	return &day
}

// floorMinute truncates a timestamp to the whole minute, absorbing
// sub-minute jitter between sources.
func floorMinute(t *utc.Time) *utc.Time {
	floored := utc.New(t.Truncate(time.Minute))
	return &floored
}
