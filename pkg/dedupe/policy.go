// Package dedupe detects and resolves duplicate composite keys within
// a dataset. The detector produces an audit view of every duplicated
// key; the resolver collapses each duplicate group to exactly one
// surviving record under a selected policy.
package dedupe

import (
	"fmt"

	"github.com/shiftbooks/timeclerk/pkg/errors"
)

// Policy selects how duplicate-key groups are resolved.
type Policy int

const (
	// PolicyError fails the resolution if any duplicate group exists,
	// reporting the offending keys. Safest during ingestion-time
	// validation.
	PolicyError Policy = iota
	// PolicyKeepLast keeps the record that appears last in arrival
	// order for each duplicate group.
	PolicyKeepLast
	// PolicyKeepBestCompleteness keeps the record with the most
	// non-null critical fields; ties go to the later arrival.
	PolicyKeepBestCompleteness
)

// Policy names as they appear in configuration.
const (
	PolicyNameError                = "error"
	PolicyNameKeepLast             = "keep_last"
	PolicyNameKeepBestCompleteness = "keep_best_completeness"
)

// String returns the configuration name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyError:
		return PolicyNameError
	case PolicyKeepLast:
		return PolicyNameKeepLast
	case PolicyKeepBestCompleteness:
		return PolicyNameKeepBestCompleteness
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParsePolicy parses a configuration policy name. An unrecognized name
// is a configuration error, fatal before any data is touched.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case PolicyNameError:
		return PolicyError, nil
	case PolicyNameKeepLast:
		return PolicyKeepLast, nil
	case PolicyNameKeepBestCompleteness:
		return PolicyKeepBestCompleteness, nil
	}
	return PolicyError, errors.NewConfigError("dedupe",
		fmt.Sprintf("unknown dedup_policy: %q", s), nil)
}

// valid reports whether the policy is one of the defined variants.
func (p Policy) valid() bool {
	switch p {
	case PolicyError, PolicyKeepLast, PolicyKeepBestCompleteness:
		return true
	}
	return false
}
