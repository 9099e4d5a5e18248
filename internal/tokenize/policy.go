package tokenize

import (
	"fmt"
	"strings"
)

// DefaultMaxWordLength is the longest word, in bytes, stored without truncation.
const DefaultMaxWordLength = 100

// OverlongPolicy decides what happens to a word longer than the maximum length.
type OverlongPolicy int

const (
	// PolicyTruncate keeps the first max bytes of the word and uses them.
	PolicyTruncate OverlongPolicy = iota
	// PolicySkip ignores the word entirely.
	PolicySkip
	// PolicyError fails a dictionary load and reports a text word as misspelled.
	PolicyError
)

// ParsePolicy maps a configuration value onto an OverlongPolicy.
func ParsePolicy(value string) (OverlongPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "truncate", "":
		return PolicyTruncate, nil
	case "skip":
		return PolicySkip, nil
	case "error":
		return PolicyError, nil
	default:
		return PolicyTruncate, fmt.Errorf("unknown overlong word policy %q", value)
	}
}

func (p OverlongPolicy) String() string {
	switch p {
	case PolicySkip:
		return "skip"
	case PolicyError:
		return "error"
	default:
		return "truncate"
	}
}
