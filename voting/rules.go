// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"math"
	"time"

	"github.com/danielhkuo/ballotbox/models"
)

// MaxTally is the ceiling for a single candidate counter. Counters are
// persisted as BIGINT by the SQL store, so the ceiling is the largest
// value every backend can represent.
const MaxTally uint64 = math.MaxInt64

// ValidateConfig checks a poll configuration. Checks run in a fixed order
// and the first failure wins. Lengths are byte lengths.
func ValidateConfig(title string, candidates []string, startTS, endTS int64) error {
	if len(candidates) < models.MinCandidates {
		return ErrNotEnoughCandidates
	}
	if len(candidates) > models.MaxCandidates {
		return ErrTooManyCandidates
	}
	if len(title) > models.MaxTitleLen {
		return ErrTitleTooLong
	}
	if startTS >= endTS {
		return ErrBadSchedule
	}
	for _, name := range candidates {
		if name == "" {
			return ErrEmptyCandidateName
		}
		if len(name) > models.MaxCandidateLen {
			return ErrCandidateNameTooLong
		}
	}
	return nil
}

// CheckWindow verifies that now falls inside the poll's voting window.
// Both bounds are inclusive.
func CheckWindow(poll models.Poll, now time.Time) error {
	ts := now.Unix()
	if ts < poll.StartTS {
		return ErrTooEarly
	}
	if ts > poll.EndTS {
		return ErrClosed
	}
	return nil
}

// PhaseAt derives the poll phase from the clock. There is no stored phase
// field; deriving it on every access keeps it from desynchronizing from
// the time source.
func PhaseAt(poll models.Poll, now time.Time) string {
	ts := now.Unix()
	switch {
	case ts < poll.StartTS:
		return models.PhaseNotStarted
	case ts > poll.EndTS:
		return models.PhaseClosed
	default:
		return models.PhaseOpen
	}
}

// CheckedAdd increments a tally counter, failing with ErrOverflow instead
// of exceeding MaxTally.
func CheckedAdd(count, delta uint64) (uint64, error) {
	if count > MaxTally-delta {
		return 0, ErrOverflow
	}
	return count + delta, nil
}
