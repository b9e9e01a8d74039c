// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "errors"

// Error taxonomy for the two operations. Every error is terminal for the
// attempted operation; a validation failure aborts with zero mutation.
var (
	// CreatePoll configuration errors.
	ErrNotEnoughCandidates  = errors.New("not enough candidates")
	ErrTooManyCandidates    = errors.New("too many candidates")
	ErrTitleTooLong         = errors.New("title too long")
	ErrBadSchedule          = errors.New("start/end timestamps invalid")
	ErrEmptyCandidateName   = errors.New("candidate name cannot be empty")
	ErrCandidateNameTooLong = errors.New("candidate name too long")

	// CastVote errors.
	ErrTooEarly     = errors.New("voting has not started")
	ErrClosed       = errors.New("voting is closed")
	ErrBadCandidate = errors.New("candidate index out of range")
	ErrOverflow     = errors.New("arithmetic overflow")

	// Allocation failures from the record store, propagated unchanged.
	ErrPollExists   = errors.New("poll already exists for this authority and title")
	ErrAlreadyVoted = errors.New("ballot already exists for this wallet")
	ErrPollNotFound = errors.New("poll not found")
)

// Kind returns the stable machine-readable name for a taxonomy error, or
// "Internal" for anything outside the taxonomy. Clients branch on the kind
// for precise messaging.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrNotEnoughCandidates):
		return "NotEnoughCandidates"
	case errors.Is(err, ErrTooManyCandidates):
		return "TooManyCandidates"
	case errors.Is(err, ErrTitleTooLong):
		return "TitleTooLong"
	case errors.Is(err, ErrBadSchedule):
		return "BadSchedule"
	case errors.Is(err, ErrEmptyCandidateName):
		return "EmptyCandidateName"
	case errors.Is(err, ErrCandidateNameTooLong):
		return "CandidateNameTooLong"
	case errors.Is(err, ErrTooEarly):
		return "TooEarly"
	case errors.Is(err, ErrClosed):
		return "Closed"
	case errors.Is(err, ErrBadCandidate):
		return "BadCandidate"
	case errors.Is(err, ErrOverflow):
		return "Overflow"
	case errors.Is(err, ErrPollExists):
		return "PollExists"
	case errors.Is(err, ErrAlreadyVoted):
		return "AlreadyVoted"
	case errors.Is(err, ErrPollNotFound):
		return "PollNotFound"
	default:
		return "Internal"
	}
}
