// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"log/slog"
	"time"

	"github.com/danielhkuo/ballotbox/auth"
	"github.com/danielhkuo/ballotbox/models"
)

// Store is the record substrate the service runs on. Implementations must
// provide insert-if-absent allocation keyed by each record's derived
// address, and must apply AppendBallot's two writes as one atomic unit.
type Store interface {
	// CreatePoll allocates a poll record. Returns ErrPollExists if a
	// record already exists at the poll's derived address.
	CreatePoll(ctx context.Context, poll models.Poll) error

	// GetPoll reads a poll record back. Returns ErrPollNotFound if no
	// record exists at the address.
	GetPoll(ctx context.Context, pollID string) (models.Poll, error)

	// AppendBallot allocates the ballot and increments the chosen tally as
	// one indivisible unit. Returns ErrAlreadyVoted if a ballot already
	// exists at the ballot's derived address, ErrOverflow if the tally is
	// at its ceiling; in both cases nothing is applied.
	AppendBallot(ctx context.Context, ballot models.Ballot, candidateIdx int) error
}

// Clock is the current-time oracle used for window checks.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return ClockFunc(time.Now) }

// Service implements the poll lifecycle state machine over a record store
// and a clock. Each call runs to completion or failure with no internal
// suspension; serialization of concurrent calls is the store's job.
type Service struct {
	store Store
	clock Clock
}

func NewService(store Store, clock Clock) *Service {
	return &Service{store: store, clock: clock}
}

// CreatePoll validates the configuration and allocates a new poll record
// addressed deterministically by (authority, title), with tallies zeroed.
// On any failure nothing is allocated.
func (s *Service) CreatePoll(ctx context.Context, authority, title string, candidates []string, startTS, endTS int64) (models.Poll, error) {
	if err := ValidateConfig(title, candidates, startTS, endTS); err != nil {
		return models.Poll{}, err
	}

	poll := models.Poll{
		ID:        auth.DeriveAddress("poll", authority, title),
		Authority: authority,
		Title:     title,
		// Copy the list so later caller mutations cannot reach the record.
		Candidates: append([]string(nil), candidates...),
		Votes:      make([]uint64, len(candidates)),
		StartTS:    startTS,
		EndTS:      endTS,
		CreatedAt:  s.clock.Now(),
	}

	if err := s.store.CreatePoll(ctx, poll); err != nil {
		return models.Poll{}, err
	}

	slog.Info("poll created", "poll_id", poll.ID, "authority", authority, "candidates", len(candidates))
	return poll, nil
}

// GetPoll reads the poll record back. Plain lookup, no mutation.
func (s *Service) GetPoll(ctx context.Context, pollID string) (models.Poll, error) {
	return s.store.GetPoll(ctx, pollID)
}

// Phase reports the poll's current phase against the service clock.
func (s *Service) Phase(poll models.Poll) string {
	return PhaseAt(poll, s.clock.Now())
}

// CastVote records exactly one vote by wallet on the poll, or fails
// leaving all state unchanged. Every precondition is checked before the
// ballot allocation; the allocation and the tally increment are applied by
// the store as one atomic unit, allocation first, so a duplicate vote can
// never touch the tally and a failed increment can never strand a ballot.
func (s *Service) CastVote(ctx context.Context, pollID, wallet string, candidateIdx int, meta models.BallotMeta) (models.Ballot, error) {
	poll, err := s.store.GetPoll(ctx, pollID)
	if err != nil {
		return models.Ballot{}, err
	}

	now := s.clock.Now()
	if err := CheckWindow(poll, now); err != nil {
		return models.Ballot{}, err
	}
	if candidateIdx < 0 || candidateIdx >= len(poll.Candidates) {
		return models.Ballot{}, ErrBadCandidate
	}

	ballot := models.Ballot{
		ID:        auth.DeriveAddress("ballot", poll.ID, wallet),
		PollID:    poll.ID,
		Wallet:    wallet,
		HasVoted:  true,
		CastAt:    now,
		IPHash:    meta.IPHash,
		UserAgent: meta.UserAgent,
	}

	if err := s.store.AppendBallot(ctx, ballot, candidateIdx); err != nil {
		return models.Ballot{}, err
	}

	slog.Info("vote cast", "poll_id", poll.ID, "candidate_idx", candidateIdx)
	return ballot, nil
}
