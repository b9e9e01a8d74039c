// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package memstore implements voting.Store on plain maps. Records are
// keyed by their derived addresses; one mutex serializes every operation,
// which is what gives insert-if-absent allocation and atomic commit of
// AppendBallot's two writes. Used for dev mode (-t memory) and tests.
package memstore

import (
	"context"
	"sync"

	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/voting"
)

var _ voting.Store = (*Store)(nil)

type Store struct {
	mu      sync.Mutex
	polls   map[string]*models.Poll
	ballots map[string]models.Ballot
}

func New() *Store {
	return &Store{
		polls:   map[string]*models.Poll{},
		ballots: map[string]models.Ballot{},
	}
}

func (m *Store) CreatePoll(ctx context.Context, poll models.Poll) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.polls[poll.ID]; exists {
		return voting.ErrPollExists
	}
	p := clonePoll(poll)
	m.polls[poll.ID] = &p
	return nil
}

func (m *Store) GetPoll(ctx context.Context, pollID string) (models.Poll, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, found := m.polls[pollID]
	if !found {
		return models.Poll{}, voting.ErrPollNotFound
	}
	return clonePoll(*p), nil
}

func (m *Store) AppendBallot(ctx context.Context, ballot models.Ballot, candidateIdx int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	poll, found := m.polls[ballot.PollID]
	if !found {
		return voting.ErrPollNotFound
	}
	if _, exists := m.ballots[ballot.ID]; exists {
		return voting.ErrAlreadyVoted
	}

	// Compute the increment before applying anything so a failure leaves
	// both records untouched.
	next, err := voting.CheckedAdd(poll.Votes[candidateIdx], 1)
	if err != nil {
		return err
	}

	m.ballots[ballot.ID] = ballot
	poll.Votes[candidateIdx] = next
	return nil
}

// clonePoll deep-copies the slices so callers can never alias stored state.
func clonePoll(p models.Poll) models.Poll {
	p.Candidates = append([]string(nil), p.Candidates...)
	p.Votes = append([]uint64(nil), p.Votes...)
	return p
}
