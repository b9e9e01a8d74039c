// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/voting"
)

var _ voting.Store = (*Store)(nil)

// Store implements voting.Store on a SQL database (PostgreSQL or SQLite).
// Uniqueness of poll and ballot records is enforced by the schema's
// primary keys and UNIQUE constraints; AppendBallot runs in a single
// transaction so its two writes commit or roll back together.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreatePoll(ctx context.Context, poll models.Poll) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO poll (id, authority, title, start_ts, end_ts, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, poll.ID, poll.Authority, poll.Title, poll.StartTS, poll.EndTS, poll.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return voting.ErrPollExists
		}
		return fmt.Errorf("failed to insert poll: %w", err)
	}

	for i, name := range poll.Candidates {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO candidate (poll_id, idx, name, votes)
			VALUES ($1, $2, $3, $4)
		`, poll.ID, i, name, int64(poll.Votes[i]))
		if err != nil {
			return fmt.Errorf("failed to insert candidate: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *Store) GetPoll(ctx context.Context, pollID string) (models.Poll, error) {
	var poll models.Poll
	err := s.db.QueryRowContext(ctx, `
		SELECT id, authority, title, start_ts, end_ts, created_at
		FROM poll
		WHERE id = $1
	`, pollID).Scan(&poll.ID, &poll.Authority, &poll.Title, &poll.StartTS, &poll.EndTS, &poll.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Poll{}, voting.ErrPollNotFound
	}
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to query poll: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, votes
		FROM candidate
		WHERE poll_id = $1
		ORDER BY idx
	`, pollID)
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var votes int64
		if err := rows.Scan(&name, &votes); err != nil {
			return models.Poll{}, fmt.Errorf("failed to scan candidate: %w", err)
		}
		poll.Candidates = append(poll.Candidates, name)
		poll.Votes = append(poll.Votes, uint64(votes))
	}
	if err := rows.Err(); err != nil {
		return models.Poll{}, fmt.Errorf("failed to iterate candidates: %w", err)
	}

	return poll, nil
}

func (s *Store) AppendBallot(ctx context.Context, ballot models.Ballot, candidateIdx int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Ballot allocation first: the constraints reject a duplicate before
	// the tally is touched.
	_, err = tx.ExecContext(ctx, `
		INSERT INTO ballot (id, poll_id, wallet, has_voted, cast_at, ip_hash, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, ballot.ID, ballot.PollID, ballot.Wallet, ballot.HasVoted, ballot.CastAt, ballot.IPHash, ballot.UserAgent)
	if err != nil {
		if isUniqueViolation(err) {
			return voting.ErrAlreadyVoted
		}
		return fmt.Errorf("failed to insert ballot: %w", err)
	}

	// Guarded increment: the candidate row exists for every poll and the
	// index was validated upstream, so zero affected rows means the tally
	// is at its ceiling.
	res, err := tx.ExecContext(ctx, `
		UPDATE candidate
		SET votes = votes + 1
		WHERE poll_id = $1 AND idx = $2 AND votes < $3
	`, ballot.PollID, candidateIdx, int64(voting.MaxTally))
	if err != nil {
		return fmt.Errorf("failed to increment tally: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return voting.ErrOverflow
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err is a uniqueness-constraint failure
// from either backend: SQLSTATE 23505 on PostgreSQL, "UNIQUE constraint
// failed" from SQLite.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
