package models

import "time"

// Poll configuration limits. These bound the maximum stored size of a poll
// record: 8 candidates of 32 bytes each, 8 counters, and the title.
const (
	MinCandidates   = 2
	MaxCandidates   = 8
	MaxTitleLen     = 64
	MaxCandidateLen = 32
)

// Poll phase constants. The phase is derived from the clock on every
// access and is never stored.
const (
	PhaseNotStarted = "not_started"
	PhaseOpen       = "open"
	PhaseClosed     = "closed"
)

// Request types

type CreatePollRequest struct {
	Title      string   `json:"title"`
	Candidates []string `json:"candidates"`
	StartTS    int64    `json:"start_ts"`
	EndTS      int64    `json:"end_ts"`
}

type CastVoteRequest struct {
	CandidateIdx int `json:"candidate_idx"`
}

// Response types

type RegisterIdentityResponse struct {
	Identity string `json:"identity"`
	Proof    string `json:"proof"`
}

type CreatePollResponse struct {
	PollID string `json:"poll_id"`
	Poll   Poll   `json:"poll"`
}

type CastVoteResponse struct {
	BallotID string `json:"ballot_id"`
	Message  string `json:"message"`
}

type PollResponse struct {
	Poll  Poll   `json:"poll"`
	Phase string `json:"phase"`
}

type CandidateResult struct {
	Name  string `json:"name"`
	Votes uint64 `json:"votes"`
}

type ResultsResponse struct {
	PollID     string            `json:"poll_id"`
	Title      string            `json:"title"`
	Phase      string            `json:"phase"`
	Candidates []CandidateResult `json:"candidates"`
	TotalVotes uint64            `json:"total_votes"`
	TotalText  string            `json:"total_votes_text"`
}

// Domain types

// Poll is the election configuration plus live tallies. Configuration
// fields (Authority, Title, Candidates, StartTS, EndTS) never change after
// creation; only Votes is mutated, one index per successful vote. Votes is
// index-aligned with Candidates.
type Poll struct {
	ID         string    `json:"id"`
	Authority  string    `json:"authority"`
	Title      string    `json:"title"`
	Candidates []string  `json:"candidates"`
	Votes      []uint64  `json:"votes"`
	StartTS    int64     `json:"start_ts"`
	EndTS      int64     `json:"end_ts"`
	CreatedAt  time.Time `json:"created_at"`
}

// Ballot marks that a wallet has voted in a poll. Its existence at the
// address derived from (poll, wallet) is the double-vote guard; HasVoted
// is informational.
type Ballot struct {
	ID        string    `json:"id"`
	PollID    string    `json:"poll_id"`
	Wallet    string    `json:"-"` // Never expose in JSON
	HasVoted  bool      `json:"has_voted"`
	CastAt    time.Time `json:"cast_at"`
	IPHash    *string   `json:"-"` // Never expose in JSON
	UserAgent *string   `json:"-"` // Never expose in JSON
}

// BallotMeta carries request-level audit fields attached to a new ballot.
type BallotMeta struct {
	IPHash    *string
	UserAgent *string
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
