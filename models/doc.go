// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and record types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreatePollRequest: title, candidates, start_ts, end_ts
  - CastVoteRequest: candidate_idx

# Response Types

Types for JSON responses:

  - RegisterIdentityResponse: identity, proof
  - CreatePollResponse: poll_id, poll
  - CastVoteResponse: ballot_id, message
  - PollResponse: poll, phase
  - ResultsResponse: per-candidate tallies and totals
  - ErrorResponse: error (stable kind), message

# Record Types

Durable state:

  - Poll: election configuration plus live tallies; configuration is
    immutable after creation
  - Ballot: per-(poll, wallet) proof of participation; never mutated or
    deleted once created

# Constants

Configuration limits:

	MinCandidates   = 2
	MaxCandidates   = 8
	MaxTitleLen     = 64
	MaxCandidateLen = 32

Derived phases:

	PhaseNotStarted = "not_started"
	PhaseOpen       = "open"
	PhaseClosed     = "closed"
*/
package models
