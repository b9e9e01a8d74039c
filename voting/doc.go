// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting implements the poll lifecycle state machine: configuration
validation, the voting-window rules, overflow-checked tally arithmetic, and
the two operations that mutate state.

# Operations

  - CreatePoll: validates (title, candidates, schedule) and allocates a
    poll record addressed by (authority, title). First validation failure
    wins; on failure nothing is allocated.
  - CastVote: checks the window and the candidate index, then allocates a
    ballot record addressed by (poll, wallet) and increments the chosen
    tally. The allocation and the increment are one atomic unit.

# Uniqueness

Double voting is prevented structurally, not by a lookup-then-branch: every
record address is derived deterministically from its key, and allocation at
an occupied address fails. A second ballot for the same (poll, wallet) is
rejected by the store before the tally is touched. The same mechanism stops
an authority from reusing a title for two polls.

# Phases

A poll moves through not_started -> open -> closed purely by comparing the
clock to its stored bounds. No phase field is stored anywhere.

# Invariants

  - len(Votes) == len(Candidates) always.
  - sum(Votes) equals the number of successful CastVote calls.
  - At most one ballot per (poll, wallet) ever exists.
  - Poll configuration never changes after creation.

The Store and Clock interfaces isolate the state machine from its substrate
(SQL in db/, in-memory in memstore/) and from wall time.
*/
package voting
