// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ballotbox/auth"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/voting"
)

// votingErrorStatus maps the voting error taxonomy onto HTTP statuses.
// The specific kind always survives in the response body; nothing is
// swallowed or downgraded.
func votingErrorStatus(err error) int {
	switch {
	case errors.Is(err, voting.ErrPollNotFound):
		return http.StatusNotFound
	case errors.Is(err, voting.ErrTooEarly),
		errors.Is(err, voting.ErrClosed),
		errors.Is(err, voting.ErrPollExists),
		errors.Is(err, voting.ErrAlreadyVoted),
		errors.Is(err, voting.ErrOverflow):
		return http.StatusConflict
	case errors.Is(err, voting.ErrNotEnoughCandidates),
		errors.Is(err, voting.ErrTooManyCandidates),
		errors.Is(err, voting.ErrTitleTooLong),
		errors.Is(err, voting.ErrBadSchedule),
		errors.Is(err, voting.ErrEmptyCandidateName),
		errors.Is(err, voting.ErrCandidateNameTooLong),
		errors.Is(err, voting.ErrBadCandidate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeVotingError renders an operation failure with its taxonomy kind.
func writeVotingError(w http.ResponseWriter, op string, err error) {
	status := votingErrorStatus(err)
	if status == http.StatusInternalServerError {
		slog.Error("operation failed", "op", op, "error", err)
		middleware.ErrorResponse(w, status, "Internal", "Internal error")
		return
	}
	middleware.ErrorResponse(w, status, voting.Kind(err), err.Error())
}

// requireIdentity verifies the identity headers and returns the caller's
// identity token. A missing or invalid proof writes a 401 and returns
// ok=false.
func requireIdentity(w http.ResponseWriter, r *http.Request, salt string) (string, bool) {
	identity := r.Header.Get("X-Identity")
	proof := r.Header.Get("X-Identity-Proof")
	if identity == "" || proof == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "X-Identity and X-Identity-Proof headers required")
		return "", false
	}
	if err := auth.VerifyIdentity(identity, proof, salt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid identity proof")
		return "", false
	}
	return identity, true
}
