// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/ballotbox/auth"
	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/voting"
)

type VotingHandler struct {
	svc *voting.Service
	cfg cliparse.Config
}

func NewVotingHandler(svc *voting.Service, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{svc: svc, cfg: cfg}
}

// CastVote handles POST /polls/:id/votes
// The verified caller is the voter wallet; one vote per wallet per poll.
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "BadRequest", "poll_id is required")
		return
	}

	wallet, ok := requireIdentity(w, r, h.cfg.IdentitySalt)
	if !ok {
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "BadRequest", "Invalid JSON")
		return
	}

	// Audit fields; hashed for privacy before they reach storage.
	ipHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.IdentitySalt)
	userAgent := r.UserAgent()
	meta := models.BallotMeta{
		IPHash:    &ipHash,
		UserAgent: &userAgent,
	}

	ballot, err := h.svc.CastVote(r.Context(), pollID, wallet, req.CandidateIdx, meta)
	if err != nil {
		writeVotingError(w, "cast vote", err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		BallotID: ballot.ID,
		Message:  "Vote recorded",
	})
}
