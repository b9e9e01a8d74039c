// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/voting"
)

type PollHandler struct {
	svc *voting.Service
	cfg cliparse.Config
}

func NewPollHandler(svc *voting.Service, cfg cliparse.Config) *PollHandler {
	return &PollHandler{svc: svc, cfg: cfg}
}

// CreatePoll handles POST /polls
// The verified caller becomes the poll authority.
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	authority, ok := requireIdentity(w, r, h.cfg.IdentitySalt)
	if !ok {
		return
	}

	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "BadRequest", "Invalid JSON")
		return
	}

	poll, err := h.svc.CreatePoll(r.Context(), authority, req.Title, req.Candidates, req.StartTS, req.EndTS)
	if err != nil {
		writeVotingError(w, "create poll", err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreatePollResponse{
		PollID: poll.ID,
		Poll:   poll,
	})
}

// GetPoll handles GET /polls/:id
// Returns the poll record (config, tallies, schedule) plus the phase
// derived from the current time.
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "BadRequest", "poll_id is required")
		return
	}

	poll, err := h.svc.GetPoll(r.Context(), pollID)
	if err != nil {
		writeVotingError(w, "get poll", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PollResponse{
		Poll:  poll,
		Phase: h.svc.Phase(poll),
	})
}
