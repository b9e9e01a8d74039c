// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/voting"
)

type ResultsHandler struct {
	svc *voting.Service
	cfg cliparse.Config
}

func NewResultsHandler(svc *voting.Service, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{svc: svc, cfg: cfg}
}

// GetResults handles GET /polls/:id/results
// Tallies are readable at any phase; they are just the poll record's
// counters, so there is nothing to seal or snapshot.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "BadRequest", "poll_id is required")
		return
	}

	poll, err := h.svc.GetPoll(r.Context(), pollID)
	if err != nil {
		writeVotingError(w, "get results", err)
		return
	}

	candidates := make([]models.CandidateResult, len(poll.Candidates))
	var total uint64
	for i, name := range poll.Candidates {
		candidates[i] = models.CandidateResult{
			Name:  name,
			Votes: poll.Votes[i],
		}
		total += poll.Votes[i]
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		PollID:     poll.ID,
		Title:      poll.Title,
		Phase:      h.svc.Phase(poll),
		Candidates: candidates,
		TotalVotes: total,
		TotalText:  humanize.Comma(int64(total)) + " votes",
	})
}
