// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ballotbox/auth"
	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
)

type IdentityHandler struct {
	cfg cliparse.Config
}

func NewIdentityHandler(cfg cliparse.Config) *IdentityHandler {
	return &IdentityHandler{cfg: cfg}
}

// Register handles POST /identities
// Issues a fresh identity token plus its HMAC proof. The proof scheme is
// stateless, so nothing is stored server-side.
func (h *IdentityHandler) Register(w http.ResponseWriter, r *http.Request) {
	identity, err := auth.GenerateIdentity()
	if err != nil {
		slog.Error("failed to generate identity", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal", "Failed to register identity")
		return
	}

	proof := auth.IdentityProof(identity, h.cfg.IdentitySalt)

	slog.Info("identity registered")

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterIdentityResponse{
		Identity: identity,
		Proof:    proof,
	})
}
