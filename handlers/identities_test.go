// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/ballotbox/auth"
	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/testutil"
)

func TestRegisterIdentity(t *testing.T) {
	handler := NewIdentityHandler(testutil.GetTestConfig())

	w := httptest.NewRecorder()
	handler.Register(w, testutil.MakeRequest("POST", "/identities", nil, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.RegisterIdentityResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Identity == "" || resp.Proof == "" {
		t.Fatalf("expected identity and proof, got %+v", resp)
	}

	// The issued proof must pass verification under the configured salt.
	if err := auth.VerifyIdentity(resp.Identity, resp.Proof, testutil.TestIdentitySalt); err != nil {
		t.Errorf("issued proof failed verification: %v", err)
	}
}

func TestRegisterIdentityUnique(t *testing.T) {
	handler := NewIdentityHandler(testutil.GetTestConfig())

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		handler.Register(w, testutil.MakeRequest("POST", "/identities", nil, nil))

		var resp models.RegisterIdentityResponse
		testutil.AssertJSON(t, w, &resp)
		if seen[resp.Identity] {
			t.Fatalf("duplicate identity issued: %q", resp.Identity)
		}
		seen[resp.Identity] = true
	}
}
