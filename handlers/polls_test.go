// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/testutil"
)

func TestCreatePoll(t *testing.T) {
	dbConn := testutil.SetupTestDB(t)
	svc := testutil.NewService(dbConn, testutil.TestNow)
	handler := NewPollHandler(svc, testutil.GetTestConfig())
	headers := testutil.IdentityHeaders("authority-1")

	req := models.CreatePollRequest{
		Title:      "Best Language",
		Candidates: []string{"Rust", "Go"},
		StartTS:    testutil.TestStartTS,
		EndTS:      testutil.TestEndTS,
	}

	w := httptest.NewRecorder()
	handler.CreatePoll(w, testutil.MakeRequest("POST", "/polls", req, headers))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.CreatePollResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.PollID == "" {
		t.Error("expected non-empty poll_id")
	}
	if resp.Poll.Authority != "authority-1" {
		t.Errorf("expected caller as authority, got %q", resp.Poll.Authority)
	}
	if len(resp.Poll.Votes) != 2 || resp.Poll.Votes[0] != 0 || resp.Poll.Votes[1] != 0 {
		t.Errorf("expected zeroed tallies, got %v", resp.Poll.Votes)
	}
}

func TestCreatePollValidation(t *testing.T) {
	tests := []struct {
		name     string
		req      models.CreatePollRequest
		wantKind string
	}{
		{
			name: "one candidate",
			req: models.CreatePollRequest{
				Title: "Solo", Candidates: []string{"only"},
				StartTS: 100, EndTS: 200,
			},
			wantKind: "NotEnoughCandidates",
		},
		{
			name: "nine candidates",
			req: models.CreatePollRequest{
				Title:      "Crowded",
				Candidates: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"},
				StartTS:    100, EndTS: 200,
			},
			wantKind: "TooManyCandidates",
		},
		{
			name: "title too long",
			req: models.CreatePollRequest{
				Title: strings.Repeat("t", 65), Candidates: []string{"a", "b"},
				StartTS: 100, EndTS: 200,
			},
			wantKind: "TitleTooLong",
		},
		{
			name: "start not before end",
			req: models.CreatePollRequest{
				Title: "Window", Candidates: []string{"a", "b"},
				StartTS: 200, EndTS: 100,
			},
			wantKind: "BadSchedule",
		},
		{
			name: "empty candidate name",
			req: models.CreatePollRequest{
				Title: "Names", Candidates: []string{"a", ""},
				StartTS: 100, EndTS: 200,
			},
			wantKind: "EmptyCandidateName",
		},
		{
			name: "candidate name too long",
			req: models.CreatePollRequest{
				Title: "Names", Candidates: []string{"a", strings.Repeat("c", 33)},
				StartTS: 100, EndTS: 200,
			},
			wantKind: "CandidateNameTooLong",
		},
	}

	dbConn := testutil.SetupTestDB(t)
	svc := testutil.NewService(dbConn, testutil.TestNow)
	handler := NewPollHandler(svc, testutil.GetTestConfig())
	headers := testutil.IdentityHeaders("authority-1")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.CreatePoll(w, testutil.MakeRequest("POST", "/polls", tt.req, headers))
			testutil.AssertStatus(t, w, http.StatusBadRequest)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Error != tt.wantKind {
				t.Errorf("expected kind %q, got %q", tt.wantKind, resp.Error)
			}
		})
	}
}

func TestCreatePollDuplicate(t *testing.T) {
	dbConn := testutil.SetupTestDB(t)
	svc := testutil.NewService(dbConn, testutil.TestNow)
	handler := NewPollHandler(svc, testutil.GetTestConfig())
	headers := testutil.IdentityHeaders("authority-1")

	req := models.CreatePollRequest{
		Title:      "Best Language",
		Candidates: []string{"Rust", "Go"},
		StartTS:    testutil.TestStartTS,
		EndTS:      testutil.TestEndTS,
	}

	w := httptest.NewRecorder()
	handler.CreatePoll(w, testutil.MakeRequest("POST", "/polls", req, headers))
	testutil.AssertStatus(t, w, http.StatusCreated)

	w = httptest.NewRecorder()
	handler.CreatePoll(w, testutil.MakeRequest("POST", "/polls", req, headers))
	testutil.AssertStatus(t, w, http.StatusConflict)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Error != "PollExists" {
		t.Errorf("expected kind PollExists, got %q", resp.Error)
	}
}

func TestCreatePollAuth(t *testing.T) {
	dbConn := testutil.SetupTestDB(t)
	svc := testutil.NewService(dbConn, testutil.TestNow)
	handler := NewPollHandler(svc, testutil.GetTestConfig())

	req := models.CreatePollRequest{
		Title:      "Best Language",
		Candidates: []string{"Rust", "Go"},
		StartTS:    testutil.TestStartTS,
		EndTS:      testutil.TestEndTS,
	}

	// No identity headers.
	w := httptest.NewRecorder()
	handler.CreatePoll(w, testutil.MakeRequest("POST", "/polls", req, nil))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	// Forged proof.
	w = httptest.NewRecorder()
	handler.CreatePoll(w, testutil.MakeRequest("POST", "/polls", req, map[string]string{
		"X-Identity":       "authority-1",
		"X-Identity-Proof": "forged",
	}))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}

func TestCreatePollInvalidJSON(t *testing.T) {
	dbConn := testutil.SetupTestDB(t)
	svc := testutil.NewService(dbConn, testutil.TestNow)
	handler := NewPollHandler(svc, testutil.GetTestConfig())

	req := httptest.NewRequest("POST", "/polls", strings.NewReader("not json"))
	for k, v := range testutil.IdentityHeaders("authority-1") {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	handler.CreatePoll(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestGetPoll(t *testing.T) {
	dbConn := testutil.SetupTestDB(t)
	svc := testutil.NewService(dbConn, testutil.TestNow)
	handler := NewPollHandler(svc, testutil.GetTestConfig())

	poll := testutil.CreateTestPoll(t, svc, "authority-1")

	req := testutil.MakeRequest("GET", "/polls/"+poll.ID, nil, nil)
	req.SetPathValue("id", poll.ID)

	w := httptest.NewRecorder()
	handler.GetPoll(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.PollResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Poll.Title != "Best Language" {
		t.Errorf("unexpected poll: %+v", resp.Poll)
	}
	if resp.Phase != models.PhaseOpen {
		t.Errorf("expected phase %q, got %q", models.PhaseOpen, resp.Phase)
	}
}

func TestGetPollNotFound(t *testing.T) {
	dbConn := testutil.SetupTestDB(t)
	svc := testutil.NewService(dbConn, testutil.TestNow)
	handler := NewPollHandler(svc, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/polls/missing", nil, nil)
	req.SetPathValue("id", "missing")

	w := httptest.NewRecorder()
	handler.GetPoll(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Error != "PollNotFound" {
		t.Errorf("expected kind PollNotFound, got %q", resp.Error)
	}
}
