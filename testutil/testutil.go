// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/ballotbox/auth"
	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/db"
	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/voting"
)

// Canonical test schedule: the fixed clock sits inside the window.
const (
	TestStartTS = int64(100)
	TestNow     = int64(150)
	TestEndTS   = int64(200)
)

// TestIdentitySalt signs identity proofs in tests.
const TestIdentitySalt = "test-identity-salt"

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. A single connection keeps every statement on the same in-memory
// database and serializes concurrent access.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbConn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	dbConn.SetMaxOpenConns(1)

	if err := db.CreateSchema(dbConn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return dbConn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		IdentitySalt: TestIdentitySalt,
	}
}

// FixedClock returns a clock pinned to the given unix time.
func FixedClock(unix int64) voting.Clock {
	return voting.ClockFunc(func() time.Time {
		return time.Unix(unix, 0).UTC()
	})
}

// NewService builds a voting service over the SQL store with a clock
// pinned at the given unix time.
func NewService(dbConn *sql.DB, nowUnix int64) *voting.Service {
	return voting.NewService(db.NewStore(dbConn), FixedClock(nowUnix))
}

// IdentityHeaders returns the headers that authenticate an identity token.
func IdentityHeaders(identity string) map[string]string {
	return map[string]string{
		"X-Identity":       identity,
		"X-Identity-Proof": auth.IdentityProof(identity, TestIdentitySalt),
	}
}

// CreateTestPoll creates a two-candidate poll on the canonical schedule
// and returns it.
func CreateTestPoll(t *testing.T, svc *voting.Service, authority string) models.Poll {
	t.Helper()

	poll, err := svc.CreatePoll(context.Background(), authority, "Best Language",
		[]string{"Rust", "Go"}, TestStartTS, TestEndTS)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	return poll
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
