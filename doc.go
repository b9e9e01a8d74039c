// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ballotbox API server.

Ballotbox is a minimal ballot-tallying service: an administrator opens a
poll with a fixed candidate list and a voting window, eligible identities
cast exactly one vote each, and tallies are kept per candidate with
overflow-safe arithmetic and structural double-vote prevention.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... IDENTITY_SALT=... go run main.go -t postgres

Or with SQLite for development:

	go run main.go -t sqlite -d ballotbox.db -identity-salt dev

# Configuration

Required settings:

  - IDENTITY_SALT (-identity-salt): Secret for identity proof HMAC
  - DATABASE_URL (-d): Connection string (not needed for -t memory)

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): postgres, sqlite, or memory (default: sqlite)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - voting: the poll lifecycle state machine (validation, windows, tallies)
  - db / memstore: record stores with insert-if-absent allocation
  - handlers: HTTP request handlers (identities, polls, voting, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and record types
  - auth: Identity proofs and derived record addresses
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
