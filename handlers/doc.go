// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP handlers for the API.

  - IdentityHandler: identity issuance (POST /identities)
  - PollHandler: poll creation and record reads
  - VotingHandler: vote casting
  - ResultsHandler: tallies and totals

Handlers parse and authenticate the request, delegate to the voting
service, and map its error taxonomy onto HTTP statuses: malformed
configuration and bad candidate indexes are 400, window violations and
allocation conflicts (duplicate poll or ballot, tally ceiling) are 409,
missing polls are 404. The taxonomy kind is always preserved in the
response body so clients can branch on it.
*/
package handlers
