// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires URL patterns to handlers using Go 1.22+ method
routing.

# Routes

	GET  /health                  liveness probe
	POST /identities              issue identity token + proof
	POST /polls                   create a poll (authenticated)
	GET  /polls/{id}              read a poll record
	POST /polls/{id}/votes        cast a vote (authenticated)
	GET  /polls/{id}/results      tallies and totals
*/
package router
