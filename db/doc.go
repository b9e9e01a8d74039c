// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db provides the SQL record store and schema.

# Schema

Three tables: poll (configuration), candidate (one row per candidate with
the live tally), ballot (one row per voter per poll). Poll and ballot rows
are keyed by their derived addresses; composite UNIQUE constraints on
(authority, title) and (poll_id, wallet) back the same guarantee at the
key-tuple level. Double voting therefore fails as a constraint violation
inside the insert, never as a separate lookup.

# Backends

The DDL and all statements stay inside the dialect subset shared by
PostgreSQL (lib/pq) and SQLite (modernc.org/sqlite); both accept $1-style
placeholders. PostgreSQL is the production backend, SQLite serves dev
setups and the test suite.

# Atomicity

AppendBallot wraps the ballot insert and the guarded tally update in one
transaction. The update refuses to pass the tally ceiling, so overflow
rolls the ballot back too and no partial effect is ever visible.
*/
package db
