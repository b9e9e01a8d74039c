// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses configuration from CLI flags, a .env file, and
environment variables, in that order of precedence.

Flags:

	-p              Server port (env PORT, default 3318)
	-d              Database URL (env DATABASE_URL)
	-t              Database type: postgres, sqlite, or memory
	                (env DATABASE_TYPE, default sqlite)
	-identity-salt  Identity proof salt (env IDENTITY_SALT, required)

The memory backend needs no database URL; both SQL backends do.
*/
package cliparse
