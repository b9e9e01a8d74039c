// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

  - WithLogging: request/completion logging with a per-request id
  - CORS: cross-origin headers and preflight handling
  - JSONResponse / ErrorResponse: JSON rendering; error responses carry a
    stable error kind plus a human-readable message
  - ParseJSONBody: request body decoding
  - GetClientIP: client address extraction behind proxies
*/
package middleware
