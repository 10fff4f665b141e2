// Copyright (c) 2026 Heavens Gate Events.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and request/response helpers.

# Middleware

  - WithLogging: logs request start/completion with status and duration
  - CORS: allows cross-origin requests from the voting pages

# Helpers

  - JSONResponse / ErrorResponse: JSON encoding with status codes
  - ParseJSONBody: request body decoding
  - GetClientIP: client IP extraction (X-Forwarded-For aware)
*/
package middleware
