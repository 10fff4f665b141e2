// Copyright (c) 2026 Heavens Gate Events.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Gala Votes API server.

Gala Votes runs the award vote for the Heavens Gate youth gala: each
browser derives a device fingerprint, votes once per award category, and
the live tally is served to a results dashboard.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 3192 -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL or SQLite connection string
  - ADMIN_KEY (--admin-key): Key for the votes-reset endpoint
  - HASH_SALT (--hash-salt): Secret for client IP hashing

Optional settings:

  - PORT (-p): Server port (default: 3192)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)

A .env file in the working directory is loaded if present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (votes, results, devices)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types and the award configuration
  - fingerprint: Device identifier derivation
  - auth: Admin key validation and IP hashing
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
