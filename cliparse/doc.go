// Copyright (c) 2026 Heavens Gate Events.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables.

# Precedence

CLI flags win over environment variables:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Settings

  - -p / PORT: server port (default 3192)
  - -d / DATABASE_URL: database connection string (required)
  - -t / DATABASE_TYPE: "sqlite" or "postgres" (default sqlite)
  - --admin-key / ADMIN_KEY: key for the votes-reset endpoint (required)
  - --hash-salt / HASH_SALT: salt for client IP hashing (required)

Secrets should come from the environment in production; the flags exist
for local development only.
*/
package cliparse
