// Copyright (c) 2026 Heavens Gate Events.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Gala Votes API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - VoteHandler: vote submission, status, results, reset, configuration
  - DeviceHandler: device identifier derivation

	voteHandler := handlers.NewVoteHandler(db, cfg)
	deviceHandler := handlers.NewDeviceHandler(cfg)

# Voting Flow

	POST /devices/identify → Identify (derive device_id from signals)
	GET  /categories       → Categories (award configuration)
	POST /votes            → Submit (one record per device per category set)
	GET  /votes/status     → Status (categories a device has voted in)

Submission enforces one vote per category per device: a request touching
any category the device already voted in is rejected with 409 Conflict.
The serving check is backed by a database UNIQUE constraint, so two
racing submissions cannot both land.

# Results

	GET /votes/results → Results

The tally is recomputed from all records on every call (tally.go). Ties
for a category lead go to the lexicographically smallest nominee name.
On storage failure the endpoint returns an empty tally rather than an
error; the consumer is a live dashboard.

# Reset

	DELETE /votes → Clear

Requires the X-Admin-Key header. Removes every record; irreversible.
*/
package handlers
