// Copyright (c) 2026 Heavens Gate Events.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires URL patterns to handlers using Go 1.22+ method
routing on the standard ServeMux.

# Routes

	GET    /health           → liveness check
	POST   /votes            → submit votes
	GET    /votes/status     → categories a device has voted in
	GET    /votes/results    → live tally
	DELETE /votes            → reset all votes (X-Admin-Key)
	GET    /categories       → award configuration
	POST   /devices/identify → derive device identifier
	GET    /                 → API banner

Every route except the health check and banner is wrapped with request
logging.
*/
package router
