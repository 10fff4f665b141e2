// Copyright (c) 2026 Heavens Gate Events.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin key validation and IP hashing.

# Admin Key

The votes-reset endpoint is guarded by a single configured key, checked
in constant time:

	if err := auth.ValidateAdminKey(presented, cfg.AdminKey); err != nil { ... }

There is no broader account or session system; everything else on the
API is anonymous by design.

# IP Hashing

Client IPs are stored only as salted HMAC-SHA256 prefixes for diagnostic
purposes:

	ipHash := auth.HashIP(clientIP, cfg.HashSalt)
*/
package auth
