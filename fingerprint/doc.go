// Copyright (c) 2026 Heavens Gate Events.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package fingerprint derives a pseudo-stable device identifier from
browser environment signals.

The identifier is a base-36 encoding of a 32-bit rolling hash over the
joined signals (user agent, language, screen metrics, timezone offset,
CPU count, platform, canvas-render prefix). It is stable across page
loads on the same browser, varies across devices, and requires no
account.

It is deliberately weak: two identical machines can collide, and a user
can change it at will. The server-side category-overlap check is the
actual vote-dedup authority; this identifier only keys that check.

	id := fingerprint.Derive(fingerprint.Signals{
		UserAgent: r.UserAgent(),
		Language:  "en-US",
	})
*/
package fingerprint
