// Copyright (c) 2026 Heavens Gate Events.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles schema creation for the vote store.

# Tables

  - vote_record: one immutable row per accepted submission
    (id, device_id, submitted_at, ip_hash, user_agent)
  - vote_choice: one row per (category, nominee) selection

# Dedup Constraint

vote_choice carries UNIQUE (device_id, category_id). This is the
authority for "one vote per category per device": the handlers check for
overlap first to give a friendly error, but a racing second submission is
stopped by the constraint, not the check.

The schema works on both PostgreSQL (lib/pq) and SQLite (modernc.org/sqlite);
timestamps are always written by the application, never defaulted.
*/
package db
