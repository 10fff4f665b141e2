// Copyright (c) 2026 Heavens Gate Events.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SubmitVotesRequest: device_id, votes (map[string]string)
  - IdentifyRequest: browser environment signals for fingerprinting

# Response Types

Types for JSON responses:

  - SubmitVotesResponse: record_id, message
  - ResultsResponse: results, highest_voted, total_votes
  - VoteStatusResponse: device_id, voted_categories
  - ClearVotesResponse: deleted_count, message
  - IdentifyResponse: device_id, browser, os, mobile
  - CategoriesResponse: categories
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - VoteRecord: one accepted submission (origin metadata never serialized)
  - VoteChoice: a single (category, nominee) selection
  - Leader: a category's front-runner and its count
  - Category: award slot with display title and nominee list

# Award Configuration

DefaultCategories holds the fixed award slots for the event. Three slots
carry nominee lists for display; the rest are tallied free-form. Use
KnownCategory to validate submitted category ids.
*/
package models
