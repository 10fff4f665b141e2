// Copyright (c) 2026 Heavens Gate Events.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/heavensgate/galavote/middleware"
	"github.com/heavensgate/galavote/models"
)

// Results handles GET /votes/results
// Recomputes the tally from all persisted records on every call; a pure
// read, safe to call concurrently and repeatedly.
func (h *VoteHandler) Results(w http.ResponseWriter, r *http.Request) {
	choices, totalVotes, err := loadVotes(h.db)
	if err != nil {
		// The consumer is a dashboard, not a transactional caller:
		// degrade to an empty tally instead of propagating the failure
		slog.Error("failed to load votes for results", "error", err)
		middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
			Results:      map[string]map[string]int{},
			HighestVoted: map[string]models.Leader{},
			TotalVotes:   0,
		})
		return
	}

	counts, leaders := ComputeTally(choices, models.DefaultCategories)

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Results:      counts,
		HighestVoted: leaders,
		TotalVotes:   totalVotes,
	})
}
