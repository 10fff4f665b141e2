// Copyright (c) 2026 Heavens Gate Events.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/heavensgate/galavote/cliparse"
	"github.com/heavensgate/galavote/handlers"
	"github.com/heavensgate/galavote/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	voteHandler := handlers.NewVoteHandler(db, cfg)
	deviceHandler := handlers.NewDeviceHandler(cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Voting operations (public)
	mux.HandleFunc("POST /votes", middleware.WithLogging(voteHandler.Submit))
	mux.HandleFunc("GET /votes/status", middleware.WithLogging(voteHandler.Status))

	// Results retrieval (public)
	mux.HandleFunc("GET /votes/results", middleware.WithLogging(voteHandler.Results))
	mux.HandleFunc("GET /categories", middleware.WithLogging(voteHandler.Categories))

	// Administrative reset (X-Admin-Key)
	mux.HandleFunc("DELETE /votes", middleware.WithLogging(voteHandler.Clear))

	// Device identification
	mux.HandleFunc("POST /devices/identify", middleware.WithLogging(deviceHandler.Identify))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("galavote API v1"))
	})

	return mux
}
