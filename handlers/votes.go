// Copyright (c) 2026 Heavens Gate Events.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heavensgate/galavote/auth"
	"github.com/heavensgate/galavote/cliparse"
	"github.com/heavensgate/galavote/middleware"
	"github.com/heavensgate/galavote/models"
)

type VoteHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVoteHandler(db *sql.DB, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{db: db, cfg: cfg}
}

// Submit handles POST /votes
// Accepts one immutable record per device covering categories the device
// has not voted in yet
func (h *VoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitVotesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.DeviceID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "device_id is required")
		return
	}
	if len(req.Votes) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "votes cannot be empty")
		return
	}
	for category, nominee := range req.Votes {
		if !models.KnownCategory(category) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "unknown category: "+category)
			return
		}
		if nominee == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "nominee for "+category+" cannot be empty")
			return
		}
	}

	// Friendly-path overlap check. The UNIQUE (device_id, category_id)
	// constraint below is the authority when two submissions race.
	voted, err := votedCategories(h.db, req.DeviceID)
	if err != nil {
		slog.Error("failed to query existing votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	for category := range req.Votes {
		if voted[category] {
			middleware.ErrorResponse(w, http.StatusConflict,
				"You have already voted in some of these categories from this device")
			return
		}
	}

	// Origin diagnostics - informational only, never part of dedup
	ipHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.HashSalt)
	userAgent := r.UserAgent()

	recordID := uuid.NewString()

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO vote_record (id, device_id, submitted_at, ip_hash, user_agent)
		VALUES ($1, $2, $3, $4, $5)
	`, recordID, req.DeviceID, time.Now(), ipHash, userAgent)
	if err != nil {
		slog.Error("failed to insert vote record", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit votes")
		return
	}

	for category, nominee := range req.Votes {
		_, err = tx.Exec(`
			INSERT INTO vote_choice (record_id, device_id, category_id, nominee)
			VALUES ($1, $2, $3, $4)
		`, recordID, req.DeviceID, category, nominee)

		if err != nil {
			if isUniqueViolation(err) {
				// A concurrent submission from this device won the race
				middleware.ErrorResponse(w, http.StatusConflict,
					"You have already voted in some of these categories from this device")
				return
			}
			slog.Error("failed to insert vote choice", "error", err, "category", category)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit votes")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit votes")
		return
	}

	slog.Info("votes submitted", "record_id", recordID, "categories", len(req.Votes))

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitVotesResponse{
		RecordID: recordID,
		Message:  "Votes submitted successfully",
	})
}

// Status handles GET /votes/status
// Returns the categories the device has already voted in. Clients may
// cache a local "has voted" flag, but this answer is the authority.
func (h *VoteHandler) Status(w http.ResponseWriter, r *http.Request) {
	deviceID := r.Header.Get("X-Device-ID")
	if deviceID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "X-Device-ID header required")
		return
	}

	voted, err := votedCategories(h.db, deviceID)
	if err != nil {
		slog.Error("failed to query vote status", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	categories := make([]string, 0, len(voted))
	for category := range voted {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	middleware.JSONResponse(w, http.StatusOK, models.VoteStatusResponse{
		DeviceID:        deviceID,
		VotedCategories: categories,
	})
}

// Clear handles DELETE /votes
// Unconditionally removes every vote record. Irreversible; requires the
// X-Admin-Key header.
func (h *VoteHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), h.cfg.AdminKey); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	// Choices are deleted explicitly: SQLite does not enforce the
	// cascade unless foreign keys are switched on per connection
	if _, err := tx.Exec(`DELETE FROM vote_choice`); err != nil {
		slog.Error("failed to clear vote choices", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to clear votes")
		return
	}

	res, err := tx.Exec(`DELETE FROM vote_record`)
	if err != nil {
		slog.Error("failed to clear vote records", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to clear votes")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to clear votes")
		return
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		deleted = 0
	}

	slog.Info("votes cleared", "deleted", deleted)

	middleware.JSONResponse(w, http.StatusOK, models.ClearVotesResponse{
		DeletedCount: deleted,
		Message:      "All votes cleared",
	})
}

// Categories handles GET /categories
// Returns the static award configuration for voting and results pages
func (h *VoteHandler) Categories(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.CategoriesResponse{
		Categories: models.DefaultCategories,
	})
}

// votedCategories returns the set of category ids the device has
// existing choices for
func votedCategories(db *sql.DB, deviceID string) (map[string]bool, error) {
	rows, err := db.Query(`
		SELECT DISTINCT category_id FROM vote_choice WHERE device_id = $1
	`, deviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	voted := make(map[string]bool)
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		voted[category] = true
	}

	return voted, rows.Err()
}

// isUniqueViolation matches the constraint error text of both supported
// drivers (modernc.org/sqlite and lib/pq)
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
