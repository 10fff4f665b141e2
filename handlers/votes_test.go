package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/heavensgate/galavote/models"
	"github.com/heavensgate/galavote/testutil"
)

func TestSubmitValidation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVoteHandler(db, cfg)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
	}{
		{
			name: "valid submission",
			requestBody: models.SubmitVotesRequest{
				DeviceID: "device-validation",
				Votes:    map[string]string{"lifetime_achievement": "Sis Nda"},
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing device id",
			requestBody: models.SubmitVotesRequest{
				Votes: map[string]string{"lifetime_achievement": "Sis Nda"},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "empty votes",
			requestBody: models.SubmitVotesRequest{
				DeviceID: "device-empty",
				Votes:    map[string]string{},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown category",
			requestBody: models.SubmitVotesRequest{
				DeviceID: "device-unknown-cat",
				Votes:    map[string]string{"best_dancer": "Bro Femi"},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "empty nominee",
			requestBody: models.SubmitVotesRequest{
				DeviceID: "device-empty-nominee",
				Votes:    map[string]string{"hand_of_service": ""},
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/votes", tt.requestBody, nil)
			w := httptest.NewRecorder()

			handler.Submit(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}

	// Rejected submissions must leave no record behind
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM vote_record`).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count records: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected exactly 1 record (the valid one), got %d", count)
	}
}

// A device may never vote twice in the same category, but may come back
// for categories it has not touched yet
func TestSubmitCategoryOverlap(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVoteHandler(db, cfg)

	submit := func(votes map[string]string) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("POST", "/votes", models.SubmitVotesRequest{
			DeviceID: "abc123",
			Votes:    votes,
		}, nil)
		w := httptest.NewRecorder()
		handler.Submit(w, req)
		return w
	}

	// First vote in lifetime_achievement is accepted
	w := submit(map[string]string{"lifetime_achievement": "Sis Nda"})
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Re-voting the same category is rejected, even for another nominee
	w = submit(map[string]string{"lifetime_achievement": "Sis Nobuhle"})
	testutil.AssertStatus(t, w, http.StatusConflict)

	// A fresh category from the same device is still accepted
	w = submit(map[string]string{"hand_of_service": "Bro Femi"})
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Partial overlap rejects the whole submission and persists nothing
	w = submit(map[string]string{
		"most_committed":  "Bro Irey",
		"hand_of_service": "Sis Wuraola",
	})
	testutil.AssertStatus(t, w, http.StatusConflict)

	var committed int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM vote_choice WHERE device_id = $1 AND category_id = $2
	`, "abc123", "most_committed").Scan(&committed)
	if err != nil {
		t.Fatalf("Failed to count choices: %v", err)
	}
	if committed != 0 {
		t.Error("rejected submission must not persist any of its choices")
	}

	// Another device is unaffected by the first device's history
	req := testutil.MakeRequest("POST", "/votes", models.SubmitVotesRequest{
		DeviceID: "other-device",
		Votes:    map[string]string{"lifetime_achievement": "Sis Nobuhle"},
	}, nil)
	w = httptest.NewRecorder()
	handler.Submit(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)
}

func TestSubmitStoresOriginDiagnostics(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVoteHandler(db, cfg)

	req := testutil.MakeRequest("POST", "/votes", models.SubmitVotesRequest{
		DeviceID: "device-origin",
		Votes:    map[string]string{"most_outspoken": "Bro Abbey"},
	}, map[string]string{
		"User-Agent":      "galavote-test/1.0",
		"X-Forwarded-For": "203.0.113.7",
	})
	w := httptest.NewRecorder()
	handler.Submit(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.SubmitVotesResponse
	testutil.AssertJSON(t, w, &resp)

	var ipHash, userAgent string
	err := db.QueryRow(`
		SELECT ip_hash, user_agent FROM vote_record WHERE id = $1
	`, resp.RecordID).Scan(&ipHash, &userAgent)
	if err != nil {
		t.Fatalf("Failed to query record: %v", err)
	}

	if userAgent != "galavote-test/1.0" {
		t.Errorf("expected user agent stored, got %q", userAgent)
	}
	// Only the salted hash is stored, never the raw address
	if ipHash == "" || ipHash == "203.0.113.7" {
		t.Errorf("expected hashed IP, got %q", ipHash)
	}
}

func TestStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVoteHandler(db, cfg)

	testutil.InsertTestVote(t, db, "device-status", map[string]string{
		"hand_of_service":      "Bro Femi",
		"lifetime_achievement": "Sis Nda",
	})

	// Missing header
	req := testutil.MakeRequest("GET", "/votes/status", nil, nil)
	w := httptest.NewRecorder()
	handler.Status(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	// Device with history gets its categories back, sorted
	req = testutil.MakeRequest("GET", "/votes/status", nil, map[string]string{
		"X-Device-ID": "device-status",
	})
	w = httptest.NewRecorder()
	handler.Status(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.VoteStatusResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.VotedCategories) != 2 ||
		resp.VotedCategories[0] != "hand_of_service" ||
		resp.VotedCategories[1] != "lifetime_achievement" {
		t.Errorf("unexpected voted categories: %v", resp.VotedCategories)
	}

	// Unseen device gets an empty list, not an error
	req = testutil.MakeRequest("GET", "/votes/status", nil, map[string]string{
		"X-Device-ID": "never-voted",
	})
	w = httptest.NewRecorder()
	handler.Status(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	testutil.AssertJSON(t, w, &resp)
	if len(resp.VotedCategories) != 0 {
		t.Errorf("expected no voted categories, got %v", resp.VotedCategories)
	}
}

func TestClearRequiresAdminKey(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVoteHandler(db, cfg)

	testutil.InsertTestVote(t, db, "device-clear-auth", map[string]string{"reserved": "Sis Wuraola"})

	tests := []struct {
		name           string
		headers        map[string]string
		expectedStatus int
	}{
		{"missing key", nil, http.StatusUnauthorized},
		{"wrong key", map[string]string{"X-Admin-Key": "nope"}, http.StatusUnauthorized},
		{"valid key", map[string]string{"X-Admin-Key": cfg.AdminKey}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("DELETE", "/votes", nil, tt.headers)
			w := httptest.NewRecorder()
			handler.Clear(w, req)
			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

// Clearing is idempotent: the second run deletes nothing and the tally
// afterwards is empty
func TestClearIdempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVoteHandler(db, cfg)

	testutil.InsertTestVote(t, db, "device-a", map[string]string{"lifetime_achievement": "Sis Nda"})
	testutil.InsertTestVote(t, db, "device-b", map[string]string{"lifetime_achievement": "Sis Nda"})

	clear := func() models.ClearVotesResponse {
		req := testutil.MakeRequest("DELETE", "/votes", nil, map[string]string{
			"X-Admin-Key": cfg.AdminKey,
		})
		w := httptest.NewRecorder()
		handler.Clear(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.ClearVotesResponse
		testutil.AssertJSON(t, w, &resp)
		return resp
	}

	if resp := clear(); resp.DeletedCount != 2 {
		t.Errorf("expected deleted_count 2, got %d", resp.DeletedCount)
	}
	if resp := clear(); resp.DeletedCount != 0 {
		t.Errorf("expected deleted_count 0 on second clear, got %d", resp.DeletedCount)
	}

	// Results after a clear are an empty tally
	req := testutil.MakeRequest("GET", "/votes/results", nil, nil)
	w := httptest.NewRecorder()
	handler.Results(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var results models.ResultsResponse
	testutil.AssertJSON(t, w, &results)

	if results.TotalVotes != 0 {
		t.Errorf("expected total_votes 0 after clear, got %d", results.TotalVotes)
	}
	for category, byNominee := range results.Results {
		if len(byNominee) != 0 {
			t.Errorf("category %s should be empty after clear, got %v", category, byNominee)
		}
	}

	// A cleared device can vote again: the dedup history is gone too
	req = testutil.MakeRequest("POST", "/votes", models.SubmitVotesRequest{
		DeviceID: "device-a",
		Votes:    map[string]string{"lifetime_achievement": "Sis Nobuhle"},
	}, nil)
	w = httptest.NewRecorder()
	handler.Submit(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)
}

func TestCategories(t *testing.T) {
	cfg := testutil.GetTestConfig()
	handler := NewVoteHandler(nil, cfg)

	req := testutil.MakeRequest("GET", "/categories", nil, nil)
	w := httptest.NewRecorder()
	handler.Categories(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.CategoriesResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Categories) != len(models.DefaultCategories) {
		t.Errorf("expected %d categories, got %d", len(models.DefaultCategories), len(resp.Categories))
	}
	if resp.Categories[0].ID != "lifetime_achievement" {
		t.Errorf("unexpected first category: %s", resp.Categories[0].ID)
	}
}
