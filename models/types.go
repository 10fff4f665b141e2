package models

import "time"

// Request types

// device_id comes from the client fingerprint; votes maps category id
// to the chosen nominee name
type SubmitVotesRequest struct {
	DeviceID string            `json:"device_id"`
	Votes    map[string]string `json:"votes"`
}

type IdentifyRequest struct {
	UserAgent           string `json:"user_agent"`
	Language            string `json:"language"`
	ColorDepth          int    `json:"color_depth"`
	ScreenWidth         int    `json:"screen_width"`
	ScreenHeight        int    `json:"screen_height"`
	TimezoneOffset      int    `json:"timezone_offset"`
	HardwareConcurrency int    `json:"hardware_concurrency"`
	Platform            string `json:"platform"`
	CanvasData          string `json:"canvas_data"`
}

// Response types

type SubmitVotesResponse struct {
	RecordID string `json:"record_id"`
	Message  string `json:"message"`
}

type ResultsResponse struct {
	Results      map[string]map[string]int `json:"results"`
	HighestVoted map[string]Leader         `json:"highest_voted"`
	TotalVotes   int                       `json:"total_votes"`
}

type VoteStatusResponse struct {
	DeviceID        string   `json:"device_id"`
	VotedCategories []string `json:"voted_categories"`
}

type ClearVotesResponse struct {
	DeletedCount int64  `json:"deleted_count"`
	Message      string `json:"message"`
}

type IdentifyResponse struct {
	DeviceID string `json:"device_id"`
	Browser  string `json:"browser"`
	OS       string `json:"os"`
	Mobile   bool   `json:"mobile"`
}

type CategoriesResponse struct {
	Categories []Category `json:"categories"`
}

// Domain types

type VoteRecord struct {
	ID          string    `json:"id"`
	DeviceID    string    `json:"device_id"`
	SubmittedAt time.Time `json:"submitted_at"`
	IPHash      *string   `json:"-"` // Never expose in JSON
	UserAgent   *string   `json:"-"` // Never expose in JSON
}

type VoteChoice struct {
	Category string `json:"category"`
	Nominee  string `json:"nominee"`
}

// Leader is the front-runner of one category at query time
type Leader struct {
	Nominee string `json:"nominee"`
	Votes   int    `json:"votes"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
