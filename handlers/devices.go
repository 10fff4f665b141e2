// Copyright (c) 2026 Heavens Gate Events.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/mssola/useragent"

	"github.com/heavensgate/galavote/cliparse"
	"github.com/heavensgate/galavote/fingerprint"
	"github.com/heavensgate/galavote/middleware"
	"github.com/heavensgate/galavote/models"
)

type DeviceHandler struct {
	cfg cliparse.Config
}

func NewDeviceHandler(cfg cliparse.Config) *DeviceHandler {
	return &DeviceHandler{cfg: cfg}
}

// Identify handles POST /devices/identify
// Derives the device identifier server-side from posted environment
// signals, so non-browser clients get the same identifier a browser
// would compute. Nothing is persisted; the response also echoes parsed
// user-agent facts for diagnostics.
func (h *DeviceHandler) Identify(w http.ResponseWriter, r *http.Request) {
	var req models.IdentifyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	sig := fingerprint.Signals{
		UserAgent:           req.UserAgent,
		Language:            req.Language,
		ColorDepth:          req.ColorDepth,
		ScreenWidth:         req.ScreenWidth,
		ScreenHeight:        req.ScreenHeight,
		TimezoneOffset:      req.TimezoneOffset,
		HardwareConcurrency: req.HardwareConcurrency,
		Platform:            req.Platform,
		CanvasData:          req.CanvasData,
	}
	if sig.UserAgent == "" {
		sig.UserAgent = r.UserAgent()
	}

	ua := useragent.New(sig.UserAgent)
	browser, _ := ua.Browser()

	middleware.JSONResponse(w, http.StatusOK, models.IdentifyResponse{
		DeviceID: fingerprint.Derive(sig),
		Browser:  browser,
		OS:       ua.OS(),
		Mobile:   ua.Mobile(),
	})
}
