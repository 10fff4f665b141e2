// Copyright (c) 2026 Heavens Gate Events.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package fingerprint

import (
	"strconv"
	"strings"
	"unicode/utf16"
)

// canvasPrefixLen bounds how much of the rendered-canvas data URL feeds
// the hash. Matches the browser generator.
const canvasPrefixLen = 100

// Signals are the ambient browser characteristics a client reports.
// Zero values are tolerated everywhere; derivation never fails.
type Signals struct {
	UserAgent           string
	Language            string
	ColorDepth          int
	ScreenWidth         int
	ScreenHeight        int
	TimezoneOffset      int
	HardwareConcurrency int
	Platform            string
	CanvasData          string
}

// Derive produces the device identifier for a set of signals. The same
// signals always produce the same identifier, and the output is
// bit-compatible with the hash browsers compute locally. It is a
// collision-tolerant heuristic, not an authentication credential: private
// browsing, cleared storage, or identical hardware can all defeat it.
func Derive(s Signals) string {
	h := hash32(s.canonical())

	// Math.abs semantics: widen before negating so MinInt32 stays exact
	abs := int64(h)
	if abs < 0 {
		abs = -abs
	}

	return strconv.FormatInt(abs, 36)
}

// canonical joins the signals with "|" in the order the browser
// generator uses. Absent string signals and a zero CPU count become
// "unknown" so the hash always has input.
func (s Signals) canonical() string {
	concurrency := "unknown"
	if s.HardwareConcurrency > 0 {
		concurrency = strconv.Itoa(s.HardwareConcurrency)
	}

	canvas := s.CanvasData
	if len(canvas) > canvasPrefixLen {
		canvas = canvas[:canvasPrefixLen]
	}

	parts := []string{
		orUnknown(s.UserAgent),
		orUnknown(s.Language),
		strconv.Itoa(s.ColorDepth),
		strconv.Itoa(s.ScreenWidth),
		strconv.Itoa(s.ScreenHeight),
		strconv.Itoa(s.TimezoneOffset),
		concurrency,
		orUnknown(s.Platform),
		orUnknown(canvas),
	}

	return strings.Join(parts, "|")
}

// hash32 is the rolling hash browsers compute: for each UTF-16 code unit,
// h = (h << 5) - h + unit, wrapped to 32-bit signed range.
func hash32(s string) int32 {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(u)
	}
	return h
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
