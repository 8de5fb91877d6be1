// Package constant defines immutable application-level identifiers and upstream wire constants.
package constant

import "time"

const (
	// Bilihot is the canonical application identifier used for filesystem paths and CLI branding.
	Bilihot = "bilihot"

	// Version is the current application semantic version string.
	Version = "0.1.0"
)

// Build metadata, overridden at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// Upstream request identity. Bilibili rejects default client identifiers.
const (
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124 Safari/537.36"
	Referer   = "https://www.bilibili.com/"
)

// Upstream endpoints.
const (
	RankingURL   = "https://api.bilibili.com/x/web-interface/ranking/v2"
	PopularURL   = "https://api.bilibili.com/x/web-interface/popular"
	VideoPageURL = "https://www.bilibili.com/video/"
)

// RequestTimeout bounds a single upstream round trip.
const RequestTimeout = 15 * time.Second
