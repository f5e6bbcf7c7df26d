package types

import "errors"

var (
	// ErrVideoUnavailable indicates that the video is unavailable (deleted, private, etc.).
	ErrVideoUnavailable = errors.New("video unavailable")

	// ErrLoginRequired indicates that the video requires login to view (e.g. premium content).
	ErrLoginRequired = errors.New("login required")

	// ErrBotCheck indicates the upstream answered with an anti-automation gate.
	ErrBotCheck = errors.New("bot check")

	// ErrNoProfilesAvailable indicates that no client profiles were able to satisfy the request.
	ErrNoProfilesAvailable = errors.New("no client profiles available")
)
