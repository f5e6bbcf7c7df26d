package client

import "errors"

var (
	// ErrInvalidInput indicates malformed input (not a video ID/url).
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnavailable indicates video is unavailable.
	ErrUnavailable = errors.New("video unavailable")
	// ErrLoginRequired indicates an authenticated session is required.
	ErrLoginRequired = errors.New("login required")
	// ErrBotCheck indicates the upstream served an anti-automation gate.
	ErrBotCheck = errors.New("bot check")
	// ErrAllStrategiesFailed indicates fallback attempts all failed.
	ErrAllStrategiesFailed = errors.New("all strategies failed")
)

// AttemptDetail describes one failed acquisition attempt.
type AttemptDetail struct {
	Strategy string
	Profile  string
	Reason   string
}

// AllStrategiesFailedError carries per-attempt detail when every acquisition
// path was exhausted.
type AllStrategiesFailedError struct {
	Attempts []AttemptDetail
}

func (e *AllStrategiesFailedError) Error() string {
	return ErrAllStrategiesFailed.Error()
}

func (e *AllStrategiesFailedError) Unwrap() error {
	return ErrAllStrategiesFailed
}
