package client

import (
	"net/http"
	"time"

	"github.com/famomatic/ytcap/internal/transport"
)

// Config holds configuration for the caption client.
type Config struct {
	// HTTPClient is the client used for making requests.
	// If nil, a client is derived from ProxyURL (or http.DefaultClient).
	HTTPClient *http.Client

	// ProxyURL is the optional proxy URL to use for requests.
	// If HTTPClient is provided, this field is ignored.
	ProxyURL string

	// RequestTimeout bounds each public API call when the caller's context
	// carries no deadline. Zero disables the default bound.
	RequestTimeout time.Duration

	// PerRequestTimeout bounds each individual upstream attempt.
	PerRequestTimeout time.Duration

	// MaxRetries bounds retry attempts per upstream call (0 disables retry).
	MaxRetries int

	// InitialBackoff is the first retry delay. Package default when zero.
	InitialBackoff time.Duration

	// MaxBackoff caps the retry delay. Package default when zero.
	MaxBackoff time.Duration

	// RequestsPerSecond paces outbound calls; zero disables pacing.
	RequestsPerSecond float64

	// Burst is the limiter burst size when pacing is enabled.
	Burst int

	// Language is the default caption language (BCP-47 code) used when a
	// call does not specify one. Defaults to "en".
	Language string

	// BestEffortLanguage substitutes the first advertised track when no
	// track matches the requested language. When false, a language miss
	// yields an empty cue list.
	BestEffortLanguage bool

	// ClientOverrides sets the impersonation profile trial order
	// (e.g. "web", "ios", "android"). If empty, package defaults are used.
	ClientOverrides []string

	// ClientSkip removes profiles from the trial order by name.
	ClientSkip []string

	// Logger receives non-fatal diagnostics. Nil disables logging.
	Logger Logger
}

func (c Config) toTransportConfig() transport.Config {
	return transport.Config{
		MaxRetries:        c.MaxRetries,
		InitialBackoff:    c.InitialBackoff,
		MaxBackoff:        c.MaxBackoff,
		PerRequestTimeout: c.PerRequestTimeout,
		RequestsPerSecond: c.RequestsPerSecond,
		Burst:             c.Burst,
	}
}

func (c Config) language(lang string) string {
	if lang != "" {
		return lang
	}
	if c.Language != "" {
		return c.Language
	}
	return "en"
}
