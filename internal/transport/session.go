// Package transport issues outbound upstream requests with bounded timeouts,
// exponential-backoff retry and client-side rate limiting.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"
)

// Config controls retry and pacing behavior for one session.
type Config struct {
	// MaxRetries bounds retry attempts per call (0 disables retry).
	MaxRetries int
	// InitialBackoff is the first retry delay. Defaults to 500ms.
	InitialBackoff time.Duration
	// MaxBackoff caps the retry delay. Defaults to 3s.
	MaxBackoff time.Duration
	// PerRequestTimeout bounds each individual attempt. Zero means the
	// caller's context deadline is the only bound.
	PerRequestTimeout time.Duration
	// RequestsPerSecond paces outbound calls; zero disables pacing.
	RequestsPerSecond float64
	// Burst is the limiter burst size when pacing is enabled.
	Burst int
}

// StatusError is a non-2xx upstream response.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream status=%d url=%s", e.StatusCode, e.URL)
}

// Session wraps an http.Client with the resilience layer shared by the
// credential fetch, the video-data fetch and the caption-payload fetch.
// Each call gets its own retry budget.
type Session struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	cfg        Config
}

func NewSession(httpClient *http.Client, cfg Config) *Session {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = 500 * time.Millisecond
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = 3 * time.Second
	}
	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}
	return &Session{httpClient: httpClient, limiter: limiter, cfg: cfg}
}

// GetBytes fetches rawURL and returns the response body.
func (s *Session) GetBytes(ctx context.Context, rawURL string, headers http.Header) ([]byte, error) {
	return s.do(ctx, http.MethodGet, rawURL, nil, headers)
}

// PostJSON posts payload as JSON to rawURL and unmarshals the response into out.
func (s *Session) PostJSON(ctx context.Context, rawURL string, payload any, headers http.Header, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	merged := cloneHeader(headers)
	if merged == nil {
		merged = make(http.Header)
	}
	merged.Set("Content-Type", "application/json")

	resp, err := s.do(ctx, http.MethodPost, rawURL, body, merged)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(resp, out)
}

func (s *Session) do(ctx context.Context, method, rawURL string, body []byte, headers http.Header) ([]byte, error) {
	var result []byte

	operation := func() error {
		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				return backoff.Permanent(err)
			}
		}

		attemptCtx := ctx
		cancel := func() {}
		if s.cfg.PerRequestTimeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, s.cfg.PerRequestTimeout)
		}
		defer cancel()

		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(attemptCtx, method, rawURL, reader)
		if err != nil {
			return backoff.Permanent(err)
		}
		for k, vals := range headers {
			for _, v := range vals {
				req.Header.Add(k, v)
			}
		}

		resp, err := s.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			statusErr := &StatusError{StatusCode: resp.StatusCode, URL: rawURL}
			if retryableStatus(resp.StatusCode) {
				return statusErr
			}
			return backoff.Permanent(statusErr)
		}

		result, err = io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		return nil
	}

	policy := backoff.WithContext(s.retryPolicy(), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Session) retryPolicy() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.cfg.InitialBackoff
	b.MaxInterval = s.cfg.MaxBackoff
	b.MaxElapsedTime = 0
	if s.cfg.MaxRetries <= 0 {
		return &backoff.StopBackOff{}
	}
	return backoff.WithMaxRetries(b, uint64(s.cfg.MaxRetries))
}

func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

func cloneHeader(h http.Header) http.Header {
	if h == nil {
		return nil
	}
	out := make(http.Header, len(h))
	for k, vals := range h {
		cp := make([]string, len(vals))
		copy(cp, vals)
		out[k] = cp
	}
	return out
}
