package client

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/famomatic/ytcap/internal/fetcher"
	"github.com/famomatic/ytcap/internal/innertube"
	"github.com/famomatic/ytcap/internal/policy"
	"github.com/famomatic/ytcap/internal/timedtext"
	"github.com/famomatic/ytcap/internal/tracks"
	"github.com/famomatic/ytcap/internal/transcriptpanel"
	"github.com/famomatic/ytcap/internal/transport"
	"github.com/famomatic/ytcap/internal/types"
)

// Client is the high-level caption extraction client.
type Client struct {
	config   Config
	session  *transport.Session
	resolver *innertube.APIKeyResolver
	engine   *fetcher.Engine
	panel    *transcriptpanel.Extractor
	logger   Logger
}

// New creates a new caption client.
func New(config Config) *Client {
	return NewClient(config)
}

// NewClient creates a new caption client.
func NewClient(config Config) *Client {
	if config.HTTPClient == nil {
		config.HTTPClient = defaultHTTPClient(config.ProxyURL)
	}
	logger := config.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	session := transport.NewSession(config.HTTPClient, config.toTransportConfig())
	resolver := innertube.NewAPIKeyResolver(session)
	registry := innertube.NewRegistry()
	selector := policy.NewSelector(registry, config.ClientOverrides, config.ClientSkip)
	engine := fetcher.NewEngine(selector, session, resolver, logger)

	return &Client{
		config:   config,
		session:  session,
		resolver: resolver,
		engine:   engine,
		panel:    transcriptpanel.NewExtractor(session, resolver, innertube.WebClient),
		logger:   logger,
	}
}

// GetSubtitles fetches the caption cues for a video in the requested
// language. A video with no captions at all, or with no track in the
// requested language, yields an empty slice, not an error.
func (c *Client) GetSubtitles(ctx context.Context, input, lang string) ([]CaptionCue, error) {
	ctx, cancel := withDefaultTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	videoID, err := normalizeVideoID(input)
	if err != nil {
		return nil, err
	}
	lang = c.config.language(lang)

	data, err := c.engine.Fetch(ctx, videoID, lang)
	if err != nil {
		return nil, mapError(err)
	}
	return c.subtitlesFromData(ctx, data, lang)
}

// GetVideoDetails fetches video metadata plus the caption cues for the
// requested language. Missing title or description come back as the
// sentinel strings, never empty.
func (c *Client) GetVideoDetails(ctx context.Context, input, lang string) (*VideoDetails, error) {
	ctx, cancel := withDefaultTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	videoID, err := normalizeVideoID(input)
	if err != nil {
		return nil, err
	}
	lang = c.config.language(lang)

	data, err := c.engine.Fetch(ctx, videoID, lang)
	if err != nil {
		return nil, mapError(err)
	}

	subtitles, err := c.subtitlesFromData(ctx, data, lang)
	if err != nil {
		// Details remain useful without cues; log and carry on empty.
		c.logger.Warnf("subtitle fetch failed for video=%s: %v", videoID, err)
		subtitles = nil
	}
	if subtitles == nil {
		subtitles = []CaptionCue{}
	}

	details := &VideoDetails{
		ID:          firstNonEmpty(data.VideoID, videoID),
		Title:       firstNonEmpty(data.Title, NoTitleFound),
		Description: firstNonEmpty(data.Description, NoDescriptionFound),
		Subtitles:   subtitles,
		Tracks:      trackInfos(data.CaptionTracks),
	}
	return details, nil
}

// ListTracks returns the caption tracks a video advertises, without
// fetching any cue payload.
func (c *Client) ListTracks(ctx context.Context, input string) ([]TrackInfo, error) {
	ctx, cancel := withDefaultTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	videoID, err := normalizeVideoID(input)
	if err != nil {
		return nil, err
	}

	data, err := c.engine.Fetch(ctx, videoID, c.config.language(""))
	if err != nil {
		return nil, mapError(err)
	}
	return trackInfos(data.CaptionTracks), nil
}

// subtitlesFromData selects a track and fetches its cues. The timedtext XML
// payload is the primary source; json3 is retried when the XML comes back
// empty, and the transcript panel is the last resort when the video
// advertises no tracks at all. A tracklist with no match for the requested
// language is an empty result unless BestEffortLanguage is set.
func (c *Client) subtitlesFromData(ctx context.Context, data *fetcher.VideoData, lang string) ([]CaptionCue, error) {
	if len(data.CaptionTracks) == 0 {
		cues, err := c.transcriptPanelCues(ctx, data.VideoID, lang)
		if err != nil {
			// No tracklist and no panel still means "no captions", not failure.
			c.logger.Debugf("transcript panel probe failed for video=%s: %v", data.VideoID, err)
			return []CaptionCue{}, nil
		}
		return captionCues(cues), nil
	}

	track := tracks.Select(data.CaptionTracks, lang, c.config.BestEffortLanguage)
	if track == nil {
		return []CaptionCue{}, nil
	}

	headers := captionRequestHeaders(data.VideoID)
	body, err := c.session.GetBytes(ctx, track.BaseURL, headers)
	if err != nil {
		return nil, mapError(err)
	}

	cues := timedtext.Parse(string(body))
	if len(cues) == 0 {
		cues = c.json3Cues(ctx, track.BaseURL, headers)
	}
	if len(cues) == 0 {
		panelCues, err := c.transcriptPanelCues(ctx, data.VideoID, lang)
		if err == nil {
			cues = panelCues
		} else {
			c.logger.Debugf("transcript panel fallback failed for video=%s: %v", data.VideoID, err)
		}
	}
	return captionCues(cues), nil
}

func (c *Client) json3Cues(ctx context.Context, baseURL string, headers http.Header) []timedtext.Cue {
	sep := "?"
	if strings.Contains(baseURL, "?") {
		sep = "&"
	}
	body, err := c.session.GetBytes(ctx, baseURL+sep+"fmt=json3", headers)
	if err != nil {
		c.logger.Debugf("json3 caption fetch failed: %v", err)
		return nil
	}
	cues, err := timedtext.ParseJSON3(body)
	if err != nil {
		c.logger.Debugf("json3 caption payload unparseable: %v", err)
		return nil
	}
	return cues
}

func (c *Client) transcriptPanelCues(ctx context.Context, videoID, lang string) ([]timedtext.Cue, error) {
	cues, err := c.panel.Extract(ctx, videoID, lang)
	if err != nil {
		return nil, mapError(err)
	}
	return cues, nil
}

func captionRequestHeaders(videoID string) http.Header {
	h := make(http.Header)
	h.Set("User-Agent", innertube.WebClient.UserAgent)
	h.Set("Origin", "https://www.youtube.com")
	if videoID != "" {
		h.Set("Referer", "https://www.youtube.com/watch?v="+videoID)
	}
	return h
}

func captionCues(cues []timedtext.Cue) []CaptionCue {
	out := make([]CaptionCue, 0, len(cues))
	for _, cue := range cues {
		out = append(out, CaptionCue{
			Start: formatSeconds(cue.Start),
			Dur:   formatSeconds(cue.Dur),
			Text:  cue.Text,
		})
	}
	return out
}

// formatSeconds renders a second offset the way the upstream payload carries
// it: shortest decimal form, no trailing zeros.
func formatSeconds(sec float64) string {
	return strconv.FormatFloat(sec, 'f', -1, 64)
}

func trackInfos(available []tracks.Track) []TrackInfo {
	if len(available) == 0 {
		return nil
	}
	out := make([]TrackInfo, 0, len(available))
	for _, t := range available {
		out = append(out, TrackInfo{
			LanguageCode:  t.LanguageCode,
			Name:          t.Name,
			VssID:         t.VssID,
			AutoGenerated: t.IsAutoGenerated(),
		})
	}
	return out
}

func normalizeVideoID(input string) (string, error) {
	id, err := ExtractVideoID(input)
	if err != nil {
		return "", ErrInvalidInput
	}
	return id, nil
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, types.ErrBotCheck):
		return ErrBotCheck
	case errors.Is(err, types.ErrLoginRequired):
		return ErrLoginRequired
	case errors.Is(err, types.ErrVideoUnavailable):
		return ErrUnavailable
	case errors.Is(err, types.ErrNoProfilesAvailable):
		return &AllStrategiesFailedError{}
	}

	var playabilityErr *fetcher.PlayabilityError
	if errors.As(err, &playabilityErr) {
		if playabilityErr.RequiresLogin() {
			return ErrLoginRequired
		}
		if playabilityErr.IsUnavailable() {
			return ErrUnavailable
		}
	}

	var exhaustedErr *fetcher.ExhaustedError
	if errors.As(err, &exhaustedErr) {
		attempts := make([]AttemptDetail, 0, len(exhaustedErr.Attempts))
		hasLoginRequired := false
		hasUnavailable := false
		for _, attempt := range exhaustedErr.Attempts {
			detail := AttemptDetail{
				Strategy: attempt.Strategy,
				Profile:  attempt.Profile,
			}
			if attempt.Err != nil {
				detail.Reason = attempt.Err.Error()
				if errors.As(attempt.Err, &playabilityErr) {
					if playabilityErr.RequiresLogin() {
						hasLoginRequired = true
					}
					if playabilityErr.IsUnavailable() {
						hasUnavailable = true
					}
				}
			}
			attempts = append(attempts, detail)
		}
		if hasLoginRequired {
			return ErrLoginRequired
		}
		if hasUnavailable {
			return ErrUnavailable
		}
		return &AllStrategiesFailedError{Attempts: attempts}
	}

	return err
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
