// Package fetcher orchestrates the acquisition strategies that turn a video
// ID into caption track lists and basic metadata, with ordered fallback
// across strategies and client impersonation profiles.
package fetcher

import (
	"context"
	"strings"

	"github.com/famomatic/ytcap/internal/innertube"
	"github.com/famomatic/ytcap/internal/tracks"
)

// VideoData is the normalized result of one acquisition attempt.
type VideoData struct {
	VideoID       string
	Title         string
	Description   string
	CaptionTracks []tracks.Track
	// Gated marks a payload the upstream answered with an error status
	// (login wall, region lock). Metadata may still be usable.
	Gated bool
	// Source names the strategy/profile that produced this payload.
	Source string
}

// classification of one attempt outcome.
type classification int

const (
	// classValid: identifiable video/caption data; stop and return.
	classValid classification = iota
	// classInsufficient: the call succeeded but the payload is near-empty
	// or error-status; retained as a last-resort candidate.
	classInsufficient
)

// Strategy is one way of acquiring video data. Implementations return an
// error only when the request itself failed; a succeeded-but-thin payload is
// returned as data and classified by the engine.
type Strategy interface {
	Name() string
	Profile() string
	TryFetch(ctx context.Context, videoID, hl string) (*VideoData, error)
}

func classify(d *VideoData) classification {
	if d == nil {
		return classInsufficient
	}
	if len(d.CaptionTracks) > 0 {
		return classValid
	}
	if !d.Gated && strings.TrimSpace(d.Title) != "" {
		return classValid
	}
	return classInsufficient
}

// candidateRank orders retained insufficient payloads; higher is better.
func candidateRank(d *VideoData) int {
	if d == nil {
		return -1
	}
	rank := 0
	if strings.TrimSpace(d.Title) != "" {
		rank += 2
	}
	if strings.TrimSpace(d.Description) != "" {
		rank++
	}
	return rank
}

func tracksFromResponse(resp *innertube.PlayerResponse) []tracks.Track {
	raw := resp.Tracks()
	if len(raw) == 0 {
		return nil
	}
	out := make([]tracks.Track, 0, len(raw))
	for _, t := range raw {
		if strings.TrimSpace(t.BaseURL) == "" {
			continue
		}
		out = append(out, tracks.Track{
			BaseURL:      t.BaseURL,
			LanguageCode: t.LanguageCode,
			VssID:        t.VssID,
			Name:         t.Name.Label(),
			Kind:         t.Kind,
		})
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func videoDataFromResponse(videoID, source string, resp *innertube.PlayerResponse) *VideoData {
	micro := resp.Microformat.PlayerMicroformatRenderer
	return &VideoData{
		VideoID: firstNonEmpty(resp.VideoDetails.VideoID, videoID),
		Title:   firstNonEmpty(resp.VideoDetails.Title, micro.Title.SimpleText),
		Description: firstNonEmpty(
			resp.VideoDetails.ShortDescription,
			micro.Description.SimpleText,
		),
		CaptionTracks: tracksFromResponse(resp),
		Source:        source,
	}
}
