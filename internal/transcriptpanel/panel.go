// Package transcriptpanel extracts caption cues from the searchable
// transcript engagement panel, the fallback path for videos whose player
// response exposes no caption track list.
package transcriptpanel

import (
	"context"
	"strconv"
	"strings"

	"github.com/famomatic/ytcap/internal/innertube"
	"github.com/famomatic/ytcap/internal/timedtext"
	"github.com/famomatic/ytcap/internal/transport"
)

type transcriptResponse struct {
	Actions []transcriptAction `json:"actions"`
}

type transcriptAction struct {
	UpdateEngagementPanelAction *updatePanelAction `json:"updateEngagementPanelAction"`
}

type updatePanelAction struct {
	Content *transcriptContent `json:"content"`
}

type transcriptContent struct {
	TranscriptRenderer *transcriptRenderer `json:"transcriptRenderer"`
}

type transcriptRenderer struct {
	Content *transcriptRendererContent `json:"content"`
	Body    *transcriptBody            `json:"body"`
}

type transcriptRendererContent struct {
	TranscriptSearchPanelRenderer *searchPanelRenderer `json:"transcriptSearchPanelRenderer"`
}

type searchPanelRenderer struct {
	Body *searchPanelBody `json:"body"`
}

type searchPanelBody struct {
	TranscriptSegmentListRenderer *segmentListRenderer `json:"transcriptSegmentListRenderer"`
}

type segmentListRenderer struct {
	InitialSegments []segmentWrapper `json:"initialSegments"`
}

type segmentWrapper struct {
	TranscriptSegmentRenderer *segmentRenderer `json:"transcriptSegmentRenderer"`
}

type segmentRenderer struct {
	StartMs string            `json:"startMs"`
	EndMs   string            `json:"endMs"`
	Snippet innertube.LangText `json:"snippet"`
}

// transcriptBody is the older body shape, kept as an alternate segment
// source while both coexist upstream.
type transcriptBody struct {
	TranscriptBodyRenderer *transcriptBodyRenderer `json:"transcriptBodyRenderer"`
}

type transcriptBodyRenderer struct {
	CueGroups []cueGroup `json:"cueGroups"`
}

type cueGroup struct {
	TranscriptCueGroupRenderer *cueGroupRenderer `json:"transcriptCueGroupRenderer"`
}

type cueGroupRenderer struct {
	Cues []cueWrapper `json:"cues"`
}

type cueWrapper struct {
	TranscriptCueRenderer *cueRenderer `json:"transcriptCueRenderer"`
}

type cueRenderer struct {
	StartOffsetMs string             `json:"startOffsetMs"`
	DurationMs    string             `json:"durationMs"`
	Cue           innertube.LangText `json:"cue"`
}

// Extractor drives the /next + /get_transcript round trip.
type Extractor struct {
	session  *transport.Session
	resolver *innertube.APIKeyResolver
	profile  innertube.ClientProfile
}

func NewExtractor(session *transport.Session, resolver *innertube.APIKeyResolver, profile innertube.ClientProfile) *Extractor {
	return &Extractor{session: session, resolver: resolver, profile: profile}
}

// Extract locates the transcript panel continuation for videoID and fetches
// its timed segments. A missing continuation token yields an empty cue list
// and no error.
func (e *Extractor) Extract(ctx context.Context, videoID, hl string) ([]timedtext.Cue, error) {
	apiKey := e.resolver.Resolve(ctx, e.profile, videoID)
	headers := innertube.RequestHeaders(e.profile, videoID)

	var next nextResponse
	nextURL := innertube.EndpointURL(e.profile, "next", apiKey)
	if err := e.session.PostJSON(ctx, nextURL, innertube.NewNextRequest(e.profile, videoID, hl), headers, &next); err != nil {
		return nil, err
	}

	token := findContinuation(&next)
	if token == "" {
		return nil, nil
	}

	var transcript transcriptResponse
	transcriptURL := innertube.EndpointURL(e.profile, "get_transcript", apiKey)
	if err := e.session.PostJSON(ctx, transcriptURL, innertube.NewTranscriptRequest(e.profile, token, hl), headers, &transcript); err != nil {
		return nil, err
	}

	return cuesFromTranscript(&transcript), nil
}

func cuesFromTranscript(resp *transcriptResponse) []timedtext.Cue {
	renderer := transcriptRendererFrom(resp)
	if renderer == nil {
		return nil
	}
	if cues := cuesFromSegments(renderer); len(cues) > 0 {
		return cues
	}
	return cuesFromCueGroups(renderer)
}

func transcriptRendererFrom(resp *transcriptResponse) *transcriptRenderer {
	if resp == nil {
		return nil
	}
	for _, action := range resp.Actions {
		if action.UpdateEngagementPanelAction == nil {
			continue
		}
		content := action.UpdateEngagementPanelAction.Content
		if content == nil || content.TranscriptRenderer == nil {
			continue
		}
		return content.TranscriptRenderer
	}
	return nil
}

func cuesFromSegments(renderer *transcriptRenderer) []timedtext.Cue {
	if renderer.Content == nil ||
		renderer.Content.TranscriptSearchPanelRenderer == nil ||
		renderer.Content.TranscriptSearchPanelRenderer.Body == nil ||
		renderer.Content.TranscriptSearchPanelRenderer.Body.TranscriptSegmentListRenderer == nil {
		return nil
	}
	segments := renderer.Content.TranscriptSearchPanelRenderer.Body.TranscriptSegmentListRenderer.InitialSegments

	cues := make([]timedtext.Cue, 0, len(segments))
	for _, wrapper := range segments {
		seg := wrapper.TranscriptSegmentRenderer
		if seg == nil {
			continue
		}
		startMs, ok := parseMillis(seg.StartMs)
		if !ok {
			continue
		}
		endMs, ok := parseMillis(seg.EndMs)
		if !ok {
			continue
		}
		text := strings.TrimSpace(seg.Snippet.Label())
		if text == "" {
			continue
		}
		cues = append(cues, timedtext.Cue{
			Start: timedtext.MillisToSeconds(startMs),
			Dur:   timedtext.MillisToSeconds(endMs - startMs),
			Text:  text,
		})
	}
	return cues
}

func cuesFromCueGroups(renderer *transcriptRenderer) []timedtext.Cue {
	if renderer.Body == nil || renderer.Body.TranscriptBodyRenderer == nil {
		return nil
	}
	var cues []timedtext.Cue
	for _, group := range renderer.Body.TranscriptBodyRenderer.CueGroups {
		if group.TranscriptCueGroupRenderer == nil {
			continue
		}
		for _, wrapper := range group.TranscriptCueGroupRenderer.Cues {
			cue := wrapper.TranscriptCueRenderer
			if cue == nil {
				continue
			}
			startMs, ok := parseMillis(cue.StartOffsetMs)
			if !ok {
				continue
			}
			durMs, ok := parseMillis(cue.DurationMs)
			if !ok {
				continue
			}
			text := strings.TrimSpace(cue.Cue.Label())
			if text == "" {
				continue
			}
			cues = append(cues, timedtext.Cue{
				Start: timedtext.MillisToSeconds(startMs),
				Dur:   timedtext.MillisToSeconds(durMs),
				Text:  text,
			})
		}
	}
	return cues
}

func parseMillis(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || ms < 0 {
		return 0, false
	}
	return ms, true
}
