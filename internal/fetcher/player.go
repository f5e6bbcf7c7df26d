package fetcher

import (
	"context"
	"strings"

	"github.com/famomatic/ytcap/internal/innertube"
	"github.com/famomatic/ytcap/internal/transport"
	"github.com/famomatic/ytcap/internal/types"
)

// playerAPIStrategy calls the internal /player endpoint impersonating one
// client profile.
type playerAPIStrategy struct {
	session  *transport.Session
	resolver *innertube.APIKeyResolver
	profile  innertube.ClientProfile
}

func newPlayerAPIStrategy(session *transport.Session, resolver *innertube.APIKeyResolver, profile innertube.ClientProfile) *playerAPIStrategy {
	return &playerAPIStrategy{session: session, resolver: resolver, profile: profile}
}

func (s *playerAPIStrategy) Name() string    { return "player" }
func (s *playerAPIStrategy) Profile() string { return s.profile.ID }

func (s *playerAPIStrategy) TryFetch(ctx context.Context, videoID, hl string) (*VideoData, error) {
	ctx = types.WithProfileName(ctx, s.profile.ID)

	apiKey := s.resolver.Resolve(ctx, s.profile, videoID)
	url := innertube.EndpointURL(s.profile, "player", apiKey)
	req := innertube.NewPlayerRequest(s.profile, videoID, hl)
	headers := innertube.RequestHeaders(s.profile, videoID)
	if visitor := s.resolver.ResolveVisitorData(ctx, s.profile, videoID); visitor != "" {
		headers.Set("X-Goog-Visitor-Id", visitor)
	}

	var resp innertube.PlayerResponse
	if err := s.session.PostJSON(ctx, url, req, headers, &resp); err != nil {
		return nil, err
	}

	source := "player/" + s.profile.ID
	data := videoDataFromResponse(videoID, source, &resp)
	if !resp.PlayabilityStatus.IsOK() && resp.PlayabilityStatus.Status != "" {
		// Error-status payloads sometimes still carry metadata; hand the
		// thin result back so the engine can retain it as a candidate.
		data.Gated = true
		if strings.TrimSpace(data.Title) == "" && len(data.CaptionTracks) == 0 {
			return nil, &PlayabilityError{
				Profile: s.profile.ID,
				Status:  resp.PlayabilityStatus.Status,
				Reason:  resp.PlayabilityStatus.Reason,
			}
		}
	}
	return data, nil
}
