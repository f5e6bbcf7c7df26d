package fetcher

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/famomatic/ytcap/internal/innertube"
	"github.com/famomatic/ytcap/internal/transport"
)

// embedStrategy calls the public oEmbed metadata endpoint. It never yields
// caption tracks, so its result is at best a retained title/author candidate
// for the details path.
type embedStrategy struct {
	session *transport.Session
	baseURL string
}

type oembedResponse struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
}

func newEmbedStrategy(session *transport.Session) *embedStrategy {
	return &embedStrategy{session: session, baseURL: "https://www.youtube.com/oembed"}
}

func (s *embedStrategy) Name() string    { return "embed" }
func (s *embedStrategy) Profile() string { return "" }

func (s *embedStrategy) TryFetch(ctx context.Context, videoID, hl string) (*VideoData, error) {
	watch := "https://www.youtube.com/watch?v=" + url.QueryEscape(videoID)
	endpoint := s.baseURL + "?url=" + url.QueryEscape(watch) + "&format=json"

	headers := make(http.Header)
	headers.Set("User-Agent", innertube.WebClient.UserAgent)

	body, err := s.session.GetBytes(ctx, endpoint, headers)
	if err != nil {
		return nil, err
	}

	var resp oembedResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}

	return &VideoData{
		VideoID: videoID,
		Title:   resp.Title,
		Gated:   true, // metadata only, never caption-bearing
		Source:  "embed",
	}, nil
}
