package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dop251/goja"
	"golang.org/x/net/html"

	"github.com/famomatic/ytcap/internal/innertube"
	"github.com/famomatic/ytcap/internal/transport"
	"github.com/famomatic/ytcap/internal/types"
)

const playerResponseMarker = "ytInitialPlayerResponse"

// watchPageStrategy scrapes the public watch page for the embedded
// ytInitialPlayerResponse JSON.
type watchPageStrategy struct {
	session *transport.Session
	profile innertube.ClientProfile
}

func newWatchPageStrategy(session *transport.Session, profile innertube.ClientProfile) *watchPageStrategy {
	return &watchPageStrategy{session: session, profile: profile}
}

func (s *watchPageStrategy) Name() string    { return "watch" }
func (s *watchPageStrategy) Profile() string { return s.profile.ID }

func (s *watchPageStrategy) TryFetch(ctx context.Context, videoID, hl string) (*VideoData, error) {
	headers := make(http.Header)
	if s.profile.UserAgent != "" {
		headers.Set("User-Agent", s.profile.UserAgent)
	}
	headers.Set("Accept-Language", hl+","+hl+";q=0.9,en;q=0.8")

	body, err := s.session.GetBytes(ctx, innertube.WatchPageURL(s.profile, videoID), headers)
	if err != nil {
		return nil, err
	}
	page := string(body)

	if strings.Contains(page, `class="g-recaptcha"`) {
		return nil, types.ErrBotCheck
	}

	resp, err := extractPlayerResponse(page)
	if err != nil {
		// The page loaded but carried no player payload; salvage the
		// document title so the engine can retain a thin candidate.
		title := pageTitle(page)
		if title == "" {
			return nil, err
		}
		return &VideoData{
			VideoID: videoID,
			Title:   title,
			Gated:   true,
			Source:  "watch/" + s.profile.ID,
		}, nil
	}

	data := videoDataFromResponse(videoID, "watch/"+s.profile.ID, resp)
	if strings.TrimSpace(data.Title) == "" {
		data.Title = pageTitle(page)
	}
	if !resp.PlayabilityStatus.IsOK() && resp.PlayabilityStatus.Status != "" {
		data.Gated = true
	}
	return data, nil
}

// extractPlayerResponse locates the ytInitialPlayerResponse assignment and
// parses its object literal. Strict JSON is tried first; when the literal
// carries JS-isms the raw text is evaluated in a throwaway JS runtime and
// round-tripped through JSON.stringify.
func extractPlayerResponse(page string) (*innertube.PlayerResponse, error) {
	idx := strings.Index(page, playerResponseMarker)
	if idx < 0 {
		return nil, errors.New("player response marker not found in watch page")
	}
	rest := page[idx+len(playerResponseMarker):]
	start := strings.IndexByte(rest, '{')
	if start < 0 {
		return nil, errors.New("player response object not found")
	}
	raw, err := scanBalancedObject(rest[start:])
	if err != nil {
		return nil, err
	}

	var resp innertube.PlayerResponse
	if jsonErr := json.Unmarshal([]byte(raw), &resp); jsonErr == nil {
		return &resp, nil
	}

	vm := goja.New()
	value, err := vm.RunString("JSON.stringify(" + raw + ")")
	if err != nil {
		return nil, fmt.Errorf("player response literal did not evaluate: %w", err)
	}
	if err := json.Unmarshal([]byte(value.String()), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// scanBalancedObject returns the prefix of s forming one balanced {...}
// object, skipping braces inside string literals. JS object literals may
// quote strings with either " or ', so both delimiters are tracked.
func scanBalancedObject(s string) (string, error) {
	depth := 0
	var quote byte
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[:i+1], nil
			}
		}
	}
	return "", errors.New("unbalanced player response object")
}

// pageTitle pulls the document <title>, trimming the site suffix.
func pageTitle(page string) string {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return ""
	}
	var title string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "title" && n.FirstChild != nil {
			title = n.FirstChild.Data
			return
		}
		for c := n.FirstChild; c != nil && title == ""; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	title = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(title), "- YouTube"))
	return title
}
