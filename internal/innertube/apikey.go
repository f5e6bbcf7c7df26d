package innertube

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/famomatic/ytcap/internal/transport"
)

var innertubeAPIKeyPattern = regexp.MustCompile(`(?i)["']INNERTUBE_API_KEY["']\s*:\s*["']([^"']+)["']`)
var visitorDataPattern = regexp.MustCompile(`(?i)["']VISITOR_DATA["']\s*:\s*["']([^"']+)["']`)

// DefaultAPIKeyTTL bounds how long a scraped key is trusted before the next
// call re-resolves it.
const DefaultAPIKeyTTL = 30 * time.Minute

type resolvedWatchData struct {
	APIKey      string
	VisitorData string
	fetchedAt   time.Time
}

// APIKeyResolver scrapes the INNERTUBE_API_KEY from a watch page and caches
// it per profile host with a fixed TTL. Concurrent refreshes are safe; the
// last write wins and both values are valid.
type APIKeyResolver struct {
	session *transport.Session
	ttl     time.Duration
	now     func() time.Time
	mu      sync.RWMutex
	cache   map[string]resolvedWatchData
}

func NewAPIKeyResolver(session *transport.Session) *APIKeyResolver {
	return &APIKeyResolver{
		session: session,
		ttl:     DefaultAPIKeyTTL,
		now:     time.Now,
		cache:   make(map[string]resolvedWatchData),
	}
}

// Resolve returns the API key to use for the profile. On any fetch failure
// the hardcoded fallback key is substituted rather than failing the request;
// a stale fallback degrades extraction quietly instead of stopping it.
func (r *APIKeyResolver) Resolve(ctx context.Context, profile ClientProfile, videoID string) string {
	fallback := strings.TrimSpace(profile.APIKey)
	if fallback == "" {
		fallback = defaultInnertubeAPIKey
	}
	if r == nil || r.session == nil {
		return fallback
	}

	cacheKey := profileCacheKey(profile)
	if cacheKey == "" {
		return fallback
	}

	if data, ok := r.get(cacheKey); ok {
		if strings.TrimSpace(data.APIKey) == "" {
			return fallback
		}
		return data.APIKey
	}

	resolved, err := r.fetchFromWatch(ctx, profile, videoID)
	if err != nil || strings.TrimSpace(resolved.APIKey) == "" {
		r.set(cacheKey, resolvedWatchData{APIKey: fallback, fetchedAt: r.now()})
		return fallback
	}

	r.set(cacheKey, resolved)
	return resolved.APIKey
}

// ResolveVisitorData returns the visitor token scraped alongside the key, or
// empty when none is cached and the watch fetch fails.
func (r *APIKeyResolver) ResolveVisitorData(ctx context.Context, profile ClientProfile, videoID string) string {
	if r == nil || r.session == nil {
		return ""
	}
	cacheKey := profileCacheKey(profile)
	if cacheKey == "" {
		return ""
	}
	if data, ok := r.get(cacheKey); ok {
		return strings.TrimSpace(data.VisitorData)
	}
	resolved, err := r.fetchFromWatch(ctx, profile, videoID)
	if err != nil {
		return ""
	}
	r.set(cacheKey, resolved)
	return strings.TrimSpace(resolved.VisitorData)
}

func (r *APIKeyResolver) get(key string) (resolvedWatchData, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	data, ok := r.cache[key]
	if !ok {
		return resolvedWatchData{}, false
	}
	if r.ttl > 0 && r.now().Sub(data.fetchedAt) > r.ttl {
		return resolvedWatchData{}, false
	}
	return data, true
}

func (r *APIKeyResolver) set(key string, data resolvedWatchData) {
	if data.fetchedAt.IsZero() {
		data.fetchedAt = r.now()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache[key] = data
}

func (r *APIKeyResolver) fetchFromWatch(ctx context.Context, profile ClientProfile, videoID string) (resolvedWatchData, error) {
	watchURL := WatchPageURL(profile, videoID)
	headers := make(http.Header)
	if profile.UserAgent != "" {
		headers.Set("User-Agent", profile.UserAgent)
	}
	headers.Set("Accept-Language", "en-US,en;q=0.9")

	body, err := r.session.GetBytes(ctx, watchURL, headers)
	if err != nil {
		return resolvedWatchData{}, err
	}

	resolved := resolvedWatchData{fetchedAt: r.now()}
	if match := innertubeAPIKeyPattern.FindSubmatch(body); len(match) >= 2 {
		resolved.APIKey = strings.TrimSpace(string(match[1]))
	}
	if match := visitorDataPattern.FindSubmatch(body); len(match) >= 2 {
		resolved.VisitorData = strings.TrimSpace(string(match[1]))
	}
	return resolved, nil
}

func profileCacheKey(profile ClientProfile) string {
	host := strings.ToLower(strings.TrimSpace(profile.Host))
	if host == "" {
		return ""
	}
	id := strings.ToLower(strings.TrimSpace(profile.ID))
	if id == "" {
		id = strings.ToLower(strings.TrimSpace(profile.Name))
	}
	return host + "|" + id
}

// WatchPageURL builds the watch (or embed/tv) page URL matching a profile's
// declared surface.
func WatchPageURL(profile ClientProfile, videoID string) string {
	id := strings.ToLower(strings.TrimSpace(profile.ID))
	videoID = strings.TrimSpace(videoID)
	switch {
	case id == "mweb":
		if videoID == "" {
			return "https://m.youtube.com"
		}
		return "https://m.youtube.com/watch?v=" + videoID
	case strings.HasPrefix(id, "web_embedded"):
		if videoID == "" {
			return "https://www.youtube.com/embed/"
		}
		return "https://www.youtube.com/embed/" + videoID + "?html5=1"
	case strings.HasPrefix(id, "tv"):
		return "https://www.youtube.com/tv"
	default:
		host := strings.TrimSpace(profile.Host)
		if host == "" {
			host = "www.youtube.com"
		}
		if videoID == "" {
			return "https://" + host
		}
		return "https://" + host + "/watch?v=" + videoID
	}
}
