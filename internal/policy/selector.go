// Package policy decides which impersonation profiles to try, and in what
// order, for a given video request.
package policy

import (
	"strings"

	"github.com/famomatic/ytcap/internal/innertube"
)

// Selector yields the ordered profile list for a video request.
type Selector interface {
	Select(videoID string) []innertube.ClientProfile
}

type defaultSelector struct {
	registry    innertube.Registry
	clientOrder []string
	clientSkip  map[string]struct{}
}

func NewSelector(registry innertube.Registry, clientOrder []string, clientSkip []string) Selector {
	skip := make(map[string]struct{}, len(clientSkip))
	for _, name := range clientSkip {
		normalized := strings.ToLower(strings.TrimSpace(name))
		if normalized == "" {
			continue
		}
		skip[normalized] = struct{}{}
	}
	return &defaultSelector{
		registry:    registry,
		clientOrder: clientOrder,
		clientSkip:  skip,
	}
}

func (s *defaultSelector) Select(videoID string) []innertube.ClientProfile {
	clients := s.clientOrder
	if len(clients) == 0 {
		clients = defaultClientOrder()
	}

	var profiles []innertube.ClientProfile
	seen := make(map[string]struct{}, len(clients))
	for _, name := range clients {
		normalized := strings.ToLower(strings.TrimSpace(name))
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		if _, skipped := s.clientSkip[normalized]; skipped {
			continue
		}
		seen[normalized] = struct{}{}
		if p, ok := s.registry.Get(normalized); ok {
			profiles = append(profiles, p)
		}
	}

	// If overrides were provided but all invalid, fall back to defaults.
	if len(profiles) == 0 && len(s.clientOrder) > 0 {
		for _, name := range defaultClientOrder() {
			if _, skipped := s.clientSkip[name]; skipped {
				continue
			}
			if p, ok := s.registry.Get(name); ok {
				profiles = append(profiles, p)
			}
		}
	}

	return profiles
}

func defaultClientOrder() []string {
	// Web first: it is the surface most likely to expose the caption
	// tracklist. Embedded and TV trail as gating workarounds.
	return []string{"web", "mweb", "android", "ios", "web_embedded", "tv"}
}
