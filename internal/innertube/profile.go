package innertube

import "net/http"

// ClientProfile declares one upstream client impersonation identity. The
// upstream serves different player data depending on which client it
// believes is asking, so profiles are tried in order until one yields
// usable caption data.
type ClientProfile struct {
	// ID is the registry alias used for ordering and diagnostics
	// (e.g. "web_embedded"), distinct from the Innertube clientName
	// ("WEB_EMBEDDED_PLAYER").
	ID              string
	Name            string
	Version         string
	APIKey          string
	UserAgent       string
	ContextNameID   int
	SupportsCookies bool
	Host            string
	Headers         http.Header
	Screen          string // e.g. "EMBED"
}

type Registry interface {
	Get(name string) (ClientProfile, bool)
	All() []ClientProfile
}
