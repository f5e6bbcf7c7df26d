package client

import (
	"net/http"
	"net/url"
	"strings"
)

// defaultHTTPClient builds the client used when the caller supplies none.
// An explicit proxy URL wins over the standard proxy environment variables
// (HTTPS_PROXY and friends), which apply otherwise. An unparseable proxy
// URL is ignored rather than failing construction.
func defaultHTTPClient(proxyURL string) *http.Client {
	base, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return http.DefaultClient
	}
	transport := base.Clone()
	transport.Proxy = http.ProxyFromEnvironment

	if trimmed := strings.TrimSpace(proxyURL); trimmed != "" {
		parsed, err := url.Parse(trimmed)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return http.DefaultClient
		}
		transport.Proxy = http.ProxyURL(parsed)
	}
	return &http.Client{Transport: transport}
}
