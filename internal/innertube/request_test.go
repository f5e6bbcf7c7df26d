package innertube

import (
	"strings"
	"testing"
)

func TestEndpointURL(t *testing.T) {
	profile := ClientProfile{Host: "www.youtube.com"}
	got := EndpointURL(profile, "player", "KEY123")
	want := "https://www.youtube.com/youtubei/v1/player?prettyPrint=false&key=KEY123"
	if got != want {
		t.Fatalf("EndpointURL=%q, want %q", got, want)
	}

	if got := EndpointURL(ClientProfile{}, "next", ""); got != "https://www.youtube.com/youtubei/v1/next?prettyPrint=false" {
		t.Fatalf("EndpointURL without key=%q", got)
	}
}

func TestNewContext_LanguageDefault(t *testing.T) {
	ctx := NewContext(WebClient, "")
	if ctx.Client.AcceptLanguage != "en" {
		t.Fatalf("hl=%q, want en", ctx.Client.AcceptLanguage)
	}
	ctx = NewContext(WebClient, "de")
	if ctx.Client.AcceptLanguage != "de" {
		t.Fatalf("hl=%q, want de", ctx.Client.AcceptLanguage)
	}
}

func TestNewContext_PlatformDefaults(t *testing.T) {
	android := NewContext(AndroidClient, "en")
	if android.Client.OsName != "Android" || android.Client.AndroidSdkVersion == 0 {
		t.Fatalf("android context=%+v", android.Client)
	}
	ios := NewContext(iOSClient, "en")
	if ios.Client.OsName != "iOS" || ios.Client.DeviceMake != "Apple" {
		t.Fatalf("ios context=%+v", ios.Client)
	}
}

func TestRequestHeaders(t *testing.T) {
	h := RequestHeaders(WebClient, "abc")
	if got := h.Get("Origin"); got != "https://www.youtube.com" {
		t.Fatalf("Origin=%q", got)
	}
	if got := h.Get("Referer"); !strings.HasSuffix(got, "watch?v=abc") {
		t.Fatalf("Referer=%q", got)
	}
	if h.Get("User-Agent") == "" {
		t.Fatal("User-Agent missing")
	}
}

func TestRegistryAliases(t *testing.T) {
	reg := NewRegistry()
	for _, alias := range []string{"web", "web_embedded", "mweb", "android", "ios", "tv"} {
		if _, ok := reg.Get(alias); !ok {
			t.Fatalf("registry missing alias %q", alias)
		}
	}
	if _, ok := reg.Get("vr"); ok {
		t.Fatal("registry returned unknown alias")
	}
}

func TestRegistryAll_RegistrationOrder(t *testing.T) {
	reg := NewRegistry()
	want := []string{"web", "mweb", "android", "ios", "web_embedded", "tv"}
	all := reg.All()
	if len(all) != len(want) {
		t.Fatalf("All returned %d profiles, want %d", len(all), len(want))
	}
	for i, p := range all {
		if p.ID != want[i] {
			t.Fatalf("All()[%d].ID=%q, want %q", i, p.ID, want[i])
		}
	}
}
