package timedtext

import "testing"

func TestNormalizeCueText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "hello", want: "hello"},
		{name: "opening tag stripped", in: `<text start="0" dur="1">hello`, want: "hello"},
		{name: "inline markup stripped", in: "<i>quiet</i> words", want: "quiet words"},
		{name: "ampersand entity", in: "salt &amp; pepper", want: "salt & pepper"},
		{name: "general entities", in: "caf&#233; &quot;x&quot;", want: `café "x"`},
		{name: "double encoded stays literal", in: "&amp;lt;b&amp;gt;", want: "<b>"},
		{name: "dangling tag at end", in: "trailing <b", want: "trailing "},
	}
	for _, tt := range tests {
		if got := NormalizeCueText(tt.in); got != tt.want {
			t.Fatalf("%s: NormalizeCueText(%q)=%q, want %q", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestStripMarkup(t *testing.T) {
	if got := StripMarkup("<c.colorE5E5E5>word</c>"); got != "word" {
		t.Fatalf("StripMarkup=%q, want %q", got, "word")
	}
	if got := StripMarkup("no tags &amp; no decode"); got != "no tags &amp; no decode" {
		t.Fatalf("StripMarkup must not decode entities, got %q", got)
	}
}
