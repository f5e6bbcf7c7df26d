package fetcher

import (
	"strings"
	"testing"
)

func TestScanBalancedObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "flat", in: `{"a":1};var next=2`, want: `{"a":1}`},
		{name: "nested", in: `{"a":{"b":{"c":3}}}tail`, want: `{"a":{"b":{"c":3}}}`},
		{name: "braces in strings", in: `{"a":"}{","b":2}rest`, want: `{"a":"}{","b":2}`},
		{name: "escaped quote", in: `{"a":"say \"}\"","b":1}x`, want: `{"a":"say \"}\"","b":1}`},
		{name: "braces in single-quoted strings", in: `{a:'}{',b:2}rest`, want: `{a:'}{',b:2}`},
		{name: "double quote inside single-quoted string", in: `{a:'he said "}"',b:1}x`, want: `{a:'he said "}"',b:1}`},
	}
	for _, tt := range tests {
		got, err := scanBalancedObject(tt.in)
		if err != nil {
			t.Fatalf("%s: scanBalancedObject error = %v", tt.name, err)
		}
		if got != tt.want {
			t.Fatalf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestScanBalancedObject_Unbalanced(t *testing.T) {
	if _, err := scanBalancedObject(`{"a":{"b":1}`); err == nil {
		t.Fatal("expected error for unbalanced object")
	}
}

func TestExtractPlayerResponse_StrictJSON(t *testing.T) {
	page := `<script>var ytInitialPlayerResponse = {"videoDetails":{"videoId":"jNQXAC9IVRw","title":"Me at the zoo"}};</script>`

	resp, err := extractPlayerResponse(page)
	if err != nil {
		t.Fatalf("extractPlayerResponse error = %v", err)
	}
	if resp.VideoDetails.Title != "Me at the zoo" {
		t.Fatalf("title=%q", resp.VideoDetails.Title)
	}
}

func TestExtractPlayerResponse_JSLiteralFallback(t *testing.T) {
	// Unquoted keys defeat strict JSON but evaluate as a JS object literal.
	page := `<script>ytInitialPlayerResponse = {videoDetails:{videoId:"jNQXAC9IVRw",title:"Me at the zoo"}};</script>`

	resp, err := extractPlayerResponse(page)
	if err != nil {
		t.Fatalf("extractPlayerResponse error = %v", err)
	}
	if resp.VideoDetails.VideoID != "jNQXAC9IVRw" {
		t.Fatalf("videoId=%q", resp.VideoDetails.VideoID)
	}
}

func TestExtractPlayerResponse_SingleQuotedLiteral(t *testing.T) {
	// Single-quoted JS strings may themselves contain braces.
	page := `<script>ytInitialPlayerResponse = {videoDetails:{videoId:'jNQXAC9IVRw',title:'Zoo {part 1}'}};</script>`

	resp, err := extractPlayerResponse(page)
	if err != nil {
		t.Fatalf("extractPlayerResponse error = %v", err)
	}
	if resp.VideoDetails.Title != "Zoo {part 1}" {
		t.Fatalf("title=%q, want %q", resp.VideoDetails.Title, "Zoo {part 1}")
	}
}

func TestExtractPlayerResponse_MissingMarker(t *testing.T) {
	if _, err := extractPlayerResponse("<html><body>nothing here</body></html>"); err == nil {
		t.Fatal("expected error when marker is absent")
	}
}

func TestPageTitle(t *testing.T) {
	page := `<html><head><title>  Me at the zoo - YouTube  </title></head><body></body></html>`
	if got := pageTitle(page); got != "Me at the zoo" {
		t.Fatalf("pageTitle=%q, want %q", got, "Me at the zoo")
	}
	if got := pageTitle("<html></html>"); got != "" {
		t.Fatalf("pageTitle on empty doc=%q, want empty", got)
	}
}

func TestPageTitle_KeepsNonSuffixDash(t *testing.T) {
	page := `<html><head><title>Tom - Jerry</title></head></html>`
	if got := pageTitle(page); !strings.Contains(got, "Jerry") {
		t.Fatalf("pageTitle=%q, suffix trim removed too much", got)
	}
}
