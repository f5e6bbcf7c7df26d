package client

import (
	"errors"
	"testing"
)

func TestExtractVideoID_SupportedShapes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "jNQXAC9IVRw", want: "jNQXAC9IVRw"},
		{in: "https://www.youtube.com/watch?v=jNQXAC9IVRw", want: "jNQXAC9IVRw"},
		{in: "https://m.youtube.com/watch?v=jNQXAC9IVRw&pp=ygU=", want: "jNQXAC9IVRw"},
		{in: "https://youtu.be/jNQXAC9IVRw?t=1", want: "jNQXAC9IVRw"},
		{in: "youtube.com/watch?v=jNQXAC9IVRw", want: "jNQXAC9IVRw"},
		{in: "https://www.youtube.com/embed/jNQXAC9IVRw", want: "jNQXAC9IVRw"},
		{in: "https://www.youtube.com/shorts/jNQXAC9IVRw", want: "jNQXAC9IVRw"},
		{in: "https://www.youtube.com/live/jNQXAC9IVRw", want: "jNQXAC9IVRw"},
	}
	for _, tt := range tests {
		got, err := ExtractVideoID(tt.in)
		if err != nil {
			t.Fatalf("ExtractVideoID(%q) error=%v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ExtractVideoID(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractVideoID_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "short", "https://example.com/page", "not a video id"} {
		if _, err := ExtractVideoID(in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("ExtractVideoID(%q): expected ErrInvalidInput, got %v", in, err)
		}
	}
}
