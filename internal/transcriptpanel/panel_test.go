package transcriptpanel

import (
	"encoding/json"
	"testing"
)

func decodeTranscript(t *testing.T, raw string) *transcriptResponse {
	t.Helper()
	var resp transcriptResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}
	return &resp
}

func TestCuesFromTranscript_Segments(t *testing.T) {
	resp := decodeTranscript(t, `{
		"actions": [{"updateEngagementPanelAction": {"content": {"transcriptRenderer": {
			"content": {"transcriptSearchPanelRenderer": {"body": {"transcriptSegmentListRenderer": {
				"initialSegments": [
					{"transcriptSegmentRenderer": {"startMs": "80", "endMs": "2000",
						"snippet": {"runs": [{"text": "first cue"}]}}},
					{"transcriptSegmentRenderer": {"startMs": "bogus", "endMs": "3000",
						"snippet": {"simpleText": "dropped"}}},
					{"transcriptSegmentRenderer": {"startMs": "2000", "endMs": "3500",
						"snippet": {"simpleText": "second cue"}}}
				]
			}}}}
		}}}}]
	}`)

	cues := cuesFromTranscript(resp)
	if len(cues) != 2 {
		t.Fatalf("got %d cues, want 2", len(cues))
	}
	if cues[0].Start != 0.08 || cues[0].Dur != 1.92 || cues[0].Text != "first cue" {
		t.Fatalf("cue[0]=%+v", cues[0])
	}
	if cues[1].Start != 2 || cues[1].Dur != 1.5 || cues[1].Text != "second cue" {
		t.Fatalf("cue[1]=%+v", cues[1])
	}
}

func TestCuesFromTranscript_CueGroups(t *testing.T) {
	resp := decodeTranscript(t, `{
		"actions": [{"updateEngagementPanelAction": {"content": {"transcriptRenderer": {
			"body": {"transcriptBodyRenderer": {"cueGroups": [
				{"transcriptCueGroupRenderer": {"cues": [
					{"transcriptCueRenderer": {"startOffsetMs": "0", "durationMs": "1200",
						"cue": {"simpleText": "older shape"}}}
				]}}
			]}}
		}}}}]
	}`)

	cues := cuesFromTranscript(resp)
	if len(cues) != 1 {
		t.Fatalf("got %d cues, want 1", len(cues))
	}
	if cues[0].Start != 0 || cues[0].Dur != 1.2 || cues[0].Text != "older shape" {
		t.Fatalf("cue[0]=%+v", cues[0])
	}
}

func TestCuesFromTranscript_Empty(t *testing.T) {
	if cues := cuesFromTranscript(&transcriptResponse{}); cues != nil {
		t.Fatalf("empty response yielded %d cues", len(cues))
	}
	if cues := cuesFromTranscript(nil); cues != nil {
		t.Fatal("nil response must yield nil")
	}
}

func TestParseMillis(t *testing.T) {
	tests := []struct {
		in     string
		want   int64
		wantOK bool
	}{
		{in: "1234", want: 1234, wantOK: true},
		{in: " 80 ", want: 80, wantOK: true},
		{in: "0", want: 0, wantOK: true},
		{in: "", wantOK: false},
		{in: "-5", wantOK: false},
		{in: "12.5", wantOK: false},
	}
	for _, tt := range tests {
		got, ok := parseMillis(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Fatalf("parseMillis(%q)=(%d,%v), want (%d,%v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
