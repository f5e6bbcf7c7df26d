package client

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveSubtitleOutputFormat(t *testing.T) {
	tests := []struct {
		in   string
		want SubtitleOutputFormat
	}{
		{in: "srt", want: SubtitleOutputFormatSRT},
		{in: "vtt", want: SubtitleOutputFormatVTT},
		{in: "best", want: SubtitleOutputFormatSRT},
		{in: "vtt/srt", want: SubtitleOutputFormatVTT},
		{in: "ass,vtt", want: SubtitleOutputFormatVTT},
		{in: "unknown", want: SubtitleOutputFormatSRT},
		{in: "", want: SubtitleOutputFormatSRT},
	}
	for _, tt := range tests {
		if got := ResolveSubtitleOutputFormat(tt.in); got != tt.want {
			t.Fatalf("ResolveSubtitleOutputFormat(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTranscriptFromCues_DropsUnparseable(t *testing.T) {
	cues := []CaptionCue{
		{Start: "0.08", Dur: "1.92", Text: "keep"},
		{Start: "oops", Dur: "1", Text: "drop"},
		{Start: "2", Dur: "also-bad", Text: "drop"},
	}
	transcript := TranscriptFromCues(cues)
	if len(transcript.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(transcript.Entries))
	}
	entry := transcript.Entries[0]
	if entry.StartSec != 0.08 || entry.DurSec != 1.92 || entry.Text != "keep" {
		t.Fatalf("entry=%+v", entry)
	}
}

func TestWriteTranscript_SRT(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sub.srt")
	err := WriteTranscript(out, &Transcript{
		Entries: []TranscriptEntry{
			{StartSec: 0.08, DurSec: 1.92, Text: "first"},
			{StartSec: 2, DurSec: 3.5, Text: "second"},
		},
	}, SubtitleOutputFormatSRT)
	if err != nil {
		t.Fatalf("WriteTranscript(SRT) error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "1\n00:00:00,080 --> 00:00:02,000\nfirst\n\n" +
		"2\n00:00:02,000 --> 00:00:05,500\nsecond\n\n"
	if string(data) != want {
		t.Fatalf("SRT output:\n%s\nwant:\n%s", data, want)
	}
}

func TestWriteTranscript_VTT(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sub.vtt")
	err := WriteTranscript(out, &Transcript{
		Entries: []TranscriptEntry{
			{StartSec: 0, DurSec: 1.5, Text: "only cue"},
		},
	}, SubtitleOutputFormatVTT)
	if err != nil {
		t.Fatalf("WriteTranscript(VTT) error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "WEBVTT\n\n00:00:00.000 --> 00:00:01.500\nonly cue\n\n"
	if string(data) != want {
		t.Fatalf("VTT output:\n%s\nwant:\n%s", data, want)
	}
}
