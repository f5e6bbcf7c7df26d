package innertube

import "testing"

func TestLangTextLabel(t *testing.T) {
	tests := []struct {
		name string
		in   LangText
		want string
	}{
		{name: "simpleText wins", in: LangText{SimpleText: "English", Runs: []TextRun{{Text: "ignored"}}}, want: "English"},
		{name: "single run", in: LangText{Runs: []TextRun{{Text: "French"}}}, want: "French"},
		{name: "multi run joined", in: LangText{Runs: []TextRun{{Text: "English "}, {Text: "(auto-"}, {Text: "generated)"}}}, want: "English (auto-generated)"},
		{name: "empty", in: LangText{}, want: ""},
	}
	for _, tt := range tests {
		if got := tt.in.Label(); got != tt.want {
			t.Fatalf("%s: Label()=%q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestPlayerResponseTracks_NilSafe(t *testing.T) {
	var resp *PlayerResponse
	if got := resp.Tracks(); got != nil {
		t.Fatalf("nil response Tracks()=%v, want nil", got)
	}
}
