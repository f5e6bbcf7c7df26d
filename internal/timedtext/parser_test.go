package timedtext

import "testing"

func TestParse_WellFormedCuesInOrder(t *testing.T) {
	xml := `<?xml version="1.0" encoding="utf-8" ?><transcript>` +
		`<text start="0.08" dur="1.92">first</text>` +
		`<text start="2" dur="3.5">second</text>` +
		`<text start="5.5" dur="1">third</text>` +
		`</transcript>`

	cues := Parse(xml)
	if len(cues) != 3 {
		t.Fatalf("Parse returned %d cues, want 3", len(cues))
	}
	want := []Cue{
		{Start: 0.08, Dur: 1.92, Text: "first"},
		{Start: 2, Dur: 3.5, Text: "second"},
		{Start: 5.5, Dur: 1, Text: "third"},
	}
	for i, cue := range cues {
		if cue != want[i] {
			t.Fatalf("cue[%d]=%+v, want %+v", i, cue, want[i])
		}
	}
}

func TestParse_MalformedFragmentsDropped(t *testing.T) {
	xml := `<text start="0" dur="1">good one</text>` +
		`<text dur="1">no start</text>` +
		`<text start="2">no dur</text>` +
		`<text start="abc" dur="1">bad start</text>` +
		`<text start="3" dur="1">good two</text>`

	cues := Parse(xml)
	if len(cues) != 2 {
		t.Fatalf("Parse returned %d cues, want 2", len(cues))
	}
	if cues[0].Text != "good one" || cues[1].Text != "good two" {
		t.Fatalf("surviving cues = %q, %q", cues[0].Text, cues[1].Text)
	}
}

func TestParse_EntityAndMarkupNormalization(t *testing.T) {
	xml := `<text start="0" dur="1"><b>Hello &amp; world</b></text>`

	cues := Parse(xml)
	if len(cues) != 1 {
		t.Fatalf("Parse returned %d cues, want 1", len(cues))
	}
	if cues[0].Text != "Hello & world" {
		t.Fatalf("text=%q, want %q", cues[0].Text, "Hello & world")
	}
}

func TestParse_EmptyPayload(t *testing.T) {
	if cues := Parse(""); len(cues) != 0 {
		t.Fatalf("Parse(\"\") returned %d cues, want 0", len(cues))
	}
	if cues := Parse(`<?xml version="1.0"?><transcript></transcript>`); len(cues) != 0 {
		t.Fatalf("empty transcript returned %d cues, want 0", len(cues))
	}
}
