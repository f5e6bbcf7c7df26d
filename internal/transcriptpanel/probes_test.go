package transcriptpanel

import (
	"encoding/json"
	"testing"
)

func decodeNext(t *testing.T, raw string) *nextResponse {
	t.Helper()
	var doc nextResponse
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}
	return &doc
}

func TestFindContinuation_GetTranscriptParams(t *testing.T) {
	doc := decodeNext(t, `{
		"engagementPanels": [
			{"engagementPanelSectionListRenderer": {"panelIdentifier": "engagement-panel-comments"}},
			{"engagementPanelSectionListRenderer": {
				"panelIdentifier": "engagement-panel-searchable-transcript",
				"content": {"continuationItemRenderer": {"continuationEndpoint": {
					"getTranscriptEndpoint": {"params": "PARAMS_TOKEN"}
				}}}
			}}
		]
	}`)

	if got := findContinuation(doc); got != "PARAMS_TOKEN" {
		t.Fatalf("findContinuation=%q, want PARAMS_TOKEN", got)
	}
}

func TestFindContinuation_ContinuationCommandToken(t *testing.T) {
	doc := decodeNext(t, `{
		"engagementPanels": [
			{"engagementPanelSectionListRenderer": {
				"panelIdentifier": "engagement-panel-searchable-transcript",
				"content": {"continuationItemRenderer": {"continuationEndpoint": {
					"continuationCommand": {"token": "RAW_TOKEN"}
				}}}
			}}
		]
	}`)

	if got := findContinuation(doc); got != "RAW_TOKEN" {
		t.Fatalf("findContinuation=%q, want RAW_TOKEN", got)
	}
}

func TestFindContinuation_NestedSectionList(t *testing.T) {
	doc := decodeNext(t, `{
		"engagementPanels": [
			{"engagementPanelSectionListRenderer": {
				"panelIdentifier": "engagement-panel-searchable-transcript",
				"content": {"sectionListRenderer": {"contents": [
					{"continuationItemRenderer": {"continuationEndpoint": {
						"getTranscriptEndpoint": {"params": "NESTED_TOKEN"}
					}}}
				]}}
			}}
		]
	}`)

	if got := findContinuation(doc); got != "NESTED_TOKEN" {
		t.Fatalf("findContinuation=%q, want NESTED_TOKEN", got)
	}
}

func TestFindContinuation_RelaxedIdentifier(t *testing.T) {
	doc := decodeNext(t, `{
		"engagementPanels": [
			{"engagementPanelSectionListRenderer": {
				"panelIdentifier": "engagement-panel-video-transcript-v2",
				"content": {"continuationItemRenderer": {"continuationEndpoint": {
					"getTranscriptEndpoint": {"params": "RENAMED_PANEL"}
				}}}
			}}
		]
	}`)

	if got := findContinuation(doc); got != "RENAMED_PANEL" {
		t.Fatalf("findContinuation=%q, want RENAMED_PANEL", got)
	}
}

func TestFindContinuation_NoPanel(t *testing.T) {
	doc := decodeNext(t, `{"engagementPanels": []}`)
	if got := findContinuation(doc); got != "" {
		t.Fatalf("findContinuation=%q, want empty", got)
	}
	if got := findContinuation(nil); got != "" {
		t.Fatalf("findContinuation(nil)=%q, want empty", got)
	}
}
