package transcriptpanel

import "strings"

// The upstream document's shape varies across requests and experiments.
// Each probe is a pure function trying one known structural path to the
// transcript continuation token; probes run in priority order and the first
// hit wins. No hit is an expected outcome, not a failure.

type nextResponse struct {
	EngagementPanels []engagementPanel `json:"engagementPanels"`
}

type engagementPanel struct {
	EngagementPanelSectionListRenderer *engagementPanelSection `json:"engagementPanelSectionListRenderer"`
}

type engagementPanelSection struct {
	PanelIdentifier string        `json:"panelIdentifier"`
	TargetID        string        `json:"targetId"`
	Content         *panelContent `json:"content"`
}

type panelContent struct {
	ContinuationItemRenderer *continuationItemRenderer `json:"continuationItemRenderer"`
	SectionListRenderer      *panelSectionList         `json:"sectionListRenderer"`
}

type panelSectionList struct {
	Contents []panelContent `json:"contents"`
}

type continuationItemRenderer struct {
	ContinuationEndpoint *continuationEndpoint `json:"continuationEndpoint"`
}

type continuationEndpoint struct {
	GetTranscriptEndpoint *paramsEndpoint      `json:"getTranscriptEndpoint"`
	ContinuationCommand   *continuationCommand `json:"continuationCommand"`
}

type paramsEndpoint struct {
	Params string `json:"params"`
}

type continuationCommand struct {
	Token string `json:"token"`
}

const searchableTranscriptPanelID = "engagement-panel-searchable-transcript"

type probe func(doc *nextResponse) string

var continuationProbes = []probe{
	probeSearchablePanelParams,
	probeSearchablePanelToken,
	probeAnyTranscriptPanel,
}

// findContinuation returns the first continuation token any probe locates,
// or empty when the document exposes no transcript panel.
func findContinuation(doc *nextResponse) string {
	for _, p := range continuationProbes {
		if token := p(doc); token != "" {
			return token
		}
	}
	return ""
}

func probeSearchablePanelParams(doc *nextResponse) string {
	section := panelByIdentifier(doc, searchableTranscriptPanelID)
	if section == nil {
		return ""
	}
	return paramsFromContent(section.Content, false)
}

func probeSearchablePanelToken(doc *nextResponse) string {
	section := panelByIdentifier(doc, searchableTranscriptPanelID)
	if section == nil {
		return ""
	}
	return paramsFromContent(section.Content, true)
}

// probeAnyTranscriptPanel relaxes the identifier match: some experiments
// rename the panel but keep "transcript" in the identifier or target id.
func probeAnyTranscriptPanel(doc *nextResponse) string {
	if doc == nil {
		return ""
	}
	for i := range doc.EngagementPanels {
		section := doc.EngagementPanels[i].EngagementPanelSectionListRenderer
		if section == nil {
			continue
		}
		name := section.PanelIdentifier + " " + section.TargetID
		if !strings.Contains(strings.ToLower(name), "transcript") {
			continue
		}
		if token := paramsFromContent(section.Content, false); token != "" {
			return token
		}
		if token := paramsFromContent(section.Content, true); token != "" {
			return token
		}
	}
	return ""
}

func panelByIdentifier(doc *nextResponse, id string) *engagementPanelSection {
	if doc == nil {
		return nil
	}
	for i := range doc.EngagementPanels {
		section := doc.EngagementPanels[i].EngagementPanelSectionListRenderer
		if section == nil {
			continue
		}
		if section.PanelIdentifier == id {
			return section
		}
	}
	return nil
}

// paramsFromContent walks a panel content node, descending one level of
// nested section lists, and pulls either the getTranscriptEndpoint params or
// the raw continuation command token.
func paramsFromContent(content *panelContent, wantToken bool) string {
	if content == nil {
		return ""
	}
	if item := content.ContinuationItemRenderer; item != nil && item.ContinuationEndpoint != nil {
		endpoint := item.ContinuationEndpoint
		if wantToken {
			if endpoint.ContinuationCommand != nil && endpoint.ContinuationCommand.Token != "" {
				return endpoint.ContinuationCommand.Token
			}
		} else if endpoint.GetTranscriptEndpoint != nil && endpoint.GetTranscriptEndpoint.Params != "" {
			return endpoint.GetTranscriptEndpoint.Params
		}
	}
	if content.SectionListRenderer != nil {
		for i := range content.SectionListRenderer.Contents {
			if token := paramsFromContent(&content.SectionListRenderer.Contents[i], wantToken); token != "" {
				return token
			}
		}
	}
	return ""
}
