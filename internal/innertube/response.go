package innertube

import "strings"

// PlayerResponse is the caption-relevant slice of the /player endpoint
// response. Any field may be absent or relocated between calls; everything
// here is best effort.
type PlayerResponse struct {
	PlayabilityStatus PlayabilityStatus `json:"playabilityStatus"`
	VideoDetails      VideoDetails      `json:"videoDetails"`
	Microformat       Microformat       `json:"microformat"`
	Captions          Captions          `json:"captions"`
}

type PlayabilityStatus struct {
	Status          string `json:"status"`
	Reason          string `json:"reason"`
	PlayableInEmbed bool   `json:"playableInEmbed"`
}

func (p *PlayabilityStatus) IsOK() bool {
	return p.Status == "OK"
}

type VideoDetails struct {
	VideoID          string   `json:"videoId"`
	Title            string   `json:"title"`
	LengthSeconds    string   `json:"lengthSeconds"`
	Keywords         []string `json:"keywords"`
	ChannelID        string   `json:"channelId"`
	ShortDescription string   `json:"shortDescription"`
	ViewCount        string   `json:"viewCount"`
	Author           string   `json:"author"`
	IsPrivate        bool     `json:"isPrivate"`
	IsLiveContent    bool     `json:"isLiveContent"`
}

type Microformat struct {
	PlayerMicroformatRenderer PlayerMicroformatRenderer `json:"playerMicroformatRenderer"`
}

type PlayerMicroformatRenderer struct {
	Title             SimpleText `json:"title"`
	Description       SimpleText `json:"description"`
	LengthSeconds     string     `json:"lengthSeconds"`
	ExternalChannelId string     `json:"externalChannelId"`
	ViewCount         string     `json:"viewCount"`
	Category          string     `json:"category"`
	PublishDate       string     `json:"publishDate"`
	OwnerChannelName  string     `json:"ownerChannelName"`
	UploadDate        string     `json:"uploadDate"`
}

type SimpleText struct {
	SimpleText string `json:"simpleText"`
}

type Captions struct {
	PlayerCaptionsTracklistRenderer PlayerCaptionsTracklistRenderer `json:"playerCaptionsTracklistRenderer"`
}

type PlayerCaptionsTracklistRenderer struct {
	CaptionTracks []CaptionTrack `json:"captionTracks"`
}

type CaptionTrack struct {
	BaseURL      string   `json:"baseUrl"`
	Name         LangText `json:"name"`
	VssID        string   `json:"vssId"`
	LanguageCode string   `json:"languageCode"`
	Kind         string   `json:"kind,omitempty"`
}

type LangText struct {
	SimpleText string    `json:"simpleText"`
	Runs       []TextRun `json:"runs"`
}

type TextRun struct {
	Text string `json:"text"`
}

// Label returns whichever text-bearing field is populated. Run-based text
// joins every run; snippets split styled words across runs.
func (t LangText) Label() string {
	if t.SimpleText != "" {
		return t.SimpleText
	}
	if len(t.Runs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, run := range t.Runs {
		b.WriteString(run.Text)
	}
	return b.String()
}

// Tracks flattens the caption track list; nil-safe on a zero response.
func (r *PlayerResponse) Tracks() []CaptionTrack {
	if r == nil {
		return nil
	}
	return r.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
}
