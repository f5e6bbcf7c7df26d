package client

// Sentinel values substituted when upstream metadata is missing. Callers
// historically match on these exact strings, so they are part of the API.
const (
	NoTitleFound       = "No title found"
	NoDescriptionFound = "No description found"
)

// CaptionCue is one timed subtitle entry. Start and Dur are decimal seconds
// carried as strings to survive JSON round trips without float drift.
type CaptionCue struct {
	Start string `json:"start"`
	Dur   string `json:"dur"`
	Text  string `json:"text"`
}

// TrackInfo describes one selectable caption track on a video.
type TrackInfo struct {
	LanguageCode  string `json:"languageCode"`
	Name          string `json:"name"`
	VssID         string `json:"vssId"`
	AutoGenerated bool   `json:"autoGenerated"`
}

// VideoDetails is the public metadata result. Title and Description are
// never empty: missing values come back as the sentinel strings above.
type VideoDetails struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Subtitles   []CaptionCue `json:"subtitles"`
	Tracks      []TrackInfo  `json:"tracks,omitempty"`
}

// Transcript is the serialization-side view of a cue list.
type Transcript struct {
	Entries []TranscriptEntry
}

// TranscriptEntry is one cue with numeric times, used by the subtitle
// writers.
type TranscriptEntry struct {
	StartSec float64
	DurSec   float64
	Text     string
}
