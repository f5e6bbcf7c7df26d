package timedtext

import (
	"encoding/json"
	"strings"
)

type json3Payload struct {
	Events []json3Event `json:"events"`
}

type json3Event struct {
	TStartMs    int64      `json:"tStartMs"`
	DDurationMs int64      `json:"dDurationMs"`
	Segs        []json3Seg `json:"segs"`
}

type json3Seg struct {
	UTF8 string `json:"utf8"`
}

// ParseJSON3 parses the &fmt=json3 caption payload. Events without text
// segments (window metadata, music markers) are skipped; event times are
// milliseconds and map to seconds at three-decimal precision.
func ParseJSON3(data []byte) ([]Cue, error) {
	var payload json3Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}

	cues := make([]Cue, 0, len(payload.Events))
	for _, event := range payload.Events {
		if len(event.Segs) == 0 {
			continue
		}
		var b strings.Builder
		for _, seg := range event.Segs {
			b.WriteString(seg.UTF8)
		}
		text := strings.TrimSpace(b.String())
		if text == "" {
			continue
		}
		cues = append(cues, Cue{
			Start: MillisToSeconds(event.TStartMs),
			Dur:   MillisToSeconds(event.DDurationMs),
			Text:  StripMarkup(text),
		})
	}
	return cues, nil
}

// MillisToSeconds converts a millisecond offset to seconds, keeping the
// three decimal places the division yields.
func MillisToSeconds(ms int64) float64 {
	return float64(ms) / 1000.0
}
