// Package timedtext parses YouTube caption payloads (timedtext XML and the
// json3 event format) into plain timed cues.
package timedtext

import (
	"regexp"
	"strconv"
	"strings"
)

// Cue is one timed caption unit.
type Cue struct {
	Start float64 `json:"start"`
	Dur   float64 `json:"dur"`
	Text  string  `json:"text"`
}

var (
	startAttrPattern = regexp.MustCompile(`start="([\d.]+)"`)
	durAttrPattern   = regexp.MustCompile(`dur="([\d.]+)"`)
	envelopePattern  = regexp.MustCompile(`<\?xml[^?]*\?>|</?transcript[^>]*>`)
)

// Parse splits a raw timedtext XML payload into cues in source order.
//
// Fragments missing a start or dur attribute are dropped rather than
// defaulted: a gap is preferable to a corrupted cue, and one bad fragment
// never aborts the rest of the document.
func Parse(xmlText string) []Cue {
	body := envelopePattern.ReplaceAllString(xmlText, "")

	fragments := strings.Split(body, "</text>")
	cues := make([]Cue, 0, len(fragments))
	for _, fragment := range fragments {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}

		startMatch := startAttrPattern.FindStringSubmatch(fragment)
		durMatch := durAttrPattern.FindStringSubmatch(fragment)
		if len(startMatch) < 2 || len(durMatch) < 2 {
			continue
		}
		start, err := strconv.ParseFloat(startMatch[1], 64)
		if err != nil {
			continue
		}
		dur, err := strconv.ParseFloat(durMatch[1], 64)
		if err != nil {
			continue
		}

		cues = append(cues, Cue{
			Start: start,
			Dur:   dur,
			Text:  NormalizeCueText(fragment),
		})
	}
	return cues
}
