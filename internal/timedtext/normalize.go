package timedtext

import (
	"html"
	"regexp"
	"strings"
)

var (
	openingTagPattern = regexp.MustCompile(`^<text[^>]*>`)
	markupPattern     = regexp.MustCompile(`</?[^>]+(>|$)`)
)

// NormalizeCueText converts one raw cue body into plain decoded text.
//
// The order is load-bearing: the literal &amp; entity is unescaped and the
// remaining markup stripped before the general entity decode runs. Decoding
// first can reintroduce tag-like sequences from entity-encoded content.
func NormalizeCueText(raw string) string {
	s := openingTagPattern.ReplaceAllString(raw, "")
	s = strings.ReplaceAll(s, "&amp;", "&")
	s = markupPattern.ReplaceAllString(s, "")
	return html.UnescapeString(s)
}

// StripMarkup removes tag-like sequences without entity decoding. Used for
// text assembled from already-decoded upstream JSON fields.
func StripMarkup(raw string) string {
	return markupPattern.ReplaceAllString(raw, "")
}
