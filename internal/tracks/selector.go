// Package tracks selects the best caption track for a requested language.
package tracks

import "strings"

// Track is one selectable caption language/variant.
type Track struct {
	BaseURL      string
	LanguageCode string
	VssID        string
	Name         string
	Kind         string
}

// IsAutoGenerated reports whether the track is machine transcribed.
func (t Track) IsAutoGenerated() bool {
	return t.Kind == "asr" || strings.HasPrefix(t.VssID, "a.")
}

// Select picks the track best matching lang. Priority order, first match
// wins: exact manual (".lang"), exact auto-generated ("a.lang"), loose
// vssId substring (".lang" anywhere), then the first track at all when
// bestEffort is set. Nil means no match, which is a valid empty result.
func Select(available []Track, lang string, bestEffort bool) *Track {
	if len(available) == 0 {
		return nil
	}
	lang = strings.TrimSpace(lang)

	if t := findByVssID(available, "."+lang); t != nil {
		return t
	}
	if t := findByVssID(available, "a."+lang); t != nil {
		return t
	}
	for i := range available {
		if strings.Contains(available[i].VssID, "."+lang) {
			return &available[i]
		}
	}
	if bestEffort {
		return &available[0]
	}
	return nil
}

func findByVssID(available []Track, vssID string) *Track {
	for i := range available {
		if available[i].VssID == vssID {
			return &available[i]
		}
	}
	return nil
}
