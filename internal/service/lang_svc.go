package service

import (
	"strings"

	"github.com/AaronYuan9527/youtube-influencer-analytics/internal/model"
)

// Language plausibility here means script presence, not real language
// identification. The character ranges and thresholds are behavioral
// contracts: swapping in a language-ID library would change which channels
// survive.

const (
	// Minimum fraction of sampled videos whose text must pass the script
	// test when strict language mode is on.
	langMatchThreshold = 0.55

	// Text sample lengths, in runes.
	videoTextSample   = 400
	channelTextSample = 500
)

// Simplified/traditional-only characters used as a stronger signal than
// bare Han presence.
const (
	simplifiedMarkers  = "这国里为们"
	traditionalMarkers = "這國裡為們"
)

func hasKana(s string) bool {
	for _, r := range s {
		if (r >= 0x3041 && r <= 0x3093) || (r >= 0x30A1 && r <= 0x30F3) {
			return true
		}
	}
	return false
}

func hasHangul(s string) bool {
	for _, r := range s {
		if r >= 0xAC00 && r <= 0xD7A3 {
			return true
		}
	}
	return false
}

func hasLatin(s string) bool {
	for _, r := range s {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			return true
		}
	}
	return false
}

func countHan(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x4E00 && r <= 0x9FFF {
			n++
		}
	}
	return n
}

func countLatin(s string) int {
	n := 0
	for _, r := range s {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			n++
		}
	}
	return n
}

// scriptMatches reports whether text plausibly belongs to lang. Empty text
// never matches. Unknown language tags fall through to the zh-Hant test.
func scriptMatches(text, lang string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	switch lang {
	case "ja":
		return hasKana(text)
	case "ko":
		return hasHangul(text)
	case "en":
		return hasLatin(text) && !hasKana(text) && !hasHangul(text)
	case "zh-Hans":
		return strings.ContainsAny(text, simplifiedMarkers) || countHan(text) > 0
	default: // zh-Hant
		return strings.ContainsAny(text, traditionalMarkers) || countHan(text) > 0
	}
}

// implausibleForLang flags channel text that obviously belongs to another
// language. Conservative and asymmetric on purpose: it only fires on strong
// counter-evidence, never on absence of evidence.
func implausibleForLang(text, lang string) bool {
	t := truncateRunes(text, channelTextSample)
	if strings.TrimSpace(t) == "" {
		return false
	}

	switch {
	case lang == "en":
		return hasKana(t) || hasHangul(t)
	case lang == "ja":
		return hasHangul(t)
	case lang == "ko":
		return hasKana(t)
	case strings.HasPrefix(lang, "zh"):
		// Strong Latin dominance with near-absent Han.
		return countHan(t) < 4 && countLatin(t) > 40
	}
	return false
}

// languageMatchRatio is the fraction of videos whose sampled title+description
// passes the script test for lang. Denominator floors at 1.
func languageMatchRatio(videos []model.UploadRecord, lang string) float64 {
	ok := 0
	for _, v := range videos {
		t := truncateRunes(v.Title+" "+v.Description, videoTextSample)
		if scriptMatches(t, lang) {
			ok++
		}
	}
	return float64(ok) / float64(max(1, len(videos)))
}

// categoryMatchRatio is the fraction of videos whose case-folded
// title+description contains at least one category keyword.
func categoryMatchRatio(videos []model.UploadRecord, seeds CategorySeeds) float64 {
	hit := 0
	for _, v := range videos {
		text := strings.ToLower(v.Title + " " + v.Description)
		for _, kw := range seeds.Keywords {
			if strings.Contains(text, kw) {
				hit++
				break
			}
		}
	}
	return float64(hit) / float64(max(1, len(videos)))
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
