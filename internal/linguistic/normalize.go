package linguistic

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases the text and strips Spanish diacritics for matching
// purposes. The original text is always preserved alongside the normalized
// form; entity extraction runs over the original.
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	stripped, _, err := transform.String(diacriticStripper, lowered)
	if err != nil {
		return lowered
	}
	return stripped
}
