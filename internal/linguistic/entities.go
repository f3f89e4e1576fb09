package linguistic

import (
	"regexp"
	"sort"

	"github.com/doeshing/jarvis-go/internal/domain"
)

// entityPatterns holds the per-kind regex sets. Every set runs over the
// original text; a substring may be tagged with more than one kind.
var entityPatterns = []struct {
	kind     domain.EntityKind
	patterns []*regexp.Regexp
}{
	{domain.EntityFilePath, []*regexp.Regexp{
		regexp.MustCompile(`(?:\.{1,2}/)?(?:[\w.-]+/)+[\w.-]+`),
		regexp.MustCompile(`\b[\w-]+\.(?:go|js|jsx|ts|tsx|py|java|rb|rs|c|cpp|h|sh|sql|json|ya?ml|toml|md|txt|csv|html|css|log)\b`),
	}},
	{domain.EntityURL, []*regexp.Regexp{
		regexp.MustCompile(`https?://[^\s]+`),
		regexp.MustCompile(`\bwww\.[^\s]+`),
	}},
	{domain.EntityEmail, []*regexp.Regexp{
		regexp.MustCompile(`[\w.+-]+@[\w-]+\.[\w.-]+`),
	}},
	{domain.EntityNumber, []*regexp.Regexp{
		regexp.MustCompile(`\b\d+(?:[.,]\d+)?\b`),
	}},
	{domain.EntityShellCommand, []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:rm|ls|cd|cat|grep|find|mkdir|cp|mv|touch|chmod|chown|kill|ps|tar|ssh|curl|wget|sudo|git|npm|yarn|pip|go|docker|kubectl|make)\s+[^\n.!?]*`),
		regexp.MustCompile("`([^`]+)`"),
	}},
	{domain.EntityPackageName, []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:npm (?:i|install)|yarn add|pip install|go get|apt(?:-get)? install|brew install)\s+[\w@/.-]+`),
	}},
	{domain.EntityTechnology, []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:javascript|typescript|python|golang|go|java|rust|node(?:js)?|react|vue|angular|docker|kubernetes|k8s|postgres(?:ql)?|mysql|mongodb|mongo|redis|git|github|gitlab|linux|aws|gcp|azure|sql|graphql|html|css)\b`),
	}},
	{domain.EntityDate, []*regexp.Regexp{
		regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}(?:[/-]\d{2,4})?\b`),
		regexp.MustCompile(`(?i)\b(?:hoy|ayer|ma[nñ]ana|lunes|martes|mi[eé]rcoles|jueves|viernes|s[aá]bado|domingo|enero|febrero|marzo|abril|mayo|junio|julio|agosto|septiembre|octubre|noviembre|diciembre)\b`),
	}},
}

// ExtractEntities records every match of every entity kind with its character
// offset. Matches are not mutually exclusive.
func ExtractEntities(text string) []domain.EntityMatch {
	var matches []domain.EntityMatch
	for _, set := range entityPatterns {
		for _, re := range set.patterns {
			for _, loc := range re.FindAllStringIndex(text, -1) {
				matches = append(matches, domain.EntityMatch{
					Kind:   set.kind,
					Text:   text[loc[0]:loc[1]],
					Offset: loc[0],
				})
			}
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Offset < matches[j].Offset
	})
	return matches
}
