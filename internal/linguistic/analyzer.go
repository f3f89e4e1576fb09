// Package linguistic implements the first pipeline stage: turning raw Spanish
// text into a structured LinguisticAnalysis. Everything here is a pure
// function over the input text; there is no I/O and no shared mutable state,
// so analysis is safely re-invokable for retries and tests.
package linguistic

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/doeshing/jarvis-go/internal/domain"
)

var (
	sentenceSplitRe = regexp.MustCompile(`[.!?]+`)
	nonWordRe       = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)
	codeHintRe      = regexp.MustCompile("`|\\{|\\}|;|\\(\\)|=>|==|console\\.|func |def |import ")
)

// Analyze runs the full linguistic pass. The second return value is false for
// empty or whitespace-only input, which is a no-op rather than an error.
func Analyze(text string) (domain.LinguisticAnalysis, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return domain.LinguisticAnalysis{}, false
	}

	normalized := Normalize(trimmed)
	tokens := tokenize(trimmed, normalized)
	entities := ExtractEntities(trimmed)
	commands := ExtractCommands(tokens.Sentences)
	hasCode := codeHintRe.MatchString(trimmed)

	analysis := domain.LinguisticAnalysis{
		Original:   trimmed,
		Normalized: normalized,
		Tokens:     tokens,
		Entities:   entities,
		Question:   DetectQuestionType(normalized),
		TimeRef:    detectTimeReference(normalized),
		Negation:   detectNegation(normalized),
		Commands:   commands,
		Sentiment:  AnalyzeSentiment(trimmed, normalized),
		Length:     utf8.RuneCountInString(trimmed),
		WordCount:  len(tokens.Words),
		HasCode:    hasCode,
		FollowUp:   isFollowUp(trimmed, normalized),
	}
	analysis.Complexity = estimateComplexity(analysis)
	return analysis, true
}

func tokenize(original, normalized string) domain.Tokens {
	var sentences []string
	for _, s := range sentenceSplitRe.Split(original, -1) {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}

	words := strings.Fields(nonWordRe.ReplaceAllString(normalized, " "))

	freq := make(map[string]int)
	var keywords []string
	for _, w := range words {
		if stopwords[w] || utf8.RuneCountInString(w) < 3 {
			continue
		}
		if freq[w] == 0 {
			keywords = append(keywords, w)
		}
		freq[w]++
	}

	return domain.Tokens{
		Sentences:   sentences,
		Words:       words,
		Keywords:    keywords,
		KeywordFreq: freq,
	}
}

// detectTimeReference tests the four temporal keyword sets independently;
// all four flags may be set at once.
func detectTimeReference(normalized string) domain.TimeReference {
	contains := func(set []string) bool {
		for _, kw := range set {
			if strings.Contains(normalized, kw) {
				return true
			}
		}
		return false
	}
	return domain.TimeReference{
		Past:      contains(timePast),
		Present:   contains(timePresent),
		Future:    contains(timeFuture),
		Immediate: contains(timeImmediate),
	}
}

// detectNegation returns the first matching negation pattern. The pattern
// list ordering is authoritative.
func detectNegation(normalized string) domain.Negation {
	padded := " " + normalized + " "
	for _, p := range negationPatterns {
		probe := p
		if !strings.HasSuffix(p, " ") {
			probe = p + " "
		}
		if strings.Contains(padded, " "+probe) || strings.Contains(padded, " "+p+" ") {
			return domain.Negation{Present: true, Pattern: strings.TrimSpace(p)}
		}
	}
	return domain.Negation{}
}

// estimateComplexity applies the fixed weighting over structural counts,
// clamped to [0,10].
func estimateComplexity(a domain.LinguisticAnalysis) int {
	score := float64(len(a.Tokens.Sentences))*0.5 +
		float64(len(a.Tokens.Keywords))*0.2 +
		float64(len(a.Commands))*0.5 +
		float64(len(a.Entities))*0.3
	if a.HasCode {
		score += 2
	}
	return int(math.Round(math.Max(0, math.Min(10, score))))
}

// isFollowUp marks short continuations: a message starting with a
// continuation word, or anything under 20 runes without a question mark.
func isFollowUp(original, normalized string) bool {
	for _, starter := range followUpStarters {
		probe := starter
		if !strings.HasSuffix(probe, " ") {
			probe += " "
		}
		if normalized == strings.TrimSpace(starter) || strings.HasPrefix(normalized, probe) {
			return true
		}
	}
	return utf8.RuneCountInString(original) < 20 && !strings.Contains(original, "?")
}

// TopKeywords returns the n most frequent keywords; frequency descending,
// then alphabetical so the order is deterministic.
func TopKeywords(tokens domain.Tokens, n int) []string {
	sorted := make([]string, len(tokens.Keywords))
	copy(sorted, tokens.Keywords)
	sort.SliceStable(sorted, func(i, j int) bool {
		fi, fj := tokens.KeywordFreq[sorted[i]], tokens.KeywordFreq[sorted[j]]
		if fi != fj {
			return fi > fj
		}
		return sorted[i] < sorted[j]
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
