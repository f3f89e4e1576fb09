package linguistic

import (
	"math"
	"strings"
	"unicode"

	"github.com/doeshing/jarvis-go/internal/domain"
)

// AnalyzeSentiment scores the message against the positive/negative lexicons:
// +1 per positive hit, -1 per negative hit, minus 0.5 when the message shouts
// (more than two exclamation marks or an uppercase ratio above 0.3). The
// shouting test also sets the frustration flag.
func AnalyzeSentiment(original, normalized string) domain.Sentiment {
	score := 0.0
	for _, w := range positiveWords {
		if strings.Contains(normalized, w) {
			score++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(normalized, w) {
			score--
		}
	}

	shouting := strings.Count(original, "!") > 2 || uppercaseRatio(original) > 0.3
	if shouting {
		score -= 0.5
	}

	polarity := domain.SentimentNeutral
	switch {
	case score > 0:
		polarity = domain.SentimentPositive
	case score < 0:
		polarity = domain.SentimentNegative
	}

	return domain.Sentiment{
		Score:       score,
		Polarity:    polarity,
		Intensity:   math.Abs(score),
		Frustration: shouting,
	}
}

func uppercaseRatio(text string) float64 {
	letters, upper := 0, 0
	for _, r := range text {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(upper) / float64(letters)
}
