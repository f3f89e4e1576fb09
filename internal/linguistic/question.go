package linguistic

import (
	"strings"

	"github.com/doeshing/jarvis-go/internal/domain"
)

// questionSubTypes is evaluated in declared order over the stripped message
// start; the first matching sub-type wins. "por que"/"para que" classify as
// why only because no earlier stem is a prefix of them.
var questionSubTypes = []struct {
	qtype domain.QuestionType
	stems []string
}{
	{domain.QuestionWhat, []string{"que ", "que?"}},
	{domain.QuestionHow, []string{"como "}},
	{domain.QuestionWhen, []string{"cuando "}},
	{domain.QuestionWhere, []string{"donde ", "adonde ", "en donde "}},
	{domain.QuestionWhy, []string{"por que", "porque ", "para que"}},
	{domain.QuestionWho, []string{"quien ", "quienes "}},
	{domain.QuestionWhich, []string{"cual ", "cuales "}},
	{domain.QuestionYesNo, []string{
		"es ", "esta ", "estan ", "hay ", "tiene ", "tienes ", "puedo ",
		"puedes ", "podrias ", "debo ", "deberia ", "existe ", "sabes ",
		"funciona ", "sirve ",
	}},
}

var interrogativeStems = []string{
	"que", "como", "cuando", "donde", "adonde", "por que", "porque",
	"para que", "quien", "quienes", "cual", "cuales", "cuanto", "cuantos",
	"cuanta", "cuantas",
}

// DetectQuestionType classifies the message as a question. The text must end
// in '?' (or open with '¿') or begin with a known interrogative stem;
// otherwise it is not a question. Sub-type stems are tried in declared order
// against the message start, defaulting to general when none match but the
// question test passed.
func DetectQuestionType(normalized string) domain.QuestionInfo {
	trimmed := strings.TrimSpace(normalized)
	if trimmed == "" {
		return domain.QuestionInfo{Type: domain.QuestionNone}
	}

	interrogative := strings.HasSuffix(trimmed, "?") || strings.HasPrefix(trimmed, "¿")
	if !interrogative {
		for _, stem := range interrogativeStems {
			if trimmed == stem || strings.HasPrefix(trimmed, stem+" ") {
				interrogative = true
				break
			}
		}
	}
	if !interrogative {
		return domain.QuestionInfo{Type: domain.QuestionNone}
	}

	stripped := strings.TrimLeft(trimmed, "¿ ")
	for _, sub := range questionSubTypes {
		for _, stem := range sub.stems {
			if strings.HasPrefix(stripped, stem) {
				return domain.QuestionInfo{IsQuestion: true, Type: sub.qtype}
			}
		}
	}
	return domain.QuestionInfo{IsQuestion: true, Type: domain.QuestionGeneral}
}
