package decision

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/doeshing/jarvis-go/internal/domain"
)

// RenderResponse assembles the user-facing reply (step 8): persona greeting,
// the first justification line, then either the confirmation prompt (naming
// the pending action and its risk) or the execution-intent statement, plus a
// low-confidence caveat. Phrase selection hashes the message so identical
// inputs render identically.
func (e *Engine) RenderResponse(message string, d domain.Decision) string {
	var b strings.Builder
	b.WriteString(pick(e.knowledge.Phrases.Greetings, message))
	b.WriteString(" ")
	if len(d.Justification) > 0 {
		b.WriteString(d.Justification[0])
	}

	switch {
	case d.Chosen.Type == domain.ActionAskClarification:
		b.WriteString(" ")
		b.WriteString(e.knowledge.Phrases.Clarification)
	case d.ShouldAsk:
		b.WriteString(" ")
		b.WriteString(fmt.Sprintf(pick(e.knowledge.Phrases.Confirmations, message), d.Chosen.Type, d.Chosen.Risk))
	default:
		b.WriteString(" ")
		b.WriteString(fmt.Sprintf(pick(e.knowledge.Phrases.Executions, message), d.Chosen.Type))
	}

	if d.Confidence < 0.7 {
		b.WriteString(" ")
		b.WriteString(e.knowledge.Phrases.LowConfidence)
	}
	return b.String()
}

func pick(phrases []string, message string) string {
	if len(phrases) == 0 {
		return ""
	}
	h := fnv.New32a()
	h.Write([]byte(message))
	return phrases[h.Sum32()%uint32(len(phrases))]
}
