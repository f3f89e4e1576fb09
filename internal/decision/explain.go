package decision

import (
	"fmt"

	"github.com/doeshing/jarvis-go/internal/domain"
)

// explain produces the ordered justification lines (step 7): action source
// first, then urgency, priority, negation, and confirmation callouts.
func (e *Engine) explain(d domain.Decision, reasoning domain.ReasoningResult) []string {
	lines := []string{sourceLine(d.Chosen)}

	if reasoning.Urgency >= 8 {
		lines = append(lines, fmt.Sprintf("Detecté urgencia alta (%d/10), así que priorizo esta acción.", reasoning.Urgency))
	}
	if d.Chosen.Priority >= 8 {
		lines = append(lines, fmt.Sprintf("La acción tiene prioridad %d/10.", d.Chosen.Priority))
	}
	if d.Chosen.Negated {
		lines = append(lines, "El mensaje contiene una negación; revisa que la acción sea la deseada.")
	}
	if d.ShouldAsk {
		lines = append(lines, fmt.Sprintf("Pediré confirmación antes de ejecutar (riesgo %s).", d.Chosen.Risk))
	}
	return lines
}

func sourceLine(a domain.Action) string {
	switch a.Source {
	case domain.SourceIntent:
		return fmt.Sprintf("Elegí '%s' a partir de la intención '%s'.", a.Type, a.Origin)
	case domain.SourceEntity:
		return fmt.Sprintf("Elegí '%s' porque el mensaje menciona '%s'.", a.Type, a.Origin)
	case domain.SourceInference:
		return fmt.Sprintf("Elegí '%s' por la regla de inferencia '%s'.", a.Type, a.Origin)
	case domain.SourceCommand:
		return fmt.Sprintf("Elegí '%s' porque lo pediste de forma explícita ('%s').", a.Type, a.Origin)
	default:
		return "No encontré una acción clara, así que pediré más detalles."
	}
}
