package decision

import (
	"sort"

	"github.com/doeshing/jarvis-go/internal/domain"
)

// SelfReflect computes read-only analytics over the decision history: the
// share of decisions that executed without asking and with confidence above
// 0.7, the three most frequent chosen action types, and textual improvement
// areas when the success rate falls under 0.7.
func (e *Engine) SelfReflect() domain.Reflection {
	reflection := domain.Reflection{Total: len(e.history)}
	if len(e.history) == 0 {
		return reflection
	}

	successes := 0
	counts := map[domain.ActionType]int{}
	asked := 0
	for _, entry := range e.history {
		if !entry.Decision.ShouldAsk && entry.Decision.Confidence > 0.7 {
			successes++
		}
		if entry.Decision.ShouldAsk {
			asked++
		}
		counts[entry.Decision.Chosen.Type]++
	}
	reflection.SuccessRate = float64(successes) / float64(len(e.history))

	patterns := make([]domain.PatternCount, 0, len(counts))
	for t, n := range counts {
		patterns = append(patterns, domain.PatternCount{Type: t, Count: n})
	}
	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].Count != patterns[j].Count {
			return patterns[i].Count > patterns[j].Count
		}
		return patterns[i].Type < patterns[j].Type
	})
	if len(patterns) > 3 {
		patterns = patterns[:3]
	}
	reflection.CommonPatterns = patterns

	if reflection.SuccessRate < 0.7 {
		reflection.AreasOfImprovement = append(reflection.AreasOfImprovement,
			"Muchas decisiones requieren confirmación o tienen confianza baja; conviene ampliar las reglas de intención.")
		if asked > len(e.history)/2 {
			reflection.AreasOfImprovement = append(reflection.AreasOfImprovement,
				"Más de la mitad de las decisiones pidieron confirmación; revisar umbrales de riesgo.")
		}
	}
	return reflection
}
