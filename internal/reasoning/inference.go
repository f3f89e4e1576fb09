package reasoning

import "github.com/doeshing/jarvis-go/internal/domain"

type inferenceInput struct {
	intent    domain.Intent
	urgency   int
	sentiment domain.Sentiment
	has       map[string]bool
}

// inferenceRules is the fixed, ordered set of compound rules that combine
// intent, entities, urgency, and sentiment into derived facts.
var inferenceRules = []struct {
	when func(in inferenceInput) bool
	fact domain.Inference
}{
	{
		when: func(in inferenceInput) bool { return in.has["error"] && in.urgency >= 7 },
		fact: domain.Inference{
			Type:            "diagnostic_needed",
			Rationale:       "Hay un error con urgencia alta; conviene diagnosticar primero.",
			SuggestedAction: domain.ActionDiagnoseError,
		},
	},
	{
		when: func(in inferenceInput) bool { return in.intent.Label == "create" && in.has["project"] },
		fact: domain.Inference{
			Type:            "project_creation",
			Rationale:       "Se pide crear un proyecto nuevo.",
			SuggestedAction: domain.ActionCreateProject,
		},
	},
	{
		when: func(in inferenceInput) bool { return in.has["memory"] || in.intent.Label == "remember" },
		fact: domain.Inference{
			Type:            "memory_query",
			Rationale:       "El mensaje hace referencia a conversaciones o datos guardados.",
			SuggestedAction: domain.ActionQueryMemory,
		},
	},
	{
		when: func(in inferenceInput) bool {
			return in.sentiment.Polarity == domain.SentimentNegative && in.has["error"]
		},
		fact: domain.Inference{
			Type:            "support_needed",
			Rationale:       "Error con tono negativo; ofrecer ayuda adicional.",
			SuggestedAction: domain.ActionOfferHelp,
		},
	},
	{
		when: func(in inferenceInput) bool { return in.has["git"] },
		fact: domain.Inference{
			Type:            "git_operation",
			Rationale:       "El mensaje involucra el repositorio git.",
			SuggestedAction: domain.ActionGitStatus,
		},
	},
	{
		when: func(in inferenceInput) bool { return in.intent.Label == "search" && in.has["file"] },
		fact: domain.Inference{
			Type:            "file_search",
			Rationale:       "Búsqueda dirigida a archivos.",
			SuggestedAction: domain.ActionSearchFiles,
		},
	},
	{
		when: func(in inferenceInput) bool { return in.has["db"] && in.urgency >= 7 },
		fact: domain.Inference{
			Type:            "db_attention",
			Rationale:       "Problema urgente relacionado con la base de datos.",
			SuggestedAction: domain.ActionDBQuery,
		},
	},
}

// makeInferences evaluates the rule set in declared order; every satisfied
// rule contributes its fact.
func makeInferences(intent domain.Intent, entities []domain.WeightedEntity, urgency int, sentiment domain.Sentiment) []domain.Inference {
	in := inferenceInput{
		intent:    intent,
		urgency:   urgency,
		sentiment: sentiment,
		has:       map[string]bool{},
	}
	for _, e := range entities {
		in.has[e.Label] = true
	}

	var facts []domain.Inference
	for _, rule := range inferenceRules {
		if rule.when(in) {
			facts = append(facts, rule.fact)
		}
	}
	return facts
}
