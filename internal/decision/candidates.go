package decision

import (
	"strings"

	"github.com/doeshing/jarvis-go/internal/domain"
	"github.com/doeshing/jarvis-go/internal/linguistic"
)

// generateCandidates builds the raw candidate set: intent- and entity-derived
// suggestions from the reasoning stage, one action per inference fact, one
// per NLP-extracted (verb, object) command, and the constant fallback
// ask_clarification so the set is never empty.
func (e *Engine) generateCandidates(analysis domain.LinguisticAnalysis, reasoning domain.ReasoningResult) []domain.Action {
	var candidates []domain.Action

	for _, s := range reasoning.SuggestedActions {
		candidates = append(candidates, domain.Action{
			Type:     s.Type,
			Source:   s.Source,
			Origin:   s.Origin,
			Priority: s.Priority,
		})
	}

	for _, fact := range reasoning.Inferences {
		candidates = append(candidates, domain.Action{
			Type:     fact.SuggestedAction,
			Source:   domain.SourceInference,
			Origin:   fact.Type,
			Priority: 7,
		})
	}

	for _, cmd := range analysis.Commands {
		candidates = append(candidates, domain.Action{
			Type:     domain.ActionType(linguistic.CommandSlug(cmd)),
			Source:   domain.SourceCommand,
			Origin:   cmd.Verb,
			Priority: 6,
			Params:   map[string]any{"verb": cmd.Verb, "object": cmd.Object},
		})
	}

	candidates = append(candidates, domain.Action{
		Type:     domain.ActionAskClarification,
		Source:   domain.SourceFallback,
		Priority: 1,
	})

	return dedupeByType(candidates)
}

// dedupeByType keeps one candidate per action type: the first occurrence,
// upgraded to the highest priority seen for that type.
func dedupeByType(candidates []domain.Action) []domain.Action {
	index := map[domain.ActionType]int{}
	var out []domain.Action
	for _, c := range candidates {
		if i, ok := index[c.Type]; ok {
			if c.Priority > out[i].Priority {
				out[i].Priority = c.Priority
			}
			continue
		}
		index[c.Type] = len(out)
		out = append(out, c)
	}
	return out
}

// buildParams assembles the executor parameter map for one candidate from the
// extracted entities and commands relevant to its type.
func buildParams(t domain.ActionType, analysis domain.LinguisticAnalysis, reasoning domain.ReasoningResult, existing map[string]any) map[string]any {
	params := map[string]any{"message": analysis.Original}
	for k, v := range existing {
		params[k] = v
	}

	switch t {
	case domain.ActionRunCommand:
		if cmds := analysis.EntitiesOfKind(domain.EntityShellCommand); len(cmds) > 0 {
			params["command"] = cmds[0].Text
		}
	case domain.ActionSearchFiles, domain.ActionSearchCode, domain.ActionQueryMemory:
		query := strings.Join(reasoning.Keywords, " ")
		for _, cmd := range analysis.Commands {
			if cmd.Object != "" {
				query = cmd.Object
				break
			}
		}
		params["query"] = query
	case domain.ActionInstallPackage:
		if pkgs := analysis.EntitiesOfKind(domain.EntityPackageName); len(pkgs) > 0 {
			params["package"] = pkgs[0].Text
		}
	}

	if paths := analysis.EntitiesOfKind(domain.EntityFilePath); len(paths) > 0 {
		params["path"] = paths[0].Text
	}
	return params
}
