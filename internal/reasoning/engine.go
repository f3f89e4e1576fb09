// Package reasoning implements the second pipeline stage: rule-based
// classification and inference over a LinguisticAnalysis. The engine holds
// only the immutable knowledge tables (plus an optional seeded RNG), so a
// single instance may serve any number of conversations concurrently.
package reasoning

import (
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/doeshing/jarvis-go/internal/domain"
	"github.com/doeshing/jarvis-go/internal/linguistic"
)

// Engine evaluates the rule tables. Zero mutable state beyond the optional
// jitter source.
type Engine struct {
	knowledge domain.Knowledge
	// jitter optionally perturbs intent confidence. Nil keeps the engine
	// fully deterministic; pass a seeded source to reproduce jittered runs.
	jitter *rand.Rand
}

// NewEngine builds a deterministic engine over the given knowledge base.
func NewEngine(k domain.Knowledge) *Engine {
	return &Engine{knowledge: k}
}

// WithJitter enables intent-confidence jitter from the given seeded source.
func (e *Engine) WithJitter(r *rand.Rand) *Engine {
	e.jitter = r
	return e
}

// Reason derives the full reasoning result for one analyzed message. conv may
// be nil when no conversation context exists yet.
func (e *Engine) Reason(analysis domain.LinguisticAnalysis, conv *domain.ConversationContext) domain.ReasoningResult {
	intent := e.classifyIntent(analysis)
	entities := e.matchEntities(analysis.Normalized)
	urgency := e.scoreUrgency(analysis.Normalized)
	sentiment := e.aggregateSentiment(analysis)

	result := domain.ReasoningResult{
		Intent:     intent,
		Entities:   entities,
		Urgency:    urgency,
		Complexity: e.scoreComplexity(analysis),
		Sentiment:  sentiment,
		Keywords:   linguistic.TopKeywords(analysis.Tokens, 5),
		Hints:      e.analyzeContext(analysis, conv),
		Inferences: makeInferences(intent, entities, urgency, sentiment),
	}
	result.Confidence = calculateConfidence(result)
	result.SuggestedActions = e.suggestActions(intent, entities)
	return result
}

// classifyIntent keeps the highest-priority matching rule; when several rules
// share the top priority the one declared earliest wins. Falls back to
// "question" for interrogative messages, else "unknown".
func (e *Engine) classifyIntent(analysis domain.LinguisticAnalysis) domain.Intent {
	var best *domain.IntentRule
	for i := range e.knowledge.IntentRules {
		rule := &e.knowledge.IntentRules[i]
		if !rule.Pattern.MatchString(analysis.Normalized) {
			continue
		}
		if best == nil || rule.Priority > best.Priority {
			best = rule
		}
	}
	if best == nil {
		if analysis.Question.IsQuestion {
			return domain.Intent{Label: domain.IntentQuestion, Priority: 5, Confidence: 0.6}
		}
		return domain.Intent{Label: domain.IntentUnknown, Priority: 0, Confidence: 0.3}
	}

	confidence := math.Min(0.95, 0.6+0.04*float64(best.Priority))
	if e.jitter != nil {
		confidence += (e.jitter.Float64() - 0.5) * 0.1
		confidence = math.Max(0, math.Min(1, confidence))
	}
	return domain.Intent{Label: best.Label, Priority: best.Priority, Confidence: confidence}
}

// matchEntities applies every entity rule; all matches contribute.
func (e *Engine) matchEntities(normalized string) []domain.WeightedEntity {
	var entities []domain.WeightedEntity
	for _, rule := range e.knowledge.EntityRules {
		if rule.Pattern.MatchString(normalized) {
			entities = append(entities, domain.WeightedEntity{Label: rule.Label, Weight: rule.Weight})
		}
	}
	return entities
}

// scoreUrgency takes the max of all matching levels; urgency never drops
// below the neutral default of 5.
func (e *Engine) scoreUrgency(normalized string) int {
	urgency := 5
	for _, rule := range e.knowledge.UrgencyRules {
		if rule.Pattern.MatchString(normalized) && rule.Level > urgency {
			urgency = rule.Level
		}
	}
	return urgency
}

// scoreComplexity takes the first matching rule (declaration order), default
// 5, then adjusts by message length and clamps to [1,10].
func (e *Engine) scoreComplexity(analysis domain.LinguisticAnalysis) int {
	complexity := 5
	for _, rule := range e.knowledge.ComplexityRules {
		if rule.Pattern.MatchString(analysis.Normalized) {
			complexity = rule.Level
			break
		}
	}
	switch {
	case analysis.Length > 200:
		complexity++
	case analysis.Length < 30:
		complexity--
	}
	if complexity < 1 {
		complexity = 1
	}
	if complexity > 10 {
		complexity = 10
	}
	return complexity
}

// aggregateSentiment folds the sentiment rules into the analyzer's lexicon
// score. The reported polarity is that of the LAST rule that matched, not the
// dominant one; this quirk is preserved intentionally (see DESIGN.md).
func (e *Engine) aggregateSentiment(analysis domain.LinguisticAnalysis) domain.Sentiment {
	score := analysis.Sentiment.Score
	polarity := analysis.Sentiment.Polarity
	for _, rule := range e.knowledge.SentimentRules {
		if rule.Pattern.MatchString(analysis.Normalized) {
			score += float64(rule.Delta)
			polarity = rule.Label
		}
	}
	return domain.Sentiment{
		Score:       score,
		Polarity:    polarity,
		Intensity:   math.Abs(score),
		Frustration: analysis.Sentiment.Frustration,
	}
}

func (e *Engine) analyzeContext(analysis domain.LinguisticAnalysis, conv *domain.ConversationContext) domain.ContextHints {
	hints := domain.ContextHints{FollowUp: analysis.FollowUp}

	names := make([]string, 0, len(e.knowledge.Technologies))
	for name := range e.knowledge.Technologies {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if containsWord(analysis.Normalized, name) {
			if hints.Technologies == nil {
				hints.Technologies = map[string]float64{}
			}
			hints.Technologies[name] = e.knowledge.Technologies[name]
		}
	}

	if conv != nil {
		hints.RelatedToRecent = analysis.FollowUp && conv.Topic != ""
	}
	return hints
}

// calculateConfidence: base 0.5, +0.2 for a known intent, +0.1 per entity up
// to three, +0.1 when keywords exist, +0.1 when any inference fired; clamped
// to [0,1].
func calculateConfidence(r domain.ReasoningResult) float64 {
	confidence := 0.5
	if r.Intent.Known() {
		confidence += 0.2
	}
	confidence += 0.1 * math.Min(float64(len(r.Entities)), 3)
	if len(r.Keywords) > 0 {
		confidence += 0.1
	}
	if len(r.Inferences) > 0 {
		confidence += 0.1
	}
	return math.Max(0, math.Min(1, confidence))
}

// suggestActions unions the per-intent and per-entity candidate tables,
// sorted descending by priority (stable, so table order breaks ties).
func (e *Engine) suggestActions(intent domain.Intent, entities []domain.WeightedEntity) []domain.SuggestedAction {
	var suggestions []domain.SuggestedAction
	for _, spec := range e.knowledge.IntentActions[intent.Label] {
		suggestions = append(suggestions, domain.SuggestedAction{
			Type:     spec.Type,
			Priority: spec.Priority,
			Source:   domain.SourceIntent,
			Origin:   intent.Label,
		})
	}
	seen := map[string]bool{}
	for _, entity := range entities {
		if seen[entity.Label] {
			continue
		}
		seen[entity.Label] = true
		for _, spec := range e.knowledge.EntityActions[entity.Label] {
			suggestions = append(suggestions, domain.SuggestedAction{
				Type:     spec.Type,
				Priority: spec.Priority,
				Source:   domain.SourceEntity,
				Origin:   entity.Label,
			})
		}
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Priority > suggestions[j].Priority
	})
	return suggestions
}

func containsWord(text, word string) bool {
	for from := 0; from < len(text); {
		i := strings.Index(text[from:], word)
		if i < 0 {
			return false
		}
		i += from
		before := i == 0 || !isWordByte(text[i-1])
		after := i+len(word) >= len(text) || !isWordByte(text[i+len(word)])
		if before && after {
			return true
		}
		from = i + 1
	}
	return false
}

func isWordByte(b byte) bool {
	return b == '_' || ('a' <= b && b <= 'z') || ('0' <= b && b <= '9')
}
