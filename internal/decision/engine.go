// Package decision implements the third pipeline stage: expanding candidate
// actions, scoring risk/priority/feasibility, filtering by policy, ranking,
// and producing an explained, confidence-scored Decision. The engine also
// owns the bounded decision history used for self-reflection.
package decision

import (
	"math"
	"sort"
	"time"

	"github.com/doeshing/jarvis-go/internal/domain"
)

// Engine holds the knowledge tables and the decision history ring. Like the
// conversation context, it is single-writer: one instance per conversation,
// turns processed strictly sequentially.
type Engine struct {
	knowledge domain.Knowledge
	history   []domain.HistoryEntry
	now       func() time.Time
}

// NewEngine builds a decision engine over the shared knowledge base.
func NewEngine(k domain.Knowledge) *Engine {
	return &Engine{knowledge: k, now: time.Now}
}

// Decide runs steps 1-7 of the decision stage: candidate generation, scoring,
// policy filtering, ranking, confidence, the confirmation gate, and the
// justification. Response rendering and history recording happen separately
// because the rendered response embeds the execution outcome.
func (e *Engine) Decide(analysis domain.LinguisticAnalysis, reasoning domain.ReasoningResult, conv *domain.ConversationContext) domain.Decision {
	candidates := e.generateCandidates(analysis, reasoning)
	candidates = e.scoreCandidates(candidates, analysis, reasoning)
	candidates = e.applyPolicies(candidates, analysis, reasoning)
	rank(candidates)

	chosen := candidates[0]
	chosen.Params = buildParams(chosen.Type, analysis, reasoning, chosen.Params)

	alternatives := candidates[1:]
	if len(alternatives) > 3 {
		alternatives = alternatives[:3]
	}

	confidence := decisionConfidence(chosen, analysis, reasoning)
	shouldAsk := chosen.Risk == domain.RiskHigh || confidence < 0.6 || isDestructiveType(chosen.Type)

	d := domain.Decision{
		Timestamp:     e.now(),
		Chosen:        chosen,
		Alternatives:  alternatives,
		Confidence:    confidence,
		ShouldAsk:     shouldAsk,
		ShouldExecute: !shouldAsk,
		Risk:          chosen.Risk,
	}
	d.Justification = e.explain(d, reasoning)
	return d
}

// scoreCandidates fills in risk, adjusted priority, and feasibility for every
// candidate (step 2).
func (e *Engine) scoreCandidates(candidates []domain.Action, analysis domain.LinguisticAnalysis, reasoning domain.ReasoningResult) []domain.Action {
	for i := range candidates {
		c := &candidates[i]
		c.Risk = classifyRisk(c.Type, analysis)
		c.Feasibility = e.knowledge.FeasibilityOf(c.Type)

		if reasoning.Urgency >= 8 {
			c.Priority += 2
		}
		if reasoning.Sentiment.Polarity == domain.SentimentNegative {
			c.Priority++
		}
		if reasoning.Hints.FollowUp {
			c.Priority++
		}
		if c.Priority > 10 {
			c.Priority = 10
		}
	}
	return candidates
}

// applyPolicies implements step 3: confirmation marking, the explicit-command
// bonus, the low-confidence collapse to ask_clarification, negation tagging,
// and the feasibility floor.
func (e *Engine) applyPolicies(candidates []domain.Action, analysis domain.LinguisticAnalysis, reasoning domain.ReasoningResult) []domain.Action {
	var kept []domain.Action
	for _, c := range candidates {
		if c.Risk == domain.RiskHigh {
			c.RequiresConfirmation = true
		}
		if c.Source == domain.SourceCommand {
			c.Priority++
			if c.Priority > 10 {
				c.Priority = 10
			}
		}
		if reasoning.Confidence < 0.5 && c.Type != domain.ActionAskClarification {
			continue
		}
		if analysis.Negation.Present {
			// Tag only: negation never inverts action semantics here, it
			// just surfaces in the justification.
			c.Negated = true
		}
		if c.Feasibility <= 0.3 {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// rank sorts descending by priority, then feasibility, then ascending risk.
// The sort is stable so generation order breaks remaining ties.
func rank(candidates []domain.Action) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if a.Feasibility != b.Feasibility {
			return a.Feasibility > b.Feasibility
		}
		return a.Risk.Rank() < b.Risk.Rank()
	})
}

// decisionConfidence implements the step-5 formula, clamped to [0.1, 1.0].
func decisionConfidence(chosen domain.Action, analysis domain.LinguisticAnalysis, reasoning domain.ReasoningResult) float64 {
	signals := 0
	if reasoning.Intent.Known() {
		signals++
	}
	if len(reasoning.Entities) > 0 {
		signals++
	}
	if len(analysis.Commands) > 0 {
		signals++
	}

	confidence := 0.5 +
		reasoning.Confidence*0.3 +
		float64(chosen.Priority)/10*0.2 +
		chosen.Feasibility*0.2 +
		(1-float64(reasoning.Complexity)/10)*0.1 +
		float64(signals)/3*0.2

	return math.Max(0.1, math.Min(1.0, confidence))
}

// Record appends a completed turn to the history, evicting the oldest entry
// beyond the FIFO limit.
func (e *Engine) Record(entry domain.HistoryEntry) {
	e.history = append(e.history, entry)
	if len(e.history) > domain.HistoryLimit {
		e.history = e.history[len(e.history)-domain.HistoryLimit:]
	}
}

// History returns the recorded entries, oldest first.
func (e *Engine) History() []domain.HistoryEntry {
	return e.history
}
