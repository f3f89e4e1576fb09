package domain

import "regexp"

// Rule tables are compiled once at construction by the knowledge loader and
// shared read-only across conversations. Patterns are matched against the
// normalized (lowercased, diacritic-stripped) message unless noted otherwise.

// IntentRule maps a pattern to an intent label with a declared priority.
// Selection keeps the highest-priority match; declaration order breaks ties.
type IntentRule struct {
	Pattern  *regexp.Regexp
	Label    string
	Priority int
}

// EntityRule maps a pattern to a weighted reasoning entity. Every matching
// rule contributes; evaluation is not best-of.
type EntityRule struct {
	Pattern *regexp.Regexp
	Label   string
	Weight  float64
}

// LevelRule maps a pattern to an integer level, used for urgency (max of
// matches, floor 5) and complexity (first match wins).
type LevelRule struct {
	Pattern *regexp.Regexp
	Level   int
}

// SentimentRule contributes a score delta; the reported label is that of the
// last rule that matched.
type SentimentRule struct {
	Pattern *regexp.Regexp
	Label   SentimentPolarity
	Delta   int
}

// ActionSpec is a candidate action template attached to an intent or entity.
type ActionSpec struct {
	Type     ActionType
	Priority int
}

// PhraseTable holds the persona tone templates used for response rendering.
type PhraseTable struct {
	Greetings     []string
	Confirmations []string
	Executions    []string
	LowConfidence string
	Clarification string
}

// Knowledge is the immutable static knowledge base: every rule table plus the
// action catalogs and feasibility lookup. Safe for concurrent read access.
type Knowledge struct {
	IntentRules     []IntentRule
	EntityRules     []EntityRule
	UrgencyRules    []LevelRule
	ComplexityRules []LevelRule
	SentimentRules  []SentimentRule

	// Technologies maps a known technology name to an expertise score.
	Technologies map[string]float64

	IntentActions map[string][]ActionSpec
	EntityActions map[string][]ActionSpec
	Feasibility   map[ActionType]float64

	Phrases PhraseTable
}

// FeasibilityOf returns the static feasibility for an action type, defaulting
// to 0.5 for types outside the catalog.
func (k Knowledge) FeasibilityOf(t ActionType) float64 {
	if f, ok := k.Feasibility[t]; ok {
		return f
	}
	return 0.5
}
