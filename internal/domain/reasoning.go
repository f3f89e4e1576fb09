package domain

// Intent is the classified high-level purpose of a message.
type Intent struct {
	Label      string
	Priority   int
	Confidence float64
}

// Intent fallback labels used when no rule matches.
const (
	IntentQuestion = "question"
	IntentUnknown  = "unknown"
)

// Known reports whether the intent was resolved to something other than the
// unknown fallback.
func (i Intent) Known() bool {
	return i.Label != "" && i.Label != IntentUnknown
}

// WeightedEntity is one reasoning-level entity contribution. The same label
// may appear more than once when several rules matched.
type WeightedEntity struct {
	Label  string
	Weight float64
}

// Inference is a derived fact produced by the fixed compound rules.
type Inference struct {
	Type            string
	Rationale       string
	SuggestedAction ActionType
}

// ContextHints carries conversational context signals into the decision step.
type ContextHints struct {
	Technologies    map[string]float64
	FollowUp        bool
	RelatedToRecent bool
}

// ActionSource tags where a candidate action was generated from.
type ActionSource string

const (
	SourceIntent    ActionSource = "intent"
	SourceEntity    ActionSource = "entity"
	SourceInference ActionSource = "inference"
	SourceCommand   ActionSource = "command"
	SourceFallback  ActionSource = "fallback"
)

// SuggestedAction is a pre-scored candidate produced by the reasoning stage.
type SuggestedAction struct {
	Type     ActionType
	Priority int
	Source   ActionSource
	// Origin names the intent label or entity label that produced the
	// suggestion, for justification rendering.
	Origin string
}

// ReasoningResult is the full output of the reasoning stage for one turn.
type ReasoningResult struct {
	Intent           Intent
	Entities         []WeightedEntity
	Urgency          int
	Complexity       int
	Sentiment        Sentiment
	Keywords         []string
	Hints            ContextHints
	Inferences       []Inference
	Confidence       float64
	SuggestedActions []SuggestedAction
}

// HasEntity reports whether any matched entity carries the given label.
func (r ReasoningResult) HasEntity(label string) bool {
	for _, e := range r.Entities {
		if e.Label == label {
			return true
		}
	}
	return false
}

// DominantEntity returns the highest-weight entity label, or "" when none
// matched. Earlier matches win ties so the result is deterministic.
func (r ReasoningResult) DominantEntity() string {
	best := ""
	bestWeight := 0.0
	for _, e := range r.Entities {
		if e.Weight > bestWeight {
			best = e.Label
			bestWeight = e.Weight
		}
	}
	return best
}
