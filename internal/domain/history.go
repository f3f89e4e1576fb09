package domain

import "time"

// HistoryEntry captures one completed turn for self-reflection.
type HistoryEntry struct {
	Timestamp time.Time
	Message   string
	Decision  Decision
	Response  string
}

// HistoryLimit caps the decision history ring; the oldest entry is evicted
// when a new one would exceed it.
const HistoryLimit = 50

// PatternCount pairs a chosen action type with its occurrence count.
type PatternCount struct {
	Type  ActionType
	Count int
}

// Reflection summarizes the decision history: the share of confident,
// unprompted decisions, the most frequent chosen action types, and textual
// improvement areas when the success rate is low.
type Reflection struct {
	Total              int
	SuccessRate        float64
	CommonPatterns     []PatternCount
	AreasOfImprovement []string
}

// MemoryRecord is one append-only conversation memory row. Conversation
// carries the owning ConversationContext ID so rows from different sessions
// stay distinguishable.
type MemoryRecord struct {
	Timestamp    time.Time `json:"timestamp"`
	Conversation string    `json:"conversation"`
	Message      string    `json:"message"`
	Response     string    `json:"response"`
	Intent       string    `json:"intent"`
	Topic        string    `json:"topic"`
	Confidence   float64   `json:"confidence"`
}
