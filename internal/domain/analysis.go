// Package domain defines core business entities and value objects for JARVIS.
//
// This file contains the linguistic analysis structures produced once per
// conversation turn. The domain layer is independent of infrastructure
// concerns and represents pure data structures shared by the three engines.
package domain

// EntityKind enumerates the typed span categories the analyzer recognizes.
// A substring may be tagged with more than one kind; matches are not
// mutually exclusive.
type EntityKind string

const (
	EntityFilePath     EntityKind = "filepath"
	EntityURL          EntityKind = "url"
	EntityEmail        EntityKind = "email"
	EntityNumber       EntityKind = "number"
	EntityShellCommand EntityKind = "shell-command"
	EntityPackageName  EntityKind = "package-name"
	EntityTechnology   EntityKind = "technology"
	EntityDate         EntityKind = "date"
)

// EntityMatch is a typed span located in the original (non-normalized) text.
type EntityMatch struct {
	Kind   EntityKind
	Text   string
	Offset int
}

// QuestionType classifies interrogative messages. The first matching pattern
// in declaration order wins; General covers messages that pass the question
// test without matching a sub-type.
type QuestionType string

const (
	QuestionNone    QuestionType = ""
	QuestionWhat    QuestionType = "what"
	QuestionHow     QuestionType = "how"
	QuestionWhen    QuestionType = "when"
	QuestionWhere   QuestionType = "where"
	QuestionWhy     QuestionType = "why"
	QuestionWho     QuestionType = "who"
	QuestionWhich   QuestionType = "which"
	QuestionYesNo   QuestionType = "yes-no"
	QuestionGeneral QuestionType = "general"
)

// QuestionInfo is the question classification for one message.
type QuestionInfo struct {
	IsQuestion bool
	Type       QuestionType
}

// TimeReference holds independent temporal flags; all four may be true at once.
type TimeReference struct {
	Past      bool
	Present   bool
	Future    bool
	Immediate bool
}

// Negation records the first negation pattern found, if any. Pattern ordering
// is authoritative; there is no most-specific ranking.
type Negation struct {
	Present bool
	Pattern string
}

// CommandPhrase is a (verb, trailing object) pair extracted from the message.
type CommandPhrase struct {
	Verb   string
	Object string
}

// SentimentPolarity labels the sign of a sentiment score.
type SentimentPolarity string

const (
	SentimentPositive SentimentPolarity = "positive"
	SentimentNegative SentimentPolarity = "negative"
	SentimentNeutral  SentimentPolarity = "neutral"
)

// Sentiment aggregates lexicon-based sentiment scoring for one message.
type Sentiment struct {
	Score       float64
	Polarity    SentimentPolarity
	Intensity   float64
	Frustration bool
}

// Tokens holds the tokenization output: sentences, words, and the
// stopword-filtered keyword list with frequencies.
type Tokens struct {
	Sentences   []string
	Words       []string
	Keywords    []string
	KeywordFreq map[string]int
}

// LinguisticAnalysis is the full structured analysis of one message. It is
// ephemeral: created per turn and never mutated afterwards.
type LinguisticAnalysis struct {
	Original   string
	Normalized string
	Tokens     Tokens
	Entities   []EntityMatch
	Question   QuestionInfo
	TimeRef    TimeReference
	Negation   Negation
	Commands   []CommandPhrase
	Sentiment  Sentiment

	Length     int
	WordCount  int
	HasCode    bool
	Complexity int
	FollowUp   bool
}

// EntitiesOfKind returns every match of the given kind, in text order.
func (a LinguisticAnalysis) EntitiesOfKind(kind EntityKind) []EntityMatch {
	var out []EntityMatch
	for _, e := range a.Entities {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// HasEntityKind reports whether at least one span of the kind was found.
func (a LinguisticAnalysis) HasEntityKind(kind EntityKind) bool {
	for _, e := range a.Entities {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
