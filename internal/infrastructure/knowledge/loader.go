// Package knowledge loads and compiles the static knowledge base: rule
// tables, action catalogs, feasibility lookups, and persona phrases.
package knowledge

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/jarvis-go/assets"
	"github.com/doeshing/jarvis-go/internal/domain"
	"github.com/doeshing/jarvis-go/internal/pkg/filesystem"
	"github.com/doeshing/jarvis-go/internal/ports"
)

// File is the YAML schema root for a knowledge file.
type File struct {
	Rules struct {
		Intent     []IntentEntry    `yaml:"intent"`
		Entity     []EntityEntry    `yaml:"entity"`
		Urgency    []LevelEntry     `yaml:"urgency"`
		Complexity []LevelEntry     `yaml:"complexity"`
		Sentiment  []SentimentEntry `yaml:"sentiment"`
	} `yaml:"rules"`
	Technologies map[string]float64 `yaml:"technologies"`
	Actions      struct {
		Intent map[string][]ActionEntry `yaml:"intent"`
		Entity map[string][]ActionEntry `yaml:"entity"`
	} `yaml:"actions"`
	Feasibility map[string]float64 `yaml:"feasibility"`
	Phrases     *PhrasesFile       `yaml:"phrases"`
}

// IntentEntry declares one intent rule.
type IntentEntry struct {
	Pattern  string `yaml:"pattern"`
	Label    string `yaml:"label"`
	Priority int    `yaml:"priority"`
}

// EntityEntry declares one weighted entity rule.
type EntityEntry struct {
	Pattern string  `yaml:"pattern"`
	Label   string  `yaml:"label"`
	Weight  float64 `yaml:"weight"`
}

// LevelEntry declares one urgency or complexity rule.
type LevelEntry struct {
	Pattern string `yaml:"pattern"`
	Level   int    `yaml:"level"`
}

// SentimentEntry declares one sentiment rule.
type SentimentEntry struct {
	Pattern string `yaml:"pattern"`
	Label   string `yaml:"label"`
	Delta   int    `yaml:"delta"`
}

// ActionEntry declares one candidate action template.
type ActionEntry struct {
	Type     string `yaml:"type"`
	Priority int    `yaml:"priority"`
}

// PhrasesFile is the YAML schema for the persona phrase tables.
type PhrasesFile struct {
	Greetings     []string `yaml:"greetings"`
	Confirmations []string `yaml:"confirmations"`
	Executions    []string `yaml:"executions"`
	LowConfidence string   `yaml:"low_confidence"`
	Clarification string   `yaml:"clarification"`
}

// Loader reads a knowledge file from disk, falling back to the embedded
// defaults when the file is missing or empty.
type Loader struct {
	overridePath string
}

// NewLoader builds a loader; path is optional.
func NewLoader(path string) *Loader {
	return &Loader{overridePath: path}
}

// Load implements ports.KnowledgeProvider.
func (l *Loader) Load(context.Context) (domain.Knowledge, error) {
	data := assets.DefaultKnowledgeYAML
	if path := l.resolvePath(); path != "" {
		if raw, err := os.ReadFile(path); err == nil && len(raw) > 0 {
			data = raw
		}
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Knowledge{}, fmt.Errorf("parse knowledge: %w", err)
	}
	return Compile(file)
}

func (l *Loader) resolvePath() string {
	if l.overridePath != "" {
		return expandPath(l.overridePath)
	}
	if custom := os.Getenv("JARVIS_KNOWLEDGE"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".jarvis", "knowledge.yaml")
}

// Defaults compiles the embedded knowledge base without touching the
// filesystem. Used by tests and as the construction-time fallback.
func Defaults() (domain.Knowledge, error) {
	var file File
	if err := yaml.Unmarshal(assets.DefaultKnowledgeYAML, &file); err != nil {
		return domain.Knowledge{}, fmt.Errorf("parse embedded knowledge: %w", err)
	}
	return Compile(file)
}

// Compile turns a parsed knowledge file into the immutable runtime tables,
// compiling every pattern and validating the action catalog. A pattern that
// does not compile or a catalogued action without a feasibility entry is a
// construction error, never a runtime one.
func Compile(file File) (domain.Knowledge, error) {
	k := domain.Knowledge{
		Technologies:  file.Technologies,
		IntentActions: map[string][]domain.ActionSpec{},
		EntityActions: map[string][]domain.ActionSpec{},
		Feasibility:   map[domain.ActionType]float64{},
	}

	for _, e := range file.Rules.Intent {
		re, err := compile(e.Pattern, "intent", e.Label)
		if err != nil {
			return domain.Knowledge{}, err
		}
		k.IntentRules = append(k.IntentRules, domain.IntentRule{Pattern: re, Label: e.Label, Priority: e.Priority})
	}
	for _, e := range file.Rules.Entity {
		re, err := compile(e.Pattern, "entity", e.Label)
		if err != nil {
			return domain.Knowledge{}, err
		}
		k.EntityRules = append(k.EntityRules, domain.EntityRule{Pattern: re, Label: e.Label, Weight: e.Weight})
	}
	for _, e := range file.Rules.Urgency {
		re, err := compile(e.Pattern, "urgency", fmt.Sprint(e.Level))
		if err != nil {
			return domain.Knowledge{}, err
		}
		k.UrgencyRules = append(k.UrgencyRules, domain.LevelRule{Pattern: re, Level: e.Level})
	}
	for _, e := range file.Rules.Complexity {
		re, err := compile(e.Pattern, "complexity", fmt.Sprint(e.Level))
		if err != nil {
			return domain.Knowledge{}, err
		}
		k.ComplexityRules = append(k.ComplexityRules, domain.LevelRule{Pattern: re, Level: e.Level})
	}
	for _, e := range file.Rules.Sentiment {
		re, err := compile(e.Pattern, "sentiment", e.Label)
		if err != nil {
			return domain.Knowledge{}, err
		}
		k.SentimentRules = append(k.SentimentRules, domain.SentimentRule{
			Pattern: re,
			Label:   domain.SentimentPolarity(e.Label),
			Delta:   e.Delta,
		})
	}

	for label, entries := range file.Actions.Intent {
		k.IntentActions[label] = toSpecs(entries)
	}
	for label, entries := range file.Actions.Entity {
		k.EntityActions[label] = toSpecs(entries)
	}
	for name, value := range file.Feasibility {
		k.Feasibility[domain.ActionType(name)] = value
	}

	phrases, err := loadPhrases(file.Phrases)
	if err != nil {
		return domain.Knowledge{}, err
	}
	k.Phrases = phrases

	if err := validate(k); err != nil {
		return domain.Knowledge{}, err
	}
	return k, nil
}

func compile(pattern, table, label string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%s rule %q: %w", table, label, err)
	}
	return re, nil
}

func toSpecs(entries []ActionEntry) []domain.ActionSpec {
	specs := make([]domain.ActionSpec, 0, len(entries))
	for _, e := range entries {
		specs = append(specs, domain.ActionSpec{Type: domain.ActionType(e.Type), Priority: e.Priority})
	}
	return specs
}

func loadPhrases(override *PhrasesFile) (domain.PhraseTable, error) {
	phrases := override
	if phrases == nil {
		phrases = &PhrasesFile{}
		if err := yaml.Unmarshal(assets.DefaultPhrasesYAML, phrases); err != nil {
			return domain.PhraseTable{}, fmt.Errorf("parse embedded phrases: %w", err)
		}
	}
	table := domain.PhraseTable{
		Greetings:     phrases.Greetings,
		Confirmations: phrases.Confirmations,
		Executions:    phrases.Executions,
		LowConfidence: phrases.LowConfidence,
		Clarification: phrases.Clarification,
	}
	if len(table.Greetings) == 0 || len(table.Confirmations) == 0 || len(table.Executions) == 0 {
		return domain.PhraseTable{}, fmt.Errorf("phrase tables incomplete")
	}
	return table, nil
}

// validate runs the construction-time doctor checks: every catalogued
// action type and every action referenced by a table must carry a
// feasibility entry, and the fallback action must stay above the
// feasibility drop threshold.
func validate(k domain.Knowledge) error {
	var missing []string
	seen := map[domain.ActionType]bool{}
	require := func(t domain.ActionType) {
		if seen[t] {
			return
		}
		seen[t] = true
		if _, ok := k.Feasibility[t]; !ok {
			missing = append(missing, string(t))
		}
	}
	for _, t := range domain.Catalog {
		require(t)
	}
	// Custom actions introduced by a knowledge file live outside the
	// catalog but still need an entry once a table references them.
	for _, specs := range k.IntentActions {
		for _, s := range specs {
			require(s.Type)
		}
	}
	for _, specs := range k.EntityActions {
		for _, s := range specs {
			require(s.Type)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("actions without feasibility entry: %s", strings.Join(missing, ", "))
	}
	if k.FeasibilityOf(domain.ActionAskClarification) <= 0.3 {
		return fmt.Errorf("ask_clarification feasibility must exceed the drop threshold")
	}
	return nil
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return path
}

var _ ports.KnowledgeProvider = (*Loader)(nil)
