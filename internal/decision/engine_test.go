package decision

import (
	"fmt"
	"testing"
	"time"

	"github.com/doeshing/jarvis-go/internal/domain"
	"github.com/doeshing/jarvis-go/internal/infrastructure/knowledge"
	"github.com/doeshing/jarvis-go/internal/linguistic"
	"github.com/doeshing/jarvis-go/internal/reasoning"
)

func defaultKnowledge(t *testing.T) domain.Knowledge {
	t.Helper()
	k, err := knowledge.Defaults()
	if err != nil {
		t.Fatalf("loading default knowledge: %v", err)
	}
	return k
}

// decide runs the linguistic and reasoning stages for real so the decision
// input matches what the pipeline produces.
func decide(t *testing.T, e *Engine, k domain.Knowledge, text string) domain.Decision {
	t.Helper()
	analysis, ok := linguistic.Analyze(text)
	if !ok {
		t.Fatalf("Analyze(%q) returned no analysis", text)
	}
	r := reasoning.NewEngine(k).Reason(analysis, nil)
	return e.Decide(analysis, r, nil)
}

func TestDecideUrgentDatabaseMessage(t *testing.T) {
	k := defaultKnowledge(t)
	e := NewEngine(k)

	d := decide(t, e, k, "la base de datos esta fallando, urgente")

	if d.Chosen.Type != domain.ActionDBQuery {
		t.Fatalf("chosen = %q, want db_query", d.Chosen.Type)
	}
	if d.Chosen.Priority != 10 {
		t.Errorf("priority = %d, want 10 (urgency and sentiment bumps, capped)", d.Chosen.Priority)
	}
	if d.Risk != domain.RiskLow {
		t.Errorf("risk = %q, want low", d.Risk)
	}
	if d.ShouldAsk {
		t.Errorf("ShouldAsk = true, want direct execution: %+v", d)
	}
	if !d.ShouldExecute {
		t.Error("ShouldExecute = false, want true")
	}
	if len(d.Justification) == 0 {
		t.Error("empty justification")
	}
}

func TestDecideDangerousShellCommandAsksFirst(t *testing.T) {
	k := defaultKnowledge(t)
	e := NewEngine(k)

	d := decide(t, e, k, "ejecuta rm -rf /tmp/cosas")

	if d.Chosen.Type != domain.ActionRunCommand {
		t.Fatalf("chosen = %q, want run_command", d.Chosen.Type)
	}
	if d.Risk != domain.RiskHigh {
		t.Errorf("risk = %q, want high", d.Risk)
	}
	if !d.ShouldAsk || d.ShouldExecute {
		t.Errorf("decision = %+v, want confirmation gate", d)
	}
	if !d.Chosen.RequiresConfirmation {
		t.Error("chosen action not marked RequiresConfirmation")
	}
	if got, ok := d.Chosen.Params["command"].(string); !ok || got != "rm -rf /tmp/cosas" {
		t.Errorf("params[command] = %v, want the literal shell text", d.Chosen.Params["command"])
	}
}

func TestDecideLowReasoningConfidenceCollapsesToClarification(t *testing.T) {
	k := defaultKnowledge(t)
	e := NewEngine(k)

	analysis, ok := linguistic.Analyze("haz eso con lo otro")
	if !ok {
		t.Fatal("no analysis")
	}
	r := domain.ReasoningResult{
		Intent:     domain.Intent{Label: "execute", Priority: 8, Confidence: 0.9},
		Confidence: 0.4,
		SuggestedActions: []domain.SuggestedAction{
			{Type: domain.ActionRunCommand, Priority: 8, Source: domain.SourceIntent, Origin: "execute"},
		},
	}

	d := e.Decide(analysis, r, nil)
	if d.Chosen.Type != domain.ActionAskClarification {
		t.Fatalf("chosen = %q, want ask_clarification when reasoning confidence < 0.5", d.Chosen.Type)
	}
}

func TestDecideAlwaysHasACandidate(t *testing.T) {
	k := defaultKnowledge(t)
	e := NewEngine(k)

	// No intent, no entities, no commands: only the fallback survives.
	d := decide(t, e, k, "hmm pues nada interesante")
	if d.Chosen.Type != domain.ActionAskClarification {
		t.Fatalf("chosen = %q, want ask_clarification fallback", d.Chosen.Type)
	}
}

func TestDecideDestructiveCommandSlugAsksFirst(t *testing.T) {
	k := defaultKnowledge(t)
	e := NewEngine(k)

	// The explicit-command candidate "elimina_los" outranks delete_file
	// thanks to the command-source bonus; the destructive lexicon still
	// gates it even though its computed risk is low.
	d := decide(t, e, k, "elimina los archivos temporales del proyecto")
	if d.Chosen.Source != domain.SourceCommand {
		t.Fatalf("chosen = %+v, want the explicit command candidate", d.Chosen)
	}
	if !d.ShouldAsk || d.ShouldExecute {
		t.Errorf("decision = %+v, want confirmation for a destructive verb", d)
	}
}

func TestDecideHighRiskForcesConfirmation(t *testing.T) {
	k := defaultKnowledge(t)
	e := NewEngine(k)

	analysis, ok := linguistic.Analyze("quita el archivo de configuracion del entorno")
	if !ok {
		t.Fatal("no analysis")
	}
	r := domain.ReasoningResult{
		Intent:     domain.Intent{Label: "delete", Priority: 8, Confidence: 0.92},
		Confidence: 0.9,
		SuggestedActions: []domain.SuggestedAction{
			{Type: domain.ActionDeleteFile, Priority: 8, Source: domain.SourceIntent, Origin: "delete"},
		},
	}

	d := e.Decide(analysis, r, nil)
	if d.Chosen.Type != domain.ActionDeleteFile {
		t.Fatalf("chosen = %q, want delete_file", d.Chosen.Type)
	}
	if d.Risk != domain.RiskHigh || !d.ShouldAsk || !d.Chosen.RequiresConfirmation {
		t.Errorf("decision = %+v, want high risk forcing confirmation", d)
	}
}

func TestDecideConfidenceStaysInRange(t *testing.T) {
	k := defaultKnowledge(t)
	e := NewEngine(k)

	for _, text := range []string{
		"hola",
		"busca archivos javascript",
		"elimina la base de datos de produccion ya mismo",
		"xyzzy",
	} {
		d := decide(t, e, k, text)
		if d.Confidence < 0.1 || d.Confidence > 1.0 {
			t.Errorf("Decide(%q) confidence = %v, want within [0.1, 1.0]", text, d.Confidence)
		}
	}
}

func TestClassifyRisk(t *testing.T) {
	shell, ok := linguistic.Analyze("ejecuta rm -rf /tmp/cosas")
	if !ok {
		t.Fatal("no analysis")
	}
	benign, ok := linguistic.Analyze("ejecuta ls -la por favor")
	if !ok {
		t.Fatal("no analysis")
	}

	tests := []struct {
		action   domain.ActionType
		analysis domain.LinguisticAnalysis
		want     domain.RiskLevel
	}{
		{domain.ActionDeleteFile, benign, domain.RiskHigh},
		{domain.ActionRunCommand, shell, domain.RiskHigh},
		{domain.ActionRunCommand, benign, domain.RiskMedium},
		{domain.ActionCreateProject, benign, domain.RiskMedium},
		{domain.ActionUpdateFile, benign, domain.RiskMedium},
		{domain.ActionSearchFiles, benign, domain.RiskLow},
	}
	for _, tt := range tests {
		if got := classifyRisk(tt.action, tt.analysis); got != tt.want {
			t.Errorf("classifyRisk(%q) = %q, want %q", tt.action, got, tt.want)
		}
	}
}

func TestIsDestructiveType(t *testing.T) {
	tests := []struct {
		action domain.ActionType
		want   bool
	}{
		{domain.ActionDeleteFile, true},
		{domain.ActionType("reset_config"), true},
		{domain.ActionType("borrar_todo"), true},
		{domain.ActionSearchFiles, false},
		{domain.ActionRespondGreeting, false},
	}
	for _, tt := range tests {
		if got := isDestructiveType(tt.action); got != tt.want {
			t.Errorf("isDestructiveType(%q) = %v, want %v", tt.action, got, tt.want)
		}
	}
}

func TestRankOrdering(t *testing.T) {
	candidates := []domain.Action{
		{Type: "a", Priority: 5, Feasibility: 0.9, Risk: domain.RiskLow},
		{Type: "b", Priority: 8, Feasibility: 0.5, Risk: domain.RiskHigh},
		{Type: "c", Priority: 8, Feasibility: 0.9, Risk: domain.RiskMedium},
		{Type: "d", Priority: 8, Feasibility: 0.9, Risk: domain.RiskLow},
	}
	rank(candidates)

	want := []domain.ActionType{"d", "c", "b", "a"}
	for i, w := range want {
		if candidates[i].Type != w {
			t.Fatalf("rank order = %v, want %v", candidates, want)
		}
	}
}

func TestDedupeByTypeKeepsFirstWithMaxPriority(t *testing.T) {
	in := []domain.Action{
		{Type: domain.ActionSearchFiles, Source: domain.SourceIntent, Priority: 6},
		{Type: domain.ActionGitStatus, Source: domain.SourceEntity, Priority: 7},
		{Type: domain.ActionSearchFiles, Source: domain.SourceInference, Priority: 8},
	}
	out := dedupeByType(in)

	if len(out) != 2 {
		t.Fatalf("got %d candidates, want 2: %v", len(out), out)
	}
	if out[0].Type != domain.ActionSearchFiles || out[0].Source != domain.SourceIntent {
		t.Errorf("first candidate = %+v, want the first occurrence kept", out[0])
	}
	if out[0].Priority != 8 {
		t.Errorf("priority = %d, want upgraded to 8", out[0].Priority)
	}
}

func TestRecordEvictsOldestBeyondLimit(t *testing.T) {
	e := NewEngine(domain.Knowledge{})
	for i := 0; i < domain.HistoryLimit+5; i++ {
		e.Record(domain.HistoryEntry{
			Timestamp: time.Unix(int64(i), 0),
			Message:   fmt.Sprintf("mensaje %d", i),
		})
	}

	history := e.History()
	if len(history) != domain.HistoryLimit {
		t.Fatalf("history length = %d, want %d", len(history), domain.HistoryLimit)
	}
	if history[0].Message != "mensaje 5" {
		t.Errorf("oldest entry = %q, want the five evicted", history[0].Message)
	}
	if history[len(history)-1].Message != fmt.Sprintf("mensaje %d", domain.HistoryLimit+4) {
		t.Errorf("newest entry = %q", history[len(history)-1].Message)
	}
}

func TestSelfReflect(t *testing.T) {
	e := NewEngine(domain.Knowledge{})

	if r := e.SelfReflect(); r.Total != 0 || r.SuccessRate != 0 {
		t.Fatalf("empty reflection = %+v", r)
	}

	add := func(action domain.ActionType, confidence float64, asked bool, n int) {
		for i := 0; i < n; i++ {
			e.Record(domain.HistoryEntry{Decision: domain.Decision{
				Chosen:     domain.Action{Type: action},
				Confidence: confidence,
				ShouldAsk:  asked,
			}})
		}
	}
	add(domain.ActionSearchFiles, 0.9, false, 4)
	add(domain.ActionRunCommand, 0.8, true, 3)
	add(domain.ActionGitStatus, 0.5, false, 2)
	add(domain.ActionDBQuery, 0.9, false, 1)

	r := e.SelfReflect()
	if r.Total != 10 {
		t.Fatalf("total = %d, want 10", r.Total)
	}
	if r.SuccessRate != 0.5 {
		t.Errorf("success rate = %v, want 0.5", r.SuccessRate)
	}
	wantPatterns := []domain.PatternCount{
		{Type: domain.ActionSearchFiles, Count: 4},
		{Type: domain.ActionRunCommand, Count: 3},
		{Type: domain.ActionGitStatus, Count: 2},
	}
	if len(r.CommonPatterns) != len(wantPatterns) {
		t.Fatalf("patterns = %v, want %v", r.CommonPatterns, wantPatterns)
	}
	for i, want := range wantPatterns {
		if r.CommonPatterns[i] != want {
			t.Errorf("pattern[%d] = %+v, want %+v", i, r.CommonPatterns[i], want)
		}
	}
	if len(r.AreasOfImprovement) == 0 {
		t.Error("success rate below 0.7 should report improvement areas")
	}
}
