package linguistic

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/jarvis-go/internal/domain"
)

func TestAnalyzeEmptyInputIsNoOp(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		if _, ok := Analyze(input); ok {
			t.Fatalf("Analyze(%q) should be a no-op", input)
		}
	}
}

func TestNormalizeStripsDiacritics(t *testing.T) {
	got := Normalize("¿Qué ARCHIVOS están aquí? Mañana")
	want := "¿que archivos estan aqui? manana"
	if got != want {
		t.Fatalf("Normalize = %q, want %q", got, want)
	}
}

func TestAnalyzeKeepsOriginalText(t *testing.T) {
	analysis, ok := Analyze("Busca el archivo Módulo.go")
	if !ok {
		t.Fatal("expected analysis")
	}
	if analysis.Original != "Busca el archivo Módulo.go" {
		t.Fatalf("original mutated: %q", analysis.Original)
	}
	if analysis.Normalized != "busca el archivo modulo.go" {
		t.Fatalf("normalized = %q", analysis.Normalized)
	}
}

func TestExtractEntitiesMultipleKinds(t *testing.T) {
	analysis, ok := Analyze("revisa src/main.go y https://example.com con docker, versión 2.5")
	if !ok {
		t.Fatal("expected analysis")
	}
	for _, kind := range []domain.EntityKind{
		domain.EntityFilePath,
		domain.EntityURL,
		domain.EntityTechnology,
		domain.EntityNumber,
	} {
		if !analysis.HasEntityKind(kind) {
			t.Fatalf("missing entity kind %s in %+v", kind, analysis.Entities)
		}
	}
}

func TestExtractEntitiesOverlappingKinds(t *testing.T) {
	// A shell command containing a path should be tagged as both.
	matches := ExtractEntities("rm -rf /tmp/datos/viejos")
	kinds := map[domain.EntityKind]bool{}
	for _, m := range matches {
		kinds[m.Kind] = true
	}
	if !kinds[domain.EntityShellCommand] || !kinds[domain.EntityFilePath] {
		t.Fatalf("expected shell-command and filepath tags, got %+v", matches)
	}
}

func TestDetectQuestionType(t *testing.T) {
	tests := []struct {
		text string
		want domain.QuestionType
		isQ  bool
	}{
		{"¿cómo funciona esto?", domain.QuestionHow, true},
		{"cuándo sale la versión?", domain.QuestionWhen, true},
		{"dónde está el archivo?", domain.QuestionWhere, true},
		{"¿por qué falla?", domain.QuestionWhy, true},
		{"¿quién hizo el commit?", domain.QuestionWho, true},
		{"¿puedes revisar esto?", domain.QuestionYesNo, true},
		{"esto sí o no?", domain.QuestionGeneral, true},
		{"lista los archivos", domain.QuestionNone, false},
	}
	for _, tt := range tests {
		got := DetectQuestionType(Normalize(tt.text))
		if got.IsQuestion != tt.isQ || got.Type != tt.want {
			t.Errorf("DetectQuestionType(%q) = %+v, want {%v %s}", tt.text, got, tt.isQ, tt.want)
		}
	}
}

func TestDetectTimeReferenceFlagsAreIndependent(t *testing.T) {
	analysis, ok := Analyze("ayer falló y ahora mismo necesito que funcione, mañana hay demo")
	if !ok {
		t.Fatal("expected analysis")
	}
	want := domain.TimeReference{Past: true, Present: true, Future: true, Immediate: true}
	if diff := cmp.Diff(want, analysis.TimeRef); diff != "" {
		t.Fatalf("time reference mismatch (-want +got):\n%s", diff)
	}
}

func TestDetectNegationFirstMatchWins(t *testing.T) {
	analysis, ok := Analyze("no quiero que borres nada, nunca")
	if !ok {
		t.Fatal("expected analysis")
	}
	if !analysis.Negation.Present || analysis.Negation.Pattern != "no quiero" {
		t.Fatalf("negation = %+v, want first pattern 'no quiero'", analysis.Negation)
	}
}

func TestExtractCommands(t *testing.T) {
	analysis, ok := Analyze("Crea un proyecto nuevo. Busca los tests viejos")
	if !ok {
		t.Fatal("expected analysis")
	}
	want := []domain.CommandPhrase{
		{Verb: "crea", Object: "un proyecto nuevo"},
		{Verb: "busca", Object: "los tests viejos"},
	}
	if diff := cmp.Diff(want, analysis.Commands); diff != "" {
		t.Fatalf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestCommandSlug(t *testing.T) {
	tests := []struct {
		cmd  domain.CommandPhrase
		want string
	}{
		{domain.CommandPhrase{Verb: "crea", Object: "proyecto nuevo"}, "crea_proyecto"},
		{domain.CommandPhrase{Verb: "busca", Object: ""}, "busca"},
	}
	for _, tt := range tests {
		if got := CommandSlug(tt.cmd); got != tt.want {
			t.Errorf("CommandSlug(%+v) = %q, want %q", tt.cmd, got, tt.want)
		}
	}
}

func TestAnalyzeSentimentShoutingIsFrustration(t *testing.T) {
	analysis, ok := Analyze("NADA DE ESTO SIRVE!!! TODO ROTO!!!")
	if !ok {
		t.Fatal("expected analysis")
	}
	if analysis.Sentiment.Polarity != domain.SentimentNegative {
		t.Fatalf("polarity = %s, want negative", analysis.Sentiment.Polarity)
	}
	if !analysis.Sentiment.Frustration {
		t.Fatal("expected frustration flag")
	}
}

func TestAnalyzeSentimentPositive(t *testing.T) {
	analysis, ok := Analyze("gracias, quedó genial")
	if !ok {
		t.Fatal("expected analysis")
	}
	if analysis.Sentiment.Polarity != domain.SentimentPositive || analysis.Sentiment.Score < 2 {
		t.Fatalf("sentiment = %+v, want positive >= 2", analysis.Sentiment)
	}
}

func TestIsFollowUp(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"también los de ayer", true},
		{"dale", true},
		{"ok perfecto", true},
		{"busca todos los archivos de configuración del proyecto", false},
		{"y eso?", true}, // starter wins over the question mark
	}
	for _, tt := range tests {
		analysis, ok := Analyze(tt.text)
		if !ok {
			t.Fatalf("expected analysis for %q", tt.text)
		}
		if analysis.FollowUp != tt.want {
			t.Errorf("FollowUp(%q) = %v, want %v", tt.text, analysis.FollowUp, tt.want)
		}
	}
}

func TestTopKeywordsRankedByFrequency(t *testing.T) {
	analysis, ok := Analyze("error error error archivo archivo config")
	if !ok {
		t.Fatal("expected analysis")
	}
	got := TopKeywords(analysis.Tokens, 5)
	want := []string{"error", "archivo", "config"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("keywords mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyReply(t *testing.T) {
	tests := []struct {
		text string
		want Reply
	}{
		{"sí", ReplyYes},
		{"dale!", ReplyYes},
		{"Claro", ReplyYes},
		{"no", ReplyNo},
		{"no, mejor no", ReplyNo},
		{"cancela eso", ReplyNo},
		{"mmm a ver", ReplyUnknown},
		{"analiza el rendimiento", ReplyUnknown},
	}
	for _, tt := range tests {
		if got := ClassifyReply(tt.text); got != tt.want {
			t.Errorf("ClassifyReply(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
