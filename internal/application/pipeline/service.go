// Package pipeline coordinates one conversation: the Analyzer, Reasoning, and
// Decision engines run strictly sequentially per turn, followed by optional
// external execution and the context/history update. One Service instance
// owns one ConversationContext; it is single-writer by design.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/doeshing/jarvis-go/internal/decision"
	"github.com/doeshing/jarvis-go/internal/domain"
	"github.com/doeshing/jarvis-go/internal/linguistic"
	"github.com/doeshing/jarvis-go/internal/ports"
	"github.com/doeshing/jarvis-go/internal/reasoning"
)

// Defaults for the policies the upstream behavior leaves open.
const (
	DefaultExecTimeout      = 30 * time.Second
	DefaultPendingTurnLimit = 3
	DefaultPendingAge       = 5 * time.Minute
)

// TurnResult is the outcome of one processed turn.
type TurnResult struct {
	// Handled is false for empty/whitespace input, which produces no
	// analysis, no decision, and no response.
	Handled  bool
	Response string
	Decision *domain.Decision
	Outcome  *domain.ExecutionOutcome
}

// Service orchestrates the turn lifecycle end-to-end.
type Service struct {
	Reasoner *reasoning.Engine
	Decider  *decision.Engine
	Executor ports.ActionExecutor
	Memory   ports.MemoryStore
	Logger   ports.Logger

	// Preview suppresses external execution; decisions still render their
	// execution intent.
	Preview bool

	ExecTimeout      time.Duration
	PendingTurnLimit int
	PendingAge       time.Duration

	conv *domain.ConversationContext
	now  func() time.Time
}

// Context returns the conversation context, creating it on first use.
func (s *Service) Context() *domain.ConversationContext {
	if s.conv == nil {
		s.conv = &domain.ConversationContext{ID: uuid.NewString()}
	}
	return s.conv
}

// HandleTurn processes a single user message.
func (s *Service) HandleTurn(ctx context.Context, message string) (TurnResult, error) {
	if s.Reasoner == nil || s.Decider == nil || s.Logger == nil {
		return TurnResult{}, errors.New("pipeline.Service dependencies not satisfied")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	analysis, ok := linguistic.Analyze(message)
	if !ok {
		return TurnResult{}, nil
	}
	conv := s.Context()

	var notes []string
	if conv.State == domain.StateAwaitingConfirmation && conv.Pending != nil {
		result, resolved := s.resolveConfirmation(ctx, message, conv)
		if resolved {
			return result, nil
		}
		if note := s.expirePending(conv); note != "" {
			notes = append(notes, note)
		}
	}

	reasoned := s.Reasoner.Reason(analysis, conv)
	decided := s.Decider.Decide(analysis, reasoned, conv)
	response := s.Decider.RenderResponse(analysis.Original, decided)

	s.Logger.Debug("turn decided", map[string]interface{}{
		"conversation": conv.ID,
		"intent":       reasoned.Intent.Label,
		"action":       string(decided.Chosen.Type),
		"confidence":   decided.Confidence,
		"should_ask":   decided.ShouldAsk,
	})

	result := TurnResult{Handled: true, Decision: &decided}

	if decided.Chosen.Type == domain.ActionQueryMemory {
		response += s.recallMemories(decided.Chosen)
	}

	switch {
	case decided.ShouldAsk:
		if conv.Pending != nil {
			notes = append(notes, fmt.Sprintf("Descarto la confirmación anterior de '%s'.", conv.Pending.Action.Type))
		}
		conv.State = domain.StateAwaitingConfirmation
		conv.Pending = &domain.PendingAction{
			Action:    decided.Chosen,
			Message:   analysis.Original,
			CreatedAt: s.timeNow(),
		}
	case s.shouldRunExternally(decided.Chosen):
		outcome := s.execute(ctx, decided.Chosen)
		result.Outcome = &outcome
		response += " " + renderOutcome(outcome)
	}

	if len(notes) > 0 {
		response = strings.Join(notes, " ") + " " + response
	}
	result.Response = response

	s.commit(conv, analysis, reasoned, decided, response)
	return result, nil
}

// resolveConfirmation handles a reply while a confirmation is pending. The
// second return value is false when the reply is unrelated, in which case
// the message is processed as a normal turn.
func (s *Service) resolveConfirmation(ctx context.Context, message string, conv *domain.ConversationContext) (TurnResult, bool) {
	pending := conv.Pending
	switch linguistic.ClassifyReply(message) {
	case linguistic.ReplyYes:
		conv.State = domain.StateResolved
		conv.Pending = nil
		result := TurnResult{Handled: true}
		if s.Executor == nil || s.Preview {
			result.Response = fmt.Sprintf("Confirmado, pero la ejecución está desactivada; '%s' queda sin ejecutar.", pending.Action.Type)
			return result, true
		}
		outcome := s.execute(ctx, pending.Action)
		result.Outcome = &outcome
		result.Response = fmt.Sprintf("Confirmado. %s", renderOutcome(outcome))
		return result, true
	case linguistic.ReplyNo:
		conv.State = domain.StateResolved
		conv.Pending = nil
		return TurnResult{
			Handled:  true,
			Response: fmt.Sprintf("De acuerdo, descarto '%s'.", pending.Action.Type),
		}, true
	default:
		pending.TurnsWaited++
		return TurnResult{}, false
	}
}

// expirePending drops a pending action past the turn or age limit and returns
// the expiry note to prepend to the next response.
func (s *Service) expirePending(conv *domain.ConversationContext) string {
	pending := conv.Pending
	if pending == nil {
		return ""
	}
	turnLimit := s.PendingTurnLimit
	if turnLimit <= 0 {
		turnLimit = DefaultPendingTurnLimit
	}
	maxAge := s.PendingAge
	if maxAge <= 0 {
		maxAge = DefaultPendingAge
	}
	if pending.TurnsWaited < turnLimit && s.timeNow().Sub(pending.CreatedAt) < maxAge {
		return ""
	}
	conv.State = domain.StateResolved
	conv.Pending = nil
	return fmt.Sprintf("La confirmación pendiente de '%s' expiró sin respuesta; la descarto.", pending.Action.Type)
}

// shouldRunExternally filters out conversational action types that have no
// external effect.
func (s *Service) shouldRunExternally(a domain.Action) bool {
	if s.Executor == nil || s.Preview {
		return false
	}
	switch a.Type {
	case domain.ActionAskClarification, domain.ActionRespondGreeting,
		domain.ActionAnswerQuestion, domain.ActionExplainTopic,
		domain.ActionOfferHelp, domain.ActionQueryMemory:
		return false
	}
	return true
}

// execute calls the external executor under an explicit timeout; expiry is
// its own error condition, never a silent hang.
func (s *Service) execute(ctx context.Context, action domain.Action) domain.ExecutionOutcome {
	timeout := s.ExecTimeout
	if timeout <= 0 {
		timeout = DefaultExecTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	outcome, err := s.Executor.Execute(ctx, action)
	if err != nil {
		s.Logger.Error("executor failed", err, map[string]interface{}{"action": string(action.Type)})
		if outcome.Error == "" {
			outcome.Error = err.Error()
		}
		outcome.Success = false
	}
	return outcome
}

func renderOutcome(outcome domain.ExecutionOutcome) string {
	if !outcome.Success {
		reason := outcome.Error
		if reason == "" {
			reason = outcome.Message
		}
		return fmt.Sprintf("La ejecución falló: %s", reason)
	}
	if outcome.Summary != "" {
		return fmt.Sprintf("Hecho. %s", outcome.Summary)
	}
	return "Hecho."
}

// recallMemories folds prior conversation memories into a memory-class
// response.
func (s *Service) recallMemories(action domain.Action) string {
	if s.Memory == nil {
		return ""
	}
	query, _ := action.Params["query"].(string)
	records, err := s.Memory.Search(query, 3)
	if err != nil {
		s.Logger.Warn("memory search failed", map[string]interface{}{"error": err.Error()})
		return ""
	}
	if len(records) == 0 {
		return " No encontré nada guardado sobre eso."
	}
	var b strings.Builder
	for _, r := range records {
		b.WriteString(fmt.Sprintf(" Recuerdo (%s): %q.", r.Timestamp.Format("2006-01-02"), r.Message))
	}
	return b.String()
}

// commit runs step 9: history append, context update, and the memory write.
// It executes only after the turn fully completed.
func (s *Service) commit(conv *domain.ConversationContext, analysis domain.LinguisticAnalysis, reasoned domain.ReasoningResult, decided domain.Decision, response string) {
	s.Decider.Record(domain.HistoryEntry{
		Timestamp: decided.Timestamp,
		Message:   analysis.Original,
		Decision:  decided,
		Response:  response,
	})

	conv.LastMessage = analysis.Original
	conv.LastReasoning = &reasoned
	chosen := decided.Chosen
	conv.LastAction = &chosen
	conv.SetTopic(topicOf(reasoned))
	if conv.State != domain.StateAwaitingConfirmation {
		conv.State = domain.StateDeciding
	}

	if s.Memory != nil {
		record := domain.MemoryRecord{
			Timestamp:    decided.Timestamp,
			Conversation: conv.ID,
			Message:      analysis.Original,
			Response:     response,
			Intent:       reasoned.Intent.Label,
			Topic:        conv.Topic,
			Confidence:   decided.Confidence,
		}
		if err := s.Memory.Save(record); err != nil {
			s.Logger.Warn("memory save failed", map[string]interface{}{"error": err.Error()})
		}
	}
}

// topicOf picks the conversation topic: dominant entity, else first keyword,
// else the intent label.
func topicOf(r domain.ReasoningResult) string {
	if entity := r.DominantEntity(); entity != "" {
		return entity
	}
	if len(r.Keywords) > 0 {
		return r.Keywords[0]
	}
	if r.Intent.Known() {
		return r.Intent.Label
	}
	return ""
}

func (s *Service) timeNow() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}
