package domain

import "time"

// ConfirmationState tracks the pending-confirmation state machine for one
// conversation: Deciding -> AwaitingConfirmation when a decision requires
// confirmation, then Resolved on an explicit reply or on expiry.
type ConfirmationState int

const (
	StateDeciding ConfirmationState = iota
	StateAwaitingConfirmation
	StateResolved
)

// PendingAction caches a deferred action between turns while the system
// waits for the user to confirm or decline it.
type PendingAction struct {
	Action    Action
	Message   string
	CreatedAt time.Time
	// TurnsWaited counts non-resolving turns since the action was deferred;
	// the pipeline expires the pending action when it reaches the limit.
	TurnsWaited int
}

// ConversationContext is the short-lived mutable state of one conversation.
// It is not thread-safe: each conversation owns an independent instance and turns
// must be processed strictly sequentially.
type ConversationContext struct {
	ID            string
	LastMessage   string
	LastReasoning *ReasoningResult
	LastAction    *Action
	Topic         string
	FollowUps     int
	State         ConfirmationState
	Pending       *PendingAction
}

// SetTopic updates the current topic, resetting the follow-up counter when
// the topic changes and incrementing it otherwise.
func (c *ConversationContext) SetTopic(topic string) {
	if topic == "" {
		return
	}
	if topic != c.Topic {
		c.Topic = topic
		c.FollowUps = 0
		return
	}
	c.FollowUps++
}
