package input

import (
	"context"
	"time"

	"rosterbot/internal/domain"
	"rosterbot/internal/domain/entities"
)

// Transition is the outcome of feeding one input into the conversation
// state machine.
type Transition struct {
	From  domain.WizardState
	To    domain.WizardState
	Reply string          // lexicon key to answer with
	Event *entities.Event // set when a wizard persisted or touched an event
}

type ConversationUseCase interface {
	Current(ctx context.Context, userID int64) (*entities.Conversation, error)
	StartEventCreation(ctx context.Context, userID int64) (Transition, error)
	SubmitEventName(ctx context.Context, userID int64, text string, isText bool) (Transition, error)
	SubmitEventDate(ctx context.Context, events EventUseCase, userID int64, text string, isText bool) (Transition, error)
	SelectEvent(ctx context.Context, userID, eventID int64) error
	StartParticipantAdd(ctx context.Context, userID, promptChatID, promptMessageID int64) (Transition, error)
	SubmitParticipantName(ctx context.Context, participants ParticipantUseCase, userID int64, name string) (Transition, error)
	// Finish returns the user to idle once a submitted wizard result is
	// durable.
	Finish(ctx context.Context, userID int64) error
	Cancel(ctx context.Context, userID int64) (bool, error)
	ExpireIdle(ctx context.Context, maxIdle time.Duration) (int, error)
}
