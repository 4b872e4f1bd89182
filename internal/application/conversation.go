package application

import (
	"context"
	"fmt"
	"time"

	"rosterbot/internal/domain"
	"rosterbot/internal/domain/entities"
	"rosterbot/internal/ports/input"
	"rosterbot/internal/ports/output"
)

// Lexicon keys the state machine answers with.
const (
	ReplyCreateEvent          = "create_event"
	ReplyEnterDate            = "enter_date"
	ReplyWarningEventName     = "warning_not_event_name"
	ReplyWarningEventDate     = "warning_not_event_date"
	ReplyEventSaved           = "event_saved"
	ReplyEnterParticipantName = "enter_participant_name"
	ReplyParticipantAdded     = "participant_added"
)

var _ input.ConversationUseCase = (*ConversationService)(nil)

// promptDeleter removes the stale "enter a name" prompt once the name arrives.
type promptDeleter interface {
	Delete(ctx context.Context, chatID, messageID int64) error
}

// ConversationService is the per-user wizard state machine. It is not safe
// to feed two inputs of the same user concurrently; the router serializes
// updates per user.
type ConversationService struct {
	store   output.ConversationStore
	prompts promptDeleter
	now     func() time.Time
}

func NewConversationService(store output.ConversationStore, prompts promptDeleter) *ConversationService {
	return &ConversationService{
		store:   store,
		prompts: prompts,
		now:     time.Now,
	}
}

func (s *ConversationService) Current(ctx context.Context, userID int64) (*entities.Conversation, error) {
	c, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load conversation: %w", err)
	}
	return c, nil
}

// StartEventCreation enters the create-event wizard. An active wizard is
// cancelled and its staged data dropped before restarting.
func (s *ConversationService) StartEventCreation(ctx context.Context, userID int64) (input.Transition, error) {
	c, err := s.Current(ctx, userID)
	if err != nil {
		return input.Transition{}, err
	}
	from := c.State
	s.dropPrompt(ctx, c)
	c.Reset()
	c.State = domain.StateAwaitingEventName
	if err := s.save(ctx, c); err != nil {
		return input.Transition{}, err
	}
	return input.Transition{From: from, To: c.State, Reply: ReplyCreateEvent}, nil
}

func (s *ConversationService) SubmitEventName(ctx context.Context, userID int64, text string, isText bool) (input.Transition, error) {
	c, err := s.expect(ctx, userID, domain.StateAwaitingEventName)
	if err != nil {
		return input.Transition{}, err
	}
	if !isText {
		return stay(c, ReplyWarningEventName), nil
	}
	c.EventName = text
	c.State = domain.StateAwaitingEventDate
	if err := s.save(ctx, c); err != nil {
		return input.Transition{}, err
	}
	return input.Transition{From: domain.StateAwaitingEventName, To: c.State, Reply: ReplyEnterDate}, nil
}

// SubmitEventDate persists the event on a valid DD/MM/YYYY date. Invalid
// input keeps the wizard waiting for a date. The staged data stays until
// Finish, so a failed or rolled back save can be retried.
func (s *ConversationService) SubmitEventDate(ctx context.Context, events input.EventUseCase, userID int64, text string, isText bool) (input.Transition, error) {
	c, err := s.expect(ctx, userID, domain.StateAwaitingEventDate)
	if err != nil {
		return input.Transition{}, err
	}
	if !isText {
		return stay(c, ReplyWarningEventDate), nil
	}
	date, err := ParseEventDate(text)
	if err != nil {
		return stay(c, ReplyWarningEventDate), nil
	}
	event, err := events.CreateEvent(ctx, c.EventName, date, userID)
	if err != nil {
		return input.Transition{}, err
	}
	return input.Transition{From: domain.StateAwaitingEventDate, To: domain.StateIdle, Reply: ReplyEventSaved, Event: event}, nil
}

// SelectEvent stages the event picked on the edit screen. The user stays idle.
func (s *ConversationService) SelectEvent(ctx context.Context, userID, eventID int64) error {
	c, err := s.Current(ctx, userID)
	if err != nil {
		return err
	}
	if !c.State.IsIdle() {
		return domain.ErrWizardBusy
	}
	c.EventID = eventID
	return s.save(ctx, c)
}

// StartParticipantAdd enters the add-participant wizard for the staged
// event. It is refused while another wizard runs or when nothing is staged.
// The prompt reference is the message the caller turns into the name prompt.
func (s *ConversationService) StartParticipantAdd(ctx context.Context, userID, promptChatID, promptMessageID int64) (input.Transition, error) {
	c, err := s.Current(ctx, userID)
	if err != nil {
		return input.Transition{}, err
	}
	if !c.State.IsIdle() {
		return input.Transition{}, domain.ErrWizardBusy
	}
	if !c.HasStagedEvent() {
		return input.Transition{}, domain.ErrNoEventSelected
	}
	c.State = domain.StateAwaitingParticipantName
	c.PromptChatID = promptChatID
	c.PromptMessageID = promptMessageID
	if err := s.save(ctx, c); err != nil {
		return input.Transition{}, err
	}
	return input.Transition{From: domain.StateIdle, To: c.State, Reply: ReplyEnterParticipantName}, nil
}

// SubmitParticipantName accepts any content as the name. The prompt and the
// wizard are only dropped by Finish.
func (s *ConversationService) SubmitParticipantName(ctx context.Context, participants input.ParticipantUseCase, userID int64, name string) (input.Transition, error) {
	c, err := s.expect(ctx, userID, domain.StateAwaitingParticipantName)
	if err != nil {
		return input.Transition{}, err
	}
	event, err := participants.AddParticipant(ctx, c.EventID, name)
	if err != nil {
		return input.Transition{}, err
	}
	return input.Transition{From: domain.StateAwaitingParticipantName, To: domain.StateIdle, Reply: ReplyParticipantAdded, Event: event}, nil
}

// Finish completes a wizard whose result has been committed: the name
// prompt is deleted on a best-effort basis and the user is back to idle.
func (s *ConversationService) Finish(ctx context.Context, userID int64) error {
	c, err := s.Current(ctx, userID)
	if err != nil {
		return err
	}
	s.dropPrompt(ctx, c)
	if err := s.store.Clear(ctx, userID); err != nil {
		return fmt.Errorf("clear conversation: %w", err)
	}
	return nil
}

// Cancel clears any active wizard and reports whether one was active.
func (s *ConversationService) Cancel(ctx context.Context, userID int64) (bool, error) {
	c, err := s.Current(ctx, userID)
	if err != nil {
		return false, err
	}
	if c.State.IsIdle() {
		return false, nil
	}
	if err := s.store.Clear(ctx, userID); err != nil {
		return false, fmt.Errorf("clear conversation: %w", err)
	}
	return true, nil
}

// ExpireIdle drops conversations untouched for longer than maxIdle.
func (s *ConversationService) ExpireIdle(ctx context.Context, maxIdle time.Duration) (int, error) {
	if maxIdle <= 0 {
		return 0, nil
	}
	return s.store.Expire(ctx, s.now().Add(-maxIdle))
}

func (s *ConversationService) expect(ctx context.Context, userID int64, state domain.WizardState) (*entities.Conversation, error) {
	c, err := s.Current(ctx, userID)
	if err != nil {
		return nil, err
	}
	if c.State != state {
		return nil, fmt.Errorf("%w: want %s, have %s", domain.ErrUnexpectedWizardStep, state, c.State)
	}
	return c, nil
}

func (s *ConversationService) save(ctx context.Context, c *entities.Conversation) error {
	c.UpdatedAt = s.now()
	if err := s.store.Put(ctx, c); err != nil {
		return fmt.Errorf("save conversation: %w", err)
	}
	return nil
}

func (s *ConversationService) dropPrompt(ctx context.Context, c *entities.Conversation) {
	if c.PromptMessageID == 0 || s.prompts == nil {
		return
	}
	_ = s.prompts.Delete(ctx, c.PromptChatID, c.PromptMessageID)
}

func stay(c *entities.Conversation, reply string) input.Transition {
	return input.Transition{From: c.State, To: c.State, Reply: reply}
}
