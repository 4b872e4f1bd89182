package application

import (
	"context"
	"fmt"

	"rosterbot/internal/domain/entities"
	"rosterbot/internal/ports/input"
	"rosterbot/internal/ports/output"
)

var _ input.ParticipantUseCase = (*ParticipantService)(nil)

type ParticipantService struct {
	participantRepo output.ParticipantRepository
	eventRepo       output.EventRepository
}

func NewParticipantService(
	participantRepo output.ParticipantRepository,
	eventRepo output.EventRepository,
) *ParticipantService {
	return &ParticipantService{
		participantRepo: participantRepo,
		eventRepo:       eventRepo,
	}
}

// AddParticipant inserts the participant and re-reads the parent event with
// its full roster. Both steps run on the caller's session.
func (s *ParticipantService) AddParticipant(ctx context.Context, eventID int64, name string) (*entities.Event, error) {
	if _, err := s.participantRepo.Create(ctx, eventID, name); err != nil {
		return nil, fmt.Errorf("create participant: %w", err)
	}
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("reload event: %w", err)
	}
	if event.Participants == nil {
		event.Participants = []entities.Participant{}
	}
	return event, nil
}

func (s *ParticipantService) ListParticipants(ctx context.Context, eventID int64) ([]entities.Participant, error) {
	return s.participantRepo.FindByEventID(ctx, eventID)
}

// RemoveParticipant deletes the participant only when it belongs to eventID.
func (s *ParticipantService) RemoveParticipant(ctx context.Context, eventID, participantID int64) error {
	if _, err := s.participantRepo.DeleteFromEvent(ctx, eventID, participantID); err != nil {
		return fmt.Errorf("delete participant: %w", err)
	}
	return nil
}
