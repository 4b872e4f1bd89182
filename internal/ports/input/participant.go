package input

import (
	"context"

	"rosterbot/internal/domain/entities"
)

type ParticipantUseCase interface {
	// AddParticipant returns the parent event with its up-to-date roster.
	AddParticipant(ctx context.Context, eventID int64, name string) (*entities.Event, error)
	ListParticipants(ctx context.Context, eventID int64) ([]entities.Participant, error)
	RemoveParticipant(ctx context.Context, eventID, participantID int64) error
}
