package output

import (
	"context"

	"rosterbot/internal/domain/entities"
)

type ParticipantRepository interface {
	Create(ctx context.Context, eventID int64, name string) (*entities.Participant, error)
	FindByEventID(ctx context.Context, eventID int64) ([]entities.Participant, error)
	// DeleteFromEvent removes the participant only when it belongs to eventID.
	DeleteFromEvent(ctx context.Context, eventID, participantID int64) (int64, error)
}
