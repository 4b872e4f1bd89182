package input

import (
	"context"
	"time"

	"rosterbot/internal/domain/entities"
)

type EventUseCase interface {
	CreateEvent(ctx context.Context, title string, date time.Time, ownerID int64) (*entities.Event, error)
	ListEvents(ctx context.Context, ownerID int64) ([]entities.Event, error)
	GetEvent(ctx context.Context, eventID int64) (*entities.Event, error)
	DeleteEvent(ctx context.Context, ownerID, eventID int64) error
}
