package output

import (
	"context"
	"time"

	"rosterbot/internal/domain/entities"
)

type EventRepository interface {
	Create(ctx context.Context, title string, date time.Time, ownerID int64) (*entities.Event, error)
	FindByOwnerID(ctx context.Context, ownerID int64) ([]entities.Event, error)
	// FindByID loads the event with its participants, or domain.ErrEventNotFound.
	FindByID(ctx context.Context, id int64) (*entities.Event, error)
	// DeleteOwned removes the event only when ownerID owns it and returns the affected row count.
	DeleteOwned(ctx context.Context, ownerID, eventID int64) (int64, error)
}
