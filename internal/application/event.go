package application

import (
	"context"
	"fmt"
	"time"

	"rosterbot/internal/domain/entities"
	"rosterbot/internal/ports/input"
	"rosterbot/internal/ports/output"
)

var _ input.EventUseCase = (*EventService)(nil)

type EventService struct {
	eventRepo output.EventRepository
}

func NewEventService(eventRepo output.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

func (s *EventService) CreateEvent(ctx context.Context, title string, date time.Time, ownerID int64) (*entities.Event, error) {
	event, err := s.eventRepo.Create(ctx, title, calendarDate(date), ownerID)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *EventService) ListEvents(ctx context.Context, ownerID int64) ([]entities.Event, error) {
	return s.eventRepo.FindByOwnerID(ctx, ownerID)
}

// GetEvent fetches by id alone; callers needing owner scoping check Event.OwnedBy.
func (s *EventService) GetEvent(ctx context.Context, eventID int64) (*entities.Event, error) {
	return s.eventRepo.FindByID(ctx, eventID)
}

// DeleteEvent removes an owned event and, by cascade, its roster. Deleting
// a foreign or missing event affects nothing and is not an error.
func (s *EventService) DeleteEvent(ctx context.Context, ownerID, eventID int64) error {
	if _, err := s.eventRepo.DeleteOwned(ctx, ownerID, eventID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
