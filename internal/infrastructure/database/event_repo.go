package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"rosterbot/internal/domain"
	"rosterbot/internal/domain/entities"
	"rosterbot/internal/infrastructure/database/queries"
	"rosterbot/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

type EventRepository struct {
	q *queries.Queries
}

func NewEventRepository(q *queries.Queries) *EventRepository {
	return &EventRepository{q: q}
}

func (r *EventRepository) Create(ctx context.Context, title string, date time.Time, ownerID int64) (*entities.Event, error) {
	row, err := r.q.CreateEvent(ctx, queries.CreateEventParams{
		Title:     title,
		Date:      timeToPgDate(date),
		CreatorID: ownerID,
	})
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	e := eventToDomain(row)
	e.Participants = []entities.Participant{}
	return &e, nil
}

func (r *EventRepository) FindByOwnerID(ctx context.Context, ownerID int64) ([]entities.Event, error) {
	rows, err := r.q.GetEventsByCreatorID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get events by creator id: %w", err)
	}
	out := make([]entities.Event, len(rows))
	for i := range rows {
		out[i] = eventToDomain(rows[i])
	}
	return out, nil
}

// FindByID returns the event with its roster, or domain.ErrEventNotFound.
func (r *EventRepository) FindByID(ctx context.Context, id int64) (*entities.Event, error) {
	row, err := r.q.GetEventByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	e := eventToDomain(row)
	if err := r.attachParticipants(ctx, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) attachParticipants(ctx context.Context, e *entities.Event) error {
	participants, err := r.q.GetParticipantsByEventID(ctx, e.ID)
	if err != nil {
		return fmt.Errorf("get participants: %w", err)
	}
	e.Participants = participantsToDomain(participants)
	return nil
}

// DeleteOwned deletes the event only when ownerID created it. Participants
// go with it through ON DELETE CASCADE.
func (r *EventRepository) DeleteOwned(ctx context.Context, ownerID, eventID int64) (int64, error) {
	n, err := r.q.DeleteEventByCreator(ctx, queries.DeleteEventByCreatorParams{
		ID:        eventID,
		CreatorID: ownerID,
	})
	if err != nil {
		return 0, fmt.Errorf("delete event: %w", err)
	}
	return n, nil
}
