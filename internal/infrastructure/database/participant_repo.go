package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"rosterbot/internal/domain"
	"rosterbot/internal/domain/entities"
	"rosterbot/internal/infrastructure/database/queries"
	"rosterbot/internal/ports/output"
)

const foreignKeyViolation = "23503"

var _ output.ParticipantRepository = (*ParticipantRepository)(nil)

type ParticipantRepository struct {
	q *queries.Queries
}

func NewParticipantRepository(q *queries.Queries) *ParticipantRepository {
	return &ParticipantRepository{q: q}
}

func (r *ParticipantRepository) Create(ctx context.Context, eventID int64, name string) (*entities.Participant, error) {
	row, err := r.q.CreateParticipant(ctx, queries.CreateParticipantParams{
		EventID:  eventID,
		Username: name,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("create participant: %w", err)
	}
	p := participantToDomain(row)
	return &p, nil
}

func (r *ParticipantRepository) FindByEventID(ctx context.Context, eventID int64) ([]entities.Participant, error) {
	rows, err := r.q.GetParticipantsByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get participants by event id: %w", err)
	}
	return participantsToDomain(rows), nil
}

// DeleteFromEvent removes the participant only if it belongs to eventID.
func (r *ParticipantRepository) DeleteFromEvent(ctx context.Context, eventID, participantID int64) (int64, error) {
	n, err := r.q.DeleteParticipantFromEvent(ctx, queries.DeleteParticipantFromEventParams{
		ID:      participantID,
		EventID: eventID,
	})
	if err != nil {
		return 0, fmt.Errorf("delete participant: %w", err)
	}
	return n, nil
}
