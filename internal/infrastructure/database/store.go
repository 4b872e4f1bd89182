package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rosterbot/internal/infrastructure/database/queries"
	"rosterbot/internal/ports/output"
)

var _ output.Store = (*Store)(nil)

// Store opens one transaction per session on a pgx pool.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// WithinSession runs fn inside a transaction. It commits once when fn
// returns nil and rolls back otherwise.
func (s *Store) WithinSession(ctx context.Context, fn func(ctx context.Context, session output.Session) error) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		return fn(ctx, newSession(queries.New(tx)))
	})
}

type session struct {
	events       *EventRepository
	participants *ParticipantRepository
}

func newSession(q *queries.Queries) *session {
	return &session{
		events:       NewEventRepository(q),
		participants: NewParticipantRepository(q),
	}
}

func (s *session) Events() output.EventRepository             { return s.events }
func (s *session) Participants() output.ParticipantRepository { return s.participants }
