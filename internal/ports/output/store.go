package output

import "context"

// Session is a request-scoped unit of work. Repositories obtained from a
// session share its transaction.
type Session interface {
	Events() EventRepository
	Participants() ParticipantRepository
}

// Store opens sessions. WithinSession commits once when fn returns nil and
// rolls back on any error, so the session never outlives fn.
type Store interface {
	WithinSession(ctx context.Context, fn func(ctx context.Context, s Session) error) error
}
