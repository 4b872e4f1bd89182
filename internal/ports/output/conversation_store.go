package output

import (
	"context"
	"time"

	"rosterbot/internal/domain/entities"
)

// ConversationStore keeps per-user wizard state. Get returns an idle
// conversation for unknown users.
type ConversationStore interface {
	Get(ctx context.Context, userID int64) (*entities.Conversation, error)
	Put(ctx context.Context, c *entities.Conversation) error
	Clear(ctx context.Context, userID int64) error
	// Expire drops conversations last updated before the cutoff and returns how many were dropped.
	Expire(ctx context.Context, before time.Time) (int, error)
}
