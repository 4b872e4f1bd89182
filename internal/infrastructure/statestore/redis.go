package statestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"rosterbot/internal/domain/entities"
	"rosterbot/internal/ports/output"
)

const keyPrefix = "rosterbot:conversation:"

var _ output.ConversationStore = (*Redis)(nil)

// Redis stores each conversation as a JSON string under
// rosterbot:conversation:<user id>. A positive ttl lets Redis drop idle
// wizards on its own.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func key(userID int64) string {
	return keyPrefix + strconv.FormatInt(userID, 10)
}

func (r *Redis) Get(ctx context.Context, userID int64) (*entities.Conversation, error) {
	raw, err := r.client.Get(ctx, key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &entities.Conversation{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	var c entities.Conversation
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode conversation: %w", err)
	}
	return &c, nil
}

func (r *Redis) Put(ctx context.Context, c *entities.Conversation) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode conversation: %w", err)
	}
	if err := r.client.Set(ctx, key(c.UserID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *Redis) Clear(ctx context.Context, userID int64) error {
	if err := r.client.Del(ctx, key(userID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Expire scans all conversation keys and drops the stale ones. Keys with a
// TTL usually vanish before this runs.
func (r *Redis) Expire(ctx context.Context, before time.Time) (int, error) {
	n := 0
	iter := r.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		raw, err := r.client.Get(ctx, iter.Val()).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return n, fmt.Errorf("redis get: %w", err)
		}
		var c entities.Conversation
		if err := json.Unmarshal(raw, &c); err != nil || c.UpdatedAt.Before(before) {
			if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
				return n, fmt.Errorf("redis del: %w", err)
			}
			n++
		}
	}
	if err := iter.Err(); err != nil {
		return n, fmt.Errorf("redis scan: %w", err)
	}
	return n, nil
}

// Ping checks connectivity at start-up.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
