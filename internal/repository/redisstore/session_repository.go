package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"onboarding-survey-be/internal/repository/contract"
	"onboarding-survey-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "survey_session:"

// SessionRepository persists survey attempts in Redis so sessions survive
// process restarts and are shared across replicas. State is JSON under a
// prefixed key with a TTL refreshed on every save.
type SessionRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionRepository(rdb *redis.Client, ttl time.Duration) contract.SessionRepository {
	return &SessionRepository{
		rdb: rdb,
		ttl: ttl,
	}
}

func (r *SessionRepository) Get(ctx context.Context, sessionId string) (*store.SessionState, bool, error) {
	raw, err := r.rdb.Get(ctx, keyPrefix+sessionId).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read session %s: %w", sessionId, err)
	}

	var state store.SessionState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, false, fmt.Errorf("failed to decode session %s: %w", sessionId, err)
	}
	return &state, true, nil
}

func (r *SessionRepository) Save(ctx context.Context, sessionId string, state *store.SessionState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", sessionId, err)
	}
	if err := r.rdb.Set(ctx, keyPrefix+sessionId, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write session %s: %w", sessionId, err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionId string) error {
	if err := r.rdb.Del(ctx, keyPrefix+sessionId).Err(); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", sessionId, err)
	}
	return nil
}
