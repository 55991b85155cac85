package memory

import (
	"context"
	"time"

	"onboarding-survey-be/internal/repository/contract"
	"onboarding-survey-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps survey attempts in process memory with TTL expiry.
// Suitable for single-instance deployments; use the Redis store when running
// more than one replica.
type SessionRepository struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewSessionRepository(ttl time.Duration) contract.SessionRepository {
	c := cache.New(ttl, ttl/4)
	return &SessionRepository{
		cache: c,
		ttl:   ttl,
	}
}

func (r *SessionRepository) Get(_ context.Context, sessionId string) (*store.SessionState, bool, error) {
	if x, found := r.cache.Get(sessionId); found {
		return x.(*store.SessionState), true, nil
	}
	return nil, false, nil
}

func (r *SessionRepository) Save(_ context.Context, sessionId string, state *store.SessionState) error {
	r.cache.Set(sessionId, state, cache.DefaultExpiration)
	return nil
}

func (r *SessionRepository) Delete(_ context.Context, sessionId string) error {
	r.cache.Delete(sessionId)
	return nil
}
