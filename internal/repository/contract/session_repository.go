package contract

import (
	"context"

	"onboarding-survey-be/pkg/store"
)

// SessionRepository is the key-value store for in-flight survey attempts.
// Implementations own expiry; the flow core never touches process-global
// state. Get returns (nil, false, nil) for unknown or expired keys.
type SessionRepository interface {
	Get(ctx context.Context, sessionId string) (*store.SessionState, bool, error)
	Save(ctx context.Context, sessionId string, state *store.SessionState) error
	Delete(ctx context.Context, sessionId string) error
}
