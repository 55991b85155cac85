package redisstore

import (
	"context"
	"testing"
	"time"

	"onboarding-survey-be/internal/repository/contract"
	"onboarding-survey-be/pkg/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// newTestSessionRepository backs the repository with a miniredis server.
func newTestSessionRepository(t *testing.T) (contract.SessionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewSessionRepository(client, time.Hour), mr
}

func TestSessionRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestSessionRepository(t)

	sessionId := uuid.New().String()
	surveyId := uuid.New()
	state := store.NewSessionState(surveyId, "user-1", "Start")
	state.SetSectionAnswers("Start", map[string]string{"question_x": "hello"})

	err := repo.Save(ctx, sessionId, state)
	assert.NoError(t, err)

	got, found, err := repo.Get(ctx, sessionId)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, surveyId, got.SurveyId)
	assert.Equal(t, "user-1", got.UserId)
	assert.Equal(t, "hello", got.Responses["Start"]["question_x"])
}

func TestSessionRepositoryMissingKey(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestSessionRepository(t)

	got, found, err := repo.Get(ctx, "never-created")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestSessionRepositoryExpiry(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestSessionRepository(t)

	sessionId := uuid.New().String()
	err := repo.Save(ctx, sessionId, store.NewSessionState(uuid.New(), "user-1", "Start"))
	assert.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	_, found, err := repo.Get(ctx, sessionId)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestSessionRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestSessionRepository(t)

	sessionId := uuid.New().String()
	err := repo.Save(ctx, sessionId, store.NewSessionState(uuid.New(), "user-1", "Start"))
	assert.NoError(t, err)

	err = repo.Delete(ctx, sessionId)
	assert.NoError(t, err)

	_, found, err := repo.Get(ctx, sessionId)
	assert.NoError(t, err)
	assert.False(t, found)
}
