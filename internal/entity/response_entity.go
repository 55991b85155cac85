package entity

import (
	"time"

	"github.com/google/uuid"
)

// SurveyResponse is the consolidated record written once when a session
// finishes: one flat mapping from question text to the submitted value.
// Immutable after creation.
type SurveyResponse struct {
	Id        uuid.UUID
	SurveyId  uuid.UUID
	UserId    string
	Answers   map[string]string
	CreatedAt time.Time
}
