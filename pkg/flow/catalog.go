package flow

import (
	"context"

	"onboarding-survey-be/internal/entity"

	"github.com/google/uuid"
)

// Catalog is the read-only lookup surface the flow engine needs. Absent rows
// come back as nil without an error; errors are reserved for storage failures.
type Catalog interface {
	Survey(ctx context.Context, id uuid.UUID) (*entity.Survey, error)
	Section(ctx context.Context, title string) (*entity.Section, error)
	SectionByID(ctx context.Context, id uuid.UUID) (*entity.Section, error)
	Membership(ctx context.Context, surveyId, sectionId uuid.UUID) (*entity.SurveySection, error)
	NextMembership(ctx context.Context, surveyId uuid.UUID, orderGreaterThan int) (*entity.SurveySection, error)
	Questions(ctx context.Context, sectionId uuid.UUID) ([]*entity.Question, error)
	Question(ctx context.Context, id uuid.UUID) (*entity.Question, error)
}
