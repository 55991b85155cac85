package contract

import (
	"context"

	"onboarding-survey-be/internal/entity"
	"onboarding-survey-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SurveyRepository interface {
	Create(ctx context.Context, survey *entity.Survey) error
	Update(ctx context.Context, survey *entity.Survey) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Survey, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Survey, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
