package contract

import (
	"context"

	"onboarding-survey-be/internal/entity"
	"onboarding-survey-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SurveySectionRepository interface {
	Create(ctx context.Context, edge *entity.SurveySection) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SurveySection, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SurveySection, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
