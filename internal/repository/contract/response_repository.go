package contract

import (
	"context"

	"onboarding-survey-be/internal/entity"
	"onboarding-survey-be/internal/repository/specification"
)

// ResponseRepository is append-only: consolidated responses are written once
// at session termination and never mutated.
type ResponseRepository interface {
	Create(ctx context.Context, response *entity.SurveyResponse) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SurveyResponse, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SurveyResponse, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
