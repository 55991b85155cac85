package unitofwork

import (
	"context"

	"onboarding-survey-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	SurveyRepository() contract.SurveyRepository
	SectionRepository() contract.SectionRepository
	QuestionRepository() contract.QuestionRepository
	SurveySectionRepository() contract.SurveySectionRepository
	ResponseRepository() contract.ResponseRepository
}
