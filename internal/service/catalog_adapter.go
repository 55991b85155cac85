package service

import (
	"context"

	"onboarding-survey-be/internal/entity"
	"onboarding-survey-be/internal/repository/specification"
	"onboarding-survey-be/internal/repository/unitofwork"
	"onboarding-survey-be/pkg/flow"

	"github.com/google/uuid"
)

// catalogAdapter exposes the unit-of-work repositories through the read-only
// flow.Catalog surface the engine consumes.
type catalogAdapter struct {
	uowFactory unitofwork.RepositoryFactory
}

func newCatalogAdapter(uowFactory unitofwork.RepositoryFactory) flow.Catalog {
	return &catalogAdapter{uowFactory: uowFactory}
}

func (c *catalogAdapter) Survey(ctx context.Context, id uuid.UUID) (*entity.Survey, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	return uow.SurveyRepository().FindOne(ctx, specification.ByID{ID: id})
}

func (c *catalogAdapter) Section(ctx context.Context, title string) (*entity.Section, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	return uow.SectionRepository().FindOne(ctx, specification.ByTitle{Title: title})
}

func (c *catalogAdapter) SectionByID(ctx context.Context, id uuid.UUID) (*entity.Section, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	return uow.SectionRepository().FindOne(ctx, specification.ByID{ID: id})
}

func (c *catalogAdapter) Membership(ctx context.Context, surveyId, sectionId uuid.UUID) (*entity.SurveySection, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	return uow.SurveySectionRepository().FindOne(ctx,
		specification.BySurvey{SurveyID: surveyId},
		specification.BySection{SectionID: sectionId},
	)
}

func (c *catalogAdapter) NextMembership(ctx context.Context, surveyId uuid.UUID, orderGreaterThan int) (*entity.SurveySection, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	return uow.SurveySectionRepository().FindOne(ctx,
		specification.BySurvey{SurveyID: surveyId},
		specification.OrderGreaterThan{Order: orderGreaterThan},
		specification.OrderBy{Field: "section_order"},
	)
}

func (c *catalogAdapter) Questions(ctx context.Context, sectionId uuid.UUID) ([]*entity.Question, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	return uow.QuestionRepository().FindAll(ctx,
		specification.BySection{SectionID: sectionId},
		specification.OrderBy{Field: "created_at"},
	)
}

func (c *catalogAdapter) Question(ctx context.Context, id uuid.UUID) (*entity.Question, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	return uow.QuestionRepository().FindOne(ctx, specification.ByID{ID: id})
}
