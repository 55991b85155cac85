package service

import (
	"context"
	"encoding/json"
	"time"

	"onboarding-survey-be/internal/dto"
	"onboarding-survey-be/internal/entity"
	"onboarding-survey-be/internal/pkg/logger"
	"onboarding-survey-be/internal/repository/contract"
	"onboarding-survey-be/internal/repository/specification"
	"onboarding-survey-be/internal/repository/unitofwork"
	"onboarding-survey-be/pkg/fault"
	"onboarding-survey-be/pkg/flow"
	"onboarding-survey-be/pkg/store"

	"github.com/google/uuid"
)

type ISurveyService interface {
	ListSurveys(ctx context.Context, req *dto.ListSurveysRequest) ([]*dto.ListSurveysResponse, error)
	Start(ctx context.Context, surveyId uuid.UUID, userId string) (*dto.StartSurveyResponse, error)
	ViewSection(ctx context.Context, surveyId uuid.UUID, sessionId, sectionTitle string) (*dto.ShowSectionResponse, error)
	SubmitSection(ctx context.Context, surveyId uuid.UUID, sessionId, sectionTitle string, answers map[string]string, userId string) (*dto.SubmitSectionResponse, error)
}

type surveyService struct {
	uowFactory       unitofwork.RepositoryFactory
	sessions         contract.SessionRepository
	catalog          flow.Catalog
	navigator        *flow.Navigator
	consolidator     *flow.Consolidator
	publisherService IPublisherService
	log              logger.ILogger
}

func NewSurveyService(
	uowFactory unitofwork.RepositoryFactory,
	sessions contract.SessionRepository,
	publisherService IPublisherService,
	log logger.ILogger,
) ISurveyService {
	catalog := newCatalogAdapter(uowFactory)
	return &surveyService{
		uowFactory:       uowFactory,
		sessions:         sessions,
		catalog:          catalog,
		navigator:        flow.NewNavigator(catalog),
		consolidator:     flow.NewConsolidator(catalog),
		publisherService: publisherService,
		log:              log,
	}
}

func (s *surveyService) ListSurveys(ctx context.Context, req *dto.ListSurveysRequest) ([]*dto.ListSurveysResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.OrderBy{Field: "created_at"}}
	if req.Limit > 0 {
		specs = append(specs, specification.Pagination{Limit: req.Limit, Offset: req.Offset})
	}

	surveys, err := uow.SurveyRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, fault.NewInternalError("failed to list surveys", err)
	}

	result := make([]*dto.ListSurveysResponse, 0, len(surveys))
	for _, survey := range surveys {
		result = append(result, &dto.ListSurveysResponse{
			Id:          survey.Id,
			Title:       survey.Title,
			Description: survey.Description,
		})
	}
	return result, nil
}

// Start allocates a fresh session positioned at the survey's first section
// by order.
func (s *surveyService) Start(ctx context.Context, surveyId uuid.UUID, userId string) (*dto.StartSurveyResponse, error) {
	survey, err := s.catalog.Survey(ctx, surveyId)
	if err != nil {
		return nil, fault.NewInternalError("failed to load survey", err)
	}
	if survey == nil {
		return nil, fault.NewClientError("survey not found", fault.ErrNotFound)
	}

	first, err := s.catalog.NextMembership(ctx, surveyId, -1)
	if err != nil {
		return nil, fault.NewInternalError("failed to load survey sections", err)
	}
	if first == nil {
		return nil, fault.NewClientError("survey has no sections", fault.ErrNotFound)
	}

	section, err := s.catalog.SectionByID(ctx, first.SectionId)
	if err != nil {
		return nil, fault.NewInternalError("failed to load starting section", err)
	}
	if section == nil {
		return nil, fault.NewClientError("starting section not found", fault.ErrNotFound)
	}

	sessionId := uuid.New().String()
	state := store.NewSessionState(surveyId, userId, section.Title)
	if err := s.sessions.Save(ctx, sessionId, state); err != nil {
		return nil, fault.NewInternalError("failed to create session", err)
	}

	s.log.Info("survey", "session started", map[string]interface{}{
		"survey_id":  surveyId,
		"session_id": sessionId,
		"section":    section.Title,
	})

	return &dto.StartSurveyResponse{
		SurveySessionId: sessionId,
		SurveyId:        survey.Id,
		SurveyTitle:     survey.Title,
		SectionTitle:    section.Title,
	}, nil
}

// ViewSection is read-only: it never mutates the session.
func (s *surveyService) ViewSection(ctx context.Context, surveyId uuid.UUID, sessionId, sectionTitle string) (*dto.ShowSectionResponse, error) {
	if _, err := s.requireSurvey(ctx, surveyId); err != nil {
		return nil, err
	}

	state, err := s.requireSession(ctx, sessionId, surveyId)
	if err != nil {
		return nil, err
	}

	section, err := s.requireSection(ctx, sectionTitle)
	if err != nil {
		return nil, err
	}

	questions, err := s.catalog.Questions(ctx, section.Id)
	if err != nil {
		return nil, fault.NewInternalError("failed to load questions", err)
	}

	items := make([]dto.SectionQuestion, 0, len(questions))
	for _, q := range questions {
		items = append(items, dto.SectionQuestion{
			Id:       q.Id,
			Text:     q.Text,
			Type:     q.Kind.String(),
			Options:  q.Options,
			Required: q.Required,
		})
	}

	return &dto.ShowSectionResponse{
		Section:   section.Title,
		Questions: items,
		Responses: state.SectionAnswers(section.Title),
	}, nil
}

func (s *surveyService) SubmitSection(ctx context.Context, surveyId uuid.UUID, sessionId, sectionTitle string, answers map[string]string, userId string) (*dto.SubmitSectionResponse, error) {
	survey, err := s.requireSurvey(ctx, surveyId)
	if err != nil {
		return nil, err
	}

	state, err := s.requireSession(ctx, sessionId, surveyId)
	if err != nil {
		return nil, err
	}
	if state.Completed {
		return nil, fault.NewClientError("survey session already completed", fault.ErrSessionCompleted)
	}

	section, err := s.requireSection(ctx, sectionTitle)
	if err != nil {
		return nil, err
	}

	questions, err := s.catalog.Questions(ctx, section.Id)
	if err != nil {
		return nil, fault.NewInternalError("failed to load questions", err)
	}

	// Reject before any session mutation.
	if missing := flow.MissingRequired(questions, answers); len(missing) > 0 {
		return nil, fault.NewClientError("not all required questions were answered", fault.ErrMissingRequired)
	}

	state.SetSectionAnswers(section.Title, answers)

	next, err := s.navigator.Next(ctx, survey, section, answers)
	if err != nil {
		return nil, fault.NewInternalError("failed to determine next section", err)
	}

	if next == flow.Finish {
		if err := s.finalize(ctx, survey, state, sessionId, userId); err != nil {
			return nil, err
		}
	} else {
		state.CurrentSection = next
		if err := s.sessions.Save(ctx, sessionId, state); err != nil {
			return nil, fault.NewInternalError("failed to persist session", err)
		}
	}

	return &dto.SubmitSectionResponse{NextSection: next}, nil
}

// finalize consolidates the session's answers into one durable response and
// marks the session completed.
func (s *surveyService) finalize(ctx context.Context, survey *entity.Survey, state *store.SessionState, sessionId, userId string) error {
	consolidated, err := s.consolidator.Consolidate(ctx, state.Responses)
	if err != nil {
		return fault.NewInternalError("failed to consolidate responses", err)
	}

	if userId == "" {
		userId = state.UserId
	}

	response := &entity.SurveyResponse{
		Id:        uuid.New(),
		SurveyId:  survey.Id,
		UserId:    userId,
		Answers:   consolidated,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return fault.NewInternalError("failed to open transaction", err)
	}
	if err := uow.ResponseRepository().Create(ctx, response); err != nil {
		_ = uow.Rollback()
		return fault.NewInternalError("failed to store response", err)
	}
	if err := uow.Commit(); err != nil {
		return fault.NewInternalError("failed to commit response", err)
	}

	state.Completed = true
	if err := s.sessions.Save(ctx, sessionId, state); err != nil {
		return fault.NewInternalError("failed to persist session", err)
	}

	s.publishCompletion(ctx, survey, response)
	return nil
}

// publishCompletion is best-effort: the response is already durable, so bus
// failures only cost the downstream notification.
func (s *surveyService) publishCompletion(ctx context.Context, survey *entity.Survey, response *entity.SurveyResponse) {
	msgPayload := dto.SurveyCompletedMessage{ResponseId: response.Id}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		s.log.Error("survey", "failed to marshal completion message", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		s.log.Warn("survey", "failed to publish completion message", map[string]interface{}{"error": err.Error()})
	}

	s.log.Info("survey", "survey completed", map[string]interface{}{
		"survey_id":   survey.Id,
		"response_id": response.Id,
		"answers":     len(response.Answers),
	})
}

func (s *surveyService) requireSurvey(ctx context.Context, surveyId uuid.UUID) (*entity.Survey, error) {
	survey, err := s.catalog.Survey(ctx, surveyId)
	if err != nil {
		return nil, fault.NewInternalError("failed to load survey", err)
	}
	if survey == nil {
		return nil, fault.NewClientError("survey not found", fault.ErrNotFound)
	}
	return survey, nil
}

func (s *surveyService) requireSession(ctx context.Context, sessionId string, surveyId uuid.UUID) (*store.SessionState, error) {
	state, found, err := s.sessions.Get(ctx, sessionId)
	if err != nil {
		return nil, fault.NewInternalError("failed to read session", err)
	}
	if !found {
		return nil, fault.NewClientError("survey session not found or expired", fault.ErrNotFound)
	}
	if state.SurveyId != surveyId {
		return nil, fault.NewClientError("session does not belong to this survey", nil)
	}
	return state, nil
}

func (s *surveyService) requireSection(ctx context.Context, title string) (*entity.Section, error) {
	section, err := s.catalog.Section(ctx, title)
	if err != nil {
		return nil, fault.NewInternalError("failed to load section", err)
	}
	if section == nil {
		return nil, fault.NewClientError("section not found", fault.ErrNotFound)
	}
	return section, nil
}
