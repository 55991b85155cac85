package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"onboarding-survey-be/internal/dto"
	"onboarding-survey-be/internal/pkg/serverutils"
	"onboarding-survey-be/pkg/fault"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSurveyService struct {
	listRes *dto.ListSurveysResponse

	startRes *dto.StartSurveyResponse
	startErr error

	viewRes       *dto.ShowSectionResponse
	viewErr       error
	gotViewTitle  string
	gotSurveyId   uuid.UUID
	gotSessionId  string
	gotUserId     string
	gotAnswers    map[string]string
	submitRes     *dto.SubmitSectionResponse
	submitErr     error
	gotSubmitCall bool
}

func (s *stubSurveyService) ListSurveys(_ context.Context, _ *dto.ListSurveysRequest) ([]*dto.ListSurveysResponse, error) {
	if s.listRes == nil {
		return nil, nil
	}
	return []*dto.ListSurveysResponse{s.listRes}, nil
}

func (s *stubSurveyService) Start(_ context.Context, surveyId uuid.UUID, userId string) (*dto.StartSurveyResponse, error) {
	s.gotSurveyId = surveyId
	s.gotUserId = userId
	return s.startRes, s.startErr
}

func (s *stubSurveyService) ViewSection(_ context.Context, surveyId uuid.UUID, sessionId, sectionTitle string) (*dto.ShowSectionResponse, error) {
	s.gotSurveyId = surveyId
	s.gotSessionId = sessionId
	s.gotViewTitle = sectionTitle
	return s.viewRes, s.viewErr
}

func (s *stubSurveyService) SubmitSection(_ context.Context, surveyId uuid.UUID, sessionId, sectionTitle string, answers map[string]string, userId string) (*dto.SubmitSectionResponse, error) {
	s.gotSubmitCall = true
	s.gotSurveyId = surveyId
	s.gotSessionId = sessionId
	s.gotViewTitle = sectionTitle
	s.gotAnswers = answers
	s.gotUserId = userId
	return s.submitRes, s.submitErr
}

func newTestApp(svc *stubSurveyService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	app.Use(serverutils.IdentityMiddleware)
	NewSurveyController(svc).RegisterRoutes(app.Group("/api"))
	return app
}

func decodeEnvelope(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&envelope))
	return envelope
}

func TestSurveyControllerList(t *testing.T) {
	svc := &stubSurveyService{listRes: &dto.ListSurveysResponse{Id: uuid.New(), Title: "Onboarding"}}
	app := newTestApp(svc)

	req := httptest.NewRequest("GET", "/api/survey/v1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp.Body)
	assert.Equal(t, true, envelope["success"])
	data := envelope["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "Onboarding", data[0].(map[string]interface{})["title"])
}

func TestSurveyControllerListRejectsOversizedLimit(t *testing.T) {
	app := newTestApp(&stubSurveyService{})

	req := httptest.NewRequest("GET", "/api/survey/v1?limit=500", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSurveyControllerStart(t *testing.T) {
	surveyId := uuid.New()
	svc := &stubSurveyService{
		startRes: &dto.StartSurveyResponse{
			SurveySessionId: "sess-1",
			SurveyId:        surveyId,
			SurveyTitle:     "Onboarding",
			SectionTitle:    "Intro",
		},
	}
	app := newTestApp(svc)

	req := httptest.NewRequest("GET", "/api/survey/v1/"+surveyId.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, surveyId, svc.gotSurveyId)
	assert.Equal(t, serverutils.AnonymousUser, svc.gotUserId)

	envelope := decodeEnvelope(t, resp.Body)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "sess-1", data["survey_session_id"])
	assert.Equal(t, "Intro", data["section_title"])
}

func TestSurveyControllerStartUnknownSurveyIs404(t *testing.T) {
	svc := &stubSurveyService{startErr: fault.NewClientError("survey not found", fault.ErrNotFound)}
	app := newTestApp(svc)

	req := httptest.NewRequest("GET", "/api/survey/v1/"+uuid.New().String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	envelope := decodeEnvelope(t, resp.Body)
	assert.Equal(t, false, envelope["success"])
}

func TestSurveyControllerShowSectionDecodesTitle(t *testing.T) {
	svc := &stubSurveyService{
		viewRes: &dto.ShowSectionResponse{Section: "Work Style", Questions: []dto.SectionQuestion{}},
	}
	app := newTestApp(svc)

	req := httptest.NewRequest("GET", "/api/survey/v1/"+uuid.New().String()+"/sess-1/Work%20Style", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, "Work Style", svc.gotViewTitle)
	assert.Equal(t, "sess-1", svc.gotSessionId)
}

func TestSurveyControllerSubmitSection(t *testing.T) {
	svc := &stubSurveyService{
		submitRes: &dto.SubmitSectionResponse{NextSection: "Role"},
	}
	app := newTestApp(svc)

	body := strings.NewReader(`{"question_a6f1c3aa-8b0f-44d0-9f6e-1f62cbf5d3a7":"Ada"}`)
	req := httptest.NewRequest("POST", "/api/survey/v1/"+uuid.New().String()+"/sess-1/Intro", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.True(t, svc.gotSubmitCall)
	assert.Equal(t, "Ada", svc.gotAnswers["question_a6f1c3aa-8b0f-44d0-9f6e-1f62cbf5d3a7"])

	envelope := decodeEnvelope(t, resp.Body)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "Role", data["next_section"])
}

func TestSurveyControllerSubmitCompletedSessionIs400(t *testing.T) {
	svc := &stubSurveyService{
		submitErr: fault.NewClientError("survey session already completed", fault.ErrSessionCompleted),
	}
	app := newTestApp(svc)

	body := strings.NewReader(`{}`)
	req := httptest.NewRequest("POST", "/api/survey/v1/"+uuid.New().String()+"/sess-1/Intro", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
