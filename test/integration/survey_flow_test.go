package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"onboarding-survey-be/internal/entity"
	"onboarding-survey-be/internal/repository/specification"
	"onboarding-survey-be/internal/repository/unitofwork"
	"onboarding-survey-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.SurveyRepository())
	assert.NotNil(t, uow.ResponseRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Survey Repository", func(t *testing.T) {
		count, err := uow.SurveyRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Survey count: %d", count)
	})

	t.Run("Check Response Repository", func(t *testing.T) {
		count, err := uow.ResponseRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Response count: %d", count)
	})
}

// TestSurveyCatalogRoundTrip writes a small survey graph and a consolidated
// response inside one transaction and rolls everything back at the end.
func TestSurveyCatalogRoundTrip(t *testing.T) {
	_ = godotenv.Load("../../.env")

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(gormDB).NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	defer uow.Rollback()

	survey := &entity.Survey{
		Id:          uuid.New(),
		Title:       "Integration Survey " + uuid.NewString()[:8],
		Description: "round trip check",
	}
	require.NoError(t, uow.SurveyRepository().Create(ctx, survey))

	section := &entity.Section{Id: uuid.New(), Title: "Section " + uuid.NewString()[:8]}
	require.NoError(t, uow.SectionRepository().Create(ctx, section))

	edge := &entity.SurveySection{
		Id:        uuid.New(),
		SurveyId:  survey.Id,
		SectionId: section.Id,
		Order:     1,
		HasChoice: true,
	}
	require.NoError(t, uow.SurveySectionRepository().Create(ctx, edge))

	question := &entity.Question{
		Id:        uuid.New(),
		SectionId: section.Id,
		Text:      "Pick one",
		Kind:      entity.KindChoice,
		Options:   []string{"A", "B"},
		Required:  true,
	}
	require.NoError(t, uow.QuestionRepository().Create(ctx, question))

	// Read back through the specifications the catalog adapter uses.
	foundSection, err := uow.SectionRepository().FindOne(ctx, specification.ByTitle{Title: section.Title})
	require.NoError(t, err)
	require.NotNil(t, foundSection)
	assert.Equal(t, section.Id, foundSection.Id)

	foundEdge, err := uow.SurveySectionRepository().FindOne(ctx,
		specification.BySurvey{SurveyID: survey.Id},
		specification.OrderGreaterThan{Order: 0},
		specification.OrderBy{Field: "section_order"},
	)
	require.NoError(t, err)
	require.NotNil(t, foundEdge)
	assert.True(t, foundEdge.HasChoice)

	questions, err := uow.QuestionRepository().FindAll(ctx, specification.BySection{SectionID: section.Id})
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, entity.KindChoice, questions[0].Kind)
	assert.Equal(t, []string{"A", "B"}, questions[0].Options)

	response := &entity.SurveyResponse{
		Id:        uuid.New(),
		SurveyId:  survey.Id,
		UserId:    "integration",
		Answers:   map[string]string{"Pick one": "A"},
		CreatedAt: time.Now(),
	}
	require.NoError(t, uow.ResponseRepository().Create(ctx, response))

	foundResponse, err := uow.ResponseRepository().FindOne(ctx, specification.ByID{ID: response.Id})
	require.NoError(t, err)
	require.NotNil(t, foundResponse)
	assert.Equal(t, "A", foundResponse.Answers["Pick one"])
}

// TestQuestionDefinitionRejected verifies that malformed definitions never
// reach storage.
func TestQuestionDefinitionRejected(t *testing.T) {
	_ = godotenv.Load("../../.env")

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(gormDB).NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	defer uow.Rollback()

	section := &entity.Section{Id: uuid.New(), Title: "Bad Defs " + uuid.NewString()[:8]}
	require.NoError(t, uow.SectionRepository().Create(ctx, section))

	err = uow.QuestionRepository().Create(ctx, &entity.Question{
		Id:        uuid.New(),
		SectionId: section.Id,
		Text:      "Pick one",
		Kind:      entity.KindChoice, // no options
	})
	assert.Error(t, err)
}
