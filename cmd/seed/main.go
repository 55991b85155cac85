package main

import (
	"context"
	"log"
	"os"

	"onboarding-survey-be/internal/entity"
	"onboarding-survey-be/internal/repository/unitofwork"
	"onboarding-survey-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Seeds a demo onboarding survey:
//
//	Start (1) -> Department (2, branching) -> Engineering (3) -> Design (4)
//
// Choosing "Design" on the Department section skips straight to Design.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		log.Fatal("Error: Failed to open transaction:", err)
	}

	survey := &entity.Survey{
		Id:          uuid.New(),
		Title:       "Employee Onboarding",
		Description: "First-week onboarding questionnaire for new joiners.",
	}
	if err := uow.SurveyRepository().Create(ctx, survey); err != nil {
		rollbackFatal(uow, "create survey", err)
	}
	color.Green("✔ Survey %q created", survey.Title)

	sections := map[string]*entity.Section{}
	for _, title := range []string{"Start", "Department", "Engineering", "Design"} {
		section := &entity.Section{Id: uuid.New(), Title: title}
		if err := uow.SectionRepository().Create(ctx, section); err != nil {
			rollbackFatal(uow, "create section "+title, err)
		}
		sections[title] = section
		color.Green("✔ Section %q created", title)
	}

	edges := []struct {
		section   string
		order     int
		hasChoice bool
	}{
		{"Start", 1, false},
		{"Department", 2, true},
		{"Engineering", 3, false},
		{"Design", 4, false},
	}
	for _, e := range edges {
		edge := &entity.SurveySection{
			Id:        uuid.New(),
			SurveyId:  survey.Id,
			SectionId: sections[e.section].Id,
			Order:     e.order,
			HasChoice: e.hasChoice,
		}
		if err := uow.SurveySectionRepository().Create(ctx, edge); err != nil {
			rollbackFatal(uow, "link section "+e.section, err)
		}
	}
	color.Green("✔ Sections linked in order")

	questions := []*entity.Question{
		{
			Id:        uuid.New(),
			SectionId: sections["Start"].Id,
			Text:      "What is your full name?",
			Kind:      entity.KindText,
			Required:  true,
		},
		{
			Id:        uuid.New(),
			SectionId: sections["Start"].Id,
			Text:      "What name should we use day to day?",
			Kind:      entity.KindText,
		},
		{
			Id:        uuid.New(),
			SectionId: sections["Department"].Id,
			Text:      "Which department are you joining?",
			Kind:      entity.KindChoice,
			Options:   []string{"Engineering", "Design"},
			Required:  true,
		},
		{
			Id:        uuid.New(),
			SectionId: sections["Engineering"].Id,
			Text:      "Which languages do you work with?",
			Kind:      entity.KindText,
		},
		{
			Id:        uuid.New(),
			SectionId: sections["Design"].Id,
			Text:      "Which design tools do you use?",
			Kind:      entity.KindText,
		},
	}
	for _, q := range questions {
		if err := uow.QuestionRepository().Create(ctx, q); err != nil {
			rollbackFatal(uow, "create question", err)
		}
	}
	color.Green("✔ %d questions created", len(questions))

	if err := uow.Commit(); err != nil {
		log.Fatal("Error: Failed to commit seed:", err)
	}

	color.Cyan("Seed completed. Survey id: %s", survey.Id)
}

func rollbackFatal(uow unitofwork.UnitOfWork, step string, err error) {
	_ = uow.Rollback()
	color.Red("✘ Failed to %s: %v", step, err)
	os.Exit(1)
}
