package flow

import (
	"context"

	"onboarding-survey-be/internal/entity"

	"github.com/google/uuid"
)

// fakeCatalog is an in-memory Catalog for engine tests.
type fakeCatalog struct {
	surveys      map[uuid.UUID]*entity.Survey
	byTitle      map[string]*entity.Section
	byID         map[uuid.UUID]*entity.Section
	memberships  []*entity.SurveySection
	questions    map[uuid.UUID][]*entity.Question
	questionByID map[uuid.UUID]*entity.Question
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		surveys:      make(map[uuid.UUID]*entity.Survey),
		byTitle:      make(map[string]*entity.Section),
		byID:         make(map[uuid.UUID]*entity.Section),
		questions:    make(map[uuid.UUID][]*entity.Question),
		questionByID: make(map[uuid.UUID]*entity.Question),
	}
}

func (f *fakeCatalog) addSurvey(title string) *entity.Survey {
	s := &entity.Survey{Id: uuid.New(), Title: title}
	f.surveys[s.Id] = s
	return s
}

func (f *fakeCatalog) addSection(title string) *entity.Section {
	s := &entity.Section{Id: uuid.New(), Title: title}
	f.byTitle[title] = s
	f.byID[s.Id] = s
	return s
}

func (f *fakeCatalog) addMembership(survey *entity.Survey, section *entity.Section, order int, hasChoice bool) {
	f.memberships = append(f.memberships, &entity.SurveySection{
		Id:        uuid.New(),
		SurveyId:  survey.Id,
		SectionId: section.Id,
		Order:     order,
		HasChoice: hasChoice,
	})
}

func (f *fakeCatalog) addQuestion(section *entity.Section, text string, kind entity.QuestionKind, options []string, required bool) *entity.Question {
	q := &entity.Question{
		Id:        uuid.New(),
		SectionId: section.Id,
		Text:      text,
		Kind:      kind,
		Options:   options,
		Required:  required,
	}
	f.questions[section.Id] = append(f.questions[section.Id], q)
	f.questionByID[q.Id] = q
	return q
}

func (f *fakeCatalog) Survey(_ context.Context, id uuid.UUID) (*entity.Survey, error) {
	return f.surveys[id], nil
}

func (f *fakeCatalog) Section(_ context.Context, title string) (*entity.Section, error) {
	return f.byTitle[title], nil
}

func (f *fakeCatalog) SectionByID(_ context.Context, id uuid.UUID) (*entity.Section, error) {
	return f.byID[id], nil
}

func (f *fakeCatalog) Membership(_ context.Context, surveyId, sectionId uuid.UUID) (*entity.SurveySection, error) {
	for _, m := range f.memberships {
		if m.SurveyId == surveyId && m.SectionId == sectionId {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalog) NextMembership(_ context.Context, surveyId uuid.UUID, orderGreaterThan int) (*entity.SurveySection, error) {
	var next *entity.SurveySection
	for _, m := range f.memberships {
		if m.SurveyId != surveyId || m.Order <= orderGreaterThan {
			continue
		}
		if next == nil || m.Order < next.Order {
			next = m
		}
	}
	return next, nil
}

func (f *fakeCatalog) Questions(_ context.Context, sectionId uuid.UUID) ([]*entity.Question, error) {
	return f.questions[sectionId], nil
}

func (f *fakeCatalog) Question(_ context.Context, id uuid.UUID) (*entity.Question, error) {
	return f.questionByID[id], nil
}
