package mapper

import (
	"strings"

	"onboarding-survey-be/internal/entity"
	"onboarding-survey-be/internal/model"
)

const (
	questionTypeText   = "text"
	questionTypeChoice = "choice"
)

// QuestionMapper converts between the stored representation (string type
// column, comma-separated options) and the domain entity (closed kind enum,
// option slice).
type QuestionMapper struct{}

func NewQuestionMapper() *QuestionMapper {
	return &QuestionMapper{}
}

func (m *QuestionMapper) ToEntity(q *model.Question) *entity.Question {
	if q == nil {
		return nil
	}

	kind := entity.KindText
	if q.Type == questionTypeChoice {
		kind = entity.KindChoice
	}

	var options []string
	if kind == entity.KindChoice && q.ChoiceOptions != "" {
		options = strings.Split(q.ChoiceOptions, ",")
	}

	return &entity.Question{
		Id:        q.Id,
		SectionId: q.SectionId,
		Text:      q.Text,
		Kind:      kind,
		Options:   options,
		Required:  q.IsRequired,
	}
}

func (m *QuestionMapper) ToModel(q *entity.Question) *model.Question {
	if q == nil {
		return nil
	}

	t := questionTypeText
	var choiceOptions string
	if q.Kind == entity.KindChoice {
		t = questionTypeChoice
		choiceOptions = strings.Join(q.Options, ",")
	}

	return &model.Question{
		Id:            q.Id,
		SectionId:     q.SectionId,
		Text:          q.Text,
		Type:          t,
		ChoiceOptions: choiceOptions,
		IsRequired:    q.Required,
	}
}

func (m *QuestionMapper) ToEntities(questions []*model.Question) []*entity.Question {
	entities := make([]*entity.Question, len(questions))
	for i, q := range questions {
		entities[i] = m.ToEntity(q)
	}
	return entities
}
