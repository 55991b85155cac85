package mapper

import (
	"onboarding-survey-be/internal/entity"
	"onboarding-survey-be/internal/model"
)

type SurveyMapper struct{}

func NewSurveyMapper() *SurveyMapper {
	return &SurveyMapper{}
}

func (m *SurveyMapper) ToEntity(s *model.Survey) *entity.Survey {
	if s == nil {
		return nil
	}
	return &entity.Survey{
		Id:          s.Id,
		Title:       s.Title,
		Description: s.Description,
	}
}

func (m *SurveyMapper) ToModel(s *entity.Survey) *model.Survey {
	if s == nil {
		return nil
	}
	return &model.Survey{
		Id:          s.Id,
		Title:       s.Title,
		Description: s.Description,
	}
}

func (m *SurveyMapper) ToEntities(surveys []*model.Survey) []*entity.Survey {
	entities := make([]*entity.Survey, len(surveys))
	for i, s := range surveys {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
