package mapper

import (
	"onboarding-survey-be/internal/entity"
	"onboarding-survey-be/internal/model"
)

type SectionMapper struct{}

func NewSectionMapper() *SectionMapper {
	return &SectionMapper{}
}

func (m *SectionMapper) ToEntity(s *model.Section) *entity.Section {
	if s == nil {
		return nil
	}
	return &entity.Section{
		Id:    s.Id,
		Title: s.Title,
	}
}

func (m *SectionMapper) ToModel(s *entity.Section) *model.Section {
	if s == nil {
		return nil
	}
	return &model.Section{
		Id:    s.Id,
		Title: s.Title,
	}
}

func (m *SectionMapper) ToEntities(sections []*model.Section) []*entity.Section {
	entities := make([]*entity.Section, len(sections))
	for i, s := range sections {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

type SurveySectionMapper struct{}

func NewSurveySectionMapper() *SurveySectionMapper {
	return &SurveySectionMapper{}
}

func (m *SurveySectionMapper) ToEntity(s *model.SurveySection) *entity.SurveySection {
	if s == nil {
		return nil
	}
	return &entity.SurveySection{
		Id:        s.Id,
		SurveyId:  s.SurveyId,
		SectionId: s.SectionId,
		Order:     s.Order,
		HasChoice: s.HasChoice,
	}
}

func (m *SurveySectionMapper) ToModel(s *entity.SurveySection) *model.SurveySection {
	if s == nil {
		return nil
	}
	return &model.SurveySection{
		Id:        s.Id,
		SurveyId:  s.SurveyId,
		SectionId: s.SectionId,
		Order:     s.Order,
		HasChoice: s.HasChoice,
	}
}

func (m *SurveySectionMapper) ToEntities(edges []*model.SurveySection) []*entity.SurveySection {
	entities := make([]*entity.SurveySection, len(edges))
	for i, s := range edges {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
