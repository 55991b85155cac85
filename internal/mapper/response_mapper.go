package mapper

import (
	"fmt"

	"onboarding-survey-be/internal/entity"
	"onboarding-survey-be/internal/model"

	"gorm.io/datatypes"
)

type ResponseMapper struct{}

func NewResponseMapper() *ResponseMapper {
	return &ResponseMapper{}
}

func (m *ResponseMapper) ToEntity(r *model.Response) *entity.SurveyResponse {
	if r == nil {
		return nil
	}

	answers := make(map[string]string, len(r.Answers))
	for k, v := range r.Answers {
		if s, ok := v.(string); ok {
			answers[k] = s
		} else {
			answers[k] = fmt.Sprintf("%v", v)
		}
	}

	return &entity.SurveyResponse{
		Id:        r.Id,
		SurveyId:  r.SurveyId,
		UserId:    r.UserId,
		Answers:   answers,
		CreatedAt: r.CreatedAt,
	}
}

func (m *ResponseMapper) ToModel(r *entity.SurveyResponse) *model.Response {
	if r == nil {
		return nil
	}

	answers := make(datatypes.JSONMap, len(r.Answers))
	for k, v := range r.Answers {
		answers[k] = v
	}

	return &model.Response{
		Id:        r.Id,
		SurveyId:  r.SurveyId,
		UserId:    r.UserId,
		Answers:   answers,
		CreatedAt: r.CreatedAt,
	}
}

func (m *ResponseMapper) ToEntities(responses []*model.Response) []*entity.SurveyResponse {
	entities := make([]*entity.SurveyResponse, len(responses))
	for i, r := range responses {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
