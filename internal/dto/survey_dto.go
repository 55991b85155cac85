package dto

import (
	"github.com/google/uuid"
)

type ListSurveysRequest struct {
	Limit  int `query:"limit" validate:"gte=0,lte=100"`
	Offset int `query:"offset" validate:"gte=0"`
}

type ListSurveysResponse struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

type StartSurveyResponse struct {
	SurveySessionId string    `json:"survey_session_id"`
	SurveyId        uuid.UUID `json:"survey_id"`
	SurveyTitle     string    `json:"survey_title"`
	SectionTitle    string    `json:"section_title"`
}

type SectionQuestion struct {
	Id       uuid.UUID `json:"id"`
	Text     string    `json:"text"`
	Type     string    `json:"type"` // "text" | "choice"
	Options  []string  `json:"options,omitempty"`
	Required bool      `json:"required"`
}

type ShowSectionResponse struct {
	Section   string            `json:"section"`
	Questions []SectionQuestion `json:"questions"`
	Responses map[string]string `json:"responses"` // prior answers for this section, by raw key
}

// SubmitSectionRequest is the raw wire shape: question_<id> keys mapped to
// string values. It is parsed straight from the request body.
type SubmitSectionRequest map[string]string

type SubmitSectionResponse struct {
	NextSection string `json:"next_section"` // section title or "Finish"
}

// SurveyCompletedMessage rides the in-process completion pipeline.
type SurveyCompletedMessage struct {
	ResponseId uuid.UUID `json:"response_id"`
}
