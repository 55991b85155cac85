package store

import "github.com/google/uuid"

// SessionState is the transient per-attempt state of one respondent walking
// a survey. It lives in the session store keyed by a generated session id,
// never in process-global state.
type SessionState struct {
	SurveyId       uuid.UUID                    `json:"survey_id"`
	UserId         string                       `json:"user_id"`
	CurrentSection string                       `json:"current_section"`
	Completed      bool                         `json:"completed"`
	Responses      map[string]map[string]string `json:"responses"` // section title -> raw answer key -> value
}

// NewSessionState initializes an empty attempt positioned at the given section.
func NewSessionState(surveyId uuid.UUID, userId, currentSection string) *SessionState {
	return &SessionState{
		SurveyId:       surveyId,
		UserId:         userId,
		CurrentSection: currentSection,
		Responses:      make(map[string]map[string]string),
	}
}

// SetSectionAnswers records the raw answers submitted for a section. The
// responses map only ever grows during a session.
func (s *SessionState) SetSectionAnswers(sectionTitle string, answers map[string]string) {
	if s.Responses == nil {
		s.Responses = make(map[string]map[string]string)
	}
	s.Responses[sectionTitle] = answers
}

// SectionAnswers returns any previously submitted answers for a section.
func (s *SessionState) SectionAnswers(sectionTitle string) map[string]string {
	if s.Responses == nil {
		return map[string]string{}
	}
	if answers, ok := s.Responses[sectionTitle]; ok {
		return answers
	}
	return map[string]string{}
}
