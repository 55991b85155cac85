package flow

import (
	"onboarding-survey-be/internal/entity"

	"github.com/google/uuid"
)

// MissingRequired lists the required questions a submission left unanswered.
// The check is key presence: an empty string value still counts as answered.
func MissingRequired(questions []*entity.Question, answers map[string]string) []uuid.UUID {
	var missing []uuid.UUID
	for _, q := range questions {
		if !q.Required {
			continue
		}
		if _, ok := answers[AnswerKey(q.Id)]; !ok {
			missing = append(missing, q.Id)
		}
	}
	return missing
}
