package entity

import (
	"onboarding-survey-be/pkg/fault"

	"github.com/google/uuid"
)

// QuestionKind is a closed set: a question is either free text or a single
// choice over a fixed option list.
type QuestionKind int

const (
	KindText QuestionKind = iota + 1
	KindChoice
)

func (k QuestionKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindChoice:
		return "choice"
	default:
		return "unknown"
	}
}

type Question struct {
	Id        uuid.UUID
	SectionId uuid.UUID
	Text      string
	Kind      QuestionKind
	Options   []string // only meaningful when Kind == KindChoice
	Required  bool
}

// Validate enforces the definition-time invariant: choice questions carry a
// non-empty option list, text questions carry none. Violating definitions are
// rejected before they reach storage.
func (q *Question) Validate() error {
	switch q.Kind {
	case KindChoice:
		if len(q.Options) == 0 {
			return fault.NewClientError("choice question must define at least one option", nil)
		}
	case KindText:
		if len(q.Options) > 0 {
			return fault.NewClientError("text question must not define options", nil)
		}
	default:
		return fault.NewClientError("unknown question kind", nil)
	}
	return nil
}
