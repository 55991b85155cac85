package entity

import (
	"github.com/google/uuid"
)

type Survey struct {
	Id          uuid.UUID
	Title       string
	Description string
}

// SurveySection binds a Section into a Survey at a given order.
// When HasChoice is set, the section after this one is chosen from the
// respondent's choice answer instead of the static order.
type SurveySection struct {
	Id        uuid.UUID
	SurveyId  uuid.UUID
	SectionId uuid.UUID
	Order     int
	HasChoice bool
}
