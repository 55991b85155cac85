package model

import (
	"time"

	"github.com/google/uuid"
)

type SurveySection struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SurveyId  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_survey_order"`
	SectionId uuid.UUID `gorm:"type:uuid;not null;index"`
	Order     int       `gorm:"column:section_order;not null;uniqueIndex:idx_survey_order"`
	HasChoice bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (SurveySection) TableName() string {
	return "survey_sections"
}
