package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByTitle filters by the unique section title.
type ByTitle struct {
	Title string
}

func (s ByTitle) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title = ?", s.Title)
}

// BySurvey filters membership edges or responses to one survey.
type BySurvey struct {
	SurveyID uuid.UUID
}

func (s BySurvey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("survey_id = ?", s.SurveyID)
}

// BySection filters rows belonging to one section.
type BySection struct {
	SectionID uuid.UUID
}

func (s BySection) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("section_id = ?", s.SectionID)
}

// OrderGreaterThan selects membership edges past a position in the survey.
type OrderGreaterThan struct {
	Order int
}

func (s OrderGreaterThan) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("section_order > ?", s.Order)
}

// ByUser filters responses submitted by one user.
type ByUser struct {
	UserID string
}

func (s ByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}
