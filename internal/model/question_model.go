package model

import (
	"time"

	"github.com/google/uuid"
)

// Question persists choice options as one comma-separated text column; the
// mapper splits it back into a list on the way out.
type Question struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SectionId     uuid.UUID `gorm:"type:uuid;not null;index"`
	Text          string    `gorm:"type:varchar(1024);not null"`
	Type          string    `gorm:"type:varchar(50);not null;default:'text'"`
	ChoiceOptions string    `gorm:"type:text"`
	IsRequired    bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Question) TableName() string {
	return "questions"
}
