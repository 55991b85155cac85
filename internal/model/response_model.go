package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Response struct {
	Id        uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SurveyId  uuid.UUID         `gorm:"type:uuid;not null;index"`
	UserId    string            `gorm:"type:varchar(255);not null"`
	Answers   datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt time.Time         `gorm:"autoCreateTime"`
}

func (Response) TableName() string {
	return "responses"
}
