package model

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	UserId          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName        string    `gorm:"type:varchar(255);not null"`
	CareerGoal      string    `gorm:"type:varchar(50)"`
	ExperienceLevel string    `gorm:"type:varchar(50)"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}
