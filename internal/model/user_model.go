package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User is the identity row. Signup metadata is kept as raw JSON next to the
// credential so the auth store can hand it back without touching profiles.
type User struct {
	Id                uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email             string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	EncryptedPassword string         `gorm:"type:varchar(255);not null"`
	RawUserMetaData   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt         time.Time      `gorm:"autoCreateTime"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime"`
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
