package entity

import (
	"time"

	"github.com/google/uuid"
)

type SignupMetadata struct {
	FullName        string `json:"full_name"`
	CareerGoal      string `json:"career_goal"`
	ExperienceLevel string `json:"experience_level"`
}

// Identity is the authentication record. It is owned by the auth store;
// nothing outside pkg/authstore reads PasswordHash.
type Identity struct {
	Id           uuid.UUID
	Email        string
	PasswordHash string
	Metadata     SignupMetadata
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Session struct {
	AccessToken string
	UserId      uuid.UUID
	Email       string
	ExpiresAt   time.Time
}
