package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateProfileRequest struct {
	FullName        string `json:"full_name" validate:"required,min=2"`
	CareerGoal      string `json:"career_goal" validate:"required,oneof=first-job switch-career upskill promotion freelance entrepreneur"`
	ExperienceLevel string `json:"experience_level" validate:"required,oneof=student entry mid senior"`
}

func (r *CreateProfileRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
}

// ProfileResponse reports Provisioned=false, with no Profile, for an
// identity whose profile was never written.
type ProfileResponse struct {
	Provisioned bool        `json:"provisioned"`
	Profile     *ProfileDTO `json:"profile"`
}

type ProfileDTO struct {
	UserId          uuid.UUID `json:"user_id"`
	FullName        string    `json:"full_name"`
	CareerGoal      string    `json:"career_goal"`
	ExperienceLevel string    `json:"experience_level"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
