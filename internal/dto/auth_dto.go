package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type SignupRequest struct {
	FullName        string `json:"full_name" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"omitempty,eqfield=Password"`
	CareerGoal      string `json:"career_goal" validate:"required,oneof=first-job switch-career upskill promotion freelance entrepreneur"`
	ExperienceLevel string `json:"experience_level" validate:"required,oneof=student entry mid senior"`
}

// Normalize trims the free-text fields so length rules apply to content.
func (r *SignupRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
}

type SignupResponse struct {
	User    UserDTO     `json:"user"`
	Session *SessionDTO `json:"session"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserDTO struct {
	Id              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	FullName        string    `json:"full_name"`
	CareerGoal      string    `json:"career_goal"`
	ExperienceLevel string    `json:"experience_level"`
}

type SessionDTO struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserId      uuid.UUID `json:"user_id"`
	Email       string    `json:"email"`
}
