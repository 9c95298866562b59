package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is keyed 1:1 with Identity.Id. It may be missing for an identity
// whose provisioning failed; readers treat that as "not yet provisioned".
type Profile struct {
	UserId          uuid.UUID
	FullName        string
	CareerGoal      string
	ExperienceLevel string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
