package specification

import (
	"strings"

	"gorm.io/gorm"

	"github.com/google/uuid"
)

// ByEmail matches case-insensitively; emails are stored lower-cased.
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", strings.ToLower(strings.TrimSpace(s.Email)))
}

// UserOwnedBy scopes any per-user table to a single user.
type UserOwnedBy struct {
	UserID uuid.UUID
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}
