package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MaxPageSize caps every Pagination regardless of what the caller asked for.
const MaxPageSize = 200

// ByID filters on the table's id column.
type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// OrderBy sorts on a single column. Field is quoted as an identifier.
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Order(clause.OrderByColumn{Column: clause.Column{Name: s.Field}, Desc: s.Desc})
}

type Pagination struct {
	Limit  int
	Offset int
}

func (s Pagination) Apply(db *gorm.DB) *gorm.DB {
	p := s.Clamp()
	return db.Limit(p.Limit).Offset(p.Offset)
}

// Clamp bounds Limit to (0, MaxPageSize] and Offset to >= 0.
func (s Pagination) Clamp() Pagination {
	if s.Limit <= 0 || s.Limit > MaxPageSize {
		s.Limit = MaxPageSize
	}
	if s.Offset < 0 {
		s.Offset = 0
	}
	return s
}

// FirstPage is Pagination{Limit: limit}.
func FirstPage(limit int) Pagination {
	return Pagination{Limit: limit}
}
