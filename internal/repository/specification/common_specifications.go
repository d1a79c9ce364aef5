package specification

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByID filters by a uuid primary key
type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// ByKey filters by a string primary key (textbooks and chapters
// use caller-supplied string ids)
type ByKey struct {
	Key string
}

func (s ByKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.Key)
}

// OrderBy applies ordering
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

// Pagination
type Pagination struct {
	Limit  int
	Offset int
}

func (s Pagination) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.Limit).Offset(s.Offset)
}

// FilterBy Generic Filter
type FilterBy struct {
	Field string
	Value interface{}
}

func (s FilterBy) Apply(db *gorm.DB) *gorm.DB {
	query := fmt.Sprintf("%s = ?", s.Field)
	return db.Where(query, s.Value)
}

func Filter(field string, value interface{}) Specification {
	return FilterBy{Field: field, Value: value}
}
