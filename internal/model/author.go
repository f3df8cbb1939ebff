package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Author is a seeded author record. Born is nil when the birth year is unknown.
type Author struct {
	ID   uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name string    `json:"name" gorm:"not null;index"`
	Born *int      `json:"born,omitempty"`
	Seq  int64     `json:"-" gorm:"not null;index"`
}

func (a *Author) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID, err = NewID()
	}
	return
}

// AuthorView is the read-time projection of an author with its book count.
type AuthorView struct {
	Name      string
	BookCount int
}

// Clone returns a copy that shares no memory with a.
func (a Author) Clone() Author {
	if a.Born != nil {
		born := *a.Born
		a.Born = &born
	}
	return a
}
