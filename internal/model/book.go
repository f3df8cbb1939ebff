package model

import (
	"slices"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Book references its author by name only; the author need not exist.
type Book struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title     string    `json:"title" gorm:"not null;index:idx_books_title_author"`
	Published int       `json:"published" gorm:"not null"`
	Author    string    `json:"author" gorm:"not null;index:idx_books_title_author"`
	Genres    []string  `json:"genres" gorm:"serializer:json;not null"`
	Seq       int64     `json:"-" gorm:"not null;index"`
}

func (b *Book) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID, err = NewID()
	}
	return
}

// Clone returns a copy that shares no memory with b.
func (b Book) Clone() Book {
	b.Genres = slices.Clone(b.Genres)
	if b.Genres == nil {
		b.Genres = []string{}
	}
	return b
}

// HasGenre reports whether genre is one of the book's genres.
func (b Book) HasGenre(genre string) bool {
	return slices.Contains(b.Genres, genre)
}
