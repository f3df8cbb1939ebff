package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/model"
	"gorm.io/gorm"
)

// GormStore keeps the collections in a gorm database. Insertion order is
// tracked with a per-store sequence written to the seq column.
type GormStore struct {
	db *gorm.DB

	mu  sync.Mutex
	seq int64
}

var _ Store = (*GormStore)(nil)

// NewGormStore migrates the schema and inserts the seed records.
func NewGormStore(ctx context.Context, db *gorm.DB, authors []model.Author, books []model.Book) (*GormStore, error) {
	if err := db.WithContext(ctx).AutoMigrate(&model.Author{}, &model.Book{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	s := &GormStore{db: db}

	if len(authors) > 0 {
		rows := make([]model.Author, len(authors))
		for i, a := range authors {
			rows[i] = a.Clone()
			rows[i].Seq = int64(i + 1)
		}
		if err := db.WithContext(ctx).Create(&rows).Error; err != nil {
			return nil, fmt.Errorf("seed authors: %w", err)
		}
	}

	for _, b := range books {
		if err := s.AppendBook(ctx, b); err != nil {
			return nil, fmt.Errorf("seed books: %w", err)
		}
	}

	return s, nil
}

func (s *GormStore) ListAuthors(ctx context.Context) ([]model.Author, error) {
	var authors []model.Author
	if err := s.db.WithContext(ctx).
		Order("seq ASC").
		Find(&authors).Error; err != nil {

		return nil, err
	}
	return authors, nil
}

func (s *GormStore) ListBooks(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	if err := s.db.WithContext(ctx).
		Order("seq ASC").
		Find(&books).Error; err != nil {

		return nil, err
	}
	for i := range books {
		if books[i].Genres == nil {
			books[i].Genres = []string{}
		}
	}
	return books, nil
}

func (s *GormStore) AppendBook(ctx context.Context, book model.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := book.Clone()
	row.Seq = s.seq + 1

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}

	s.seq = row.Seq
	return nil
}
