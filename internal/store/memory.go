package store

import (
	"context"
	"sync"

	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/model"
)

// MemoryStore keeps both collections in slices. Reads hand out copies, so
// nothing a caller does to a result can reach the stored records.
type MemoryStore struct {
	mu      sync.RWMutex
	authors []model.Author
	books   []model.Book
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(authors []model.Author, books []model.Book) *MemoryStore {
	s := &MemoryStore{
		authors: make([]model.Author, 0, len(authors)),
		books:   make([]model.Book, 0, len(books)),
	}
	for _, a := range authors {
		s.authors = append(s.authors, a.Clone())
	}
	for _, b := range books {
		s.books = append(s.books, b.Clone())
	}
	return s
}

func (s *MemoryStore) ListAuthors(ctx context.Context) ([]model.Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Author, len(s.authors))
	for i, a := range s.authors {
		out[i] = a.Clone()
	}
	return out, nil
}

func (s *MemoryStore) ListBooks(ctx context.Context) ([]model.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Book, len(s.books))
	for i, b := range s.books {
		out[i] = b.Clone()
	}
	return out, nil
}

func (s *MemoryStore) AppendBook(ctx context.Context, book model.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.books = append(s.books, book.Clone())
	return nil
}
