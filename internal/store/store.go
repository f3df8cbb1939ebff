// Package store holds the authoritative author and book collections.
//
// Both collections are seeded once when a store is created. Authors never
// change afterwards; books only grow through AppendBook. Validation of new
// books is the caller's job.
package store

import (
	"context"

	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/model"
)

type Store interface {
	// ListAuthors returns every author in insertion order.
	ListAuthors(ctx context.Context) ([]model.Author, error)
	// ListBooks returns every book in insertion order.
	ListBooks(ctx context.Context) ([]model.Book, error)
	// AppendBook adds book after all existing books.
	AppendBook(ctx context.Context, book model.Book) error
}
