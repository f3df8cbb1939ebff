package library

import (
	"context"
	"fmt"

	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/model"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/store"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// BookFilter narrows AllBooks. A nil or empty field does not restrict.
type BookFilter struct {
	Author *string
	Genre  *string
}

// Resolver answers the read queries.
type Resolver struct {
	store  store.Store
	tracer trace.Tracer
}

func NewResolver(s store.Store, opts ...Option) *Resolver {
	o := buildOptions(opts)
	return &Resolver{
		store:  s,
		tracer: o.tracer(),
	}
}

func filterValue(p *string) (string, bool) {
	if p == nil || *p == "" {
		return "", false
	}
	return *p, true
}

// BookCount returns the number of books, or the number written by author
// when author is set.
func (r *Resolver) BookCount(ctx context.Context, author *string) (int, error) {
	ctx, span := r.tracer.Start(ctx, "library.BookCount")
	defer span.End()

	books, err := r.listBooks(ctx, span)
	if err != nil {
		return 0, err
	}

	name, ok := filterValue(author)
	if !ok {
		return len(books), nil
	}

	span.SetAttributes(attribute.String("filter.author", name))

	n := 0
	for _, b := range books {
		if b.Author == name {
			n++
		}
	}
	return n, nil
}

func (r *Resolver) AuthorCount(ctx context.Context) (int, error) {
	ctx, span := r.tracer.Start(ctx, "library.AuthorCount")
	defer span.End()

	authors, err := r.listAuthors(ctx, span)
	if err != nil {
		return 0, err
	}
	return len(authors), nil
}

// AllBooks returns the books matching f in collection order. The genre
// filter is applied to the result of the author filter.
func (r *Resolver) AllBooks(ctx context.Context, f BookFilter) ([]model.Book, error) {
	ctx, span := r.tracer.Start(ctx, "library.AllBooks")
	defer span.End()

	books, err := r.listBooks(ctx, span)
	if err != nil {
		return nil, err
	}

	if author, ok := filterValue(f.Author); ok {
		span.SetAttributes(attribute.String("filter.author", author))
		books = filterBooks(books, func(b model.Book) bool {
			return b.Author == author
		})
	}

	if genre, ok := filterValue(f.Genre); ok {
		span.SetAttributes(attribute.String("filter.genre", genre))
		books = filterBooks(books, func(b model.Book) bool {
			return b.HasGenre(genre)
		})
	}

	span.SetAttributes(attribute.Int("result.count", len(books)))
	return books, nil
}

// AllAuthors returns every author with the number of books that name them.
func (r *Resolver) AllAuthors(ctx context.Context) ([]model.AuthorView, error) {
	ctx, span := r.tracer.Start(ctx, "library.AllAuthors")
	defer span.End()

	authors, err := r.listAuthors(ctx, span)
	if err != nil {
		return nil, err
	}
	books, err := r.listBooks(ctx, span)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(authors))
	for _, b := range books {
		counts[b.Author]++
	}

	views := make([]model.AuthorView, 0, len(authors))
	for _, a := range authors {
		views = append(views, model.AuthorView{
			Name:      a.Name,
			BookCount: counts[a.Name],
		})
	}
	return views, nil
}

func (r *Resolver) listBooks(ctx context.Context, span trace.Span) ([]model.Book, error) {
	books, err := r.store.ListBooks(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list books")
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

func (r *Resolver) listAuthors(ctx context.Context, span trace.Span) ([]model.Author, error) {
	authors, err := r.store.ListAuthors(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list authors")
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return authors, nil
}

func filterBooks(books []model.Book, keep func(model.Book) bool) []model.Book {
	out := make([]model.Book, 0, len(books))
	for _, b := range books {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}
