package graph

import (
	"context"
	"errors"

	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/library"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/logging"
)

// Root resolves the Query and Mutation fields.
type Root struct {
	queries   *library.Resolver
	mutations *library.Mutator
}

func NewRoot(q *library.Resolver, m *library.Mutator) *Root {
	return &Root{queries: q, mutations: m}
}

type bookCountArgs struct {
	Author *string
}

type allBooksArgs struct {
	Author *string
	Genre  *string
}

type addBookArgs struct {
	Title     string
	Author    string
	Published int32
	Genres    []string
}

func (r *Root) BookCount(ctx context.Context, args bookCountArgs) (int32, error) {
	n, err := r.queries.BookCount(ctx, args.Author)
	if err != nil {
		return 0, resolverError(ctx, "bookCount", err)
	}
	return int32(n), nil
}

func (r *Root) AuthorCount(ctx context.Context) (int32, error) {
	n, err := r.queries.AuthorCount(ctx)
	if err != nil {
		return 0, resolverError(ctx, "authorCount", err)
	}
	return int32(n), nil
}

func (r *Root) AllBooks(ctx context.Context, args allBooksArgs) ([]*BookResolver, error) {
	books, err := r.queries.AllBooks(ctx, library.BookFilter{
		Author: args.Author,
		Genre:  args.Genre,
	})
	if err != nil {
		return nil, resolverError(ctx, "allBooks", err)
	}

	out := make([]*BookResolver, len(books))
	for i := range books {
		out[i] = &BookResolver{book: books[i]}
	}
	return out, nil
}

func (r *Root) AllAuthors(ctx context.Context) ([]*AuthorResolver, error) {
	views, err := r.queries.AllAuthors(ctx)
	if err != nil {
		return nil, resolverError(ctx, "allAuthors", err)
	}

	out := make([]*AuthorResolver, len(views))
	for i := range views {
		out[i] = &AuthorResolver{view: views[i]}
	}
	return out, nil
}

func (r *Root) AddBook(ctx context.Context, args addBookArgs) (*BookResolver, error) {
	if isReadOnly(ctx) {
		return nil, errMutationNotAllowed
	}

	book, err := r.mutations.AddBook(ctx, library.AddBookInput{
		Title:     args.Title,
		Author:    args.Author,
		Published: int(args.Published),
		Genres:    args.Genres,
	})
	if err != nil {
		return nil, resolverError(ctx, "addBook", err)
	}
	return &BookResolver{book: *book}, nil
}

// resolverError passes user input errors through unchanged so their
// extensions reach the client, and hides everything else.
func resolverError(ctx context.Context, field string, err error) error {
	var dup *library.DuplicateBookError
	if errors.As(err, &dup) {
		return dup
	}
	if library.KindOf(err) == library.KindUserInput {
		return &Error{Message: err.Error(), Code: library.CodeBadUserInput}
	}

	logging.FromContext(ctx).ErrorContext(ctx, "resolver failed",
		"field", field,
		"error", err,
	)
	return errInternal
}
