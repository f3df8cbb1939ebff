package library

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/logging"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/model"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/store"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// AddBookInput holds the addBook arguments. All fields are required; Genres
// may be empty but not nil.
type AddBookInput struct {
	Title     string
	Author    string
	Published int
	Genres    []string `validate:"required"`
}

// Mutator applies addBook.
type Mutator struct {
	store    store.Store
	validate *validator.Validate
	newID    func() (uuid.UUID, error)

	tracer   trace.Tracer
	added    metric.Int64Counter
	rejected metric.Int64Counter

	// mu makes the duplicate scan and the append one step.
	mu sync.Mutex
}

func NewMutator(s store.Store, opts ...Option) (*Mutator, error) {
	o := buildOptions(opts)
	meter := o.meter()

	added, err := meter.Int64Counter("library.books.added",
		metric.WithDescription("Books appended by addBook"),
	)
	if err != nil {
		return nil, fmt.Errorf("create counter: %w", err)
	}

	rejected, err := meter.Int64Counter("library.books.rejected",
		metric.WithDescription("addBook calls rejected as duplicates"),
	)
	if err != nil {
		return nil, fmt.Errorf("create counter: %w", err)
	}

	return &Mutator{
		store:    s,
		validate: validator.New(),
		newID:    o.newID,
		tracer:   o.tracer(),
		added:    added,
		rejected: rejected,
	}, nil
}

// AddBook appends a new book unless one with the same title and author is
// already stored, in which case it returns a *DuplicateBookError and leaves
// the store unchanged.
func (m *Mutator) AddBook(ctx context.Context, in AddBookInput) (*model.Book, error) {
	ctx, span := m.tracer.Start(ctx, "library.AddBook",
		trace.WithAttributes(
			attribute.String("book.title", in.Title),
			attribute.String("book.author", in.Author),
		),
	)
	defer span.End()

	logger := logging.FromContext(ctx)

	if err := m.validate.StructCtx(ctx, in); err != nil {
		err = &invalidArgumentsError{err: err}
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid arguments")
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	books, err := m.store.ListBooks(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list books")
		return nil, fmt.Errorf("list books: %w", err)
	}

	for _, b := range books {
		if b.Title == in.Title && b.Author == in.Author {
			dup := &DuplicateBookError{Title: in.Title, Author: in.Author}
			m.rejected.Add(ctx, 1)
			span.RecordError(dup)
			span.SetStatus(codes.Error, "duplicate book")
			logger.InfoContext(ctx, "addBook rejected",
				"title", in.Title,
				"author", in.Author,
				"reason", "duplicate",
			)
			return nil, dup
		}
	}

	id, err := m.newID()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate id")
		return nil, fmt.Errorf("generate id: %w", err)
	}

	book := model.Book{
		ID:        id,
		Title:     in.Title,
		Published: in.Published,
		Author:    in.Author,
		Genres:    in.Genres,
	}.Clone()

	if err := m.store.AppendBook(ctx, book); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "append book")
		return nil, fmt.Errorf("append book: %w", err)
	}

	m.added.Add(ctx, 1)
	span.SetAttributes(attribute.String("book.id", id.String()))

	if logger.Enabled(ctx, slog.LevelDebug) {
		m.noteUnknownAuthor(ctx, logger, in.Author)
	}
	logger.InfoContext(ctx, "book added",
		"id", id.String(),
		"title", in.Title,
		"author", in.Author,
	)

	return &book, nil
}

// noteUnknownAuthor logs books whose author is not in the author collection.
// Such books are accepted.
func (m *Mutator) noteUnknownAuthor(ctx context.Context, logger *slog.Logger, name string) {
	authors, err := m.store.ListAuthors(ctx)
	if err != nil {
		logger.DebugContext(ctx, "author lookup failed", "error", err)
		return
	}
	for _, a := range authors {
		if a.Name == name {
			return
		}
	}
	logger.DebugContext(ctx, "book references unknown author", "author", name)
}
