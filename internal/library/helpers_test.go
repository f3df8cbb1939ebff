package library

import (
	"context"
	"errors"
	"testing"

	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/fixture"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/model"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/store"
	"github.com/stretchr/testify/require"
)

var errStoreDown = errors.New("store down")

type fakeStore struct {
	ListAuthorsFn func(ctx context.Context) ([]model.Author, error)
	ListBooksFn   func(ctx context.Context) ([]model.Book, error)
	AppendBookFn  func(ctx context.Context, b model.Book) error
}

func (f *fakeStore) ListAuthors(ctx context.Context) ([]model.Author, error) {
	if f.ListAuthorsFn != nil {
		return f.ListAuthorsFn(ctx)
	}
	return nil, nil
}

func (f *fakeStore) ListBooks(ctx context.Context) ([]model.Book, error) {
	if f.ListBooksFn != nil {
		return f.ListBooksFn(ctx)
	}
	return nil, nil
}

func (f *fakeStore) AppendBook(ctx context.Context, b model.Book) error {
	if f.AppendBookFn != nil {
		return f.AppendBookFn(ctx, b)
	}
	return nil
}

func newFixtureStore() *store.MemoryStore {
	f := fixture.Default()
	return store.NewMemoryStore(f.Authors, f.Books)
}

func newMutator(t *testing.T, s store.Store, opts ...Option) *Mutator {
	t.Helper()

	m, err := NewMutator(s, opts...)
	require.NoError(t, err)
	return m
}

func ptr(s string) *string {
	return &s
}

func titles(books []model.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.Title
	}
	return out
}

func newStoreFrom(f fixture.Fixture) *store.MemoryStore {
	return store.NewMemoryStore(f.Authors, f.Books)
}
