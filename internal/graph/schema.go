// Package graph binds the GraphQL schema to the library resolvers.
package graph

import (
	_ "embed"
	"log/slog"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/library"
)

//go:embed schema.graphql
var SDL string

const defaultMaxDepth = 10

type Options struct {
	// MaxDepth limits query nesting. Zero means defaultMaxDepth.
	MaxDepth int
	// Logger receives resolver panics. Nil means slog.Default().
	Logger *slog.Logger
}

// NewSchema parses SDL against a root resolver backed by q and m.
func NewSchema(q *library.Resolver, m *library.Mutator, opts Options) (*graphql.Schema, error) {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = defaultMaxDepth
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return graphql.ParseSchema(SDL, NewRoot(q, m),
		graphql.MaxDepth(opts.MaxDepth),
		graphql.Logger(&panicLogger{logger: opts.Logger}),
	)
}
