package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/fixture"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/graph"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/library"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/logging"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/model"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/store"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	ListAuthorsFn func(ctx context.Context) ([]model.Author, error)
}

func (f *fakeStore) ListAuthors(ctx context.Context) ([]model.Author, error) {
	if f.ListAuthorsFn != nil {
		return f.ListAuthorsFn(ctx)
	}
	return nil, nil
}

func (f *fakeStore) ListBooks(ctx context.Context) ([]model.Book, error) {
	return nil, nil
}

func (f *fakeStore) AppendBook(ctx context.Context, b model.Book) error {
	return nil
}

func newFixtureStore() store.Store {
	f := fixture.Default()
	return store.NewMemoryStore(f.Authors, f.Books)
}

func setupTestRouter(t *testing.T, s store.Store) *gin.Engine {
	t.Helper()

	m, err := library.NewMutator(s)
	require.NoError(t, err)

	schema, err := graph.NewSchema(library.NewResolver(s), m, graph.Options{Logger: logging.Discard()})
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(logging.Discard()), Recovery())

	NewGraphQLHandler(schema).RegisterRoutes(r)
	NewHealthHandler(s, time.Now(), "test").RegisterRoutes(r)

	return r
}

func postGraphQL(t *testing.T, r http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()

	b, err := json.Marshal(body)
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message    string         `json:"message"`
		Path       []any          `json:"path"`
		Extensions map[string]any `json:"extensions"`
	} `json:"errors"`
}

func decodeGraphQL(t *testing.T, w *httptest.ResponseRecorder) gqlResponse {
	t.Helper()

	var resp gqlResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}
