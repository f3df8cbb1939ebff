package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/config"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		GinMode:         gin.TestMode,
		Addr:            "127.0.0.1:0",
		LogFormat:       "text",
		StoreDriver:     config.StoreMemory,
		SQLiteDSN:       "file:app_" + uuid.NewString() + "?mode=memory&cache=shared",
		GraphQLMaxDepth: 10,
	}
}

func newTestApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()

	a, err := New(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

func query(t *testing.T, h http.Handler, q string) map[string]any {
	t.Helper()

	body, _ := json.Marshal(map[string]any{"query": q})
	req, _ := http.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Nil(t, resp["errors"], w.Body.String())
	return resp["data"].(map[string]any)
}

func TestNew_Drivers(t *testing.T) {
	for _, driver := range []string{config.StoreMemory, config.StoreSQLite} {
		t.Run(driver, func(t *testing.T) {
			cfg := testConfig()
			cfg.StoreDriver = driver
			a := newTestApp(t, cfg)

			data := query(t, a.Handler(), `{ bookCount authorCount }`)
			assert.EqualValues(t, 7, data["bookCount"])
			assert.EqualValues(t, 5, data["authorCount"])

			data = query(t, a.Handler(), `mutation {
				addBook(title: "Pimeyden tango", author: "Reijo Mäki", published: 1997, genres: ["crime"]) { title }
			}`)
			assert.Equal(t, map[string]any{"title": "Pimeyden tango"}, data["addBook"])

			data = query(t, a.Handler(), `{ allAuthors { name bookCount } }`)
			assert.Len(t, data["allAuthors"], 5)
			data = query(t, a.Handler(), `{ bookCount }`)
			assert.EqualValues(t, 8, data["bookCount"])
		})
	}
}

func TestNew_FixtureFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	seed := `{
		"authors": [{"name": "Ursula K. Le Guin", "born": 1929}],
		"books": [{"title": "The Dispossessed", "published": 1974, "author": "Ursula K. Le Guin", "genres": ["scifi"]}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o600))

	cfg := testConfig()
	cfg.FixturePath = path
	a := newTestApp(t, cfg)

	data := query(t, a.Handler(), `{ allAuthors { name bookCount } }`)
	assert.Equal(t, []any{
		map[string]any{"name": "Ursula K. Le Guin", "bookCount": float64(1)},
	}, data["allAuthors"])
}

func TestNew_MissingFixture(t *testing.T) {
	cfg := testConfig()
	cfg.FixturePath = filepath.Join(t.TempDir(), "missing.json")

	_, err := New(context.Background(), cfg, logging.Discard())
	assert.Error(t, err)
}

func TestRoutes(t *testing.T) {
	a := newTestApp(t, testConfig())

	for _, path := range []string{"/health", "/ready", "/swagger/index.html", "/swagger/doc.json"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		a.Handler().ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRoutes_RateLimitOnlyOnGraphQL(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPS = 0.001
	cfg.RateLimitBurst = 1
	a := newTestApp(t, cfg)

	query(t, a.Handler(), `{ authorCount }`)

	req, _ := http.NewRequest(http.MethodPost, "/graphql", bytes.NewReader([]byte(`{"query":"{ authorCount }"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	req, _ = http.NewRequest(http.MethodGet, "/health", nil)
	w = httptest.NewRecorder()
	a.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	a := newTestApp(t, testConfig())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Serve(ctx, ln) }()

	url := "http://" + ln.Addr().String() + "/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServerURL(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{"127.0.0.1:4000", "http://127.0.0.1:4000/graphql"},
		{"[::]:4000", "http://localhost:4000/graphql"},
		{"0.0.0.0:8080", "http://localhost:8080/graphql"},
		{"[::1]:4000", "http://[::1]:4000/graphql"},
	}

	for _, tt := range tests {
		addr, err := net.ResolveTCPAddr("tcp", tt.addr)
		require.NoError(t, err)
		assert.Equal(t, tt.want, serverURL(addr), tt.addr)
	}
}

func TestNew_FixtureWithPublishedOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	seed := `{"books": [{"title": "Far Future", "author": "A", "published": 3000000000, "genres": []}]}`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o600))

	cfg := testConfig()
	cfg.FixturePath = path

	_, err := New(context.Background(), cfg, logging.Discard())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Far Future")
}

func TestCloseDB_LogsFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(slog.LevelDebug, "text", &buf)

	closeDB(logger, &gorm.DB{Config: &gorm.Config{}})

	assert.Contains(t, buf.String(), "close database failed")
	assert.Contains(t, buf.String(), "level=ERROR")
}

func TestClose_SQLiteLogsClosed(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig()
	cfg.StoreDriver = config.StoreSQLite

	a, err := New(context.Background(), cfg, logging.New(slog.LevelDebug, "text", &buf))
	require.NoError(t, err)

	a.Close()
	a.Close()

	assert.Contains(t, buf.String(), "database closed")
	assert.NotContains(t, buf.String(), "close database failed")
}
