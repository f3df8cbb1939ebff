// Package app assembles the library service from its configuration and runs
// the HTTP server.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/config"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/db"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/docs"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/fixture"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/graph"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/handler"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/library"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/store"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const Version = "0.1.0"

const shutdownTimeout = 5 * time.Second

type App struct {
	cfg       *config.Config
	logger    *slog.Logger
	startTime time.Time

	store  store.Store
	gormDB *gorm.DB
	schema *graphql.Schema
	engine *gin.Engine
}

// New seeds the configured store and builds the HTTP engine. Close releases
// the database when the sqlite driver is used.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{
		cfg:       cfg,
		logger:    logger,
		startTime: time.Now(),
	}

	seed, err := fixture.Load(cfg.FixturePath)
	if err != nil {
		return nil, err
	}
	logger.Debug("fixture loaded",
		"path", cfg.FixturePath,
		"authors", len(seed.Authors),
		"books", len(seed.Books),
	)

	if err := a.openStore(ctx, seed); err != nil {
		return nil, err
	}

	mutator, err := library.NewMutator(a.store)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("build mutator: %w", err)
	}

	a.schema, err = graph.NewSchema(library.NewResolver(a.store), mutator, graph.Options{
		MaxDepth: cfg.GraphQLMaxDepth,
		Logger:   logger,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	a.engine = a.routes()
	return a, nil
}

func (a *App) openStore(ctx context.Context, seed fixture.Fixture) error {
	switch a.cfg.StoreDriver {
	case config.StoreSQLite:
		database, err := db.OpenSQLite(ctx, a.cfg.SQLiteDSN, a.logger)
		if err != nil {
			return err
		}
		s, err := store.NewGormStore(ctx, database, seed.Authors, seed.Books)
		if err != nil {
			closeDB(a.logger, database)
			return err
		}
		a.gormDB = database
		a.store = s
	default:
		a.store = store.NewMemoryStore(seed.Authors, seed.Books)
	}

	a.logger.Info("store ready", "driver", a.cfg.StoreDriver)
	return nil
}

func (a *App) routes() *gin.Engine {
	gin.SetMode(a.cfg.GinMode)

	e := gin.New()

	e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	e.Use(handler.RequestLogger(a.logger), handler.Recovery())

	healthHandler := handler.NewHealthHandler(a.store, a.startTime, Version)
	healthHandler.RegisterRoutes(e)

	api := e.Group("/", handler.RateLimit(a.cfg.RateLimitRPS, a.cfg.RateLimitBurst))
	{
		graphqlHandler := handler.NewGraphQLHandler(a.schema)
		graphqlHandler.RegisterRoutes(api)
	}

	docs.SwaggerInfo.BasePath = "/"
	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return e
}

// Handler exposes the engine, mostly for tests.
func (a *App) Handler() http.Handler {
	return a.engine
}

func (a *App) Close() {
	if a.gormDB != nil {
		closeDB(a.logger, a.gormDB)
		a.gormDB = nil
	}
}

func closeDB(logger *slog.Logger, database *gorm.DB) {
	sqlDB, err := database.DB()
	if err != nil {
		logger.Error("close database failed", "error", fmt.Errorf("get sql.DB from gorm: %w", err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("close database failed", "error", err)
		return
	}
	logger.Debug("database closed", "driver", "sqlite")
}
