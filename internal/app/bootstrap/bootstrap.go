package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	productservice "showcase/contexts/catalog-experience/product-service"
	productpostgres "showcase/contexts/catalog-experience/product-service/adapters/postgres"
	identityservice "showcase/contexts/identity-access/identity-service"
	bcryptadapter "showcase/contexts/identity-access/identity-service/adapters/bcrypt"
	identitypostgres "showcase/contexts/identity-access/identity-service/adapters/postgres"
	moderationservice "showcase/contexts/moderation-safety/moderation-service"
	moderationpostgres "showcase/contexts/moderation-safety/moderation-service/adapters/postgres"
	"showcase/internal/platform/config"
	"showcase/internal/platform/db"
	"showcase/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN, db.PoolOptions{
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
	})
	if err != nil {
		return nil, err
	}

	if err := identitypostgres.Migrate(pg.DB); err != nil {
		return nil, err
	}
	if err := productpostgres.Migrate(pg.DB); err != nil {
		return nil, err
	}

	identityRepo := identitypostgres.NewRepository(pg.DB, logger)
	identityModule := identityservice.NewModule(identityservice.Dependencies{
		Repository:  identityRepo,
		Sessions:    identityRepo,
		Hasher:      bcryptadapter.NewHasher(cfg.BcryptCost),
		Clock:       identitypostgres.SystemClock{},
		IDGenerator: identitypostgres.UUIDGenerator{},
		AdminEmails: cfg.AdminEmails,
		SessionTTL:  cfg.SessionTTL,
		Logger:      logger,
	})

	productRepo := productpostgres.NewRepository(pg.DB, logger)
	productModule := productservice.NewModule(productservice.Dependencies{
		Repository:  productRepo,
		Clock:       productpostgres.SystemClock{},
		IDGenerator: productpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	moderationRepo := moderationpostgres.NewRepository(pg.DB, logger)
	moderationModule := moderationservice.NewModule(moderationservice.Dependencies{
		Products:  moderationRepo,
		Directory: moderationRepo,
		Clock:     moderationpostgres.SystemClock{},
		Logger:    logger,
	})

	server := httpserver.New(
		identityModule,
		productModule,
		moderationModule,
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
