package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/ovalline/cricketstats/internal/config"
	"github.com/ovalline/cricketstats/internal/infrastructure/repository/postgres"
	"github.com/ovalline/cricketstats/internal/interfaces/mcp"
	"github.com/ovalline/cricketstats/internal/platform/cache"
	"github.com/ovalline/cricketstats/internal/platform/logging"
	"github.com/ovalline/cricketstats/internal/usecase"
)

// Services bundles the wired application.
type Services struct {
	Server    *mcp.Server
	Ingestion *usecase.IngestionService
	Stats     *usecase.StatsService
}

// OpenDB connects with otel instrumentation so every query shows up as a
// child span of the request that caused it.
func OpenDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
	)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return db, nil
}

// Build wires repositories, services, and the protocol server.
func Build(cfg config.Config, db *sqlx.DB, logger *logging.Logger) Services {
	if logger == nil {
		logger = logging.Default()
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	stats := usecase.NewStatsService(
		postgres.NewTeamRepository(db),
		postgres.NewPlayerRepository(db),
		postgres.NewVenueRepository(db),
		postgres.NewOfficialRepository(db),
		postgres.NewMatchRepository(db),
		store,
		logger,
	)
	ingestion := usecase.NewIngestionService(postgres.NewMatchWriter(db), store, logger)

	dispatcher := mcp.NewDispatcher(stats)
	server := mcp.NewServer(dispatcher, logger, cfg.ServiceName, cfg.ServiceVersion)

	return Services{
		Server:    server,
		Ingestion: ingestion,
		Stats:     stats,
	}
}
