package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc"

	"github.com/ovalline/cricketstats/external/cricsheet"
	"github.com/ovalline/cricketstats/internal/app"
	"github.com/ovalline/cricketstats/internal/config"
	"github.com/ovalline/cricketstats/internal/domain/match"
	"github.com/ovalline/cricketstats/internal/platform/logging"
	"github.com/ovalline/cricketstats/internal/platform/resilience"
)

// The loader bulk-ingests match files, either from a local directory of
// cricsheet JSON documents or fetched straight from the archive. One bad
// file is logged and skipped; the rest of the batch proceeds.
func main() {
	var (
		dir     = flag.String("dir", "", "directory of <match_id>.json files to ingest")
		fetch   = flag.String("fetch", "", "comma-separated match ids to fetch from the archive")
		workers = flag.Int("workers", 0, "ingest workers, defaults to INGEST_WORKERS")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer logger.Sync() //nolint:errcheck

	if *dir == "" && *fetch == "" {
		logger.Error("nothing to do: pass -dir or -fetch")
		os.Exit(2)
	}
	if *workers <= 0 {
		*workers = cfg.IngestWorkers
	}

	db, err := app.OpenDB(cfg)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	services := app.Build(cfg, db, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var records []*match.Record
	if *dir != "" {
		records = append(records, loadDir(ctx, logger, *dir)...)
	}
	if *fetch != "" {
		records = append(records, fetchMatches(ctx, cfg, logger, splitIDs(*fetch))...)
	}

	ingested, failed := ingestAll(ctx, services, logger, records, *workers)
	logger.Info("load finished", "ingested", ingested, "failed", failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func loadDir(ctx context.Context, logger *logging.Logger, dir string) []*match.Record {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		logger.Error("scan match directory", "dir", dir, "error", err)
		return nil
	}

	var records []*match.Record
	for _, path := range paths {
		if ctx.Err() != nil {
			break
		}
		matchID := strings.TrimSuffix(filepath.Base(path), ".json")
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("read match file", "path", path, "error", err)
			continue
		}
		record, err := cricsheet.Decode(matchID, data)
		if err != nil {
			logger.Warn("decode match file", "path", path, "error", err)
			continue
		}
		records = append(records, record)
	}

	return records
}

func fetchMatches(ctx context.Context, cfg config.Config, logger *logging.Logger, ids []string) []*match.Record {
	client := cricsheet.NewClient(cricsheet.ClientConfig{
		BaseURL:    cfg.CricsheetBaseURL,
		Timeout:    cfg.CricsheetTimeout,
		MaxRetries: cfg.CricsheetMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.CricsheetCircuitEnabled,
			FailureThreshold: cfg.CricsheetCircuitFailureCount,
			OpenTimeout:      cfg.CricsheetCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.CricsheetCircuitHalfOpenMax,
		},
	})

	var mu sync.Mutex
	var records []*match.Record
	var wg conc.WaitGroup
	for _, id := range ids {
		id := id
		wg.Go(func() {
			record, err := client.FetchMatch(ctx, id)
			if err != nil {
				logger.Warn("fetch match", "match_id", id, "error", err)
				return
			}
			mu.Lock()
			records = append(records, record)
			mu.Unlock()
		})
	}
	wg.Wait()

	return records
}

func ingestAll(ctx context.Context, services app.Services, logger *logging.Logger, records []*match.Record, workers int) (int, int) {
	pool, err := ants.NewPool(workers)
	if err != nil {
		logger.Error("create worker pool", "error", err)
		return 0, len(records)
	}
	defer pool.Release()

	var ingested, failed atomic.Int32
	var wg sync.WaitGroup
	for _, record := range records {
		record := record
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			if err := services.Ingestion.Ingest(ctx, record); err != nil {
				logger.Warn("ingest match", "match_id", record.MatchID, "error", err)
				failed.Add(1)
				return
			}
			ingested.Add(1)
		}); err != nil {
			wg.Done()
			failed.Add(1)
		}
	}
	wg.Wait()

	return int(ingested.Load()), int(failed.Load())
}

func splitIDs(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		id := strings.TrimSpace(part)
		if id == "" {
			continue
		}
		out = append(out, id)
	}
	return out
}
