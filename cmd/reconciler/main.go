package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/adapters/repository/postgres"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/adapters/storage/minio"
	postgres2 "github.com/SadeepaGajanayaka/dementialinkfinale/internal/adapters/storage/postgres"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/config"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/port"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/service/cleanup"

	_ "github.com/lib/pq"
)

// The reconciler is the sweep from the api server as a standalone worker,
// for deployments that disable the in-process ticker and want reclamation
// scheduled separately from request serving.
func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := initDB(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()
	logger.Info("db connection established")

	chunkStore, err := initChunkStore(ctx, cfg, db, logger)
	if err != nil {
		logger.Error("failed to init chunk store", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}

	unitOfWork := postgres.NewUnitOfWork(db)
	cleanupService := cleanup.NewCleanupService(unitOfWork, chunkStore, cfg.Upload.PendingTTL, logger)

	logger.Info("reconciler started", "interval", cfg.Upload.SweepEvery, "pending_ttl", cfg.Upload.PendingTTL)

	ticker := time.NewTicker(cfg.Upload.SweepEvery)
	defer ticker.Stop()

	sweep(ctx, cleanupService, logger)
	for {
		select {
		case <-ticker.C:
			sweep(ctx, cleanupService, logger)
		case <-ctx.Done():
			logger.Info("reconciler shutdown complete")
			return
		}
	}
}

func sweep(ctx context.Context, service port.CleanupService, logger *slog.Logger) {
	if err := service.ReclaimStaleUploads(ctx, time.Now()); err != nil {
		logger.Error("failed to reclaim stale uploads", "error", err)
	}
	if err := service.ReclaimOrphanChunks(ctx); err != nil {
		logger.Error("failed to reclaim orphan chunks", "error", err)
	}
}

func initDB(cfg config.DatabaseConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}

func initChunkStore(ctx context.Context, cfg *config.Config, db *sql.DB, logger *slog.Logger) (port.ChunkStore, error) {
	switch cfg.Storage.Driver {
	case "minio":
		return minio.NewAdapter(ctx, cfg.Minio, logger)
	case "postgres":
		return postgres2.NewSqlChunkStore(db), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
