package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/adapters/eventbroker/nats"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/adapters/eventbroker/noop"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/adapters/handlers/http/chi"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/adapters/handlers/http/chi/asset"
	blob2 "github.com/SadeepaGajanayaka/dementialinkfinale/internal/adapters/handlers/http/chi/blob"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/adapters/repository/postgres"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/adapters/storage/minio"
	postgres2 "github.com/SadeepaGajanayaka/dementialinkfinale/internal/adapters/storage/postgres"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/config"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/port"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/service/blob"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/service/catalog"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/service/cleanup"

	_ "github.com/lib/pq"
)

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
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
			logger.Error("failed to close database", "error", err)
			os.Exit(1)
		}
	}(db)
	logger.Info("db connection established")

	//chunk storage, backend per config
	chunkStore, err := initChunkStore(ctx, cfg, db, logger)
	if err != nil {
		logger.Error("failed to init chunk store", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}

	//event feed
	var publisher port.EventPublisher
	if cfg.NATS.Enabled {
		natsPublisher, err := nats.NewPublisher(ctx, cfg.NATS, logger)
		if err != nil {
			logger.Error("failed to init nats publisher", "error", err)
			os.Exit(1)
		}
		publisher = natsPublisher
		logger.Info("nats publisher initialized", "stream", cfg.NATS.StreamName)
	} else {
		publisher = noop.NewPublisher()
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close publisher", "error", err)
		}
	}()

	//repositories
	unitOfWork := postgres.NewUnitOfWork(db)

	blobService := blob.NewBlobService(unitOfWork, chunkStore, cfg.Storage, logger)
	catalogService := catalog.NewCatalogService(unitOfWork, blobService, publisher, logger)
	cleanupService := cleanup.NewCleanupService(unitOfWork, chunkStore, cfg.Upload.PendingTTL, logger)

	//http
	assetHandler := asset.NewAssetHandler(catalogService, blobService, logger)
	blobHandler := blob2.NewBlobHandler(blobService, logger)

	router := chi.NewRouter(logger, assetHandler, blobHandler, cfg.Env.Env, cfg.Server.RequestTimeout, cfg.Upload.MaxRequestBytes)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	// init reclamation sweep
	if cfg.Upload.SweepEnabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			initSweepTask(ctx, cleanupService, cfg.Upload.SweepEvery, logger)
		}()
	}

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

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

func initSweepTask(ctx context.Context, service port.CleanupService, every time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	logger.Info("reclamation sweep initialized", "interval", every)

	for {
		select {
		case <-ticker.C:
			logger.Info("reclamation sweep starting")
			if err := service.ReclaimStaleUploads(ctx, time.Now()); err != nil {
				logger.Error("failed to reclaim stale uploads", "error", err)
			}
			if err := service.ReclaimOrphanChunks(ctx); err != nil {
				logger.Error("failed to reclaim orphan chunks", "error", err)
			}
			logger.Info("reclamation sweep completed")
		case <-ctx.Done():
			logger.Info("reclamation sweep stopped")
			return
		}
	}

}
