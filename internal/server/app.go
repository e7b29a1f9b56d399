// Package server initializes and runs the two server-side processes: the
// HTTP API and the thumbnail worker. Both are wired from the same config,
// picking the metadata, storage and queue backends by driver name.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/filevault/internal/logging"
	"github.com/dmitrijs2005/filevault/internal/server/config"
	"github.com/dmitrijs2005/filevault/internal/server/httpapi"
	"github.com/dmitrijs2005/filevault/internal/server/kv"
	"github.com/dmitrijs2005/filevault/internal/server/queue"
	"github.com/dmitrijs2005/filevault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/filevault/internal/server/services"
	"github.com/dmitrijs2005/filevault/internal/server/sessions"
	"github.com/dmitrijs2005/filevault/internal/server/storage"
	"github.com/dmitrijs2005/filevault/internal/server/thumbs"
)

// backends bundles the external resources both processes share.
type backends struct {
	repomanager repomanager.RepositoryManager
	kv          kv.Store
	sessions    *sessions.Store
	storage     storage.Store
	queue       queue.Queue
}

func newLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
}

func newBackends(ctx context.Context, cfg *config.Config) (*backends, error) {
	var m repomanager.RepositoryManager
	var err error
	switch cfg.DatabaseDriver {
	case config.DriverPostgres:
		m, err = repomanager.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	case config.DriverMongo:
		m, err = repomanager.NewMongoRepositoryManager(ctx, cfg.MongoURI, cfg.MongoDatabase)
	default:
		err = fmt.Errorf("unknown database driver %q", cfg.DatabaseDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	var st storage.Store
	switch cfg.StorageDriver {
	case config.StorageS3:
		st, err = storage.NewS3Store(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("s3 init error: %w", err)
		}
	case config.StorageFS:
		st = storage.NewFSStore(cfg.FolderPath)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	kvStore := kv.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword)

	return &backends{
		repomanager: m,
		kv:          kvStore,
		sessions:    sessions.NewStore(kvStore, cfg.SessionTTL),
		storage:     st,
		queue:       queue.NewRedisQueue(cfg.RedisAddr, cfg.RedisPassword, cfg.QueueName),
	}, nil
}

func (b *backends) close(ctx context.Context, logger logging.Logger) {
	if err := b.queue.Close(); err != nil {
		logger.Error(ctx, "queue close error", "error", err)
	}
	if err := b.kv.Close(); err != nil {
		logger.Error(ctx, "kv close error", "error", err)
	}
	if err := b.repomanager.Close(ctx); err != nil {
		logger.Error(ctx, "db close error", "error", err)
	}
}

func initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// App is the HTTP API process.
type App struct {
	config   *config.Config
	logger   logging.Logger
	backends *backends
	server   *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := newLogger()

	b, err := newBackends(ctx, cfg)
	if err != nil {
		return nil, err
	}

	handler := httpapi.NewHandler(
		services.NewAppService(b.repomanager, b.sessions),
		services.NewUserService(b.repomanager),
		services.NewAuthService(b.repomanager, b.sessions),
		services.NewFileService(b.repomanager, b.storage, b.queue),
		logger,
	)

	return &App{
		config:   cfg,
		logger:   logger,
		backends: b,
		server:   httpapi.NewServer(cfg.EndpointAddr, handler, logger),
	}, nil
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	initSignalHandler(cancelFunc)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()
	app.backends.close(context.Background(), app.logger)
}

// WorkerApp is the thumbnail worker process.
type WorkerApp struct {
	config   *config.Config
	logger   logging.Logger
	backends *backends
	worker   *thumbs.Worker
}

func NewWorkerApp(ctx context.Context, cfg *config.Config) (*WorkerApp, error) {
	logger := newLogger()

	b, err := newBackends(ctx, cfg)
	if err != nil {
		return nil, err
	}

	w := thumbs.NewWorker(b.repomanager, b.storage, b.queue,
		logger.With("module", "thumbnail_worker"), cfg.WorkerConcurrency)

	return &WorkerApp{config: cfg, logger: logger, backends: b, worker: w}, nil
}

func (app *WorkerApp) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting thumbnail worker...",
		"queue", app.config.QueueName, "concurrency", app.config.WorkerConcurrency)

	initSignalHandler(cancelFunc)

	app.worker.Run(ctx)
	app.backends.close(context.Background(), app.logger)
}
