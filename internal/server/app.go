// Package server initializes and runs the hikekeeper backend.
// It opens the configured storage backend, wires services, and runs the
// HTTP and gRPC endpoints until a shutdown signal arrives.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/hikekeeper/internal/logging"
	"github.com/dmitrijs2005/hikekeeper/internal/server/archive"
	"github.com/dmitrijs2005/hikekeeper/internal/server/config"
	"github.com/dmitrijs2005/hikekeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/hikekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/hikekeeper/internal/server/services"

	gs "github.com/dmitrijs2005/hikekeeper/internal/server/grpc"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	closeLogger    func() error
	repomanager    repomanager.RepositoryManager
	userService    *services.UserService
	profileService *services.ProfileService
	trailService   *services.TrailService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger, closeLogger, err := logging.New(logging.Options{
		Backend: c.LogBackend,
		Level:   c.LogLevel,
		File:    c.LogFile,
	})
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	rm, err := openStorage(ctx, c)
	if err != nil {
		_ = closeLogger()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(ctx); err != nil {
		_ = rm.Close(ctx)
		_ = closeLogger()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	var trackArchive archive.TrackArchive
	if c.ArchiveTracks {
		trackArchive, err = archive.NewS3Archive(ctx, archive.Options{
			AccessKey:    c.S3AccessKey,
			SecretKey:    c.S3SecretKey,
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
		})
		if err != nil {
			_ = rm.Close(ctx)
			_ = closeLogger()
			return nil, fmt.Errorf("archive init error: %w", err)
		}
	}

	logger.Info(ctx, "Storage ready", "backend", c.StorageBackend, "archive", c.ArchiveTracks)

	return &App{
		config:         c,
		logger:         logger,
		closeLogger:    closeLogger,
		repomanager:    rm,
		userService:    services.NewUserService(rm, c, logger),
		profileService: services.NewProfileService(rm, c, logger),
		trailService:   services.NewTrailService(rm, trackArchive, logger),
	}, nil
}

// openStorage connects to the backend named in the config.
func openStorage(ctx context.Context, c *config.Config) (repomanager.RepositoryManager, error) {
	switch c.StorageBackend {
	case config.BackendMemory:
		return repomanager.NewMemoryRepositoryManager(), nil
	case config.BackendPostgres:
		return repomanager.OpenPostgres(ctx, c.DatabaseDSN)
	case config.BackendMongo:
		return repomanager.OpenMongo(ctx, c.MongoURI, repomanager.MongoOptions{
			AuthDatabase: c.MongoAuthDatabase,
			DataDatabase: c.MongoDataDatabase,
			Transactions: c.MongoTransactions,
		})
	default:
		return nil, fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.profileService, app.trailService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	icons := httpapi.NewIconProxy(app.config.IconBaseURL, nil, app.logger)
	h := httpapi.NewHandler(app.userService, app.profileService, app.trailService, icons, app.logger)
	router := httpapi.NewRouter(h, httpapi.RouterOptions{CORSOrigins: app.config.CORSOrigins})

	s := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, router, app.config.ShutdownTimeout, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves both endpoints until ctx is cancelled, a signal arrives, or one
// of the servers fails, then releases storage and the logger.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.logger.Info(context.Background(), "Stopped, closing storage")
	if err := app.repomanager.Close(context.Background()); err != nil {
		app.logger.Error(context.Background(), "storage close error", "error", err)
	}
	_ = app.closeLogger()
}
