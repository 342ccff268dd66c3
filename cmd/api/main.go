package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/helpdesk/internal/api/http"
	"github.com/spec-kit/helpdesk/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk/internal/auth"
	"github.com/spec-kit/helpdesk/internal/config"
	"github.com/spec-kit/helpdesk/internal/events"
	"github.com/spec-kit/helpdesk/internal/observability"
	"github.com/spec-kit/helpdesk/internal/persistence"
	"github.com/spec-kit/helpdesk/internal/repository"
	"github.com/spec-kit/helpdesk/internal/service"
	"github.com/spec-kit/helpdesk/internal/storage"
	"github.com/spec-kit/helpdesk/internal/worker"
)

// maxFilesPerUpload bounds the request body of POST /api/uploads.
const maxFilesPerUpload = 5

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.App, cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	var (
		ticketRepo repository.TicketRepository
		userRepo   repository.UserRepository
	)
	if pg.Enabled() {
		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		ticketRepo = repository.NewTicketRepository(pg.PoolHandle())
		userRepo = repository.NewUserRepository(pg.PoolHandle())
	} else {
		ticketRepo = repository.NewMemoryTicketRepository()
		userRepo = repository.NewMemoryUserRepository()
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()
	if redis.Enabled() {
		ticketRepo = repository.NewCachedTicketRepository(ticketRepo, redis.Handle(), cfg.Redis.CacheTTL(), logger)
	}

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher(logger)
	notifications := service.NewNotificationService(dispatcher, logger, metrics, cfg.Notification)

	var forwarder *events.MQTTForwarder
	if cfg.MQTT.BrokerURL != "" {
		client, err := events.ConnectMQTT(cfg.MQTT, logger)
		if err != nil {
			logger.Warn("mqtt fan-out disabled", zap.Error(err))
		}
		if client != nil {
			defer client.Disconnect(250)
			forwarder = events.NewMQTTForwarder(client, cfg.MQTT.TopicPrefix, logger)
		}
	}
	worker.StartNotificationWorker(dispatcher, notifications, forwarder, logger)

	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		UserRepo: userRepo,
		Logger:   logger,
	})
	if err := authService.EnsureBootstrapAdmin(ctx, cfg.Auth); err != nil {
		logger.Fatal("failed to create bootstrap admin", zap.Error(err))
	}
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo:        ticketRepo,
		Dispatcher:        dispatcher,
		StrictTransitions: cfg.Tickets.StrictTransitions,
	})

	disk, err := storage.NewDisk(cfg.Uploads.Dir, cfg.Uploads.MaxBytes)
	if err != nil {
		logger.Fatal("failed to prepare upload dir", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    int(cfg.Uploads.MaxBytes) * maxFilesPerUpload,
		ErrorHandler: httptransport.ErrorHandler(logger),
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:            handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Users:             handlers.NewUsersHandler(authService),
		Tickets:           handlers.NewTicketsHandler(ticketService),
		DepartmentTickets: handlers.NewDepartmentTicketsHandler(ticketService),
		Uploads:           handlers.NewUploadsHandler(disk, logger),
		Navigation:        handlers.NewNavigationHandler(),
		Reports:           handlers.NewReportsHandler(ticketService, logger),
		AuthMiddleware:    auth.NewAuthMiddleware(authService.TokenManager()),
		UserRepo:          userRepo,
		UploadsDir:        disk.Dir(),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("shutdown incomplete", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
