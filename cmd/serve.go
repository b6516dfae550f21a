package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-admin/internal/backend"
	"github.com/spec-kit/helpdesk-admin/internal/config"
	"github.com/spec-kit/helpdesk-admin/internal/observability"
	"github.com/spec-kit/helpdesk-admin/internal/service"
	"github.com/spec-kit/helpdesk-admin/internal/session"
	"github.com/spec-kit/helpdesk-admin/internal/web"
	"github.com/spec-kit/helpdesk-admin/internal/web/handlers"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the admin web server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()

	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	store := session.NewRedisStore(cfg.Redis, sessionTTL, logger)
	defer store.Close()

	backendURL := cfg.Backend.ResolveBaseURL(cfg.App.Hostname)
	logger.Info("backend selected",
		zap.String("base_url", backendURL),
		zap.String("hostname", cfg.App.Hostname))

	client := backend.New(backendURL,
		time.Duration(cfg.Backend.TimeoutSeconds)*time.Second, logger, metrics)

	authService := service.NewAuthService(client, store, logger)
	ticketService := service.NewTicketService(client)

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		Views:   web.NewViewEngine(),
	})

	web.RegisterMiddlewares(app, web.MiddlewareConfig{
		Logger:     logger,
		Metrics:    metrics,
		Store:      store,
		CookieName: cfg.Session.CookieName,
	})

	web.RegisterRoutes(app, web.RouteConfig{
		Health:        handlers.NewHealthHandler(store, backendURL),
		Auth:          handlers.NewAuthHandler(authService, cfg.Session.CookieName, sessionTTL),
		Dashboard:     handlers.NewDashboardHandler(client),
		Settings:      handlers.NewSettingsHandler(client),
		Models:        handlers.NewModelsHandler(client),
		Tickets:       handlers.NewTicketsHandler(client, ticketService),
		Notes:         handlers.NewNotesHandler(client),
		Roles:         handlers.NewRolesHandler(client),
		Notifications: handlers.NewNotificationsHandler(client),
		Warranty:      handlers.NewWarrantyHandler(client),
		Assistant:     handlers.NewAssistantHandler(client),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	return app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
