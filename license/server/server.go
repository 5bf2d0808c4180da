package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/LerianStudio/lib-license/license/log"
	"github.com/gofiber/fiber/v2"
)

// NewApp builds the fiber application with all catalog routes and middleware
// registered. The logger may be nil; requests are then not access-logged.
func NewApp(logger log.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "lib-license",
		DisableStartupMessage: true,
	})

	app.Use(WithHeaderID())
	app.Use(WithCORS())
	app.Use(WithHTTPLogging(logger))

	app.Get("/health", handleHealth)

	v1 := app.Group("/v1")
	v1.Get("/licenses", handleListLicenses)
	v1.Get("/licenses/:id", handleGetLicense)
	v1.Get("/licenses/:id/text", handleGetLicenseText)
	v1.Get("/licenses/:id/header", handleGetLicenseHeader)
	v1.Get("/exceptions", handleListExceptions)
	v1.Get("/exceptions/:id", handleGetException)
	v1.Get("/exceptions/:id/text", handleGetExceptionText)

	return app
}

// Manager runs the HTTP server and coordinates its graceful shutdown.
type Manager struct {
	app          *fiber.App
	logger       log.Logger
	address      string
	shutdownChan <-chan struct{}
	shutdownOnce sync.Once
	startupErrs  chan error
}

// NewManager creates a Manager for the given app. If logger is nil, a no-op
// logger is used so the whole lifecycle is nil-safe.
func NewManager(app *fiber.App, address string, logger log.Logger) *Manager {
	if logger == nil {
		logger = log.NewNop()
	}

	return &Manager{
		app:         app,
		logger:      logger,
		address:     address,
		startupErrs: make(chan error, 1),
	}
}

// WithShutdownChannel configures a custom shutdown channel.
// This allows tests to trigger shutdown deterministically instead of relying
// on OS signals.
func (m *Manager) WithShutdownChannel(ch <-chan struct{}) *Manager {
	m.shutdownChan = ch

	return m
}

// Run starts the server and blocks until a termination signal arrives, the
// shutdown channel closes, or startup fails. The server is then shut down
// gracefully and the logger flushed.
func (m *Manager) Run(ctx context.Context) error {
	go func() {
		m.logger.Log(ctx, log.LevelInfo, "starting HTTP server", log.String("address", m.address))

		if err := m.app.Listen(m.address); err != nil {
			select {
			case m.startupErrs <- fmt.Errorf("http server: %w", err):
			default:
			}
		}
	}()

	var runErr error

	if m.shutdownChan != nil {
		select {
		case <-m.shutdownChan:
		case <-ctx.Done():
		case runErr = <-m.startupErrs:
		}
	} else {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		select {
		case <-sig:
			signal.Stop(sig)
		case <-ctx.Done():
		case runErr = <-m.startupErrs:
		}
	}

	if runErr != nil {
		m.logger.Log(ctx, log.LevelError, "server startup failed", log.Err(runErr))
	}

	m.shutdown(ctx)

	return runErr
}

// shutdown is idempotent: only the first invocation executes the sequence.
func (m *Manager) shutdown(ctx context.Context) {
	m.shutdownOnce.Do(func() {
		m.logger.Log(ctx, log.LevelInfo, "gracefully shutting down HTTP server")

		if err := m.app.Shutdown(); err != nil {
			m.logger.Log(ctx, log.LevelError, "error during HTTP server shutdown", log.Err(err))
		}

		if err := m.logger.Sync(ctx); err != nil {
			m.logger.Log(ctx, log.LevelError, "failed to sync logger", log.Err(err))
		}

		m.logger.Log(ctx, log.LevelInfo, "graceful shutdown completed")
	})
}
