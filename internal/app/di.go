// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/allisson/cuid2/internal/config"
	"github.com/allisson/cuid2/internal/http"
	identifierHTTP "github.com/allisson/cuid2/internal/identifier/http"
	identifierService "github.com/allisson/cuid2/internal/identifier/service"
	identifierUseCase "github.com/allisson/cuid2/internal/identifier/usecase"
	"github.com/allisson/cuid2/internal/metrics"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Services
	generatorRegistry *identifierService.GeneratorRegistry

	// Use Cases
	identifierUseCase identifierUseCase.IdentifierUseCase

	// Handlers
	identifierHandler *identifierHTTP.IdentifierHandler

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                    sync.Mutex
	loggerInit            sync.Once
	metricsProviderInit   sync.Once
	businessMetricsInit   sync.Once
	generatorRegistryInit sync.Once
	identifierUseCaseInit sync.Once
	identifierHandlerInit sync.Once
	httpServerInit        sync.Once
	metricsServerInit     sync.Once
	initErrors            map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// MetricsProvider returns the OpenTelemetry metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		provider, err := c.initMetricsProvider()
		c.store("metricsProvider", err)
		c.metricsProvider = provider
	})
	if err := c.loadErr("metricsProvider"); err != nil {
		return nil, err
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder. A no-op recorder is returned when
// metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.businessMetricsInit.Do(func() {
		businessMetrics, err := c.initBusinessMetrics()
		c.store("businessMetrics", err)
		c.businessMetrics = businessMetrics
	})
	if err := c.loadErr("businessMetrics"); err != nil {
		return nil, err
	}
	return c.businessMetrics, nil
}

// GeneratorRegistry returns the registry handing out one CUID2 generator per length.
func (c *Container) GeneratorRegistry() (*identifierService.GeneratorRegistry, error) {
	c.generatorRegistryInit.Do(func() {
		registry, err := c.initGeneratorRegistry()
		c.store("generatorRegistry", err)
		c.generatorRegistry = registry
	})
	if err := c.loadErr("generatorRegistry"); err != nil {
		return nil, err
	}
	return c.generatorRegistry, nil
}

// IdentifierUseCase returns the identifier use case, decorated with metrics when enabled.
func (c *Container) IdentifierUseCase() (identifierUseCase.IdentifierUseCase, error) {
	c.identifierUseCaseInit.Do(func() {
		useCase, err := c.initIdentifierUseCase()
		c.store("identifierUseCase", err)
		c.identifierUseCase = useCase
	})
	if err := c.loadErr("identifierUseCase"); err != nil {
		return nil, err
	}
	return c.identifierUseCase, nil
}

// IdentifierHandler returns the HTTP handler for identifier endpoints.
func (c *Container) IdentifierHandler() (*identifierHTTP.IdentifierHandler, error) {
	c.identifierHandlerInit.Do(func() {
		handler, err := c.initIdentifierHandler()
		c.store("identifierHandler", err)
		c.identifierHandler = handler
	})
	if err := c.loadErr("identifierHandler"); err != nil {
		return nil, err
	}
	return c.identifierHandler, nil
}

// HTTPServer returns the API server with its router configured. ctx bounds the background
// work started by the router middleware.
func (c *Container) HTTPServer(ctx context.Context) (*http.Server, error) {
	c.httpServerInit.Do(func() {
		server, err := c.initHTTPServer(ctx)
		c.store("httpServer", err)
		c.httpServer = server
	})
	if err := c.loadErr("httpServer"); err != nil {
		return nil, err
	}
	return c.httpServer, nil
}

// MetricsServer returns the Prometheus metrics server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		server, err := c.initMetricsServer()
		c.store("metricsServer", err)
		c.metricsServer = server
	})
	if err := c.loadErr("metricsServer"); err != nil {
		return nil, err
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// Servers are stopped by their owners; the container flushes the metrics provider.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	return errors.Join(shutdownErrors...)
}

func (c *Container) store(name string, err error) {
	if err == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initErrors[name] = err
}

func (c *Container) loadErr(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initErrors[name]
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initMetricsProvider creates the metrics provider when metrics are enabled.
func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

// initBusinessMetrics creates business metrics on top of the metrics provider.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}

// initGeneratorRegistry creates the generator registry from the configured length and fingerprint.
func (c *Container) initGeneratorRegistry() (*identifierService.GeneratorRegistry, error) {
	registry, err := identifierService.NewGeneratorRegistry(c.config.IDLength, c.config.IDFingerprint)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator registry: %w", err)
	}
	return registry, nil
}

// initIdentifierUseCase creates the identifier use case with all its dependencies.
func (c *Container) initIdentifierUseCase() (identifierUseCase.IdentifierUseCase, error) {
	registry, err := c.GeneratorRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to get generator registry for identifier use case: %w", err)
	}

	useCase := identifierUseCase.NewIdentifierUseCase(
		identifierUseCase.Config{
			MaxBatchSize: c.config.IDMaxBatchSize,
			Workers:      c.config.IDBatchWorkers,
		},
		registry,
		c.Logger(),
	)

	if !c.config.MetricsEnabled {
		return useCase, nil
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for identifier use case: %w", err)
	}
	return identifierUseCase.NewIdentifierUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initIdentifierHandler creates the identifier HTTP handler.
func (c *Container) initIdentifierHandler() (*identifierHTTP.IdentifierHandler, error) {
	useCase, err := c.IdentifierUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get identifier use case for identifier handler: %w", err)
	}
	return identifierHTTP.NewIdentifierHandler(useCase, c.Logger()), nil
}

// initHTTPServer creates the HTTP server and configures its router.
func (c *Container) initHTTPServer(ctx context.Context) (*http.Server, error) {
	registry, err := c.GeneratorRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to get generator registry for http server: %w", err)
	}

	handler, err := c.IdentifierHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get identifier handler for http server: %w", err)
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	server := http.NewServer(registry, c.config.ServerHost, c.config.ServerPort, c.Logger())
	server.SetupRouter(ctx, c.config, handler, provider)
	return server, nil
}

// initMetricsServer creates the metrics server when metrics are enabled.
func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}
	if provider == nil {
		return nil, nil
	}

	return http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider), nil
}
