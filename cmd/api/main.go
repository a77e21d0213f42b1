// Package main is the entrypoint for the usage challenge API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/lmittmann/tint"
	"go.opentelemetry.io/otel/trace"

	"github.com/usagechallenge/challenge/internal/challenge"
	"github.com/usagechallenge/challenge/internal/config"
	"github.com/usagechallenge/challenge/internal/handler"
	"github.com/usagechallenge/challenge/internal/metrics"
	"github.com/usagechallenge/challenge/internal/middleware"
	"github.com/usagechallenge/challenge/internal/ratelimit"
	"github.com/usagechallenge/challenge/internal/server"
	"github.com/usagechallenge/challenge/internal/telemetry"
)

const serviceName = "usage-challenge"

func main() {
	// Initialize context
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)

	// Initialize tracing
	traceCfg := telemetry.TraceConfig{
		ServiceName:    serviceName,
		ServiceVersion: handler.Version,
		Exporter:       cfg.TraceExporter,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		OTLPInsecure:   cfg.OTLPInsecure,
	}
	shutdownTracing, err := telemetry.SetupTracing(ctx, traceCfg, logger)
	if err != nil {
		logger.Error("failed to set up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize rate limiting
	var (
		limiter     ratelimit.Limiter
		redisHealth handler.HealthChecker
		redisClose  func() error
	)
	if cfg.RateLimitEnabled {
		limiter, redisHealth, redisClose, err = initLimiter(ctx, cfg, logger)
		if err != nil {
			logger.Error(
				"failed to connect to Redis",
				slog.String("error", sanitizeError(err, cfg.RedisURL)),
				slog.String("redis_url", redactURL(cfg.RedisURL)),
			)
			os.Exit(1)
		}
	}

	// Initialize metrics and the page responder
	metricsRecorder := metrics.NewPrometheus()
	responder := challenge.New(logger, metricsRecorder)

	// Setup router
	r := setupRouter(routerDeps{
		handler:  handler.New(),
		health:   handler.NewHealthHandler(redisHealth),
		usage:    handler.NewUsageHandler(responder),
		metrics:  handler.NewMetricsHandler(metricsRecorder),
		recorder: metricsRecorder,
		tracer:   telemetry.Tracer(traceCfg, serviceName),
		limiter:  limiter,
		cfg:      cfg,
		logger:   logger,
	})

	// Create and run server
	srv := server.New(r, server.Options{
		Addr:            cfg.Addr(),
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, logger)

	srv.OnShutdown("tracing", shutdownTracing)
	if redisClose != nil {
		srv.OnShutdown("redis", func(context.Context) error { return redisClose() })
	}

	logger.Info("starting server",
		"addr", cfg.Addr(),
		"env", cfg.AppEnv,
		"rate_limit", cfg.RateLimitEnabled,
		"trace_exporter", cfg.TraceExporter,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLimiter builds the rate limit store: Redis when REDIS_URL is set, process
// memory otherwise. The health checker and closer are nil for the latter.
func initLimiter(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ratelimit.Limiter, handler.HealthChecker, func() error, error) {
	if cfg.RedisURL == "" {
		logger.Info("rate limiting in process", "rps", cfg.RateLimitRPS, "burst", cfg.RateLimitBurst)
		return ratelimit.NewLocalStore(cfg.RateLimitRPS, cfg.RateLimitBurst), nil, nil, nil
	}

	client, err := ratelimit.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, nil, err
	}
	store, err := ratelimit.NewRedisStore(client, cfg.RateLimitRPS, cfg.RateLimitBurst)
	if err != nil {
		_ = client.Close()
		return nil, nil, nil, err
	}
	logger.Info("connected to Redis", "rps", cfg.RateLimitRPS, "burst", cfg.RateLimitBurst)
	return store, store, client.Close, nil
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	level := parseLogLevel(cfg.LogLevel)

	if strings.EqualFold(cfg.LogFormat, "json") {
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		h = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
			NoColor:    !cfg.IsDevelopment(),
		})
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type routerDeps struct {
	handler  *handler.Handler
	health   *handler.HealthHandler
	usage    *handler.UsageHandler
	metrics  *handler.MetricsHandler
	recorder metrics.Recorder
	tracer   trace.Tracer
	limiter  ratelimit.Limiter
	cfg      *config.Config
	logger   *slog.Logger
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(deps routerDeps) *chi.Mux {
	r := chi.NewRouter()

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = deps.cfg.GetCORSAllowedOrigins()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.logger))
	r.Use(middleware.Recoverer(deps.logger))
	r.Use(middleware.Metrics(deps.recorder))
	r.Use(middleware.Tracing(deps.tracer))
	r.Use(middleware.Security(middleware.SecurityConfig{IsDevelopment: deps.cfg.IsDevelopment()}))
	r.Use(middleware.CORS(corsCfg))

	// Health endpoints
	r.Get("/healthz", deps.health.Healthz)
	r.Get("/readyz", deps.health.Readyz)
	r.Get("/metrics", deps.metrics.Metrics)

	// Root info endpoint
	r.Get("/", deps.handler.Info)

	// Challenge pages with IP-based rate limiting
	rateLimitCfg := middleware.RateLimitConfig{
		Logger:  deps.logger,
		Limiter: deps.limiter,
		Enabled: deps.cfg.RateLimitEnabled,
	}
	r.With(middleware.RateLimitIP(rateLimitCfg)).Get("/usage/{pageNo}", deps.usage.Usage)

	// 404 and 405 handlers
	r.NotFound(deps.handler.NotFound)
	r.MethodNotAllowed(deps.handler.MethodNotAllowed)

	return r
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
