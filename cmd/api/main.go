// Package main is the entrypoint for the ColdPitch API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/coldpitch/coldpitch/internal/cache"
	"github.com/coldpitch/coldpitch/internal/config"
	"github.com/coldpitch/coldpitch/internal/enrich"
	"github.com/coldpitch/coldpitch/internal/gateway"
	"github.com/coldpitch/coldpitch/internal/genai"
	"github.com/coldpitch/coldpitch/internal/handler"
	"github.com/coldpitch/coldpitch/internal/metrics"
	"github.com/coldpitch/coldpitch/internal/middleware"
	"github.com/coldpitch/coldpitch/internal/server"
	"github.com/coldpitch/coldpitch/internal/service"
	"github.com/coldpitch/coldpitch/internal/store"
)

func main() {
	ctx := context.Background()

	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	// Initialize cache. Optional with the file backend: without it the
	// rate limiter is disabled and readiness skips the redis check.
	var cacheClient *cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.New(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error(
				"failed to connect to Redis",
				slog.String("error", sanitizeError(err, cfg.RedisURL)),
				slog.String("redis_url", redactURL(cfg.RedisURL)),
			)
			os.Exit(1)
		}
		defer cacheClient.Close()
		logger.Info("connected to Redis")
	}

	// Initialize the user store
	var userStore store.UserStore
	var storeChecker handler.HealthChecker
	switch cfg.StoreBackend {
	case "redis":
		rs := store.NewRedisStore(cacheClient.Client())
		userStore = rs
		storeChecker = rs
	default:
		fs := store.NewFileStore(cfg.DataFile)
		userStore = fs
		storeChecker = fs
	}
	logger.Info("user store initialized", "backend", cfg.StoreBackend)

	// Initialize external clients
	provider := genai.NewClient(cfg.GeminiAPIKey,
		genai.WithModel(cfg.GeminiModel),
		genai.WithMaxOutputTokens(cfg.GeminiMaxTokens),
	)
	payGateway := gateway.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	enricher := enrich.NewFetcher()

	// Initialize services
	metricsRecorder := metrics.NewInMemory()
	emailService := service.NewEmailService(userStore, provider, enricher, metricsRecorder)
	billingService := service.NewBillingService(userStore, payGateway, cfg.RazorpayKeySecret, cfg.RazorpayCurrency, metricsRecorder)

	// Initialize handlers
	h := handler.New()
	var cacheChecker handler.HealthChecker
	if cacheClient != nil {
		cacheChecker = cacheClient
	}
	healthHandler := handler.NewHealthHandler(storeChecker, cacheChecker)
	emailHandler := handler.NewEmailHandler(emailService, logger)
	billingHandler := handler.NewBillingHandler(billingService, logger)
	userHandler := handler.NewUserHandler(emailService, logger)
	metricsHandler := handler.NewMetricsHandler(metricsRecorder)

	r := setupRouter(h, healthHandler, emailHandler, billingHandler, userHandler, metricsHandler, cacheClient, cfg, logger)

	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
		"store_backend", cfg.StoreBackend,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	level := parseLogLevel(cfg.LogLevel)

	opts := &slog.HandlerOptions{
		Level: level,
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
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

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(
	h *handler.Handler,
	healthHandler *handler.HealthHandler,
	emailHandler *handler.EmailHandler,
	billingHandler *handler.BillingHandler,
	userHandler *handler.UserHandler,
	metricsHandler *handler.MetricsHandler,
	cacheClient *cache.Cache,
	cfg *config.Config,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))

	securityCfg := middleware.DefaultSecurityConfig()
	securityCfg.IsDevelopment = cfg.IsDevelopment()
	r.Use(middleware.Security(securityCfg))
	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.GetCORSAllowedOrigins()
	r.Use(middleware.CORS(corsCfg))

	// Health endpoints
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)
	r.Get("/metrics", metricsHandler.Metrics)

	// Root info endpoint
	r.Get("/", h.Hello)

	rateLimitCfg := middleware.RateLimitConfig{
		Logger:  logger,
		Cache:   cacheClient,
		Enabled: cfg.RateLimitEnabled && cacheClient != nil,
		RPS:     cfg.RateLimitRPS,
		Burst:   cfg.RateLimitBurst,
	}

	r.Route("/api", func(r chi.Router) {
		// Generation burns provider quota, so it gets the IP limiter.
		r.With(middleware.RateLimitIP(rateLimitCfg)).Post("/generate-email", emailHandler.Generate)

		r.Post("/create-order", billingHandler.CreateOrder)
		r.Post("/verify-payment", billingHandler.VerifyPayment)
		r.Get("/user/{email}", userHandler.Get)
	})

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}

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

	return msg
}
