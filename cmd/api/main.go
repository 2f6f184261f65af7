package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/NexaiGuy/nexai-website/cmd/mainconfig"
	"github.com/NexaiGuy/nexai-website/internal/api/router"
	"github.com/NexaiGuy/nexai-website/internal/catalog"
	appconfig "github.com/NexaiGuy/nexai-website/internal/config"
	"github.com/NexaiGuy/nexai-website/internal/content"
	"github.com/NexaiGuy/nexai-website/internal/dispatch"
	"github.com/NexaiGuy/nexai-website/internal/notify"
	"github.com/NexaiGuy/nexai-website/internal/observability/metrics"
	"github.com/NexaiGuy/nexai-website/internal/wizard"
	"github.com/NexaiGuy/nexai-website/pkg/logging"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	// Load configuration
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting nexai-website API server",
		"env", cfg.Env,
		"port", cfg.Port,
		"email_provider", cfg.EmailProvider,
	)

	// Metrics
	registry := prometheus.NewRegistry()
	bookingMetrics := metrics.NewBookingMetrics(registry)

	// Email sender selection
	sender := buildEmailSender(cfg, logger)

	// Dispatcher: in-process by default, remote when DISPATCH_URL is set
	dispatchService := dispatch.NewService(sender, cfg.CompanyEmail, bookingMetrics, logger)
	var dispatcher wizard.Dispatcher = dispatchService
	if cfg.DispatchURL != "" {
		logger.Info("using remote email dispatcher", "url", cfg.DispatchURL)
		dispatcher = dispatch.NewClient(cfg.DispatchURL, nil, logger)
	}

	// Catalog, sessions, and handlers
	cat := catalog.Default()
	store := wizard.NewStore(cat, cfg.SessionTTL)

	routerCfg := &router.Config{
		Logger:             logger,
		WizardHandler:      wizard.NewHandler(store, dispatcher, cat, bookingMetrics, logger),
		DispatchHandler:    dispatch.NewHandler(dispatchService, logger),
		ContentHandler:     content.NewHandler(cat),
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitPerSec:    cfg.RateLimitPerSec,
		RateLimitBurst:     cfg.RateLimitBurst,
	}
	r := router.New(routerCfg)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}

// buildEmailSender picks the sender implementation from configuration.
// Missing credentials degrade to the stub sender so local development works
// without any provider account.
func buildEmailSender(cfg *appconfig.Config, logger *logging.Logger) notify.EmailSender {
	switch cfg.EmailProvider {
	case "ses":
		awsCfg, err := mainconfig.LoadAWSConfig(context.Background(), cfg)
		if err != nil {
			logger.Error("failed to load AWS config, falling back to stub sender", "error", err)
			break
		}
		if sender := notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
			FromEmail: cfg.SendGridVerifiedSender,
			FromName:  cfg.SendGridFromName,
		}, logger); sender != nil {
			return sender
		}
	case "stub":
	default:
		if sender := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridVerifiedSender,
			FromName:  cfg.SendGridFromName,
		}, logger); sender != nil {
			return sender
		}
		logger.Warn("SENDGRID_API_KEY not set, emails will not be sent")
	}
	return notify.NewStubEmailSender(logger)
}
