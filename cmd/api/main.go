package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"patient-intake-router/config"
	_ "patient-intake-router/docs" // Swagger docs
	"patient-intake-router/internal/bootstrap"
	"patient-intake-router/internal/httpserver"
	tgDelivery "patient-intake-router/internal/router/delivery/telegram"
	"patient-intake-router/pkg/log"
	"patient-intake-router/pkg/telegram"
	"patient-intake-router/pkg/tracing"
)

// @title       Patient Intake Router API
// @description Classifies patient utterances with an LLM and routes them to departments.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Patient Intake Router...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Routing config dir: %s", cfg.Routing.ConfigDir)

	// 3. Tracing
	shutdownTracing, err := tracing.Init(ctx, logger, tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		Environment: cfg.Environment.Name,
		Version:     httpserver.HealthVersion,
		Exporter:    cfg.Tracing.Exporter,
		Endpoint:    cfg.Tracing.Endpoint,
		Insecure:    cfg.Tracing.Insecure,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if err != nil {
		logger.Warnf(ctx, "Tracing not available: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warnf(context.Background(), "Tracing shutdown: %v", err)
		}
	}()

	// 4. Routing pipeline
	components, err := bootstrap.Build(ctx, cfg, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize routing: %v", err)
		os.Exit(1)
	}

	// 5. Chat intake (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, components.Router, components.Routing, bot, cfg.Telegram.SecretToken)

		if cfg.Telegram.WebhookURL != "" {
			if err := bot.SetWebhook(ctx, cfg.Telegram.WebhookURL, cfg.Telegram.SecretToken); err != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Info(ctx, "Telegram intake skipped: TELEGRAM_BOT_TOKEN is not set")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ServiceName: cfg.Tracing.ServiceName,
		Router:      components.Router,
		Routing:     components.Routing,
		Prompts:     components.Prompts,
		RateLimit:   cfg.RateLimit,

		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
