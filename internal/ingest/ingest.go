// Package ingest is the HTTP to Kafka gateway for GoCardless webhooks. It
// verifies signatures and queues entries; reconciliation happens in the
// billing service workers.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"ispbilling/config"
	"ispbilling/internal/app"
	"ispbilling/internal/controller/rest"
	"ispbilling/internal/controller/rest/handlers"
	"ispbilling/internal/domain/invoice"
	"ispbilling/internal/external/kafka"
	"ispbilling/internal/webhook"
	"ispbilling/pkg/health"
	"ispbilling/pkg/logger"
)

func Run(cfg config.IngestConfig) error {
	logger.Setup(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	slog.Info("Initializing Kafka publisher",
		"brokers", cfg.Kafka.Brokers,
		"topic", cfg.Kafka.PaymentsTopic)
	publisher := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.PaymentsTopic)
	defer func() { _ = publisher.Close() }()

	processor := webhook.NewAsyncProcessor(string(invoice.ProviderGoCardless), publisher)
	gocardless := handlers.NewGoCardlessHandler(cfg.GoCardlessWebhookSecret, processor)

	registry := health.NewRegistry(health.NewKafkaChecker(cfg.Kafka.Brokers, cfg.Kafka.PaymentsTopic))

	engine := app.NewGinEngine()
	rest.NewWebhookRouter(gocardless, registry).SetUp(engine)

	if err := app.Serve(ctx, engine, cfg.Port); err != nil {
		return fmt.Errorf("ingest - Run: %w", err)
	}
	slog.Info("Ingest service stopped")
	return nil
}
