package app

import (
	"context"
	"log/slog"

	"ispbilling/config"
	"ispbilling/internal/controller/message"
	"ispbilling/internal/external/kafka"
	"ispbilling/internal/messaging"
)

// StartWorkers consumes GoCardless entries published by the ingest service.
// It returns immediately; the consumer stops when ctx is cancelled.
func StartWorkers(ctx context.Context, cfg config.KafkaConfig, dispatcher message.Dispatcher) {
	dlq := kafka.NewDLQPublisher(cfg.Brokers, cfg.PaymentsDLQTopic)

	controller := message.NewPaymentMessageController(dispatcher)
	handler := messaging.WithMetrics(
		cfg.PaymentsTopic,
		messaging.WithDLQ(
			messaging.WithRetry(controller.HandleMessage, messaging.DefaultRetryConfig()),
			dlq,
		),
	)

	consumer := kafka.NewConsumer(cfg.Brokers, cfg.PaymentsTopic, cfg.PaymentsConsumerGroup)
	runner := messaging.NewRunner([]messaging.Worker{consumer}, handler)

	go func() {
		defer func() { _ = dlq.Close() }()

		slog.Info("Starting payment webhook consumer",
			"topic", cfg.PaymentsTopic,
			"group", cfg.PaymentsConsumerGroup)
		if err := runner.Start(ctx); err != nil {
			slog.Error("Payment runner failed", slog.Any("error", err))
		}
	}()
}
