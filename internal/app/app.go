package app

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ispbilling/config"
	"ispbilling/internal/controller/rest"
	"ispbilling/internal/controller/rest/handlers"
	"ispbilling/internal/domain/contract"
	"ispbilling/internal/domain/invoice"
	"ispbilling/internal/domain/webhookevent"
	"ispbilling/internal/external/docuseal"
	"ispbilling/internal/external/gocardless"
	"ispbilling/internal/external/opensearch"
	"ispbilling/internal/external/stripe"
	contract_repo "ispbilling/internal/repo/contract"
	invoice_repo "ispbilling/internal/repo/invoice"
	webhookevent_repo "ispbilling/internal/repo/webhookevent"
	"ispbilling/internal/webhook"
	"ispbilling/pkg/health"
	"ispbilling/pkg/logger"
	"ispbilling/pkg/postgres"
)

//go:embed migrations/*.sql
var MIGRATION_FS embed.FS

const shutdownTimeout = 10 * time.Second

// Run bootstraps the billing service and blocks until SIGINT/SIGTERM.
func Run(cfg config.Config) error {
	logger.Setup(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pool, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		return fmt.Errorf("app - Run - postgres.New: %w", err)
	}
	defer pool.Close()

	if err := ApplyMigrations(cfg.PgURL, MIGRATION_FS); err != nil {
		return fmt.Errorf("app - Run - ApplyMigrations: %w", err)
	}

	sink, err := newEventSink(ctx, cfg, pool)
	if err != nil {
		return fmt.Errorf("app - Run - event sink: %w", err)
	}

	gcClient := gocardless.NewClient(gocardless.Config{
		BaseURL:       cfg.GoCardless.BaseURL,
		AccessToken:   cfg.GoCardless.AccessToken,
		Timeout:       cfg.GoCardless.Timeout,
		RetryAttempts: cfg.GoCardless.RetryAttempts,
	})
	defer func() { _ = gcClient.Close() }()

	invoiceRepo := invoice_repo.NewPgInvoiceRepo(pool)
	invoiceService := invoice.NewInvoiceService(invoiceRepo)
	reconciler := invoice.NewReconciler(invoiceRepo, gcClient,
		invoice.WithPolicy(invoice.ProviderGoCardless, invoice.GoCardlessPolicy(cfg.GoCardless.SettledStatus)),
	)
	contractService := contract.NewContractService(contract_repo.NewPgContractRepo(pool), newSubmissionSender(cfg.DocuSeal))

	gcDispatcher := webhook.NewGoCardlessDispatcher(reconciler, sink)
	stripeDispatcher := webhook.NewStripeDispatcher(reconciler, sink)

	healthRegistry := health.NewRegistry(health.NewPostgresChecker(pool.Pool))

	router := &rest.Router{
		Stripe:         handlers.NewStripeHandler(cfg.Stripe.WebhookSecret, stripeDispatcher),
		DocuSeal:       handlers.NewDocuSealHandler(cfg.DocuSeal.WebhookSecret, contractService, sink),
		Invoice:        handlers.NewInvoiceHandler(invoiceService),
		Contract:       handlers.NewContractHandler(contractService),
		WebhookEvents:  handlers.NewWebhookEventHandler(sink),
		HealthRegistry: healthRegistry,
	}

	if cfg.Stripe.SecretKey != "" {
		checkoutClient := stripe.NewCheckoutClient(stripe.Config{
			SecretKey: cfg.Stripe.SecretKey,
			APIURL:    cfg.Stripe.APIURL,
			Timeout:   cfg.Stripe.Timeout,
		})
		router.Checkout = handlers.NewCheckoutHandler(invoice.NewCheckoutService(invoiceRepo, checkoutClient))
	} else {
		slog.Warn("STRIPE_SECRET_KEY not set, invoice checkout disabled")
	}

	switch cfg.WebhookMode {
	case config.WebhookModeKafka:
		slog.Info("Webhook mode: kafka, GoCardless deliveries arrive through the ingest service")
		healthRegistry.Add(health.NewKafkaChecker(cfg.Kafka.Brokers, cfg.Kafka.PaymentsTopic))
		StartWorkers(ctx, cfg.Kafka, gcDispatcher)
	default:
		router.GoCardless = handlers.NewGoCardlessHandler(cfg.GoCardless.WebhookSecret, webhook.NewSyncProcessor(gcDispatcher))
	}

	scheduler, err := NewScheduler(cfg.OverdueSweepSchedule, invoiceService)
	if err != nil {
		return fmt.Errorf("app - Run - scheduler: %w", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	engine := NewGinEngine()
	router.SetUp(engine)

	return Serve(ctx, engine, cfg.Port)
}

func newEventSink(ctx context.Context, cfg config.Config, pool *postgres.Postgres) (webhookevent.EventSink, error) {
	if cfg.EventLogBackend == config.EventLogOpenSearch {
		return opensearch.NewWebhookEventSink(ctx, cfg.OpensearchUrls, cfg.OpensearchIndexWebhookEvent)
	}
	return webhookevent_repo.NewPgEventSink(pool), nil
}

// newSubmissionSender returns nil without an API token; contracts are then
// stored but not sent for signing.
func newSubmissionSender(cfg config.DocuSealConfig) contract.SubmissionSender {
	if cfg.APIToken == "" {
		slog.Warn("DOCUSEAL_API_TOKEN not set, contracts will not be sent for signing")
		return nil
	}
	return docuseal.NewClient(docuseal.Config{BaseURL: cfg.BaseURL, APIToken: cfg.APIToken, Timeout: cfg.Timeout})
}

// Serve runs the HTTP server until ctx is done, then drains in-flight requests.
func Serve(ctx context.Context, handler http.Handler, port int) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server started", "port", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
