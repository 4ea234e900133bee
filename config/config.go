package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"ispbilling/internal/domain/invoice"
)

const (
	WebhookModeSync  = "sync"
	WebhookModeKafka = "kafka"

	EventLogPostgres   = "postgres"
	EventLogOpenSearch = "opensearch"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	PgURL     string `env:"PG_URL,required"`
	PgPoolMax int    `env:"PG_POOL_MAX" envDefault:"10"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	GoCardless GoCardlessConfig `envPrefix:"GOCARDLESS_"`

	Stripe   StripeConfig   `envPrefix:"STRIPE_"`
	DocuSeal DocuSealConfig `envPrefix:"DOCUSEAL_"`

	// "sync" reconciles inside the webhook request, "kafka" consumes events
	// published by the ingest service.
	WebhookMode string `env:"WEBHOOK_MODE" envDefault:"sync"`
	Kafka       KafkaConfig

	EventLogBackend             string   `env:"EVENT_LOG_BACKEND" envDefault:"postgres"`
	OpensearchUrls              []string `env:"OPENSEARCH_URLS" envSeparator:","`
	OpensearchIndexWebhookEvent string   `env:"OPENSEARCH_INDEX_WEBHOOK_EVENTS" envDefault:"webhook-events"`

	OverdueSweepSchedule string `env:"OVERDUE_SWEEP_SCHEDULE" envDefault:"@hourly"`
}

type GoCardlessConfig struct {
	BaseURL       string        `env:"BASE_URL" envDefault:"https://api-sandbox.gocardless.com"`
	AccessToken   string        `env:"ACCESS_TOKEN"`
	WebhookSecret string        `env:"WEBHOOK_SECRET,required"`
	SettledStatus string        `env:"SETTLED_STATUS" envDefault:"paid_out"`
	Timeout       time.Duration `env:"CLIENT_TIMEOUT" envDefault:"20s"`
	RetryAttempts int           `env:"RETRY_ATTEMPTS" envDefault:"3"`
}

// StripeConfig covers the webhook and hosted checkout. Checkout is only
// served when SecretKey is set.
type StripeConfig struct {
	WebhookSecret string        `env:"WEBHOOK_SECRET"`
	SecretKey     string        `env:"SECRET_KEY"`
	APIURL        string        `env:"API_URL"`
	Timeout       time.Duration `env:"CLIENT_TIMEOUT" envDefault:"20s"`
}

// DocuSealConfig covers the completion webhook and contract submissions.
// Without APIToken contracts are stored but never sent out for signing.
type DocuSealConfig struct {
	WebhookSecret string        `env:"WEBHOOK_SECRET"`
	BaseURL       string        `env:"BASE_URL" envDefault:"https://api.docuseal.com"`
	APIToken      string        `env:"API_TOKEN"`
	Timeout       time.Duration `env:"CLIENT_TIMEOUT" envDefault:"20s"`
}

type KafkaConfig struct {
	Brokers               []string `env:"KAFKA_BROKERS" envSeparator:","`
	PaymentsTopic         string   `env:"KAFKA_PAYMENTS_TOPIC" envDefault:"webhooks.gocardless"`
	PaymentsDLQTopic      string   `env:"KAFKA_PAYMENTS_DLQ_TOPIC" envDefault:"webhooks.gocardless.dlq"`
	PaymentsConsumerGroup string   `env:"KAFKA_PAYMENTS_CONSUMER_GROUP" envDefault:"isp-billing-payments"`
}

// IngestConfig is the subset used by the ingest gateway: it verifies
// GoCardless signatures and publishes to Kafka, nothing else.
type IngestConfig struct {
	Port                    int    `env:"PORT" envDefault:"3001"`
	LogLevel                string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat               string `env:"LOG_FORMAT" envDefault:"json"`
	GoCardlessWebhookSecret string `env:"GOCARDLESS_WEBHOOK_SECRET,required"`
	Kafka                   KafkaConfig
}

func New() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}

	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func NewIngestConfig() (IngestConfig, error) {
	if err := loadDotEnv(); err != nil {
		return IngestConfig{}, err
	}

	c, err := env.ParseAs[IngestConfig]()
	if err != nil {
		return IngestConfig{}, err
	}
	if len(c.Kafka.Brokers) == 0 {
		return IngestConfig{}, errors.New("KAFKA_BROKERS is required for the ingest service")
	}
	return c, nil
}

func (c Config) Validate() error {
	if !invoice.IsGoCardlessSettleStatus(c.GoCardless.SettledStatus) {
		return fmt.Errorf("unsupported GOCARDLESS_SETTLED_STATUS %q: want one of %v",
			c.GoCardless.SettledStatus, invoice.GoCardlessSettleStatuses)
	}

	switch c.WebhookMode {
	case WebhookModeSync:
	case WebhookModeKafka:
		if len(c.Kafka.Brokers) == 0 {
			return errors.New("KAFKA_BROKERS is required when WEBHOOK_MODE=kafka")
		}
	default:
		return fmt.Errorf("unsupported WEBHOOK_MODE %q", c.WebhookMode)
	}

	switch c.EventLogBackend {
	case EventLogPostgres:
	case EventLogOpenSearch:
		if len(c.OpensearchUrls) == 0 {
			return errors.New("OPENSEARCH_URLS is required when EVENT_LOG_BACKEND=opensearch")
		}
	default:
		return fmt.Errorf("unsupported EVENT_LOG_BACKEND %q", c.EventLogBackend)
	}
	return nil
}

// A missing .env is fine; a malformed one is not.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}
