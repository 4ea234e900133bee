// Package gocardless is a minimal client for the GoCardless Pro payments API.
package gocardless

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ispbilling/internal/domain/invoice"
)

const (
	DefaultBaseURL = "https://api.gocardless.com"
	apiVersion     = "2015-07-06"
	maxErrorBody   = 4 << 10
)

type Config struct {
	BaseURL        string
	AccessToken    string
	Timeout        time.Duration
	RetryAttempts  int
	RetryBaseDelay time.Duration
	RetryMaxDelay  time.Duration
}

type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	retryCfg    RetryConfig
}

func NewClient(cfg Config) *Client {
	retry := DefaultRetryConfig()
	if cfg.RetryAttempts > 0 {
		retry.MaxAttempts = cfg.RetryAttempts
	}
	if cfg.RetryBaseDelay > 0 {
		retry.BaseDelay = cfg.RetryBaseDelay
	}
	if cfg.RetryMaxDelay > 0 {
		retry.MaxDelay = cfg.RetryMaxDelay
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: cfg.AccessToken,
		httpClient:  &http.Client{Timeout: timeout},
		retryCfg:    retry,
	}
}

type Payment struct {
	ID         string            `json:"id"`
	Status     string            `json:"status"`
	Amount     int64             `json:"amount"`
	Currency   string            `json:"currency"`
	ChargeDate string            `json:"charge_date"`
	CreatedAt  time.Time         `json:"created_at"`
	Links      map[string]string `json:"links"`
	Metadata   map[string]string `json:"metadata"`
}

type paymentResponse struct {
	Payments Payment `json:"payments"`
}

// GetPayment fetches GET /payments/{id}.
func (c *Client) GetPayment(ctx context.Context, paymentID string) (Payment, error) {
	var out paymentResponse
	err := doWithRetry(ctx, c.retryCfg, func() error {
		return c.get(ctx, "/payments/"+url.PathEscape(paymentID), &out)
	})
	if err != nil {
		return Payment{}, fmt.Errorf("get payment %s: %w", paymentID, err)
	}
	return out.Payments, nil
}

// GetPaymentDetail adapts GetPayment to the reconciler's lookup port.
func (c *Client) GetPaymentDetail(ctx context.Context, paymentID string) (invoice.PaymentDetail, error) {
	p, err := c.GetPayment(ctx, paymentID)
	switch {
	case errors.Is(err, ErrPaymentNotFound):
		return invoice.PaymentDetail{}, fmt.Errorf("%w: %w", invoice.ErrPaymentNotFound, err)
	case errors.Is(err, ErrProviderRejected):
		return invoice.PaymentDetail{}, fmt.Errorf("%w: %w", invoice.ErrPaymentLookupRejected, err)
	case err != nil:
		return invoice.PaymentDetail{}, err
	}

	return invoice.PaymentDetail{
		PaymentID:  p.ID,
		Status:     p.Status,
		InvoiceID:  p.Metadata["invoice_id"],
		MandateID:  p.Links["mandate"],
		CreditorID: p.Links["creditor"],
	}, nil
}

func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("GoCardless-Version", apiVersion)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return ErrPaymentNotFound
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d: %s", ErrProviderUnavailable, resp.StatusCode, readBody(resp))
	default:
		return fmt.Errorf("%w: status %d: %s", ErrProviderRejected, resp.StatusCode, readBody(resp))
	}
}

func readBody(resp *http.Response) string {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return string(b)
}
