// Package stripe opens Stripe Checkout sessions for invoices. The session
// and its payment intent both carry metadata.invoice_id, which is how the
// payment_intent webhooks find their invoice again.
package stripe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"

	"ispbilling/internal/domain/invoice"
)

const metadataInvoiceID = "invoice_id"

var _ invoice.CheckoutGateway = (*CheckoutClient)(nil)

type Config struct {
	SecretKey string
	// APIURL overrides https://api.stripe.com, e.g. for stripe-mock.
	APIURL  string
	Timeout time.Duration
}

type CheckoutClient struct {
	sessions session.Client
}

func NewCheckoutClient(cfg Config) *CheckoutClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	backendCfg := &stripe.BackendConfig{
		HTTPClient:        &http.Client{Timeout: timeout},
		MaxNetworkRetries: stripe.Int64(2),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelError},
	}
	if cfg.APIURL != "" {
		backendCfg.URL = stripe.String(strings.TrimRight(cfg.APIURL, "/"))
	}

	return &CheckoutClient{
		sessions: session.Client{
			B:   stripe.GetBackendWithConfig(stripe.APIBackend, backendCfg),
			Key: cfg.SecretKey,
		},
	}
}

func (c *CheckoutClient) CreateCheckoutSession(ctx context.Context, req invoice.CheckoutSessionRequest) (invoice.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
		ClientReferenceID: stripe.String(req.InvoiceID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			Quantity: stripe.Int64(1),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(strings.ToLower(req.Amount.Currency)),
				UnitAmount: stripe.Int64(req.Amount.Minor),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String("Invoice " + req.InvoiceID),
				},
			},
		}},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{metadataInvoiceID: req.InvoiceID},
		},
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	params.AddMetadata(metadataInvoiceID, req.InvoiceID)
	params.Context = ctx

	s, err := c.sessions.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			return invoice.CheckoutSession{}, fmt.Errorf("create checkout session: status %d %s: %s",
				stripeErr.HTTPStatusCode, stripeErr.Type, stripeErr.Msg)
		}
		return invoice.CheckoutSession{}, fmt.Errorf("create checkout session: %w", err)
	}

	return invoice.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}
