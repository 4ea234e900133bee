package invoice

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
)

type CheckoutRequest struct {
	SuccessURL    string
	CancelURL     string
	CustomerEmail string
}

func (r CheckoutRequest) Validate() error {
	if !isAbsoluteHTTPURL(r.SuccessURL) {
		return fmt.Errorf("%w: success_url must be an absolute http(s) url", ErrInvalidCheckout)
	}
	if !isAbsoluteHTTPURL(r.CancelURL) {
		return fmt.Errorf("%w: cancel_url must be an absolute http(s) url", ErrInvalidCheckout)
	}
	return nil
}

func isAbsoluteHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Host != "" && (u.Scheme == "https" || u.Scheme == "http")
}

// CheckoutService charges an invoice's outstanding balance through a hosted
// checkout page.
type CheckoutService struct {
	repo    InvoiceRepo
	gateway CheckoutGateway
}

func NewCheckoutService(repo InvoiceRepo, gateway CheckoutGateway) *CheckoutService {
	return &CheckoutService{repo: repo, gateway: gateway}
}

func (s *CheckoutService) StartCheckout(ctx context.Context, invoiceID string, req CheckoutRequest) (CheckoutSession, error) {
	if err := req.Validate(); err != nil {
		return CheckoutSession{}, err
	}

	query, _ := NewInvoicesQueryBuilder().WithIDs(invoiceID).Build()
	invoices, err := s.repo.GetInvoices(ctx, query)
	if err != nil {
		return CheckoutSession{}, fmt.Errorf("get invoice: %w", err)
	}
	if len(invoices) == 0 {
		return CheckoutSession{}, ErrInvoiceNotFound
	}
	inv := invoices[0]

	if !inv.Payable() {
		return CheckoutSession{}, fmt.Errorf("%w: invoice %s is %s with %s outstanding",
			ErrInvoiceNotPayable, inv.ID, inv.Status, FormatMinor(inv.Outstanding))
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, CheckoutSessionRequest{
		InvoiceID:     inv.ID,
		CustomerID:    inv.CustomerID,
		Amount:        Money{Minor: inv.Outstanding, Currency: inv.Currency},
		SuccessURL:    req.SuccessURL,
		CancelURL:     req.CancelURL,
		CustomerEmail: req.CustomerEmail,
	})
	if err != nil {
		return CheckoutSession{}, fmt.Errorf("%w: %w", ErrCheckoutFailed, err)
	}

	slog.InfoContext(ctx, "Checkout session created",
		"invoice_id", inv.ID, "checkout_session_id", session.ID, "amount", inv.Outstanding)
	return session, nil
}
