package invoice

import "context"

//go:generate mockgen -source checkout_port.go -destination mock_checkout_port.go -package invoice

// CheckoutGateway opens a hosted payment page for an invoice. The session
// must carry the invoice id in its metadata so the provider's webhook can be
// matched back to the invoice.
type CheckoutGateway interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (CheckoutSession, error)
}

type CheckoutSessionRequest struct {
	InvoiceID     string
	CustomerID    string
	Amount        Money
	SuccessURL    string
	CancelURL     string
	CustomerEmail string
}

type CheckoutSession struct {
	ID  string `json:"checkout_session_id"`
	URL string `json:"checkout_url"`
}
