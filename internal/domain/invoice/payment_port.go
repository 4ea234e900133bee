package invoice

import "context"

//go:generate mockgen -source payment_port.go -destination mock_payment_port.go -package invoice

// PaymentDetailProvider fetches the current state of a payment from its provider.
// It returns ErrPaymentNotFound when the provider does not know the id.
type PaymentDetailProvider interface {
	GetPaymentDetail(ctx context.Context, paymentID string) (PaymentDetail, error)
}

type PaymentDetail struct {
	PaymentID string
	Status    string
	// InvoiceID is read from the payment metadata; empty when absent.
	InvoiceID  string
	MandateID  string
	CreditorID string
}
