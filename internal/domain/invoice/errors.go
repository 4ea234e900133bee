package invoice

import "errors"

var (
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrSettlementExists is returned when a settlement for the same
	// (invoice_id, external_reference) is already stored.
	ErrSettlementExists = errors.New("settlement already exists")

	// ErrPaymentNotFound is returned by a PaymentDetailProvider when the
	// provider does not know the payment.
	ErrPaymentNotFound = errors.New("payment not found at provider")

	// ErrPaymentLookupRejected marks a provider lookup that will not succeed
	// on retry, e.g. bad credentials.
	ErrPaymentLookupRejected = errors.New("payment lookup rejected by provider")

	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidQuery  = errors.New("invalid invoices query")

	ErrInvalidCheckout   = errors.New("invalid checkout request")
	ErrInvoiceNotPayable = errors.New("invoice is not payable")
	// ErrCheckoutFailed wraps any error from the checkout gateway.
	ErrCheckoutFailed = errors.New("checkout session could not be created")
)
