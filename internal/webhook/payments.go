package webhook

import (
	"context"
	"errors"
	"log/slog"

	"ispbilling/internal/domain/invoice"
	"ispbilling/internal/messaging"
)

//go:generate mockgen -source=payments.go -destination=mock_payments.go -package=webhook

type PaymentReconciler interface {
	ApplyPaymentEvent(ctx context.Context, event invoice.PaymentEvent) (invoice.Result, error)
}

// PaymentsHandler feeds GoCardless "payments" entries to the reconciler.
type PaymentsHandler struct {
	reconciler PaymentReconciler
}

func NewPaymentsHandler(reconciler PaymentReconciler) *PaymentsHandler {
	return &PaymentsHandler{reconciler: reconciler}
}

func (h *PaymentsHandler) Handle(ctx context.Context, e Event) (Result, error) {
	paymentID := e.ResourceID()
	if paymentID == "" {
		slog.WarnContext(ctx, "Payment event without links.payment", "event_id", e.ID, "action", e.Action)
		return ResultIgnored, nil
	}

	result, err := h.reconciler.ApplyPaymentEvent(ctx, invoice.PaymentEvent{
		Provider:   invoice.ProviderGoCardless,
		PaymentID:  paymentID,
		Action:     e.Action,
		OccurredAt: e.CreatedAt,
		InvoiceID:  e.Metadata["invoice_id"],
	})
	return translate(result, err)
}

func translate(result invoice.Result, err error) (Result, error) {
	switch {
	case errors.Is(err, invoice.ErrInvoiceNotFound):
		return ResultNotFound, nil
	case errors.Is(err, invoice.ErrPaymentLookupRejected):
		return "", messaging.Permanent(err)
	case err != nil:
		return "", err
	}
	return Result(result), nil
}

// AcknowledgeHandler accepts resources the service does not act on, such as
// mandates and customers.
type AcknowledgeHandler struct{}

func (AcknowledgeHandler) Handle(ctx context.Context, e Event) (Result, error) {
	slog.DebugContext(ctx, "Webhook event acknowledged",
		"event_id", e.ID, "resource_type", e.ResourceType, "action", e.Action, "resource_id", e.ResourceID())
	return ResultAcknowledged, nil
}

// NewGoCardlessDispatcher wires the GoCardless routes: payment actions go
// to the reconciler, mandates and customers are acknowledged.
func NewGoCardlessDispatcher(reconciler PaymentReconciler, sink EventRecorder) *Dispatcher {
	d := NewDispatcher(string(invoice.ProviderGoCardless), sink)
	d.RegisterResource(ResourcePayments, NewPaymentsHandler(reconciler))
	d.RegisterResource(ResourceMandates, AcknowledgeHandler{})
	d.RegisterResource(ResourceCustomers, AcknowledgeHandler{})
	return d
}
