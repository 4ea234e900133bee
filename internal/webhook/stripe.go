package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v82"

	"ispbilling/internal/domain/invoice"
)

const (
	ResourceCheckoutSession = "checkout.session"
	ResourcePaymentIntent   = "payment_intent"

	stripeLinkPaymentIntent   = "payment_intent"
	stripeLinkCheckoutSession = "checkout_session"
)

type stripeCheckoutSession struct {
	ID            string            `json:"id"`
	PaymentStatus string            `json:"payment_status"`
	PaymentIntent string            `json:"payment_intent"`
	Metadata      map[string]string `json:"metadata"`
}

type stripePaymentIntent struct {
	ID       string            `json:"id"`
	Status   string            `json:"status"`
	Metadata map[string]string `json:"metadata"`
}

type stripeObject struct {
	ID string `json:"id"`
}

// FromStripeEvent converts a verified Stripe event into an Event entry.
// "checkout.session.completed" splits into resource "checkout.session" and
// action "completed".
func FromStripeEvent(evt stripe.Event) (Event, error) {
	typ := string(evt.Type)
	dot := strings.LastIndex(typ, ".")
	if dot <= 0 || dot == len(typ)-1 {
		return Event{}, fmt.Errorf("%w: stripe event type %q", ErrInvalidPayload, typ)
	}

	e := Event{
		ID:           evt.ID,
		CreatedAt:    time.Unix(evt.Created, 0).UTC(),
		ResourceType: typ[:dot],
		Action:       typ[dot+1:],
		Links:        map[string]string{},
	}
	if evt.Data == nil {
		return e, nil
	}

	switch e.ResourceType {
	case ResourceCheckoutSession:
		var s stripeCheckoutSession
		if err := json.Unmarshal(evt.Data.Raw, &s); err != nil {
			return Event{}, fmt.Errorf("%w: checkout session: %w", ErrInvalidPayload, err)
		}
		e.Links[stripeLinkCheckoutSession] = s.ID
		if s.PaymentIntent != "" {
			e.Links[stripeLinkPaymentIntent] = s.PaymentIntent
		}
		e.Metadata = s.Metadata
		e.Details = map[string]any{"payment_status": s.PaymentStatus}
	case ResourcePaymentIntent:
		var pi stripePaymentIntent
		if err := json.Unmarshal(evt.Data.Raw, &pi); err != nil {
			return Event{}, fmt.Errorf("%w: payment intent: %w", ErrInvalidPayload, err)
		}
		e.Links[stripeLinkPaymentIntent] = pi.ID
		e.Metadata = pi.Metadata
		e.Details = map[string]any{"status": pi.Status}
	default:
		var obj stripeObject
		if err := json.Unmarshal(evt.Data.Raw, &obj); err == nil && obj.ID != "" {
			e.Links[strings.ReplaceAll(e.ResourceType, ".", "_")] = obj.ID
		}
	}
	return e, nil
}

// StripePaymentHandler settles invoices from paid checkout sessions and
// succeeded payment intents. Both reference the payment intent id, so a
// session and its intent produce one settlement.
type StripePaymentHandler struct {
	reconciler PaymentReconciler
}

func NewStripePaymentHandler(reconciler PaymentReconciler) *StripePaymentHandler {
	return &StripePaymentHandler{reconciler: reconciler}
}

func (h *StripePaymentHandler) Handle(ctx context.Context, e Event) (Result, error) {
	if e.ResourceType == ResourceCheckoutSession && e.Details["payment_status"] != "paid" {
		slog.InfoContext(ctx, "Checkout session not paid yet", "event_id", e.ID, "payment_status", e.Details["payment_status"])
		return ResultIgnored, nil
	}

	ref := e.Links[stripeLinkPaymentIntent]
	if ref == "" {
		ref = e.Links[stripeLinkCheckoutSession]
	}
	if ref == "" {
		return ResultIgnored, nil
	}

	result, err := h.reconciler.ApplyPaymentEvent(ctx, invoice.PaymentEvent{
		Provider:   invoice.ProviderStripe,
		PaymentID:  ref,
		Action:     e.Type(),
		Status:     invoice.StripeSucceeded,
		OccurredAt: e.CreatedAt,
		InvoiceID:  e.Metadata["invoice_id"],
	})
	return translate(result, err)
}

func NewStripeDispatcher(reconciler PaymentReconciler, sink EventRecorder) *Dispatcher {
	d := NewDispatcher(string(invoice.ProviderStripe), sink)
	h := NewStripePaymentHandler(reconciler)
	d.Register(ResourceCheckoutSession, "completed", h)
	d.Register(ResourceCheckoutSession, "async_payment_succeeded", h)
	d.Register(ResourcePaymentIntent, "succeeded", h)
	return d
}
