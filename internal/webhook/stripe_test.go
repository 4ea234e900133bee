package webhook

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/mock/gomock"

	"ispbilling/internal/domain/invoice"
)

func stripeEvent(typ, raw string) stripe.Event {
	return stripe.Event{
		ID:      "evt_1",
		Type:    stripe.EventType(typ),
		Created: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC).Unix(),
		Data:    &stripe.EventData{Raw: json.RawMessage(raw)},
	}
}

func TestFromStripeEvent(t *testing.T) {
	t.Run("checkout session", func(t *testing.T) {
		e, err := FromStripeEvent(stripeEvent("checkout.session.completed",
			`{"id":"cs_1","payment_status":"paid","payment_intent":"pi_1","metadata":{"invoice_id":"inv-1"}}`))

		require.NoError(t, err)
		assert.Equal(t, "evt_1", e.ID)
		assert.Equal(t, ResourceCheckoutSession, e.ResourceType)
		assert.Equal(t, "completed", e.Action)
		assert.Equal(t, "pi_1", e.Links["payment_intent"])
		assert.Equal(t, "cs_1", e.Links["checkout_session"])
		assert.Equal(t, "inv-1", e.Metadata["invoice_id"])
		assert.Equal(t, "paid", e.Details["payment_status"])
		assert.Equal(t, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), e.CreatedAt)
	})

	t.Run("payment intent", func(t *testing.T) {
		e, err := FromStripeEvent(stripeEvent("payment_intent.succeeded", `{"id":"pi_1","status":"succeeded"}`))

		require.NoError(t, err)
		assert.Equal(t, ResourcePaymentIntent, e.ResourceType)
		assert.Equal(t, "succeeded", e.Action)
		assert.Equal(t, "pi_1", e.ResourceID())
	})

	t.Run("other resource keeps object id", func(t *testing.T) {
		e, err := FromStripeEvent(stripeEvent("customer.created", `{"id":"cus_1"}`))

		require.NoError(t, err)
		assert.Equal(t, "cus_1", e.Links["customer"])
	})

	t.Run("type without action", func(t *testing.T) {
		_, err := FromStripeEvent(stripeEvent("ping", `{}`))
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("malformed object", func(t *testing.T) {
		_, err := FromStripeEvent(stripeEvent("payment_intent.succeeded", `[]`))
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})
}

func TestStripeDispatcher(t *testing.T) {
	t.Run("paid session settles by payment intent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rec := NewMockPaymentReconciler(ctrl)
		e, err := FromStripeEvent(stripeEvent("checkout.session.completed",
			`{"id":"cs_1","payment_status":"paid","payment_intent":"pi_1","metadata":{"invoice_id":"inv-1"}}`))
		require.NoError(t, err)

		rec.EXPECT().ApplyPaymentEvent(gomock.Any(), invoice.PaymentEvent{
			Provider:   invoice.ProviderStripe,
			PaymentID:  "pi_1",
			Action:     "checkout.session.completed",
			Status:     invoice.StripeSucceeded,
			OccurredAt: e.CreatedAt,
			InvoiceID:  "inv-1",
		}).Return(invoice.ResultSettled, nil)

		report := NewStripeDispatcher(rec, nil).Dispatch(context.Background(), []Event{e})

		require.Len(t, report.Outcomes, 1)
		assert.Equal(t, ResultSettled, report.Outcomes[0].Result)
	})

	t.Run("unpaid session is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rec := NewMockPaymentReconciler(ctrl)
		e, err := FromStripeEvent(stripeEvent("checkout.session.completed",
			`{"id":"cs_1","payment_status":"unpaid","metadata":{"invoice_id":"inv-1"}}`))
		require.NoError(t, err)

		report := NewStripeDispatcher(rec, nil).Dispatch(context.Background(), []Event{e})

		assert.Equal(t, ResultIgnored, report.Outcomes[0].Result)
	})

	t.Run("unrouted stripe type is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rec := NewMockPaymentReconciler(ctrl)
		e, err := FromStripeEvent(stripeEvent("payment_intent.created", `{"id":"pi_1","status":"requires_payment_method"}`))
		require.NoError(t, err)

		report := NewStripeDispatcher(rec, nil).Dispatch(context.Background(), []Event{e})

		assert.Equal(t, ResultIgnored, report.Outcomes[0].Result)
	})
}
