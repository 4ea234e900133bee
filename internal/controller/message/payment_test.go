package message

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ispbilling/internal/messaging"
	"ispbilling/internal/webhook"
)

func envelopeFor(t *testing.T, e webhook.Event) []byte {
	t.Helper()
	env, err := messaging.NewEnvelope(e.ID, e.ResourceID(), webhook.MessageType("gocardless", e), e)
	require.NoError(t, err)
	b, err := json.Marshal(env)
	require.NoError(t, err)
	return b
}

func TestPaymentMessageController_HandleMessage(t *testing.T) {
	event := webhook.Event{ID: "EV1", ResourceType: "payments", Action: "paid_out", Links: map[string]string{"payment": "PM1"}}

	t.Run("dispatches decoded entry", func(t *testing.T) {
		var got []webhook.Event
		d := webhook.NewDispatcher("gocardless", nil)
		d.RegisterResource("payments", webhook.HandlerFunc(func(_ context.Context, e webhook.Event) (webhook.Result, error) {
			got = append(got, e)
			return webhook.ResultSettled, nil
		}))

		err := NewPaymentMessageController(d).HandleMessage(context.Background(), []byte("PM1"), envelopeFor(t, event))

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "PM1", got[0].ResourceID())
	})

	t.Run("not_found commits", func(t *testing.T) {
		d := webhook.NewDispatcher("gocardless", nil)
		d.RegisterResource("payments", webhook.HandlerFunc(func(context.Context, webhook.Event) (webhook.Result, error) {
			return webhook.ResultNotFound, nil
		}))

		err := NewPaymentMessageController(d).HandleMessage(context.Background(), nil, envelopeFor(t, event))

		assert.NoError(t, err)
	})

	t.Run("failed entry returns error", func(t *testing.T) {
		boom := errors.New("db down")
		d := webhook.NewDispatcher("gocardless", nil)
		d.RegisterResource("payments", webhook.HandlerFunc(func(context.Context, webhook.Event) (webhook.Result, error) {
			return "", boom
		}))

		err := NewPaymentMessageController(d).HandleMessage(context.Background(), nil, envelopeFor(t, event))

		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, messaging.ErrPermanent)
	})

	t.Run("bad envelope is permanent", func(t *testing.T) {
		d := webhook.NewDispatcher("gocardless", nil)

		err := NewPaymentMessageController(d).HandleMessage(context.Background(), nil, []byte("{not json"))

		assert.ErrorIs(t, err, messaging.ErrPermanent)
	})

	t.Run("bad payload is permanent", func(t *testing.T) {
		d := webhook.NewDispatcher("gocardless", nil)
		value := []byte(`{"event_id":"EV1","payload":"oops"}`)

		err := NewPaymentMessageController(d).HandleMessage(context.Background(), nil, value)

		assert.ErrorIs(t, err, messaging.ErrPermanent)
	})
}
