package webhook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvelope(t *testing.T) {
	t.Run("decodes entries", func(t *testing.T) {
		body := []byte(`{"events":[
			{"id":"EV1","created_at":"2026-03-01T10:00:00.000Z","resource_type":"payments","action":"paid_out",
			 "links":{"payment":"PM1"},"details":{"origin":"gocardless","cause":"payment_paid_out"}},
			{"id":"EV2","created_at":"2026-03-01T10:00:01.000Z","resource_type":"mandates","action":"active",
			 "links":{"mandate":"MD1"},"metadata":{"invoice_id":"inv-1"}}
		]}`)

		events, err := ParseEnvelope(body)

		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "EV1", events[0].ID)
		assert.Equal(t, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), events[0].CreatedAt)
		assert.Equal(t, "payments.paid_out", events[0].Type())
		assert.Equal(t, "PM1", events[0].ResourceID())
		assert.Equal(t, "payment_paid_out", events[0].Details["cause"])
		assert.Equal(t, "MD1", events[1].ResourceID())
		assert.Equal(t, "inv-1", events[1].Metadata["invoice_id"])
	})

	t.Run("empty list is valid", func(t *testing.T) {
		events, err := ParseEnvelope([]byte(`{"events":[]}`))
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := ParseEnvelope([]byte(`{"events":`))
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("missing events key", func(t *testing.T) {
		_, err := ParseEnvelope([]byte(`{"data":[]}`))
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})
}

func TestEvent_ResourceIDWithoutLinks(t *testing.T) {
	assert.Empty(t, Event{ResourceType: "payments"}.ResourceID())
}
