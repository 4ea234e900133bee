package messaging

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	ID     string `json:"id"`
	Action string `json:"action"`
}

func TestNewEnvelope(t *testing.T) {
	env, err := NewEnvelope("EV1", "PM1", "gocardless.payments.paid_out", entry{ID: "EV1", Action: "paid_out"})
	require.NoError(t, err)
	assert.Equal(t, "EV1", env.EventID)
	assert.JSONEq(t, `{"id":"EV1","action":"paid_out"}`, string(env.Payload))

	generated, err := NewEnvelope("", "PM1", "t", entry{})
	require.NoError(t, err)
	assert.Len(t, generated.EventID, 36)
}

func TestDecodeEnvelope(t *testing.T) {
	t.Run("round trips the payload", func(t *testing.T) {
		env, err := NewEnvelope("EV1", "PM1", "gocardless.payments.paid_out", entry{ID: "EV1", Action: "paid_out"})
		require.NoError(t, err)
		raw, err := json.Marshal(env)
		require.NoError(t, err)

		var got entry
		decoded, err := DecodeEnvelope(raw, &got)

		require.NoError(t, err)
		assert.Equal(t, "PM1", decoded.Key)
		assert.Equal(t, entry{ID: "EV1", Action: "paid_out"}, got)
	})

	testCases := []struct {
		name  string
		value string
		want  string
	}{
		{"not json", `{oops`, "unmarshal envelope"},
		{"missing payload", `{"event_id":"EV2"}`, "EV2 has no payload"},
		{"payload of wrong shape", `{"event_id":"EV3","type":"gocardless.payments.created","payload":[1,2]}`, "gocardless.payments.created payload of EV3"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got entry
			_, err := DecodeEnvelope([]byte(tc.value), &got)

			assert.ErrorContains(t, err, tc.want)
		})
	}
}
