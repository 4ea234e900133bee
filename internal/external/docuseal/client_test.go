//go:build !integration

package docuseal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SendSubmission(t *testing.T) {
	ctx := context.Background()

	t.Run("creates submission for one signer", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/submissions", r.URL.Path)
			assert.Equal(t, "ds_token", r.Header.Get("X-Auth-Token"))

			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.EqualValues(t, 42, req["template_id"])
			assert.Equal(t, true, req["send_email"])
			assert.Equal(t, []any{map[string]any{"email": "jane@example.com"}}, req["submitters"])

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":9,"submission_id":77,"email":"jane@example.com","status":"sent"}]`))
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL, APIToken: "ds_token", Timeout: time.Second})
		id, err := client.SendSubmission(ctx, "42", "jane@example.com")

		require.NoError(t, err)
		assert.Equal(t, "77", id)
	})

	testCases := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "server error is unavailable", status: http.StatusBadGateway, wantErr: ErrUnavailable},
		{name: "rate limit is unavailable", status: http.StatusTooManyRequests, wantErr: ErrUnavailable},
		{name: "unknown template is rejected", status: http.StatusUnprocessableEntity, body: `{"error":"Template not found"}`, wantErr: ErrRejected},
		{name: "empty response is rejected", status: http.StatusOK, body: `[]`, wantErr: ErrRejected},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			_, err := NewClient(Config{BaseURL: server.URL}).SendSubmission(ctx, "42", "jane@example.com")

			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, 1, calls)
		})
	}

	t.Run("non-numeric template never reaches the API", func(t *testing.T) {
		_, err := NewClient(Config{BaseURL: "http://127.0.0.1:0"}).SendSubmission(ctx, "tpl", "jane@example.com")
		assert.ErrorIs(t, err, ErrRejected)
	})
}
