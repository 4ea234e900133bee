package opensearch

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ispbilling/internal/domain/webhookevent"
)

type fakeCluster struct {
	indexExists bool
	created     bool
	lastPath    string
	lastBody    map[string]any
	searchResp  string
}

func (f *fakeCluster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	body, _ := io.ReadAll(r.Body)
	f.lastPath = r.Method + " " + r.URL.Path
	f.lastBody = nil
	if len(body) > 0 {
		_ = json.Unmarshal(body, &f.lastBody)
	}

	switch {
	case r.Method == http.MethodHead && r.URL.Path == "/webhook-events":
		if !f.indexExists {
			w.WriteHeader(http.StatusNotFound)
		}
	case r.Method == http.MethodPut && r.URL.Path == "/webhook-events":
		f.created = true
		_, _ = w.Write([]byte(`{"acknowledged":true}`))
	case r.URL.Path == "/webhook-events/_update/gocardless:EV1":
		_, _ = w.Write([]byte(`{"result":"created"}`))
	case r.URL.Path == "/webhook-events/_search":
		_, _ = w.Write([]byte(f.searchResp))
	default:
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"unexpected"}`))
	}
}

func newSink(t *testing.T, f *fakeCluster) *WebhookEventSink {
	t.Helper()
	server := httptest.NewServer(f)
	t.Cleanup(server.Close)

	sink, err := NewWebhookEventSink(context.Background(), []string{server.URL}, "webhook-events")
	require.NoError(t, err)
	return sink
}

func TestNewWebhookEventSink(t *testing.T) {
	t.Run("creates missing index", func(t *testing.T) {
		f := &fakeCluster{}
		newSink(t, f)
		assert.True(t, f.created)
	})

	t.Run("keeps existing index", func(t *testing.T) {
		f := &fakeCluster{indexExists: true}
		newSink(t, f)
		assert.False(t, f.created)
	})

	t.Run("requires addresses", func(t *testing.T) {
		_, err := NewWebhookEventSink(context.Background(), nil, "webhook-events")
		assert.Error(t, err)
	})
}

func TestWebhookEventSink_RecordEvent(t *testing.T) {
	f := &fakeCluster{indexExists: true}
	sink := newSink(t, f)

	err := sink.RecordEvent(context.Background(), webhookevent.NewWebhookEvent{
		Provider:        "gocardless",
		ProviderEventID: "EV1",
		ResourceType:    "payments",
		Action:          "paid_out",
		Result:          "settled",
		ReceivedAt:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, "POST /webhook-events/_update/gocardless:EV1", f.lastPath)

	upsert, ok := f.lastBody["upsert"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), upsert["attempts"])
	assert.Equal(t, "settled", upsert["result"])

	script := f.lastBody["script"].(map[string]any)
	assert.Equal(t, "settled", script["params"].(map[string]any)["result"])
}

func TestWebhookEventSink_GetEvents(t *testing.T) {
	f := &fakeCluster{indexExists: true, searchResp: `{"hits":{"hits":[
		{"_id":"gocardless:EV1","_source":{"provider":"gocardless","provider_event_id":"EV1","result":"failed","attempts":3,
		 "received_at":"2026-03-01T12:00:00Z"}}]}}`}
	sink := newSink(t, f)

	events, err := sink.GetEvents(context.Background(), webhookevent.EventQuery{Results: []string{"failed"}})

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "gocardless:EV1", events[0].ID)
	assert.Equal(t, 3, events[0].Attempts)
	assert.Equal(t, "EV1", events[0].ProviderEventID)
	assert.Equal(t, float64(webhookevent.DefaultQueryLimit), f.lastBody["size"])
}

func TestSearchBody(t *testing.T) {
	body := searchBody(webhookevent.EventQuery{Providers: []string{"stripe"}, Limit: 7})

	assert.Equal(t, 7, body["size"])
	filters := body["query"].(map[string]any)["bool"].(map[string]any)["filter"].([]map[string]any)
	require.Len(t, filters, 1)
	assert.Equal(t, map[string]any{"terms": map[string]any{"provider": []string{"stripe"}}}, filters[0])
}
