// Package opensearch stores the webhook event log in an OpenSearch index.
package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/opensearch-project/opensearch-go"

	"ispbilling/internal/domain/webhookevent"
)

var _ webhookevent.EventSink = (*WebhookEventSink)(nil)

// upsertScript overwrites the outcome of a redelivered event and counts the attempt.
const upsertScript = `ctx._source.attempts += 1; ctx._source.result = params.result; ` +
	`ctx._source.error = params.error; ctx._source.received_at = params.received_at`

type WebhookEventSink struct {
	client *opensearch.Client
	index  string
}

func NewWebhookEventSink(ctx context.Context, urls []string, index string) (*WebhookEventSink, error) {
	if len(urls) == 0 {
		return nil, errors.New("no OpenSearch addresses configured")
	}

	client, err := opensearch.NewClient(opensearch.Config{
		Addresses: urls,
		Transport: &http.Transport{MaxIdleConnsPerHost: 10},
	})
	if err != nil {
		return nil, fmt.Errorf("opensearch client: %w", err)
	}

	sink := &WebhookEventSink{client: client, index: index}
	if err := sink.ensureIndex(ctx); err != nil {
		return nil, err
	}
	return sink, nil
}

func (s *WebhookEventSink) ensureIndex(ctx context.Context) error {
	res, err := s.client.Indices.Exists([]string{s.index}, s.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("indices.exists: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	keyword := map[string]any{"type": "keyword"}
	body := map[string]any{
		"mappings": map[string]any{
			"properties": map[string]any{
				"provider":          keyword,
				"provider_event_id": keyword,
				"resource_type":     keyword,
				"action":            keyword,
				"resource_id":       keyword,
				"result":            keyword,
				"error":             map[string]any{"type": "text"},
				"received_at":       map[string]any{"type": "date"},
				"attempts":          map[string]any{"type": "integer"},
			},
		},
		"settings": map[string]any{"number_of_replicas": 0},
	}
	buf, _ := json.Marshal(body)

	cr, err := s.client.Indices.Create(
		s.index,
		s.client.Indices.Create.WithBody(bytes.NewReader(buf)),
		s.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("indices.create: %w", err)
	}
	defer cr.Body.Close()
	if cr.IsError() {
		return fmt.Errorf("indices.create error: %s", cr.String())
	}
	return nil
}

type eventDoc struct {
	webhookevent.NewWebhookEvent
	Attempts int `json:"attempts"`
}

// docID is stable per provider event, so redeliveries hit the same document.
func docID(provider, providerEventID string) string {
	return provider + ":" + providerEventID
}

func (s *WebhookEventSink) RecordEvent(ctx context.Context, event webhookevent.NewWebhookEvent) error {
	body := map[string]any{
		"script": map[string]any{
			"lang":   "painless",
			"source": upsertScript,
			"params": map[string]any{
				"result":      event.Result,
				"error":       event.Error,
				"received_at": event.ReceivedAt.UTC(),
			},
		},
		"upsert": eventDoc{NewWebhookEvent: event, Attempts: 1},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	res, err := s.client.Update(
		s.index,
		docID(event.Provider, event.ProviderEventID),
		bytes.NewReader(payload),
		s.client.Update.WithContext(ctx),
		s.client.Update.WithRefresh("true"),
	)
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("update error: %s", res.String())
	}
	return nil
}

func searchBody(q webhookevent.EventQuery) map[string]any {
	q = q.Normalize()

	filters := make([]map[string]any, 0, 2)
	if len(q.Providers) > 0 {
		filters = append(filters, map[string]any{"terms": map[string]any{"provider": q.Providers}})
	}
	if len(q.Results) > 0 {
		filters = append(filters, map[string]any{"terms": map[string]any{"result": q.Results}})
	}

	return map[string]any{
		"size":  q.Limit,
		"query": map[string]any{"bool": map[string]any{"filter": filters}},
		"sort":  []map[string]any{{"received_at": map[string]any{"order": "desc"}}},
	}
}

func (s *WebhookEventSink) GetEvents(ctx context.Context, query webhookevent.EventQuery) ([]webhookevent.WebhookEvent, error) {
	raw, _ := json.Marshal(searchBody(query))

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(bytes.NewReader(raw)),
	)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search error: %s", res.String())
	}

	var sr struct {
		Hits struct {
			Hits []struct {
				ID     string          `json:"_id"`
				Source json.RawMessage `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode search: %w", err)
	}

	out := make([]webhookevent.WebhookEvent, 0, len(sr.Hits.Hits))
	for _, h := range sr.Hits.Hits {
		var doc eventDoc
		if err := json.Unmarshal(h.Source, &doc); err != nil {
			return nil, fmt.Errorf("decode hit %s: %w", h.ID, err)
		}
		out = append(out, webhookevent.WebhookEvent{
			ID:              h.ID,
			Attempts:        doc.Attempts,
			NewWebhookEvent: doc.NewWebhookEvent,
		})
	}
	return out, nil
}
