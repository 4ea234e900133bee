package webhookevent_repo

import (
	"context"
	"fmt"

	"ispbilling/internal/domain/webhookevent"
	"ispbilling/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PgEventSink struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

var _ webhookevent.EventSink = (*PgEventSink)(nil)

func NewPgEventSink(pg *postgres.Postgres) *PgEventSink {
	return &PgEventSink{
		db:      pg.Pool,
		builder: pg.Builder,
	}
}

func (s *PgEventSink) RecordEvent(ctx context.Context, event webhookevent.NewWebhookEvent) error {
	query, args, err := s.builder.Insert("webhook_events").
		Columns("id", "provider", "provider_event_id", "resource_type", "action", "resource_id", "result", "error", "received_at").
		Values(uuid.NewString(), event.Provider, event.ProviderEventID, event.ResourceType, event.Action,
			event.ResourceID, event.Result, event.Error, event.ReceivedAt).
		Suffix("ON CONFLICT (provider, provider_event_id) DO UPDATE SET result = EXCLUDED.result, error = EXCLUDED.error, received_at = EXCLUDED.received_at, attempts = webhook_events.attempts + 1").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert query: %w", err)
	}

	if _, err = s.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("record webhook event: %w", err)
	}
	return nil
}

func (s *PgEventSink) GetEvents(ctx context.Context, query webhookevent.EventQuery) ([]webhookevent.WebhookEvent, error) {
	sql, args := s.buildEventsQuery(query.Normalize())

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query webhook events: %w", err)
	}
	defer rows.Close()

	return parseEventRows(rows)
}

func (s *PgEventSink) buildEventsQuery(q webhookevent.EventQuery) (string, []interface{}) {
	query := s.builder.Select("id", "provider", "provider_event_id", "resource_type", "action", "resource_id", "result", "error", "received_at", "attempts").
		From("webhook_events").
		OrderBy("received_at DESC", "id DESC").
		Limit(uint64(q.Limit))

	if len(q.Providers) > 0 {
		query = query.Where(squirrel.Eq{"provider": q.Providers})
	}

	if len(q.Results) > 0 {
		query = query.Where(squirrel.Eq{"result": q.Results})
	}

	sql, args, _ := query.ToSql()
	return sql, args
}

func parseEventRows(rows pgx.Rows) ([]webhookevent.WebhookEvent, error) {
	var events []webhookevent.WebhookEvent
	for rows.Next() {
		var e webhookevent.WebhookEvent
		err := rows.Scan(&e.ID, &e.Provider, &e.ProviderEventID, &e.ResourceType, &e.Action,
			&e.ResourceID, &e.Result, &e.Error, &e.ReceivedAt, &e.Attempts)
		if err != nil {
			return nil, fmt.Errorf("scan webhook event row: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate webhook event rows: %w", err)
	}
	return events, nil
}
