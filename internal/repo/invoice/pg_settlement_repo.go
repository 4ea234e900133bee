package invoice_repo

import (
	"context"
	"fmt"

	"ispbilling/internal/domain/invoice"

	"github.com/Masterminds/squirrel"
)

func (r *repo) SettlementExists(ctx context.Context, invoiceID, externalRef string) (bool, error) {
	query, args, err := r.builder.Select("COUNT(*)").
		From("settlements").
		Where(squirrel.Eq{"invoice_id": invoiceID}).
		Where(squirrel.Eq{"external_reference": externalRef}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build select query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("count settlements: %w", err)
	}
	return count > 0, nil
}

func (r *repo) CreateSettlement(ctx context.Context, s invoice.Settlement) error {
	query, args, err := r.builder.Insert("settlements").
		Columns("id", "invoice_id", "customer_id", "payment_type", "amount", "currency", "provider", "external_reference", "status").
		Values(s.ID, s.InvoiceID, s.CustomerID, s.PaymentType, s.Amount, s.Currency, s.Provider, s.ExternalReference, s.Status).
		Suffix("ON CONFLICT (invoice_id, external_reference) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("insert settlement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return invoice.ErrSettlementExists
	}
	return nil
}

func (r *repo) GetSettlements(ctx context.Context, invoiceID string) ([]invoice.Settlement, error) {
	query, args, err := r.builder.Select(
		"id", "invoice_id", "customer_id", "payment_type", "amount", "currency",
		"provider", "external_reference", "status", "created_at",
	).
		From("settlements").
		Where(squirrel.Eq{"invoice_id": invoiceID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query settlements: %w", err)
	}
	defer rows.Close()

	var settlements []invoice.Settlement
	for rows.Next() {
		var s invoice.Settlement
		var provider string
		err := rows.Scan(&s.ID, &s.InvoiceID, &s.CustomerID, &s.PaymentType, &s.Amount, &s.Currency,
			&provider, &s.ExternalReference, &s.Status, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan settlement row: %w", err)
		}
		s.Provider = invoice.Provider(provider)
		settlements = append(settlements, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate settlement rows: %w", err)
	}
	return settlements, nil
}
