package invoice_repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ispbilling/internal/domain/invoice"
	"ispbilling/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var invoiceColumns = []string{
	"id", "customer_id", "total", "outstanding", "currency", "status", "due_date",
	"external_reference", "external_status", "external_status_at", "created_at", "updated_at",
}

type PgInvoiceRepo struct {
	pg *postgres.Postgres
	repo
}

func NewPgInvoiceRepo(pg *postgres.Postgres) invoice.InvoiceRepo {
	return &PgInvoiceRepo{
		pg:   pg,
		repo: repo{db: pg.Pool, builder: pg.Builder},
	}
}

func (r *PgInvoiceRepo) InTransaction(ctx context.Context, fn func(repo invoice.TxInvoiceRepo) error) error {
	return r.pg.InTransaction(ctx, func(tx postgres.Executor) error {
		txRepo := &repo{db: tx, builder: r.pg.Builder}
		return fn(txRepo)
	})
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func (r *repo) CreateInvoice(ctx context.Context, inv invoice.Invoice) error {
	query, args, err := r.builder.Insert("invoices").
		Columns("id", "customer_id", "total", "outstanding", "currency", "status", "due_date", "created_at", "updated_at").
		Values(inv.ID, inv.CustomerID, inv.Total, inv.Outstanding, inv.Currency, inv.Status, inv.DueDate, inv.CreatedAt, inv.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert query: %w", err)
	}

	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

func (r *repo) GetInvoices(ctx context.Context, query *invoice.InvoicesQuery) ([]invoice.Invoice, error) {
	sql, args := r.buildInvoicesQuery(query)
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}
	defer rows.Close()

	return parseInvoiceRows(rows)
}

func (r *repo) GetInvoiceForUpdate(ctx context.Context, invoiceID string) (invoice.Invoice, error) {
	return r.getOneForUpdate(ctx, squirrel.Eq{"id": invoiceID})
}

func (r *repo) FindByExternalReference(ctx context.Context, ref string) (invoice.Invoice, error) {
	return r.getOneForUpdate(ctx, squirrel.Eq{"external_reference": ref})
}

func (r *repo) getOneForUpdate(ctx context.Context, where squirrel.Eq) (invoice.Invoice, error) {
	query, args, err := r.builder.Select(invoiceColumns...).
		From("invoices").
		Where(where).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return invoice.Invoice{}, fmt.Errorf("build select query: %w", err)
	}

	inv, err := scanInvoice(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return invoice.Invoice{}, invoice.ErrInvoiceNotFound
	}
	if err != nil {
		return invoice.Invoice{}, fmt.Errorf("select invoice: %w", err)
	}
	return inv, nil
}

func (r *repo) LinkExternalReference(ctx context.Context, invoiceID, ref string) error {
	query, args, err := r.builder.Update("invoices").
		Set("external_reference", ref).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": invoiceID}).
		Where(squirrel.Eq{"external_reference": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("link external reference: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("invoice %s is missing or already linked", invoiceID)
	}
	return nil
}

func (r *repo) UpdateExternalStatus(ctx context.Context, update invoice.ExternalStatusUpdate) error {
	query, args, err := r.builder.Update("invoices").
		Set("external_status", update.Status).
		Set("external_status_at", update.OccurredAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": update.InvoiceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update external status: %w", err)
	}
	return nil
}

func (r *repo) MarkPaid(ctx context.Context, invoiceID string) error {
	query, args, err := r.builder.Update("invoices").
		Set("status", invoice.StatusPaid).
		Set("outstanding", 0).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": invoiceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("mark invoice paid: %w", err)
	}
	return nil
}

// MarkOverdue flags unpaid invoices whose due date is before the calendar
// day of now, so an invoice due today stays Unpaid until tomorrow.
func (r *repo) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	today := startOfDay(now)
	query, args, err := r.builder.Update("invoices").
		Set("status", invoice.StatusOverdue).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": invoice.StatusUnpaid}).
		Where(squirrel.Lt{"due_date": today}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("mark invoices overdue: %w", err)
	}
	return tag.RowsAffected(), nil
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (r *repo) buildInvoicesQuery(q *invoice.InvoicesQuery) (string, []interface{}) {
	query := r.builder.Select(invoiceColumns...).
		From("invoices").
		OrderBy("created_at DESC", "id DESC")

	if len(q.IDs) > 0 {
		query = query.Where(squirrel.Eq{"id": q.IDs})
	}

	if len(q.CustomerIDs) > 0 {
		query = query.Where(squirrel.Eq{"customer_id": q.CustomerIDs})
	}

	if len(q.Statuses) > 0 {
		query = query.Where(squirrel.Eq{"status": q.Statuses})
	}

	if q.Pagination != nil {
		limit := q.Pagination.Limit
		if limit == 0 {
			limit = invoice.DefaultPageLimit
		}
		query = query.Limit(uint64(limit)).Offset(uint64(q.Pagination.Offset))
	}

	sql, args, _ := query.ToSql()
	return sql, args
}
