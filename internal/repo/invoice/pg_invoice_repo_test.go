package invoice_repo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"ispbilling/internal/domain/invoice"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const selectInvoices = "SELECT id, customer_id, total, outstanding, currency, status, due_date, external_reference, external_status, external_status_at, created_at, updated_at FROM invoices"

func newMockRepo(t *testing.T) (*repo, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return &repo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}, mock
}

func invoiceRows(mock pgxmock.PgxPoolIface) *pgxmock.Rows {
	return mock.NewRows([]string{
		"id", "customer_id", "total", "outstanding", "currency", "status", "due_date",
		"external_reference", "external_status", "external_status_at", "created_at", "updated_at",
	})
}

func TestGetInvoices(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()
	now := time.Now()

	t.Run("should filter by customer and status", func(t *testing.T) {
		ref := "PM1"
		rows := invoiceRows(mock).
			AddRow("INV-1", "CUST-1", int64(12050), int64(12050), "GBP", "Unpaid", now, &ref, nil, nil, now, now).
			AddRow("INV-2", "CUST-1", int64(900), int64(0), "GBP", "Paid", now, nil, nil, nil, now, now)

		mock.ExpectQuery(regexp.QuoteMeta(selectInvoices+" WHERE customer_id IN ($1) AND status IN ($2,$3) ORDER BY created_at DESC, id DESC")).
			WithArgs("CUST-1", invoice.StatusUnpaid, invoice.StatusPaid).
			WillReturnRows(rows)

		result, err := repo.GetInvoices(ctx, &invoice.InvoicesQuery{
			CustomerIDs: []string{"CUST-1"},
			Statuses:    []invoice.Status{invoice.StatusUnpaid, invoice.StatusPaid},
		})

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "INV-1", result[0].ID)
		assert.Equal(t, int64(12050), result[0].Outstanding)
		assert.True(t, result[0].IsLinkedTo("PM1"))
		assert.Equal(t, invoice.StatusPaid, result[1].Status)
		assert.Nil(t, result[1].ExternalReference)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should apply pagination", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(selectInvoices + " ORDER BY created_at DESC, id DESC LIMIT 50 OFFSET 100")).
			WillReturnRows(invoiceRows(mock))

		result, err := repo.GetInvoices(ctx, &invoice.InvoicesQuery{Pagination: &invoice.Pagination{Offset: 100}})

		require.NoError(t, err)
		assert.Empty(t, result)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should wrap query error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM invoices`).WillReturnError(assert.AnError)

		_, err := repo.GetInvoices(ctx, &invoice.InvoicesQuery{})

		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "query invoices")
	})
}

func TestFindByExternalReference(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()
	now := time.Now()

	t.Run("should lock the invoice row", func(t *testing.T) {
		ref := "PM1"
		status := "confirmed"
		rows := invoiceRows(mock).
			AddRow("INV-1", "CUST-1", int64(12050), int64(12050), "GBP", "Unpaid", now, &ref, &status, &now, now, now)

		mock.ExpectQuery(regexp.QuoteMeta(selectInvoices + " WHERE external_reference = $1 FOR UPDATE")).
			WithArgs("PM1").
			WillReturnRows(rows)

		inv, err := repo.FindByExternalReference(ctx, "PM1")

		require.NoError(t, err)
		assert.Equal(t, "INV-1", inv.ID)
		require.NotNil(t, inv.ExternalStatus)
		assert.Equal(t, "confirmed", *inv.ExternalStatus)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should return ErrInvoiceNotFound for unknown reference", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(selectInvoices + " WHERE external_reference = $1 FOR UPDATE")).
			WithArgs("PM404").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.FindByExternalReference(ctx, "PM404")

		assert.ErrorIs(t, err, invoice.ErrInvoiceNotFound)
	})
}

func TestGetInvoiceForUpdate(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()
	now := time.Now()

	rows := invoiceRows(mock).
		AddRow("INV-1", "CUST-1", int64(100), int64(100), "GBP", "Overdue", now, nil, nil, nil, now, now)

	mock.ExpectQuery(regexp.QuoteMeta(selectInvoices + " WHERE id = $1 FOR UPDATE")).
		WithArgs("INV-1").
		WillReturnRows(rows)

	inv, err := repo.GetInvoiceForUpdate(ctx, "INV-1")

	require.NoError(t, err)
	assert.Equal(t, invoice.StatusOverdue, inv.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLinkExternalReference(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	t.Run("should only link an unlinked invoice", func(t *testing.T) {
		mock.ExpectExec(`UPDATE invoices SET external_reference = \$1, updated_at = NOW\(\) WHERE id = \$2 AND external_reference IS NULL`).
			WithArgs("PM1", "INV-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.LinkExternalReference(ctx, "INV-1", "PM1")

		require.NoError(t, err)
	})

	t.Run("should fail when nothing was linked", func(t *testing.T) {
		mock.ExpectExec(`UPDATE invoices SET external_reference = \$1`).
			WithArgs("PM1", "INV-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.LinkExternalReference(ctx, "INV-1", "PM1")

		assert.EqualError(t, err, "invoice INV-1 is missing or already linked")
	})
}

func TestUpdateExternalStatus(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE invoices SET external_status = \$1, external_status_at = \$2, updated_at = NOW\(\) WHERE id = \$3`).
		WithArgs("paid_out", at, "INV-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateExternalStatus(ctx, invoice.ExternalStatusUpdate{InvoiceID: "INV-1", Status: "paid_out", OccurredAt: at})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkPaid(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	t.Run("should zero outstanding", func(t *testing.T) {
		mock.ExpectExec(`UPDATE invoices SET status = \$1, outstanding = \$2, updated_at = NOW\(\) WHERE id = \$3`).
			WithArgs(invoice.StatusPaid, 0, "INV-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, repo.MarkPaid(ctx, "INV-1"))
	})

	t.Run("should wrap database error", func(t *testing.T) {
		mock.ExpectExec(`UPDATE invoices SET status`).WillReturnError(assert.AnError)

		err := repo.MarkPaid(ctx, "INV-1")

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestMarkOverdue(t *testing.T) {
	march1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	// An invoice due on the sweep's own day is not overdue yet.
	testCases := []struct {
		name   string
		now    time.Time
		cutoff time.Time
	}{
		{name: "just after midnight", now: march1.Add(30 * time.Minute), cutoff: march1},
		{name: "midday", now: march1.Add(12 * time.Hour), cutoff: march1},
		{name: "offset zone rolls into next UTC day", now: time.Date(2026, 3, 1, 23, 0, 0, 0, time.FixedZone("UTC-1", -3600)), cutoff: march1.AddDate(0, 0, 1)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			ctx := context.Background()

			mock.ExpectExec(`UPDATE invoices SET status = \$1, updated_at = NOW\(\) WHERE status = \$2 AND due_date < \$3`).
				WithArgs(invoice.StatusOverdue, invoice.StatusUnpaid, tc.cutoff).
				WillReturnResult(pgxmock.NewResult("UPDATE", 4))

			n, err := repo.MarkOverdue(ctx, tc.now)

			require.NoError(t, err)
			assert.Equal(t, int64(4), n)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateInvoice(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()
	now := time.Now()
	due := now.AddDate(0, 0, 14)

	inv := invoice.Invoice{
		ID: "INV-1", CustomerID: "CUST-1", Total: 500, Outstanding: 500, Currency: "GBP",
		Status: invoice.StatusUnpaid, DueDate: due, CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectExec(`INSERT INTO invoices \(id,customer_id,total,outstanding,currency,status,due_date,created_at,updated_at\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8,\$9\)`).
		WithArgs("INV-1", "CUST-1", int64(500), int64(500), "GBP", invoice.StatusUnpaid, due, now, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.CreateInvoice(ctx, inv))
	require.NoError(t, mock.ExpectationsWereMet())
}
