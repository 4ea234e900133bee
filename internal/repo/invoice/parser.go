package invoice_repo

import (
	"fmt"

	"ispbilling/internal/domain/invoice"

	"github.com/jackc/pgx/v5"
)

func scanInvoice(row pgx.Row) (invoice.Invoice, error) {
	var inv invoice.Invoice
	var rawStatus string
	err := row.Scan(
		&inv.ID, &inv.CustomerID, &inv.Total, &inv.Outstanding, &inv.Currency, &rawStatus, &inv.DueDate,
		&inv.ExternalReference, &inv.ExternalStatus, &inv.ExternalStatusAt, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return invoice.Invoice{}, err
	}

	inv.Status, err = invoice.NewStatus(rawStatus)
	if err != nil {
		return invoice.Invoice{}, err
	}
	return inv, nil
}

func parseInvoiceRows(rows pgx.Rows) ([]invoice.Invoice, error) {
	var invoices []invoice.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice row: %w", err)
		}
		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invoice rows: %w", err)
	}
	return invoices, nil
}
