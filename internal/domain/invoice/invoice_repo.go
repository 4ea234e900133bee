package invoice

import (
	"context"
	"time"
)

//go:generate mockgen -source invoice_repo.go -destination mock_invoice_repo.go -package invoice

type InvoiceRepo interface {
	TxInvoiceRepo
	InTransaction(ctx context.Context, fn func(repo TxInvoiceRepo) error) error
}

type TxInvoiceRepo interface {
	CreateInvoice(ctx context.Context, invoice Invoice) error
	GetInvoices(ctx context.Context, query *InvoicesQuery) ([]Invoice, error)

	// GetInvoiceForUpdate and FindByExternalReference lock the returned row
	// when called inside a transaction. Both return ErrInvoiceNotFound.
	GetInvoiceForUpdate(ctx context.Context, invoiceID string) (Invoice, error)
	FindByExternalReference(ctx context.Context, ref string) (Invoice, error)

	LinkExternalReference(ctx context.Context, invoiceID, ref string) error
	UpdateExternalStatus(ctx context.Context, update ExternalStatusUpdate) error
	MarkPaid(ctx context.Context, invoiceID string) error
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)

	SettlementExists(ctx context.Context, invoiceID, externalRef string) (bool, error)
	// CreateSettlement returns ErrSettlementExists when the
	// (invoice_id, external_reference) pair is already taken.
	CreateSettlement(ctx context.Context, settlement Settlement) error
	GetSettlements(ctx context.Context, invoiceID string) ([]Settlement, error)
}
