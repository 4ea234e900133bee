package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type InvoiceService struct {
	repo InvoiceRepo
	now  func() time.Time
}

func NewInvoiceService(repo InvoiceRepo) *InvoiceService {
	return &InvoiceService{repo: repo, now: time.Now}
}

func (s *InvoiceService) CreateInvoice(ctx context.Context, req NewInvoice) (Invoice, error) {
	if req.Amount.Minor <= 0 {
		return Invoice{}, fmt.Errorf("%w: amount must be positive", ErrInvalidAmount)
	}

	now := s.now().UTC()
	inv := Invoice{
		ID:          uuid.NewString(),
		CustomerID:  req.CustomerID,
		Total:       req.Amount.Minor,
		Outstanding: req.Amount.Minor,
		Currency:    req.Amount.Currency,
		Status:      StatusUnpaid,
		DueDate:     req.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.CreateInvoice(ctx, inv); err != nil {
		return Invoice{}, fmt.Errorf("create invoice: %w", err)
	}
	return inv, nil
}

func (s *InvoiceService) GetInvoiceByID(ctx context.Context, id string) (Invoice, error) {
	query, _ := NewInvoicesQueryBuilder().
		WithIDs(id).
		Build()

	invoices, err := s.repo.GetInvoices(ctx, query)
	if err != nil {
		return Invoice{}, fmt.Errorf("get invoice: %w", err)
	}
	if len(invoices) == 0 {
		return Invoice{}, ErrInvoiceNotFound
	}
	return invoices[0], nil
}

func (s *InvoiceService) GetInvoices(ctx context.Context, query InvoicesQuery) ([]Invoice, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidQuery, err.Error())
	}

	invoices, err := s.repo.GetInvoices(ctx, &query)
	if err != nil {
		return nil, fmt.Errorf("filter invoices: %w", err)
	}
	return invoices, nil
}

func (s *InvoiceService) GetSettlements(ctx context.Context, invoiceID string) ([]Settlement, error) {
	if _, err := s.GetInvoiceByID(ctx, invoiceID); err != nil {
		return nil, err
	}

	settlements, err := s.repo.GetSettlements(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("get settlements for invoice %s: %w", invoiceID, err)
	}
	return settlements, nil
}

// MarkOverdue moves unpaid invoices past their due date to Overdue.
func (s *InvoiceService) MarkOverdue(ctx context.Context) (int64, error) {
	n, err := s.repo.MarkOverdue(ctx, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("mark overdue invoices: %w", err)
	}
	return n, nil
}
