package invoice

import (
	"fmt"
	"slices"
	"time"
)

type Invoice struct {
	ID                string     `json:"invoice_id"`
	CustomerID        string     `json:"customer_id"`
	Total             int64      `json:"-"`
	Outstanding       int64      `json:"-"`
	Currency          string     `json:"currency"`
	Status            Status     `json:"status"`
	DueDate           time.Time  `json:"due_date"`
	ExternalReference *string    `json:"external_reference,omitempty"`
	ExternalStatus    *string    `json:"external_status,omitempty"`
	ExternalStatusAt  *time.Time `json:"external_status_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// IsLinkedTo reports whether the invoice already carries the given provider reference.
func (i Invoice) IsLinkedTo(ref string) bool {
	return i.ExternalReference != nil && *i.ExternalReference == ref
}

// Payable reports whether the invoice can still be charged: Unpaid or
// Overdue with a positive balance.
func (i Invoice) Payable() bool {
	return (i.Status == StatusUnpaid || i.Status == StatusOverdue) && i.Outstanding > 0
}

type Status string

const (
	StatusDraft     Status = "Draft"
	StatusUnpaid    Status = "Unpaid"
	StatusPaid      Status = "Paid"
	StatusOverdue   Status = "Overdue"
	StatusCancelled Status = "Cancelled"
)

var AvailableStatuses = []Status{StatusDraft, StatusUnpaid, StatusPaid, StatusOverdue, StatusCancelled}

func NewStatus(raw string) (Status, error) {
	if slices.Contains(AvailableStatuses, Status(raw)) {
		return Status(raw), nil
	}
	return "", fmt.Errorf("%w: unknown invoice status %q", ErrInvalidQuery, raw)
}

type NewInvoice struct {
	CustomerID string
	Amount     Money
	DueDate    time.Time
}

type Pagination struct {
	Limit  int
	Offset int
}

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 500
)

type InvoicesQuery struct {
	IDs         []string
	CustomerIDs []string
	Statuses    []Status
	Pagination  *Pagination
}

func (q *InvoicesQuery) Validate() error {
	if q.Pagination == nil {
		return nil
	}
	if q.Pagination.Limit < 0 || q.Pagination.Limit > MaxPageLimit {
		return fmt.Errorf("limit must be between 0 and %d", MaxPageLimit)
	}
	if q.Pagination.Offset < 0 {
		return fmt.Errorf("offset must not be negative")
	}
	return nil
}

type InvoicesQueryBuilder struct {
	query *InvoicesQuery
}

func NewInvoicesQueryBuilder() *InvoicesQueryBuilder {
	return &InvoicesQueryBuilder{
		query: &InvoicesQuery{},
	}
}

func (b *InvoicesQueryBuilder) Build() (*InvoicesQuery, error) {
	if err := b.query.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidQuery, err.Error())
	}
	return b.query, nil
}

func (b *InvoicesQueryBuilder) WithIDs(ids ...string) *InvoicesQueryBuilder {
	b.query.IDs = ids
	return b
}

func (b *InvoicesQueryBuilder) WithCustomerIDs(customerIDs ...string) *InvoicesQueryBuilder {
	b.query.CustomerIDs = customerIDs
	return b
}

func (b *InvoicesQueryBuilder) WithStatuses(statuses ...Status) *InvoicesQueryBuilder {
	b.query.Statuses = statuses
	return b
}

func (b *InvoicesQueryBuilder) WithPagination(pagination Pagination) *InvoicesQueryBuilder {
	b.query.Pagination = &pagination
	return b
}

// ExternalStatusUpdate mirrors a provider status onto the invoice.
type ExternalStatusUpdate struct {
	InvoiceID  string
	Status     string
	OccurredAt time.Time
}
