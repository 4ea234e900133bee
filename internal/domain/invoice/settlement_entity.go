package invoice

import "time"

const (
	PaymentTypeReceive = "Receive"

	// SettlementSubmitted is the finalized state a settlement is written in.
	SettlementSubmitted = "submitted"
)

type Settlement struct {
	ID                string    `json:"settlement_id"`
	InvoiceID         string    `json:"invoice_id"`
	CustomerID        string    `json:"customer_id"`
	PaymentType       string    `json:"payment_type"`
	Amount            int64     `json:"-"`
	Currency          string    `json:"currency"`
	Provider          Provider  `json:"provider"`
	ExternalReference string    `json:"external_reference"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}
