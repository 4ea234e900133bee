package invoice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const ActionCreated = "created"

// Result is the reconciliation outcome of one payment event.
type Result string

const (
	ResultApplied   Result = "applied"
	ResultSettled   Result = "settled"
	ResultUnchanged Result = "unchanged"
	ResultStale     Result = "stale"
	ResultIgnored   Result = "ignored"
	ResultNotFound  Result = "not_found"
	ResultDuplicate Result = "duplicate"
)

type PaymentEvent struct {
	Provider   Provider
	PaymentID  string
	Action     string
	// Status is the provider status the event moves the payment to. For
	// GoCardless it equals Action, except for "created" where it is empty.
	Status     string
	OccurredAt time.Time
	// InvoiceID links an unknown payment to an invoice when the event
	// itself carries the invoice (Stripe metadata).
	InvoiceID  string
}

type Reconciler struct {
	repo     InvoiceRepo
	payments PaymentDetailProvider
	policies map[Provider]StatusPolicy
	now      func() time.Time
}

type ReconcilerOption func(*Reconciler)

func WithPolicy(provider Provider, policy StatusPolicy) ReconcilerOption {
	return func(r *Reconciler) {
		r.policies[provider] = policy
	}
}

func WithClock(now func() time.Time) ReconcilerOption {
	return func(r *Reconciler) {
		r.now = now
	}
}

// NewReconciler builds a reconciler with the default GoCardless and Stripe
// policies. payments may be nil, in which case "created" events that do not
// match a stored reference are not linked.
func NewReconciler(repo InvoiceRepo, payments PaymentDetailProvider, opts ...ReconcilerOption) *Reconciler {
	r := &Reconciler{
		repo:     repo,
		payments: payments,
		policies: map[Provider]StatusPolicy{
			ProviderGoCardless: GoCardlessPolicy(GCPaidOut),
			ProviderStripe:     StripePolicy(),
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ApplyPaymentEvent maps a payment event onto the invoice it references.
// Invoice status changes and settlement creation commit together.
func (r *Reconciler) ApplyPaymentEvent(ctx context.Context, event PaymentEvent) (Result, error) {
	policy, ok := r.policies[event.Provider]
	if !ok {
		return "", fmt.Errorf("no status policy for provider %q", event.Provider)
	}

	log := slog.With(
		"provider", event.Provider,
		"payment_id", event.PaymentID,
		"action", event.Action,
	)

	result, err := r.applyByReference(ctx, policy, event)
	if errors.Is(err, ErrInvoiceNotFound) {
		result, err = r.applyByLink(ctx, policy, event, log)
	}
	if errors.Is(err, ErrInvoiceNotFound) {
		log.InfoContext(ctx, "No invoice for payment, dropping event")
		return ResultNotFound, err
	}
	if err != nil {
		return "", err
	}

	log.InfoContext(ctx, "Payment event reconciled", "result", result)
	return result, nil
}

func (r *Reconciler) applyByReference(ctx context.Context, policy StatusPolicy, event PaymentEvent) (Result, error) {
	var result Result
	err := r.repo.InTransaction(ctx, func(tx TxInvoiceRepo) error {
		inv, err := tx.FindByExternalReference(ctx, event.PaymentID)
		if err != nil {
			return err
		}

		result, err = r.applyStatus(ctx, tx, policy, inv, event, statusFor(event, ""))
		return err
	})
	return result, err
}

func (r *Reconciler) applyByLink(ctx context.Context, policy StatusPolicy, event PaymentEvent, log *slog.Logger) (Result, error) {
	invoiceID := event.InvoiceID
	fetchedStatus := ""

	if invoiceID == "" {
		if event.Action != ActionCreated || r.payments == nil {
			return "", ErrInvoiceNotFound
		}

		detail, err := r.payments.GetPaymentDetail(ctx, event.PaymentID)
		if errors.Is(err, ErrPaymentNotFound) {
			return "", fmt.Errorf("%w: %w", ErrInvoiceNotFound, err)
		}
		if err != nil {
			return "", fmt.Errorf("fetch payment %s: %w", event.PaymentID, err)
		}
		log = log.With("mandate_id", detail.MandateID, "creditor_id", detail.CreditorID)
		if detail.InvoiceID == "" {
			log.InfoContext(ctx, "Payment carries no invoice_id metadata")
			return "", ErrInvoiceNotFound
		}
		invoiceID = detail.InvoiceID
		fetchedStatus = detail.Status
	}

	var result Result
	err := r.repo.InTransaction(ctx, func(tx TxInvoiceRepo) error {
		inv, err := tx.GetInvoiceForUpdate(ctx, invoiceID)
		if err != nil {
			return err
		}

		if inv.ExternalReference != nil && !inv.IsLinkedTo(event.PaymentID) {
			log.WarnContext(ctx, "Invoice already linked to another payment",
				"invoice_id", inv.ID, "external_reference", *inv.ExternalReference)
			result = ResultIgnored
			return nil
		}

		if inv.ExternalReference == nil {
			if err := tx.LinkExternalReference(ctx, inv.ID, event.PaymentID); err != nil {
				return fmt.Errorf("link invoice %s: %w", inv.ID, err)
			}
			ref := event.PaymentID
			inv.ExternalReference = &ref
			log.InfoContext(ctx, "Linked invoice to payment", "invoice_id", inv.ID)
		}

		result, err = r.applyStatus(ctx, tx, policy, inv, event, statusFor(event, fetchedStatus))
		return err
	})
	return result, err
}

func (r *Reconciler) applyStatus(ctx context.Context, tx TxInvoiceRepo, policy StatusPolicy, inv Invoice, event PaymentEvent, status string) (Result, error) {
	occurredAt := event.OccurredAt
	decision := policy.Decide(inv.ExternalStatus, inv.ExternalStatusAt, status, occurredAt)

	effective := ""
	if inv.ExternalStatus != nil {
		effective = *inv.ExternalStatus
	}

	if decision == DecisionApply {
		if occurredAt.IsZero() {
			occurredAt = r.now()
		}
		err := tx.UpdateExternalStatus(ctx, ExternalStatusUpdate{
			InvoiceID:  inv.ID,
			Status:     status,
			OccurredAt: occurredAt,
		})
		if err != nil {
			return "", fmt.Errorf("update external status of invoice %s: %w", inv.ID, err)
		}
		effective = status
	}

	// Stale and ignored events never touch settlements.
	if (decision == DecisionApply || decision == DecisionUnchanged) && policy.IsSettled(effective) {
		created, err := EnsureSettlement(ctx, tx, inv, event.Provider, event.PaymentID)
		if err != nil {
			return "", err
		}
		switch {
		case created:
			return ResultSettled, nil
		case decision == DecisionUnchanged:
			return ResultDuplicate, nil
		}
	}

	switch decision {
	case DecisionApply:
		return ResultApplied, nil
	case DecisionUnchanged:
		return ResultUnchanged, nil
	case DecisionStale:
		return ResultStale, nil
	default:
		return ResultIgnored, nil
	}
}

// EnsureSettlement writes one settlement for the invoice's outstanding
// balance and marks the invoice paid. It must run inside the transaction
// holding the invoice row. A settlement already stored for the reference is
// a successful no-op.
func EnsureSettlement(ctx context.Context, tx TxInvoiceRepo, inv Invoice, provider Provider, externalRef string) (bool, error) {
	log := slog.With("invoice_id", inv.ID, "external_reference", externalRef)

	exists, err := tx.SettlementExists(ctx, inv.ID, externalRef)
	if err != nil {
		return false, fmt.Errorf("check settlement: %w", err)
	}
	if exists {
		log.InfoContext(ctx, "Settlement already recorded, skipping")
		return false, nil
	}

	if inv.Outstanding <= 0 {
		log.InfoContext(ctx, "Invoice has no outstanding balance, skipping settlement")
		return false, nil
	}

	err = tx.CreateSettlement(ctx, Settlement{
		ID:                uuid.NewString(),
		InvoiceID:         inv.ID,
		CustomerID:        inv.CustomerID,
		PaymentType:       PaymentTypeReceive,
		Amount:            inv.Outstanding,
		Currency:          inv.Currency,
		Provider:          provider,
		ExternalReference: externalRef,
		Status:            SettlementSubmitted,
	})
	if errors.Is(err, ErrSettlementExists) {
		log.InfoContext(ctx, "Settlement created concurrently, skipping")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("create settlement: %w", err)
	}

	if err := tx.MarkPaid(ctx, inv.ID); err != nil {
		return false, fmt.Errorf("mark invoice %s paid: %w", inv.ID, err)
	}

	log.InfoContext(ctx, "Settlement created", "amount", FormatMinor(inv.Outstanding), "currency", inv.Currency)
	return true, nil
}

// statusFor resolves the status a payment event moves to. "created" carries no
// status of its own, so the fetched status is used, falling back to
// pending_submission.
func statusFor(event PaymentEvent, fetched string) string {
	if event.Status != "" {
		return event.Status
	}
	if event.Action != ActionCreated {
		return event.Action
	}
	if fetched != "" {
		return fetched
	}
	return GCPendingSubmission
}
