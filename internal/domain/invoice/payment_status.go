package invoice

import (
	"slices"
	"time"
)

type Provider string

const (
	ProviderGoCardless Provider = "gocardless"
	ProviderStripe     Provider = "stripe"
)

// GoCardless payment statuses. Webhook actions carry the same names.
const (
	GCPendingCustomerApproval = "pending_customer_approval"
	GCPendingSubmission       = "pending_submission"
	GCSubmitted               = "submitted"
	GCConfirmed               = "confirmed"
	GCPaidOut                 = "paid_out"
	GCFailed                  = "failed"
	GCCancelled               = "cancelled"
	GCCustomerApprovalDenied  = "customer_approval_denied"
	GCChargedBack             = "charged_back"
)

const (
	StripeRequiresPaymentMethod = "requires_payment_method"
	StripeRequiresAction        = "requires_action"
	StripeProcessing            = "processing"
	StripeSucceeded             = "succeeded"
	StripeCanceled              = "canceled"
)

// Decision is what the ordering policy says about an incoming status.
type Decision string

const (
	DecisionApply     Decision = "apply"
	DecisionUnchanged Decision = "unchanged"
	DecisionStale     Decision = "stale"
	DecisionIgnored   Decision = "ignored"
)

// StatusPolicy orders the payment statuses of one provider. Statuses only
// move forward: an update must rank strictly above what is stored.
type StatusPolicy struct {
	ranks   map[string]int
	settled string
}

// GoCardlessSettleStatuses are the statuses a deployment may treat as money
// received: confirmed (collected) or paid_out (in the creditor's account).
var GoCardlessSettleStatuses = []string{GCConfirmed, GCPaidOut}

func IsGoCardlessSettleStatus(status string) bool {
	return slices.Contains(GoCardlessSettleStatuses, status)
}

func GoCardlessPolicy(settledStatus string) StatusPolicy {
	if settledStatus == "" {
		settledStatus = GCPaidOut
	}
	return StatusPolicy{
		ranks: map[string]int{
			GCPendingCustomerApproval: 1,
			GCPendingSubmission:       2,
			GCSubmitted:               3,
			GCConfirmed:               4,
			GCPaidOut:                 5,
			GCFailed:                  5,
			GCCancelled:               5,
			GCCustomerApprovalDenied:  5,
			GCChargedBack:             6,
		},
		settled: settledStatus,
	}
}

func StripePolicy() StatusPolicy {
	return StatusPolicy{
		ranks: map[string]int{
			StripeRequiresPaymentMethod: 1,
			StripeRequiresAction:        2,
			StripeProcessing:            3,
			StripeSucceeded:             4,
			StripeCanceled:              4,
		},
		settled: StripeSucceeded,
	}
}

func (p StatusPolicy) Rank(status string) (int, bool) {
	r, ok := p.ranks[status]
	return r, ok
}

func (p StatusPolicy) IsSettled(status string) bool {
	return status != "" && status == p.settled
}

func (p StatusPolicy) SettledStatus() string {
	return p.settled
}

// Decide compares an incoming status with the stored one. A zero occurredAt
// skips the chronology check.
func (p StatusPolicy) Decide(current *string, currentAt *time.Time, next string, occurredAt time.Time) Decision {
	if current == nil || *current == "" {
		return DecisionApply
	}
	if *current == next {
		return DecisionUnchanged
	}

	curRank, curKnown := p.Rank(*current)
	nextRank, nextKnown := p.Rank(next)

	if !nextKnown && curKnown {
		return DecisionIgnored
	}
	if currentAt != nil && !occurredAt.IsZero() && occurredAt.Before(*currentAt) {
		return DecisionStale
	}
	if !curKnown {
		return DecisionApply
	}
	if nextRank > curRank {
		return DecisionApply
	}
	return DecisionStale
}
