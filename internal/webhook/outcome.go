package webhook

import (
	"errors"

	"ispbilling/internal/messaging"
)

type Result string

const (
	ResultApplied      Result = "applied"
	ResultSettled      Result = "settled"
	ResultUnchanged    Result = "unchanged"
	ResultStale        Result = "stale"
	ResultIgnored      Result = "ignored"
	ResultNotFound     Result = "not_found"
	ResultDuplicate    Result = "duplicate"
	ResultAcknowledged Result = "acknowledged"
	ResultQueued       Result = "queued"
	ResultFailed       Result = "failed"
)

type Outcome struct {
	EventID      string
	ResourceType string
	Action       string
	ResourceID   string
	Result       Result
	Err          error
}

// Retryable reports whether redelivering the event could succeed.
func (o Outcome) Retryable() bool {
	return o.Result == ResultFailed && !errors.Is(o.Err, messaging.ErrPermanent)
}

// Report collects one outcome per dispatched entry, in delivery order.
type Report struct {
	Outcomes []Outcome
}

func (r *Report) add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}

func (r Report) Count(result Result) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Result == result {
			n++
		}
	}
	return n
}

func (r Report) Counts() map[Result]int {
	counts := make(map[Result]int)
	for _, o := range r.Outcomes {
		counts[o.Result]++
	}
	return counts
}

func (r Report) HasRetryableFailure() bool {
	for _, o := range r.Outcomes {
		if o.Retryable() {
			return true
		}
	}
	return false
}

// FirstError returns the error of the first failed entry, or nil.
func (r Report) FirstError() error {
	for _, o := range r.Outcomes {
		if o.Result == ResultFailed {
			return o.Err
		}
	}
	return nil
}
