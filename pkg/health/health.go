// Package health implements liveness and readiness checks.
package health

import (
	"context"
	"sync"
	"time"
)

const DefaultTimeout = 5 * time.Second

type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

type CheckResult struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

type Report struct {
	Status Status        `json:"status"`
	Checks []CheckResult `json:"checks,omitempty"`
}

type Registry struct {
	checkers []Checker
}

func NewRegistry(checkers ...Checker) *Registry {
	return &Registry{checkers: checkers}
}

// Add registers checkers after construction (e.g. Kafka only in kafka mode).
func (r *Registry) Add(checkers ...Checker) {
	r.checkers = append(r.checkers, checkers...)
}

// CheckAll runs the checks in parallel; the report is down if any check fails.
func (r *Registry) CheckAll(ctx context.Context) Report {
	results := make([]CheckResult, len(r.checkers))

	var wg sync.WaitGroup
	for i, c := range r.checkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := CheckResult{Name: c.Name(), Status: StatusUp}
			if err := c.Check(ctx); err != nil {
				res.Status = StatusDown
				res.Message = err.Error()
			}
			results[i] = res
		}()
	}
	wg.Wait()

	overall := StatusUp
	for _, res := range results {
		if res.Status == StatusDown {
			overall = StatusDown
			break
		}
	}
	return Report{Status: overall, Checks: results}
}
