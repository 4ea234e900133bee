package webhook

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidPayload = errors.New("invalid webhook payload")

// GoCardless resource types the service routes.
const (
	ResourcePayments  = "payments"
	ResourceMandates  = "mandates"
	ResourceCustomers = "customers"
)

// Event is one entry of a provider webhook delivery.
type Event struct {
	ID           string            `json:"id"`
	CreatedAt    time.Time         `json:"created_at"`
	ResourceType string            `json:"resource_type"`
	Action       string            `json:"action"`
	Links        map[string]string `json:"links,omitempty"`
	Details      map[string]any    `json:"details,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// ResourceID returns the link named after the singular resource type,
// e.g. links.payment for a "payments" event.
func (e Event) ResourceID() string {
	if e.Links == nil {
		return ""
	}
	return e.Links[strings.TrimSuffix(e.ResourceType, "s")]
}

// Type is "<resource_type>.<action>".
func (e Event) Type() string {
	return e.ResourceType + "." + e.Action
}

type envelope struct {
	Events []Event `json:"events"`
}

// ParseEnvelope decodes a GoCardless delivery body {"events":[...]}.
func ParseEnvelope(body []byte) ([]Event, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if env.Events == nil {
		return nil, fmt.Errorf("%w: missing events", ErrInvalidPayload)
	}
	return env.Events, nil
}
