package contract

import (
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"
)

var (
	ErrContractNotFound = errors.New("contract not found")
	ErrContractExists   = errors.New("contract already exists for template")
	ErrInvalidContract  = errors.New("invalid contract")
	// ErrSubmissionFailed wraps DocuSeal errors raised while sending a new
	// contract for signature.
	ErrSubmissionFailed = errors.New("docuseal submission failed")
)

type ESignStatus string

const (
	ESignPending   ESignStatus = "pending"
	ESignCompleted ESignStatus = "completed"
)

type Contract struct {
	ID                   string      `json:"contract_id"`
	CustomerID           string      `json:"customer_id"`
	DocusealTemplateID   string      `json:"docuseal_template_id"`
	DocusealSubmissionID string      `json:"docuseal_submission_id,omitempty"`
	SignerEmail          string      `json:"signer_email,omitempty"`
	ESignStatus          ESignStatus `json:"e_sign_status"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
}

type NewContract struct {
	CustomerID  string
	TemplateID  string
	SignerEmail string
}

// Validate checks the fields DocuSeal needs: a numeric template id and a
// parseable signer address.
func (n NewContract) Validate() error {
	if strings.TrimSpace(n.CustomerID) == "" {
		return fmt.Errorf("%w: customer_id is required", ErrInvalidContract)
	}
	if id, err := strconv.ParseInt(n.TemplateID, 10, 64); err != nil || id <= 0 {
		return fmt.Errorf("%w: docuseal_template_id %q is not a template id", ErrInvalidContract, n.TemplateID)
	}
	if _, err := mail.ParseAddress(n.SignerEmail); err != nil {
		return fmt.Errorf("%w: signer_email %q", ErrInvalidContract, n.SignerEmail)
	}
	return nil
}

// SubmissionEvent is the part of a DocuSeal submission webhook the service acts on.
type SubmissionEvent struct {
	EventType  string
	Status     string
	TemplateID string
}

const (
	EventSubmissionCompleted = "submission.completed"
	SubmissionStatusComplete = "completed"
)

func (e SubmissionEvent) IsCompletion() bool {
	return e.EventType == EventSubmissionCompleted && e.Status == SubmissionStatusComplete
}
