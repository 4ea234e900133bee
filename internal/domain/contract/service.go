package contract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeIgnored Outcome = "ignored"
)

type ContractService struct {
	repo   ContractRepo
	sender SubmissionSender
	now    func() time.Time
}

// NewContractService builds the service. sender may be nil, in which case
// contracts are stored pending and the submission is sent outside this
// service.
func NewContractService(repo ContractRepo, sender SubmissionSender) *ContractService {
	return &ContractService{repo: repo, sender: sender, now: time.Now}
}

// CreateContract stores a pending contract for the template and sends it to
// the signer. The row is stored first so a template is never sent twice; a
// failed send removes it again.
func (s *ContractService) CreateContract(ctx context.Context, req NewContract) (Contract, error) {
	if err := req.Validate(); err != nil {
		return Contract{}, err
	}

	now := s.now().UTC()
	c := Contract{
		ID:                 uuid.NewString(),
		CustomerID:         req.CustomerID,
		DocusealTemplateID: req.TemplateID,
		SignerEmail:        req.SignerEmail,
		ESignStatus:        ESignPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.repo.CreateContract(ctx, c); err != nil {
		return Contract{}, fmt.Errorf("create contract: %w", err)
	}

	log := slog.With("contract_id", c.ID, "template_id", c.DocusealTemplateID)
	if s.sender == nil {
		log.InfoContext(ctx, "Contract stored, no DocuSeal client configured")
		return c, nil
	}

	submissionID, err := s.sender.SendSubmission(ctx, c.DocusealTemplateID, c.SignerEmail)
	if err != nil {
		if delErr := s.repo.DeleteContract(ctx, c.ID); delErr != nil {
			log.ErrorContext(ctx, "Failed to remove unsent contract", slog.Any("error", delErr))
		}
		return Contract{}, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	if err := s.repo.AttachSubmission(ctx, c.ID, submissionID); err != nil {
		// The document is already out for signature; the webhook matches
		// on the template, so only the stored submission id is missing.
		log.WarnContext(ctx, "Failed to store DocuSeal submission id",
			"submission_id", submissionID, slog.Any("error", err))
	} else {
		c.DocusealSubmissionID = submissionID
	}

	log.InfoContext(ctx, "Contract sent for signature", "submission_id", submissionID)
	return c, nil
}


// HandleSubmission marks the contract signed once DocuSeal reports the
// submission complete. Other events and unknown templates are ignored.
func (s *ContractService) HandleSubmission(ctx context.Context, event SubmissionEvent) (Outcome, error) {
	if !event.IsCompletion() {
		return OutcomeIgnored, nil
	}

	c, err := s.repo.SetESignStatusByTemplate(ctx, event.TemplateID, ESignCompleted, s.now().UTC())
	if err != nil {
		return "", fmt.Errorf("complete e-sign for template %s: %w", event.TemplateID, err)
	}

	slog.InfoContext(ctx, "Contract e-sign completed",
		"contract_id", c.ID,
		"customer_id", c.CustomerID,
		"template_id", event.TemplateID,
	)
	return OutcomeSuccess, nil
}
