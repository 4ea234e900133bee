package contract

import (
	"context"
	"time"
)

//go:generate mockgen -source contract_repo.go -destination mock_contract_repo.go -package contract

type ContractRepo interface {
	// CreateContract returns ErrContractExists when the template already
	// belongs to a contract.
	CreateContract(ctx context.Context, c Contract) error
	AttachSubmission(ctx context.Context, contractID, submissionID string) error
	DeleteContract(ctx context.Context, contractID string) error

	// SetESignStatusByTemplate returns ErrContractNotFound when no contract
	// uses the template.
	SetESignStatusByTemplate(ctx context.Context, templateID string, status ESignStatus, at time.Time) (Contract, error)
}
