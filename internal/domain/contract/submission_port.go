package contract

import "context"

//go:generate mockgen -source submission_port.go -destination mock_submission_port.go -package contract

// SubmissionSender asks the signing provider to send a template to a signer.
type SubmissionSender interface {
	SendSubmission(ctx context.Context, templateID, signerEmail string) (submissionID string, err error)
}
