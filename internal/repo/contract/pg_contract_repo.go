package contract_repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ispbilling/internal/domain/contract"
	"ispbilling/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

type PgContractRepo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

var _ contract.ContractRepo = (*PgContractRepo)(nil)

func NewPgContractRepo(pg *postgres.Postgres) *PgContractRepo {
	return &PgContractRepo{
		db:      pg.Pool,
		builder: pg.Builder,
	}
}

func (r *PgContractRepo) CreateContract(ctx context.Context, c contract.Contract) error {
	query, args, err := r.builder.Insert("contracts").
		Columns("id", "customer_id", "docuseal_template_id", "signer_email", "e_sign_status", "created_at", "updated_at").
		Values(c.ID, c.CustomerID, c.DocusealTemplateID, c.SignerEmail, c.ESignStatus, c.CreatedAt, c.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert query: %w", err)
	}

	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		if postgres.IsPgErrorUniqueViolation(err) {
			return fmt.Errorf("%w: %s", contract.ErrContractExists, c.DocusealTemplateID)
		}
		return fmt.Errorf("insert contract: %w", err)
	}
	return nil
}

func (r *PgContractRepo) AttachSubmission(ctx context.Context, contractID, submissionID string) error {
	query, args, err := r.builder.Update("contracts").
		Set("docuseal_submission_id", submissionID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": contractID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("attach submission: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return contract.ErrContractNotFound
	}
	return nil
}

func (r *PgContractRepo) DeleteContract(ctx context.Context, contractID string) error {
	query, args, err := r.builder.Delete("contracts").
		Where(squirrel.Eq{"id": contractID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("delete contract: %w", err)
	}
	return nil
}

func (r *PgContractRepo) SetESignStatusByTemplate(ctx context.Context, templateID string, status contract.ESignStatus, at time.Time) (contract.Contract, error) {
	query, args, err := r.builder.Update("contracts").
		Set("e_sign_status", status).
		Set("updated_at", at).
		Where(squirrel.Eq{"docuseal_template_id": templateID}).
		Suffix("RETURNING id, customer_id, docuseal_template_id, e_sign_status, updated_at").
		ToSql()
	if err != nil {
		return contract.Contract{}, fmt.Errorf("build update query: %w", err)
	}

	var c contract.Contract
	var rawStatus string
	err = r.db.QueryRow(ctx, query, args...).Scan(&c.ID, &c.CustomerID, &c.DocusealTemplateID, &rawStatus, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return contract.Contract{}, contract.ErrContractNotFound
	}
	if err != nil {
		return contract.Contract{}, fmt.Errorf("update contract e-sign status: %w", err)
	}

	c.ESignStatus = contract.ESignStatus(rawStatus)
	return c, nil
}
