// Package postgres wraps a pgx connection pool together with a squirrel
// statement builder configured for PostgreSQL placeholders.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	defaultMaxPoolSize  = 10
	defaultConnTimeout  = 20 * time.Second
	uniqueViolationCode = "23505"
)

// Executor is the subset of pgx shared by pools, transactions and pgxmock.
type Executor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Postgres struct {
	maxPoolSize int
	connTimeout time.Duration

	Builder squirrel.StatementBuilderType
	Pool    *pgxpool.Pool
}

type Option func(*Postgres)

func MaxPoolSize(size int) Option {
	return func(p *Postgres) {
		if size > 0 {
			p.maxPoolSize = size
		}
	}
}

func ConnTimeout(timeout time.Duration) Option {
	return func(p *Postgres) {
		p.connTimeout = timeout
	}
}

func New(url string, opts ...Option) (*Postgres, error) {
	pg := &Postgres{
		maxPoolSize: defaultMaxPoolSize,
		connTimeout: defaultConnTimeout,
		Builder:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}

	for _, opt := range opts {
		opt(pg)
	}

	poolConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("postgres - New - pgxpool.ParseConfig: %w", err)
	}
	poolConfig.MaxConns = int32(pg.maxPoolSize)

	ctx, cancel := context.WithTimeout(context.Background(), pg.connTimeout)
	defer cancel()

	pg.Pool, err = pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("postgres - New - pgxpool.NewWithConfig: %w", err)
	}

	if err := pg.Pool.Ping(ctx); err != nil {
		pg.Pool.Close()
		return nil, fmt.Errorf("postgres - New - ping: %w", err)
	}

	return pg, nil
}

// InTransaction runs fn inside a transaction. The error returned by fn is
// returned unchanged; a rollback failure is not reported over it.
func (p *Postgres) InTransaction(ctx context.Context, fn func(tx Executor) error) error {
	tx, err := p.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (p *Postgres) Close() {
	if p.Pool != nil {
		p.Pool.Close()
	}
}

func IsPgErrorUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
