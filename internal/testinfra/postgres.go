//go:build integration
// +build integration

package testinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"ispbilling/internal/app"
	"ispbilling/pkg/postgres"
)

const postgresImage = "postgres:17-alpine"

type PostgresContainer struct {
	Container testcontainers.Container
	Pool      *postgres.Postgres
	DSN       string
}

func NewPostgres(ctx context.Context) (*PostgresContainer, error) {
	dsnFor := func(host string, port nat.Port) string {
		return fmt.Sprintf("postgres://postgres:secret@%s:%s/billing_test?sslmode=disable", host, port.Port())
	}

	req := testcontainers.ContainerRequest{
		Image: postgresImage,
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "secret",
			"POSTGRES_DB":       "billing_test",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForSQL("5432/tcp", "postgres", dsnFor).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("container port: %w", err)
	}
	dsn := dsnFor(host, port)

	pool, err := postgres.New(dsn, postgres.MaxPoolSize(10))
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	if err := app.ApplyMigrations(dsn, app.MIGRATION_FS); err != nil {
		pool.Close()
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &PostgresContainer{Container: container, Pool: pool, DSN: dsn}, nil
}

func (c *PostgresContainer) Cleanup(ctx context.Context) {
	if c.Pool != nil {
		c.Pool.Close()
	}
	if c.Container != nil {
		_ = c.Container.Terminate(ctx)
	}
}

// Truncate clears all tables between tests.
func (c *PostgresContainer) Truncate(ctx context.Context) error {
	_, err := c.Pool.Pool.Exec(ctx,
		"TRUNCATE TABLE settlements, invoices, webhook_events, contracts CASCADE")
	return err
}
