package app

import (
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

// ApplyMigrations brings the schema up to date from migrationFS/migrations.
// DDL goes through a short-lived lib/pq connection, not the pgx pool.
func ApplyMigrations(connStr string, migrationFS fs.FS) error {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer func() { _ = db.Close() }()

	goose.SetBaseFS(migrationFS)
	goose.SetLogger(gooseLogger{})
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	slog.Info("Schema migrated", "version", version)
	return nil
}

// gooseLogger sends goose output through slog.
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...any) {
	slog.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "goose")
}

func (gooseLogger) Fatalf(format string, v ...any) {
	slog.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "goose")
	os.Exit(1)
}
