// Package db bootstraps the todo database: it ensures the database file
// exists, opens the connection pool and applies the schema.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultPath is the database location used when nothing else is configured.
const DefaultPath = "sqlite.db"

// EnsureFile creates the database file if it is missing.
// An already-existing file counts as success; created reports which case occurred.
func EnsureFile(path string) (created bool, err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return false, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to create database %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return true, fmt.Errorf("failed to close database %s: %w", path, err)
	}
	return true, nil
}

// Open ensures the database file exists, opens a connection pool and
// initializes the schema. The caller owns the returned *sql.DB.
func Open(ctx context.Context, path string, logger *log.Logger) (*sql.DB, error) {
	created, err := EnsureFile(path)
	if err != nil {
		return nil, err
	}
	if created {
		logger.Info("creating database", "path", path)
	} else {
		logger.Debug("database already exists", "path", path)
	}

	database, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := database.PingContext(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := InitSchema(ctx, database); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return database, nil
}

// InitSchema applies SchemaSQL. Safe to call on an initialized database.
func InitSchema(ctx context.Context, database *sql.DB) error {
	if _, err := database.ExecContext(ctx, SchemaSQL); err != nil {
		return fmt.Errorf("failed to create todo table: %w", err)
	}
	return nil
}
