// Package backend selects and constructs the key-value substrate.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"expenseflow/internal/kv"
)

// Type identifies a substrate implementation.
type Type string

const (
	Memory Type = "memory"
	SQLite Type = "sqlite"
)

// String implements fmt.Stringer
func (t Type) String() string { return string(t) }

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case Memory, SQLite:
		return true
	default:
		return false
	}
}

// Config holds what the factory needs to build a substrate.
type Config struct {
	Type         Type
	SQLiteDBPath string
}

// CleanupFunc releases a substrate's resources.
type CleanupFunc func() error

// Result carries the constructed store plus its cleanup.
type Result struct {
	Store   kv.Store
	Cleanup CleanupFunc
}

// CreateStore builds the substrate described by config.
func CreateStore(_ context.Context, config Config) (*Result, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case SQLite:
		store, err := kv.NewSQLite(config.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		slog.Info("Initialized sqlite backend", "db_path", config.SQLiteDBPath)
		return &Result{Store: store, Cleanup: store.Close}, nil
	case Memory:
		store := kv.NewMemory()
		slog.Info("Initialized memory backend")
		return &Result{Store: store, Cleanup: store.Close}, nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}
