package backend

import (
	"context"

	"ledgerview/internal/ledger"
)

// CleanupFunc releases resources held by a loader.
type CleanupFunc func() error

// Result contains the loader instance and optional cleanup function
type Result struct {
	Loader  ledger.Loader
	Cleanup CleanupFunc
}

// Factory creates loaders based on configuration
type Factory interface {
	CreateLoader(ctx context.Context, config Config) (*Result, error)
}

// Config holds configuration for loader creation
type Config struct {
	Type BackendType

	// Shared by sqlite and postgres
	TableName string

	// SQLite specific
	SQLiteDBPath string

	// Postgres specific
	PostgresDSN string

	// Google Sheets specific
	GoogleSpreadsheetID string
	GoogleSheetRange    string

	// Memory backend specific
	SeedFile string
}

// BackendType represents the type of backend
type BackendType string

const (
	SQLiteBackend   BackendType = "sqlite"
	PostgresBackend BackendType = "postgres"
	SheetsBackend   BackendType = "sheets"
	MemoryBackend   BackendType = "memory"
)

// String implements fmt.Stringer
func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is valid
func (bt BackendType) IsValid() bool {
	switch bt {
	case SQLiteBackend, PostgresBackend, SheetsBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
