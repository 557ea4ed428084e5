package backend

import (
	"context"
	"fmt"
	"log/slog"

	"ledgerview/internal/sheets"
	"ledgerview/internal/storage"
	"ledgerview/internal/storage/memory"
	"ledgerview/internal/storage/postgres"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{
		logger: logger,
	}
}

// CreateLoader implements Factory.CreateLoader
func (f *DefaultFactory) CreateLoader(ctx context.Context, config Config) (*Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case SQLiteBackend:
		return f.createSQLiteLoader(config)
	case PostgresBackend:
		return f.createPostgresLoader(config)
	case SheetsBackend:
		return f.createSheetsLoader(ctx, config)
	case MemoryBackend:
		return f.createMemoryLoader(config)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createSQLiteLoader(config Config) (*Result, error) {
	// Each Load opens and closes its own connection.
	loader := &storage.Loader{Path: config.SQLiteDBPath, Table: config.TableName}

	f.logger.Info("Initialized SQLite backend",
		"db_path", config.SQLiteDBPath,
		"table", config.TableName)

	return &Result{Loader: loader}, nil
}

func (f *DefaultFactory) createPostgresLoader(config Config) (*Result, error) {
	loader, err := postgres.NewLoader(config.PostgresDSN, config.TableName)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Postgres loader: %w", err)
	}

	f.logger.Info("Initialized Postgres backend", "table", config.TableName)

	return &Result{Loader: loader}, nil
}

func (f *DefaultFactory) createSheetsLoader(ctx context.Context, config Config) (*Result, error) {
	cli, err := sheets.NewClient(ctx, config.GoogleSpreadsheetID, config.GoogleSheetRange)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Google Sheets client: %w", err)
	}

	f.logger.Info("Initialized Google Sheets backend", "range", config.GoogleSheetRange)

	return &Result{Loader: cli}, nil
}

func (f *DefaultFactory) createMemoryLoader(config Config) (*Result, error) {
	store, err := memory.NewFromFile(config.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("failed to seed memory backend: %w", err)
	}

	f.logger.Info("Initialized memory backend", "seed_file", config.SeedFile)

	return &Result{Loader: store}, nil
}
