package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"ledgerview/internal/core"
	"ledgerview/internal/ledger"
	applog "ledgerview/internal/log"

	_ "modernc.org/sqlite"
)

var (
	_ ledger.Loader   = (*SQLiteRepository)(nil)
	_ ledger.Appender = (*SQLiteRepository)(nil)
	_ ledger.Loader   = (*Loader)(nil)
)

type SQLiteRepository struct {
	db    *sql.DB
	table string
}

func NewSQLiteRepository(dbPath, table string) (*SQLiteRepository, error) {
	if err := ValidateTable(table); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db, table: table}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Load implements ledger.Loader
func (r *SQLiteRepository) Load(ctx context.Context) ([]core.Transaction, error) {
	return loadAll(ctx, r.db, r.table)
}

func loadAll(ctx context.Context, db *sql.DB, table string) ([]core.Transaction, error) {
	rows, err := db.QueryContext(ctx, SelectAllQuery(table))
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	txs, err := ScanTransactions(rows)
	if err != nil {
		return nil, err
	}

	logger().DebugContext(ctx, "Transactions loaded from SQLite",
		applog.FieldTable, table,
		applog.FieldTransactions, len(txs))
	return txs, nil
}

func logger() *slog.Logger {
	return slog.Default().With(applog.FieldComponent, applog.ComponentStorage)
}

// Append implements ledger.Appender
func (r *SQLiteRepository) Append(ctx context.Context, tx core.Transaction) (int64, error) {
	if err := tx.Validate(); err != nil {
		return 0, fmt.Errorf("validate transaction: %w", err)
	}

	query := fmt.Sprintf("INSERT INTO %s (date, description, credit, debit) VALUES (?, ?, ?, ?)", r.table)
	res, err := r.db.ExecContext(ctx, query,
		tx.Date.Format("20060102"), tx.Description, tx.Credit, tx.Debit)
	if err != nil {
		return 0, fmt.Errorf("insert transaction: %w", err)
	}

	num, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read inserted num: %w", err)
	}

	logger().InfoContext(ctx, "Transaction saved to SQLite",
		applog.FieldNum, num,
		"date", tx.Date.String(),
		"credit", tx.Credit,
		"debit", tx.Debit)

	return num, nil
}

// Loader opens an existing database for a single Load and closes it
// afterwards. It never creates the file or runs migrations; that is left to
// NewSQLiteRepository on the write path.
type Loader struct {
	Path  string
	Table string
}

func (l *Loader) Load(ctx context.Context) ([]core.Transaction, error) {
	if err := ValidateTable(l.Table); err != nil {
		return nil, err
	}
	// sql.Open would create a missing file.
	if _, err := os.Stat(l.Path); err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	db, err := sql.Open("sqlite", l.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	defer db.Close()

	return loadAll(ctx, db, l.Table)
}
