// Package postgres loads transactions from a Postgres table with the same
// column contract as the SQLite store.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"ledgerview/internal/core"
	"ledgerview/internal/ledger"
	"ledgerview/internal/storage"

	_ "github.com/lib/pq"
)

var _ ledger.Loader = (*Loader)(nil)

type Loader struct {
	dsn   string
	table string
}

func NewLoader(dsn, table string) (*Loader, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres dsn is required")
	}
	if err := storage.ValidateTable(table); err != nil {
		return nil, err
	}
	return &Loader{dsn: dsn, table: table}, nil
}

// Load opens a connection, reads every row ordered by num and closes the
// connection before returning.
func (l *Loader) Load(ctx context.Context) ([]core.Transaction, error) {
	db, err := sql.Open("postgres", l.dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, storage.SelectAllQuery(l.table))
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	return storage.ScanTransactions(rows)
}
