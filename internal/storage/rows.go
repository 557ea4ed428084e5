package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"ledgerview/internal/core"
)

// DefaultTable is the table created by the bundled migrations.
const DefaultTable = "TRANSACTIONS"

var (
	ErrInvalidTable = errors.New("invalid table name")

	identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// ValidateTable rejects anything that is not a bare SQL identifier, since
// table names cannot be bound as query parameters.
func ValidateTable(table string) error {
	if !identRe.MatchString(table) {
		return fmt.Errorf("%w: %q", ErrInvalidTable, table)
	}
	return nil
}

// SelectAllQuery reads every row of table in sequence order with null
// amounts and descriptions read as zero values.
func SelectAllQuery(table string) string {
	return fmt.Sprintf(
		"SELECT num, date, COALESCE(description, ''), COALESCE(credit, 0), COALESCE(debit, 0) FROM %s ORDER BY num",
		table)
}

// ScanTransactions drains rows produced by SelectAllQuery. A row whose date
// cannot be parsed fails the whole scan.
func ScanTransactions(rows *sql.Rows) ([]core.Transaction, error) {
	out := make([]core.Transaction, 0)
	for rows.Next() {
		var (
			tx      core.Transaction
			rawDate string
		)
		if err := rows.Scan(&tx.Num, &rawDate, &tx.Description, &tx.Credit, &tx.Debit); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		d, err := core.ParseDate(rawDate)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", tx.Num, err)
		}
		tx.Date = d
		out = append(out, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}
