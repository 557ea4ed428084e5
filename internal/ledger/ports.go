// Package ledger defines the ports between the report pipeline and the
// stores that hold transactions.
package ledger

import (
	"context"

	"ledgerview/internal/core"
)

type (
	// Loader returns every stored transaction ordered by sequence number,
	// with null amounts read as zero.
	Loader interface {
		Load(ctx context.Context) ([]core.Transaction, error)
	}

	// Appender stores a new transaction and returns its sequence number.
	Appender interface {
		Append(ctx context.Context, tx core.Transaction) (int64, error)
	}
)
