// Package report runs the load-and-derive pipeline: it reads the ledger
// once and computes every derived view from that snapshot.
package report

import (
	"context"
	"fmt"
	"log/slog"

	"ledgerview/internal/aggregate"
	"ledgerview/internal/balance"
	"ledgerview/internal/core"
	"ledgerview/internal/ledger"
	"ledgerview/internal/timeline"
)

// Report holds every derived view of one ledger snapshot. Nothing in it is
// persisted; each Build starts from a fresh load.
type Report struct {
	Anchor  float64
	Start   float64
	Rows    []core.Row
	Monthly []aggregate.Bucket
}

// Transactions returns the underlying transactions, oldest first.
func (r Report) Transactions() []core.Transaction {
	out := make([]core.Transaction, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row.Transaction
	}
	return out
}

// Buckets re-aggregates the snapshot at precision p.
func (r Report) Buckets(p core.Precision) []aggregate.Bucket {
	if p == core.Month {
		return r.Monthly
	}
	return aggregate.Buckets(r.Transactions(), p)
}

// Builder loads transactions and derives a Report anchored to a known
// current balance.
type Builder struct {
	loader ledger.Loader
	anchor float64
	logger *slog.Logger
}

func NewBuilder(loader ledger.Loader, anchor float64, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{loader: loader, anchor: anchor, logger: logger}
}

// Build loads the ledger and derives the report.
func (b *Builder) Build(ctx context.Context) (Report, error) {
	txs, err := b.loader.Load(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("load transactions: %w", err)
	}
	rep := Derive(txs, b.anchor)
	b.logger.DebugContext(ctx, "Report built",
		"transactions", len(txs),
		"buckets", len(rep.Monthly),
		"start_balance", rep.Start)
	return rep, nil
}

// Derive computes balances, slots and monthly buckets for txs (oldest
// first) without touching any store.
func Derive(txs []core.Transaction, anchor float64) Report {
	start, running := balance.Reconstruct(anchor, txs)
	slots := timeline.Disambiguate(txs)

	rows := make([]core.Row, len(txs))
	for i, tx := range txs {
		rows[i] = core.Row{Transaction: tx, Balance: running[i], Slot: slots[i]}
	}
	return Report{
		Anchor:  anchor,
		Start:   start,
		Rows:    rows,
		Monthly: aggregate.Monthly(txs),
	}
}
