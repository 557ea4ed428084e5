// Package balance reconstructs running account balances from a ledger that
// only records per-transaction credits and debits.
package balance

import "ledgerview/internal/core"

// Starting returns the balance that existed before the earliest transaction,
// given the known balance after the latest one. txs may be in any order since
// only their nets are subtracted; callers normally pass them newest first.
func Starting(current float64, txs []core.Transaction) float64 {
	for _, tx := range txs {
		current -= tx.Net()
	}
	return core.RoundCurrency(current)
}

// Running returns the balance after each transaction, oldest first. The
// result has the same length as txs.
func Running(start float64, txs []core.Transaction) []float64 {
	out := make([]float64, len(txs))
	acc := start
	for i, tx := range txs {
		acc += tx.Net()
		out[i] = core.RoundCurrency(acc)
	}
	return out
}

// Reconstruct anchors txs (oldest first) to the known current balance and
// returns the starting balance plus the forward running series.
func Reconstruct(current float64, txs []core.Transaction) (float64, []float64) {
	newestFirst := make([]core.Transaction, len(txs))
	for i, tx := range txs {
		newestFirst[len(txs)-1-i] = tx
	}
	start := Starting(current, newestFirst)
	return start, Running(start, txs)
}
