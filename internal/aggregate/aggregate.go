// Package aggregate buckets transactions by truncated date.
package aggregate

import "ledgerview/internal/core"

// Bucket sums one truncated-date group. Key is the truncated date rendered
// at the bucket's precision ("2024-01" for months).
type Bucket struct {
	Key    string
	Start  core.Date
	Debit  float64
	Credit float64
	Net    float64
}

// Buckets folds txs (sorted by date ascending) into one bucket per run of
// equal truncated dates, in input order. Sums are rounded to cents and Net is
// derived from the rounded sums. Empty input yields no buckets.
func Buckets(txs []core.Transaction, p core.Precision) []Bucket {
	out := make([]Bucket, 0)
	if len(txs) == 0 {
		return out
	}

	cur := open(txs[0], p)
	for _, tx := range txs[1:] {
		key := tx.Date.Key(p)
		if key == cur.Key {
			cur.Debit += tx.Debit
			cur.Credit += tx.Credit
			continue
		}
		out = append(out, cur.close())
		cur = open(tx, p)
	}
	// the last bucket has no following date change to flush it
	return append(out, cur.close())
}

// Monthly is Buckets at month precision.
func Monthly(txs []core.Transaction) []Bucket {
	return Buckets(txs, core.Month)
}

func open(tx core.Transaction, p core.Precision) Bucket {
	return Bucket{
		Key:    tx.Date.Key(p),
		Start:  tx.Date.Truncate(p),
		Debit:  tx.Debit,
		Credit: tx.Credit,
	}
}

func (b Bucket) close() Bucket {
	b.Debit = core.RoundCurrency(b.Debit)
	b.Credit = core.RoundCurrency(b.Credit)
	b.Net = core.RoundCurrency(b.Credit - b.Debit)
	return b
}
