// Package timeline spreads same-day transactions across synthetic hours.
//
// Stored dates carry no time of day, so several transactions on one day
// would otherwise share an x position when plotted. Each maximal run of k
// same-day transactions gets hours floor(i/(k+1)*24) for i = 1..k, which are
// distinct, strictly increasing and inside [0,24). The hours are not real
// times; only the relative order is meaningful.
package timeline

import "ledgerview/internal/core"

// Disambiguate returns one slot per transaction, in input order. txs must be
// oldest first.
func Disambiguate(txs []core.Transaction) []core.Slot {
	out := make([]core.Slot, 0, len(txs))
	for start := 0; start < len(txs); {
		end := start + 1
		for end < len(txs) && txs[end].Date.SameDay(txs[start].Date) {
			end++
		}
		out = append(out, spread(txs[start].Date, end-start)...)
		start = end
	}
	return out
}

// Hours returns the k offsets assigned to a run of length k.
func Hours(k int) []int {
	denom := k + 1
	hours := make([]int, k)
	for i := 1; i < denom; i++ {
		hours[i-1] = i * 24 / denom
	}
	return hours
}

func spread(d core.Date, k int) []core.Slot {
	slots := make([]core.Slot, k)
	for i, h := range Hours(k) {
		slots[i] = core.Slot{Date: d, Hour: h}
	}
	return slots
}
