package balance

import (
	"math"
	"testing"

	"ledgerview/internal/core"
)

func tx(credit, debit float64) core.Transaction {
	return core.Transaction{Date: core.NewDate(2024, 1, 1), Description: "x", Credit: credit, Debit: debit}
}

func TestReconstructExample(t *testing.T) {
	txs := []core.Transaction{
		{Date: core.NewDate(2024, 1, 1), Debit: 50},
		{Date: core.NewDate(2024, 1, 2), Credit: 100},
	}
	start, running := Reconstruct(100, txs)
	if start != 50 {
		t.Fatalf("start = %v, want 50", start)
	}
	if len(running) != 2 || running[0] != 0 || running[1] != 100 {
		t.Fatalf("running = %v, want [0 100]", running)
	}
}

func TestReconstructEmpty(t *testing.T) {
	start, running := Reconstruct(3133.91, nil)
	if start != 3133.91 {
		t.Fatalf("start = %v, want anchor", start)
	}
	if len(running) != 0 {
		t.Fatalf("running = %v, want empty", running)
	}
}

func TestReconstructAnchorsLastBalance(t *testing.T) {
	txs := []core.Transaction{
		tx(0, 12.34), tx(0.1, 0), tx(0.2, 0), tx(1000, 0), tx(0, 999.99), tx(0, 0.07),
	}
	const current = 3133.91
	start, running := Reconstruct(current, txs)

	var sum float64
	for _, t := range txs {
		sum += t.Net()
	}
	if math.Abs(start+sum-current) > 0.01 {
		t.Fatalf("start %v + sum %v != %v", start, sum, current)
	}
	if len(running) != len(txs) {
		t.Fatalf("len(running) = %d, want %d", len(running), len(txs))
	}
	if running[len(running)-1] != current {
		t.Fatalf("last running = %v, want %v", running[len(running)-1], current)
	}
}

func TestStartingIgnoresOrder(t *testing.T) {
	txs := []core.Transaction{tx(5, 0), tx(0, 2)}
	a := Starting(10, txs)
	b := Starting(10, []core.Transaction{txs[1], txs[0]})
	if a != b || a != 7 {
		t.Fatalf("starting = %v/%v, want 7", a, b)
	}
}
