package memory

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ledgerview/internal/core"
)

func TestStoreAppendAndLoad(t *testing.T) {
	s := New(core.Transaction{Num: 3, Date: core.NewDate(2024, 1, 3), Credit: 1})
	num, err := s.Append(context.Background(), core.Transaction{Date: core.NewDate(2024, 1, 4), Description: "t", Debit: 2})
	if err != nil || num != 4 {
		t.Fatalf("unexpected append: num=%d err=%v", num, err)
	}
	if _, err := s.Append(context.Background(), core.Transaction{Date: core.NewDate(2024, 1, 4)}); !errors.Is(err, core.ErrEmptyDescription) {
		t.Fatalf("expected ErrEmptyDescription, got %v", err)
	}

	txs, _ := s.Load(context.Background())
	if len(txs) != 2 || txs[0].Num != 3 || txs[1].Num != 4 {
		t.Fatalf("unexpected load %+v", txs)
	}
}

func TestReadCSV(t *testing.T) {
	in := `date,description,credit,debit,num
2024-01-02,PAYROLL,100,,2
20240101,DEBIT CARD PURCHASE 123 STARBUCKS,,50,1
`
	txs, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	s := New(txs...)
	got, _ := s.Load(context.Background())
	if len(got) != 2 || got[0].Num != 1 || got[0].Debit != 50 || got[1].Credit != 100 {
		t.Fatalf("unexpected rows %+v", got)
	}

	if _, err := ReadCSV(strings.NewReader("date,credit\nnot-a-date,1\n")); !errors.Is(err, core.ErrMalformedDate) {
		t.Fatalf("expected ErrMalformedDate, got %v", err)
	}
	if _, err := ReadCSV(strings.NewReader("description\nx\n")); err == nil {
		t.Fatalf("expected missing date column error")
	}
}

func TestNewFromFile(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFromFile(filepath.Join(dir, "missing.csv"))
	if err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if txs, _ := s.Load(context.Background()); len(txs) != 0 {
		t.Fatalf("expected empty store, got %v", txs)
	}

	path := filepath.Join(dir, "seed.csv")
	if err := os.WriteFile(path, []byte("date,description,credit,debit\n2024-01-01,a,1,0\n2024-01-01,b,0,2\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, err = NewFromFile(path)
	if err != nil {
		t.Fatalf("NewFromFile: %v", err)
	}
	txs, _ := s.Load(context.Background())
	if len(txs) != 2 || txs[0].Num != 1 || txs[1].Num != 2 {
		t.Fatalf("unexpected seeded rows %+v", txs)
	}
}
