package storage

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ledgerview/internal/core"
)

func newTestRepo(t *testing.T) (*SQLiteRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger", "transaction.db")
	repo, err := NewSQLiteRepository(path, DefaultTable)
	if err != nil {
		t.Fatalf("NewSQLiteRepository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo, path
}

func TestAppendAndLoad(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	in := []core.Transaction{
		{Date: core.NewDate(2024, 1, 1), Description: "DEBIT CARD PURCHASE 123 STARBUCKS", Debit: 50},
		{Date: core.NewDate(2024, 1, 2), Description: "PAYROLL", Credit: 100},
	}
	for i, tx := range in {
		num, err := repo.Append(ctx, tx)
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
		if num != int64(i+1) {
			t.Fatalf("append %d returned num %d", i, num)
		}
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(got))
	}
	if got[0].Num != 1 || !got[0].Date.Equal(in[0].Date.Time) || got[0].Debit != 50 || got[0].Net() != -50 {
		t.Fatalf("unexpected first row %+v", got[0])
	}
	if got[1].Description != "PAYROLL" || got[1].Credit != 100 {
		t.Fatalf("unexpected second row %+v", got[1])
	}
}

func TestLoadTreatsNullsAsZero(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.db.ExecContext(ctx,
		`INSERT INTO TRANSACTIONS (num, date, description, credit, debit) VALUES (5, '2024-02-03', NULL, NULL, 7.5), (2, '20240201', 'first', 3, NULL)`); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 || got[0].Num != 2 || got[1].Num != 5 {
		t.Fatalf("rows not ordered by num: %+v", got)
	}
	if got[0].Debit != 0 || got[1].Credit != 0 || got[1].Description != "" {
		t.Fatalf("nulls not read as zero: %+v", got)
	}
}

func TestLoadMalformedDate(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	if _, err := repo.db.ExecContext(ctx, `INSERT INTO TRANSACTIONS (date, credit) VALUES ('garbage', 1)`); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := repo.Load(ctx); !errors.Is(err, core.ErrMalformedDate) {
		t.Fatalf("expected ErrMalformedDate, got %v", err)
	}
}

func TestAppendRejectsInvalid(t *testing.T) {
	repo, _ := newTestRepo(t)
	_, err := repo.Append(context.Background(), core.Transaction{Date: core.NewDate(2024, 1, 1), Description: "x", Debit: -1})
	if !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestLoaderReadsMigratedStore(t *testing.T) {
	repo, path := newTestRepo(t)
	if _, err := repo.Append(context.Background(), core.Transaction{Date: core.NewDate(2024, 1, 1), Description: "x", Credit: 1}); err != nil {
		t.Fatalf("append: %v", err)
	}

	l := &Loader{Path: path, Table: DefaultTable}
	got, err := l.Load(context.Background())
	if err != nil || len(got) != 1 {
		t.Fatalf("Loader.Load = %v, %v", got, err)
	}
}

func TestLoaderDoesNotMigrate(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "checking.db")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	for _, stmt := range []string{
		`CREATE TABLE checking (num INTEGER PRIMARY KEY, date TEXT, description TEXT, credit REAL, debit REAL)`,
		`INSERT INTO checking VALUES (1, '20240101', 'PAYROLL', 100, NULL)`,
	} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	got, err := (&Loader{Path: path, Table: "checking"}).Load(ctx)
	if err != nil || len(got) != 1 || got[0].Credit != 100 {
		t.Fatalf("Loader.Load = %+v, %v", got, err)
	}

	rows, err := db.QueryContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`)
	if err != nil {
		t.Fatal(err)
	}
	defer rows.Close()
	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			t.Fatal(err)
		}
		tables = append(tables, name)
	}
	if len(tables) != 1 || tables[0] != "checking" {
		t.Fatalf("read created tables %v, want only [checking]", tables)
	}
}

func TestLoaderMissingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.db")
	if _, err := (&Loader{Path: path, Table: DefaultTable}).Load(context.Background()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load created %s", path)
	}
}

func TestLogsUnderStorageComponent(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	repo, _ := newTestRepo(t)
	if _, err := repo.Append(context.Background(), core.Transaction{Date: core.NewDate(2024, 1, 1), Description: "x", Credit: 1}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := repo.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"component=storage", "num=1", "transactions=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestValidateTable(t *testing.T) {
	for _, ok := range []string{"TRANSACTIONS", "ledger_2024", "_t"} {
		if err := ValidateTable(ok); err != nil {
			t.Fatalf("%q: unexpected error %v", ok, err)
		}
	}
	for _, bad := range []string{"", "1abc", "t; DROP TABLE x", "a.b", "a b"} {
		if err := ValidateTable(bad); !errors.Is(err, ErrInvalidTable) {
			t.Fatalf("%q: expected ErrInvalidTable, got %v", bad, err)
		}
	}
	if _, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "x.db"), "bad name"); !errors.Is(err, ErrInvalidTable) {
		t.Fatalf("expected ErrInvalidTable, got %v", err)
	}
}
