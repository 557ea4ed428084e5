// Package memory is an in-process transaction store, seeded from a CSV file
// with the header num,date,description,credit,debit.
package memory

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"ledgerview/internal/core"
	"ledgerview/internal/ledger"
)

var (
	_ ledger.Loader   = (*Store)(nil)
	_ ledger.Appender = (*Store)(nil)
)

type Store struct {
	mu    sync.Mutex
	items []core.Transaction
	next  int64
}

// New returns a store holding txs. Transactions with a zero Num are numbered
// after the highest existing one.
func New(txs ...core.Transaction) *Store {
	s := &Store{}
	for _, tx := range txs {
		if tx.Num > s.next {
			s.next = tx.Num
		}
	}
	for _, tx := range txs {
		if tx.Num == 0 {
			s.next++
			tx.Num = s.next
		}
		s.items = append(s.items, tx)
	}
	return s
}

// NewFromFile seeds a store from a CSV file. A missing file yields an empty
// store.
func NewFromFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	txs, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}
	return New(txs...), nil
}

// ReadCSV parses rows keyed by a header line. Columns may appear in any
// order; num is optional.
func ReadCSV(r io.Reader) ([]core.Transaction, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := map[string]int{}
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := cols["date"]; !ok {
		return nil, fmt.Errorf("missing date column in header %v", header)
	}

	get := func(rec []string, name string) string {
		if i, ok := cols[name]; ok && i < len(rec) {
			return rec[i]
		}
		return ""
	}

	var out []core.Transaction
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		tx, err := parseRecord(get, rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, tx)
	}
	return out, nil
}

func parseRecord(get func([]string, string) string, rec []string) (core.Transaction, error) {
	var tx core.Transaction
	if raw := strings.TrimSpace(get(rec, "num")); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return tx, fmt.Errorf("invalid num %q", raw)
		}
		tx.Num = n
	}
	d, err := core.ParseDate(get(rec, "date"))
	if err != nil {
		return tx, err
	}
	tx.Date = d
	tx.Description = get(rec, "description")
	if tx.Credit, err = core.ParseAmount(get(rec, "credit")); err != nil {
		return tx, fmt.Errorf("credit: %w", err)
	}
	if tx.Debit, err = core.ParseAmount(get(rec, "debit")); err != nil {
		return tx, fmt.Errorf("debit: %w", err)
	}
	return tx, nil
}

// Load returns a copy of the stored transactions ordered by Num.
func (s *Store) Load(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]core.Transaction(nil), s.items...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Num < out[j].Num })
	return out, nil
}

// Append stores the transaction under the next sequence number.
func (s *Store) Append(_ context.Context, tx core.Transaction) (int64, error) {
	if err := tx.Validate(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	tx.Num = s.next
	s.items = append(s.items, tx)
	return tx.Num, nil
}
