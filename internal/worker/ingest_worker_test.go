package worker

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"ledgerview/internal/amqp"
	"ledgerview/internal/core"
	"ledgerview/internal/storage/memory"
)

type brokenStore struct{}

func (brokenStore) Append(context.Context, core.Transaction) (int64, error) {
	return 0, errors.New("disk full")
}

func TestHandleTransactionMessage(t *testing.T) {
	ctx := context.Background()
	store := memory.New(core.Transaction{
		Num:         1,
		Date:        core.NewDate(2024, 1, 1),
		Description: "OPENING",
		Credit:      100,
	})
	var buf bytes.Buffer
	w := NewIngestWorker(store, slog.New(slog.NewTextHandler(&buf, nil)))

	msg := amqp.NewTransactionMessage(core.Transaction{
		Date:        core.NewDate(2024, 1, 2),
		Description: "GROCERIES",
		Debit:       42.1,
	})
	if err := w.HandleTransactionMessage(ctx, msg); err != nil {
		t.Fatalf("HandleTransactionMessage() error = %v", err)
	}

	txs, err := store.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}
	if got := txs[1]; got.Num != 2 || got.Description != "GROCERIES" || got.Debit != 42.1 {
		t.Fatalf("unexpected appended transaction %+v", got)
	}
	if !strings.Contains(buf.String(), "num=2") {
		t.Errorf("ingest log missing assigned num: %q", buf.String())
	}
}

func TestHandleTransactionMessageInvalid(t *testing.T) {
	w := NewIngestWorker(memory.New(), nil)

	tests := []struct {
		name string
		msg  *amqp.TransactionMessage
	}{
		{"bad date", &amqp.TransactionMessage{ID: "a", Date: "yesterday", Description: "X", Debit: 1}},
		{"empty description", &amqp.TransactionMessage{ID: "b", Date: "2024-01-01", Debit: 1}},
		{"negative amount", &amqp.TransactionMessage{ID: "c", Date: "2024-01-01", Description: "X", Debit: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := w.HandleTransactionMessage(context.Background(), tt.msg)
			if !errors.Is(err, amqp.ErrDiscard) {
				t.Fatalf("error = %v, want ErrDiscard", err)
			}
		})
	}
}

func TestHandleTransactionMessageStoreFailure(t *testing.T) {
	w := NewIngestWorker(brokenStore{}, nil)
	msg := amqp.NewTransactionMessage(core.Transaction{
		Date:        core.NewDate(2024, 1, 2),
		Description: "RENT",
		Debit:       900,
	})
	err := w.HandleTransactionMessage(context.Background(), msg)
	if err == nil || errors.Is(err, amqp.ErrDiscard) {
		t.Fatalf("error = %v, want retryable error", err)
	}
}
