package worker

import (
	"context"
	"fmt"
	"log/slog"

	"ledgerview/internal/amqp"
	"ledgerview/internal/ledger"
	applog "ledgerview/internal/log"
)

// IngestWorker appends transactions arriving over AMQP to the ledger store.
type IngestWorker struct {
	store  ledger.Appender
	logger *slog.Logger
}

func NewIngestWorker(store ledger.Appender, logger *slog.Logger) *IngestWorker {
	if logger == nil {
		logger = slog.Default()
	}
	return &IngestWorker{store: store, logger: logger}
}

// HandleTransactionMessage validates msg and appends it. Malformed messages
// are marked amqp.ErrDiscard; store failures are returned as-is so the
// message is redelivered.
func (w *IngestWorker) HandleTransactionMessage(ctx context.Context, msg *amqp.TransactionMessage) error {
	tx, err := msg.Transaction()
	if err != nil {
		w.logger.WarnContext(ctx, "Rejecting invalid transaction message",
			"id", msg.ID,
			"date", msg.Date,
			"error", err)
		return fmt.Errorf("%w: message %s: %v", amqp.ErrDiscard, msg.ID, err)
	}

	num, err := w.store.Append(ctx, tx)
	if err != nil {
		return fmt.Errorf("append transaction %s: %w", msg.ID, err)
	}

	w.logger.InfoContext(ctx, "Ingested transaction",
		"id", msg.ID,
		applog.FieldNum, num,
		"date", tx.Date.String(),
		"credit", tx.Credit,
		"debit", tx.Debit)
	return nil
}
