package amqp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ledgerview/internal/core"
)

// TransactionMessage carries one bank transaction to the ingest worker.
// Date is "YYYY-MM-DD"; ID is a uuid assigned by the publisher.
type TransactionMessage struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Credit      float64   `json:"credit"`
	Debit       float64   `json:"debit"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewTransactionMessage creates a message for tx with a fresh id
func NewTransactionMessage(tx core.Transaction) *TransactionMessage {
	return &TransactionMessage{
		ID:          uuid.NewString(),
		Date:        tx.Date.String(),
		Description: tx.Description,
		Credit:      tx.Credit,
		Debit:       tx.Debit,
		Timestamp:   time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *TransactionMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// Transaction converts the message back into a validated transaction.
// Num is left zero; the store assigns it.
func (m *TransactionMessage) Transaction() (core.Transaction, error) {
	d, err := core.ParseDate(m.Date)
	if err != nil {
		return core.Transaction{}, err
	}
	tx := core.Transaction{
		Date:        d,
		Description: m.Description,
		Credit:      m.Credit,
		Debit:       m.Debit,
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}
	return tx, nil
}

// TransactionMessageFromJSON creates a message from JSON bytes
func TransactionMessageFromJSON(data []byte) (*TransactionMessage, error) {
	var msg TransactionMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(msg.ID); err != nil {
		return nil, fmt.Errorf("invalid message id %q: %w", msg.ID, err)
	}
	return &msg, nil
}
