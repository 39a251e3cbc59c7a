package memory

import (
	"io"

	"github.com/bankoffice/bankoffice/internal/adapter/repository/flatfile"
	"github.com/bankoffice/bankoffice/internal/domain"
)

// TransactionLog is the ordered buffer of transactions committed during the
// active session. Insertion order is commit order and is preserved on flush.
type TransactionLog struct {
	transactions []domain.Transaction
}

// NewTransactionLog returns an empty log.
func NewTransactionLog() *TransactionLog {
	return &TransactionLog{}
}

// Append records a committed transaction.
func (l *TransactionLog) Append(t domain.Transaction) {
	l.transactions = append(l.transactions, t)
}

// All returns a copy of the committed transactions in insertion order.
func (l *TransactionLog) All() []domain.Transaction {
	out := make([]domain.Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// Flush writes the whole log plus the terminator record to w. The log is kept
// on failure so the caller can retry.
func (l *TransactionLog) Flush(w io.Writer) error {
	return flatfile.WriteJournal(w, l.transactions)
}

// Clear empties the log.
func (l *TransactionLog) Clear() {
	l.transactions = l.transactions[:0]
}

// Len returns the number of buffered transactions.
func (l *TransactionLog) Len() int {
	return len(l.transactions)
}
