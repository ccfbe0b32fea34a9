package inmemory

import (
	"context"
	"sync"

	"github.com/masp-network/claimd/internal/core/domain"
)

type transactionRepositoryImpl struct {
	transactions map[string]domain.TransactionRecord
	lock         *sync.RWMutex
}

// NewTransactionRepositoryImpl returns a volatile transaction audit trail.
func NewTransactionRepositoryImpl() domain.TransactionRepository {
	return &transactionRepositoryImpl{
		transactions: map[string]domain.TransactionRecord{},
		lock:         &sync.RWMutex{},
	}
}

func (t *transactionRepositoryImpl) AddTransaction(
	_ context.Context, record domain.TransactionRecord,
) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.transactions[record.TxHash] = record
	return nil
}

func (t *transactionRepositoryImpl) GetTransaction(
	_ context.Context, txHash string,
) (*domain.TransactionRecord, error) {
	t.lock.RLock()
	defer t.lock.RUnlock()

	record, ok := t.transactions[txHash]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (t *transactionRepositoryImpl) GetAllTransactions(
	_ context.Context,
) ([]domain.TransactionRecord, error) {
	t.lock.RLock()
	defer t.lock.RUnlock()

	records := make([]domain.TransactionRecord, 0, len(t.transactions))
	for _, r := range t.transactions {
		records = append(records, r)
	}
	return records, nil
}

func (t *transactionRepositoryImpl) UpdateTransaction(
	_ context.Context,
	txHash string,
	updateFn func(r *domain.TransactionRecord) (*domain.TransactionRecord, error),
) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	record, ok := t.transactions[txHash]
	if !ok {
		return domain.ErrTransactionNotFound
	}
	updated, err := updateFn(&record)
	if err != nil {
		return err
	}
	t.transactions[txHash] = *updated
	return nil
}
