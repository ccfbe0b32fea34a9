package dbbadger

import (
	"context"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/masp-network/claimd/internal/core/domain"
)

type transactionRepositoryImpl struct {
	store *badgerhold.Store
}

// NewTransactionRepositoryImpl returns the badger backed transaction audit
// trail.
func NewTransactionRepositoryImpl(store *badgerhold.Store) domain.TransactionRepository {
	return transactionRepositoryImpl{store: store}
}

func (t transactionRepositoryImpl) AddTransaction(
	ctx context.Context, record domain.TransactionRecord,
) error {
	tx, err := getTx(ctx)
	if err != nil {
		return err
	}
	return t.store.TxInsert(tx, record.TxHash, &record)
}

func (t transactionRepositoryImpl) GetTransaction(
	ctx context.Context, txHash string,
) (*domain.TransactionRecord, error) {
	tx, err := getTx(ctx)
	if err != nil {
		return nil, err
	}
	return t.getTransaction(tx, txHash)
}

func (t transactionRepositoryImpl) GetAllTransactions(
	ctx context.Context,
) ([]domain.TransactionRecord, error) {
	tx, err := getTx(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]domain.TransactionRecord, 0)
	if err := t.store.TxFind(tx, &records, nil); err != nil {
		return nil, err
	}
	return records, nil
}

func (t transactionRepositoryImpl) UpdateTransaction(
	ctx context.Context,
	txHash string,
	updateFn func(r *domain.TransactionRecord) (*domain.TransactionRecord, error),
) error {
	tx, err := getTx(ctx)
	if err != nil {
		return err
	}

	current, err := t.getTransaction(tx, txHash)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrTransactionNotFound
	}

	updated, err := updateFn(current)
	if err != nil {
		return err
	}
	return t.store.TxUpdate(tx, updated.TxHash, *updated)
}

func (t transactionRepositoryImpl) getTransaction(
	tx *badger.Txn, txHash string,
) (*domain.TransactionRecord, error) {
	var record domain.TransactionRecord
	if err := t.store.TxGet(tx, txHash, &record); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}
