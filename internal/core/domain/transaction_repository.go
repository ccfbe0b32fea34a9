package domain

import "context"

// TransactionRepository stores the audit trail of accepted claim
// transactions.
type TransactionRepository interface {
	AddTransaction(ctx context.Context, record TransactionRecord) error
	GetTransaction(ctx context.Context, txHash string) (*TransactionRecord, error)
	GetAllTransactions(ctx context.Context) ([]TransactionRecord, error)
	UpdateTransaction(
		ctx context.Context,
		txHash string,
		updateFn func(r *TransactionRecord) (*TransactionRecord, error),
	) error
}
