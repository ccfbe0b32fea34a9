package ports

import (
	"context"

	"github.com/masp-network/claimd/internal/core/domain"
)

// RepoManager gives access to the wallet repositories and to the unit of
// work they share. The persistence layer is the sole writer to stable
// storage: every mutation of a collection goes through a transaction
// obtained here.
type RepoManager interface {
	NoteRepository() domain.NoteRepository
	NullifierRepository() domain.NullifierRepository
	TransactionRepository() domain.TransactionRepository
	WalletRepository() domain.WalletRepository

	// RunTransaction runs handler inside a single storage transaction
	// carried through the context. Either every repository call of the
	// handler commits, or none does. Read-only transactions see a
	// consistent snapshot for their whole duration.
	RunTransaction(
		ctx context.Context,
		readOnly bool,
		handler func(ctx context.Context) (interface{}, error),
	) (interface{}, error)

	// Flush forces a durable checkpoint of everything committed so far.
	Flush() error

	Close()
}

// Transaction defines the methods to commit or discard a pending storage
// transaction.
type Transaction interface {
	Commit() error
	Discard()
}
