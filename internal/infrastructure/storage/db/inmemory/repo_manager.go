package inmemory

import (
	"context"
	"sync"

	"github.com/masp-network/claimd/internal/core/domain"
	"github.com/masp-network/claimd/internal/core/ports"
)

// repoManager is the volatile counterpart of the badger repo manager, used
// by tests and dry runs. There is no real transaction log: RunTransaction
// serializes handlers with a lock, which preserves the single-writer model
// but not rollback-on-error. Crash consistency is the badger manager's job.
type repoManager struct {
	lock *sync.RWMutex

	noteRepository        domain.NoteRepository
	nullifierRepository   domain.NullifierRepository
	transactionRepository domain.TransactionRepository
	walletRepository      domain.WalletRepository
}

// NewRepoManager returns an in-memory repo manager with empty collections.
func NewRepoManager() ports.RepoManager {
	return &repoManager{
		lock:                  &sync.RWMutex{},
		noteRepository:        NewNoteRepositoryImpl(),
		nullifierRepository:   NewNullifierRepositoryImpl(),
		transactionRepository: NewTransactionRepositoryImpl(),
		walletRepository:      NewWalletRepositoryImpl(),
	}
}

func (d *repoManager) NoteRepository() domain.NoteRepository {
	return d.noteRepository
}

func (d *repoManager) NullifierRepository() domain.NullifierRepository {
	return d.nullifierRepository
}

func (d *repoManager) TransactionRepository() domain.TransactionRepository {
	return d.transactionRepository
}

func (d *repoManager) WalletRepository() domain.WalletRepository {
	return d.walletRepository
}

func (d *repoManager) RunTransaction(
	ctx context.Context,
	readOnly bool,
	handler func(ctx context.Context) (interface{}, error),
) (interface{}, error) {
	if readOnly {
		d.lock.RLock()
		defer d.lock.RUnlock()
	} else {
		d.lock.Lock()
		defer d.lock.Unlock()
	}
	return handler(ctx)
}

func (d *repoManager) Flush() error {
	return nil
}

func (d *repoManager) Close() {}
