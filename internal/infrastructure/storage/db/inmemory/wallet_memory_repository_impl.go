package inmemory

import (
	"context"
	"sync"

	"github.com/masp-network/claimd/internal/core/domain"
)

type walletRepositoryImpl struct {
	metadata *domain.WalletMetadata
	lock     *sync.RWMutex
}

// NewWalletRepositoryImpl returns a volatile metadata singleton.
func NewWalletRepositoryImpl() domain.WalletRepository {
	return &walletRepositoryImpl{lock: &sync.RWMutex{}}
}

func (w *walletRepositoryImpl) InsertMetadata(
	_ context.Context, metadata domain.WalletMetadata,
) error {
	w.lock.Lock()
	defer w.lock.Unlock()

	w.metadata = &metadata
	return nil
}

func (w *walletRepositoryImpl) GetMetadata(
	_ context.Context,
) (*domain.WalletMetadata, error) {
	w.lock.RLock()
	defer w.lock.RUnlock()

	if w.metadata == nil {
		return nil, domain.ErrMetadataNotFound
	}
	metadata := *w.metadata
	return &metadata, nil
}

func (w *walletRepositoryImpl) UpdateMetadata(
	_ context.Context,
	updateFn func(m *domain.WalletMetadata) (*domain.WalletMetadata, error),
) error {
	w.lock.Lock()
	defer w.lock.Unlock()

	if w.metadata == nil {
		return domain.ErrMetadataNotFound
	}
	metadata := *w.metadata
	updated, err := updateFn(&metadata)
	if err != nil {
		return err
	}
	w.metadata = updated
	return nil
}

func (w *walletRepositoryImpl) ReplaceMetadata(
	_ context.Context, metadata domain.WalletMetadata,
) error {
	w.lock.Lock()
	defer w.lock.Unlock()

	w.metadata = &metadata
	return nil
}
