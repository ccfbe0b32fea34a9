package dbbadger

import (
	"context"

	"github.com/timshannon/badgerhold/v4"

	"github.com/masp-network/claimd/internal/core/domain"
)

const metadataKey = "metadata"

type walletRepositoryImpl struct {
	store *badgerhold.Store
}

// NewWalletRepositoryImpl returns the badger backed metadata singleton.
func NewWalletRepositoryImpl(store *badgerhold.Store) domain.WalletRepository {
	return walletRepositoryImpl{store: store}
}

func (w walletRepositoryImpl) InsertMetadata(
	ctx context.Context, metadata domain.WalletMetadata,
) error {
	tx, err := getTx(ctx)
	if err != nil {
		return err
	}
	return w.store.TxInsert(tx, metadataKey, &metadata)
}

func (w walletRepositoryImpl) GetMetadata(
	ctx context.Context,
) (*domain.WalletMetadata, error) {
	tx, err := getTx(ctx)
	if err != nil {
		return nil, err
	}

	var metadata domain.WalletMetadata
	if err := w.store.TxGet(tx, metadataKey, &metadata); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, domain.ErrMetadataNotFound
		}
		return nil, err
	}
	return &metadata, nil
}

func (w walletRepositoryImpl) UpdateMetadata(
	ctx context.Context,
	updateFn func(m *domain.WalletMetadata) (*domain.WalletMetadata, error),
) error {
	current, err := w.GetMetadata(ctx)
	if err != nil {
		return err
	}

	updated, err := updateFn(current)
	if err != nil {
		return err
	}

	tx, err := getTx(ctx)
	if err != nil {
		return err
	}
	return w.store.TxUpdate(tx, metadataKey, *updated)
}

func (w walletRepositoryImpl) ReplaceMetadata(
	ctx context.Context, metadata domain.WalletMetadata,
) error {
	tx, err := getTx(ctx)
	if err != nil {
		return err
	}
	return w.store.TxUpsert(tx, metadataKey, &metadata)
}
