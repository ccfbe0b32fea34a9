package dbbadger

import (
	"context"

	"github.com/timshannon/badgerhold/v4"

	"github.com/masp-network/claimd/internal/core/domain"
)

type nullifierRepositoryImpl struct {
	store *badgerhold.Store
}

// NewNullifierRepositoryImpl returns the badger backed nullifier registries.
func NewNullifierRepositoryImpl(store *badgerhold.Store) domain.NullifierRepository {
	return nullifierRepositoryImpl{store: store}
}

func (n nullifierRepositoryImpl) InsertNullifier(
	ctx context.Context, kind string, nf domain.Nullifier,
) error {
	tx, err := getTx(ctx)
	if err != nil {
		return err
	}

	entry := domain.NullifierEntry{Kind: kind, Value: nf}
	if err := n.store.TxInsert(tx, entry.Key(), &entry); err != nil {
		// registries are sets, re-inserting a member is a no-op
		if err != badgerhold.ErrKeyExists {
			return err
		}
	}
	return nil
}

func (n nullifierRepositoryImpl) ContainsNullifier(
	ctx context.Context, kind string, nf domain.Nullifier,
) (bool, error) {
	tx, err := getTx(ctx)
	if err != nil {
		return false, err
	}

	var entry domain.NullifierEntry
	key := domain.NullifierEntry{Kind: kind, Value: nf}.Key()
	if err := n.store.TxGet(tx, key, &entry); err != nil {
		if err == badgerhold.ErrNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (n nullifierRepositoryImpl) GetAllNullifiers(
	ctx context.Context, kind string,
) ([]domain.Nullifier, error) {
	tx, err := getTx(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.NullifierEntry, 0)
	if err := n.store.TxFind(
		tx, &entries, badgerhold.Where("Kind").Eq(kind),
	); err != nil {
		return nil, err
	}

	nullifiers := make([]domain.Nullifier, 0, len(entries))
	for _, e := range entries {
		nullifiers = append(nullifiers, e.Value)
	}
	return nullifiers, nil
}

func (n nullifierRepositoryImpl) DeleteAllNullifiers(
	ctx context.Context, kind string,
) error {
	tx, err := getTx(ctx)
	if err != nil {
		return err
	}

	return n.store.TxDeleteMatching(
		tx, &domain.NullifierEntry{}, badgerhold.Where("Kind").Eq(kind),
	)
}
