package dbbadger

import (
	"context"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/masp-network/claimd/internal/core/domain"
)

type noteRepositoryImpl struct {
	store *badgerhold.Store
}

// NewNoteRepositoryImpl returns the badger backed note inventory.
func NewNoteRepositoryImpl(store *badgerhold.Store) domain.NoteRepository {
	return noteRepositoryImpl{store: store}
}

func (n noteRepositoryImpl) AddSaplingNote(
	ctx context.Context, record domain.SaplingNoteRecord,
) error {
	tx, err := getTx(ctx)
	if err != nil {
		return err
	}

	if err := n.store.TxInsert(tx, record.Key(), &record); err != nil {
		if err == badgerhold.ErrKeyExists {
			return domain.ErrNoteAlreadyExists
		}
		return err
	}
	return nil
}

func (n noteRepositoryImpl) AddOrchardNote(
	ctx context.Context, record domain.OrchardNoteRecord,
) error {
	tx, err := getTx(ctx)
	if err != nil {
		return err
	}

	if err := n.store.TxInsert(tx, record.Key(), &record); err != nil {
		if err == badgerhold.ErrKeyExists {
			return domain.ErrNoteAlreadyExists
		}
		return err
	}
	return nil
}

func (n noteRepositoryImpl) GetAllSaplingNotes(
	ctx context.Context,
) ([]domain.SaplingNoteRecord, error) {
	tx, err := getTx(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]domain.SaplingNoteRecord, 0)
	if err := n.store.TxFind(tx, &records, nil); err != nil {
		return nil, err
	}
	return records, nil
}

func (n noteRepositoryImpl) GetAllOrchardNotes(
	ctx context.Context,
) ([]domain.OrchardNoteRecord, error) {
	tx, err := getTx(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]domain.OrchardNoteRecord, 0)
	if err := n.store.TxFind(tx, &records, nil); err != nil {
		return nil, err
	}
	return records, nil
}

func (n noteRepositoryImpl) GetSaplingNote(
	ctx context.Context, position uint64,
) (*domain.SaplingNoteRecord, error) {
	tx, err := getTx(ctx)
	if err != nil {
		return nil, err
	}
	return n.getSaplingNote(tx, position)
}

func (n noteRepositoryImpl) GetOrchardNote(
	ctx context.Context, position uint64,
) (*domain.OrchardNoteRecord, error) {
	tx, err := getTx(ctx)
	if err != nil {
		return nil, err
	}
	return n.getOrchardNote(tx, position)
}

func (n noteRepositoryImpl) UpdateSaplingNote(
	ctx context.Context,
	position uint64,
	updateFn func(r *domain.SaplingNoteRecord) (*domain.SaplingNoteRecord, error),
) error {
	tx, err := getTx(ctx)
	if err != nil {
		return err
	}

	current, err := n.getSaplingNote(tx, position)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrNoteNotFound
	}

	updated, err := updateFn(current)
	if err != nil {
		return err
	}
	return n.store.TxUpdate(tx, updated.Key(), *updated)
}

func (n noteRepositoryImpl) UpdateOrchardNote(
	ctx context.Context,
	position uint64,
	updateFn func(r *domain.OrchardNoteRecord) (*domain.OrchardNoteRecord, error),
) error {
	tx, err := getTx(ctx)
	if err != nil {
		return err
	}

	current, err := n.getOrchardNote(tx, position)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrNoteNotFound
	}

	updated, err := updateFn(current)
	if err != nil {
		return err
	}
	return n.store.TxUpdate(tx, updated.Key(), *updated)
}

func (n noteRepositoryImpl) DeleteAllNotes(ctx context.Context) error {
	tx, err := getTx(ctx)
	if err != nil {
		return err
	}

	if err := n.store.TxDeleteMatching(
		tx, &domain.SaplingNoteRecord{}, nil,
	); err != nil {
		return err
	}
	return n.store.TxDeleteMatching(tx, &domain.OrchardNoteRecord{}, nil)
}

func (n noteRepositoryImpl) getSaplingNote(
	tx *badger.Txn, position uint64,
) (*domain.SaplingNoteRecord, error) {
	var record domain.SaplingNoteRecord
	key := domain.NoteKey{Pool: domain.PoolSapling, Position: position}
	if err := n.store.TxGet(tx, key, &record); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (n noteRepositoryImpl) getOrchardNote(
	tx *badger.Txn, position uint64,
) (*domain.OrchardNoteRecord, error) {
	var record domain.OrchardNoteRecord
	key := domain.NoteKey{Pool: domain.PoolOrchard, Position: position}
	if err := n.store.TxGet(tx, key, &record); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}
