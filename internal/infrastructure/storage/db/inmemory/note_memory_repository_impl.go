package inmemory

import (
	"context"
	"sync"

	"github.com/masp-network/claimd/internal/core/domain"
)

type noteRepositoryImpl struct {
	saplingNotes map[uint64]domain.SaplingNoteRecord
	orchardNotes map[uint64]domain.OrchardNoteRecord
	lock         *sync.RWMutex
}

// NewNoteRepositoryImpl returns a volatile note inventory.
func NewNoteRepositoryImpl() domain.NoteRepository {
	return &noteRepositoryImpl{
		saplingNotes: map[uint64]domain.SaplingNoteRecord{},
		orchardNotes: map[uint64]domain.OrchardNoteRecord{},
		lock:         &sync.RWMutex{},
	}
}

func (n *noteRepositoryImpl) AddSaplingNote(
	_ context.Context, record domain.SaplingNoteRecord,
) error {
	n.lock.Lock()
	defer n.lock.Unlock()

	if _, ok := n.saplingNotes[record.Note.Position]; ok {
		return domain.ErrNoteAlreadyExists
	}
	n.saplingNotes[record.Note.Position] = record
	return nil
}

func (n *noteRepositoryImpl) AddOrchardNote(
	_ context.Context, record domain.OrchardNoteRecord,
) error {
	n.lock.Lock()
	defer n.lock.Unlock()

	if _, ok := n.orchardNotes[record.Note.Position]; ok {
		return domain.ErrNoteAlreadyExists
	}
	n.orchardNotes[record.Note.Position] = record
	return nil
}

func (n *noteRepositoryImpl) GetAllSaplingNotes(
	_ context.Context,
) ([]domain.SaplingNoteRecord, error) {
	n.lock.RLock()
	defer n.lock.RUnlock()

	records := make([]domain.SaplingNoteRecord, 0, len(n.saplingNotes))
	for _, r := range n.saplingNotes {
		records = append(records, r)
	}
	return records, nil
}

func (n *noteRepositoryImpl) GetAllOrchardNotes(
	_ context.Context,
) ([]domain.OrchardNoteRecord, error) {
	n.lock.RLock()
	defer n.lock.RUnlock()

	records := make([]domain.OrchardNoteRecord, 0, len(n.orchardNotes))
	for _, r := range n.orchardNotes {
		records = append(records, r)
	}
	return records, nil
}

func (n *noteRepositoryImpl) GetSaplingNote(
	_ context.Context, position uint64,
) (*domain.SaplingNoteRecord, error) {
	n.lock.RLock()
	defer n.lock.RUnlock()

	record, ok := n.saplingNotes[position]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (n *noteRepositoryImpl) GetOrchardNote(
	_ context.Context, position uint64,
) (*domain.OrchardNoteRecord, error) {
	n.lock.RLock()
	defer n.lock.RUnlock()

	record, ok := n.orchardNotes[position]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (n *noteRepositoryImpl) UpdateSaplingNote(
	_ context.Context,
	position uint64,
	updateFn func(r *domain.SaplingNoteRecord) (*domain.SaplingNoteRecord, error),
) error {
	n.lock.Lock()
	defer n.lock.Unlock()

	record, ok := n.saplingNotes[position]
	if !ok {
		return domain.ErrNoteNotFound
	}
	updated, err := updateFn(&record)
	if err != nil {
		return err
	}
	n.saplingNotes[position] = *updated
	return nil
}

func (n *noteRepositoryImpl) UpdateOrchardNote(
	_ context.Context,
	position uint64,
	updateFn func(r *domain.OrchardNoteRecord) (*domain.OrchardNoteRecord, error),
) error {
	n.lock.Lock()
	defer n.lock.Unlock()

	record, ok := n.orchardNotes[position]
	if !ok {
		return domain.ErrNoteNotFound
	}
	updated, err := updateFn(&record)
	if err != nil {
		return err
	}
	n.orchardNotes[position] = *updated
	return nil
}

func (n *noteRepositoryImpl) DeleteAllNotes(_ context.Context) error {
	n.lock.Lock()
	defer n.lock.Unlock()

	n.saplingNotes = map[uint64]domain.SaplingNoteRecord{}
	n.orchardNotes = map[uint64]domain.OrchardNoteRecord{}
	return nil
}
