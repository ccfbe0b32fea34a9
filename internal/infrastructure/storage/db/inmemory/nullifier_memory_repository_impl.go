package inmemory

import (
	"context"
	"sync"

	"github.com/masp-network/claimd/internal/core/domain"
)

type nullifierRepositoryImpl struct {
	registries map[string]domain.NullifierSet
	lock       *sync.RWMutex
}

// NewNullifierRepositoryImpl returns volatile nullifier registries.
func NewNullifierRepositoryImpl() domain.NullifierRepository {
	return &nullifierRepositoryImpl{
		registries: map[string]domain.NullifierSet{
			domain.NullifierKindSpend:   domain.NewNullifierSet(),
			domain.NullifierKindAirdrop: domain.NewNullifierSet(),
		},
		lock: &sync.RWMutex{},
	}
}

func (n *nullifierRepositoryImpl) InsertNullifier(
	_ context.Context, kind string, nf domain.Nullifier,
) error {
	n.lock.Lock()
	defer n.lock.Unlock()

	set, ok := n.registries[kind]
	if !ok {
		set = domain.NewNullifierSet()
		n.registries[kind] = set
	}
	set.Insert(nf)
	return nil
}

func (n *nullifierRepositoryImpl) ContainsNullifier(
	_ context.Context, kind string, nf domain.Nullifier,
) (bool, error) {
	n.lock.RLock()
	defer n.lock.RUnlock()

	set, ok := n.registries[kind]
	if !ok {
		return false, nil
	}
	return set.Contains(nf), nil
}

func (n *nullifierRepositoryImpl) GetAllNullifiers(
	_ context.Context, kind string,
) ([]domain.Nullifier, error) {
	n.lock.RLock()
	defer n.lock.RUnlock()

	set, ok := n.registries[kind]
	if !ok {
		return []domain.Nullifier{}, nil
	}
	return set.Slice(), nil
}

func (n *nullifierRepositoryImpl) DeleteAllNullifiers(
	_ context.Context, kind string,
) error {
	n.lock.Lock()
	defer n.lock.Unlock()

	n.registries[kind] = domain.NewNullifierSet()
	return nil
}
