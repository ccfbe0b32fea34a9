package ports

import (
	"context"

	"github.com/masp-network/claimd/internal/core/domain"
)

// ChainSource resolves Merkle witnesses against the source ledgers. The core
// never computes paths itself.
type ChainSource interface {
	// MerkleWitness returns the current commitment tree root of the pool and
	// the authentication path of the leaf at the given position.
	MerkleWitness(
		ctx context.Context, pool string, position uint64,
	) (domain.MerkleRoot, domain.MerklePath, error)
}
