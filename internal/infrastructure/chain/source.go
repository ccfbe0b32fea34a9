package chainsource

import (
	"context"

	"github.com/masp-network/claimd/internal/core/domain"
	"github.com/masp-network/claimd/internal/core/ports"
)

// staticSource serves the empty commitment tree of each pool: a zero root and
// an all-zero authentication path of the pool's fixed depth. It keeps the
// pipeline runnable without a ledger connection; a real source would query a
// full node for the live tree state.
type staticSource struct{}

// NewStaticSource returns a ChainSource backed by empty commitment trees.
func NewStaticSource() ports.ChainSource {
	return staticSource{}
}

func (staticSource) MerkleWitness(
	ctx context.Context, pool string, _ uint64,
) (domain.MerkleRoot, domain.MerklePath, error) {
	if err := ctx.Err(); err != nil {
		return domain.MerkleRoot{}, nil, err
	}

	var depth int
	switch pool {
	case domain.PoolSapling:
		depth = domain.MerkleDepthSapling
	case domain.PoolOrchard:
		depth = domain.MerkleDepthOrchard
	default:
		return domain.MerkleRoot{}, nil, domain.ErrUnknownPool
	}

	return domain.MerkleRoot{}, make(domain.MerklePath, depth), nil
}
