package proofbackend

import (
	"context"
	"fmt"

	"github.com/sony/gobreaker"
	"github.com/thanhpk/randstr"

	"github.com/masp-network/claimd/internal/core/domain"
	"github.com/masp-network/claimd/internal/core/ports"
	"github.com/masp-network/claimd/pkg/circuitbreaker"
)

// backend is a stand-in proving system producing opaque blobs of the real
// proof sizes. Verification checks structural well-formedness only, which is
// enough to exercise the whole claim pipeline until a real prover is plugged
// behind the same interface. Calls go through a circuit breaker so a
// misbehaving prover process trips fast instead of stalling every claim.
type backend struct {
	cb *gobreaker.CircuitBreaker
}

// NewMockBackend returns a ProofBackend producing structurally valid mock
// proofs.
func NewMockBackend() ports.ProofBackend {
	return &backend{cb: circuitbreaker.NewCircuitBreaker("proofbackend")}
}

func claimProofSize(pool string) (int, error) {
	switch pool {
	case domain.PoolSapling:
		return domain.SaplingClaimProofSize, nil
	case domain.PoolOrchard:
		return domain.OrchardClaimProofSize, nil
	default:
		return 0, domain.ErrUnknownPool
	}
}

func (b *backend) ProveClaim(
	ctx context.Context, pool string, _ ports.ClaimWitness,
) ([]byte, error) {
	size, err := claimProofSize(pool)
	if err != nil {
		return nil, err
	}
	return b.prove(ctx, size)
}

func (b *backend) ProveEquivalence(
	ctx context.Context, _ ports.EquivalenceWitness,
) ([]byte, error) {
	return b.prove(ctx, domain.EquivalenceProofSize)
}

func (b *backend) ProveMint(
	ctx context.Context, pool string, _ domain.ValueCommitment,
) ([]byte, error) {
	size, err := claimProofSize(pool)
	if err != nil {
		return nil, err
	}
	return b.prove(ctx, size)
}

func (b *backend) ProveOutput(
	ctx context.Context, pool string, _ domain.ValueCommitment,
) ([]byte, error) {
	size, err := claimProofSize(pool)
	if err != nil {
		return nil, err
	}
	return b.prove(ctx, size)
}

func (b *backend) VerifyClaim(
	ctx context.Context, claim domain.ClaimDescription,
) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	statement, err := claim.Statement()
	if err != nil {
		return false, err
	}
	size, err := claimProofSize(claim.Pool)
	if err != nil {
		return false, err
	}
	return len(statement.Proof) == size, nil
}

func (b *backend) VerifyEquivalence(
	ctx context.Context, statement domain.EquivalenceStatement,
) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return len(statement.Proof) == domain.EquivalenceProofSize, nil
}

func (b *backend) prove(ctx context.Context, size int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	proof, err := b.cb.Execute(func() (interface{}, error) {
		return randstr.Bytes(size), nil
	})
	if err != nil {
		return nil, fmt.Errorf("proving failed: %w", err)
	}
	return proof.([]byte), nil
}
