package ports

import (
	"context"

	"github.com/masp-network/claimd/internal/core/domain"
)

// ClaimWitness is the private and public material handed to the backend to
// prove a claim statement.
type ClaimWitness struct {
	Root              domain.MerkleRoot
	Path              domain.MerklePath
	ValueCommitment   domain.ValueCommitment
	ClaimNullifier    domain.Nullifier
	RandomizedKey     domain.PublicKey
	NullifierSnapshot []domain.Nullifier
}

// EquivalenceWitness is the material handed to the backend to prove that two
// value commitments in different pools commit to the same amount.
type EquivalenceWitness struct {
	Value                  uint64
	SaplingValueCommitment domain.ValueCommitment
	OrchardValueCommitment domain.ValueCommitment
}

// ProofBackend is the external zero-knowledge proving capability. The core
// treats proofs as opaque bytes of a pool-specific expected length and never
// inspects them beyond handing them back for verification.
//
// Proving is a synchronous, cancellable unit of work: a cancelled or
// timed-out call must leave no partial side effects.
type ProofBackend interface {
	ProveClaim(ctx context.Context, pool string, witness ClaimWitness) ([]byte, error)
	ProveEquivalence(ctx context.Context, witness EquivalenceWitness) ([]byte, error)
	ProveMint(ctx context.Context, pool string, commitment domain.ValueCommitment) ([]byte, error)
	ProveOutput(ctx context.Context, pool string, commitment domain.ValueCommitment) ([]byte, error)

	VerifyClaim(ctx context.Context, claim domain.ClaimDescription) (bool, error)
	VerifyEquivalence(ctx context.Context, statement domain.EquivalenceStatement) (bool, error)
}
