package application

import (
	"context"
	"fmt"

	"github.com/masp-network/claimd/internal/core/domain"
	"github.com/masp-network/claimd/internal/core/ports"
)

// ValidationStatus represents the states a transaction walks through while
// being validated.
type ValidationStatus int

const (
	// StatusUnvalidated is the initial state of every validation attempt.
	StatusUnvalidated ValidationStatus = iota
	// StatusProofChecked means the claim proof verified.
	StatusProofChecked
	// StatusNullifierChecked means the claim nullifier is not yet recorded.
	StatusNullifierChecked
	// StatusEquivalenceChecked means the equivalence statement (when
	// present) verified and matches the claim commitment.
	StatusEquivalenceChecked
	// StatusAccepted is the single terminal success state.
	StatusAccepted
	// StatusRejected is the terminal failure state. Rejections are final for
	// the attempt; a corrected resubmission is a new validation pass.
	StatusRejected
)

func (s ValidationStatus) String() string {
	switch s {
	case StatusUnvalidated:
		return "unvalidated"
	case StatusProofChecked:
		return "proof checked"
	case StatusNullifierChecked:
		return "nullifier checked"
	case StatusEquivalenceChecked:
		return "equivalence checked"
	case StatusAccepted:
		return "accepted"
	case StatusRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// ValidationResult is the outcome of one validation attempt.
type ValidationResult struct {
	Status ValidationStatus
	// Reason is set when Status is StatusRejected.
	Reason error
	TxHash string
}

// Accepted returns whether the attempt reached the terminal success state.
func (r *ValidationResult) Accepted() bool {
	return r.Status == StatusAccepted
}

// txValidation is the validation state machine of a single transaction.
// Steps must run in order, each failure short-circuits to StatusRejected.
// The ordering is load-bearing: checking the nullifier before the proof
// would let an attacker probe the registry with unproven statements, and
// skipping the nullifier check after a proof turns double-spend prevention
// into a no-op.
type txValidation struct {
	tx     *domain.ClaimTransaction
	status ValidationStatus
	reason error
}

func newTxValidation(tx *domain.ClaimTransaction) *txValidation {
	return &txValidation{tx: tx, status: StatusUnvalidated}
}

func (v *txValidation) reject(reason error) {
	v.status = StatusRejected
	v.reason = reason
}

// checkProof verifies the claim proof against the proof backend.
func (v *txValidation) checkProof(
	ctx context.Context, backend ports.ProofBackend,
) bool {
	if v.status != StatusUnvalidated {
		v.reject(fmt.Errorf("proof check requires unvalidated state, got %s", v.status))
		return false
	}

	valid, err := backend.VerifyClaim(ctx, v.tx.Claim)
	if err != nil {
		v.reject(fmt.Errorf("%w: %s", ErrProofBackend, err))
		return false
	}
	if !valid {
		v.reject(ErrInvalidClaimProof)
		return false
	}

	v.status = StatusProofChecked
	return true
}

// checkNullifier rejects the transaction if its claim nullifier is already
// recorded. Re-validating an accepted transaction fails exactly here.
func (v *txValidation) checkNullifier(alreadyRecorded bool) bool {
	if v.status != StatusProofChecked {
		v.reject(fmt.Errorf("nullifier check requires proof-checked state, got %s", v.status))
		return false
	}

	if alreadyRecorded {
		v.reject(ErrAlreadyClaimed)
		return false
	}

	v.status = StatusNullifierChecked
	return true
}

// checkEquivalence verifies the optional equivalence statement and requires
// that its commitment on the claim's own pool side equals the claim
// statement's value commitment bit-for-bit.
func (v *txValidation) checkEquivalence(
	ctx context.Context, backend ports.ProofBackend,
) bool {
	if v.status != StatusNullifierChecked {
		v.reject(fmt.Errorf("equivalence check requires nullifier-checked state, got %s", v.status))
		return false
	}

	if v.tx.Equivalence == nil {
		return true
	}

	valid, err := backend.VerifyEquivalence(ctx, *v.tx.Equivalence)
	if err != nil {
		v.reject(fmt.Errorf("%w: %s", ErrProofBackend, err))
		return false
	}
	if !valid {
		v.reject(ErrInvalidEquivalenceProof)
		return false
	}

	stmt, err := v.tx.Claim.Statement()
	if err != nil {
		v.reject(err)
		return false
	}
	ownSideCommitment, err := v.tx.Equivalence.CommitmentForPool(v.tx.Claim.Pool)
	if err != nil {
		v.reject(err)
		return false
	}
	if ownSideCommitment != stmt.ValueCommitment {
		v.reject(ErrEquivalenceCommitmentMismatch)
		return false
	}

	v.status = StatusEquivalenceChecked
	return true
}

func (v *txValidation) accept() {
	v.status = StatusAccepted
}

func (v *txValidation) result() *ValidationResult {
	hash, _ := v.tx.Hash()
	return &ValidationResult{Status: v.status, Reason: v.reason, TxHash: hash}
}
