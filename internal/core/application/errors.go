package application

import "errors"

var (
	// ErrWalletAlreadyInitialized ...
	ErrWalletAlreadyInitialized = errors.New("wallet is already initialized")
	// ErrWalletNotInitialized ...
	ErrWalletNotInitialized = errors.New("wallet is not initialized")
	// ErrInvalidNoteIndex is thrown when a claim references a note that does
	// not exist in the wallet inventory. Caller error, never retried.
	ErrInvalidNoteIndex = errors.New("invalid note index")
	// ErrInvalidAmount is thrown when a claim amount is zero or exceeds the
	// value of the claiming note.
	ErrInvalidAmount = errors.New("claim amount must be positive and not exceed the note value")
	// ErrAlreadyClaimed is thrown when a transaction's claim nullifier is
	// already present in the claim registry. Permanent: the transaction must
	// be discarded and never retried as-is.
	ErrAlreadyClaimed = errors.New("claim nullifier already recorded")
	// ErrProofBackend is returned when the proof backend cannot produce or
	// verify a proof. The core never retries automatically.
	ErrProofBackend = errors.New("proof backend failure")
	// ErrInvalidClaimProof ...
	ErrInvalidClaimProof = errors.New("claim proof verification failed")
	// ErrInvalidEquivalenceProof ...
	ErrInvalidEquivalenceProof = errors.New("equivalence proof verification failed")
	// ErrEquivalenceCommitmentMismatch is thrown when the equivalence
	// statement's commitment on the claim's own pool side does not match the
	// claim statement's value commitment bit-for-bit.
	ErrEquivalenceCommitmentMismatch = errors.New("equivalence statement does not match claim value commitment")
	// ErrMalformedImport is thrown when an import blob fails to parse or is
	// internally inconsistent. The import is aborted with no partial mutation.
	ErrMalformedImport = errors.New("malformed wallet import data")
)
