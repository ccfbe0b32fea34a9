package domain

// SaplingNote is an unspent shielded note of the Sapling-style source pool.
// Immutable once created; the spent state lives on the wrapping record.
type SaplingNote struct {
	Diversifier    Diversifier
	Value          uint64
	NoteCommitment NoteCommitment
	NullifierKey   Scalar
	Randomness     Scalar
	Position       uint64
}

// OrchardNote is an unspent shielded note of the Orchard-style source pool.
// It carries the two extra field elements entering its nullifier derivation.
type OrchardNote struct {
	Diversifier    Diversifier
	Value          uint64
	NoteCommitment NoteCommitment
	NullifierKey   Scalar
	Randomness     Scalar
	Position       uint64
	Rho            FieldElement
	Psi            FieldElement
}

// NoteKey identifies a note record by pool and tree position.
type NoteKey struct {
	Pool     string
	Position uint64
}

// SaplingNoteRecord wraps a SaplingNote with wallet-local metadata. Records
// are append-only: once stored they are never deleted, only marked spent.
type SaplingNoteRecord struct {
	Note      SaplingNote
	CreatedAt int64
	Spent     bool
	LastUsed  int64
}

// OrchardNoteRecord wraps an OrchardNote with wallet-local metadata.
type OrchardNoteRecord struct {
	Note      OrchardNote
	CreatedAt int64
	Spent     bool
	LastUsed  int64
}
