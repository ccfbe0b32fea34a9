package domain

// ClaimStatement is the public-input bundle plus proof asserting "I own an
// unspent note of this pool and its claim nullifier is X". Immutable once
// constructed. NullifierSnapshot freezes the claim registry as seen at proof
// time so verification is checked against the set the proof was built for.
type ClaimStatement struct {
	Root              MerkleRoot
	ValueCommitment   ValueCommitment
	ClaimNullifier    Nullifier
	RandomizedKey     PublicKey
	NullifierSnapshot []Nullifier
	Proof             []byte
}

// ClaimDescription tags a ClaimStatement with its source pool. The set of
// pools is closed, so every consumer switches exhaustively on Pool.
type ClaimDescription struct {
	Pool    string
	Sapling *ClaimStatement
	Orchard *ClaimStatement
}

// Statement returns the statement of the tagged pool.
func (d ClaimDescription) Statement() (*ClaimStatement, error) {
	switch d.Pool {
	case PoolSapling:
		if d.Sapling == nil {
			return nil, ErrMissingClaimStatement
		}
		return d.Sapling, nil
	case PoolOrchard:
		if d.Orchard == nil {
			return nil, ErrMissingClaimStatement
		}
		return d.Orchard, nil
	default:
		return nil, ErrUnknownPool
	}
}

// EquivalenceStatement proves that a Sapling-pool and an Orchard-pool value
// commitment commit to the same amount.
type EquivalenceStatement struct {
	SaplingValueCommitment ValueCommitment
	OrchardValueCommitment ValueCommitment
	Proof                  []byte
}

// CommitmentForPool returns the statement's commitment on the given pool's
// side.
func (s EquivalenceStatement) CommitmentForPool(pool string) (ValueCommitment, error) {
	switch pool {
	case PoolSapling:
		return s.SaplingValueCommitment, nil
	case PoolOrchard:
		return s.OrchardValueCommitment, nil
	default:
		return ValueCommitment{}, ErrUnknownPool
	}
}

// MintDescription mints the claimed value into the destination pool.
type MintDescription struct {
	ConvertRoot     MerkleRoot
	ValueCommitment ValueCommitment
	RecipientKey    PublicKey
	Proof           []byte
}

// OutputDescription delivers the minted note to the recipient: commitment,
// key-agreement material and the two ciphertexts of the note plaintext.
type OutputDescription struct {
	ValueCommitment   ValueCommitment
	NoteCommitment    NoteCommitment
	EphemeralKey      PublicKey
	EncryptedNote     []byte
	EncryptedOutgoing []byte
	Proof             []byte
}
