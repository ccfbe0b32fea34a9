package domain

import "encoding/hex"

// Scalar is a 32-byte scalar value, used for nullifier keys, note randomness
// and spend-authorization randomizers.
type Scalar [32]byte

// FieldElement is a 32-byte base field element.
type FieldElement [32]byte

// NoteCommitment is a binding, hiding commitment to a note's contents.
type NoteCommitment [32]byte

// ValueCommitment is a commitment to a note value and a blinding factor.
type ValueCommitment [32]byte

// MerkleRoot is the root of a note commitment tree.
type MerkleRoot [32]byte

// MerklePath is the authentication path of a leaf in a commitment tree.
type MerklePath [][32]byte

// PublicKey is a 32-byte verification key.
type PublicKey [32]byte

// BindingSignature asserts that the value commitments of a transaction
// balance to zero net value outside the intended mint.
type BindingSignature [64]byte

// Diversifier is the 11-byte address diversifier of a shielded note.
type Diversifier [11]byte

// Nullifier is a one-time value derived from a note that, once published,
// proves the note was consumed.
type Nullifier [32]byte

// Hex returns the lowercase hex encoding of the nullifier.
func (n Nullifier) Hex() string {
	return hex.EncodeToString(n[:])
}

// NullifierFromHex parses a nullifier from its hex encoding.
func NullifierFromHex(s string) (Nullifier, error) {
	var n Nullifier
	buf, err := hex.DecodeString(s)
	if err != nil {
		return n, err
	}
	if len(buf) != len(n) {
		return n, ErrInvalidNullifierSize
	}
	copy(n[:], buf)
	return n, nil
}
