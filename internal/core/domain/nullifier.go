package domain

import "golang.org/x/crypto/blake2s"

// saplingClaimDomainTag domain-separates the Sapling claim nullifier PRF.
// The reference derivation personalizes BLAKE2s-256 with "MASP_alt"; the Go
// implementation hashes the tag as a prefix since blake2s does not expose
// personalization. Determinism and avalanche are unaffected.
var saplingClaimDomainTag = []byte("MASP_alt")

// DeriveSaplingClaimNullifier derives the one-time claim nullifier of a
// Sapling-style note as BLAKE2s-256("MASP_alt" || nk || rho). The function is
// total and deterministic: re-deriving with the same inputs always yields the
// same nullifier, which is what makes duplicate claims detectable.
func DeriveSaplingClaimNullifier(nullifierKey, randomness Scalar) Nullifier {
	h, _ := blake2s.New256(nil)
	h.Write(saplingClaimDomainTag)
	h.Write(nullifierKey[:])
	h.Write(randomness[:])

	var nf Nullifier
	copy(nf[:], h.Sum(nil))
	return nf
}

// DeriveOrchardClaimNullifier derives the one-time claim nullifier of an
// Orchard-style note as BLAKE2s-256(nk || rho || psi || cm). Same determinism
// contract as the Sapling derivation.
func DeriveOrchardClaimNullifier(
	nullifierKey Scalar, rho, psi FieldElement, noteCommitment NoteCommitment,
) Nullifier {
	h, _ := blake2s.New256(nil)
	h.Write(nullifierKey[:])
	h.Write(rho[:])
	h.Write(psi[:])
	h.Write(noteCommitment[:])

	var nf Nullifier
	copy(nf[:], h.Sum(nil))
	return nf
}
