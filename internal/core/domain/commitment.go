package domain

import (
	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr"
	"github.com/consensys/gnark-crypto/ecc/bw6-761/fr/mimc"
)

// ComputeValueCommitment commits to a note value with a blinding factor using
// the MiMC hash over the bw6-761 scalar field. Both inputs are mapped to
// canonical field elements before hashing so the digest is well defined for
// any 32-byte blinder. The commitment binds value and blinder: equal inputs
// produce bit-for-bit equal commitments.
func ComputeValueCommitment(value uint64, blinder Scalar) ValueCommitment {
	var v, b fr.Element
	v.SetUint64(value)
	b.SetBytes(blinder[:])

	vBytes := v.Bytes()
	bBytes := b.Bytes()

	h := mimc.NewMiMC()
	h.Write(vBytes[:])
	h.Write(bBytes[:])
	sum := h.Sum(nil)

	var cm ValueCommitment
	copy(cm[:], sum[:len(cm)])
	return cm
}
