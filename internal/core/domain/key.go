package domain

import "golang.org/x/crypto/blake2s"

var randomizedKeyDomainTag = []byte("MASP__rk")

// DeriveRandomizedKey derives the randomized verification key published in a
// claim statement from a fresh spend-authorization randomizer.
func DeriveRandomizedKey(alpha Scalar) PublicKey {
	h, _ := blake2s.New256(nil)
	h.Write(randomizedKeyDomainTag)
	h.Write(alpha[:])

	var pk PublicKey
	copy(pk[:], h.Sum(nil))
	return pk
}
