package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/masp-network/claimd/internal/core/domain"
)

func TestDeriveSaplingClaimNullifier(t *testing.T) {
	t.Parallel()

	nk := filled32(0x11)
	rho := filled32(0x22)

	nf := domain.DeriveSaplingClaimNullifier(nk, rho)
	require.NotEqual(t, domain.Nullifier{}, nf)

	// same inputs, same nullifier
	again := domain.DeriveSaplingClaimNullifier(nk, rho)
	require.Equal(t, nf, again)

	// a single flipped bit in either input must change the output
	flippedNk := nk
	flippedNk[0] ^= 0x01
	require.NotEqual(t, nf, domain.DeriveSaplingClaimNullifier(flippedNk, rho))

	flippedRho := rho
	flippedRho[31] ^= 0x80
	require.NotEqual(t, nf, domain.DeriveSaplingClaimNullifier(nk, flippedRho))
}

func TestDeriveOrchardClaimNullifier(t *testing.T) {
	t.Parallel()

	nk := filled32(0x11)
	rho := filled32(0x22)
	psi := filled32(0x33)
	cm := filled32(0x44)

	nf := domain.DeriveOrchardClaimNullifier(nk, rho, psi, cm)
	require.NotEqual(t, domain.Nullifier{}, nf)
	require.Equal(t, nf, domain.DeriveOrchardClaimNullifier(nk, rho, psi, cm))

	tests := []struct {
		name string
		nf   domain.Nullifier
	}{
		{
			name: "flipped_nullifier_key",
			nf:   domain.DeriveOrchardClaimNullifier(filled32(0x12), rho, psi, cm),
		},
		{
			name: "flipped_rho",
			nf:   domain.DeriveOrchardClaimNullifier(nk, filled32(0x23), psi, cm),
		},
		{
			name: "flipped_psi",
			nf:   domain.DeriveOrchardClaimNullifier(nk, rho, filled32(0x34), cm),
		},
		{
			name: "flipped_commitment",
			nf:   domain.DeriveOrchardClaimNullifier(nk, rho, psi, filled32(0x45)),
		},
	}
	for _, tt := range tests {
		require.NotEqual(t, nf, tt.nf, tt.name)
	}
}

func TestNullifierDomainSeparation(t *testing.T) {
	t.Parallel()

	// a sapling derivation and an orchard derivation fed with overlapping
	// material must never collide
	nk := filled32(0xaa)
	rho := filled32(0xbb)

	sapling := domain.DeriveSaplingClaimNullifier(nk, rho)
	orchard := domain.DeriveOrchardClaimNullifier(nk, rho, [32]byte{}, [32]byte{})
	require.NotEqual(t, sapling, orchard)
}

func TestNullifierHexRoundTrip(t *testing.T) {
	t.Parallel()

	nf := domain.DeriveSaplingClaimNullifier(filled32(0x01), filled32(0x02))

	decoded, err := domain.NullifierFromHex(nf.Hex())
	require.NoError(t, err)
	require.Equal(t, nf, decoded)

	_, err = domain.NullifierFromHex("nothex")
	require.Error(t, err)

	_, err = domain.NullifierFromHex("abcd")
	require.EqualError(t, err, domain.ErrInvalidNullifierSize.Error())
}

func filled32(b byte) [32]byte {
	var out [32]byte
	for i := range out {
		out[i] = b
	}
	return out
}
