package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/masp-network/claimd/internal/core/domain"
)

func newTestTransaction(pool string, withEquivalence bool) *domain.ClaimTransaction {
	stmt := &domain.ClaimStatement{
		Root:            filled32(0x01),
		ValueCommitment: filled32(0x02),
		ClaimNullifier:  filled32(0x03),
		RandomizedKey:   filled32(0x04),
		NullifierSnapshot: []domain.Nullifier{
			filled32(0x05), filled32(0x06),
		},
		Proof: make([]byte, domain.SaplingClaimProofSize),
	}

	claim := domain.ClaimDescription{Pool: pool}
	switch pool {
	case domain.PoolSapling:
		claim.Sapling = stmt
	case domain.PoolOrchard:
		stmt.Proof = make([]byte, domain.OrchardClaimProofSize)
		claim.Orchard = stmt
	}

	tx := &domain.ClaimTransaction{
		Claim: claim,
		Output: domain.OutputDescription{
			ValueCommitment:   filled32(0x07),
			NoteCommitment:    filled32(0x08),
			EphemeralKey:      filled32(0x09),
			EncryptedNote:     make([]byte, domain.EncryptedNoteSize),
			EncryptedOutgoing: make([]byte, domain.EncryptedOutgoingSize),
			Proof:             make([]byte, domain.SaplingClaimProofSize),
		},
		Mint: domain.MintDescription{
			ConvertRoot:     filled32(0x0a),
			ValueCommitment: filled32(0x0b),
			RecipientKey:    filled32(0x0c),
			Proof:           make([]byte, domain.SaplingClaimProofSize),
		},
	}
	if withEquivalence {
		tx.Equivalence = &domain.EquivalenceStatement{
			SaplingValueCommitment: filled32(0x0d),
			OrchardValueCommitment: stmt.ValueCommitment,
			Proof:                  make([]byte, domain.EquivalenceProofSize),
		}
	}
	return tx
}

func TestTransactionClaimNullifier(t *testing.T) {
	t.Parallel()

	tx := newTestTransaction(domain.PoolSapling, false)
	nf, err := tx.ClaimNullifier()
	require.NoError(t, err)
	require.Equal(t, domain.Nullifier(filled32(0x03)), nf)

	untagged := &domain.ClaimTransaction{
		Claim: domain.ClaimDescription{Pool: domain.PoolSapling},
	}
	_, err = untagged.ClaimNullifier()
	require.EqualError(t, err, domain.ErrMissingClaimStatement.Error())

	unknown := &domain.ClaimTransaction{
		Claim: domain.ClaimDescription{Pool: "sprout"},
	}
	_, err = unknown.ClaimNullifier()
	require.EqualError(t, err, domain.ErrUnknownPool.Error())
}

func TestTransactionSerialize(t *testing.T) {
	t.Parallel()

	tx := newTestTransaction(domain.PoolOrchard, true)

	raw, err := tx.Serialize()
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	// same transaction, same bytes
	again, err := tx.Serialize()
	require.NoError(t, err)
	require.Equal(t, raw, again)

	// the equivalence statement enters the encoding
	bare := newTestTransaction(domain.PoolOrchard, false)
	bareRaw, err := bare.Serialize()
	require.NoError(t, err)
	require.Less(t, len(bareRaw), len(raw))
}

func TestTransactionHash(t *testing.T) {
	t.Parallel()

	tx := newTestTransaction(domain.PoolSapling, false)

	hash, err := tx.Hash()
	require.NoError(t, err)
	require.Len(t, hash, 64)

	again, err := tx.Hash()
	require.NoError(t, err)
	require.Equal(t, hash, again)

	// any mutation of the signed material must change the hash
	tx.BindingSig[0] ^= 0x01
	mutated, err := tx.Hash()
	require.NoError(t, err)
	require.NotEqual(t, hash, mutated)
}

func TestTransactionEncodeDecode(t *testing.T) {
	t.Parallel()

	tx := newTestTransaction(domain.PoolOrchard, true)

	encoded, err := tx.Encode()
	require.NoError(t, err)

	decoded, err := domain.DecodeClaimTransaction(encoded)
	require.NoError(t, err)
	require.Equal(t, tx, decoded)

	// decoded transactions hash identically to their source
	hash, err := tx.Hash()
	require.NoError(t, err)
	decodedHash, err := decoded.Hash()
	require.NoError(t, err)
	require.Equal(t, hash, decodedHash)

	_, err = domain.DecodeClaimTransaction([]byte("not json"))
	require.Error(t, err)

	_, err = domain.DecodeClaimTransaction([]byte(`{"Claim":{"Pool":"sapling"}}`))
	require.EqualError(t, err, domain.ErrMissingClaimStatement.Error())
}
