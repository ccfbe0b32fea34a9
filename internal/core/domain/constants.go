package domain

const (
	// PoolSapling identifies the Sapling-style source pool.
	PoolSapling = "sapling"
	// PoolOrchard identifies the Orchard-style source pool.
	PoolOrchard = "orchard"

	// MaxMoney is the protocol-wide maximum supply in base units.
	MaxMoney uint64 = 21_000_000 * 100_000_000

	// MerkleDepthSapling is the depth of the Sapling note commitment tree.
	MerkleDepthSapling = 32
	// MerkleDepthOrchard is the depth of the Orchard note commitment tree.
	MerkleDepthOrchard = 32

	// SaplingClaimProofSize is the expected byte length of a Sapling claim proof.
	SaplingClaimProofSize = 192
	// OrchardClaimProofSize is the expected byte length of an Orchard claim proof.
	OrchardClaimProofSize = 1024
	// EquivalenceProofSize is the expected byte length of an equivalence proof.
	EquivalenceProofSize = 512

	// EncryptedNoteSize is the byte length of an encrypted note ciphertext.
	EncryptedNoteSize = 580
	// EncryptedOutgoingSize is the byte length of an outgoing cipher blob.
	EncryptedOutgoingSize = 80
)

const (
	// NullifierKindSpend is the registry of ordinary spend nullifiers.
	NullifierKindSpend = "spend"
	// NullifierKindAirdrop is the registry of claim (airdrop) nullifiers,
	// the double-spend gate for claim transactions.
	NullifierKindAirdrop = "airdrop"
)

const (
	// TxStatusPending is the status of a locally accepted transaction not yet
	// seen on chain.
	TxStatusPending = "pending"
	// TxStatusConfirmed is the status of a transaction included in a block.
	TxStatusConfirmed = "confirmed"
	// TxStatusFailed is the status of a transaction rejected by the chain.
	TxStatusFailed = "failed"
)
