package domain

import "time"

// TransactionRecord is the persisted audit entry of a locally accepted claim
// transaction. The status is transitioned later by chain-sync collaborators.
type TransactionRecord struct {
	TxHash         string
	ClaimNullifier Nullifier
	Amount         uint64
	Recipient      string
	Status         string
	CreatedAt      int64
	ConfirmedAt    int64
	BlockHeight    uint64
}

// NewTransactionRecord returns a pending record for a just-accepted
// transaction.
func NewTransactionRecord(
	txHash string, nf Nullifier, amount uint64, recipient string,
) *TransactionRecord {
	return &TransactionRecord{
		TxHash:         txHash,
		ClaimNullifier: nf,
		Amount:         amount,
		Recipient:      recipient,
		Status:         TxStatusPending,
		CreatedAt:      time.Now().Unix(),
	}
}

// Confirm transitions a pending record to confirmed at the given height.
func (r *TransactionRecord) Confirm(blockHeight uint64) {
	if r.Status == TxStatusConfirmed {
		return
	}
	r.Status = TxStatusConfirmed
	r.ConfirmedAt = time.Now().Unix()
	r.BlockHeight = blockHeight
}

// Fail transitions a pending record to failed.
func (r *TransactionRecord) Fail() {
	r.Status = TxStatusFailed
}
