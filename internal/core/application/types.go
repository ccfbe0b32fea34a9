package application

import (
	"github.com/shopspring/decimal"

	"github.com/masp-network/claimd/internal/core/domain"
)

// coinPrecision is the number of decimals between base units and display
// units.
const coinPrecision = 8

// NoteInfo is the listing view of a note record.
type NoteInfo struct {
	Pool           string
	Value          uint64
	Amount         decimal.Decimal
	Position       uint64
	Spent          bool
	CreatedAt      int64
	LastUsed       int64
	ClaimNullifier string
}

// BalanceInfo is the per-pool balance view. UnspentUnits is the sum of the
// values of all unspent notes of the pool.
type BalanceInfo struct {
	Pool          string
	UnspentUnits  uint64
	TotalUnits    uint64
	UnspentAmount decimal.Decimal
}

// WalletStatus bundles metadata and balances for the status command.
type WalletStatus struct {
	Metadata domain.WalletMetadata
	Balances []BalanceInfo
	TxCount  int
}

func displayAmount(units uint64) decimal.Decimal {
	return decimal.New(int64(units), -coinPrecision)
}
