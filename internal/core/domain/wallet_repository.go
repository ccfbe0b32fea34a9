package domain

import "context"

// WalletRepository stores the wallet metadata singleton.
type WalletRepository interface {
	InsertMetadata(ctx context.Context, metadata WalletMetadata) error
	GetMetadata(ctx context.Context) (*WalletMetadata, error)
	UpdateMetadata(
		ctx context.Context,
		updateFn func(m *WalletMetadata) (*WalletMetadata, error),
	) error
	// ReplaceMetadata overwrites the singleton regardless of prior state.
	// Used only by wholesale wallet import.
	ReplaceMetadata(ctx context.Context, metadata WalletMetadata) error
}
