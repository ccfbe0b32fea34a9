package domain

import "context"

// NullifierRepository stores the consumed nullifiers of a wallet. Two
// logically independent registries exist, selected by kind: ordinary spend
// nullifiers and claim nullifiers. Entries are only ever inserted.
type NullifierRepository interface {
	InsertNullifier(ctx context.Context, kind string, nf Nullifier) error
	ContainsNullifier(ctx context.Context, kind string, nf Nullifier) (bool, error)
	GetAllNullifiers(ctx context.Context, kind string) ([]Nullifier, error)
	// DeleteAllNullifiers drops one registry. Used only by wholesale wallet
	// import.
	DeleteAllNullifiers(ctx context.Context, kind string) error
}
