package dbbadger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/masp-network/claimd/internal/core/domain"
)

func TestInsertAndGetMetadata(t *testing.T) {
	before()
	defer after()

	_, err := manager.RunTransaction(
		ctx, true, func(ctx context.Context) (interface{}, error) {
			_, err := manager.WalletRepository().GetMetadata(ctx)
			return nil, err
		},
	)
	require.EqualError(t, err, domain.ErrMetadataNotFound.Error())

	metadata := domain.NewWalletMetadata("test", "regtest")
	_, err = manager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			return nil, manager.WalletRepository().InsertMetadata(ctx, *metadata)
		},
	)
	require.NoError(t, err)

	_, err = manager.RunTransaction(
		ctx, true, func(ctx context.Context) (interface{}, error) {
			stored, err := manager.WalletRepository().GetMetadata(ctx)
			if err != nil {
				return nil, err
			}
			require.Equal(t, *metadata, *stored)
			return nil, nil
		},
	)
	require.NoError(t, err)
}

func TestUpdateMetadata(t *testing.T) {
	before()
	defer after()

	_, err := manager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			return nil, manager.WalletRepository().InsertMetadata(
				ctx, *domain.NewWalletMetadata("test", "regtest"),
			)
		},
	)
	require.NoError(t, err)

	_, err = manager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			return nil, manager.WalletRepository().UpdateMetadata(
				ctx, func(m *domain.WalletMetadata) (*domain.WalletMetadata, error) {
					m.Synced()
					return m, nil
				},
			)
		},
	)
	require.NoError(t, err)

	_, err = manager.RunTransaction(
		ctx, true, func(ctx context.Context) (interface{}, error) {
			stored, err := manager.WalletRepository().GetMetadata(ctx)
			if err != nil {
				return nil, err
			}
			require.NotZero(t, stored.LastSync)
			return nil, nil
		},
	)
	require.NoError(t, err)
}

func TestReplaceMetadata(t *testing.T) {
	before()
	defer after()

	// replacing works with or without prior state
	replacement := domain.NewWalletMetadata("imported", "regtest")
	_, err := manager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			return nil, manager.WalletRepository().ReplaceMetadata(ctx, *replacement)
		},
	)
	require.NoError(t, err)

	_, err = manager.RunTransaction(
		ctx, true, func(ctx context.Context) (interface{}, error) {
			stored, err := manager.WalletRepository().GetMetadata(ctx)
			if err != nil {
				return nil, err
			}
			require.Equal(t, "imported", stored.Name)
			return nil, nil
		},
	)
	require.NoError(t, err)
}
