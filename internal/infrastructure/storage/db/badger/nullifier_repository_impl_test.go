package dbbadger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/masp-network/claimd/internal/core/domain"
)

func TestInsertAndContainsNullifier(t *testing.T) {
	before()
	defer after()

	nf := domain.Nullifier{0x01}

	_, err := manager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			return nil, manager.NullifierRepository().InsertNullifier(
				ctx, domain.NullifierKindAirdrop, nf,
			)
		},
	)
	require.NoError(t, err)

	_, err = manager.RunTransaction(
		ctx, true, func(ctx context.Context) (interface{}, error) {
			recorded, err := manager.NullifierRepository().ContainsNullifier(
				ctx, domain.NullifierKindAirdrop, nf,
			)
			if err != nil {
				return nil, err
			}
			require.True(t, recorded)

			// the registries are independent
			recorded, err = manager.NullifierRepository().ContainsNullifier(
				ctx, domain.NullifierKindSpend, nf,
			)
			if err != nil {
				return nil, err
			}
			require.False(t, recorded)
			return nil, nil
		},
	)
	require.NoError(t, err)
}

func TestInsertNullifierIsIdempotent(t *testing.T) {
	before()
	defer after()

	nf := domain.Nullifier{0x01}

	for i := 0; i < 2; i++ {
		_, err := manager.RunTransaction(
			ctx, false, func(ctx context.Context) (interface{}, error) {
				return nil, manager.NullifierRepository().InsertNullifier(
					ctx, domain.NullifierKindAirdrop, nf,
				)
			},
		)
		require.NoError(t, err)
	}

	_, err := manager.RunTransaction(
		ctx, true, func(ctx context.Context) (interface{}, error) {
			all, err := manager.NullifierRepository().GetAllNullifiers(
				ctx, domain.NullifierKindAirdrop,
			)
			if err != nil {
				return nil, err
			}
			require.Len(t, all, 1)
			return nil, nil
		},
	)
	require.NoError(t, err)
}

func TestGetAllAndDeleteAllNullifiers(t *testing.T) {
	before()
	defer after()

	_, err := manager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			repo := manager.NullifierRepository()
			for _, nf := range []domain.Nullifier{{0x01}, {0x02}, {0x03}} {
				if err := repo.InsertNullifier(
					ctx, domain.NullifierKindAirdrop, nf,
				); err != nil {
					return nil, err
				}
			}
			return nil, repo.InsertNullifier(
				ctx, domain.NullifierKindSpend, domain.Nullifier{0x04},
			)
		},
	)
	require.NoError(t, err)

	_, err = manager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			return nil, manager.NullifierRepository().DeleteAllNullifiers(
				ctx, domain.NullifierKindAirdrop,
			)
		},
	)
	require.NoError(t, err)

	_, err = manager.RunTransaction(
		ctx, true, func(ctx context.Context) (interface{}, error) {
			airdrop, err := manager.NullifierRepository().GetAllNullifiers(
				ctx, domain.NullifierKindAirdrop,
			)
			if err != nil {
				return nil, err
			}
			require.Empty(t, airdrop)

			// deleting one registry leaves the other intact
			spend, err := manager.NullifierRepository().GetAllNullifiers(
				ctx, domain.NullifierKindSpend,
			)
			if err != nil {
				return nil, err
			}
			require.Len(t, spend, 1)
			return nil, nil
		},
	)
	require.NoError(t, err)
}
