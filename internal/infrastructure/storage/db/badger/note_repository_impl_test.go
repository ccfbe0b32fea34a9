package dbbadger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/masp-network/claimd/internal/core/domain"
)

func TestAddAndGetNotes(t *testing.T) {
	before()
	defer after()

	saplingRecord := newTestSaplingRecord(1, 1000)
	orchardRecord := newTestOrchardRecord(1, 500)

	_, err := manager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			if err := manager.NoteRepository().AddSaplingNote(ctx, saplingRecord); err != nil {
				return nil, err
			}
			return nil, manager.NoteRepository().AddOrchardNote(ctx, orchardRecord)
		},
	)
	require.NoError(t, err)

	_, err = manager.RunTransaction(
		ctx, true, func(ctx context.Context) (interface{}, error) {
			stored, err := manager.NoteRepository().GetSaplingNote(ctx, 1)
			if err != nil {
				return nil, err
			}
			require.NotNil(t, stored)
			require.Equal(t, saplingRecord.Note, stored.Note)

			missing, err := manager.NoteRepository().GetSaplingNote(ctx, 99)
			if err != nil {
				return nil, err
			}
			require.Nil(t, missing)

			// positions are scoped per pool, both pools hold position 1
			all, err := manager.NoteRepository().GetAllOrchardNotes(ctx)
			if err != nil {
				return nil, err
			}
			require.Len(t, all, 1)
			require.Equal(t, orchardRecord.Note, all[0].Note)
			return nil, nil
		},
	)
	require.NoError(t, err)
}

func TestAddNoteTwice(t *testing.T) {
	before()
	defer after()

	record := newTestSaplingRecord(1, 1000)

	_, err := manager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			return nil, manager.NoteRepository().AddSaplingNote(ctx, record)
		},
	)
	require.NoError(t, err)

	_, err = manager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			return nil, manager.NoteRepository().AddSaplingNote(ctx, record)
		},
	)
	require.EqualError(t, err, domain.ErrNoteAlreadyExists.Error())
}

func TestUpdateNote(t *testing.T) {
	before()
	defer after()

	_, err := manager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			return nil, manager.NoteRepository().AddSaplingNote(
				ctx, newTestSaplingRecord(1, 1000),
			)
		},
	)
	require.NoError(t, err)

	_, err = manager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			return nil, manager.NoteRepository().UpdateSaplingNote(
				ctx, 1,
				func(r *domain.SaplingNoteRecord) (*domain.SaplingNoteRecord, error) {
					r.MarkSpent()
					return r, nil
				},
			)
		},
	)
	require.NoError(t, err)

	_, err = manager.RunTransaction(
		ctx, true, func(ctx context.Context) (interface{}, error) {
			stored, err := manager.NoteRepository().GetSaplingNote(ctx, 1)
			if err != nil {
				return nil, err
			}
			require.True(t, stored.Spent)
			require.NotZero(t, stored.LastUsed)
			return nil, nil
		},
	)
	require.NoError(t, err)

	_, err = manager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			return nil, manager.NoteRepository().UpdateSaplingNote(
				ctx, 99,
				func(r *domain.SaplingNoteRecord) (*domain.SaplingNoteRecord, error) {
					return r, nil
				},
			)
		},
	)
	require.EqualError(t, err, domain.ErrNoteNotFound.Error())
}

func TestDeleteAllNotes(t *testing.T) {
	before()
	defer after()

	_, err := manager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			if err := manager.NoteRepository().AddSaplingNote(
				ctx, newTestSaplingRecord(1, 1000),
			); err != nil {
				return nil, err
			}
			return nil, manager.NoteRepository().AddOrchardNote(
				ctx, newTestOrchardRecord(2, 500),
			)
		},
	)
	require.NoError(t, err)

	_, err = manager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			return nil, manager.NoteRepository().DeleteAllNotes(ctx)
		},
	)
	require.NoError(t, err)

	_, err = manager.RunTransaction(
		ctx, true, func(ctx context.Context) (interface{}, error) {
			sapling, err := manager.NoteRepository().GetAllSaplingNotes(ctx)
			if err != nil {
				return nil, err
			}
			orchard, err := manager.NoteRepository().GetAllOrchardNotes(ctx)
			if err != nil {
				return nil, err
			}
			require.Empty(t, sapling)
			require.Empty(t, orchard)
			return nil, nil
		},
	)
	require.NoError(t, err)
}

func TestWriteTransactionRollsBackOnError(t *testing.T) {
	before()
	defer after()

	errBoom := errors.New("boom")

	_, err := manager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			if err := manager.NoteRepository().AddSaplingNote(
				ctx, newTestSaplingRecord(1, 1000),
			); err != nil {
				return nil, err
			}
			if err := manager.NullifierRepository().InsertNullifier(
				ctx, domain.NullifierKindAirdrop, domain.Nullifier{0x01},
			); err != nil {
				return nil, err
			}
			return nil, errBoom
		},
	)
	require.EqualError(t, err, errBoom.Error())

	// the failed handler left no partial writes behind
	_, err = manager.RunTransaction(
		ctx, true, func(ctx context.Context) (interface{}, error) {
			notes, err := manager.NoteRepository().GetAllSaplingNotes(ctx)
			if err != nil {
				return nil, err
			}
			require.Empty(t, notes)

			recorded, err := manager.NullifierRepository().ContainsNullifier(
				ctx, domain.NullifierKindAirdrop, domain.Nullifier{0x01},
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

func newTestSaplingRecord(position, value uint64) domain.SaplingNoteRecord {
	record, err := domain.NewSaplingNoteRecord(domain.SaplingNote{
		Value:        value,
		NullifierKey: domain.Scalar{byte(position), 0x01},
		Randomness:   domain.Scalar{byte(position), 0x02},
		Position:     position,
	})
	if err != nil {
		panic(err)
	}
	return *record
}

func newTestOrchardRecord(position, value uint64) domain.OrchardNoteRecord {
	record, err := domain.NewOrchardNoteRecord(domain.OrchardNote{
		Value:          value,
		NoteCommitment: [32]byte{byte(position), 0x03},
		NullifierKey:   domain.Scalar{byte(position), 0x04},
		Randomness:     domain.Scalar{byte(position), 0x05},
		Position:       position,
		Rho:            [32]byte{byte(position), 0x06},
		Psi:            [32]byte{byte(position), 0x07},
	})
	if err != nil {
		panic(err)
	}
	return *record
}
