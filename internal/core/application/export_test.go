package application_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/masp-network/claimd/internal/core/application"
	"github.com/masp-network/claimd/internal/core/domain"
)

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()

	source := newTestService()
	_, err := source.InitWallet(ctx, "source", "regtest")
	require.NoError(t, err)
	require.NoError(t, source.AddSaplingNote(ctx, newTestSaplingNote(0, 1000)))
	require.NoError(t, source.AddSaplingNote(ctx, newTestSaplingNote(1, 500)))
	require.NoError(t, source.AddOrchardNote(ctx, newTestOrchardNote(0, 700)))

	// consume one note so the export carries a recorded nullifier
	tx, err := source.CreateClaim(ctx, domain.PoolSapling, 0, 1000, "recipient")
	require.NoError(t, err)
	result, err := source.ProcessTransaction(ctx, tx, 1000, "recipient")
	require.NoError(t, err)
	require.True(t, result.Accepted())

	blob, err := source.ExportWallet(ctx)
	require.NoError(t, err)

	target := newTestService()
	require.NoError(t, target.ImportWallet(ctx, blob))

	metadata, err := target.GetMetadata(ctx)
	require.NoError(t, err)
	require.Equal(t, "source", metadata.Name)

	notes, err := target.ListNotes(ctx, 0, "")
	require.NoError(t, err)
	require.Len(t, notes, 3)

	balances, err := target.GetBalance(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(500), balances[0].UnspentUnits)
	require.Equal(t, uint64(700), balances[1].UnspentUnits)

	// the imported nullifier registry still blocks re-claiming the spent note
	replay, err := target.ProcessTransaction(ctx, tx, 1000, "recipient")
	require.NoError(t, err)
	require.False(t, replay.Accepted())
	require.EqualError(t, replay.Reason, application.ErrAlreadyClaimed.Error())

	// exporting the imported wallet yields the same blob
	again, err := target.ExportWallet(ctx)
	require.NoError(t, err)
	require.JSONEq(t, string(blob), string(again))
}

func TestImportReplacesState(t *testing.T) {
	t.Parallel()

	source := newTestService()
	_, err := source.InitWallet(ctx, "source", "regtest")
	require.NoError(t, err)
	require.NoError(t, source.AddSaplingNote(ctx, newTestSaplingNote(0, 1000)))
	blob, err := source.ExportWallet(ctx)
	require.NoError(t, err)

	target := newTestService()
	_, err = target.InitWallet(ctx, "target", "regtest")
	require.NoError(t, err)
	require.NoError(t, target.AddSaplingNote(ctx, newTestSaplingNote(5, 9999)))

	require.NoError(t, target.ImportWallet(ctx, blob))

	metadata, err := target.GetMetadata(ctx)
	require.NoError(t, err)
	require.Equal(t, "source", metadata.Name)

	// the pre-import inventory is gone
	notes, err := target.ListNotes(ctx, 0, "")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, uint64(0), notes[0].Position)
}

func TestFailingImport(t *testing.T) {
	t.Parallel()

	validExport := func() map[string]interface{} {
		svc := newTestService()
		_, err := svc.InitWallet(ctx, "source", "regtest")
		require.NoError(t, err)
		blob, err := svc.ExportWallet(ctx)
		require.NoError(t, err)

		export := map[string]interface{}{}
		require.NoError(t, json.Unmarshal(blob, &export))
		return export
	}

	tests := []struct {
		name   string
		mutate func(export map[string]interface{})
	}{
		{
			name: "unsupported_version",
			mutate: func(export map[string]interface{}) {
				export["Version"] = "999"
			},
		},
		{
			name: "missing_wallet_name",
			mutate: func(export map[string]interface{}) {
				export["Metadata"] = map[string]interface{}{}
			},
		},
		{
			name: "note_value_exceeds_supply",
			mutate: func(export map[string]interface{}) {
				export["SaplingNotes"] = []map[string]interface{}{
					{"Note": map[string]interface{}{"Value": domain.MaxMoney + 1}},
				}
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			export := validExport()
			tt.mutate(export)
			blob, err := json.Marshal(export)
			require.NoError(t, err)

			target := newTestService()
			_, err = target.InitWallet(ctx, "target", "regtest")
			require.NoError(t, err)
			require.NoError(t, target.AddSaplingNote(ctx, newTestSaplingNote(0, 42)))

			err = target.ImportWallet(ctx, blob)
			require.ErrorIs(t, err, application.ErrMalformedImport)

			// a rejected import leaves the wallet untouched
			metadata, err := target.GetMetadata(ctx)
			require.NoError(t, err)
			require.Equal(t, "target", metadata.Name)
			notes, err := target.ListNotes(ctx, 0, "")
			require.NoError(t, err)
			require.Len(t, notes, 1)
		})
	}

	err := newTestService().ImportWallet(ctx, []byte("not json"))
	require.ErrorIs(t, err, application.ErrMalformedImport)
}
