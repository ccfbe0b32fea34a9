package application

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/masp-network/claimd/internal/core/domain"
)

// walletExport is the self-describing export blob: metadata plus the full
// note inventory and both nullifier registries. The transaction audit trail
// stays local.
type walletExport struct {
	Version           string
	Metadata          domain.WalletMetadata
	SaplingNotes      []domain.SaplingNoteRecord
	OrchardNotes      []domain.OrchardNoteRecord
	SpendNullifiers   []domain.Nullifier
	AirdropNullifiers []domain.Nullifier
}

// ExportWallet serializes the full wallet state into a single blob,
// consumable by ImportWallet. The whole read runs in one snapshot, so the
// blob is internally consistent even while other readers are active.
func (s *WalletService) ExportWallet(ctx context.Context) ([]byte, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	res, err := s.repoManager.RunTransaction(
		ctx, true, func(ctx context.Context) (interface{}, error) {
			metadata, err := s.repoManager.WalletRepository().GetMetadata(ctx)
			if err != nil {
				if err == domain.ErrMetadataNotFound {
					return nil, ErrWalletNotInitialized
				}
				return nil, err
			}
			saplingNotes, err := s.repoManager.NoteRepository().GetAllSaplingNotes(ctx)
			if err != nil {
				return nil, err
			}
			orchardNotes, err := s.repoManager.NoteRepository().GetAllOrchardNotes(ctx)
			if err != nil {
				return nil, err
			}
			spendNullifiers, err := s.repoManager.NullifierRepository().
				GetAllNullifiers(ctx, domain.NullifierKindSpend)
			if err != nil {
				return nil, err
			}
			airdropNullifiers, err := s.repoManager.NullifierRepository().
				GetAllNullifiers(ctx, domain.NullifierKindAirdrop)
			if err != nil {
				return nil, err
			}
			return &walletExport{
				Version:           domain.FormatVersion,
				Metadata:          *metadata,
				SaplingNotes:      sortSaplingRecords(saplingNotes),
				OrchardNotes:      sortOrchardRecords(orchardNotes),
				SpendNullifiers:   domain.NewNullifierSet(spendNullifiers...).Slice(),
				AirdropNullifiers: domain.NewNullifierSet(airdropNullifiers...).Slice(),
			}, nil
		},
	)
	if err != nil {
		return nil, err
	}

	return json.Marshal(res.(*walletExport))
}

// ImportWallet replaces the whole wallet state with the content of a blob
// previously produced by ExportWallet. All-or-nothing: the blob is fully
// parsed and checked before any mutation, and all replacements share one
// storage transaction, so a malformed blob leaves the prior state untouched.
func (s *WalletService) ImportWallet(ctx context.Context, blob []byte) error {
	export, err := parseWalletExport(blob)
	if err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if _, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			noteRepo := s.repoManager.NoteRepository()
			nullifierRepo := s.repoManager.NullifierRepository()

			if err := noteRepo.DeleteAllNotes(ctx); err != nil {
				return nil, err
			}
			if err := nullifierRepo.DeleteAllNullifiers(
				ctx, domain.NullifierKindSpend,
			); err != nil {
				return nil, err
			}
			if err := nullifierRepo.DeleteAllNullifiers(
				ctx, domain.NullifierKindAirdrop,
			); err != nil {
				return nil, err
			}

			if err := s.repoManager.WalletRepository().ReplaceMetadata(
				ctx, export.Metadata,
			); err != nil {
				return nil, err
			}
			for _, record := range export.SaplingNotes {
				if err := noteRepo.AddSaplingNote(ctx, record); err != nil {
					return nil, err
				}
			}
			for _, record := range export.OrchardNotes {
				if err := noteRepo.AddOrchardNote(ctx, record); err != nil {
					return nil, err
				}
			}
			for _, nf := range export.SpendNullifiers {
				if err := nullifierRepo.InsertNullifier(
					ctx, domain.NullifierKindSpend, nf,
				); err != nil {
					return nil, err
				}
			}
			for _, nf := range export.AirdropNullifiers {
				if err := nullifierRepo.InsertNullifier(
					ctx, domain.NullifierKindAirdrop, nf,
				); err != nil {
					return nil, err
				}
			}
			return nil, nil
		},
	); err != nil {
		return err
	}
	if err := s.repoManager.Flush(); err != nil {
		return err
	}

	log.WithField("sapling_notes", len(export.SaplingNotes)).
		WithField("orchard_notes", len(export.OrchardNotes)).
		Info("imported wallet data")
	return nil
}

// parseWalletExport decodes the blob and checks its internal consistency
// before anything touches storage.
func parseWalletExport(blob []byte) (*walletExport, error) {
	export := &walletExport{}
	if err := json.Unmarshal(blob, export); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedImport, err)
	}
	if export.Version != domain.FormatVersion {
		return nil, fmt.Errorf(
			"%w: unsupported format version %q", ErrMalformedImport, export.Version,
		)
	}
	if export.Metadata.Name == "" {
		return nil, fmt.Errorf("%w: missing wallet name", ErrMalformedImport)
	}
	for _, record := range export.SaplingNotes {
		if record.Note.Value > domain.MaxMoney {
			return nil, fmt.Errorf(
				"%w: sapling note at position %d exceeds maximum supply",
				ErrMalformedImport, record.Note.Position,
			)
		}
	}
	for _, record := range export.OrchardNotes {
		if record.Note.Value > domain.MaxMoney {
			return nil, fmt.Errorf(
				"%w: orchard note at position %d exceeds maximum supply",
				ErrMalformedImport, record.Note.Position,
			)
		}
	}
	return export, nil
}
