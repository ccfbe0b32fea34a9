package application

import (
	"context"
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/masp-network/claimd/internal/core/domain"
	"github.com/masp-network/claimd/internal/core/ports"
)

// WalletService is the wallet aggregate: it exclusively owns the note
// inventory and the nullifier registries through the repo manager and is the
// only component allowed to mutate them.
//
// A single RWMutex serializes claim acceptance against balance and listing
// reads, on top of the snapshot isolation the storage transactions already
// give. One wallet instance, one writer.
type WalletService struct {
	repoManager  ports.RepoManager
	proofBackend ports.ProofBackend
	chainSource  ports.ChainSource

	lock *sync.RWMutex
}

// NewWalletService returns a wallet service on top of the given repositories
// and external collaborators.
func NewWalletService(
	repoManager ports.RepoManager,
	proofBackend ports.ProofBackend,
	chainSource ports.ChainSource,
) *WalletService {
	return &WalletService{
		repoManager:  repoManager,
		proofBackend: proofBackend,
		chainSource:  chainSource,
		lock:         &sync.RWMutex{},
	}
}

// InitWallet writes the metadata singleton of a brand new wallet.
func (s *WalletService) InitWallet(
	ctx context.Context, name, network string,
) (*domain.WalletMetadata, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	metadata := domain.NewWalletMetadata(name, network)
	if _, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			if existing, _ := s.repoManager.WalletRepository().GetMetadata(ctx); existing != nil {
				return nil, ErrWalletAlreadyInitialized
			}
			return nil, s.repoManager.WalletRepository().InsertMetadata(ctx, *metadata)
		},
	); err != nil {
		return nil, err
	}
	if err := s.repoManager.Flush(); err != nil {
		return nil, err
	}

	log.WithField("name", name).WithField("network", network).
		Info("initialized new wallet")
	return metadata, nil
}

// GetMetadata returns the wallet metadata, or ErrWalletNotInitialized.
func (s *WalletService) GetMetadata(
	ctx context.Context,
) (*domain.WalletMetadata, error) {
	res, err := s.repoManager.RunTransaction(
		ctx, true, func(ctx context.Context) (interface{}, error) {
			return s.repoManager.WalletRepository().GetMetadata(ctx)
		},
	)
	if err != nil {
		if err == domain.ErrMetadataNotFound {
			return nil, ErrWalletNotInitialized
		}
		return nil, err
	}
	return res.(*domain.WalletMetadata), nil
}

// UpdateLastSync stamps a successful chain sync on the metadata.
func (s *WalletService) UpdateLastSync(ctx context.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	_, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			return nil, s.repoManager.WalletRepository().UpdateMetadata(
				ctx, func(m *domain.WalletMetadata) (*domain.WalletMetadata, error) {
					m.Synced()
					return m, nil
				},
			)
		},
	)
	return err
}

// AddSaplingNote imports a Sapling-style note into the inventory as a fresh
// unspent record.
func (s *WalletService) AddSaplingNote(
	ctx context.Context, note domain.SaplingNote,
) error {
	record, err := domain.NewSaplingNoteRecord(note)
	if err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if _, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			return nil, s.repoManager.NoteRepository().AddSaplingNote(ctx, *record)
		},
	); err != nil {
		return err
	}

	log.WithField("value", note.Value).WithField("position", note.Position).
		Info("added sapling note")
	return nil
}

// AddOrchardNote imports an Orchard-style note into the inventory as a fresh
// unspent record.
func (s *WalletService) AddOrchardNote(
	ctx context.Context, note domain.OrchardNote,
) error {
	record, err := domain.NewOrchardNoteRecord(note)
	if err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if _, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			return nil, s.repoManager.NoteRepository().AddOrchardNote(ctx, *record)
		},
	); err != nil {
		return err
	}

	log.WithField("value", note.Value).WithField("position", note.Position).
		Info("added orchard note")
	return nil
}

// ListNotes returns the note inventory, optionally filtered by a minimum
// value and by pool, ordered by pool then tree position.
func (s *WalletService) ListNotes(
	ctx context.Context, minValue uint64, pool string,
) ([]NoteInfo, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	res, err := s.repoManager.RunTransaction(
		ctx, true, func(ctx context.Context) (interface{}, error) {
			infos := make([]NoteInfo, 0)
			if pool == "" || pool == domain.PoolSapling {
				records, err := s.repoManager.NoteRepository().GetAllSaplingNotes(ctx)
				if err != nil {
					return nil, err
				}
				for _, r := range sortSaplingRecords(records) {
					if r.Note.Value < minValue {
						continue
					}
					infos = append(infos, NoteInfo{
						Pool:           domain.PoolSapling,
						Value:          r.Note.Value,
						Amount:         displayAmount(r.Note.Value),
						Position:       r.Note.Position,
						Spent:          r.Spent,
						CreatedAt:      r.CreatedAt,
						LastUsed:       r.LastUsed,
						ClaimNullifier: r.Note.ClaimNullifier().Hex(),
					})
				}
			}
			if pool == "" || pool == domain.PoolOrchard {
				records, err := s.repoManager.NoteRepository().GetAllOrchardNotes(ctx)
				if err != nil {
					return nil, err
				}
				for _, r := range sortOrchardRecords(records) {
					if r.Note.Value < minValue {
						continue
					}
					infos = append(infos, NoteInfo{
						Pool:           domain.PoolOrchard,
						Value:          r.Note.Value,
						Amount:         displayAmount(r.Note.Value),
						Position:       r.Note.Position,
						Spent:          r.Spent,
						CreatedAt:      r.CreatedAt,
						LastUsed:       r.LastUsed,
						ClaimNullifier: r.Note.ClaimNullifier().Hex(),
					})
				}
			}
			return infos, nil
		},
	)
	if err != nil {
		return nil, err
	}
	return res.([]NoteInfo), nil
}

// GetBalance computes the per-pool balances: the sum of the values of all
// unspent notes. The two pools are scanned concurrently, each within its own
// read-only snapshot.
func (s *WalletService) GetBalance(ctx context.Context) ([]BalanceInfo, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	var saplingBalance, orchardBalance BalanceInfo
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := s.repoManager.RunTransaction(
			gCtx, true, func(ctx context.Context) (interface{}, error) {
				records, err := s.repoManager.NoteRepository().GetAllSaplingNotes(ctx)
				if err != nil {
					return nil, err
				}
				info := BalanceInfo{Pool: domain.PoolSapling}
				for _, r := range records {
					info.TotalUnits += r.Note.Value
					if !r.Spent {
						info.UnspentUnits += r.Note.Value
					}
				}
				return info, nil
			},
		)
		if err != nil {
			return err
		}
		saplingBalance = res.(BalanceInfo)
		return nil
	})
	g.Go(func() error {
		res, err := s.repoManager.RunTransaction(
			gCtx, true, func(ctx context.Context) (interface{}, error) {
				records, err := s.repoManager.NoteRepository().GetAllOrchardNotes(ctx)
				if err != nil {
					return nil, err
				}
				info := BalanceInfo{Pool: domain.PoolOrchard}
				for _, r := range records {
					info.TotalUnits += r.Note.Value
					if !r.Spent {
						info.UnspentUnits += r.Note.Value
					}
				}
				return info, nil
			},
		)
		if err != nil {
			return err
		}
		orchardBalance = res.(BalanceInfo)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	saplingBalance.UnspentAmount = displayAmount(saplingBalance.UnspentUnits)
	orchardBalance.UnspentAmount = displayAmount(orchardBalance.UnspentUnits)
	return []BalanceInfo{saplingBalance, orchardBalance}, nil
}

// GetStatus returns metadata, balances and the count of recorded
// transactions in one shot.
func (s *WalletService) GetStatus(ctx context.Context) (*WalletStatus, error) {
	metadata, err := s.GetMetadata(ctx)
	if err != nil {
		return nil, err
	}
	balances, err := s.GetBalance(ctx)
	if err != nil {
		return nil, err
	}
	txs, err := s.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return &WalletStatus{
		Metadata: *metadata,
		Balances: balances,
		TxCount:  len(txs),
	}, nil
}

// ListTransactions returns the audit trail of accepted claim transactions.
func (s *WalletService) ListTransactions(
	ctx context.Context,
) ([]domain.TransactionRecord, error) {
	res, err := s.repoManager.RunTransaction(
		ctx, true, func(ctx context.Context) (interface{}, error) {
			return s.repoManager.TransactionRepository().GetAllTransactions(ctx)
		},
	)
	if err != nil {
		return nil, err
	}
	records := res.([]domain.TransactionRecord)
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt < records[j].CreatedAt
	})
	return records, nil
}

// ConfirmTransaction transitions a pending record to confirmed. Meant to be
// driven by the chain-sync collaborator once the transaction is mined.
func (s *WalletService) ConfirmTransaction(
	ctx context.Context, txHash string, blockHeight uint64,
) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	_, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			return nil, s.repoManager.TransactionRepository().UpdateTransaction(
				ctx, txHash,
				func(r *domain.TransactionRecord) (*domain.TransactionRecord, error) {
					r.Confirm(blockHeight)
					return r, nil
				},
			)
		},
	)
	return err
}

func sortSaplingRecords(records []domain.SaplingNoteRecord) []domain.SaplingNoteRecord {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Note.Position < records[j].Note.Position
	})
	return records
}

func sortOrchardRecords(records []domain.OrchardNoteRecord) []domain.OrchardNoteRecord {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Note.Position < records[j].Note.Position
	})
	return records
}
