package dbbadger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v3"
	badgeroptions "github.com/dgraph-io/badger/v3/options"
	"github.com/timshannon/badgerhold/v4"

	"github.com/masp-network/claimd/internal/core/domain"
	"github.com/masp-network/claimd/internal/core/ports"
)

// repoManager holds the badgerhold store backing every wallet collection and
// hands out the repositories sharing it.
type repoManager struct {
	store *badgerhold.Store

	noteRepository        domain.NoteRepository
	nullifierRepository   domain.NullifierRepository
	transactionRepository domain.TransactionRepository
	walletRepository      domain.WalletRepository
}

// NewRepoManager opens (or creates if not exists) the badger store on disk
// and returns the repo manager wired on top of it.
func NewRepoManager(dbDir string, logger badger.Logger) (ports.RepoManager, error) {
	store, err := createDb(dbDir, logger)
	if err != nil {
		return nil, fmt.Errorf("opening wallet db: %w", err)
	}

	return &repoManager{
		store:                 store,
		noteRepository:        NewNoteRepositoryImpl(store),
		nullifierRepository:   NewNullifierRepositoryImpl(store),
		transactionRepository: NewTransactionRepositoryImpl(store),
		walletRepository:      NewWalletRepositoryImpl(store),
	}, nil
}

func (d *repoManager) NoteRepository() domain.NoteRepository {
	return d.noteRepository
}

func (d *repoManager) NullifierRepository() domain.NullifierRepository {
	return d.nullifierRepository
}

func (d *repoManager) TransactionRepository() domain.TransactionRepository {
	return d.transactionRepository
}

func (d *repoManager) WalletRepository() domain.WalletRepository {
	return d.walletRepository
}

// RunTransaction runs handler within a single badger transaction carried by
// the context. Write transactions commit only if the handler returns no
// error, which is what makes claim acceptance all-or-nothing.
func (d *repoManager) RunTransaction(
	ctx context.Context,
	readOnly bool,
	handler func(ctx context.Context) (interface{}, error),
) (interface{}, error) {
	tx := d.store.Badger().NewTransaction(!readOnly)
	defer tx.Discard()

	res, err := handler(context.WithValue(ctx, "tx", tx))
	if err != nil {
		return nil, err
	}

	if !readOnly {
		if err := tx.Commit(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Flush forces a durable sync of the value log.
func (d *repoManager) Flush() error {
	return d.store.Badger().Sync()
}

func (d *repoManager) Close() {
	d.store.Close()
}

// JSONEncode is a custom JSON based encoder for badger
func JSONEncode(value interface{}) ([]byte, error) {
	var buff bytes.Buffer

	en := json.NewEncoder(&buff)
	if err := en.Encode(value); err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}

// JSONDecode is a custom JSON based decoder for badger
func JSONDecode(data []byte, value interface{}) error {
	de := json.NewDecoder(bytes.NewReader(data))
	return de.Decode(value)
}

func createDb(dbDir string, logger badger.Logger) (*badgerhold.Store, error) {
	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger
	opts.Compression = badgeroptions.ZSTD

	return badgerhold.Open(badgerhold.Options{
		Encoder:          JSONEncode,
		Decoder:          JSONDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
}

func getTx(ctx context.Context) (*badger.Txn, error) {
	tx, ok := ctx.Value("tx").(*badger.Txn)
	if !ok {
		return nil, errors.New("context must contain db transaction value")
	}
	return tx, nil
}
