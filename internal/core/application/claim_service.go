package application

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/thanhpk/randstr"

	"github.com/masp-network/claimd/internal/core/domain"
	"github.com/masp-network/claimd/internal/core/ports"
)

// CreateClaim builds a claim transaction spending the wallet note at the
// given inventory index of the given pool, minting amount base units to the
// recipient in the destination pool. Construction is free of side effects:
// the note is marked spent only when the transaction is accepted by
// ProcessTransaction.
func (s *WalletService) CreateClaim(
	ctx context.Context,
	pool string, noteIndex int, amount uint64, recipient string,
) (*domain.ClaimTransaction, error) {
	if pool != domain.PoolSapling && pool != domain.PoolOrchard {
		return nil, domain.ErrUnknownPool
	}

	s.lock.RLock()
	defer s.lock.RUnlock()

	res, err := s.repoManager.RunTransaction(
		ctx, true, func(ctx context.Context) (interface{}, error) {
			return s.buildClaim(ctx, pool, noteIndex, amount, recipient)
		},
	)
	if err != nil {
		return nil, err
	}

	tx := res.(*domain.ClaimTransaction)
	nf, _ := tx.ClaimNullifier()
	log.WithField("pool", pool).WithField("nullifier", nf.Hex()).
		Info("built claim transaction")
	return tx, nil
}

func (s *WalletService) buildClaim(
	ctx context.Context,
	pool string, noteIndex int, amount uint64, recipient string,
) (*domain.ClaimTransaction, error) {
	snapshot, err := s.repoManager.NullifierRepository().GetAllNullifiers(
		ctx, domain.NullifierKindAirdrop,
	)
	if err != nil {
		return nil, err
	}

	var (
		noteValue uint64
		position  uint64
		nullifier domain.Nullifier
	)
	switch pool {
	case domain.PoolSapling:
		records, err := s.repoManager.NoteRepository().GetAllSaplingNotes(ctx)
		if err != nil {
			return nil, err
		}
		records = sortSaplingRecords(records)
		if noteIndex < 0 || noteIndex >= len(records) {
			return nil, ErrInvalidNoteIndex
		}
		note := records[noteIndex].Note
		noteValue, position, nullifier = note.Value, note.Position, note.ClaimNullifier()
	case domain.PoolOrchard:
		records, err := s.repoManager.NoteRepository().GetAllOrchardNotes(ctx)
		if err != nil {
			return nil, err
		}
		records = sortOrchardRecords(records)
		if noteIndex < 0 || noteIndex >= len(records) {
			return nil, ErrInvalidNoteIndex
		}
		note := records[noteIndex].Note
		noteValue, position, nullifier = note.Value, note.Position, note.ClaimNullifier()
	}

	if amount == 0 || amount > noteValue {
		return nil, ErrInvalidAmount
	}

	root, path, err := s.chainSource.MerkleWitness(ctx, pool, position)
	if err != nil {
		return nil, err
	}

	statement, err := s.buildClaimStatement(
		ctx, pool, noteValue, nullifier, root, path, snapshot,
	)
	if err != nil {
		return nil, err
	}

	claim := domain.ClaimDescription{Pool: pool}
	switch pool {
	case domain.PoolSapling:
		claim.Sapling = statement
	case domain.PoolOrchard:
		claim.Orchard = statement
	}

	var equivalence *domain.EquivalenceStatement
	if pool == domain.PoolOrchard {
		// Bridging an Orchard note means crossing pools: the transaction
		// must also prove the Sapling-side commitment binds the same value.
		equivalence, err = s.buildEquivalence(ctx, noteValue, statement.ValueCommitment)
		if err != nil {
			return nil, err
		}
	}

	return s.assembleTransaction(ctx, pool, claim, equivalence, amount, recipient)
}

// buildClaimStatement derives the claim nullifier, commits to the note
// value, requests the proof and snapshots the claim registry into the
// statement's public inputs. A failed or cancelled proof request leaves no
// trace: nothing has been written yet.
func (s *WalletService) buildClaimStatement(
	ctx context.Context,
	pool string,
	noteValue uint64,
	nullifier domain.Nullifier,
	root domain.MerkleRoot,
	path domain.MerklePath,
	snapshot []domain.Nullifier,
) (*domain.ClaimStatement, error) {
	valueCommitment := domain.ComputeValueCommitment(noteValue, randomScalar())
	randomizedKey := domain.DeriveRandomizedKey(randomScalar())

	witness := ports.ClaimWitness{
		Root:              root,
		Path:              path,
		ValueCommitment:   valueCommitment,
		ClaimNullifier:    nullifier,
		RandomizedKey:     randomizedKey,
		NullifierSnapshot: snapshot,
	}
	proof, err := s.proofBackend.ProveClaim(ctx, pool, witness)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrProofBackend, err)
	}

	return &domain.ClaimStatement{
		Root:              root,
		ValueCommitment:   valueCommitment,
		ClaimNullifier:    nullifier,
		RandomizedKey:     randomizedKey,
		NullifierSnapshot: snapshot,
		Proof:             proof,
	}, nil
}

func (s *WalletService) buildEquivalence(
	ctx context.Context,
	noteValue uint64,
	ownCommitment domain.ValueCommitment,
) (*domain.EquivalenceStatement, error) {
	saplingSide := domain.ComputeValueCommitment(noteValue, randomScalar())
	witness := ports.EquivalenceWitness{
		Value:                  noteValue,
		SaplingValueCommitment: saplingSide,
		OrchardValueCommitment: ownCommitment,
	}
	proof, err := s.proofBackend.ProveEquivalence(ctx, witness)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrProofBackend, err)
	}

	return &domain.EquivalenceStatement{
		SaplingValueCommitment: saplingSide,
		OrchardValueCommitment: ownCommitment,
		Proof:                  proof,
	}, nil
}

// assembleTransaction packages the claim statement with the destination
// descriptions and the binding signature placeholder. Pure assembly.
func (s *WalletService) assembleTransaction(
	ctx context.Context,
	pool string,
	claim domain.ClaimDescription,
	equivalence *domain.EquivalenceStatement,
	amount uint64, recipient string,
) (*domain.ClaimTransaction, error) {
	mintCommitment := domain.ComputeValueCommitment(amount, randomScalar())
	mintProof, err := s.proofBackend.ProveMint(ctx, pool, mintCommitment)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrProofBackend, err)
	}

	outputCommitment := domain.ComputeValueCommitment(amount, randomScalar())
	outputProof, err := s.proofBackend.ProveOutput(ctx, pool, outputCommitment)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrProofBackend, err)
	}

	var recipientKey domain.PublicKey
	copy(recipientKey[:], recipient)

	var bindingSig domain.BindingSignature
	copy(bindingSig[:], randstr.Bytes(len(bindingSig)))

	return &domain.ClaimTransaction{
		Claim: claim,
		Output: domain.OutputDescription{
			ValueCommitment:   outputCommitment,
			EphemeralKey:      domain.DeriveRandomizedKey(randomScalar()),
			EncryptedNote:     randstr.Bytes(domain.EncryptedNoteSize),
			EncryptedOutgoing: randstr.Bytes(domain.EncryptedOutgoingSize),
			Proof:             outputProof,
		},
		Mint: domain.MintDescription{
			ValueCommitment: mintCommitment,
			RecipientKey:    recipientKey,
			Proof:           mintProof,
		},
		Equivalence: equivalence,
		BindingSig:  bindingSig,
	}, nil
}

// VerifyTransaction runs the validation state machine without accepting the
// transaction: no nullifier is recorded, no note is marked spent.
func (s *WalletService) VerifyTransaction(
	ctx context.Context, tx *domain.ClaimTransaction,
) (*ValidationResult, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	res, err := s.repoManager.RunTransaction(
		ctx, true, func(ctx context.Context) (interface{}, error) {
			return s.validate(ctx, tx)
		},
	)
	if err != nil {
		return nil, err
	}
	return res.(*ValidationResult), nil
}

// ProcessTransaction validates the transaction and, when it is accepted,
// atomically records its claim nullifier, marks the source note spent and
// appends the audit record. The three mutations share one storage
// transaction: after a crash either all of them are visible or none is.
func (s *WalletService) ProcessTransaction(
	ctx context.Context, tx *domain.ClaimTransaction, amount uint64, recipient string,
) (*ValidationResult, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	res, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			result, err := s.validate(ctx, tx)
			if err != nil {
				return nil, err
			}
			if !result.Accepted() {
				return result, nil
			}
			if err := s.accept(ctx, tx, result.TxHash, amount, recipient); err != nil {
				return nil, err
			}
			return result, nil
		},
	)
	if err != nil {
		return nil, err
	}

	result := res.(*ValidationResult)
	if result.Accepted() {
		if err := s.repoManager.Flush(); err != nil {
			return nil, err
		}
		nf, _ := tx.ClaimNullifier()
		log.WithField("tx", result.TxHash).WithField("nullifier", nf.Hex()).
			Info("accepted claim transaction")
	} else {
		log.WithField("tx", result.TxHash).WithError(result.Reason).
			Warn("rejected claim transaction")
	}
	return result, nil
}

// validate walks the state machine: proof, nullifier, equivalence, in that
// order, short-circuiting on the first failure.
func (s *WalletService) validate(
	ctx context.Context, tx *domain.ClaimTransaction,
) (*ValidationResult, error) {
	v := newTxValidation(tx)

	if !v.checkProof(ctx, s.proofBackend) {
		return v.result(), nil
	}

	nullifier, err := tx.ClaimNullifier()
	if err != nil {
		v.reject(err)
		return v.result(), nil
	}
	recorded, err := s.repoManager.NullifierRepository().ContainsNullifier(
		ctx, domain.NullifierKindAirdrop, nullifier,
	)
	if err != nil {
		return nil, err
	}
	if !v.checkNullifier(recorded) {
		return v.result(), nil
	}

	if !v.checkEquivalence(ctx, s.proofBackend) {
		return v.result(), nil
	}

	v.accept()
	return v.result(), nil
}

// accept applies the acceptance mutations inside the caller's storage
// transaction.
func (s *WalletService) accept(
	ctx context.Context,
	tx *domain.ClaimTransaction,
	txHash string, amount uint64, recipient string,
) error {
	nullifier, err := tx.ClaimNullifier()
	if err != nil {
		return err
	}

	if err := s.repoManager.NullifierRepository().InsertNullifier(
		ctx, domain.NullifierKindAirdrop, nullifier,
	); err != nil {
		return err
	}

	if err := s.markSourceNoteSpent(ctx, tx.Claim.Pool, nullifier); err != nil {
		return err
	}

	record := domain.NewTransactionRecord(txHash, nullifier, amount, recipient)
	return s.repoManager.TransactionRepository().AddTransaction(ctx, *record)
}

// markSourceNoteSpent locates the owned note whose re-derived claim
// nullifier matches the transaction's and flips its spent flag. Derivation
// is deterministic, so the match is exact. Transactions claiming notes this
// wallet does not own leave the inventory untouched.
func (s *WalletService) markSourceNoteSpent(
	ctx context.Context, pool string, nullifier domain.Nullifier,
) error {
	switch pool {
	case domain.PoolSapling:
		records, err := s.repoManager.NoteRepository().GetAllSaplingNotes(ctx)
		if err != nil {
			return err
		}
		for _, r := range records {
			if r.Note.ClaimNullifier() == nullifier {
				return s.repoManager.NoteRepository().UpdateSaplingNote(
					ctx, r.Note.Position,
					func(r *domain.SaplingNoteRecord) (*domain.SaplingNoteRecord, error) {
						r.MarkSpent()
						return r, nil
					},
				)
			}
		}
	case domain.PoolOrchard:
		records, err := s.repoManager.NoteRepository().GetAllOrchardNotes(ctx)
		if err != nil {
			return err
		}
		for _, r := range records {
			if r.Note.ClaimNullifier() == nullifier {
				return s.repoManager.NoteRepository().UpdateOrchardNote(
					ctx, r.Note.Position,
					func(r *domain.OrchardNoteRecord) (*domain.OrchardNoteRecord, error) {
						r.MarkSpent()
						return r, nil
					},
				)
			}
		}
	default:
		return domain.ErrUnknownPool
	}
	return nil
}

func randomScalar() domain.Scalar {
	var s domain.Scalar
	copy(s[:], randstr.Bytes(len(s)))
	return s
}
