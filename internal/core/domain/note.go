package domain

import "time"

// ClaimNullifier derives the note's one-time claim nullifier.
func (n SaplingNote) ClaimNullifier() Nullifier {
	return DeriveSaplingClaimNullifier(n.NullifierKey, n.Randomness)
}

// ClaimNullifier derives the note's one-time claim nullifier.
func (n OrchardNote) ClaimNullifier() Nullifier {
	return DeriveOrchardClaimNullifier(n.NullifierKey, n.Rho, n.Psi, n.NoteCommitment)
}

// NewSaplingNoteRecord returns an unspent record for the given note, or an
// error if the note value breaks the maximum supply bound.
func NewSaplingNoteRecord(note SaplingNote) (*SaplingNoteRecord, error) {
	if note.Value > MaxMoney {
		return nil, ErrInvalidNoteValue
	}
	return &SaplingNoteRecord{
		Note:      note,
		CreatedAt: time.Now().Unix(),
	}, nil
}

// NewOrchardNoteRecord returns an unspent record for the given note, or an
// error if the note value breaks the maximum supply bound.
func NewOrchardNoteRecord(note OrchardNote) (*OrchardNoteRecord, error) {
	if note.Value > MaxMoney {
		return nil, ErrInvalidNoteValue
	}
	return &OrchardNoteRecord{
		Note:      note,
		CreatedAt: time.Now().Unix(),
	}, nil
}

// Key returns the storage key of the record.
func (r SaplingNoteRecord) Key() NoteKey {
	return NoteKey{Pool: PoolSapling, Position: r.Note.Position}
}

// Key returns the storage key of the record.
func (r OrchardNoteRecord) Key() NoteKey {
	return NoteKey{Pool: PoolOrchard, Position: r.Note.Position}
}

// MarkSpent flips the spent flag and stamps the last-used time. Calling it
// on an already spent record is a no-op.
func (r *SaplingNoteRecord) MarkSpent() {
	if r.Spent {
		return
	}
	r.Spent = true
	r.LastUsed = time.Now().Unix()
}

// MarkSpent flips the spent flag and stamps the last-used time. Calling it
// on an already spent record is a no-op.
func (r *OrchardNoteRecord) MarkSpent() {
	if r.Spent {
		return
	}
	r.Spent = true
	r.LastUsed = time.Now().Unix()
}
