package domain

import "context"

// NoteRepository is the durable inventory of owned notes per pool.
type NoteRepository interface {
	AddSaplingNote(ctx context.Context, record SaplingNoteRecord) error
	AddOrchardNote(ctx context.Context, record OrchardNoteRecord) error
	GetAllSaplingNotes(ctx context.Context) ([]SaplingNoteRecord, error)
	GetAllOrchardNotes(ctx context.Context) ([]OrchardNoteRecord, error)
	GetSaplingNote(ctx context.Context, position uint64) (*SaplingNoteRecord, error)
	GetOrchardNote(ctx context.Context, position uint64) (*OrchardNoteRecord, error)
	UpdateSaplingNote(
		ctx context.Context,
		position uint64,
		updateFn func(r *SaplingNoteRecord) (*SaplingNoteRecord, error),
	) error
	UpdateOrchardNote(
		ctx context.Context,
		position uint64,
		updateFn func(r *OrchardNoteRecord) (*OrchardNoteRecord, error),
	) error
	// DeleteAllNotes drops the whole note inventory. Used only by wholesale
	// wallet import.
	DeleteAllNotes(ctx context.Context) error
}
