package domain

import "errors"

var (
	// ErrInvalidNoteValue is thrown when a note value exceeds the maximum supply
	ErrInvalidNoteValue = errors.New("note value exceeds maximum supply")
	// ErrUnknownPool is thrown when a pool tag is neither sapling nor orchard
	ErrUnknownPool = errors.New("unknown pool type")
	// ErrMissingClaimStatement is thrown when a claim description carries no
	// statement for its declared pool
	ErrMissingClaimStatement = errors.New("claim description is missing its statement")
	// ErrInvalidNullifierSize ...
	ErrInvalidNullifierSize = errors.New("nullifier must be 32 bytes")
	// ErrNoteNotFound ...
	ErrNoteNotFound = errors.New("note does not exist")
	// ErrNoteAlreadyExists is thrown when importing a note at an already
	// occupied tree position
	ErrNoteAlreadyExists = errors.New("note already stored at this position")
	// ErrMetadataNotFound is thrown when loading a wallet that was never initialized
	ErrMetadataNotFound = errors.New("wallet metadata not found")
	// ErrTransactionNotFound ...
	ErrTransactionNotFound = errors.New("transaction record does not exist")
)
