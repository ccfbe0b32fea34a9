package domain

import (
	"time"

	"github.com/google/uuid"
)

// FormatVersion is the persisted wallet format version. Bumped on breaking
// changes of the stored shapes.
const FormatVersion = "1"

// WalletMetadata is the single per-wallet descriptor, read at load and
// rewritten on sync or mutation.
type WalletMetadata struct {
	WalletID  string
	Name      string
	CreatedAt int64
	LastSync  int64
	Network   string
	Version   string
}

// NewWalletMetadata returns the metadata of a freshly initialized wallet.
func NewWalletMetadata(name, network string) *WalletMetadata {
	return &WalletMetadata{
		WalletID:  uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().Unix(),
		Network:   network,
		Version:   FormatVersion,
	}
}

// Synced stamps the last successful chain sync.
func (m *WalletMetadata) Synced() {
	m.LastSync = time.Now().Unix()
}
