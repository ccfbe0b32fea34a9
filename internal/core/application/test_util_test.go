package application_test

import (
	"context"

	"github.com/masp-network/claimd/internal/core/application"
	"github.com/masp-network/claimd/internal/core/domain"
	chainsource "github.com/masp-network/claimd/internal/infrastructure/chain"
	proofbackend "github.com/masp-network/claimd/internal/infrastructure/proof"
	"github.com/masp-network/claimd/internal/infrastructure/storage/db/inmemory"
)

var ctx = context.Background()

func newTestService() *application.WalletService {
	return application.NewWalletService(
		inmemory.NewRepoManager(),
		proofbackend.NewMockBackend(),
		chainsource.NewStaticSource(),
	)
}

func newTestSaplingNote(position uint64, value uint64) domain.SaplingNote {
	return domain.SaplingNote{
		Value:        value,
		NullifierKey: seeded32(position, 0x01),
		Randomness:   seeded32(position, 0x02),
		Position:     position,
	}
}

func newTestOrchardNote(position uint64, value uint64) domain.OrchardNote {
	return domain.OrchardNote{
		Value:          value,
		NoteCommitment: seeded32(position, 0x03),
		NullifierKey:   seeded32(position, 0x04),
		Randomness:     seeded32(position, 0x05),
		Position:       position,
		Rho:            seeded32(position, 0x06),
		Psi:            seeded32(position, 0x07),
	}
}

func seeded32(position uint64, tag byte) [32]byte {
	var out [32]byte
	out[0] = byte(position)
	out[1] = tag
	return out
}
