package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/masp-network/claimd/internal/core/application"
	"github.com/masp-network/claimd/internal/core/domain"
)

var addnote = cli.Command{
	Name:  "addnote",
	Usage: "import an owned note into the wallet inventory",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "pool",
			Usage: "source pool of the note, sapling or orchard",
			Value: domain.PoolSapling,
		},
		&cli.Uint64Flag{
			Name:     "value",
			Usage:    "note value in base units",
			Required: true,
		},
		&cli.Uint64Flag{
			Name:     "position",
			Usage:    "position of the note commitment in the pool's tree",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "commitment",
			Usage:    "hex-encoded 32-byte note commitment",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "nullifier_key",
			Usage:    "hex-encoded 32-byte nullifier-deriving key",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "randomness",
			Usage:    "hex-encoded 32-byte note randomness",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "diversifier",
			Usage: "hex-encoded 11-byte diversifier",
		},
		&cli.StringFlag{
			Name:  "rho",
			Usage: "hex-encoded 32-byte rho, orchard notes only",
		},
		&cli.StringFlag{
			Name:  "psi",
			Usage: "hex-encoded 32-byte psi, orchard notes only",
		},
	},
	Action: addNoteAction,
}

var listnotes = cli.Command{
	Name:  "notes",
	Usage: "list the note inventory",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "pool",
			Usage: "only list notes of this pool",
		},
		&cli.Uint64Flag{
			Name:  "min_value",
			Usage: "only list notes worth at least this many base units",
		},
	},
	Action: listNotesAction,
}

var balance = cli.Command{
	Name:   "balance",
	Usage:  "print the per-pool unspent balances",
	Action: balanceAction,
}

func addNoteAction(ctx *cli.Context) error {
	commitment, err := decodeHex32(ctx.String("commitment"))
	if err != nil {
		return fmt.Errorf("invalid commitment: %s", err)
	}
	nullifierKey, err := decodeHex32(ctx.String("nullifier_key"))
	if err != nil {
		return fmt.Errorf("invalid nullifier_key: %s", err)
	}
	randomness, err := decodeHex32(ctx.String("randomness"))
	if err != nil {
		return fmt.Errorf("invalid randomness: %s", err)
	}

	var diversifier domain.Diversifier
	if s := ctx.String("diversifier"); s != "" {
		raw, err := hex.DecodeString(s)
		if err != nil || len(raw) != len(diversifier) {
			return fmt.Errorf("invalid diversifier")
		}
		copy(diversifier[:], raw)
	}

	return withWallet(func(svc *application.WalletService) error {
		switch pool := ctx.String("pool"); pool {
		case domain.PoolSapling:
			return svc.AddSaplingNote(ctx.Context, domain.SaplingNote{
				Diversifier:    diversifier,
				Value:          ctx.Uint64("value"),
				NoteCommitment: commitment,
				NullifierKey:   nullifierKey,
				Randomness:     randomness,
				Position:       ctx.Uint64("position"),
			})
		case domain.PoolOrchard:
			rho, err := decodeHex32(ctx.String("rho"))
			if err != nil {
				return fmt.Errorf("invalid rho: %s", err)
			}
			psi, err := decodeHex32(ctx.String("psi"))
			if err != nil {
				return fmt.Errorf("invalid psi: %s", err)
			}
			return svc.AddOrchardNote(ctx.Context, domain.OrchardNote{
				Diversifier:    diversifier,
				Value:          ctx.Uint64("value"),
				NoteCommitment: commitment,
				NullifierKey:   nullifierKey,
				Randomness:     randomness,
				Position:       ctx.Uint64("position"),
				Rho:            rho,
				Psi:            psi,
			})
		default:
			return domain.ErrUnknownPool
		}
	})
}

func listNotesAction(ctx *cli.Context) error {
	return withWallet(func(svc *application.WalletService) error {
		notes, err := svc.ListNotes(
			ctx.Context, ctx.Uint64("min_value"), ctx.String("pool"),
		)
		if err != nil {
			return err
		}
		printRespJSON(notes)
		return nil
	})
}

func balanceAction(ctx *cli.Context) error {
	return withWallet(func(svc *application.WalletService) error {
		balances, err := svc.GetBalance(ctx.Context)
		if err != nil {
			return err
		}
		printRespJSON(balances)
		return nil
	})
}
