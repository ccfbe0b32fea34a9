package main

import (
	"fmt"
	"io/ioutil"

	"github.com/urfave/cli/v2"

	"github.com/masp-network/claimd/internal/core/application"
	"github.com/masp-network/claimd/internal/core/domain"
)

var claim = cli.Command{
	Name:  "claim",
	Usage: "build a claim transaction for an owned note and process it",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "pool",
			Usage: "pool of the note to claim, sapling or orchard",
			Value: domain.PoolSapling,
		},
		&cli.IntFlag{
			Name:     "note_index",
			Usage:    "index of the note in the pool's inventory listing",
			Required: true,
		},
		&cli.Uint64Flag{
			Name:     "amount",
			Usage:    "amount to claim in base units",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "recipient",
			Usage:    "recipient address in the destination pool",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "out",
			Usage: "also write the encoded transaction to this path",
		},
		&cli.BoolFlag{
			Name:  "dry_run",
			Usage: "build and validate only, do not record the claim",
		},
	},
	Action: claimAction,
}

var verify = cli.Command{
	Name:  "verify",
	Usage: "validate an encoded claim transaction without recording it",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "in",
			Usage:    "path of the encoded transaction to validate",
			Required: true,
		},
	},
	Action: verifyAction,
}

var listtxs = cli.Command{
	Name:   "txs",
	Usage:  "list the accepted claim transactions",
	Action: listTxsAction,
}

func claimAction(ctx *cli.Context) error {
	var (
		pool      = ctx.String("pool")
		noteIndex = ctx.Int("note_index")
		amount    = ctx.Uint64("amount")
		recipient = ctx.String("recipient")
	)

	return withWallet(func(svc *application.WalletService) error {
		tx, err := svc.CreateClaim(ctx.Context, pool, noteIndex, amount, recipient)
		if err != nil {
			return err
		}

		if out := ctx.String("out"); out != "" {
			encoded, err := tx.Encode()
			if err != nil {
				return err
			}
			if err := ioutil.WriteFile(out, encoded, 0600); err != nil {
				return err
			}
		}

		var result *application.ValidationResult
		if ctx.Bool("dry_run") {
			result, err = svc.VerifyTransaction(ctx.Context, tx)
		} else {
			result, err = svc.ProcessTransaction(ctx.Context, tx, amount, recipient)
		}
		if err != nil {
			return err
		}

		printValidationResult(result)
		return nil
	})
}

func verifyAction(ctx *cli.Context) error {
	encoded, err := ioutil.ReadFile(ctx.String("in"))
	if err != nil {
		return err
	}
	tx, err := domain.DecodeClaimTransaction(encoded)
	if err != nil {
		return err
	}

	return withWallet(func(svc *application.WalletService) error {
		result, err := svc.VerifyTransaction(ctx.Context, tx)
		if err != nil {
			return err
		}
		printValidationResult(result)
		return nil
	})
}

func listTxsAction(ctx *cli.Context) error {
	return withWallet(func(svc *application.WalletService) error {
		txs, err := svc.ListTransactions(ctx.Context)
		if err != nil {
			return err
		}
		printRespJSON(txs)
		return nil
	})
}

func printValidationResult(result *application.ValidationResult) {
	view := struct {
		TxHash   string
		Status   string
		Accepted bool
		Reason   string
	}{
		TxHash:   result.TxHash,
		Status:   result.Status.String(),
		Accepted: result.Accepted(),
	}
	if result.Reason != nil {
		view.Reason = fmt.Sprintf("%s", result.Reason)
	}
	printRespJSON(view)
}
