package main

import (
	"io/ioutil"

	"github.com/urfave/cli/v2"

	"github.com/masp-network/claimd/internal/config"
	"github.com/masp-network/claimd/internal/core/application"
)

var initwallet = cli.Command{
	Name:  "init",
	Usage: "initialize a new wallet in the configured datadir",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "name",
			Usage: "display name of the wallet",
		},
	},
	Action: initWalletAction,
}

var status = cli.Command{
	Name:   "status",
	Usage:  "print wallet metadata, balances and transaction count",
	Action: statusAction,
}

var exportwallet = cli.Command{
	Name:  "export",
	Usage: "export the whole wallet state to a portable file",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "out",
			Usage:    "path of the export file to write",
			Required: true,
		},
	},
	Action: exportWalletAction,
}

var importwallet = cli.Command{
	Name:  "import",
	Usage: "replace the whole wallet state with an exported file",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "in",
			Usage:    "path of the export file to read",
			Required: true,
		},
	},
	Action: importWalletAction,
}

func initWalletAction(ctx *cli.Context) error {
	name := ctx.String("name")
	if name == "" {
		name = config.GetString(config.WalletNameKey)
	}
	network := config.GetString(config.NetworkKey)

	return withWallet(func(svc *application.WalletService) error {
		metadata, err := svc.InitWallet(ctx.Context, name, network)
		if err != nil {
			return err
		}
		printRespJSON(metadata)
		return nil
	})
}

func statusAction(ctx *cli.Context) error {
	return withWallet(func(svc *application.WalletService) error {
		walletStatus, err := svc.GetStatus(ctx.Context)
		if err != nil {
			return err
		}
		printRespJSON(walletStatus)
		return nil
	})
}

func exportWalletAction(ctx *cli.Context) error {
	return withWallet(func(svc *application.WalletService) error {
		blob, err := svc.ExportWallet(ctx.Context)
		if err != nil {
			return err
		}
		return ioutil.WriteFile(ctx.String("out"), blob, 0600)
	})
}

func importWalletAction(ctx *cli.Context) error {
	blob, err := ioutil.ReadFile(ctx.String("in"))
	if err != nil {
		return err
	}
	return withWallet(func(svc *application.WalletService) error {
		return svc.ImportWallet(ctx.Context, blob)
	})
}
