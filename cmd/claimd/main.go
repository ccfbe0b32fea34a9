package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/masp-network/claimd/internal/config"
	"github.com/masp-network/claimd/internal/core/application"
	chainsource "github.com/masp-network/claimd/internal/infrastructure/chain"
	proofbackend "github.com/masp-network/claimd/internal/infrastructure/proof"
	dbbadger "github.com/masp-network/claimd/internal/infrastructure/storage/db/badger"
)

func main() {
	app := cli.NewApp()

	app.Version = "0.1.0"
	app.Name = "claimd CLI"
	app.Usage = "Command line interface for the shielded claim wallet"
	app.Before = func(ctx *cli.Context) error {
		if err := config.InitConfig(); err != nil {
			return err
		}
		log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))
		return nil
	}
	app.Commands = append(
		app.Commands,
		&initwallet,
		&status,
		&addnote,
		&listnotes,
		&balance,
		&claim,
		&verify,
		&listtxs,
		&exportwallet,
		&importwallet,
	)

	err := app.Run(os.Args)
	if err != nil {
		fatal(err)
	}
}

// withWallet opens the wallet storage, runs the handler against a fully wired
// wallet service and closes the storage afterwards.
func withWallet(handler func(svc *application.WalletService) error) error {
	repoManager, err := dbbadger.NewRepoManager(config.GetDbDir(), nil)
	if err != nil {
		return err
	}
	defer repoManager.Close()

	svc := application.NewWalletService(
		repoManager,
		proofbackend.NewMockBackend(),
		chainsource.NewStaticSource(),
	)
	return handler(svc)
}

func printRespJSON(resp interface{}) {
	buf, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(buf))
}

func decodeHex32(s string) ([32]byte, error) {
	var out [32]byte
	raw, err := hex.DecodeString(s)
	if err != nil {
		return out, err
	}
	if len(raw) != 32 {
		return out, fmt.Errorf("expected 32 bytes, got %d", len(raw))
	}
	copy(out[:], raw)
	return out, nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[claimd] %v\n", err)
	os.Exit(1)
}
