package dbbadger

import (
	"context"
	"os"

	"github.com/masp-network/claimd/internal/core/ports"
)

var ctx = context.Background()
var manager ports.RepoManager
var testDbDir string

func before() {
	var err error

	testDbDir, err = os.MkdirTemp("", "claimd-testdb")
	if err != nil {
		panic(err)
	}
	manager, err = NewRepoManager(testDbDir, nil)
	if err != nil {
		panic(err)
	}
}

func after() {
	manager.Close()

	if err := os.RemoveAll(testDbDir); err != nil {
		panic(err)
	}
}
