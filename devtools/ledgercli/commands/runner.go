// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package commands

import (
	"flag"
	"fmt"
	"github.com/ethereum/go-ethereum/common"
	"github.com/orbs-network/oscoin-ledger-go/config"
	"github.com/orbs-network/oscoin-ledger-go/instrumentation/metric"
	"github.com/orbs-network/oscoin-ledger-go/services/dispatch"
	"github.com/orbs-network/oscoin-ledger-go/services/statestorage/adapter"
	"github.com/orbs-network/oscoin-ledger-go/services/statestorage/adapter/leveldb"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"io"
	"os"
)

func ShowUsage() string {
	return `
Usage:  $ ledger-cli query [flags] ping|counter_value|list_projects
Usage:  $ ledger-cli query [flags] get_project <project-id>
Usage:  $ ledger-cli update [flags] counter_inc
Usage:  $ ledger-cli update [flags] register_project <url> <name> <description> <img-url>
Usage:  $ ledger-cli dump-call query|update <method> [args...]
Usage:  $ ledger-cli bench [flags]
Usage:  $ ledger-cli version
`
}

// Runner executes cli commands, writing results to Out and logs to Logger.
type Runner struct {
	Out    io.Writer
	Logger log.Logger
}

func NewRunner() *Runner {
	return &Runner{
		Out:    os.Stdout,
		Logger: log.GetLogger().WithOutput(log.NewFormattingOutput(os.Stderr, log.NewHumanReadableFormatter())),
	}
}

func exitCode(err error) int {
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

type storeFlags struct {
	configFiles config.FilesPaths
	dataDir     string
}

func (f *storeFlags) register(flagSet *flag.FlagSet) {
	flagSet.Var(&f.configFiles, "config", "path/to/config.json (may be given more than once)")
	flagSet.StringVar(&f.dataDir, "data-dir", "./_ledger", "directory holding the local word store")
}

func (f *storeFlags) loadConfig() (config.DevtoolConfig, error) {
	return config.GetDevtoolConfigFromFiles(f.configFiles, f.dataDir)
}

type contextFlags struct {
	caller string
	height uint64
}

func (f *contextFlags) register(flagSet *flag.FlagSet) {
	flagSet.StringVar(&f.caller, "caller", common.Address{}.Hex(), "caller account as 20 bytes of hex")
	flagSet.Uint64Var(&f.height, "height", 1, "block height the call executes at")
}

func (f *contextFlags) context() (*adapter.StaticContext, error) {
	if !common.IsHexAddress(f.caller) {
		return nil, errors.Errorf("caller %q is not a 20 byte hex account", f.caller)
	}
	return &adapter.StaticContext{
		Caller: common.HexToAddress(f.caller),
		Height: f.height,
	}, nil
}

// withDispatcher opens the word store named by cfg and hands a ready dispatcher to f.
func (r *Runner) withDispatcher(cfg config.DevtoolConfig, registry metric.Registry, f func(d *dispatch.Dispatcher, store adapter.WordStore) error) error {
	store, err := leveldb.NewLevelDbWordStore(cfg.LevelDbWordStoreDirectory(), r.Logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			r.Logger.Error("failed closing word store", log.Error(err))
		}
	}()

	return f(dispatch.NewDispatcher(cfg, r.Logger, registry), store)
}

func HandleVersionCommand() int {
	fmt.Println(config.GetVersion().String())
	return 0
}
