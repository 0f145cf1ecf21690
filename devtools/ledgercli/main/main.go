// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package main

import (
	"fmt"
	"github.com/orbs-network/oscoin-ledger-go/devtools/ledgercli/commands"
	"os"
)

// ledger-cli query [-data-dir=<dir>] [-config=<file>] [-caller=<hex>] [-height=<n>] <method> [args...]
// ledger-cli update [-data-dir=<dir>] [-config=<file>] [-caller=<hex>] [-height=<n>] <method> [args...]
// ledger-cli dump-call query|update <method> [args...]
// ledger-cli bench [-data-dir=<dir>] [-count=<n>]
// ledger-cli version

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Welcome to ledger-cli")
		fmt.Println("Example usage:")
		fmt.Println("")
		fmt.Println("$ ledger-cli query ping")
		fmt.Println("  Run a read-only ledger call against the local word store")
		fmt.Println("")
		fmt.Println("$ ledger-cli update -caller=0x6e8d... -height=12 register_project <url> <name> <description> <img-url>")
		fmt.Println("  Run a ledger call which mutates state")
		fmt.Println("")
		fmt.Println("$ ledger-cli dump-call query get_project 0x27c8...")
		fmt.Println("  Print the encoded call input as hex")
		fmt.Println("")
		fmt.Println("$ ledger-cli bench -count=1000")
		fmt.Println("  Increment the counter repeatedly and report dispatch metrics")
		fmt.Println("")
		os.Exit(0)
	}

	var exitCode int

	switch os.Args[1] {
	case "query":
		exitCode = commands.HandleQueryCommand(os.Args[2:])
	case "update":
		exitCode = commands.HandleUpdateCommand(os.Args[2:])
	case "dump-call":
		exitCode = commands.HandleDumpCallCommand(os.Args[2:])
	case "bench":
		exitCode = commands.HandleBenchCommand(os.Args[2:])
	case "version":
		exitCode = commands.HandleVersionCommand()
	default:
		fmt.Println(commands.ShowUsage())
		exitCode = 2
	}

	os.Exit(exitCode)
}
