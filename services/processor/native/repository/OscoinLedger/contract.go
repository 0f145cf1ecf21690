// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package oscoinledger

import (
	"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1"
	"github.com/orbs-network/oscoin-ledger-go/config"
	"github.com/orbs-network/oscoin-ledger-go/instrumentation/metric"
	"github.com/orbs-network/oscoin-ledger-go/services/dispatch"
	"github.com/orbs-network/oscoin-ledger-go/services/statestorage/adapter"
	"github.com/orbs-network/oscoin-ledger-go/services/statestorage/adapter/contract"
	"github.com/orbs-network/scribe/log"
)

// helpers for avoiding reliance on strings throughout the system
const CONTRACT_NAME = "OscoinLedger"
const METHOD_CALL = "call"

/////////////////////////////////////////////////////////////////
// contract starts here

var PUBLIC = sdk.Export(call)
var SYSTEM = sdk.Export(_init)

var dispatcher = dispatch.NewDispatcher(config.ForProduction(), log.GetLogger(), metric.NewRegistry())

func _init() {
}

// call takes an encoded ledger call and returns its encoded result.
// A failed call panics so the transaction is reverted.
func call(input []byte) []byte {
	store := contract.NewContractWordStore()
	output, err := dispatcher.HandleCall(adapter.NewHost(store, store), input)
	if err != nil {
		panic(err.Error())
	}
	return output
}
