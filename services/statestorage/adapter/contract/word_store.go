// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package contract

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1/address"
	"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1/env"
	"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1/state"
	"github.com/orbs-network/oscoin-ledger-go/services/statestorage/adapter"
	"github.com/pkg/errors"
)

// ContractWordStore keeps words in the state of the running Orbs contract.
// It must only be used inside a contract method invocation.
type ContractWordStore struct{}

func NewContractWordStore() *ContractWordStore {
	return &ContractWordStore{}
}

func (s *ContractWordStore) ReadWord(key adapter.WordKey) adapter.Word {
	value := state.ReadBytes(key.Bytes())
	switch len(value) {
	case 0:
		return adapter.Word{}
	case adapter.WORD_SIZE_IN_BYTES:
		return common.BytesToHash(value)
	default:
		panic(adapter.NewHostFailure(key, errors.Errorf("state entry holds %d bytes, expected a %d byte word", len(value), adapter.WORD_SIZE_IN_BYTES)))
	}
}

func (s *ContractWordStore) WriteWord(key adapter.WordKey, value adapter.Word) {
	if value == (adapter.Word{}) {
		state.Clear(key.Bytes())
		return
	}
	state.WriteBytes(key.Bytes(), value.Bytes())
}

func (s *ContractWordStore) CallerAccount() common.Address {
	return common.BytesToAddress(address.GetSignerAddress())
}

func (s *ContractWordStore) BlockHeight() uint64 {
	return env.GetBlockHeight()
}
