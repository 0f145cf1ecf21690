// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package contract

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1/state"
	. "github.com/orbs-network/orbs-contract-sdk/go/testing/unit"
	"github.com/orbs-network/oscoin-ledger-go/services/statestorage/adapter"
	"github.com/stretchr/testify/require"
	"testing"
)

var signer = common.HexToAddress("0x00a329c0648769a73afac7f9381e08fb43dbea72")

func TestContractWordStore_WriteThenRead(t *testing.T) {
	InServiceScope(signer.Bytes(), nil, func(m Mockery) {
		s := NewContractWordStore()
		key := common.HexToHash("0x10")
		value := common.HexToHash("0xcafe")

		require.Equal(t, adapter.Word{}, s.ReadWord(key), "unwritten word should be zero")

		s.WriteWord(key, value)
		require.Equal(t, value, s.ReadWord(key))

		s.WriteWord(key, adapter.Word{})
		require.Equal(t, adapter.Word{}, s.ReadWord(key))
		require.Empty(t, state.ReadBytes(key.Bytes()), "zero word should clear the state entry")
	})
}

func TestContractWordStore_PanicsOnMalformedEntry(t *testing.T) {
	InServiceScope(signer.Bytes(), nil, func(m Mockery) {
		key := common.HexToHash("0x11")
		state.WriteBytes(key.Bytes(), []byte{0x01, 0x02, 0x03})

		defer func() {
			failure, ok := recover().(*adapter.HostFailure)
			require.True(t, ok, "should panic with a host failure on an entry that is not a word")
			require.Equal(t, key, failure.Key)
		}()
		NewContractWordStore().ReadWord(key)
	})
}

func TestContractWordStore_ExposesExecutionContext(t *testing.T) {
	InServiceScope(signer.Bytes(), nil, func(m Mockery) {
		m.MockEnvBlockHeight(155)

		s := NewContractWordStore()
		require.Equal(t, signer, s.CallerAccount())
		require.EqualValues(t, 155, s.BlockHeight())
	})
}
