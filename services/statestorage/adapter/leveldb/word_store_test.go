// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package leveldb

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/orbs-network/oscoin-ledger-go/services/statestorage/adapter"
	"github.com/orbs-network/oscoin-ledger-go/test/files"
	"github.com/orbs-network/oscoin-ledger-go/test/with"
	"github.com/orbs-network/scribe/log"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestLevelDbWordStore_WriteThenRead(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		files.WithTempDir(t, "leveldb-word-store", func(dir string) {
			s, err := NewLevelDbWordStore(dir, harness.Logger)
			require.NoError(t, err)
			defer s.Close()

			key := common.HexToHash("0x01")
			require.Equal(t, adapter.Word{}, s.ReadWord(key))

			s.WriteWord(key, common.HexToHash("0xabcdef"))
			require.Equal(t, common.HexToHash("0xabcdef"), s.ReadWord(key))

			s.WriteWord(key, adapter.Word{})
			require.Equal(t, adapter.Word{}, s.ReadWord(key))
		})
	})
}

func TestLevelDbWordStore_PersistsAcrossReopen(t *testing.T) {
	files.WithTempDir(t, "leveldb-word-store", func(dir string) {
		logger := log.GetLogger().WithOutput(log.NewTestOutput(t, log.NewHumanReadableFormatter()))
		key := common.HexToHash("0x02")
		value := common.HexToHash("0x1234")

		s, err := NewLevelDbWordStore(dir, logger)
		require.NoError(t, err)
		s.WriteWord(key, value)
		require.NoError(t, s.Close())

		reopened, err := NewLevelDbWordStore(dir, logger)
		require.NoError(t, err)
		defer reopened.Close()

		require.Equal(t, value, reopened.ReadWord(key), "word should survive reopening the store")
	})
}

func TestLevelDbWordStore_ClosedStorePanicsWithHostFailure(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		harness.AllowErrorsMatching("word read failed")
		files.WithTempDir(t, "leveldb-word-store", func(dir string) {
			s, err := NewLevelDbWordStore(dir, harness.Logger)
			require.NoError(t, err)
			require.NoError(t, s.Close())

			key := common.HexToHash("0x03")
			defer func() {
				failure, ok := recover().(*adapter.HostFailure)
				require.True(t, ok, "reading from a closed store should panic with a host failure")
				require.Equal(t, key, failure.Key)
				require.Error(t, failure.Cause)
			}()
			s.ReadWord(key)
		})
	})
}
