// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package statestorage

import (
	"bytes"
	"fmt"
	"github.com/ethereum/go-ethereum/common"
	"github.com/orbs-network/go-mock"
	"github.com/orbs-network/oscoin-ledger-go/config"
	"github.com/orbs-network/oscoin-ledger-go/instrumentation/metric"
	"github.com/orbs-network/oscoin-ledger-go/services/statestorage/adapter"
	"github.com/orbs-network/oscoin-ledger-go/services/statestorage/adapter/memory"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"math/big"
	"testing"
)

const testMaxRecordSize = 64 * 1024

func newTestStorage() (*Storage, *memory.InMemoryWordStore) {
	store := memory.NewInMemoryWordStore()
	return NewStorage(store, config.ForStateStorageTests(testMaxRecordSize), NewMetrics(metric.NewRegistry())), store
}

func valueOfLength(length int) []byte {
	value := make([]byte, length)
	for i := range value {
		value[i] = byte(i%251) + 1
	}
	return value
}

func TestStorage_RoundTripAcrossChunkBoundaries(t *testing.T) {
	for _, length := range []int{1, 31, 32, 33, 64, 96, 100, 4097} {
		t.Run(fmt.Sprintf("length_%d", length), func(t *testing.T) {
			s, _ := newTestStorage()
			value := valueOfLength(length)

			require.NoError(t, s.Write([]byte("key"), value))

			read, found, err := s.Read([]byte("key"))
			require.NoError(t, err)
			require.True(t, found, "written record should be found")
			require.Equal(t, value, read, "record should round trip byte for byte")
		})
	}
}

func TestStorage_UnwrittenKeyIsAbsent(t *testing.T) {
	s, _ := newTestStorage()

	value, found, err := s.Read([]byte("never-written"))
	require.NoError(t, err)
	require.False(t, found)
	require.Nil(t, value)
}

func TestStorage_EmptyValueReadsAsAbsent(t *testing.T) {
	s, store := newTestStorage()

	require.NoError(t, s.Write([]byte("key"), []byte{0x01}))
	require.NoError(t, s.Write([]byte("key"), nil))

	_, found, err := s.Read([]byte("key"))
	require.NoError(t, err)
	require.False(t, found, "a zero length record should read as absent")
	require.Equal(t, adapter.Word{}, store.ReadWord(RecordKey([]byte("key"))))
}

func TestStorage_OverwriteWithShorterValue(t *testing.T) {
	s, _ := newTestStorage()

	require.NoError(t, s.Write([]byte("key"), valueOfLength(96)))
	require.NoError(t, s.Write([]byte("key"), []byte("short")))

	read, found, err := s.Read([]byte("key"))
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []byte("short"), read, "stale trailing chunks must not leak into the new value")
}

func TestStorage_KeysDoNotInterfere(t *testing.T) {
	s, _ := newTestStorage()

	require.NoError(t, s.Write([]byte("a"), []byte("value of a")))
	require.NoError(t, s.Write([]byte("b"), []byte("value of b")))

	a, _, _ := s.Read([]byte("a"))
	b, _, _ := s.Read([]byte("b"))
	require.Equal(t, []byte("value of a"), a)
	require.Equal(t, []byte("value of b"), b)
}

func TestStorage_LayoutIsLengthWordFollowedByChunks(t *testing.T) {
	s, store := newTestStorage()
	value := valueOfLength(33)

	require.NoError(t, s.Write([]byte("key"), value))

	base := RecordKey([]byte("key"))
	require.Equal(t, common.BigToHash(big.NewInt(33)), store.ReadWord(base), "length word should hold the big endian length")

	first := store.ReadWord(ChunkKey(base, 1))
	require.Equal(t, value[:32], first.Bytes())

	second := store.ReadWord(ChunkKey(base, 2))
	require.Equal(t, value[32], second[0])
	require.True(t, bytes.Equal(make([]byte, 31), second[1:]), "last chunk should be right padded with zeros")

	require.Equal(t, 3, store.WordCount())
}

func TestStorage_WriteCountIsOnePlusChunkCount(t *testing.T) {
	for _, length := range []int{0, 1, 32, 33, 96, 1000} {
		t.Run(fmt.Sprintf("length_%d", length), func(t *testing.T) {
			store := &adapter.MockWordStore{}
			store.When("WriteWord", mock.Any, mock.Any).Times(1 + int(ChunkCount(uint64(length))))

			s := NewStorage(store, config.ForStateStorageTests(testMaxRecordSize), nil)
			require.NoError(t, s.Write([]byte("key"), valueOfLength(length)))

			ok, err := store.Verify()
			require.True(t, ok, "unexpected number of word writes: %v", err)
		})
	}
}

func TestStorage_RejectsRecordAboveMaximum(t *testing.T) {
	store := &adapter.MockWordStore{}
	store.Never("WriteWord", mock.Any, mock.Any)

	s := NewStorage(store, config.ForStateStorageTests(64), nil)
	err := s.Write([]byte("key"), valueOfLength(65))

	require.Equal(t, ErrRecordTooLarge, errors.Cause(err))
	ok, verifyErr := store.Verify()
	require.True(t, ok, "rejected record should not touch the word store: %v", verifyErr)
}

func TestStorage_LengthWordAboveMaximumIsCorrupt(t *testing.T) {
	s, store := newTestStorage()
	store.WriteWord(RecordKey([]byte("key")), common.BigToHash(big.NewInt(testMaxRecordSize+1)))

	_, found, err := s.Read([]byte("key"))
	require.False(t, found)
	require.Equal(t, ErrCorruptRecord, errors.Cause(err))
}

func TestStorage_LengthWordAbove64BitsIsCorrupt(t *testing.T) {
	s, store := newTestStorage()
	store.WriteWord(RecordKey([]byte("key")), common.HexToHash("0x010000000000000000"))

	_, _, err := s.Read([]byte("key"))
	require.Equal(t, ErrCorruptRecord, errors.Cause(err))
}

func TestStorage_Uint32RoundTrip(t *testing.T) {
	s, _ := newTestStorage()

	_, found, err := s.ReadUint32([]byte("counter"))
	require.NoError(t, err)
	require.False(t, found, "unwritten uint32 should be absent, not zero")

	require.NoError(t, s.WriteUint32([]byte("counter"), 0xfffffffe))
	value, found, err := s.ReadUint32([]byte("counter"))
	require.NoError(t, err)
	require.True(t, found)
	require.EqualValues(t, 0xfffffffe, value)
}

func TestStorage_Uint32DecodeFailureIsDistinctFromAbsence(t *testing.T) {
	s, _ := newTestStorage()
	require.NoError(t, s.Write([]byte("counter"), []byte{0x01, 0x02, 0x03}))

	_, found, err := s.ReadUint32([]byte("counter"))
	require.False(t, found)
	require.Equal(t, ErrCorruptRecord, errors.Cause(err))
}

type rawRecord []byte

func (r rawRecord) IsValid() bool {
	return len(r) > 0 && r[0] == 0x7f
}

func (r rawRecord) Raw() []byte {
	return r
}

func rawRecordReader(buf []byte) Record {
	return rawRecord(buf)
}

func TestStorage_RecordRoundTrip(t *testing.T) {
	s, _ := newTestStorage()

	_, found, err := s.ReadRecord([]byte("record"), rawRecordReader)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, s.WriteRecord([]byte("record"), rawRecord{0x7f, 0x01}))
	record, found, err := s.ReadRecord([]byte("record"), rawRecordReader)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []byte{0x7f, 0x01}, record.Raw())
}

func TestStorage_UndecodableRecordIsCorrupt(t *testing.T) {
	s, _ := newTestStorage()
	require.NoError(t, s.Write([]byte("record"), []byte{0x00}))

	record, found, err := s.ReadRecord([]byte("record"), rawRecordReader)
	require.Nil(t, record)
	require.False(t, found)
	require.Equal(t, ErrCorruptRecord, errors.Cause(err))
}

func TestChunkKey_WrapsAroundKeySpace(t *testing.T) {
	max := common.HexToHash("0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

	require.Equal(t, common.Hash{}, ChunkKey(max, 1))
	require.Equal(t, common.BigToHash(big.NewInt(1)), ChunkKey(max, 2))
	require.Equal(t, common.BigToHash(big.NewInt(6)), ChunkKey(common.BigToHash(big.NewInt(5)), 1))
}

func TestStorage_CountsWordOperations(t *testing.T) {
	registry := metric.NewRegistry()
	s := NewStorage(memory.NewInMemoryWordStore(), config.ForStateStorageTests(testMaxRecordSize), NewMetrics(registry))

	require.NoError(t, s.Write([]byte("key"), valueOfLength(64)))
	_, _, err := s.Read([]byte("key"))
	require.NoError(t, err)

	require.EqualValues(t, 3, registry.Get("Ledger.StateStorage.WordWrites.Count").(*metric.Gauge).Value())
	require.EqualValues(t, 3, registry.Get("Ledger.StateStorage.WordReads.Count").(*metric.Gauge).Value())
}
