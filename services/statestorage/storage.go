// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package statestorage

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/orbs-network/membuffers/go"
	"github.com/orbs-network/oscoin-ledger-go/config"
	"github.com/orbs-network/oscoin-ledger-go/crypto/hash"
	"github.com/orbs-network/oscoin-ledger-go/instrumentation/metric"
	"github.com/orbs-network/oscoin-ledger-go/services/statestorage/adapter"
	"github.com/pkg/errors"
	"math/big"
)

const UINT32_RECORD_SIZE_IN_BYTES = 4

var ErrCorruptRecord = errors.New("state record is corrupt")
var ErrRecordTooLarge = errors.New("state record exceeds the maximum record size")

// Record is any serialized message that can be stored as a value.
type Record interface {
	IsValid() bool
	Raw() []byte
}

type RecordReader func(buf []byte) Record

type Metrics struct {
	wordReads  *metric.Gauge
	wordWrites *metric.Gauge
}

func NewMetrics(m metric.Factory) *Metrics {
	return &Metrics{
		wordReads:  m.NewGauge("Ledger.StateStorage.WordReads.Count"),
		wordWrites: m.NewGauge("Ledger.StateStorage.WordWrites.Count"),
	}
}

// Storage lays out variable length records over a word store. A record is one
// length word at keccak256(key) followed by ceil(len/32) chunk words at the
// consecutive word keys after it.
type Storage struct {
	store   adapter.WordStore
	config  config.StateStorageConfig
	metrics *Metrics
}

func NewStorage(store adapter.WordStore, config config.StateStorageConfig, metrics *Metrics) *Storage {
	return &Storage{
		store:   store,
		config:  config,
		metrics: metrics,
	}
}

func RecordKey(key []byte) adapter.WordKey {
	return common.BytesToHash(hash.CalcKeccak256(key))
}

// ChunkKey is base+offset over the 256 bit key space, wrapping around at 2^256.
func ChunkKey(base adapter.WordKey, offset uint64) adapter.WordKey {
	sum := new(big.Int).Add(base.Big(), new(big.Int).SetUint64(offset))
	return common.BigToHash(math.U256(sum))
}

func ChunkCount(length uint64) uint64 {
	return (length + adapter.WORD_SIZE_IN_BYTES - 1) / adapter.WORD_SIZE_IN_BYTES
}

func (s *Storage) Write(key []byte, value []byte) error {
	if uint64(len(value)) > uint64(s.config.StateStorageMaxRecordSizeInBytes()) {
		return errors.Wrapf(ErrRecordTooLarge, "record of %d bytes, maximum is %d", len(value), s.config.StateStorageMaxRecordSizeInBytes())
	}

	base := RecordKey(key)
	s.writeWord(base, lengthWord(uint64(len(value))))

	for i := uint64(0); i < ChunkCount(uint64(len(value))); i++ {
		var chunk adapter.Word
		copy(chunk[:], value[i*adapter.WORD_SIZE_IN_BYTES:])
		s.writeWord(ChunkKey(base, i+1), chunk)
	}

	return nil
}

// Read returns found=false for a record that was never written or was written empty.
func (s *Storage) Read(key []byte) ([]byte, bool, error) {
	base := RecordKey(key)
	length, err := s.readLength(base)
	if err != nil {
		return nil, false, err
	}
	if length == 0 {
		return nil, false, nil
	}

	value := make([]byte, 0, ChunkCount(length)*adapter.WORD_SIZE_IN_BYTES)
	for i := uint64(0); i < ChunkCount(length); i++ {
		chunk := s.readWord(ChunkKey(base, i+1))
		value = append(value, chunk[:]...)
	}

	return value[:length], true, nil
}

func (s *Storage) WriteRecord(key []byte, record Record) error {
	return s.Write(key, record.Raw())
}

func (s *Storage) ReadRecord(key []byte, reader RecordReader) (Record, bool, error) {
	buf, found, err := s.Read(key)
	if err != nil || !found {
		return nil, found, err
	}

	record := reader(buf)
	if !record.IsValid() {
		return nil, false, errors.Wrapf(ErrCorruptRecord, "record %x does not decode", key)
	}
	return record, true, nil
}

func (s *Storage) WriteUint32(key []byte, value uint32) error {
	buf := make([]byte, UINT32_RECORD_SIZE_IN_BYTES)
	membuffers.WriteUint32(buf, value)
	return s.Write(key, buf)
}

func (s *Storage) ReadUint32(key []byte) (uint32, bool, error) {
	buf, found, err := s.Read(key)
	if err != nil || !found {
		return 0, found, err
	}
	if len(buf) != UINT32_RECORD_SIZE_IN_BYTES {
		return 0, false, errors.Wrapf(ErrCorruptRecord, "record %x holds %d bytes, expected a uint32", key, len(buf))
	}
	return membuffers.GetUint32(buf), true, nil
}

func (s *Storage) readLength(base adapter.WordKey) (uint64, error) {
	word := s.readWord(base)
	length := word.Big()
	if !length.IsUint64() || length.Uint64() > uint64(s.config.StateStorageMaxRecordSizeInBytes()) {
		return 0, errors.Wrapf(ErrCorruptRecord, "length word %s at %s is out of range", word.Hex(), base.Hex())
	}
	return length.Uint64(), nil
}

func (s *Storage) readWord(key adapter.WordKey) adapter.Word {
	if s.metrics != nil {
		s.metrics.wordReads.Inc()
	}
	return s.store.ReadWord(key)
}

func (s *Storage) writeWord(key adapter.WordKey, value adapter.Word) {
	if s.metrics != nil {
		s.metrics.wordWrites.Inc()
	}
	s.store.WriteWord(key, value)
}

func lengthWord(length uint64) adapter.Word {
	return common.BigToHash(new(big.Int).SetUint64(length))
}
