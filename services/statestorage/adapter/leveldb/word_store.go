// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package leveldb

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/orbs-network/oscoin-ledger-go/instrumentation/logfields"
	"github.com/orbs-network/oscoin-ledger-go/services/statestorage/adapter"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
)

// LevelDbWordStore persists words in a local LevelDB directory so that
// ledger state survives between process runs.
type LevelDbWordStore struct {
	db     *leveldb.DB
	logger log.Logger
}

func NewLevelDbWordStore(directory string, parent log.Logger) (*LevelDbWordStore, error) {
	db, err := leveldb.OpenFile(directory, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open word store at %s", directory)
	}

	logger := parent.WithTags(log.String("adapter", "leveldb-word-store"), log.String("directory", directory))
	logger.Info("opened word store")

	return &LevelDbWordStore{db: db, logger: logger}, nil
}

func (s *LevelDbWordStore) ReadWord(key adapter.WordKey) adapter.Word {
	value, err := s.db.Get(key.Bytes(), nil)
	if err == leveldb.ErrNotFound {
		return adapter.Word{}
	}
	if err != nil {
		s.logger.Error("word read failed", log.Error(err), logfields.WordKey(key))
		panic(adapter.NewHostFailure(key, errors.Wrap(err, "failed to read word")))
	}
	if len(value) != adapter.WORD_SIZE_IN_BYTES {
		panic(adapter.NewHostFailure(key, errors.Errorf("entry holds %d bytes, expected a %d byte word", len(value), adapter.WORD_SIZE_IN_BYTES)))
	}
	return common.BytesToHash(value)
}

func (s *LevelDbWordStore) WriteWord(key adapter.WordKey, value adapter.Word) {
	var err error
	if value == (adapter.Word{}) {
		err = s.db.Delete(key.Bytes(), nil)
	} else {
		err = s.db.Put(key.Bytes(), value.Bytes(), nil)
	}
	if err != nil {
		s.logger.Error("word write failed", log.Error(err), logfields.WordKey(key))
		panic(adapter.NewHostFailure(key, errors.Wrap(err, "failed to write word")))
	}
}

func (s *LevelDbWordStore) Close() error {
	return s.db.Close()
}
