// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package memory

import (
	"bytes"
	"fmt"
	"github.com/ethereum/go-ethereum/common"
	"github.com/orbs-network/oscoin-ledger-go/services/statestorage/adapter"
	"sort"
	"strings"
	"sync"
)

type InMemoryWordStore struct {
	mu struct {
		sync.RWMutex
		words  map[adapter.WordKey]adapter.Word
		caller common.Address
		height uint64
	}
}

func NewInMemoryWordStore() *InMemoryWordStore {
	s := &InMemoryWordStore{}
	s.mu.words = make(map[adapter.WordKey]adapter.Word)
	return s
}

func (s *InMemoryWordStore) ReadWord(key adapter.WordKey) adapter.Word {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.mu.words[key]
}

func (s *InMemoryWordStore) WriteWord(key adapter.WordKey, value adapter.Word) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if value == (adapter.Word{}) {
		delete(s.mu.words, key)
		return
	}
	s.mu.words[key] = value
}

func (s *InMemoryWordStore) CallerAccount() common.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.mu.caller
}

func (s *InMemoryWordStore) BlockHeight() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.mu.height
}

func (s *InMemoryWordStore) SetCaller(caller common.Address) *InMemoryWordStore {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mu.caller = caller
	return s
}

func (s *InMemoryWordStore) SetBlockHeight(height uint64) *InMemoryWordStore {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mu.height = height
	return s
}

// WordCount is the number of non-zero words held.
func (s *InMemoryWordStore) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.mu.words)
}

func (s *InMemoryWordStore) Dump() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]adapter.WordKey, 0, len(s.mu.words))
	for k := range s.mu.words {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return bytes.Compare(keys[i][:], keys[j][:]) < 0 })

	output := strings.Builder{}
	output.WriteString(fmt.Sprintf("caller_%s:height_%d:{", s.mu.caller.Hex(), s.mu.height))
	for _, k := range keys {
		output.WriteString(k.Hex())
		output.WriteString(":")
		output.WriteString(s.mu.words[k].Hex())
		output.WriteString(",")
	}
	output.WriteString("}")
	return output.String()
}
