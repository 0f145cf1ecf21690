// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package adapter

import (
	"fmt"
	"github.com/ethereum/go-ethereum/common"
)

const WORD_SIZE_IN_BYTES = common.HashLength

// Word is the fixed size unit of host storage.
type Word = common.Hash

// WordKey addresses a single Word in host storage.
type WordKey = common.Hash

// WordStore is the only storage primitive the host offers.
// ReadWord of a key never written returns the zero word. Neither method reports errors:
// a failing host aborts the whole call by panicking with a *HostFailure.
type WordStore interface {
	ReadWord(key WordKey) Word
	WriteWord(key WordKey, value Word)
}

// HostFailure is the panic value of a WordStore that cannot serve a read or a write.
type HostFailure struct {
	Key   WordKey
	Cause error
}

func NewHostFailure(key WordKey, cause error) *HostFailure {
	return &HostFailure{Key: key, Cause: cause}
}

func (f *HostFailure) Error() string {
	return fmt.Sprintf("host failed at word %s: %s", f.Key.Hex(), f.Cause)
}

// ExecutionContext describes the invocation currently running inside the host.
type ExecutionContext interface {
	CallerAccount() common.Address
	BlockHeight() uint64
}

type Host interface {
	WordStore
	ExecutionContext
}

type StaticContext struct {
	Caller common.Address
	Height uint64
}

func (c *StaticContext) CallerAccount() common.Address {
	return c.Caller
}

func (c *StaticContext) BlockHeight() uint64 {
	return c.Height
}

type host struct {
	WordStore
	ExecutionContext
}

func NewHost(store WordStore, ctx ExecutionContext) Host {
	return &host{
		WordStore:        store,
		ExecutionContext: ctx,
	}
}
