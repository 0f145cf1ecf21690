// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package with

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/orbs-network/oscoin-ledger-go/services/statestorage/adapter/memory"
	"testing"
)

type HostHarness struct {
	*LoggingHarness
	Store *memory.InMemoryWordStore
}

// CallFrom sets the execution context seen by the next call.
func (h *HostHarness) CallFrom(caller common.Address, height uint64) *HostHarness {
	h.Store.SetCaller(caller).SetBlockHeight(height)
	return h
}

// InMemoryHost runs f against a fresh in-memory word store and dumps the store when the test fails.
func InMemoryHost(tb testing.TB, f func(harness *HostHarness)) {
	Logging(tb, func(logging *LoggingHarness) {
		h := &HostHarness{
			LoggingHarness: logging,
			Store:          memory.NewInMemoryWordStore(),
		}
		defer func() {
			if tb.Failed() {
				tb.Log("word store at failure: " + h.Store.Dump())
			}
		}()
		f(h)
	})
}
