// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package digest

import (
	"encoding/binary"
	"github.com/ethereum/go-ethereum/common"
	"github.com/orbs-network/oscoin-ledger-go/crypto/hash"
)

const (
	PROJECT_ID_SIZE_BYTES   = common.AddressLength
	BLOCK_HEIGHT_SIZE_BYTES = 8
)

// CalcProjectId derives the id of a project registered by account at the given block height.
// Two registrations by the same account at the same height yield the same id.
func CalcProjectId(account common.Address, height uint64) common.Address {
	encodedHeight := make([]byte, BLOCK_HEIGHT_SIZE_BYTES)
	binary.BigEndian.PutUint64(encodedHeight, height)
	res := hash.CalcKeccak256(account.Bytes(), encodedHeight)[:PROJECT_ID_SIZE_BYTES]
	return common.BytesToAddress(res)
}
