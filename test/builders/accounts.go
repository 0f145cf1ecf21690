// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package builders

import (
	"fmt"
	"github.com/ethereum/go-ethereum/common"
)

// AccountForTests returns a fixed, distinct account per setIndex.
func AccountForTests(setIndex int) common.Address {
	return common.HexToAddress(fmt.Sprintf("0x%040x", 0xa11ce0000+setIndex))
}
