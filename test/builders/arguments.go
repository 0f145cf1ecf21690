// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package builders

import (
	"github.com/orbs-network/orbs-spec/types/go/protocol"
)

/// Test builders for: protocol.ArgumentArray

func ArgumentsBuilders(args ...interface{}) (res []*protocol.ArgumentBuilder) {
	res = []*protocol.ArgumentBuilder{}
	for _, arg := range args {
		switch arg.(type) {
		case uint32:
			res = append(res, &protocol.ArgumentBuilder{Type: protocol.ARGUMENT_TYPE_UINT_32_VALUE, Uint32Value: arg.(uint32)})
		case uint64:
			res = append(res, &protocol.ArgumentBuilder{Type: protocol.ARGUMENT_TYPE_UINT_64_VALUE, Uint64Value: arg.(uint64)})
		case string:
			res = append(res, &protocol.ArgumentBuilder{Type: protocol.ARGUMENT_TYPE_STRING_VALUE, StringValue: arg.(string)})
		case []byte:
			res = append(res, &protocol.ArgumentBuilder{Type: protocol.ARGUMENT_TYPE_BYTES_VALUE, BytesValue: arg.([]byte)})
		default:
			panic("unsupported argument type in test builder")
		}
	}
	return
}

func ArgumentsArray(args ...interface{}) *protocol.ArgumentArray {
	return (&protocol.ArgumentArrayBuilder{Arguments: ArgumentsBuilders(args...)}).Build()
}

// RawCall encodes arbitrary arguments in call wire format, including malformed calls.
func RawCall(args ...interface{}) []byte {
	return ArgumentsArray(args...).Raw()
}
