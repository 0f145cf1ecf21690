// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package dispatch_test

import (
	"github.com/orbs-network/oscoin-ledger-go/services/dispatch"
	"github.com/orbs-network/oscoin-ledger-go/test/builders"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"testing"
)

func allCalls() []dispatch.Call {
	return []dispatch.Call{
		&dispatch.QueryPing{},
		&dispatch.QueryCounterValue{},
		&dispatch.QueryGetProject{ProjectId: builders.AccountForTests(7)},
		&dispatch.QueryListProjects{},
		&dispatch.UpdateCounterInc{},
		&dispatch.UpdateRegisterProject{ProjectFields: builders.Project().Fields()},
	}
}

func TestCodec_EveryCallSurvivesEncodeDecode(t *testing.T) {
	for _, call := range allCalls() {
		t.Run(call.MethodName(), func(t *testing.T) {
			encoded, err := dispatch.EncodeCall(call)
			require.NoError(t, err)

			decoded, err := dispatch.DecodeCall(encoded)
			require.NoError(t, err)
			require.Equal(t, call, decoded)
		})
	}
}

func TestCodec_QueriesAndUpdatesAreDistinguished(t *testing.T) {
	for _, call := range allCalls() {
		switch call.(type) {
		case dispatch.Query:
			require.Equal(t, dispatch.CALL_FAMILY_QUERY, call.Family(), call.MethodName())
		case dispatch.Update:
			require.Equal(t, dispatch.CALL_FAMILY_UPDATE, call.Family(), call.MethodName())
		default:
			t.Fatalf("%s is neither a query nor an update", call.MethodName())
		}
	}
}

func TestCodec_EmptyInput(t *testing.T) {
	_, err := dispatch.DecodeCall(nil)
	require.Equal(t, dispatch.ErrEmptyCall, errors.Cause(err))

	_, err = dispatch.DecodeCall([]byte{})
	require.Equal(t, dispatch.ErrEmptyCall, errors.Cause(err))
}

func TestCodec_TruncatedInput(t *testing.T) {
	encoded, err := dispatch.EncodeCall(&dispatch.UpdateRegisterProject{ProjectFields: builders.Project().Fields()})
	require.NoError(t, err)

	_, err = dispatch.DecodeCall(encoded[:len(encoded)/2])
	require.Equal(t, dispatch.ErrMalformedCall, errors.Cause(err))
}

func TestCodec_GarbageInput(t *testing.T) {
	_, err := dispatch.DecodeCall([]byte{0x01, 0x02, 0x03})
	require.Equal(t, dispatch.ErrMalformedCall, errors.Cause(err))
}

func TestCodec_RejectsMalformedCalls(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"family is not a uint32", builders.RawCall("query", dispatch.METHOD_PING)},
		{"method is not a string", builders.RawCall(uint32(dispatch.CALL_FAMILY_QUERY), uint32(3))},
		{"ping with an extra argument", builders.RawCall(uint32(dispatch.CALL_FAMILY_QUERY), dispatch.METHOD_PING, uint32(5))},
		{"get_project with a string id", builders.RawCall(uint32(dispatch.CALL_FAMILY_QUERY), dispatch.METHOD_GET_PROJECT, "id")},
		{"get_project with a short id", builders.RawCall(uint32(dispatch.CALL_FAMILY_QUERY), dispatch.METHOD_GET_PROJECT, []byte{0x01, 0x02})},
		{"get_project with no id", builders.RawCall(uint32(dispatch.CALL_FAMILY_QUERY), dispatch.METHOD_GET_PROJECT)},
		{"register_project with missing fields", builders.RawCall(uint32(dispatch.CALL_FAMILY_UPDATE), dispatch.METHOD_REGISTER_PROJECT, "url")},
		{"register_project with a numeric name", builders.RawCall(uint32(dispatch.CALL_FAMILY_UPDATE), dispatch.METHOD_REGISTER_PROJECT, "url", uint64(1), "description", "img")},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := dispatch.DecodeCall(test.input)
			require.Equal(t, dispatch.ErrMalformedCall, errors.Cause(err))
		})
	}
}

func TestCodec_RejectsUnknownCalls(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"unknown method", builders.RawCall(uint32(dispatch.CALL_FAMILY_QUERY), "transfer")},
		{"unknown family", builders.RawCall(uint32(3), dispatch.METHOD_PING)},
		{"query method as an update", builders.RawCall(uint32(dispatch.CALL_FAMILY_UPDATE), dispatch.METHOD_PING)},
		{"update method as a query", builders.RawCall(uint32(dispatch.CALL_FAMILY_QUERY), dispatch.METHOD_COUNTER_INC)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := dispatch.DecodeCall(test.input)
			require.Equal(t, dispatch.ErrUnknownCall, errors.Cause(err))
		})
	}
}

func TestCodec_MatchesHandEncodedCall(t *testing.T) {
	fields := builders.Project().WithName("radicle").Fields()
	expected := builders.RawCall(uint32(dispatch.CALL_FAMILY_UPDATE), dispatch.METHOD_REGISTER_PROJECT, fields.Url, fields.Name, fields.Description, fields.ImgUrl)

	encoded, err := dispatch.EncodeCall(&dispatch.UpdateRegisterProject{ProjectFields: fields})
	require.NoError(t, err)
	require.Equal(t, expected, encoded)
}

func TestCallFamily_String(t *testing.T) {
	require.Equal(t, "query", dispatch.CALL_FAMILY_QUERY.String())
	require.Equal(t, "update", dispatch.CALL_FAMILY_UPDATE.String())
	require.Equal(t, "unknown-family-9", dispatch.CallFamily(9).String())
}
