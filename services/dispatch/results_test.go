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

func TestResults_WrongShapeIsMalformed(t *testing.T) {
	_, err := dispatch.ReadPingResult(builders.RawCall(uint32(17)))
	require.Equal(t, dispatch.ErrMalformedResult, errors.Cause(err))

	_, err = dispatch.ReadCounterValueResult(builders.RawCall("pong"))
	require.Equal(t, dispatch.ErrMalformedResult, errors.Cause(err))

	_, err = dispatch.ReadCounterValueResult(builders.RawCall(uint32(1), uint32(2)))
	require.Equal(t, dispatch.ErrMalformedResult, errors.Cause(err))

	_, err = dispatch.ReadRegisterProjectResult(builders.RawCall([]byte{0x01}))
	require.Equal(t, dispatch.ErrMalformedResult, errors.Cause(err))

	err = dispatch.ReadCounterIncResult(builders.RawCall(uint32(1)))
	require.Equal(t, dispatch.ErrMalformedResult, errors.Cause(err))
}

func TestResults_GarbageIsMalformed(t *testing.T) {
	_, err := dispatch.ReadListProjectsResult([]byte{0x01, 0x02, 0x03})
	require.Equal(t, dispatch.ErrMalformedResult, errors.Cause(err))
}

func TestResults_EmptyOutputIsMalformed(t *testing.T) {
	_, err := dispatch.ReadGetProjectResult([]byte{})
	require.Equal(t, dispatch.ErrMalformedResult, errors.Cause(err))

	_, err = dispatch.ReadListProjectsResult(nil)
	require.Equal(t, dispatch.ErrMalformedResult, errors.Cause(err))

	err = dispatch.ReadCounterIncResult(nil)
	require.Equal(t, dispatch.ErrMalformedResult, errors.Cause(err))
}

func TestResults_EmptyArgumentArrayIsNotMalformed(t *testing.T) {
	empty := builders.RawCall()
	require.NotEmpty(t, empty, "an empty argument array still has a header")

	require.NoError(t, dispatch.ReadCounterIncResult(empty))

	project, err := dispatch.ReadGetProjectResult(empty)
	require.NoError(t, err)
	require.Nil(t, project)
}

func TestResults_ProjectsMustBeBytes(t *testing.T) {
	_, err := dispatch.ReadGetProjectResult(builders.RawCall("project"))
	require.Equal(t, dispatch.ErrMalformedResult, errors.Cause(err))

	_, err = dispatch.ReadListProjectsResult(builders.RawCall(uint32(1)))
	require.Equal(t, dispatch.ErrMalformedResult, errors.Cause(err))

	_, err = dispatch.ReadGetProjectResult(builders.RawCall([]byte{}, []byte{}))
	require.Equal(t, dispatch.ErrMalformedResult, errors.Cause(err))
}
