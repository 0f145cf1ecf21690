// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package dispatch

import (
	"github.com/orbs-network/orbs-spec/types/go/protocol"
	"github.com/orbs-network/oscoin-ledger-go/services/ledger"
	ledgertypes "github.com/orbs-network/oscoin-ledger-go/types/ledger"
	"github.com/pkg/errors"
)

var ErrMalformedResult = errors.New("call result is malformed")

func ReadPingResult(output []byte) (string, error) {
	args, err := readResult(output, 1)
	if err != nil {
		return "", err
	}
	if !args[0].IsTypeStringValue() {
		return "", errors.Wrapf(ErrMalformedResult, "expected string but got %s", args[0].StringType())
	}
	return args[0].StringValue(), nil
}

func ReadCounterValueResult(output []byte) (uint32, error) {
	args, err := readResult(output, 1)
	if err != nil {
		return 0, err
	}
	if !args[0].IsTypeUint32Value() {
		return 0, errors.Wrapf(ErrMalformedResult, "expected uint32 but got %s", args[0].StringType())
	}
	return args[0].Uint32Value(), nil
}

func ReadCounterIncResult(output []byte) error {
	_, err := readResult(output, 0)
	return err
}

func ReadRegisterProjectResult(output []byte) (ledger.ProjectId, error) {
	args, err := readResult(output, 1)
	if err != nil {
		return ledger.ProjectId{}, err
	}
	if !args[0].IsTypeBytesValue() || len(args[0].BytesValue()) != len(ledger.ProjectId{}) {
		return ledger.ProjectId{}, errors.Wrapf(ErrMalformedResult, "expected project id but got %s", args[0].StringType())
	}
	var id ledger.ProjectId
	copy(id[:], args[0].BytesValue())
	return id, nil
}

// ReadGetProjectResult returns nil when the project was not found.
func ReadGetProjectResult(output []byte) (*ledgertypes.Project, error) {
	args, err := readResultArguments(output)
	if err != nil {
		return nil, err
	}
	switch len(args) {
	case 0:
		return nil, nil
	case 1:
		return readProject(args[0])
	default:
		return nil, errors.Wrapf(ErrMalformedResult, "expected at most 1 result argument but got %d", len(args))
	}
}

func ReadListProjectsResult(output []byte) ([]*ledgertypes.Project, error) {
	args, err := readResultArguments(output)
	if err != nil {
		return nil, err
	}
	projects := make([]*ledgertypes.Project, 0, len(args))
	for _, arg := range args {
		project, err := readProject(arg)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, nil
}

func readProject(arg *protocol.Argument) (*ledgertypes.Project, error) {
	if !arg.IsTypeBytesValue() {
		return nil, errors.Wrapf(ErrMalformedResult, "expected bytes but got %s", arg.StringType())
	}
	// copy so the project does not alias the output buffer
	raw := append([]byte(nil), arg.BytesValue()...)
	project := ledgertypes.ProjectReader(raw)
	if !project.IsValid() {
		return nil, errors.Wrap(ErrMalformedResult, "project record is invalid")
	}
	return project, nil
}

func readResult(output []byte, expected int) ([]*protocol.Argument, error) {
	args, err := readResultArguments(output)
	if err != nil {
		return nil, err
	}
	if len(args) != expected {
		return nil, errors.Wrapf(ErrMalformedResult, "expected %d result arguments but got %d", expected, len(args))
	}
	return args, nil
}

func readResultArguments(output []byte) (res []*protocol.Argument, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = errors.Wrapf(ErrMalformedResult, "%v", r)
		}
	}()

	// an empty result still encodes its argument array header
	if len(output) == 0 {
		return nil, errors.Wrap(ErrMalformedResult, "output is empty")
	}
	encoded := protocol.ArgumentArrayReader(output)
	if !encoded.IsValid() {
		return nil, errors.Wrap(ErrMalformedResult, "output is not an argument array")
	}
	for i := encoded.ArgumentsIterator(); i.HasNext(); {
		res = append(res, i.NextArguments())
	}
	return res, nil
}
