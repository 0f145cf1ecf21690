// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package dispatch

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
	"github.com/orbs-network/oscoin-ledger-go/services/ledger"
	"github.com/pkg/errors"
)

var ErrEmptyCall = errors.New("call input is empty")
var ErrMalformedCall = errors.New("call input is malformed")
var ErrUnknownCall = errors.New("call is unknown")

type callKey struct {
	family CallFamily
	method string
}

type callDecoder func(args *argumentsReader) (Call, error)

// every Query and Update variant has exactly one entry here
var callDecoders = map[callKey]callDecoder{
	{CALL_FAMILY_QUERY, METHOD_PING}: func(args *argumentsReader) (Call, error) {
		return &QueryPing{}, nil
	},
	{CALL_FAMILY_QUERY, METHOD_COUNTER_VALUE}: func(args *argumentsReader) (Call, error) {
		return &QueryCounterValue{}, nil
	},
	{CALL_FAMILY_QUERY, METHOD_GET_PROJECT}: func(args *argumentsReader) (Call, error) {
		id, err := args.nextAddress("project_id")
		if err != nil {
			return nil, err
		}
		return &QueryGetProject{ProjectId: id}, nil
	},
	{CALL_FAMILY_QUERY, METHOD_LIST_PROJECTS}: func(args *argumentsReader) (Call, error) {
		return &QueryListProjects{}, nil
	},
	{CALL_FAMILY_UPDATE, METHOD_COUNTER_INC}: func(args *argumentsReader) (Call, error) {
		return &UpdateCounterInc{}, nil
	},
	{CALL_FAMILY_UPDATE, METHOD_REGISTER_PROJECT}: func(args *argumentsReader) (Call, error) {
		var fields ledger.ProjectFields
		var err error
		if fields.Url, err = args.nextString("url"); err != nil {
			return nil, err
		}
		if fields.Name, err = args.nextString("name"); err != nil {
			return nil, err
		}
		if fields.Description, err = args.nextString("description"); err != nil {
			return nil, err
		}
		if fields.ImgUrl, err = args.nextString("img_url"); err != nil {
			return nil, err
		}
		return &UpdateRegisterProject{ProjectFields: fields}, nil
	},
}

// EncodeCall produces the wire form: an argument array of family, method name and the call arguments.
func EncodeCall(call Call) ([]byte, error) {
	args := []*protocol.ArgumentBuilder{
		uint32Argument(uint32(call.Family())),
		stringArgument(call.MethodName()),
	}
	args = append(args, call.inputArguments()...)

	encoded := (&protocol.ArgumentArrayBuilder{Arguments: args}).Build()
	if encoded == nil {
		return nil, errors.Errorf("failed to encode %s call %s", call.Family(), call.MethodName())
	}
	return encoded.Raw(), nil
}

func DecodeCall(input []byte) (call Call, err error) {
	if len(input) == 0 {
		return nil, ErrEmptyCall
	}

	defer func() {
		if r := recover(); r != nil {
			call = nil
			err = errors.Wrapf(ErrMalformedCall, "%v", r)
		}
	}()

	encoded := protocol.ArgumentArrayReader(input)
	if !encoded.IsValid() {
		return nil, errors.Wrap(ErrMalformedCall, "input is not an argument array")
	}

	args := newArgumentsReader(encoded)
	family, err := args.nextUint32("family")
	if err != nil {
		return nil, err
	}
	method, err := args.nextString("method")
	if err != nil {
		return nil, err
	}

	decoder, found := callDecoders[callKey{CallFamily(family), method}]
	if !found {
		return nil, errors.Wrapf(ErrUnknownCall, "%s call %s", CallFamily(family), method)
	}

	call, err = decoder(args)
	if err != nil {
		return nil, err
	}

	if err := args.requireNoMore(); err != nil {
		return nil, err
	}

	return call, nil
}

// Execute runs call against l and returns the encoded result arguments.
// Updates are not rolled back on failure: words written before the error stay written.
func Execute(call Call, l ledger.Ledger) ([]byte, error) {
	var res []*protocol.ArgumentBuilder
	var err error

	switch c := call.(type) {
	case Query:
		res, err = c.runQuery(l)
	case Update:
		res, err = c.runUpdate(l)
	default:
		return nil, errors.Wrapf(ErrUnknownCall, "%T is neither a query nor an update", call)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s call %s failed", call.Family(), call.MethodName())
	}

	encoded := (&protocol.ArgumentArrayBuilder{Arguments: res}).Build()
	if encoded == nil {
		return nil, errors.Errorf("failed to encode result of %s call %s", call.Family(), call.MethodName())
	}
	return encoded.Raw(), nil
}

type argumentsReader struct {
	iterator *protocol.ArgumentArrayArgumentsIterator
	index    int
}

func newArgumentsReader(args *protocol.ArgumentArray) *argumentsReader {
	return &argumentsReader{iterator: args.ArgumentsIterator()}
}

func (r *argumentsReader) next(name string) (*protocol.Argument, error) {
	if !r.iterator.HasNext() {
		return nil, errors.Wrapf(ErrMalformedCall, "missing arg %d (%s)", r.index, name)
	}
	r.index++
	return r.iterator.NextArguments(), nil
}

func (r *argumentsReader) nextUint32(name string) (uint32, error) {
	arg, err := r.next(name)
	if err != nil {
		return 0, err
	}
	if !arg.IsTypeUint32Value() {
		return 0, errors.Wrapf(ErrMalformedCall, "expected arg %d (%s) to be uint32 but it has %s", r.index-1, name, arg.StringType())
	}
	return arg.Uint32Value(), nil
}

func (r *argumentsReader) nextString(name string) (string, error) {
	arg, err := r.next(name)
	if err != nil {
		return "", err
	}
	if !arg.IsTypeStringValue() {
		return "", errors.Wrapf(ErrMalformedCall, "expected arg %d (%s) to be string but it has %s", r.index-1, name, arg.StringType())
	}
	return arg.StringValue(), nil
}

func (r *argumentsReader) nextBytes(name string) ([]byte, error) {
	arg, err := r.next(name)
	if err != nil {
		return nil, err
	}
	if !arg.IsTypeBytesValue() {
		return nil, errors.Wrapf(ErrMalformedCall, "expected arg %d (%s) to be bytes but it has %s", r.index-1, name, arg.StringType())
	}
	return arg.BytesValue(), nil
}

func (r *argumentsReader) nextAddress(name string) (common.Address, error) {
	value, err := r.nextBytes(name)
	if err != nil {
		return common.Address{}, err
	}
	if len(value) != common.AddressLength {
		return common.Address{}, errors.Wrapf(ErrMalformedCall, "expected arg %d (%s) to hold %d bytes but it has %d", r.index-1, name, common.AddressLength, len(value))
	}
	return common.BytesToAddress(value), nil
}

func (r *argumentsReader) requireNoMore() error {
	if r.iterator.HasNext() {
		return errors.Wrapf(ErrMalformedCall, "call takes %d args but received more", r.index)
	}
	return nil
}
