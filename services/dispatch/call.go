// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package dispatch

import (
	"fmt"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
	"github.com/orbs-network/oscoin-ledger-go/services/ledger"
)

type CallFamily uint32

const (
	CALL_FAMILY_QUERY  CallFamily = 1
	CALL_FAMILY_UPDATE CallFamily = 2
)

func (f CallFamily) String() string {
	switch f {
	case CALL_FAMILY_QUERY:
		return "query"
	case CALL_FAMILY_UPDATE:
		return "update"
	default:
		return fmt.Sprintf("unknown-family-%d", uint32(f))
	}
}

const (
	METHOD_PING             = "ping"
	METHOD_COUNTER_VALUE    = "counter_value"
	METHOD_GET_PROJECT      = "get_project"
	METHOD_LIST_PROJECTS    = "list_projects"
	METHOD_COUNTER_INC      = "counter_inc"
	METHOD_REGISTER_PROJECT = "register_project"
)

// Call is a decoded request. Only the Query and Update variants declared in
// this package implement it.
type Call interface {
	Family() CallFamily
	MethodName() string
	inputArguments() []*protocol.ArgumentBuilder
}

// Query only sees the read side of the ledger.
type Query interface {
	Call
	runQuery(l ledger.Queries) ([]*protocol.ArgumentBuilder, error)
}

type Update interface {
	Call
	runUpdate(l ledger.Ledger) ([]*protocol.ArgumentBuilder, error)
}

var _ Query = (*QueryPing)(nil)
var _ Query = (*QueryCounterValue)(nil)
var _ Query = (*QueryGetProject)(nil)
var _ Query = (*QueryListProjects)(nil)
var _ Update = (*UpdateCounterInc)(nil)
var _ Update = (*UpdateRegisterProject)(nil)

type query struct{}

func (query) Family() CallFamily {
	return CALL_FAMILY_QUERY
}

type update struct{}

func (update) Family() CallFamily {
	return CALL_FAMILY_UPDATE
}

type noArguments struct{}

func (noArguments) inputArguments() []*protocol.ArgumentBuilder {
	return nil
}

/////////////////////////////////////////////////////////////////
// queries

type QueryPing struct {
	query
	noArguments
}

func (c *QueryPing) MethodName() string {
	return METHOD_PING
}

func (c *QueryPing) runQuery(l ledger.Queries) ([]*protocol.ArgumentBuilder, error) {
	return []*protocol.ArgumentBuilder{stringArgument(l.Ping())}, nil
}

type QueryCounterValue struct {
	query
	noArguments
}

func (c *QueryCounterValue) MethodName() string {
	return METHOD_COUNTER_VALUE
}

func (c *QueryCounterValue) runQuery(l ledger.Queries) ([]*protocol.ArgumentBuilder, error) {
	value, err := l.CounterValue()
	if err != nil {
		return nil, err
	}
	return []*protocol.ArgumentBuilder{uint32Argument(value)}, nil
}

type QueryGetProject struct {
	query
	ProjectId ledger.ProjectId
}

func (c *QueryGetProject) MethodName() string {
	return METHOD_GET_PROJECT
}

func (c *QueryGetProject) inputArguments() []*protocol.ArgumentBuilder {
	return []*protocol.ArgumentBuilder{bytesArgument(c.ProjectId.Bytes())}
}

// runQuery returns no result arguments for an unknown project.
func (c *QueryGetProject) runQuery(l ledger.Queries) ([]*protocol.ArgumentBuilder, error) {
	project, found, err := l.GetProject(c.ProjectId)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return []*protocol.ArgumentBuilder{bytesArgument(project.Raw())}, nil
}

type QueryListProjects struct {
	query
	noArguments
}

func (c *QueryListProjects) MethodName() string {
	return METHOD_LIST_PROJECTS
}

func (c *QueryListProjects) runQuery(l ledger.Queries) ([]*protocol.ArgumentBuilder, error) {
	projects, err := l.ListProjects()
	if err != nil {
		return nil, err
	}
	res := make([]*protocol.ArgumentBuilder, 0, len(projects))
	for _, project := range projects {
		res = append(res, bytesArgument(project.Raw()))
	}
	return res, nil
}

/////////////////////////////////////////////////////////////////
// updates

type UpdateCounterInc struct {
	update
	noArguments
}

func (c *UpdateCounterInc) MethodName() string {
	return METHOD_COUNTER_INC
}

func (c *UpdateCounterInc) runUpdate(l ledger.Ledger) ([]*protocol.ArgumentBuilder, error) {
	return nil, l.CounterInc()
}

type UpdateRegisterProject struct {
	update
	ledger.ProjectFields
}

func (c *UpdateRegisterProject) MethodName() string {
	return METHOD_REGISTER_PROJECT
}

func (c *UpdateRegisterProject) inputArguments() []*protocol.ArgumentBuilder {
	return []*protocol.ArgumentBuilder{
		stringArgument(c.Url),
		stringArgument(c.Name),
		stringArgument(c.Description),
		stringArgument(c.ImgUrl),
	}
}

func (c *UpdateRegisterProject) runUpdate(l ledger.Ledger) ([]*protocol.ArgumentBuilder, error) {
	id, err := l.RegisterProject(c.ProjectFields)
	if err != nil {
		return nil, err
	}
	return []*protocol.ArgumentBuilder{bytesArgument(id.Bytes())}, nil
}

func uint32Argument(value uint32) *protocol.ArgumentBuilder {
	return &protocol.ArgumentBuilder{Type: protocol.ARGUMENT_TYPE_UINT_32_VALUE, Uint32Value: value}
}

func stringArgument(value string) *protocol.ArgumentBuilder {
	return &protocol.ArgumentBuilder{Type: protocol.ARGUMENT_TYPE_STRING_VALUE, StringValue: value}
}

func bytesArgument(value []byte) *protocol.ArgumentBuilder {
	return &protocol.ArgumentBuilder{Type: protocol.ARGUMENT_TYPE_BYTES_VALUE, BytesValue: value}
}
