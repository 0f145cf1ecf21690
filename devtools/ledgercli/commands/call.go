// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package commands

import (
	"encoding/hex"
	"flag"
	"fmt"
	"github.com/ethereum/go-ethereum/common"
	"github.com/orbs-network/oscoin-ledger-go/instrumentation/metric"
	"github.com/orbs-network/oscoin-ledger-go/services/dispatch"
	"github.com/orbs-network/oscoin-ledger-go/services/ledger"
	"github.com/orbs-network/oscoin-ledger-go/services/statestorage/adapter"
	ledgertypes "github.com/orbs-network/oscoin-ledger-go/types/ledger"
	"github.com/pkg/errors"
)

func HandleQueryCommand(args []string) int {
	return exitCode(NewRunner().RunCall(dispatch.CALL_FAMILY_QUERY, args))
}

func HandleUpdateCommand(args []string) int {
	return exitCode(NewRunner().RunCall(dispatch.CALL_FAMILY_UPDATE, args))
}

func HandleDumpCallCommand(args []string) int {
	return exitCode(NewRunner().DumpCall(args))
}

// RunCall executes a single ledger call against the local word store and prints its result.
func (r *Runner) RunCall(family dispatch.CallFamily, args []string) error {
	flagSet := flag.NewFlagSet(family.String(), flag.ContinueOnError)
	var store storeFlags
	var callContext contextFlags
	store.register(flagSet)
	callContext.register(flagSet)
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if flagSet.NArg() < 1 {
		return errors.Errorf("missing method name\n%s", ShowUsage())
	}

	call, err := ParseCall(family, flagSet.Arg(0), flagSet.Args()[1:])
	if err != nil {
		return err
	}
	input, err := dispatch.EncodeCall(call)
	if err != nil {
		return err
	}
	execution, err := callContext.context()
	if err != nil {
		return err
	}
	cfg, err := store.loadConfig()
	if err != nil {
		return err
	}

	return r.withDispatcher(cfg, metric.NewRegistry(), func(d *dispatch.Dispatcher, words adapter.WordStore) error {
		output, err := d.HandleCall(adapter.NewHost(words, execution), input)
		if err != nil {
			return err
		}
		return r.printResult(call, output)
	})
}

func (r *Runner) DumpCall(args []string) error {
	if len(args) < 2 {
		return errors.Errorf("expected a family and a method name\n%s", ShowUsage())
	}

	var family dispatch.CallFamily
	switch args[0] {
	case dispatch.CALL_FAMILY_QUERY.String():
		family = dispatch.CALL_FAMILY_QUERY
	case dispatch.CALL_FAMILY_UPDATE.String():
		family = dispatch.CALL_FAMILY_UPDATE
	default:
		return errors.Errorf("unknown call family %q", args[0])
	}

	call, err := ParseCall(family, args[1], args[2:])
	if err != nil {
		return err
	}
	input, err := dispatch.EncodeCall(call)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.Out, hex.EncodeToString(input))
	return err
}

// ParseCall builds a call from a method name and its positional command line arguments.
func ParseCall(family dispatch.CallFamily, method string, args []string) (dispatch.Call, error) {
	call, expectedArgs, err := newCall(family, method)
	if err != nil {
		return nil, err
	}
	if len(args) != expectedArgs {
		return nil, errors.Errorf("%s %s takes %d arguments but received %d", family, method, expectedArgs, len(args))
	}

	switch c := call.(type) {
	case *dispatch.QueryGetProject:
		if !common.IsHexAddress(args[0]) {
			return nil, errors.Errorf("project id %q is not 20 bytes of hex", args[0])
		}
		c.ProjectId = common.HexToAddress(args[0])
	case *dispatch.UpdateRegisterProject:
		c.ProjectFields = ledger.ProjectFields{
			Url:         args[0],
			Name:        args[1],
			Description: args[2],
			ImgUrl:      args[3],
		}
	}
	return call, nil
}

func newCall(family dispatch.CallFamily, method string) (dispatch.Call, int, error) {
	switch family {
	case dispatch.CALL_FAMILY_QUERY:
		switch method {
		case dispatch.METHOD_PING:
			return &dispatch.QueryPing{}, 0, nil
		case dispatch.METHOD_COUNTER_VALUE:
			return &dispatch.QueryCounterValue{}, 0, nil
		case dispatch.METHOD_GET_PROJECT:
			return &dispatch.QueryGetProject{}, 1, nil
		case dispatch.METHOD_LIST_PROJECTS:
			return &dispatch.QueryListProjects{}, 0, nil
		}
	case dispatch.CALL_FAMILY_UPDATE:
		switch method {
		case dispatch.METHOD_COUNTER_INC:
			return &dispatch.UpdateCounterInc{}, 0, nil
		case dispatch.METHOD_REGISTER_PROJECT:
			return &dispatch.UpdateRegisterProject{}, 4, nil
		}
	}
	return nil, 0, errors.Errorf("unknown %s method %q", family, method)
}

func (r *Runner) printResult(call dispatch.Call, output []byte) error {
	switch call.(type) {
	case *dispatch.QueryPing:
		pong, err := dispatch.ReadPingResult(output)
		if err != nil {
			return err
		}
		return r.println(pong)
	case *dispatch.QueryCounterValue:
		value, err := dispatch.ReadCounterValueResult(output)
		if err != nil {
			return err
		}
		return r.println(value)
	case *dispatch.UpdateCounterInc:
		if err := dispatch.ReadCounterIncResult(output); err != nil {
			return err
		}
		return r.println("ok")
	case *dispatch.UpdateRegisterProject:
		id, err := dispatch.ReadRegisterProjectResult(output)
		if err != nil {
			return err
		}
		return r.println(id.Hex())
	case *dispatch.QueryGetProject:
		project, err := dispatch.ReadGetProjectResult(output)
		if err != nil {
			return err
		}
		if project == nil {
			return r.println("project not found")
		}
		return r.printProject(project)
	case *dispatch.QueryListProjects:
		projects, err := dispatch.ReadListProjectsResult(output)
		if err != nil {
			return err
		}
		for _, project := range projects {
			if err := r.printProject(project); err != nil {
				return err
			}
		}
		return nil
	default:
		return errors.Errorf("no printer for %T", call)
	}
}

func (r *Runner) printProject(project *ledgertypes.Project) error {
	var members []string
	for i := project.MembersIterator(); i.HasNext(); {
		members = append(members, common.BytesToAddress(i.NextMembers().Account()).Hex())
	}
	_, err := fmt.Fprintf(r.Out, "%s\t%s\t%s\t%s\t%s\t%v\n",
		common.BytesToAddress(project.Id()).Hex(), project.Name(), project.Url(), project.Description(), project.ImgUrl(), members)
	return err
}

func (r *Runner) println(value interface{}) error {
	_, err := fmt.Fprintln(r.Out, value)
	return err
}
