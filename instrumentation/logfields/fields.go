// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package logfields

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/scribe/log"
)

type Errorer interface {
	Error(message string, fields ...*log.Field)
}

type govnrErrorer struct {
	logger Errorer
}

func (e *govnrErrorer) Error(err error) {
	e.logger.Error("recovered panic", log.Error(err))
}

// GovnrErrorer reports panics and unsupervised exits of governed goroutines to logger.
func GovnrErrorer(logger Errorer) govnr.Errorer {
	return &govnrErrorer{logger: logger}
}

func Caller(account common.Address) *log.Field {
	return log.String("caller", account.Hex())
}

func ProjectId(id common.Address) *log.Field {
	return log.String("project-id", id.Hex())
}

func BlockHeight(value uint64) *log.Field {
	return &log.Field{Key: "block-height", Uint: value, Type: log.UintType}
}

func WordKey(key common.Hash) *log.Field {
	return log.String("key", key.Hex())
}
