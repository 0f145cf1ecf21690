// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package ledger

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/orbs-network/oscoin-ledger-go/config"
	"github.com/orbs-network/oscoin-ledger-go/services/statestorage"
	"github.com/orbs-network/oscoin-ledger-go/services/statestorage/adapter"
	ledgertypes "github.com/orbs-network/oscoin-ledger-go/types/ledger"
	"github.com/orbs-network/scribe/log"
)

var LogTag = log.Service("ledger")

const PONG = "pong"

var COUNTER_KEY = []byte("counter")
var PROJECT_INDEX_KEY = []byte("projects")
var PROJECT_INDEX_ENTRY_KEY_PREFIX = []byte("projects/")

type AccountId = common.Address
type ProjectId = common.Address

type ProjectFields struct {
	Url         string
	Name        string
	Description string
	ImgUrl      string
}

// Queries never write to storage.
type Queries interface {
	Ping() string
	CounterValue() (uint32, error)
	GetProject(id ProjectId) (*ledgertypes.Project, bool, error)
	ListProjects() ([]*ledgertypes.Project, error)
}

type Ledger interface {
	Queries
	CounterInc() error
	RegisterProject(fields ProjectFields) (ProjectId, error)
}

type service struct {
	storage *statestorage.Storage
	context adapter.ExecutionContext
	config  config.LedgerServiceConfig
	logger  log.Logger
}

func NewLedger(storage *statestorage.Storage, context adapter.ExecutionContext, config config.LedgerServiceConfig, parentLogger log.Logger) Ledger {
	return &service{
		storage: storage,
		context: context,
		config:  config,
		logger:  parentLogger.WithTags(LogTag),
	}
}

func (s *service) Ping() string {
	return PONG
}
