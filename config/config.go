// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"time"
)

type LedgerConfig interface {
	// state storage
	StateStorageMaxRecordSizeInBytes() uint32

	// ledger
	LedgerListProjectsMaxResults() uint32

	// devtools
	LevelDbWordStoreDirectory() string
	MetricsReportInterval() time.Duration
}

type mutableLedgerConfig interface {
	LedgerConfig
	Set(key string, value LedgerConfigValue) mutableLedgerConfig
	SetDuration(key string, value time.Duration) mutableLedgerConfig
	SetUint32(key string, value uint32) mutableLedgerConfig
	SetString(key string, value string) mutableLedgerConfig
	SetBool(key string, value bool) mutableLedgerConfig
	Modify(newValues ...LedgerConfigKeyValue)
}

type StateStorageConfig interface {
	StateStorageMaxRecordSizeInBytes() uint32
}

type LedgerServiceConfig interface {
	LedgerListProjectsMaxResults() uint32
}

type DispatchConfig interface {
	StateStorageConfig
	LedgerServiceConfig
}

type DevtoolConfig interface {
	DispatchConfig
	LevelDbWordStoreDirectory() string
	MetricsReportInterval() time.Duration
}
