// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

func ForStateStorageTests(maxRecordSizeInBytes uint32) StateStorageConfig {
	cfg := emptyConfig()

	cfg.SetUint32(STATE_STORAGE_MAX_RECORD_SIZE_IN_BYTES, maxRecordSizeInBytes)
	return cfg
}

func ForLedgerTests(listProjectsMaxResults uint32) LedgerServiceConfig {
	cfg := emptyConfig()

	cfg.SetUint32(LEDGER_LIST_PROJECTS_MAX_RESULTS, listProjectsMaxResults)
	return cfg
}

func ForDispatchTests() DispatchConfig {
	cfg := emptyConfig()

	cfg.SetUint32(STATE_STORAGE_MAX_RECORD_SIZE_IN_BYTES, 64*1024)
	cfg.SetUint32(LEDGER_LIST_PROJECTS_MAX_RESULTS, 100)
	return cfg
}
