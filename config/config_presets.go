// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"path/filepath"
	"time"
)

// all other configs are variations from the production one
func defaultProductionConfig() mutableLedgerConfig {
	cfg := emptyConfig()

	// records are written word by word, 1MB is 32768 word writes
	cfg.SetUint32(STATE_STORAGE_MAX_RECORD_SIZE_IN_BYTES, 1<<20)

	cfg.SetUint32(LEDGER_LIST_PROJECTS_MAX_RESULTS, 1000)

	cfg.SetDuration(METRICS_REPORT_INTERVAL, 30*time.Second)

	return cfg
}

func ForProduction() mutableLedgerConfig {
	return defaultProductionConfig()
}

func ForDevtool(dataDir string) mutableLedgerConfig {
	cfg := defaultProductionConfig()

	cfg.SetString(LEVELDB_WORD_STORE_DIRECTORY, filepath.Join(dataDir, "words"))

	return cfg
}
