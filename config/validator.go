// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"github.com/pkg/errors"
)

func Validate(cfg DispatchConfig) error {
	if cfg.StateStorageMaxRecordSizeInBytes() == 0 {
		return errors.Errorf("%s must be positive", STATE_STORAGE_MAX_RECORD_SIZE_IN_BYTES)
	}
	if cfg.LedgerListProjectsMaxResults() == 0 {
		return errors.Errorf("%s must be positive", LEDGER_LIST_PROJECTS_MAX_RESULTS)
	}
	return nil
}
