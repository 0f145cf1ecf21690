// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestValidateConfig(t *testing.T) {
	require.NoError(t, Validate(defaultProductionConfig()))
	require.NoError(t, Validate(ForDispatchTests()))
}

func TestValidateConfig_FailsOnZeroValues(t *testing.T) {
	cfg := defaultProductionConfig()
	cfg.SetUint32(STATE_STORAGE_MAX_RECORD_SIZE_IN_BYTES, 0)
	require.Error(t, Validate(cfg))

	cfg = defaultProductionConfig()
	cfg.SetUint32(LEDGER_LIST_PROJECTS_MAX_RESULTS, 0)
	require.Error(t, Validate(cfg))
}
