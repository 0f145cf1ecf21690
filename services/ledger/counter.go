// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package ledger

import (
	"github.com/pkg/errors"
)

func (s *service) CounterValue() (uint32, error) {
	value, _, err := s.storage.ReadUint32(COUNTER_KEY)
	if err != nil {
		return 0, errors.Wrap(err, "failed reading counter")
	}
	return value, nil
}

// CounterInc wraps to zero past the maximum uint32.
func (s *service) CounterInc() error {
	value, err := s.CounterValue()
	if err != nil {
		return err
	}
	return errors.Wrap(s.storage.WriteUint32(COUNTER_KEY, value+1), "failed writing counter")
}
