// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package adapter

import (
	"github.com/orbs-network/go-mock"
)

type MockWordStore struct {
	mock.Mock
}

func (m *MockWordStore) ReadWord(key WordKey) Word {
	ret := m.Mock.Called(key)
	return ret.Get(0).(Word)
}

func (m *MockWordStore) WriteWord(key WordKey, value Word) {
	m.Mock.Called(key, value)
}
