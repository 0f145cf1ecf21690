// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package files

import (
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"os"
	"testing"
)

// WithTempDir runs f with a fresh directory that is removed afterwards.
func WithTempDir(t testing.TB, prefix string, f func(dir string)) {
	dir, err := ioutil.TempDir("", prefix)
	require.NoError(t, err, "failed creating temp dir")
	defer RemoveSilently(dir)

	f(dir)
}

func NewTempFileWithContent(t testing.TB, content string) string {
	file, err := ioutil.TempFile("", "*.json")
	require.NoError(t, err, "failed creating config file")
	_, err = file.Write([]byte(content))
	require.NoError(t, err, "failed writing to config file")
	require.NoError(t, file.Close())
	return file.Name()
}

func RemoveSilently(path string) {
	_ = os.RemoveAll(path)
}
