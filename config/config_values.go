// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	STATE_STORAGE_MAX_RECORD_SIZE_IN_BYTES = "STATE_STORAGE_MAX_RECORD_SIZE_IN_BYTES"

	LEDGER_LIST_PROJECTS_MAX_RESULTS = "LEDGER_LIST_PROJECTS_MAX_RESULTS"

	LEVELDB_WORD_STORE_DIRECTORY = "LEVELDB_WORD_STORE_DIRECTORY"
	METRICS_REPORT_INTERVAL      = "METRICS_REPORT_INTERVAL"
)

type LedgerConfigValue struct {
	Uint32Value   uint32
	DurationValue time.Duration
	StringValue   string
	BoolValue     bool
}

type LedgerConfigKeyValue struct {
	Key   string
	Value LedgerConfigValue
}

type config struct {
	kv map[string]LedgerConfigValue
}

func emptyConfig() mutableLedgerConfig {
	return &config{
		kv: make(map[string]LedgerConfigValue),
	}
}

func (c *config) Set(key string, value LedgerConfigValue) mutableLedgerConfig {
	c.kv[key] = value
	return c
}

func (c *config) SetDuration(key string, value time.Duration) mutableLedgerConfig {
	c.kv[key] = LedgerConfigValue{DurationValue: value}
	return c
}

func (c *config) SetUint32(key string, value uint32) mutableLedgerConfig {
	c.kv[key] = LedgerConfigValue{Uint32Value: value}
	return c
}

func (c *config) SetString(key string, value string) mutableLedgerConfig {
	c.kv[key] = LedgerConfigValue{StringValue: value}
	return c
}

func (c *config) SetBool(key string, value bool) mutableLedgerConfig {
	c.kv[key] = LedgerConfigValue{BoolValue: value}
	return c
}

func (c *config) StateStorageMaxRecordSizeInBytes() uint32 {
	return c.kv[STATE_STORAGE_MAX_RECORD_SIZE_IN_BYTES].Uint32Value
}

func (c *config) LedgerListProjectsMaxResults() uint32 {
	return c.kv[LEDGER_LIST_PROJECTS_MAX_RESULTS].Uint32Value
}

func (c *config) LevelDbWordStoreDirectory() string {
	return c.kv[LEVELDB_WORD_STORE_DIRECTORY].StringValue
}

func (c *config) MetricsReportInterval() time.Duration {
	return c.kv[METRICS_REPORT_INTERVAL].DurationValue
}

func (c *config) String() string {
	keys := make([]string, 0, len(c.kv))
	for key := range c.kv {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var lines []string
	for _, key := range keys {
		value := c.kv[key]
		lines = append(lines, fmt.Sprintf("%s=%v", key, value.String()))
	}
	return strings.Join(lines, "\n")
}

func (v LedgerConfigValue) String() string {
	switch {
	case v.StringValue != "":
		return v.StringValue
	case v.DurationValue != 0:
		return v.DurationValue.String()
	case v.BoolValue:
		return "true"
	default:
		return fmt.Sprintf("%d", v.Uint32Value)
	}
}
