// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"context"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/oscoin-ledger-go/test"
	"github.com/orbs-network/oscoin-ledger-go/test/with"
	"github.com/orbs-network/scribe/log"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestInMemoryRegistry_ExportAll(t *testing.T) {
	registry := NewRegistry()
	gauge := registry.NewGauge("hello")
	gauge.Add(1)

	gaugeValue := registry.ExportAll()["hello"].(gaugeExport)
	require.EqualValues(t, gaugeValue.Value, 1)
}

func TestInMemoryRegistry_GetByName(t *testing.T) {
	registry := NewRegistry()
	gauge := registry.NewGauge("Ledger.Test.Count")

	require.Equal(t, gauge, registry.Get("Ledger.Test.Count"))
	require.Nil(t, registry.Get("Ledger.Missing.Count"))
}

func TestInMemoryRegistry_ReportEveryRotatesHistograms(t *testing.T) {
	registry := NewRegistry()
	registry.NewGauge("hello").Inc()
	registry.NewLatency("latency", time.Second).Record(int64(time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var supervisor govnr.TreeSupervisor
	supervisor.Supervise(registry.ReportEvery(ctx, time.Millisecond, log.GetLogger().WithFilters(log.DiscardAll())))

	require.True(t, test.Eventually(func() bool {
		return registry.Get("latency").Export().LogRow() == nil
	}), "periodic reports should rotate old samples out of the histogram")
	require.Contains(t, registry.String(), "metric hello: 1")
}

func TestInMemoryRegistry_ReportEveryStopsWhenContextIsCancelled(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		registry := NewRegistry()
		registry.NewGauge("hello").Inc()

		ctx, cancel := context.WithCancel(context.Background())
		var supervisor govnr.TreeSupervisor
		reporter := registry.ReportEvery(ctx, time.Hour, harness.Logger)
		supervisor.Supervise(reporter)
		cancel()

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), time.Second)
		defer cancelShutdown()
		supervisor.WaitUntilShutdown(shutdownCtx)

		select {
		case <-reporter.Done():
		default:
			t.Fatal("reporter should have stopped after its context was cancelled")
		}
	})
}
