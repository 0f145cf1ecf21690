// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package dispatch

import (
	"github.com/orbs-network/oscoin-ledger-go/config"
	"github.com/orbs-network/oscoin-ledger-go/instrumentation/logfields"
	"github.com/orbs-network/oscoin-ledger-go/instrumentation/metric"
	"github.com/orbs-network/oscoin-ledger-go/services/ledger"
	"github.com/orbs-network/oscoin-ledger-go/services/statestorage"
	"github.com/orbs-network/oscoin-ledger-go/services/statestorage/adapter"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"time"
)

var LogTag = log.Service("ledger-dispatch")

var ErrHostFailure = errors.New("host storage failed")
var ErrCallAborted = errors.New("call aborted by a panic")

type metrics struct {
	processCallTime *metric.Histogram
	calls           *metric.Rate
	failedCalls     *metric.Gauge
	storage         *statestorage.Metrics
}

func newMetrics(m metric.Factory) *metrics {
	return &metrics{
		processCallTime: m.NewLatency("Ledger.Dispatch.ProcessCallTime.Millis", 5*time.Second),
		calls:           m.NewRate("Ledger.Dispatch.Calls.PerSecond"),
		failedCalls:     m.NewGauge("Ledger.Dispatch.FailedCalls.Count"),
		storage:         statestorage.NewMetrics(m),
	}
}

// Dispatcher is the single entry point of the ledger: it decodes a call,
// runs it against a ledger bound to the host and encodes the result.
type Dispatcher struct {
	config  config.DispatchConfig
	logger  log.Logger
	metrics *metrics
}

func NewDispatcher(config config.DispatchConfig, parentLogger log.Logger, metricFactory metric.Factory) *Dispatcher {
	return &Dispatcher{
		config:  config,
		logger:  parentLogger.WithTags(LogTag),
		metrics: newMetrics(metricFactory),
	}
}

// HandleCall never panics. A word store panicking with *adapter.HostFailure
// fails the call with ErrHostFailure, any other panic with ErrCallAborted.
// Anything already written stays written.
func (d *Dispatcher) HandleCall(host adapter.Host, input []byte) (output []byte, err error) {
	start := time.Now()
	d.metrics.calls.Measure(1)
	defer d.metrics.processCallTime.RecordSince(start)

	defer func() {
		if r := recover(); r != nil {
			output = nil
			if failure, ok := r.(*adapter.HostFailure); ok {
				err = errors.Wrap(ErrHostFailure, failure.Error())
			} else {
				err = errors.Wrapf(ErrCallAborted, "%v", r)
			}
		}
		if err != nil {
			d.metrics.failedCalls.Inc()
			d.logger.Info("call failed", log.Error(err), log.Int("input-size", len(input)))
		}
	}()

	call, err := DecodeCall(input)
	if err != nil {
		return nil, err
	}

	logger := d.logger.WithTags(
		log.Stringable("family", call.Family()),
		log.String("method", call.MethodName()),
		logfields.Caller(host.CallerAccount()),
		logfields.BlockHeight(host.BlockHeight()))

	storage := statestorage.NewStorage(host, d.config, d.metrics.storage)
	l := ledger.NewLedger(storage, host, d.config, logger)

	output, err = Execute(call, l)
	if err != nil {
		return nil, err
	}

	logger.Info("call executed", log.Int("output-size", len(output)))
	return output, nil
}
