// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package commands

import (
	"context"
	"flag"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/oscoin-ledger-go/instrumentation/metric"
	"github.com/orbs-network/oscoin-ledger-go/services/dispatch"
	"github.com/orbs-network/oscoin-ledger-go/services/statestorage/adapter"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"time"
)

func HandleBenchCommand(args []string) int {
	return exitCode(NewRunner().Bench(args))
}

// Bench increments the counter -count times, registering a project every
// -register-every calls, and reports dispatch metrics while it runs.
func (r *Runner) Bench(args []string) error {
	flagSet := flag.NewFlagSet("bench", flag.ContinueOnError)
	var store storeFlags
	var callContext contextFlags
	store.register(flagSet)
	callContext.register(flagSet)
	count := flagSet.Int("count", 1000, "number of counter_inc calls")
	registerEvery := flagSet.Int("register-every", 100, "register a project every n calls, 0 to never register")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if *count <= 0 {
		return errors.Errorf("count must be positive, got %d", *count)
	}

	execution, err := callContext.context()
	if err != nil {
		return err
	}
	cfg, err := store.loadConfig()
	if err != nil {
		return err
	}

	inc, err := dispatch.EncodeCall(&dispatch.UpdateCounterInc{})
	if err != nil {
		return err
	}
	register, err := dispatch.EncodeCall(&dispatch.UpdateRegisterProject{})
	if err != nil {
		return err
	}

	registry := metric.NewRegistry()
	ctx, cancel := context.WithCancel(context.Background())
	var supervisor govnr.TreeSupervisor
	supervisor.Supervise(registry.ReportEvery(ctx, cfg.MetricsReportInterval(), r.Logger))
	defer func() {
		cancel()
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), time.Second)
		defer cancelShutdown()
		supervisor.WaitUntilShutdown(shutdownCtx)
	}()

	return r.withDispatcher(cfg, registry, func(d *dispatch.Dispatcher, words adapter.WordStore) error {
		host := adapter.NewHost(words, execution)
		start := time.Now()
		for i := 1; i <= *count; i++ {
			if _, err := d.HandleCall(host, inc); err != nil {
				return errors.Wrapf(err, "call %d failed", i)
			}
			if *registerEvery > 0 && i%*registerEvery == 0 {
				// one registration per block height keeps project ids distinct
				execution.Height++
				if _, err := d.HandleCall(host, register); err != nil {
					return errors.Wrapf(err, "registration after call %d failed", i)
				}
			}
		}

		r.Logger.Info("bench done", log.Int("calls", *count), log.String("duration", time.Since(start).String()))
		registry.Report(r.Logger)
		return r.println(time.Since(start))
	})
}
