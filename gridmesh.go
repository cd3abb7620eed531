// Package gridmesh provides a high-level façade over the simulation engine
// enabling rapid construction of partial-knowledge multi-agent grid runs.
// Most applications interact with this package by:
//  1. Building a ground-truth core.Grid (callers own environment I/O)
//  2. Describing a Scenario (grid, agent starts, one goal)
//  3. Executing it with Run, or many independent scenarios with RunBatch
//
// The façade delegates orchestration to engine.Coordinator while keeping
// setup and usage ergonomics concise. Defaults are safe for local
// experiments; callers typically supply a structured logger and an event
// sink for rendering or reporting.
package gridmesh

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/gridmesh/core"
	"github.com/hupe1980/gridmesh/engine"
	"github.com/hupe1980/gridmesh/logging"
)

// Scenario describes one simulation run: a ground-truth grid, the agent
// start positions (ascending ids follow input order) and the single goal.
type Scenario struct {
	Grid   *core.Grid
	Starts []core.Position
	Goal   core.Position
}

// Options configures simulation construction.
type Options struct {
	// Config tunes step cap, sensing and conflict handling.
	Config engine.Config
	// Logger defaults to NoOpLogger.
	Logger logging.Logger
	// EventSink receives per-step events; nil disables emission.
	EventSink core.EventSink
}

// New builds a ready-to-run Coordinator for the scenario. Malformed input
// is rejected here, before any simulation step executes.
func New(s Scenario, optFns ...func(o *Options)) (*engine.Coordinator, error) {
	opts := Options{
		Config: engine.DefaultConfig,
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return engine.New(s.Grid, s.Starts, s.Goal, func(o *engine.Options) {
		o.Config = opts.Config
		o.Logger = opts.Logger
		o.EventSink = opts.EventSink
	})
}

// Run constructs and executes a single scenario synchronously.
func Run(s Scenario, optFns ...func(o *Options)) (*engine.Report, error) {
	coord, err := New(s, optFns...)
	if err != nil {
		return nil, err
	}
	return coord.Run(), nil
}

// RunBatch executes independent scenarios in parallel and returns their
// reports in input order. Each run owns its agents, registry and maps, so
// runs share no state; per-run determinism is unaffected by the batch
// parallelism. The context only gates starting runs; a run that has
// started always completes (its own step cap bounds it).
func RunBatch(ctx context.Context, scenarios []Scenario, optFns ...func(o *Options)) ([]*engine.Report, error) {
	g, ctx := errgroup.WithContext(ctx)
	reports := make([]*engine.Report, len(scenarios))

	for i, s := range scenarios {
		i, s := i, s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			coord, err := New(s, optFns...)
			if err != nil {
				return fmt.Errorf("scenario %d: %w", i, err)
			}
			reports[i] = coord.Run()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
