package engine

import (
	"fmt"
	"time"

	"github.com/hupe1980/gridmesh/agent"
	"github.com/hupe1980/gridmesh/core"
	"github.com/hupe1980/gridmesh/logging"
)

// Outcome classifies how a run terminated.
type Outcome string

const (
	// OutcomeSuccess means every agent occupies its goal.
	OutcomeSuccess Outcome = "success"
	// OutcomeStalled means no agent moved and no agent holds a path. A
	// stall is a clean termination, not an error.
	OutcomeStalled Outcome = "stalled"
	// OutcomeStepLimit means the step cap fired before completion.
	OutcomeStepLimit Outcome = "step_limit_exceeded"
)

// Report is the terminal run summary handed to reporting collaborators.
type Report struct {
	RunID          string
	Outcome        Outcome
	Steps          int
	FinalPositions map[int]core.Position
	Mismatches     int
}

// Options holds dependency and configuration overrides passed to New.
type Options struct {
	// Config tunes step cap, sensing and conflict handling.
	Config Config
	// Logger receives run diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger
	// EventSink receives per-step events. Nil disables emission.
	EventSink core.EventSink
}

// Coordinator owns one simulation run: the ground-truth grid, the agents,
// the position registry and the step loop. Coordinators are single-use and
// single-threaded; run several independent Coordinators for parallel
// experiments.
type Coordinator struct {
	runID    string
	cfg      Config
	grid     *core.Grid
	agents   []core.Agent
	registry *core.PositionRegistry
	logger   logging.Logger
	sink     core.EventSink
}

// New validates the scenario and builds a ready-to-run Coordinator. Agents
// are created in input order with ascending ids starting at zero, each with
// an initial sense and an initial plan. All validation failures are fatal
// here, before any simulation step executes.
func New(grid *core.Grid, starts []core.Position, goal core.Position, optFns ...func(*Options)) (*Coordinator, error) {
	opts := Options{
		Config: DefaultConfig,
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if grid == nil {
		return nil, fmt.Errorf("grid must not be nil")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	if len(starts) == 0 {
		return nil, fmt.Errorf("at least one agent start is required")
	}
	if len(starts) > opts.Config.MaxAgents {
		return nil, fmt.Errorf("too many agents: %d, max %d", len(starts), opts.Config.MaxAgents)
	}
	if !grid.InBounds(goal) {
		return nil, fmt.Errorf("goal %s is out of bounds", goal)
	}
	if grid.At(goal) == core.Obstacle {
		return nil, fmt.Errorf("goal %s lies on an obstacle", goal)
	}
	for i, s := range starts {
		if !grid.InBounds(s) {
			return nil, fmt.Errorf("agent %d start %s is out of bounds", i, s)
		}
		if grid.At(s) == core.Obstacle {
			return nil, fmt.Errorf("agent %d start %s lies on an obstacle", i, s)
		}
	}

	c := &Coordinator{
		runID:    core.NewID(),
		cfg:      opts.Config,
		grid:     grid,
		registry: core.NewPositionRegistry(),
		logger:   opts.Logger,
		sink:     opts.EventSink,
	}
	for i, s := range starts {
		r := agent.NewRover(i, s, goal, grid, c.registry, func(o *agent.Options) {
			o.SensorRadius = opts.Config.SensorRadius
			o.Logger = opts.Logger
		})
		r.Plan()
		c.agents = append(c.agents, r)
	}
	return c, nil
}

// RunID returns the unique identifier of this run.
func (c *Coordinator) RunID() string { return c.runID }

// Agents returns the agents in ascending id order.
func (c *Coordinator) Agents() []core.Agent {
	return append([]core.Agent(nil), c.agents...)
}

// Registry exposes the live position registry for observers.
func (c *Coordinator) Registry() *core.PositionRegistry { return c.registry }

// Run drives time steps until success, stall or the step cap and returns
// the terminal report. Cancellation is solely the step cap; there is no
// per-call timeout.
func (c *Coordinator) Run() *Report {
	c.logger.Info("run started", "run_id", c.runID, "agents", len(c.agents), "max_steps", c.cfg.MaxSteps)

	for step := 1; step <= c.cfg.MaxSteps; step++ {
		anyMoved := c.step(step)

		if c.allAtGoal() {
			return c.finish(step, OutcomeSuccess)
		}
		if !anyMoved && !c.anyPath() {
			return c.finish(step, OutcomeStalled)
		}
	}

	return c.finish(c.cfg.MaxSteps, OutcomeStepLimit)
}

// step executes one full time step: intent, conflict resolution and
// execution in ascending id order, then broadcast and marker refresh.
func (c *Coordinator) step(step int) (anyMoved bool) {
	started := time.Now()

	// Intent phase: snapshot every agent's proposed next position. The
	// snapshot is what same-target resolution reads even after earlier
	// agents have moved and replanned within this step.
	intents := make(map[int]core.Position, len(c.agents))
	for _, a := range c.agents {
		if next, ok := a.NextMove(); ok {
			intents[a.ID()] = next
		}
	}

	moved, waited := 0, 0
	for _, a := range c.agents {
		if a.AtGoal() {
			continue
		}
		target, ok := intents[a.ID()]
		if !ok {
			continue
		}

		// Same-target conflict: only the lowest proposing id proceeds.
		if lowest := c.lowestClaimant(intents, target); lowest != a.ID() {
			c.wait(step, a, "yielding to lower id")
			waited++
			continue
		}

		// Occupancy conflict against live positions. Entering the agent's
		// own goal cell is always exempt, even when occupied.
		if c.occupiedByOther(a, target) {
			if target != a.Goal() {
				c.wait(step, a, "target cell occupied")
				waited++
				continue
			}
			e := core.NewEvent(c.runID, core.EventGoalEntryOccupied, step, a.ID())
			e.Pos = target
			c.emit(e)
			c.logger.Info("entering occupied goal cell", "agent", a.ID(), "pos", target.String())
		}

		res := a.Move()
		a.ResetWait()
		a.Plan()
		if res.Moved {
			anyMoved = true
			moved++
			e := core.NewEvent(c.runID, core.EventMoved, step, a.ID())
			e.Pos = res.To
			c.emit(e)
		}
		if res.Mismatch {
			e := core.NewEvent(c.runID, core.EventRealityMismatch, step, a.ID())
			e.Pos = res.To
			e.Detail = "local map believed cell passable, ground truth is an obstacle"
			c.emit(e)
		}
	}

	c.broadcast(step)
	c.refreshMarkers()

	if sl, ok := c.logger.(*logging.SimLogger); ok {
		sl.LogStep(step, moved, waited, time.Since(started))
	}
	return anyMoved
}

// wait books a skipped turn for a and fires the anti-deadlock nudge once
// the wait threshold is reached.
func (c *Coordinator) wait(step int, a core.Agent, reason string) {
	e := core.NewEvent(c.runID, core.EventWaited, step, a.ID())
	e.Pos = a.Position()
	e.Detail = reason
	c.emit(e)
	c.logger.Debug("agent waiting", "agent", a.ID(), "reason", reason, "waits", a.WaitCount()+1)

	if a.IncrementWait() >= c.cfg.WaitThreshold {
		a.Replan(a.Goal())
		a.ResetWait()
		re := core.NewEvent(c.runID, core.EventReplanned, step, a.ID())
		re.Pos = a.Position()
		re.Detail = "wait threshold reached"
		c.emit(re)
	}
}

// broadcast unions every agent's shared facts and delivers the package to
// every agent. The union is computed after all moves of the step completed,
// making the exchange a full barrier.
func (c *Coordinator) broadcast(step int) {
	union := make(map[core.Position]core.Cell)
	for _, a := range c.agents {
		for pos, symbol := range a.Share() {
			union[pos] = symbol
		}
	}

	adopters := 0
	for _, a := range c.agents {
		if a.Receive(union) {
			adopters++
		}
	}

	e := core.NewEvent(c.runID, core.EventBroadcast, step, -1)
	e.Detail = fmt.Sprintf("%d facts, %d adopters", len(union), adopters)
	c.emit(e)
	if sl, ok := c.logger.(*logging.SimLogger); ok {
		sl.LogBroadcast(step, len(union), adopters)
	}
}

// refreshMarkers clears stale robot markers in every local map and
// re-stamps them from the current registry snapshot.
func (c *Coordinator) refreshMarkers() {
	positions := c.registry.Snapshot()
	for _, a := range c.agents {
		lm := a.LocalMap()
		lm.ClearMarkers()
		for _, p := range positions {
			lm.Set(p, core.RobotMarker)
		}
	}
}

// lowestClaimant returns the lowest agent id proposing target.
func (c *Coordinator) lowestClaimant(intents map[int]core.Position, target core.Position) int {
	lowest := -1
	for id, p := range intents {
		if p == target && (lowest == -1 || id < lowest) {
			lowest = id
		}
	}
	return lowest
}

// occupiedByOther reports whether another agent currently occupies p.
func (c *Coordinator) occupiedByOther(a core.Agent, p core.Position) bool {
	for _, other := range c.agents {
		if other.ID() != a.ID() && other.Position() == p {
			return true
		}
	}
	return false
}

func (c *Coordinator) allAtGoal() bool {
	for _, a := range c.agents {
		if !a.AtGoal() {
			return false
		}
	}
	return true
}

func (c *Coordinator) anyPath() bool {
	for _, a := range c.agents {
		if a.HasPath() {
			return true
		}
	}
	return false
}

func (c *Coordinator) finish(steps int, outcome Outcome) *Report {
	mismatches := 0
	for _, a := range c.agents {
		mismatches += a.Mismatches()
	}
	report := &Report{
		RunID:          c.runID,
		Outcome:        outcome,
		Steps:          steps,
		FinalPositions: c.registry.Snapshot(),
		Mismatches:     mismatches,
	}

	e := core.NewEvent(c.runID, core.EventFinished, steps, -1)
	e.Detail = string(outcome)
	c.emit(e)
	c.logger.Info("run finished", "run_id", c.runID, "outcome", string(outcome), "steps", steps, "mismatches", mismatches)
	return report
}

func (c *Coordinator) emit(e core.Event) {
	if c.sink != nil {
		c.sink(e)
	}
}
