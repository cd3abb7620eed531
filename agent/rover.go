package agent

import (
	"fmt"
	"sort"

	"github.com/hupe1980/gridmesh/core"
	"github.com/hupe1980/gridmesh/logging"
	"github.com/hupe1980/gridmesh/search"
)

// Options holds configuration overrides passed to NewRover.
type Options struct {
	// SensorRadius is the half-width of the square sensing window.
	SensorRadius int
	// Logger receives per-rover diagnostics.
	Logger logging.Logger
}

// Rover is a mobile agent with partial knowledge of the grid. It owns a
// private LocalMap that starts fully Unknown (except the goal), senses
// ground truth around its position, plans on the LocalMap only, and trades
// facts with its peers through the coordinator's broadcast.
//
// Rover implements core.Agent. All methods are driven by the
// single-threaded coordinator loop.
type Rover struct {
	id           int
	start        core.Position
	goal         core.Position
	pos          core.Position
	sensorRadius int

	world    core.CellMap // ground truth, consulted by Sense only
	local    *core.LocalMap
	registry *core.PositionRegistry

	path       []core.Position
	record     []core.Fact
	known      map[core.Fact]struct{}
	waits      int
	mismatches int
	state      State

	logger logging.Logger
}

// NewRover creates a rover at start, registers it and performs the initial
// sense. The world map is ground truth and is only ever read through
// sensing; planning sees the rover's LocalMap exclusively.
func NewRover(id int, start, goal core.Position, world core.CellMap, registry *core.PositionRegistry, optFns ...func(*Options)) *Rover {
	opts := Options{
		SensorRadius: 1,
		Logger:       logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	rows, cols := world.Dims()
	r := &Rover{
		id:           id,
		start:        start,
		goal:         goal,
		pos:          start,
		sensorRadius: opts.SensorRadius,
		world:        world,
		local:        core.NewLocalMap(rows, cols, goal),
		registry:     registry,
		known:        make(map[core.Fact]struct{}),
		state:        StateCreated,
		logger:       opts.Logger,
	}
	r.recordFact(core.Fact{Pos: goal, Symbol: core.Goal})
	registry.Set(id, start)
	r.Sense()
	return r
}

// ID returns the rover id; lower ids win conflict resolution.
func (r *Rover) ID() int { return r.id }

// Position returns the current position.
func (r *Rover) Position() core.Position { return r.pos }

// Start returns the starting position.
func (r *Rover) Start() core.Position { return r.start }

// Goal returns the current goal.
func (r *Rover) Goal() core.Position { return r.goal }

// AtGoal reports whether the rover occupies its goal cell.
func (r *Rover) AtGoal() bool { return r.pos == r.goal }

// State returns the rover's lifecycle state.
func (r *Rover) State() State { return r.state }

// LocalMap exposes the rover's private map for refresh and rendering.
func (r *Rover) LocalMap() *core.LocalMap { return r.local }

// Path returns a copy of the remaining planned path.
func (r *Rover) Path() []core.Position {
	return append([]core.Position(nil), r.path...)
}

// HasPath reports whether a planned path remains.
func (r *Rover) HasPath() bool { return len(r.path) > 0 }

// NextMove returns the next planned position, if any.
func (r *Rover) NextMove() (core.Position, bool) {
	if len(r.path) == 0 {
		return core.Position{}, false
	}
	return r.path[0], true
}

// Mismatches returns how many times the rover stepped onto a cell ground
// truth marked as an obstacle.
func (r *Rover) Mismatches() int { return r.mismatches }

// Record returns the ordered fact record accumulated so far.
func (r *Rover) Record() []core.Fact {
	return append([]core.Fact(nil), r.record...)
}

// Sense copies ground truth within the sensor radius (bounds-clipped square
// window) into the LocalMap and records newly observed facts. Repeated
// calls from an unchanged position are no-ops.
func (r *Rover) Sense() {
	r.state = StateSensing
	for dr := -r.sensorRadius; dr <= r.sensorRadius; dr++ {
		for dc := -r.sensorRadius; dc <= r.sensorRadius; dc++ {
			p := core.Position{Row: r.pos.Row + dr, Col: r.pos.Col + dc}
			if !r.local.InBounds(p) {
				continue
			}
			symbol := r.world.At(p)
			r.local.Set(p, symbol)
			r.recordFact(core.Fact{Pos: p, Symbol: symbol})
		}
	}
}

// Plan runs A* with a Manhattan heuristic from the current position to the
// goal on the LocalMap. When no path exists it falls back to exploration:
// every Unknown cell is tried in ascending Manhattan distance order and the
// first reachable one becomes the target. With nothing reachable the path
// ends up empty and the rover is stuck (or the map fully explored).
func (r *Rover) Plan() {
	r.state = StatePlanning

	res := search.AStar(r.local, r.pos, r.goal, search.Manhattan())
	if res.Found {
		r.adoptPath(res.Path)
		if r.AtGoal() {
			r.state = StateAtGoal
		} else {
			r.state = StateMoving
		}
		r.logger.Debug("path to goal planned", "agent", r.id, "from", r.pos.String(), "steps", len(r.path))
		return
	}

	r.logger.Debug("no path to goal, trying exploration", "agent", r.id, "from", r.pos.String())
	for _, target := range r.unknownCells() {
		res := search.AStar(r.local, r.pos, target, search.Manhattan())
		if res.Found {
			r.adoptPath(res.Path)
			r.state = StateExploring
			r.logger.Debug("exploring toward unknown cell", "agent", r.id, "target", target.String())
			return
		}
	}

	r.path = nil
	if r.AtGoal() {
		r.state = StateAtGoal
	} else {
		r.state = StateStuck
	}
	r.logger.Debug("no reachable unknown cells", "agent", r.id, "pos", r.pos.String())
}

// Replan updates the goal and plans again.
func (r *Rover) Replan(goal core.Position) {
	r.goal = goal
	r.Plan()
}

// Move pops the next path entry and executes it unconditionally: the
// vacated cell is marked Free, the new position is adopted even when ground
// truth marks it as an obstacle (the mismatch is flagged, never prevented),
// the registry entry is updated and the rover re-senses.
func (r *Rover) Move() core.MoveResult {
	if len(r.path) == 0 {
		return core.MoveResult{From: r.pos, To: r.pos}
	}

	from := r.pos
	r.local.Set(from, core.Free)

	next := r.path[0]
	r.path = r.path[1:]

	mismatch := r.world.At(next) == core.Obstacle
	if mismatch {
		r.mismatches++
		r.logger.Warn("reality mismatch: moved onto undiscovered obstacle",
			"agent", r.id, "pos", next.String(), "believed", r.local.At(next).String())
	}

	r.pos = next
	r.registry.Set(r.id, next)
	r.Sense()
	if r.AtGoal() {
		r.state = StateAtGoal
	}

	return core.MoveResult{From: from, To: next, Moved: true, Mismatch: mismatch}
}

// Share returns the full fact record as a position→symbol mapping. Later
// facts win for positions recorded twice (the goal cell is first recorded
// as Goal and later as whatever sensing reveals).
func (r *Rover) Share() map[core.Position]core.Cell {
	out := make(map[core.Position]core.Cell, len(r.record))
	for _, f := range r.record {
		out[f.Pos] = f.Symbol
	}
	return out
}

// Receive adopts every fact whose LocalMap cell is still Unknown and
// appends it to the record. Any adoption triggers a replan.
func (r *Rover) Receive(facts map[core.Position]core.Cell) bool {
	adopted := false
	for pos, symbol := range facts {
		if !r.local.InBounds(pos) || r.local.At(pos) != core.Unknown {
			continue
		}
		r.local.Set(pos, symbol)
		r.recordFact(core.Fact{Pos: pos, Symbol: symbol})
		adopted = true
	}
	if adopted {
		r.logger.Debug("received new knowledge, replanning", "agent", r.id)
		r.Plan()
	}
	return adopted
}

// IncrementWait bumps the wait counter and returns its new value.
func (r *Rover) IncrementWait() int {
	r.waits++
	return r.waits
}

// ResetWait clears the wait counter.
func (r *Rover) ResetWait() { r.waits = 0 }

// WaitCount returns the current wait counter.
func (r *Rover) WaitCount() int { return r.waits }

func (r *Rover) String() string {
	return fmt.Sprintf("Rover(id=%d, start=%s, goal=%s, current=%s)", r.id, r.start, r.goal, r.pos)
}

// adoptPath stores the path excluding the current cell.
func (r *Rover) adoptPath(path []core.Position) {
	r.path = append([]core.Position(nil), path[1:]...)
}

// recordFact appends f unless the exact fact was already recorded.
func (r *Rover) recordFact(f core.Fact) bool {
	if _, ok := r.known[f]; ok {
		return false
	}
	r.known[f] = struct{}{}
	r.record = append(r.record, f)
	return true
}

// unknownCells enumerates Unknown cells row-major and stable-sorts them by
// Manhattan distance to the rover, keeping the enumeration order among ties
// so exploration targets are deterministic.
func (r *Rover) unknownCells() []core.Position {
	rows, cols := r.local.Dims()
	var unknowns []core.Position
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			p := core.Position{Row: row, Col: col}
			if r.local.At(p) == core.Unknown {
				unknowns = append(unknowns, p)
			}
		}
	}
	sort.SliceStable(unknowns, func(i, j int) bool {
		return unknowns[i].Manhattan(r.pos) < unknowns[j].Manhattan(r.pos)
	})
	return unknowns
}
