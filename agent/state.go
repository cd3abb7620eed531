package agent

// State tracks where a rover is in its lifecycle. Transitions follow
// Created → Sensing → Planning → {Moving | Exploring | AtGoal | Stuck};
// every replan re-enters Planning.
type State int

const (
	// StateCreated is the initial state before the first sense.
	StateCreated State = iota
	// StateSensing means the rover is absorbing ground truth around it.
	StateSensing
	// StatePlanning means a search is in progress on the local map.
	StatePlanning
	// StateMoving means the rover holds a path toward its goal.
	StateMoving
	// StateExploring means the rover holds a path toward an Unknown cell
	// because no path to the goal is currently known.
	StateExploring
	// StateAtGoal means the rover occupies its goal cell.
	StateAtGoal
	// StateStuck means no path exists to the goal or to any Unknown cell.
	StateStuck
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateSensing:
		return "sensing"
	case StatePlanning:
		return "planning"
	case StateMoving:
		return "moving"
	case StateExploring:
		return "exploring"
	case StateAtGoal:
		return "at_goal"
	case StateStuck:
		return "stuck"
	default:
		return "unknown"
	}
}
