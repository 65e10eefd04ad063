package maprouter

import "github.com/pkg/errors"

// Sentinel errors for the error kinds enumerated by the routing engine. Callers
// match them with errors.Is even after a handler has wrapped them with extra
// context via errors.Wrap/errors.Wrapf.
var (
	// ErrInputCorruption is returned when a way references an OSM node id that
	// was never seen, or the PBF stream otherwise fails to decode. Fatal at
	// load time.
	ErrInputCorruption = errors.New("input corruption: way references unknown node")

	// ErrPointOffMap is returned when a query coordinate's cell has no entry
	// in the spatial grid.
	ErrPointOffMap = errors.New("point off-map")

	// ErrNoModeMatch is returned when a cell exists but no node within search
	// range has an out-edge usable by the requested transport mode.
	ErrNoModeMatch = errors.New("no node for this mode")

	// ErrStartEqualsGoal is returned when the snapped start and goal collapse
	// to the same graph node.
	ErrStartEqualsGoal = errors.New("start is goal")

	// ErrNoPath is returned when the priority queue empties before the goal
	// is reached (disconnected network components).
	ErrNoPath = errors.New("no path found")

	// ErrUnreasonableRange is returned when the range planner finds no
	// charging station within the remaining range, or when its iteration
	// guard trips without reaching the goal.
	ErrUnreasonableRange = errors.New("please enter reasonable ranges")
)
