package maprouter

import "log"

// rangeSlackFactor inflates the crow-flies distance to a candidate charging
// station before comparing it against the remaining range: the road distance
// to the station is always somewhat larger than the straight line, so a
// candidate is only considered reachable if it clears the remaining range by
// this margin.
const rangeSlackFactor = 1.5

// maxRangeIterations bounds the number of charging stops the planner will
// insert before giving up. A well-formed query reaches the goal in a handful
// of hops; hitting this guard means no sequence of stations could make
// progress within the given range.
const maxRangeIterations = 100

// RangeRoute is the result of a range-constrained query: the stitched path
// and totals of Route, plus the charging stations visited along the way.
type RangeRoute struct {
	Route
	VisitedCharging []Coordinates
}

// PlanRangeRoute finds a path from start to goal for mode under routing,
// inserting charging stops as needed so that no leg of the journey exceeds
// the vehicle's range (§4.5). currentRangeM is the range available for the
// first leg; maxRangeM is the range restored by a full recharge at each
// subsequent stop.
func PlanRangeRoute(g *Graph, start, goal Coordinates, mode Transport, routing Routing, currentRangeM, maxRangeM uint32) (*RangeRoute, error) {
	stations := eligibleStations(g, mode)

	current := start
	remaining := currentRangeM

	result := &RangeRoute{}
	for iteration := 0; ; iteration++ {
		log.Printf("range planner: iteration %d, remaining range %dm (max %dm)", iteration, remaining, maxRangeM)
		if iteration >= maxRangeIterations {
			return nil, ErrUnreasonableRange
		}

		direct, err := ShortestPath(g, current, goal, mode, routing)
		if err == nil && direct.Distance <= remaining {
			appendLeg(result, direct)
			log.Printf("range planner: reached goal after %d charging stop(s), total distance %dm", len(result.VisitedCharging), result.Distance)
			return result, nil
		}
		if err != nil && err != ErrNoPath {
			return nil, err
		}

		station, ok := pickStation(current, goal, stations, remaining)
		if !ok {
			return nil, ErrUnreasonableRange
		}

		leg, err := ShortestPath(g, current, station.Coordinates, mode, routing)
		if err != nil {
			return nil, err
		}
		appendLeg(result, leg)
		result.VisitedCharging = append(result.VisitedCharging, station.Coordinates)

		current = station.Coordinates
		remaining = maxRangeM
	}
}

// eligibleStations returns the charging stations that serve mode's charging
// class.
func eligibleStations(g *Graph, mode Transport) []ChargingNode {
	required := ChargingOptionsFrom(mode)
	var out []ChargingNode
	for _, s := range g.ChargingNodes {
		if s.ChargingOptions.Contains(required) {
			out = append(out, s)
		}
	}
	return out
}

// pickStation selects the charging station that makes the most progress away
// from current while remaining reachable: among stations whose crow-flies
// distance from current, inflated by rangeSlackFactor, still fits within
// remaining, it picks the furthest one, breaking ties by proximity to goal.
func pickStation(current, goal Coordinates, stations []ChargingNode, remaining uint32) (ChargingNode, bool) {
	var best ChargingNode
	var bestFromCurrent, bestToGoal uint32
	found := false

	for _, s := range stations {
		fromCurrent := current.DistanceMeters(s.Coordinates)
		if uint32(float64(fromCurrent)*rangeSlackFactor) >= remaining {
			continue
		}
		toGoal := s.Coordinates.DistanceMeters(goal)

		switch {
		case !found:
			best, bestFromCurrent, bestToGoal, found = s, fromCurrent, toGoal, true
		case fromCurrent > bestFromCurrent:
			best, bestFromCurrent, bestToGoal = s, fromCurrent, toGoal
		case fromCurrent == bestFromCurrent && toGoal < bestToGoal:
			best, bestFromCurrent, bestToGoal = s, fromCurrent, toGoal
		}
	}
	return best, found
}

// appendLeg stitches a routed leg onto result, dropping the leg's first
// coordinate when it duplicates result's current endpoint.
func appendLeg(result *RangeRoute, leg *Route) {
	path := leg.Path
	if len(result.Path) > 0 && len(path) > 0 && path[0] == result.Path[len(result.Path)-1] {
		path = path[1:]
	}
	result.Path = append(result.Path, path...)
	result.Distance += leg.Distance
	result.Time += leg.Time
}
