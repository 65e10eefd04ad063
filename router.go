package maprouter

// Route is the result of a shortest-path query: the sequence of coordinates
// from start to goal, the total distance in meters, and the total travel
// time in seconds (always reported using Edge.TravelTime, independent of the
// routing objective actually optimized for).
type Route struct {
	Path     []Coordinates
	Distance uint32
	Time     uint32
}

// edgeCost is the per-edge routing cost table: the weight the heap orders by
// for a given query.
func edgeCost(e Edge, mode Transport, routing Routing) uint32 {
	return e.Cost(mode, routing)
}

// heuristic is the A* estimate of the remaining cost from a node to goal. It
// is admissible only when the routing cost is itself physical distance, so
// Car+Time (whose cost is travel time, a different unit) falls back to
// Dijkstra with a zero heuristic.
func heuristic(g *Graph, nodeIndex int, goalCoords Coordinates, mode Transport, routing Routing) uint32 {
	if mode == Car && routing == Time {
		return 0
	}
	return g.NodeCoordinates(nodeIndex).DistanceMeters(goalCoords)
}

// ShortestPath finds the lowest-cost path between start and goal for mode
// under routing (§4.4). Both endpoints are snapped to the nearest graph node
// reachable by mode via Graph.NearestNeighbor. The search is a lazy
// decrease-key Dijkstra/A*: stale heap entries (whose recorded cost no longer
// matches the best known cost for that node) are discarded on pop rather than
// updated in place, and the predecessor table is a sparse node-index-to-
// edge-index map rather than a dense array.
func ShortestPath(g *Graph, start, goal Coordinates, mode Transport, routing Routing) (*Route, error) {
	startIndex, err := g.NearestNeighbor(start, mode)
	if err != nil {
		return nil, err
	}
	goalIndex, err := g.NearestNeighbor(goal, mode)
	if err != nil {
		return nil, err
	}
	if startIndex == goalIndex {
		return nil, ErrStartEqualsGoal
	}

	best := map[int]uint32{startIndex: 0}
	prevEdge := make(map[int]int)

	h := Create()
	h.Insert(HNode{NodeIndex: startIndex, Cost: 0, Priority: heuristic(g, startIndex, goal, mode, routing), PrevEdge: -1})

	var reached bool
	for !h.IsEmpty() {
		current, err := h.Min()
		if err != nil {
			break
		}
		_ = h.DeleteMin()

		if current.Cost > best[current.NodeIndex] {
			continue
		}
		if current.NodeIndex == goalIndex {
			reached = true
			break
		}

		base := g.Offsets[current.NodeIndex]
		for i, e := range g.OutEdges(current.NodeIndex) {
			if !e.Transport.Contains(mode) {
				continue
			}
			newCost := current.Cost + edgeCost(e, mode, routing)
			if existing, ok := best[e.TargetIndex]; ok && newCost >= existing {
				continue
			}
			best[e.TargetIndex] = newCost
			prevEdge[e.TargetIndex] = base + i
			h.Insert(HNode{
				NodeIndex: e.TargetIndex,
				Cost:      newCost,
				Priority:  newCost + heuristic(g, e.TargetIndex, goal, mode, routing),
				PrevEdge:  base + i,
			})
		}
	}

	if !reached {
		return nil, ErrNoPath
	}
	return buildRoute(g, startIndex, goalIndex, prevEdge, mode), nil
}

// buildRoute backtracks from goalIndex to startIndex via prevEdge,
// accumulating edges goal-to-start, then reverses once so the returned
// Route.Path runs start-to-goal.
func buildRoute(g *Graph, startIndex, goalIndex int, prevEdge map[int]int, mode Transport) *Route {
	var edges []Edge
	for node := goalIndex; node != startIndex; {
		edgeIdx := prevEdge[node]
		edge := g.Edges[edgeIdx]
		edges = append(edges, edge)
		node = edge.SourceIndex
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	path := make([]Coordinates, 0, len(edges)+1)
	path = append(path, g.NodeCoordinates(startIndex))
	var distance, time uint32
	for _, e := range edges {
		path = append(path, g.NodeCoordinates(e.TargetIndex))
		distance += e.DistanceM
		time += e.TravelTime(mode)
	}

	return &Route{Path: path, Distance: distance, Time: time}
}
