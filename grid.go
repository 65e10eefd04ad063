package maprouter

// buildCells groups every node's dense index into the cell list keyed by its
// coordinate's CellKey.
func buildCells(nodes []Node) map[CellKey][]int {
	cells := make(map[CellKey][]int, len(nodes))
	for i, n := range nodes {
		key := n.Coordinates.CellKey()
		cells[key] = append(cells[key], i)
	}
	return cells
}

// neighbor tracks the closest eligible node found so far during a
// nearest-neighbor search.
type neighbor struct {
	index int
	dist  uint32
	found bool
}

// NearestNeighbor locates the nearest graph node to coords that has at least
// one out-edge usable by mode (§4.3). It first scans the coordinate's own
// cell, then expands outward in square rings (examining only the perimeter of
// each ring) until a ring fails to improve on the running best, or the
// 10%-of-cell-count search budget is exhausted.
func (g *Graph) NearestNeighbor(coords Coordinates, mode Transport) (int, error) {
	center := coords.CellKey()
	cell, ok := g.Cells[center]
	if !ok {
		return 0, ErrPointOffMap
	}

	best := g.closest([][]int{cell}, coords, mode)

	maxRadius := int(float64(len(g.Cells)) * 0.1)
	for radius := 1; radius < maxRadius; radius++ {
		ringCells := g.ringCells(center, radius)
		candidate := g.closest(ringCells, coords, mode)

		if !best.found {
			best = candidate
		} else if candidate.found && candidate.dist < best.dist {
			best = candidate
		} else {
			break
		}
	}

	if !best.found {
		return 0, ErrNoModeMatch
	}
	return best.index, nil
}

// ringCells collects the cell node-lists on the perimeter of the square ring
// at the given radius around center: cells with |Δx|==radius or |Δy|==radius.
func (g *Graph) ringCells(center CellKey, radius int) [][]int {
	cells := make([][]int, 0, radius*8)
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			if abs(dx) != radius && abs(dy) != radius {
				continue
			}
			key := CellKey{X: center.X + int32(dx), Y: center.Y + int32(dy)}
			if cell, ok := g.Cells[key]; ok {
				cells = append(cells, cell)
			}
		}
	}
	return cells
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// closest scans every node index across the given cells and returns the one
// closest to coords among those with at least one out-edge usable by mode.
func (g *Graph) closest(cells [][]int, coords Coordinates, mode Transport) neighbor {
	best := neighbor{dist: ^uint32(0)}
	for _, cell := range cells {
		for _, idx := range cell {
			if !g.hasModeEdge(idx, mode) {
				continue
			}
			dist := g.NodeCoordinates(idx).DistanceMeters(coords)
			if !best.found || dist < best.dist {
				best = neighbor{index: idx, dist: dist, found: true}
			}
		}
	}
	return best
}

func (g *Graph) hasModeEdge(index int, mode Transport) bool {
	for _, e := range g.OutEdges(index) {
		if e.Transport.Contains(mode) {
			return true
		}
	}
	return false
}
