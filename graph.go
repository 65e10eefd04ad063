package maprouter

// Node is a vertex in the road network. ID is the original OSM id; every
// internal reference, including the "start snaps to the same node as goal"
// check in ShortestPath, uses the dense index instead.
type Node struct {
	ID          int64
	Coordinates Coordinates
}

// ChargingNode is a registered charging station: an OSM node tagged
// amenity=charging_station, plus the vehicle classes it serves.
type ChargingNode struct {
	ID              int64
	Coordinates     Coordinates
	ChargingOptions ChargingOptions
}

// Edge is a directed road segment between two dense node indices.
type Edge struct {
	SourceIndex int
	TargetIndex int
	Transport   Transport
	DistanceM   uint32
	MaxSpeed    Kmh
}

// Cost returns the edge's routing cost for mode under routing: travel time in
// whole seconds when mode is Car and routing is Time, otherwise physical
// distance in meters (bike and walk are assumed constant-speed for costing
// purposes).
func (e Edge) Cost(mode Transport, routing Routing) uint32 {
	if mode == Car && routing == Time {
		return e.MaxSpeed.Time(e.DistanceM)
	}
	return e.DistanceM
}

// bikeReportingSpeed is the constant speed assumed when reporting bike
// travel time, independent of the edge's posted max speed.
var bikeReportingSpeed = NewKmh(20)

// TravelTime returns the edge's travel time in whole seconds for reporting
// purposes, regardless of routing objective: the car's posted max speed, or a
// constant 20km/h for bike/mixed modes.
func (e Edge) TravelTime(mode Transport) uint32 {
	if mode == Car {
		return e.MaxSpeed.Time(e.DistanceM)
	}
	return bikeReportingSpeed.Time(e.DistanceM)
}

// Graph is the read-only product of the builder: a CSR adjacency structure
// augmented with a spatial index and a charging-station registry. It is
// immutable once built and safe to share across any number of concurrent
// readers.
type Graph struct {
	Nodes         []Node
	Edges         []Edge
	Offsets       []int
	Cells         map[CellKey][]int
	ChargingNodes []ChargingNode
}

// NodeCoordinates returns the coordinates of the node at index.
func (g *Graph) NodeCoordinates(index int) Coordinates {
	return g.Nodes[index].Coordinates
}

// OutEdges returns the out-edges of the node at index: edges[offsets[u]..offsets[u+1]].
// Because edges are sorted by source, this span is exactly node u's adjacency
// list.
func (g *Graph) OutEdges(index int) []Edge {
	start := g.Offsets[index]
	end := g.Offsets[index+1]
	return g.Edges[start:end]
}

// ChargingStationCoordinates returns the coordinates of every registered
// charging station, for the GET /charging-stations endpoint.
func (g *Graph) ChargingStationCoordinates() []Coordinates {
	coords := make([]Coordinates, len(g.ChargingNodes))
	for i, n := range g.ChargingNodes {
		coords[i] = n.Coordinates
	}
	return coords
}
