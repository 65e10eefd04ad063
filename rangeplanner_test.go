package maprouter

import "testing"

// kmToDegrees approximates one degree of latitude as 111.195km, matching the
// mean-earth-radius haversine distances used elsewhere in this engine.
func kmToDegrees(km float64) float64 {
	return km / 111.195
}

// rangeTestGraph builds a straight line of nodes at the given kilometer
// markers, with a charging station at each of stationMarkersKm, for exercising the
// range-constrained planner without needing a real OSM extract.
func rangeTestGraph(markersKm []float64, stationMarkersKm []float64) *Graph {
	coords := make([]Coordinates, len(markersKm))
	for i, km := range markersKm {
		coords[i] = NewCoordinates(kmToDegrees(km), 0)
	}

	var edges []Edge
	speed := NewKmh(80)
	for i := 0; i < len(coords)-1; i++ {
		edges = append(edges,
			Edge{SourceIndex: i, TargetIndex: i + 1, Transport: Car, MaxSpeed: speed},
			Edge{SourceIndex: i + 1, TargetIndex: i, Transport: Car, MaxSpeed: speed},
		)
	}
	g := newTestGraph(coords, edges)

	for _, stationKm := range stationMarkersKm {
		g.ChargingNodes = append(g.ChargingNodes, ChargingNode{
			Coordinates:     NewCoordinates(kmToDegrees(stationKm), 0),
			ChargingOptions: ChargingCarBike,
		})
	}
	return g
}

func TestPlanRangeRouteInsertsChargingStops(t *testing.T) {
	markers := []float64{0, 30, 50, 100, 150, 200, 250, 300, 350, 400}
	g := rangeTestGraph(markers, []float64{30, 250})

	start := g.NodeCoordinates(0)
	goal := g.NodeCoordinates(len(markers) - 1)

	route, err := PlanRangeRoute(g, start, goal, Car, Distance, 50_000, 350_000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(route.VisitedCharging) != 2 {
		t.Fatalf("visited %d charging stations, want 2: %v", len(route.VisitedCharging), route.VisitedCharging)
	}
	if route.Distance == 0 {
		t.Fatalf("expected a non-zero total distance")
	}
	if route.Path[0] != start || route.Path[len(route.Path)-1] != goal {
		t.Fatalf("route endpoints do not match start/goal")
	}
}

func TestPlanRangeRouteNoReachableStation(t *testing.T) {
	markers := []float64{0, 400}
	g := rangeTestGraph(markers, nil)

	_, err := PlanRangeRoute(g, g.NodeCoordinates(0), g.NodeCoordinates(1), Car, Distance, 50_000, 350_000)
	if err != ErrUnreasonableRange {
		t.Fatalf("got %v, want ErrUnreasonableRange", err)
	}
}

func TestPickStationPrefersFurthestReachable(t *testing.T) {
	current := NewCoordinates(0, 0)
	goal := NewCoordinates(kmToDegrees(400), 0)
	stations := []ChargingNode{
		{Coordinates: NewCoordinates(kmToDegrees(10), 0)},
		{Coordinates: NewCoordinates(kmToDegrees(30), 0)},
	}
	station, ok := pickStation(current, goal, stations, 50_000)
	if !ok {
		t.Fatalf("expected a reachable station")
	}
	if station.Coordinates != stations[1].Coordinates {
		t.Fatalf("expected the furthest reachable station to be picked")
	}
}

func TestPickStationRejectsOutOfSlackRange(t *testing.T) {
	current := NewCoordinates(0, 0)
	goal := NewCoordinates(kmToDegrees(400), 0)
	stations := []ChargingNode{
		{Coordinates: NewCoordinates(kmToDegrees(40), 0)}, // 40km * 1.5 = 60km > 50km remaining
	}
	if _, ok := pickStation(current, goal, stations, 50_000); ok {
		t.Fatalf("expected no station to be reachable within slack")
	}
}
