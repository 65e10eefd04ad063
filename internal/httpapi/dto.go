// Package httpapi exposes the routing engine over HTTP, mirroring the wire
// contract of the original service: a POST endpoint for shortest-path and
// range-constrained queries, and a GET endpoint listing charging stations.
package httpapi

import "map-router"

// FloatCoordinates is the wire representation of a coordinate pair:
// floating-point degrees, as opposed to the engine's internal fixed-point
// Coordinates.
type FloatCoordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func toEngine(c FloatCoordinates) maprouter.Coordinates {
	return maprouter.NewCoordinates(c.Lat, c.Lon)
}

func fromEngine(c maprouter.Coordinates) FloatCoordinates {
	return FloatCoordinates{Lat: c.LatDegrees(), Lon: c.LonDegrees()}
}

func floatCoordinatesFrom(path []maprouter.Coordinates) []FloatCoordinates {
	out := make([]FloatCoordinates, len(path))
	for i, c := range path {
		out[i] = fromEngine(c)
	}
	return out
}

// ShortestPathRequest is the request body of POST /shortest-path.
// CurrentRange and MaxRange are optional: when both are present the query is
// routed through the range-constrained planner instead of a plain
// shortest-path search. Both are decimal strings of kilometers, matching the
// wire format of the original service.
type ShortestPathRequest struct {
	Start        FloatCoordinates `json:"start"`
	Goal         FloatCoordinates `json:"goal"`
	Transport    string           `json:"transport"`
	Routing      string           `json:"routing"`
	CurrentRange *string          `json:"current_range,omitempty"`
	MaxRange     *string          `json:"max_range,omitempty"`
}

// ShortestPathResponse is the response body of POST /shortest-path.
type ShortestPathResponse struct {
	Path                  []FloatCoordinates `json:"path"`
	Distance              uint32             `json:"distance"`
	Time                  uint32             `json:"time"`
	VisitedChargingCoords []FloatCoordinates `json:"visited_charging_coords,omitempty"`
}

// ChargingStationsResponse is the response body of GET /charging-stations.
type ChargingStationsResponse struct {
	ChargingCoords []FloatCoordinates `json:"charging_coords"`
}

func responseFromRoute(r *maprouter.Route) ShortestPathResponse {
	return ShortestPathResponse{
		Path:     floatCoordinatesFrom(r.Path),
		Distance: r.Distance,
		Time:     r.Time,
	}
}

func responseFromRange(r *maprouter.RangeRoute) ShortestPathResponse {
	resp := responseFromRoute(&r.Route)
	resp.VisitedChargingCoords = floatCoordinatesFrom(r.VisitedCharging)
	return resp
}
