package maprouter

import geojson "github.com/paulmach/go.geojson"

// GeoJSON renders the route's path as a GeoJSON LineString Feature, with
// distance and time carried as feature properties so a client can render the
// route without a second round-trip.
func (r Route) GeoJSON() *geojson.Feature {
	coords := make([][]float64, len(r.Path))
	for i, c := range r.Path {
		coords[i] = []float64{c.LonDegrees(), c.LatDegrees()}
	}
	feature := geojson.NewLineStringFeature(coords)
	feature.SetProperty("distance_m", r.Distance)
	feature.SetProperty("time_s", r.Time)
	return feature
}
