package httpapi

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"map-router"
)

// Server holds the in-memory graph the handlers query. It is safe for
// concurrent use: Graph is immutable once built.
type Server struct {
	Graph *maprouter.Graph
}

// Register mounts the engine's routes onto app.
func (s *Server) Register(app *fiber.App) {
	app.Get("/charging-stations", s.chargingStations)
	app.Post("/shortest-path", s.shortestPath)
}

func (s *Server) chargingStations(c *fiber.Ctx) error {
	return c.JSON(ChargingStationsResponse{
		ChargingCoords: floatCoordinatesFrom(s.Graph.ChargingStationCoordinates()),
	})
}

func (s *Server) shortestPath(c *fiber.Ctx) error {
	var req ShortestPathRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}

	transport, ok := maprouter.ParseTransport(req.Transport)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "unknown transport mode: "+req.Transport)
	}
	routing, ok := maprouter.ParseRouting(req.Routing)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "unknown routing objective: "+req.Routing)
	}

	start := toEngine(req.Start)
	goal := toEngine(req.Goal)

	if req.CurrentRange != nil && req.MaxRange != nil {
		currentRangeM, err := parseRangeMeters(*req.CurrentRange)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "malformed current_range")
		}
		maxRangeM, err := parseRangeMeters(*req.MaxRange)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "malformed max_range")
		}

		route, err := maprouter.PlanRangeRoute(s.Graph, start, goal, transport, routing, currentRangeM, maxRangeM)
		if err != nil {
			return engineError(err)
		}
		return c.JSON(responseFromRange(route))
	}

	route, err := maprouter.ShortestPath(s.Graph, start, goal, transport, routing)
	if err != nil {
		return engineError(err)
	}
	return c.JSON(responseFromRoute(route))
}

// parseRangeMeters parses a decimal-kilometers range string into whole
// meters. Malformed or negative strings return an error rather than panic,
// unlike the reference implementation this engine descends from.
func parseRangeMeters(s string) (uint32, error) {
	km, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if km < 0 {
		return 0, errors.New("range must not be negative")
	}
	return uint32(km * 1000), nil
}

// engineError maps a domain error from the routing engine onto an HTTP
// status: every query-rejection case (off-map points, mode mismatches,
// degenerate or unreachable queries, unreasonable ranges) is a client error,
// never a 500.
func engineError(err error) error {
	switch {
	case errors.Is(err, maprouter.ErrPointOffMap),
		errors.Is(err, maprouter.ErrNoModeMatch),
		errors.Is(err, maprouter.ErrStartEqualsGoal),
		errors.Is(err, maprouter.ErrNoPath),
		errors.Is(err, maprouter.ErrUnreasonableRange):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
