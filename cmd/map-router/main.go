// Command map-router builds (or loads a cached snapshot of) a road-network
// graph from an OpenStreetMap extract and serves shortest-path and
// range-constrained routing queries over HTTP.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"map-router"
	"map-router/internal/httpapi"
)

const (
	address     = "localhost:8000"
	corsAddress = "http://localhost:3000"
	pathIndex   = "frontend/build/index.html"
	pathFiles   = "frontend/build/static"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <extract.osm.pbf>\n", os.Args[0])
		os.Exit(1)
	}
	pbfPath := os.Args[1]

	g, err := loadOrBuild(pbfPath)
	if err != nil {
		log.Fatalf("failed to load graph: %v", err)
	}
	log.Printf("graph ready: %d nodes, %d edges, %d charging stations",
		len(g.Nodes), len(g.Edges), len(g.ChargingNodes))

	app := fiber.New(fiber.Config{
		AppName: "map-router",
	})
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${method} ${path}\n",
		TimeFormat: "15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join([]string{corsAddress, "http://" + address}, ","),
		AllowMethods: "GET,POST,OPTIONS",
	}))

	server := &httpapi.Server{Graph: g}
	server.Register(app)

	app.Static("/static", pathFiles)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendFile(pathIndex)
	})

	log.Printf("listening on http://%s", address)
	if err := app.Listen(address); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// loadOrBuild loads a graph snapshot sitting alongside pbfPath if one exists,
// otherwise builds the graph from the extract and writes a snapshot for next
// time.
func loadOrBuild(pbfPath string) (*maprouter.Graph, error) {
	snapshotPath := strings.TrimSuffix(pbfPath, ".osm.pbf") + ".bin"

	if _, err := os.Stat(snapshotPath); err == nil {
		start := time.Now()
		g, err := maprouter.Load(snapshotPath)
		if err == nil {
			log.Printf("loaded snapshot %s in %s", snapshotPath, time.Since(start))
			return g, nil
		}
		log.Printf("snapshot %s unusable (%v), rebuilding from extract", snapshotPath, err)
	}

	start := time.Now()
	g, err := maprouter.BuildGraph(pbfPath)
	if err != nil {
		return nil, err
	}
	log.Printf("built graph from %s in %s", pbfPath, time.Since(start))

	if err := maprouter.Save(g, snapshotPath); err != nil {
		log.Printf("warning: failed to write snapshot %s: %v", snapshotPath, err)
	}
	return g, nil
}
