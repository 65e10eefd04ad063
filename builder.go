package maprouter

import (
	"log"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"map-router/internal/osmdecode"
)

// BuildGraph ingests an OSM PBF extract and constructs a Graph: the
// charging-station registry (pass A), the sorted directed edge array and
// dense node-id mapping (pass B), and the compacted node/CSR layout (pass C),
// exactly as specified. Each pass opens its own decoder over path so every
// pass sees the complete stream independently of the others.
func BuildGraph(path string) (*Graph, error) {
	chargingNodes, err := buildChargingRegistry(path)
	if err != nil {
		return nil, err
	}
	log.Printf("found %d charging stations", len(chargingNodes))

	nodeIndices, nodeIDs, edges, err := buildEdges(path)
	if err != nil {
		return nil, err
	}
	log.Printf("parsed %d edges across %d nodes", len(edges), len(nodeIDs))

	nodes, err := buildNodes(path, nodeIndices, nodeIDs)
	if err != nil {
		return nil, err
	}
	log.Printf("resolved %d node coordinates", len(nodes))

	offsets := finalizeCSR(nodes, edges)

	return &Graph{
		Nodes:         nodes,
		Edges:         edges,
		Offsets:       offsets,
		Cells:         buildCells(nodes),
		ChargingNodes: chargingNodes,
	}, nil
}

// buildChargingRegistry is pass A: every node tagged amenity=charging_station
// is recorded with its charging class (car=yes and/or bicycle=yes; missing
// tags default to the permissive CarBike).
func buildChargingRegistry(path string) ([]ChargingNode, error) {
	dec, err := osmdecode.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening pbf for charging-station pass")
	}
	defer dec.Close()

	var stations []ChargingNode
	for {
		obj, err := dec.Next()
		if osmdecode.EOF(err) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(ErrInputCorruption, err.Error())
		}
		node, ok := obj.(*osmdecode.Node)
		if !ok {
			continue
		}
		if node.Tags["amenity"] != "charging_station" {
			continue
		}
		stations = append(stations, ChargingNode{
			ID:              node.ID,
			Coordinates:     NewCoordinates(node.Lat, node.Lon),
			ChargingOptions: chargingOptionsFromTags(node.Tags),
		})
	}
	return stations, nil
}

func chargingOptionsFromTags(tags map[string]string) ChargingOptions {
	car := tags["car"] == "yes"
	bike := tags["bicycle"] == "yes"
	switch {
	case car && bike:
		return ChargingCarBike
	case car:
		return ChargingCar
	case bike:
		return ChargingBike
	default:
		return ChargingCarBike
	}
}

// buildEdges is pass B: for every way with a recognised highway tag, assign
// dense indices to its member node ids in first-seen order and emit directed
// edges (both directions unless the way is oneway). The returned edge slice
// is sorted by (source_index, target_index).
func buildEdges(path string) (nodeIndices map[int64]int, nodeIDs []int64, edges []Edge, err error) {
	dec, err := osmdecode.Open(path)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "opening pbf for way pass")
	}
	defer dec.Close()

	nodeIndices = make(map[int64]int)
	insert := func(id int64) int {
		if idx, ok := nodeIndices[id]; ok {
			return idx
		}
		idx := len(nodeIDs)
		nodeIndices[id] = idx
		nodeIDs = append(nodeIDs, id)
		return idx
	}

	for {
		obj, err := dec.Next()
		if osmdecode.EOF(err) {
			break
		}
		if err != nil {
			return nil, nil, nil, errors.Wrap(ErrInputCorruption, err.Error())
		}
		way, ok := obj.(*osmdecode.Way)
		if !ok {
			continue
		}

		highwayTag, hasHighway := way.Tags["highway"]
		if !hasHighway {
			continue
		}
		highway, ok := HighwayFromTag(highwayTag)
		if !ok {
			continue
		}
		transport := transportFromHighway(highway)
		maxSpeed := resolveMaxSpeed(way.Tags, highway)
		oneway := strings.EqualFold(way.Tags["oneway"], "yes")

		for i := 0; i < len(way.NodeIDs)-1; i++ {
			sourceIdx := insert(way.NodeIDs[i])
			targetIdx := insert(way.NodeIDs[i+1])

			edges = append(edges, Edge{
				SourceIndex: sourceIdx,
				TargetIndex: targetIdx,
				Transport:   transport,
				MaxSpeed:    maxSpeed,
			})
			if !oneway {
				edges = append(edges, Edge{
					SourceIndex: targetIdx,
					TargetIndex: sourceIdx,
					Transport:   transport,
					MaxSpeed:    maxSpeed,
				})
			}
		}
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].SourceIndex != edges[j].SourceIndex {
			return edges[i].SourceIndex < edges[j].SourceIndex
		}
		return edges[i].TargetIndex < edges[j].TargetIndex
	})
	return nodeIndices, nodeIDs, edges, nil
}

func resolveMaxSpeed(tags map[string]string, highway Highway) Kmh {
	if tag, ok := tags["maxspeed"]; ok {
		if speed, ok := ParseMaxSpeed(tag); ok {
			return speed
		}
	}
	return highway.DefaultSpeed()
}

// buildNodes is pass C: for every OSM id that received a dense index in pass
// B, resolve its coordinates. A way referencing an id that never appears as a
// node in the extract is a fatal input-corruption error.
func buildNodes(path string, nodeIndices map[int64]int, nodeIDs []int64) ([]Node, error) {
	dec, err := osmdecode.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening pbf for node pass")
	}
	defer dec.Close()

	nodes := make([]Node, len(nodeIDs))
	found := make([]bool, len(nodeIDs))

	for {
		obj, err := dec.Next()
		if osmdecode.EOF(err) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(ErrInputCorruption, err.Error())
		}
		node, ok := obj.(*osmdecode.Node)
		if !ok {
			continue
		}
		idx, ok := nodeIndices[node.ID]
		if !ok {
			continue
		}
		nodes[idx] = Node{ID: node.ID, Coordinates: NewCoordinates(node.Lat, node.Lon)}
		found[idx] = true
	}

	for idx, ok := range found {
		if !ok {
			return nil, errors.Wrapf(ErrInputCorruption, "way references node id %d never present in extract", nodeIDs[idx])
		}
	}
	return nodes, nil
}

// finalizeCSR replaces each edge's provisional distance with the haversine
// distance of its resolved endpoints, then builds the CSR offsets array via
// counting and a prefix sum. Edges must already be sorted by source.
func finalizeCSR(nodes []Node, edges []Edge) []int {
	offsets := make([]int, len(nodes)+1)
	for i := range edges {
		source := nodes[edges[i].SourceIndex].Coordinates
		target := nodes[edges[i].TargetIndex].Coordinates
		edges[i].DistanceM = source.DistanceMeters(target)
		offsets[edges[i].SourceIndex+1]++
	}
	for i := 1; i < len(offsets); i++ {
		offsets[i] += offsets[i-1]
	}
	return offsets
}
