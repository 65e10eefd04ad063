// Package osmdecode wraps github.com/qedus/osmpbf behind the minimal
// tag/way/node iteration contract the graph builder needs. The PBF decoder
// itself is treated as an external collaborator: this package only adapts
// its output into plain structs so the builder never imports osmpbf types
// directly.
package osmdecode

import (
	"io"
	"os"
	"runtime"

	"github.com/qedus/osmpbf"
)

// Node is an OSM node: identity, coordinates and tags.
type Node struct {
	ID   int64
	Lat  float64
	Lon  float64
	Tags map[string]string
}

// Way is an OSM way: identity, its ordered member node ids, and tags.
type Way struct {
	ID      int64
	NodeIDs []int64
	Tags    map[string]string
}

// Decoder iterates the objects of a single .osm.pbf file.
type Decoder struct {
	file    *os.File
	decoder *osmpbf.Decoder
}

// Open opens path and starts a parallel decoder over it. Every pass over the
// file (the builder makes several, see BuildGraph) opens its own Decoder so
// each pass sees the complete stream independently.
func Open(path string) (*Decoder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	d := osmpbf.NewDecoder(f)
	d.SetBufferSize(osmpbf.MaxBlobSize)
	if err := d.Start(runtime.GOMAXPROCS(-1)); err != nil {
		f.Close()
		return nil, err
	}
	return &Decoder{file: f, decoder: d}, nil
}

// Next returns the next decoded object: a *Node, a *Way, or (nil, io.EOF) at
// end of stream. Relations and other object kinds are skipped.
func (d *Decoder) Next() (interface{}, error) {
	for {
		obj, err := d.decoder.Decode()
		if err != nil {
			return nil, err
		}
		switch o := obj.(type) {
		case *osmpbf.Node:
			return &Node{ID: o.ID, Lat: o.Lat, Lon: o.Lon, Tags: o.Tags}, nil
		case *osmpbf.Way:
			return &Way{ID: o.ID, NodeIDs: o.NodeIDs, Tags: o.Tags}, nil
		default:
			continue
		}
	}
}

// EOF reports whether err is the end-of-stream sentinel.
func EOF(err error) bool {
	return err == io.EOF
}

// Close releases the underlying file handle.
func (d *Decoder) Close() error {
	return d.file.Close()
}
