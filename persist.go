package maprouter

import (
	"encoding/binary"
	"encoding/gob"
	"os"

	"github.com/pkg/errors"
)

// snapshotMagic and snapshotVersion identify a graph snapshot file. Bumping
// snapshotVersion invalidates every snapshot written by an earlier build,
// forcing a rebuild from the source extract rather than risking a gob decode
// against a struct shape that has since changed.
var snapshotMagic = [8]byte{'m', 'a', 'p', 'r', 't', 'r', '\x00', '\x01'}

const snapshotVersion uint32 = 1

// Save writes g to path as a self-describing binary snapshot: an 8-byte magic
// plus 4-byte version header, followed by a gob encoding of the graph.
func Save(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating snapshot file")
	}
	defer f.Close()

	if _, err := f.Write(snapshotMagic[:]); err != nil {
		return errors.Wrap(err, "writing snapshot magic")
	}
	if err := binary.Write(f, binary.LittleEndian, snapshotVersion); err != nil {
		return errors.Wrap(err, "writing snapshot version")
	}
	if err := gob.NewEncoder(f).Encode(g); err != nil {
		return errors.Wrap(err, "encoding graph snapshot")
	}
	return nil
}

// Load reads a graph snapshot previously written by Save, rejecting files
// with a mismatched magic or an incompatible version.
func Load(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening snapshot file")
	}
	defer f.Close()

	var magic [8]byte
	if _, err := f.Read(magic[:]); err != nil {
		return nil, errors.Wrap(err, "reading snapshot magic")
	}
	if magic != snapshotMagic {
		return nil, errors.New("snapshot file has unrecognized magic")
	}

	var version uint32
	if err := binary.Read(f, binary.LittleEndian, &version); err != nil {
		return nil, errors.Wrap(err, "reading snapshot version")
	}
	if version != snapshotVersion {
		return nil, errors.Errorf("snapshot version %d is incompatible with %d", version, snapshotVersion)
	}

	var g Graph
	if err := gob.NewDecoder(f).Decode(&g); err != nil {
		return nil, errors.Wrap(err, "decoding graph snapshot")
	}
	return &g, nil
}
