package scrabble

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
)

// A dawg file is a flat run of 4-byte little-endian records. Each record
// decodes as:
//
//	bits  0-23  link to the first record of the child node group
//	bits 24-30  letter code (7-bit ASCII, or Sentinel for end-of-word)
//	bit     31  more: another record of the same node follows
//
// A node is the run of records up to and including the first one with
// more == 0, and its identity is the index of its first record. The root
// is the group starting at record 0. A link of 0 means "no child": the
// root can never be a link target. Compiled dictionaries depend on this.
const (
	recordSize = 4
	linkMask   = 0xffffff
	letterMask = 0x7f
	letterBit  = 24
	moreBit    = 31
	maxLink    = linkMask
)

var (
	ErrFormat = errors.New("malformed dawg data")
)

// NodeID references a node in the DAWG's node arena
type NodeID int32

// NoNode is the "no child" node reference
const NoNode NodeID = -1

type Edge struct {
	Letter byte
	Child  NodeID
}

type node struct {
	first, last int32 // edges[first:last]
	wordEnd     bool
}

// DAWG is a decoded dictionary. It is read-only once loaded and safe
// for concurrent lookups.
type DAWG struct {
	nodes []node
	edges []Edge
}

// DecodeDawg decodes a dictionary from its binary records
func DecodeDawg(data []byte) (*DAWG, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no records", ErrFormat)
	}
	if len(data)%recordSize != 0 {
		return nil, fmt.Errorf("%w: truncated record at byte %d", ErrFormat,
			len(data)-len(data)%recordSize)
	}

	numRecords := len(data) / recordSize
	records := make([]uint32, numRecords)
	for i := range records {
		records[i] = binary.LittleEndian.Uint32(data[i*recordSize:])
	}

	// First pass: find the node groups and give each a dense id
	groupOf := make([]NodeID, numRecords)
	for i := range groupOf {
		groupOf[i] = NoNode
	}
	var starts []int
	start := 0
	for i, rec := range records {
		if rec>>moreBit == 0 {
			groupOf[start] = NodeID(len(starts))
			starts = append(starts, start)
			start = i + 1
		}
	}
	if start != numRecords {
		return nil, fmt.Errorf("%w: node group at record %d is not terminated", ErrFormat, start)
	}

	d := &DAWG{
		nodes: make([]node, len(starts)),
		edges: make([]Edge, 0, numRecords),
	}

	// Second pass: resolve links into node ids
	for id, first := range starts {
		n := &d.nodes[id]
		n.first = int32(len(d.edges))
		for i := first; ; i++ {
			rec := records[i]
			link := int(rec & linkMask)
			letter := byte((rec >> letterBit) & letterMask)

			child := NoNode
			if link != 0 {
				if link >= numRecords || groupOf[link] == NoNode {
					return nil, fmt.Errorf("%w: record %d links to %d, which is not a node", ErrFormat, i, link)
				}
				child = groupOf[link]
			}
			for _, e := range d.edges[n.first:] {
				if e.Letter == letter {
					return nil, fmt.Errorf("%w: record %d repeats letter %q", ErrFormat, i, letter)
				}
			}
			d.edges = append(d.edges, Edge{Letter: letter, Child: child})
			if letter == Sentinel {
				n.wordEnd = true
			}
			if rec>>moreBit == 0 {
				break
			}
		}
		n.last = int32(len(d.edges))
	}

	log.Debug().Int("num-records", numRecords).Int("num-nodes", len(d.nodes)).Msg("loaded-dawg")
	return d, nil
}

// ReadDawg decodes a dictionary from a reader
func ReadDawg(r io.Reader) (*DAWG, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	return DecodeDawg(buf.Bytes())
}

// LoadDawg loads a dictionary file
func LoadDawg(filename string) (*DAWG, error) {
	log.Debug().Msgf("Loading %v ...", filename)
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	d, err := DecodeDawg(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return d, nil
}

// Root returns the root node
func (d *DAWG) Root() NodeID {
	return 0
}

// NumNodes returns the number of distinct nodes
func (d *DAWG) NumNodes() int {
	return len(d.nodes)
}

// Edges returns the outgoing edges of a node in file order
func (d *DAWG) Edges(n NodeID) []Edge {
	if n == NoNode {
		return nil
	}
	nd := d.nodes[n]
	return d.edges[nd.first:nd.last]
}

// Child follows the edge for a letter. ok reports whether the node has
// such an edge at all; the child is NoNode for terminal edges.
func (d *DAWG) Child(n NodeID, letter byte) (child NodeID, ok bool) {
	for _, e := range d.Edges(n) {
		if e.Letter == letter {
			return e.Child, true
		}
	}
	return NoNode, false
}

// IsWordEnd returns true if the node has an end-of-word edge
func (d *DAWG) IsWordEnd(n NodeID) bool {
	if n == NoNode {
		return false
	}
	return d.nodes[n].wordEnd
}

// Contains checks whether a word is in the dictionary. The word is
// case-folded and walked letter by letter from the root, followed by
// the end-of-word sentinel.
func (d *DAWG) Contains(word string) bool {
	n := d.Root()
	for i := 0; i < len(word); i++ {
		var ok bool
		if n, ok = d.Child(n, toLower(word[i])); !ok || n == NoNode {
			return false
		}
	}
	_, ok := d.Child(n, Sentinel)
	return ok
}

// Match returns all words in the DAWG that match a given pattern
// string, where '*' stands for any single letter.
func (d *DAWG) Match(pattern string) []string {
	var mn MatchNavigator
	mn.Init(pattern)
	d.Navigate(&mn)
	return mn.Results()
}

// Navigate performs a navigation through the DAWG under the
// control of a Navigator
func (d *DAWG) Navigate(navigator Navigator) {
	var nav Navigation
	nav.Go(d, navigator)
}
