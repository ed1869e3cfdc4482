package scrabble

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

var (
	ErrEmptyDictionary = errors.New("dictionary has no words")
	ErrInvalidWord     = errors.New("word contains a character that is not a letter")
)

type trieNode struct {
	children map[byte]*trieNode
	terminal bool
	id       int
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[byte]*trieNode)}
}

func (n *trieNode) insert(word string) {
	curr := n
	for i := 0; i < len(word); i++ {
		next, ok := curr.children[word[i]]
		if !ok {
			next = newTrieNode()
			curr.children[word[i]] = next
		}
		curr = next
	}
	curr.terminal = true
}

func (n *trieNode) letters() []byte {
	letters := make([]byte, 0, len(n.children))
	for l := range n.children {
		letters = append(letters, l)
	}
	slices.Sort(letters)
	return letters
}

// minimizer merges sub-tries that accept the same suffixes
type minimizer struct {
	registry map[string]*trieNode
}

func (m *minimizer) signature(n *trieNode) string {
	var sb strings.Builder
	if n.terminal {
		sb.WriteByte(Sentinel)
	}
	for _, l := range n.letters() {
		sb.WriteByte(l)
		sb.WriteString(strconv.Itoa(n.children[l].id))
		sb.WriteByte(',')
	}
	return sb.String()
}

func (m *minimizer) reduce(n *trieNode) *trieNode {
	for l, child := range n.children {
		n.children[l] = m.reduce(child)
	}
	sig := m.signature(n)
	if canonical, ok := m.registry[sig]; ok {
		return canonical
	}
	n.id = len(m.registry) + 1
	m.registry[sig] = n
	return n
}

// BuildDawg compiles a word list into the binary dawg format read by
// DecodeDawg. Words are case-folded and must consist of ASCII letters.
func BuildDawg(words []string) ([]byte, error) {
	root := newTrieNode()
	numWords := 0
	for _, w := range words {
		w = strings.ToLower(w)
		if w == "" {
			return nil, fmt.Errorf("%w: empty word", ErrInvalidWord)
		}
		for i := 0; i < len(w); i++ {
			if w[i] < 'a' || w[i] > 'z' {
				return nil, fmt.Errorf("%w: %q", ErrInvalidWord, w)
			}
		}
		root.insert(w)
		numWords++
	}
	if numWords == 0 {
		return nil, ErrEmptyDictionary
	}

	// The root stays out of the registry so that nothing can link to it
	m := &minimizer{registry: make(map[string]*trieNode)}
	for l, child := range root.children {
		root.children[l] = m.reduce(child)
	}

	// Lay the node groups out breadth-first, root first at record 0
	order := []*trieNode{root}
	offsets := map[*trieNode]int{root: 0}
	numRecords := 0
	for i := 0; i < len(order); i++ {
		n := order[i]
		offsets[n] = numRecords
		numRecords += len(n.children)
		if n.terminal {
			numRecords++
		}
		for _, l := range n.letters() {
			child := n.children[l]
			if _, seen := offsets[child]; !seen {
				offsets[child] = -1
				order = append(order, child)
			}
		}
	}
	if numRecords > maxLink {
		return nil, fmt.Errorf("%w: %d records do not fit 24-bit links", ErrFormat, numRecords)
	}

	data := make([]byte, 0, numRecords*recordSize)
	for _, n := range order {
		letters := n.letters()
		for i, l := range letters {
			last := i == len(letters)-1 && !n.terminal
			data = appendRecord(data, offsets[n.children[l]], l, !last)
		}
		if n.terminal {
			data = appendRecord(data, 0, Sentinel, false)
		}
	}

	log.Debug().Int("num-words", numWords).Int("num-nodes", len(order)).
		Int("num-records", numRecords).Msg("built-dawg")
	return data, nil
}

func appendRecord(data []byte, link int, letter byte, more bool) []byte {
	rec := uint32(link)&linkMask | uint32(letter&letterMask)<<letterBit
	if more {
		rec |= 1 << moreBit
	}
	return binary.LittleEndian.AppendUint32(data, rec)
}

// WriteDawg compiles a word list and writes the dawg records to w
func WriteDawg(w io.Writer, words []string) error {
	data, err := BuildDawg(words)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
