package scrabble

import (
	"errors"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

const (
	RackSize = 7
)

var (
	ErrTileNotInRack = errors.New("tile not in rack")
	ErrInvalidTile   = errors.New("invalid tile letter")
)

// Rack is the multiset of tile letters a player can place. The
// wildcard is stored under the Wildcard key.
type Rack struct {
	counts map[byte]int
	size   int
}

// NewRack builds a rack from a list of tile letters. Letters are
// case-folded; '?' is the wildcard.
func NewRack(letters []byte) (*Rack, error) {
	folded := make([]byte, 0, len(letters))
	for _, l := range letters {
		if l != Wildcard && !isLetter(l) {
			return nil, ErrInvalidTile
		}
		folded = append(folded, toLower(l))
	}

	return &Rack{
		counts: lo.CountValues(folded),
		size:   len(folded),
	}, nil
}

// RackFromString is NewRack for a rack written as a string, e.g. "cats?"
func RackFromString(s string) (*Rack, error) {
	return NewRack([]byte(s))
}

// Count returns how many tiles of the letter remain
func (r *Rack) Count(letter byte) int {
	return r.counts[letter]
}

// Size is the number of tiles on the rack
func (r *Rack) Size() int {
	return r.size
}

func (r *Rack) IsEmpty() bool {
	return r.size == 0
}

// Take removes one tile of the letter
func (r *Rack) Take(letter byte) error {
	if r.counts[letter] == 0 {
		return ErrTileNotInRack
	}
	r.counts[letter]--
	r.size--
	return nil
}

// Add puts back one tile of the letter
func (r *Rack) Add(letter byte) {
	r.counts[letter]++
	r.size++
}

// Letters returns the distinct letters with a remaining count, sorted
func (r *Rack) Letters() []byte {
	letters := lo.Filter(lo.Keys(r.counts), func(l byte, _ int) bool {
		return r.counts[l] > 0
	})
	slices.Sort(letters)
	return letters
}

// Clone returns an independent copy of the rack
func (r *Rack) Clone() *Rack {
	counts := make(map[byte]int, len(r.counts))
	for l, n := range r.counts {
		counts[l] = n
	}
	return &Rack{counts: counts, size: r.size}
}

// String returns the rack letters in sorted order
func (r *Rack) String() string {
	var sb strings.Builder
	for _, l := range r.Letters() {
		sb.WriteString(strings.Repeat(string(l), r.counts[l]))
	}
	return sb.String()
}
