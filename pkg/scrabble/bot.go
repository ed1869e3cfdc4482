package scrabble

import (
	"github.com/samber/lo"
	"lukechampine.com/frand"
)

// Strategy orders the legal moves of a rack, the move to try first
// coming first. Strategies never drop moves, so a player whose first
// choice is rejected can go on down the list.
type Strategy interface {
	Order(moves []Move) []Move
}

// Make sure the strategies implement the Strategy interface
var (
	_ Strategy = (*HighScore)(nil)
	_ Strategy = (*OneOfNBest)(nil)
	_ Strategy = (*LongWords)(nil)
	_ Strategy = (*WordPacks)(nil)
)

// HighScore strategy always tries the highest-scoring move first
type HighScore struct{}

// OneOfNBest picks one of the N highest-scoring moves at random and
// tries it first.
type OneOfNBest struct {
	N int
}

// LongWords tries the moves that form a word of at least MinLength
// letters first, best scoring first, then falls back on the others.
type LongWords struct {
	MinLength int
}

// WordPacks tries the moves forming one of the given words first
type WordPacks struct {
	Words []string
}

// Pick returns the move the strategy would try first
func Pick(s Strategy, moves []Move) (Move, bool) {
	ordered := s.Order(moves)
	if len(ordered) == 0 {
		return Move{}, false
	}
	return ordered[0], true
}

func ranked(moves []Move) []Move {
	list := make([]Move, len(moves))
	copy(list, moves)
	return RankMoves(list)
}

// Order for a HighScore is the move ranking
func (hs *HighScore) Order(moves []Move) []Move {
	return ranked(moves)
}

func (ofb *OneOfNBest) Order(moves []Move) []Move {
	list := ranked(moves)
	n := ofb.N
	// Cut the choice down to N, if the list is longer than that
	if n <= 0 || n > len(list) {
		n = len(list)
	}
	if n < 2 {
		return list
	}
	pick := frand.Intn(n)
	// Move the pick to the front, keeping the others in order
	chosen := list[pick]
	copy(list[1:pick+1], list[:pick])
	list[0] = chosen
	return list
}

func (lw *LongWords) Order(moves []Move) []Move {
	return preferring(moves, func(word string) bool {
		return len(word) >= lw.MinLength
	})
}

func (wp *WordPacks) Order(moves []Move) []Move {
	pack := lo.Associate(wp.Words, func(w string) (string, struct{}) {
		return w, struct{}{}
	})
	return preferring(moves, func(word string) bool {
		_, ok := pack[word]
		return ok
	})
}

// preferring ranks the moves forming a word that satisfies want ahead
// of the rest
func preferring(moves []Move, want func(word string) bool) []Move {
	list := ranked(moves)
	forms := func(m Move, _ int) bool {
		return lo.ContainsBy(m.words, want)
	}
	return append(lo.Filter(list, forms), lo.Reject(list, forms)...)
}
