package scrabble

import (
	"sort"
)

// Sort the moves by score, best first, and by tiles on a tie
type byScore []Move

func (list byScore) Len() int {
	return len(list)
}

func (list byScore) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byScore) Less(i, j int) bool {
	// We want descending order, so we reverse the comparison
	if list[i].score != list[j].score {
		return list[i].score > list[j].score
	}
	return list[i].tiles < list[j].tiles
}

// RankMoves sorts the moves in place and returns them. Moves equal on
// both keys keep their order.
func RankMoves(moves []Move) []Move {
	sort.Stable(byScore(moves))
	return moves
}
