package scrabble

import (
	"errors"
	"fmt"
)

// LayoutSize is the side of the premium square pattern that repeats
// across the board in both directions
const LayoutSize int = 14

var (
	ErrLayout = errors.New("invalid premium layout")
)

var (
	wordsquaredLetterMultipliers = [LayoutSize]string{
		"11211121211121",
		"12111311131112",
		"11111111111111",
		"11111112111111",
		"11311111111131",
		"12111111111112",
		"11112111112111",
		"12111111111112",
		"11311111111131",
		"11111112111111",
		"11111111111111",
		"12111311131112",
		"11211121211121",
		"21111111111111",
	}

	wordsquaredWordMultipliers = [LayoutSize]string{
		"11111111111111",
		"11111111111111",
		"11112111112111",
		"11121111111211",
		"11111121211111",
		"11111211121111",
		"31111113111111",
		"11111211121111",
		"11111121211111",
		"11121111111211",
		"11112111112111",
		"11111111111111",
		"11111111111111",
		"21111113111111",
	}
)

// PremiumLayout holds the letter and word multipliers of one
// LayoutSize x LayoutSize tile of the board, addressed row-major.
// It is a value type and never changes once built.
type PremiumLayout struct {
	letter [LayoutSize * LayoutSize]int
	word   [LayoutSize * LayoutSize]int
}

// NewPremiumLayout builds a layout from row-major multiplier tables.
// Both tables need LayoutSize*LayoutSize entries, each at least 1.
func NewPremiumLayout(letter, word []int) (PremiumLayout, error) {
	var l PremiumLayout
	const size = LayoutSize * LayoutSize
	if len(letter) != size || len(word) != size {
		return l, fmt.Errorf("%w: want %d entries, got %d letter and %d word",
			ErrLayout, size, len(letter), len(word))
	}
	for i := 0; i < size; i++ {
		if letter[i] < 1 || word[i] < 1 {
			return l, fmt.Errorf("%w: multiplier below 1 at index %d", ErrLayout, i)
		}
		l.letter[i] = letter[i]
		l.word[i] = word[i]
	}
	return l, nil
}

func layoutFromRows(letterRows, wordRows [LayoutSize]string) PremiumLayout {
	var l PremiumLayout
	const zeroUnicode = '0'
	for i := 0; i < LayoutSize; i++ {
		for j := 0; j < LayoutSize; j++ {
			l.letter[i*LayoutSize+j] = int(letterRows[i][j] - zeroUnicode)
			l.word[i*LayoutSize+j] = int(wordRows[i][j] - zeroUnicode)
		}
	}
	return l
}

// WordsquaredLayout is the premium square pattern of Wordsquared
func WordsquaredLayout() PremiumLayout {
	return layoutFromRows(wordsquaredLetterMultipliers, wordsquaredWordMultipliers)
}

// FlatLayout has no premium squares at all
func FlatLayout() PremiumLayout {
	var l PremiumLayout
	for i := range l.letter {
		l.letter[i] = 1
		l.word[i] = 1
	}
	return l
}

// Multipliers returns the letter and word multipliers for board
// coordinates shifted by the alignment offset. The pattern wraps, so
// any integer coordinates are valid.
func (l PremiumLayout) Multipliers(x, y, left, top int) (letter, word int) {
	nx := mod(left+x, LayoutSize)
	ny := mod(top+y, LayoutSize)
	i := ny*LayoutSize + nx
	return l.letter[i], l.word[i]
}

// WindowAlignment derives the alignment offset of a visible window of
// w x h cells centred on world coordinates (gx, gy), where world y
// grows upward.
func WindowAlignment(gx, gy, w, h int) (left, top int) {
	left = mod(gx-(w-1)/2, LayoutSize)
	top = LayoutSize - 1 - mod(gy+(h-1)/2, LayoutSize)
	return left, top
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
