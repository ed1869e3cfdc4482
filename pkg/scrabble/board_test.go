package scrabble

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func emptyBoard(t testing.TB, width, height int, layout PremiumLayout) *Board {
	t.Helper()
	b, err := NewBoard(width, height, layout)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// placeWord puts the letters of word on the board from (x, y)
func placeWord(t testing.TB, b *Board, x, y int, dir Direction, word string) {
	t.Helper()
	dx, dy := dir.step()
	for i := 0; i < len(word); i++ {
		if err := b.PlaceTile(Position{X: x + i*dx, Y: y + i*dy}, word[i]); err != nil {
			t.Fatal(err)
		}
	}
}

func TestNewBoard(t *testing.T) {
	is := is.New(t)
	_, err := NewBoard(0, 5, FlatLayout())
	is.True(errors.Is(err, ErrBoardSize))

	b := emptyBoard(t, 5, 7, FlatLayout())
	is.Equal(b.Width(), 5)
	is.Equal(b.Height(), 7)
	is.Equal(b.Start(), Position{X: 2, Y: 3})
	is.True(b.FirstMove())
	is.Equal(b.TileCount(), 0)
	is.Equal(b.String(), strings.TrimSuffix(strings.Repeat(".....\n", 7), "\n"))
}

func TestBoardBounds(t *testing.T) {
	is := is.New(t)
	b := emptyBoard(t, 5, 5, FlatLayout())
	for _, p := range []Position{{-1, 0}, {0, -1}, {5, 0}, {0, 5}} {
		_, err := b.TileAt(p)
		is.True(errors.Is(err, ErrInvalidPosition))
		_, err = b.IsEmpty(p)
		is.True(errors.Is(err, ErrInvalidPosition))
		_, err = b.IsAdjacent(p)
		is.True(errors.Is(err, ErrInvalidPosition))
		is.True(errors.Is(b.PlaceTile(p, 'a'), ErrInvalidPosition))
	}
	is.True(errors.Is(b.SetStart(Position{X: 9, Y: 9}), ErrInvalidPosition))
}

func TestPlaceTile(t *testing.T) {
	is := is.New(t)
	b := emptyBoard(t, 5, 5, FlatLayout())
	p := Position{X: 1, Y: 2}
	is.NoErr(b.PlaceTile(p, 'Q'))
	tile, err := b.TileAt(p)
	is.NoErr(err)
	is.Equal(tile, byte('Q'))
	empty, err := b.IsEmpty(p)
	is.NoErr(err)
	is.True(!empty)
	is.Equal(b.TileCount(), 1)

	is.True(errors.Is(b.PlaceTile(p, 'a'), ErrExistingTile))
	is.True(errors.Is(b.PlaceTile(Position{X: 0, Y: 0}, '?'), ErrInvalidTile))
	is.True(errors.Is(b.PlaceTile(Position{X: 0, Y: 0}, Empty), ErrInvalidTile))
}

func TestIsAdjacent(t *testing.T) {
	is := is.New(t)
	b := emptyBoard(t, 5, 5, FlatLayout())
	is.NoErr(b.PlaceTile(Position{X: 4, Y: 2}, 'a'))

	cases := []struct {
		p    Position
		want bool
	}{
		{Position{X: 4, Y: 1}, true},
		{Position{X: 4, Y: 3}, true},
		// The right neighbour is not looked at from the second to
		// last column
		{Position{X: 3, Y: 2}, false},
		{Position{X: 4, Y: 2}, false},
		{Position{X: 0, Y: 0}, false},
	}
	for _, tc := range cases {
		got, err := b.IsAdjacent(tc.p)
		is.NoErr(err)
		is.Equal(got, tc.want)
	}

	is.NoErr(b.PlaceTile(Position{X: 1, Y: 4}, 'a'))
	got, err := b.IsAdjacent(Position{X: 1, Y: 3})
	is.NoErr(err)
	// Nor the bottom neighbour from the second to last row
	is.True(!got)
	got, err = b.IsAdjacent(Position{X: 2, Y: 4})
	is.NoErr(err)
	is.True(got)
}

func TestNewBoardFromRows(t *testing.T) {
	is := is.New(t)
	rows := []string{
		"....",
		".cat",
		"..A.",
	}
	b, err := NewBoardFromRows(rows, FlatLayout())
	is.NoErr(err)
	is.Equal(b.Width(), 4)
	is.Equal(b.Height(), 3)
	is.Equal(b.TileCount(), 4)
	is.Equal(b.Rows(), rows)
	is.Equal(b.String(), "....\n.cat\n..A.")

	_, err = NewBoardFromRows([]string{"...", ".."}, FlatLayout())
	is.True(errors.Is(err, ErrBoardSize))
	_, err = NewBoardFromRows([]string{"..1"}, FlatLayout())
	is.True(errors.Is(err, ErrInvalidTile))
	_, err = NewBoardFromRows(nil, FlatLayout())
	is.True(errors.Is(err, ErrBoardSize))
}

func TestPremium(t *testing.T) {
	is := is.New(t)
	b := emptyBoard(t, 31, 31, WordsquaredLayout())

	check := func(x, y, letter, word int) {
		t.Helper()
		lm, wm := b.Premium(Position{X: x, Y: y})
		is.Equal(lm, letter)
		is.Equal(wm, word)
	}
	check(2, 0, 2, 1)
	check(5, 1, 3, 1)
	check(0, 6, 1, 3)
	check(7, 6, 1, 3)
	check(0, 13, 2, 2)
	check(7, 13, 1, 3)
	// The layout repeats every 14 cells
	check(16, 14, 2, 1)
	check(14, 20, 1, 3)

	b.SetAlignment(1, 0)
	check(1, 0, 2, 1)
	b.SetAlignment(-12, -14)
	check(0, 0, 2, 1)
	left, top := b.Alignment()
	is.Equal(left, -12)
	is.Equal(top, -14)

	flat := emptyBoard(t, 5, 5, FlatLayout())
	lm, wm := flat.Premium(Position{X: 3, Y: 3})
	is.Equal(lm, 1)
	is.Equal(wm, 1)
}

func TestWindowAlignment(t *testing.T) {
	is := is.New(t)
	left, top := WindowAlignment(0, 0, 31, 31)
	is.Equal(left, 13)
	is.Equal(top, 12)
	left, top = WindowAlignment(15, -15, 31, 31)
	is.Equal(left, 0)
	is.Equal(top, 13)
}

func TestNewPremiumLayout(t *testing.T) {
	is := is.New(t)
	ones := func() []int {
		l := make([]int, LayoutSize*LayoutSize)
		for i := range l {
			l[i] = 1
		}
		return l
	}

	_, err := NewPremiumLayout(ones()[1:], ones())
	is.True(errors.Is(err, ErrLayout))
	word := ones()
	word[20] = 0
	_, err = NewPremiumLayout(ones(), word)
	is.True(errors.Is(err, ErrLayout))

	letter := ones()
	letter[LayoutSize+2] = 3
	l, err := NewPremiumLayout(letter, ones())
	is.NoErr(err)
	lm, wm := l.Multipliers(2, 1, 0, 0)
	is.Equal(lm, 3)
	is.Equal(wm, 1)
	// The layout keeps its own copy
	letter[LayoutSize+2] = 1
	lm, _ = l.Multipliers(2, 1, 0, 0)
	is.Equal(lm, 3)
}

func TestCloneAndFingerprint(t *testing.T) {
	is := is.New(t)
	b := emptyBoard(t, 7, 7, FlatLayout())
	placeWord(t, b, 1, 3, Horizontal, "cat")
	fp := b.Fingerprint()

	c := b.Clone()
	is.Equal(c.Fingerprint(), fp)
	is.NoErr(c.PlaceTile(Position{X: 0, Y: 0}, 'z'))
	is.True(c.Fingerprint() != fp)
	is.Equal(b.Fingerprint(), fp)
	is.Equal(b.TileCount(), 3)
	is.Equal(c.TileCount(), 4)

	b.SetAlignment(3, 0)
	is.True(b.Fingerprint() != fp)
}
