package scrabble

import (
	"fmt"
	"strings"
)

// Move is a scored placement of tiles starting at an anchor. Tiles holds
// one entry per cell along the direction: a lowercase letter, an
// uppercase letter for a wildcard, or Skip for a cell that already held
// a tile. Moves are only produced by Evaluate and never change.
type Move struct {
	pos   Position
	dir   Direction
	tiles string
	score int
	// words holds the main word first, then the cross words in
	// placement order
	words []string
}

// Placement is a tile that a move puts on the board
type Placement struct {
	Position
	Letter   byte
	Wildcard bool
}

// Tile returns the board representation of the placed tile
func (pl Placement) Tile() byte {
	if pl.Wildcard {
		return toUpper(pl.Letter)
	}
	return pl.Letter
}

func (m Move) X() int { return m.pos.X }
func (m Move) Y() int { return m.pos.Y }
func (m Move) Position() Position { return m.pos }
func (m Move) Direction() Direction { return m.dir }
func (m Move) Tiles() string { return m.tiles }
func (m Move) Score() int { return m.score }

// Words returns the words the move forms, main word first
func (m Move) Words() []string {
	words := make([]string, len(m.words))
	copy(words, m.words)
	return words
}

// Placements returns the tiles the move puts on the board, leaving out
// the cells it builds through
func (m Move) Placements() []Placement {
	dx, dy := m.dir.step()
	x, y := m.pos.X, m.pos.Y
	placements := make([]Placement, 0, len(m.tiles))
	for i := 0; i < len(m.tiles); i++ {
		if t := m.tiles[i]; t != Skip {
			letter, wildcard := splitTile(t)
			placements = append(placements, Placement{
				Position: Position{X: x, Y: y},
				Letter:   letter,
				Wildcard: wildcard,
			})
		}
		x += dx
		y += dy
	}
	return placements
}

// TilesPlaced is the number of rack tiles the move uses
func (m Move) TilesPlaced() int {
	return len(m.tiles) - strings.Count(m.tiles, string(Skip))
}

// Vector is the board notation of the anchor: row number then column
// letter for horizontal moves, column letter then row for vertical ones
func (m Move) Vector() string {
	col := rune('A' + m.pos.X)
	if m.dir == Vertical {
		return fmt.Sprintf("%c%02d", col, m.pos.Y+1)
	}
	return fmt.Sprintf("%02d%c", m.pos.Y+1, col)
}

func (m Move) String() string {
	return fmt.Sprintf("%d %s \"%s\" [%s]", m.score, m.Vector(), m.tiles, strings.Join(m.words, ", "))
}

// Evaluate checks a raw tile sequence laid from pos in the given
// direction against the board and the dictionary, and scores it.
// It returns false when the sequence is not a legal placement.
func (g *Generator) Evaluate(b *Board, pos Position, dir Direction, tiles string) (Move, bool) {
	if !b.InBounds(pos) {
		return Move{}, false
	}
	dx, dy := dir.step()
	// perpendicular step, for cross words
	px, py := dy, dx
	x, y := pos.X, pos.Y

	// A tile right before the anchor means the word starts earlier
	if ax, ay := x-dx, y-dy; ax >= 0 && ay >= 0 && !b.empty(ax, ay) {
		return Move{}, false
	}

	main := make([]byte, 0, len(tiles))
	var crossWords []string
	mainScore, crossScores, multiplier := 0, 0, 1
	placed := 0
	adjacent := false
	for i := 0; i < len(tiles); i++ {
		if x >= b.width || y >= b.height {
			return Move{}, false
		}
		adjacent = adjacent || b.touches(x, y)

		t := tiles[i]
		if t == Skip {
			bt := b.tile(x, y)
			if bt == Empty {
				return Move{}, false
			}
			main = append(main, toLower(bt))
			mainScore += g.tileSet.Value(bt)
		} else {
			if !isLetter(t) || !b.empty(x, y) {
				return Move{}, false
			}
			placed++
			lm, wm := b.Premium(Position{X: x, Y: y})
			value := g.tileSet.Value(t) * lm
			main = append(main, toLower(t))
			mainScore += value
			multiplier *= wm
			if word, score := g.crossWord(b, x, y, px, py, toLower(t), value); len(word) > 1 {
				crossScores += score * wm
				crossWords = append(crossWords, word)
			}
		}
		x += dx
		y += dy
	}

	// A tile right after the last cell would extend the word
	if x < b.width && y < b.height && !b.empty(x, y) {
		return Move{}, false
	}
	if !adjacent {
		return Move{}, false
	}
	if placed < 1 || placed > g.rackSize {
		return Move{}, false
	}

	score := mainScore*multiplier + crossScores
	if placed == g.rackSize {
		score += g.bingoBonus
	}

	words := make([]string, 0, len(crossWords)+1)
	words = append(words, string(main))
	words = append(words, crossWords...)
	for _, w := range words {
		if !g.dawg.Contains(w) {
			return Move{}, false
		}
	}

	return Move{
		pos:   pos,
		dir:   dir,
		tiles: tiles,
		score: score,
		words: words,
	}, true
}

// crossWord collects the word running through (x, y) along (px, py),
// with letter standing on (x, y) for value points. The tiles already
// on the board count at their base value.
func (g *Generator) crossWord(b *Board, x, y, px, py int, letter byte, value int) (string, int) {
	sx, sy := x, y
	for sx-px >= 0 && sy-py >= 0 && !b.empty(sx-px, sy-py) {
		sx -= px
		sy -= py
	}

	var sb strings.Builder
	score := 0
	for cx, cy := sx, sy; cx != x || cy != y; cx, cy = cx+px, cy+py {
		t := b.tile(cx, cy)
		sb.WriteByte(toLower(t))
		score += g.tileSet.Value(t)
	}
	sb.WriteByte(letter)
	score += value
	for cx, cy := x+px, y+py; cx < b.width && cy < b.height && !b.empty(cx, cy); cx, cy = cx+px, cy+py {
		t := b.tile(cx, cy)
		sb.WriteByte(toLower(t))
		score += g.tileSet.Value(t)
	}
	return sb.String(), score
}
