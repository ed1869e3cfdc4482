package scrabble

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/cespare/xxhash"
)

// DefaultBoardSize is the side of the visible Wordsquared window
const DefaultBoardSize int = 31

var (
	ErrInvalidPosition = errors.New("position is out of bounds")
	ErrExistingTile    = errors.New("a tile already exist on that square")
	ErrEmptySquare     = errors.New("no tile on that square")
	ErrBoardSize       = errors.New("invalid board size")
)

// Position is a cell of the board, X being the column and Y the row
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	if d == Vertical {
		return "V"
	}
	return "H"
}

// step is the offset to the next cell along the direction
func (d Direction) step() (dx, dy int) {
	if d == Vertical {
		return 0, 1
	}
	return 1, 0
}

// Cross returns the perpendicular direction
func (d Direction) Cross() Direction {
	if d == Vertical {
		return Horizontal
	}
	return Vertical
}

// Board is a fixed window of the (conceptually infinite) Wordsquared
// board. Cells hold Empty, a lowercase tile, or an uppercase tile that
// was played as a wildcard.
type Board struct {
	width, height int
	tiles         []byte
	layout        PremiumLayout
	// left and top align the board on the repeating premium layout
	left, top int
	start     Position
	count     int
	firstMove bool
}

// NewBoard creates an empty board. The start cell is the centre and the
// first move bypass is enabled.
func NewBoard(width, height int, layout PremiumLayout) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBoardSize, width, height)
	}
	tiles := make([]byte, width*height)
	for i := range tiles {
		tiles[i] = Empty
	}
	return &Board{
		width:     width,
		height:    height,
		tiles:     tiles,
		layout:    layout,
		start:     Position{X: width / 2, Y: height / 2},
		firstMove: true,
	}, nil
}

// NewBoardFromRows creates a board from its rows, top to bottom, using
// Empty for free cells.
func NewBoardFromRows(rows []string, layout PremiumLayout) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBoardSize)
	}
	b, err := NewBoard(len(rows[0]), len(rows), layout)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != b.width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBoardSize, y, len(row), b.width)
		}
		for x := 0; x < len(row); x++ {
			if row[x] == Empty {
				continue
			}
			if err := b.PlaceTile(Position{X: x, Y: y}, row[x]); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

func (b *Board) Width() int { return b.width }
func (b *Board) Height() int { return b.height }

// TileCount returns the number of tiles on the board
func (b *Board) TileCount() int { return b.count }

func (b *Board) InBounds(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < b.width && p.Y < b.height
}

// TileAt returns the content of a cell
func (b *Board) TileAt(p Position) (byte, error) {
	if !b.InBounds(p) {
		return 0, ErrInvalidPosition
	}
	return b.tile(p.X, p.Y), nil
}

func (b *Board) IsEmpty(p Position) (bool, error) {
	if !b.InBounds(p) {
		return false, ErrInvalidPosition
	}
	return b.empty(p.X, p.Y), nil
}

// IsAdjacent reports whether one of the orthogonal neighbours holds a
// tile. The right and bottom neighbours are only looked at up to the
// second to last column and row.
func (b *Board) IsAdjacent(p Position) (bool, error) {
	if !b.InBounds(p) {
		return false, ErrInvalidPosition
	}
	return b.adjacent(p.X, p.Y), nil
}

func (b *Board) index(x, y int) int {
	return y*b.width + x
}

func (b *Board) tile(x, y int) byte {
	return b.tiles[b.index(x, y)]
}

func (b *Board) empty(x, y int) bool {
	return b.tile(x, y) == Empty
}

func (b *Board) adjacent(x, y int) bool {
	if x > 0 && !b.empty(x-1, y) {
		return true
	}
	if y > 0 && !b.empty(x, y-1) {
		return true
	}
	if x < b.width-2 && !b.empty(x+1, y) {
		return true
	}
	if y < b.height-2 && !b.empty(x, y+1) {
		return true
	}
	return false
}

// touches is adjacent plus the first move bypass: on an empty board the
// start cell connects.
func (b *Board) touches(x, y int) bool {
	if b.firstMove && b.count == 0 && x == b.start.X && y == b.start.Y {
		return true
	}
	return b.adjacent(x, y)
}

// PlaceTile puts a single tile on an empty cell
func (b *Board) PlaceTile(p Position, tile byte) error {
	if !b.InBounds(p) {
		return ErrInvalidPosition
	}
	if !isLetter(tile) {
		return fmt.Errorf("%w: %q", ErrInvalidTile, tile)
	}
	if !b.empty(p.X, p.Y) {
		return ErrExistingTile
	}
	b.tiles[b.index(p.X, p.Y)] = tile
	b.count++
	return nil
}

// ApplyMove writes the placed tiles of a move. Every target cell is
// checked before anything is written, so a failed apply leaves the
// board untouched.
func (b *Board) ApplyMove(m Move) error {
	placements := m.Placements()
	for _, pl := range placements {
		if !b.InBounds(pl.Position) {
			return fmt.Errorf("%w: %v", ErrInvalidPosition, pl.Position)
		}
		if !b.empty(pl.X, pl.Y) {
			return fmt.Errorf("%w: %v", ErrExistingTile, pl.Position)
		}
	}
	for _, pl := range placements {
		b.tiles[b.index(pl.X, pl.Y)] = pl.Tile()
	}
	b.count += len(placements)
	return nil
}

// RevertMove clears the tiles a move placed. Every target cell must
// still hold the tile the move wrote.
func (b *Board) RevertMove(m Move) error {
	placements := m.Placements()
	for _, pl := range placements {
		if !b.InBounds(pl.Position) {
			return fmt.Errorf("%w: %v", ErrInvalidPosition, pl.Position)
		}
		switch t := b.tile(pl.X, pl.Y); {
		case t == Empty:
			return fmt.Errorf("%w: %v", ErrEmptySquare, pl.Position)
		case t != pl.Tile():
			return fmt.Errorf("%w: %v holds %q, not %q", ErrExistingTile, pl.Position, t, pl.Tile())
		}
	}
	for _, pl := range placements {
		b.tiles[b.index(pl.X, pl.Y)] = Empty
	}
	b.count -= len(placements)
	return nil
}

// Premium returns the letter and word multipliers of a cell
func (b *Board) Premium(p Position) (letter, word int) {
	return b.layout.Multipliers(p.X, p.Y, b.left, b.top)
}

// SetAlignment sets the premium layout offset, see WindowAlignment
func (b *Board) SetAlignment(left, top int) {
	b.left, b.top = left, top
}

func (b *Board) Alignment() (left, top int) {
	return b.left, b.top
}

// SetStart moves the cell that connects the first move
func (b *Board) SetStart(p Position) error {
	if !b.InBounds(p) {
		return ErrInvalidPosition
	}
	b.start = p
	return nil
}

func (b *Board) Start() Position {
	return b.start
}

// SetFirstMove turns the first move bypass on or off. With it off an
// empty board has no legal placement.
func (b *Board) SetFirstMove(enabled bool) {
	b.firstMove = enabled
}

func (b *Board) FirstMove() bool {
	return b.firstMove
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	c := *b
	c.tiles = make([]byte, len(b.tiles))
	copy(c.tiles, b.tiles)
	return &c
}

// Rows returns the board content, one string per row
func (b *Board) Rows() []string {
	rows := make([]string, b.height)
	for y := 0; y < b.height; y++ {
		rows[y] = string(b.tiles[b.index(0, y):b.index(0, y+1)])
	}
	return rows
}

// String represents a Board as a string
func (b *Board) String() string {
	return strings.Join(b.Rows(), "\n")
}

// Fingerprint hashes the grid and its alignment
func (b *Board) Fingerprint() uint64 {
	buf := make([]byte, 0, 16+len(b.tiles))
	for _, v := range []int{b.width, b.height, b.left, b.top} {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(v))
	}
	buf = append(buf, b.tiles...)
	return xxhash.Sum64(buf)
}
