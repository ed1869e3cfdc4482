package scrabble

// Axis is a single row (horizontal) or column (vertical) of the board,
// read in the direction moves are played along it
type Axis struct {
	board  *Board
	dir    Direction
	index  int
	minRun []int
}

// Init scans the axis and computes the minimum run of every cell.
// A cell whose predecessor on the axis is occupied gets 0. An occupied
// cell gets 1. An empty cell gets i+1 for the smallest offset i below
// rackSize at which the axis touches the tiles already on the board,
// or 0 when there is none.
func (axis *Axis) Init(b *Board, index int, dir Direction, rackSize int) {
	axis.board = b
	axis.dir = dir
	axis.index = index
	axis.minRun = make([]int, axis.Len())

	for i := range axis.minRun {
		if i > 0 && !axis.empty(i-1) {
			// Run continues from the previous cell
			continue
		}
		if !axis.empty(i) {
			axis.minRun[i] = 1
			continue
		}
		for off := 0; off < rackSize; off++ {
			if i+off < axis.Len() && axis.touches(i+off) {
				axis.minRun[i] = off + 1
				break
			}
		}
	}
}

// Len is the number of cells on the axis
func (axis *Axis) Len() int {
	if axis.dir == Vertical {
		return axis.board.height
	}
	return axis.board.width
}

// Position returns the board position of the i-th cell
func (axis *Axis) Position(i int) Position {
	if axis.dir == Vertical {
		return Position{X: axis.index, Y: i}
	}
	return Position{X: i, Y: axis.index}
}

func (axis *Axis) MinRun(i int) int {
	return axis.minRun[i]
}

// IsAnchor returns true if a search may start at the i-th cell
func (axis *Axis) IsAnchor(i int) bool {
	return axis.minRun[i] > 0
}

func (axis *Axis) empty(i int) bool {
	p := axis.Position(i)
	return axis.board.empty(p.X, p.Y)
}

func (axis *Axis) touches(i int) bool {
	p := axis.Position(i)
	return axis.board.touches(p.X, p.Y)
}

// Anchors returns the minimum run of every cell of the board for moves
// in the given direction, indexed row-major (y*width + x). Zero means
// the cell is not an anchor.
func Anchors(b *Board, rackSize int, dir Direction) []int {
	result := make([]int, b.width*b.height)
	lines := b.height
	if dir == Vertical {
		lines = b.width
	}
	var axis Axis
	for index := 0; index < lines; index++ {
		axis.Init(b, index, dir, rackSize)
		for i := 0; i < axis.Len(); i++ {
			p := axis.Position(i)
			result[b.index(p.X, p.Y)] = axis.MinRun(i)
		}
	}
	return result
}
