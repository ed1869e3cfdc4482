package scrabble

// candidateSearch walks the DAWG in lock-step with the board, one cell
// per edge, spending rack tiles on empty cells
type candidateSearch struct {
	board   *Board
	dawg    *DAWG
	rack    *Rack
	dx, dy  int
	minRun  int
	tiles   []byte
	results []string
}

// Candidates enumerates the raw tile sequences that spell a path to a
// word end of the DAWG when laid from pos in the given direction.
// Sequences of at least minRun tiles are returned; cells already
// holding a tile appear as Skip. Uppercase letters are wildcards.
// The rack is used as scratch space and is restored on return.
// Nothing is checked beyond the DAWG path, see Evaluate.
func Candidates(b *Board, d *DAWG, pos Position, dir Direction, minRun int, rack *Rack) []string {
	if !b.InBounds(pos) {
		return nil
	}
	s := &candidateSearch{
		board:  b,
		dawg:   d,
		rack:   rack,
		minRun: minRun,
		tiles:  make([]byte, 0, b.width),
	}
	s.dx, s.dy = dir.step()
	s.extend(pos.X, pos.Y, d.Root())
	return s.results
}

func (s *candidateSearch) extend(x, y int, n NodeID) {
	if len(s.tiles) >= s.minRun && s.dawg.IsWordEnd(n) {
		s.results = append(s.results, string(s.tiles))
	}
	if x >= s.board.width || y >= s.board.height {
		return
	}

	t := s.board.tile(x, y)
	if t != Empty {
		// Build through the tile already on the board
		child, ok := s.dawg.Child(n, toLower(t))
		if ok && child != NoNode {
			s.push(Skip, x, y, child)
		}
		return
	}

	edges := s.dawg.Edges(n)
	for _, e := range edges {
		if e.Child == NoNode || e.Letter == Wildcard || s.rack.Count(e.Letter) == 0 {
			continue
		}
		s.rack.counts[e.Letter]--
		s.push(e.Letter, x, y, e.Child)
		s.rack.counts[e.Letter]++
	}
	if s.rack.Count(Wildcard) == 0 {
		return
	}
	for _, e := range edges {
		if e.Child == NoNode || e.Letter < 'a' || e.Letter > 'z' {
			continue
		}
		s.rack.counts[Wildcard]--
		s.push(toUpper(e.Letter), x, y, e.Child)
		s.rack.counts[Wildcard]++
	}
}

func (s *candidateSearch) push(tile byte, x, y int, child NodeID) {
	s.tiles = append(s.tiles, tile)
	s.extend(x+s.dx, y+s.dy, child)
	s.tiles = s.tiles[:len(s.tiles)-1]
}
