package scrabble

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type GeneratorOptions struct {
	// RackSize bounds the tiles of one move and the anchor lookahead
	RackSize int
	// BingoBonus is added when a move uses RackSize tiles
	BingoBonus int
	// Threads is the number of rows searched at the same time
	Threads int
	TileSet *TileSet
}

// Generator finds and scores every legal placement of a rack. It only
// reads the dictionary and the boards it is given, so one generator can
// serve several goroutines as long as no board changes during a pass.
type Generator struct {
	dawg       *DAWG
	rackSize   int
	bingoBonus int
	threads    int
	tileSet    *TileSet
}

func NewGenerator(d *DAWG, opts GeneratorOptions) *Generator {
	g := &Generator{
		dawg:       d,
		rackSize:   opts.RackSize,
		bingoBonus: opts.BingoBonus,
		threads:    opts.Threads,
		tileSet:    opts.TileSet,
	}
	if g.rackSize <= 0 {
		g.rackSize = RackSize
	}
	if g.threads <= 0 {
		g.threads = 1
	}
	if g.tileSet == nil {
		g.tileSet = DefaultTileSet
	}
	return g
}

func (g *Generator) DAWG() *DAWG { return g.dawg }
func (g *Generator) RackSize() int { return g.rackSize }
func (g *Generator) TileSet() *TileSet { return g.tileSet }

// rowResult holds what one row task found
type rowResult struct {
	moves      []Move
	anchors    int
	candidates int
}

// Generate returns the ranked legal moves of the rack on the board.
// Rows are searched in parallel, each with its own copy of the rack;
// the result is the same for any number of threads. The rack is left
// unchanged.
func (g *Generator) Generate(b *Board, rack *Rack) []Move {
	passID := uuid.New()
	start := time.Now()

	hStarts := Anchors(b, g.rackSize, Horizontal)
	vStarts := Anchors(b, g.rackSize, Vertical)

	results := make([]rowResult, b.height)
	if g.threads == 1 {
		r := rack.Clone()
		for y := 0; y < b.height; y++ {
			results[y] = g.generateRow(b, y, hStarts, vStarts, r)
		}
	} else {
		var eg errgroup.Group
		eg.SetLimit(g.threads)
		for y := 0; y < b.height; y++ {
			y := y // per-iteration copy (go 1.21 loop semantics)
			eg.Go(func() error {
				results[y] = g.generateRow(b, y, hStarts, vStarts, rack.Clone())
				return nil
			})
		}
		// Row tasks never fail
		_ = eg.Wait()
	}

	var moves []Move
	anchors, candidates := 0, 0
	for _, res := range results {
		moves = append(moves, res.moves...)
		anchors += res.anchors
		candidates += res.candidates
	}
	RankMoves(moves)

	log.Debug().
		Str("pass-id", passID.String()).
		Str("rack", rack.String()).
		Uint64("board", b.Fingerprint()).
		Int("anchors", anchors).
		Int("candidates", candidates).
		Int("moves", len(moves)).
		Dur("elapsed", time.Since(start)).
		Msg("generated-moves")
	return moves
}

// generateRow searches the anchors of one row, horizontal before
// vertical at every cell
func (g *Generator) generateRow(b *Board, y int, hStarts, vStarts []int, rack *Rack) rowResult {
	var res rowResult
	for x := 0; x < b.width; x++ {
		i := b.index(x, y)
		for _, anchor := range []struct {
			dir    Direction
			minRun int
		}{{Horizontal, hStarts[i]}, {Vertical, vStarts[i]}} {
			if anchor.minRun == 0 {
				continue
			}
			res.anchors++
			pos := Position{X: x, Y: y}
			for _, tiles := range Candidates(b, g.dawg, pos, anchor.dir, anchor.minRun, rack) {
				res.candidates++
				if m, ok := g.Evaluate(b, pos, anchor.dir, tiles); ok {
					res.moves = append(res.moves, m)
				}
			}
		}
	}
	return res
}
