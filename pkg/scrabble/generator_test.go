package scrabble

import (
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

var propertyWords = []string{
	"a", "act", "acts", "as", "at", "cast", "cat", "cats", "sat", "scat",
	"ta", "tac", "tas", "tat", "tats", "taste", "east", "eat", "eats", "seat",
	"set", "sea", "tea", "teas", "ate", "state", "tact", "tacts",
}

// propertyBoard holds "cat" across and "ta" down through the t
func propertyBoard(t testing.TB) *Board {
	t.Helper()
	b, err := NewBoardFromRows([]string{
		".........",
		".........",
		".........",
		"..cat....",
		"....a....",
		".........",
		".........",
		".........",
		".........",
	}, WordsquaredLayout())
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// wordAt reads the run of tiles through p along dir
func wordAt(b *Board, p Position, dir Direction) string {
	dx, dy := dir.step()
	for p.X-dx >= 0 && p.Y-dy >= 0 && !b.empty(p.X-dx, p.Y-dy) {
		p.X -= dx
		p.Y -= dy
	}
	var sb strings.Builder
	for b.InBounds(p) && !b.empty(p.X, p.Y) {
		sb.WriteByte(toLower(b.tile(p.X, p.Y)))
		p.X += dx
		p.Y += dy
	}
	return sb.String()
}

func TestGenerateEmptyBoard(t *testing.T) {
	is := is.New(t)
	gen := NewGenerator(mustDawg(t, testWords...), GeneratorOptions{})
	b := emptyBoard(t, 15, 15, FlatLayout())
	rack := mustRack(t, "cats")

	moves := gen.Generate(b, rack)
	is.True(len(moves) > 0)

	found := map[string][]string{}
	for _, m := range moves {
		// Every first move goes through the start cell
		covers := false
		for _, pl := range m.Placements() {
			covers = covers || pl.Position == b.Start()
			is.True(strings.IndexByte("cats", pl.Letter) >= 0)
		}
		is.True(covers)
		is.True(m.Tiles() != "ca")
		if m.Position() == b.Start() && m.Direction() == Horizontal {
			found[m.Tiles()] = m.Words()
		}
	}
	is.Equal(found["cat"], []string{"cat"})
	is.Equal(found["cats"], []string{"cats"})

	b.SetFirstMove(false)
	is.Equal(len(gen.Generate(b, rack)), 0)
}

func TestGenerateExtendWord(t *testing.T) {
	is := is.New(t)
	gen := NewGenerator(mustDawg(t, testWords...), GeneratorOptions{})
	b := emptyBoard(t, 15, 15, FlatLayout())
	placeWord(t, b, 5, 5, Horizontal, "cat")

	moves := gen.Generate(b, mustRack(t, "s"))
	is.Equal(len(moves), 1)
	m := moves[0]
	is.Equal(m.Position(), Position{X: 5, Y: 5})
	is.Equal(m.Direction(), Horizontal)
	is.Equal(m.Tiles(), "---s")
	is.Equal(m.Words(), []string{"cats"})
	is.Equal(m.Score(), DefaultTileSet.Value('c')+DefaultTileSet.Value('a')+
		DefaultTileSet.Value('t')+DefaultTileSet.Value('s'))
}

func TestGenerateProperties(t *testing.T) {
	is := is.New(t)
	d := mustDawg(t, propertyWords...)
	gen := NewGenerator(d, GeneratorOptions{})
	b := propertyBoard(t)
	rack := mustRack(t, "aest?")
	before := b.Fingerprint()
	tileCount := b.TileCount()

	moves := gen.Generate(b, rack)
	is.True(len(moves) > 0)
	is.Equal(rack.String(), "?aest")
	is.Equal(b.Fingerprint(), before)

	for i, m := range moves {
		is.True(m.TilesPlaced() >= 1)
		is.True(m.TilesPlaced() <= gen.RackSize())
		for _, w := range m.Words() {
			is.True(d.Contains(w))
		}
		if i > 0 {
			prev := moves[i-1]
			is.True(prev.Score() > m.Score() ||
				(prev.Score() == m.Score() && prev.Tiles() <= m.Tiles()))
		}

		// The words read back from the board are the ones scored
		is.NoErr(b.ApplyMove(m))
		is.Equal(b.TileCount(), tileCount+m.TilesPlaced())
		is.Equal(wordAt(b, m.Position(), m.Direction()), m.Words()[0])
		for _, pl := range m.Placements() {
			if w := wordAt(b, pl.Position, m.Direction().Cross()); len(w) > 1 {
				assert.Contains(t, m.Words()[1:], w)
			}
		}
		is.NoErr(b.RevertMove(m))
		is.Equal(b.Fingerprint(), before)
	}
}

func TestGenerateThreads(t *testing.T) {
	d := mustDawg(t, propertyWords...)
	b := propertyBoard(t)
	rack := mustRack(t, "aest?")

	sequential := NewGenerator(d, GeneratorOptions{Threads: 1}).Generate(b, rack)
	for _, threads := range []int{2, 4, 16} {
		parallel := NewGenerator(d, GeneratorOptions{Threads: threads}).Generate(b, rack)
		assert.Equal(t, sequential, parallel)
	}
	assert.Equal(t, "?aest", rack.String())
}

func TestGeneratorDefaults(t *testing.T) {
	is := is.New(t)
	gen := NewGenerator(mustDawg(t, "at"), GeneratorOptions{})
	is.Equal(gen.RackSize(), RackSize)
	is.Equal(gen.TileSet(), DefaultTileSet)
	is.True(gen.DAWG().Contains("at"))
}

func BenchmarkGenerateEmptyBoard(b *testing.B) {
	d := mustDawg(b, propertyWords...)
	gen := NewGenerator(d, GeneratorOptions{Threads: 4})
	board := emptyBoard(b, DefaultBoardSize, DefaultBoardSize, WordsquaredLayout())
	rack := mustRack(b, "aecrst?")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gen.Generate(board, rack)
	}
}

func BenchmarkGenerateBoard(b *testing.B) {
	d := mustDawg(b, propertyWords...)
	gen := NewGenerator(d, GeneratorOptions{Threads: 1})
	board := propertyBoard(b)
	rack := mustRack(b, "aest?")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gen.Generate(board, rack)
	}
}
