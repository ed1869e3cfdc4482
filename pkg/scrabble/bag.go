package scrabble

import (
	"errors"

	"golang.org/x/exp/slices"
	"lukechampine.com/frand"
)

var ErrBagEmpty = errors.New("bag is empty")

// Bag is a full set of tiles to draw racks from
type Bag struct {
	Tiles []byte

	TileSet *TileSet
}

func NewBag(tileset *TileSet) *Bag {
	b := &Bag{
		TileSet: tileset,
	}

	letters := make([]byte, 0, len(tileset.Count))
	for letter := range tileset.Count {
		letters = append(letters, letter)
	}
	slices.Sort(letters)
	for _, letter := range letters {
		for i := 0; i < tileset.Count[letter]; i++ {
			b.Tiles = append(b.Tiles, letter)
		}
	}

	return b
}

func (b *Bag) TileCount() int {
	return len(b.Tiles)
}

// DrawTile takes a random tile out of the bag
func (b *Bag) DrawTile() (byte, error) {
	tileCount := b.TileCount()

	if tileCount == 0 {
		return 0, ErrBagEmpty
	}

	i := frand.Intn(tileCount)
	tile := b.Tiles[i]

	// No need to keep order in bag
	end := tileCount - 1
	b.Tiles[i] = b.Tiles[end]
	b.Tiles = b.Tiles[:end]

	return tile, nil
}

// DrawRack draws up to size tiles. The rack is smaller than size when
// the bag runs out.
func (b *Bag) DrawRack(size int) (*Rack, error) {
	letters := make([]byte, 0, size)
	for i := 0; i < size; i++ {
		tile, err := b.DrawTile()
		if err != nil {
			break
		}
		letters = append(letters, tile)
	}
	return NewRack(letters)
}

// ReturnTiles puts tiles back into the bag
func (b *Bag) ReturnTiles(tiles ...byte) {
	b.Tiles = append(b.Tiles, tiles...)
}
