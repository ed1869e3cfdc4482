package scrabble

const (
	// Empty marks a cell with no tile on it
	Empty byte = '.'
	// Wildcard is the rack letter for a blank tile
	Wildcard byte = '?'
	// Skip is the placeholder used in a tile sequence for a cell that
	// already holds a tile on the board
	Skip byte = '-'
	// Sentinel is the end-of-word letter code of the DAWG
	Sentinel byte = '$'
)

// TileSet holds the number of tiles of every letter in a full bag and
// their base value
type TileSet struct {
	Count  map[byte]int
	Values map[byte]int
}

func initTileSet() *TileSet {
	tileCount := map[byte]int{
		'a': 9, 'b': 2, 'c': 2, 'd': 4, 'e': 12,
		'f': 2, 'g': 3, 'h': 2, 'i': 9, 'j': 1,
		'k': 1, 'l': 4, 'm': 2, 'n': 6, 'o': 8,
		'p': 2, 'q': 1, 'r': 6, 's': 4, 't': 6,
		'u': 4, 'v': 2, 'w': 2, 'x': 1, 'y': 2,
		'z': 1, Wildcard: 2,
	}

	tileValue := map[byte]int{
		'a': 1, 'b': 5, 'c': 4, 'd': 3, 'e': 1,
		'f': 5, 'g': 4, 'h': 4, 'i': 1, 'j': 9,
		'k': 6, 'l': 2, 'm': 4, 'n': 2, 'o': 1,
		'p': 4, 'q': 10, 'r': 2, 's': 1, 't': 1,
		'u': 2, 'v': 5, 'w': 5, 'x': 8, 'y': 5,
		'z': 10, Wildcard: 0,
	}

	return &TileSet{Count: tileCount, Values: tileValue}
}

// DefaultTileSet is the Wordsquared tile set
var DefaultTileSet = initTileSet()

// Value returns the base value of a board or sequence tile. Uppercase
// tiles were played as wildcards and are worth nothing.
func (ts *TileSet) Value(tile byte) int {
	if isWildcardTile(tile) {
		return ts.Values[Wildcard]
	}
	return ts.Values[tile]
}

// splitTile returns the letter a tile stands for and whether it was
// played as a wildcard.
func splitTile(tile byte) (letter byte, wildcard bool) {
	if isWildcardTile(tile) {
		return tile + ('a' - 'A'), true
	}
	return tile, false
}

func isWildcardTile(tile byte) bool {
	return tile >= 'A' && tile <= 'Z'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
