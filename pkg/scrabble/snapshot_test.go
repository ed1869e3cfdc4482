package scrabble

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshotYAML = `
left: 3
top: 5
start: {x: 1, y: 1}
first-move: false
rows:
  - "....."
  - ".cat."
  - "....."
tiles:
  - {x: 3, y: 2, letter: S}
`

func TestReadSnapshot(t *testing.T) {
	is := is.New(t)
	b, err := ReadSnapshot(strings.NewReader(snapshotYAML), WordsquaredLayout())
	is.NoErr(err)
	is.Equal(b.Width(), 5)
	is.Equal(b.Height(), 3)
	is.Equal(b.Rows(), []string{".....", ".cat.", "...S."})
	is.Equal(b.TileCount(), 4)
	left, top := b.Alignment()
	is.Equal(left, 3)
	is.Equal(top, 5)
	is.Equal(b.Start(), Position{X: 1, Y: 1})
	is.True(!b.FirstMove())
}

func TestReadSnapshotSize(t *testing.T) {
	is := is.New(t)
	b, err := ReadSnapshot(strings.NewReader("width: 9\nheight: 4\n"), FlatLayout())
	is.NoErr(err)
	is.Equal(b.Width(), 9)
	is.Equal(b.Height(), 4)
	is.True(b.FirstMove())

	// An empty document is an empty board of the default size
	b, err = ReadSnapshot(strings.NewReader(""), FlatLayout())
	is.NoErr(err)
	is.Equal(b.Width(), DefaultBoardSize)
	is.Equal(b.Start(), Position{X: 15, Y: 15})
}

func TestReadSnapshotErrors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		err  error
	}{
		{name: "unknown key", yaml: "widht: 5\n"},
		{name: "size mismatch", yaml: "width: 4\nrows: [\"...\"]\n", err: ErrBoardSize},
		{name: "ragged rows", yaml: "rows: [\"...\", \"..\"]\n", err: ErrBoardSize},
		{name: "tile outside", yaml: "width: 3\nheight: 3\ntiles: [{x: 3, y: 0, letter: a}]\n", err: ErrInvalidPosition},
		{name: "tile on tile", yaml: "rows: [\"a..\"]\ntiles: [{x: 0, y: 0, letter: b}]\n", err: ErrExistingTile},
		{name: "long letter", yaml: "tiles: [{x: 0, y: 0, letter: ab}]\n", err: ErrInvalidTile},
		{name: "bad letter", yaml: "rows: [\"a1.\"]\n", err: ErrInvalidTile},
		{name: "start outside", yaml: "width: 3\nheight: 3\nstart: {x: 5, y: 5}\n", err: ErrInvalidPosition},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadSnapshot(strings.NewReader(tc.yaml), FlatLayout())
			require.Error(t, err)
			if tc.err != nil {
				assert.True(t, errors.Is(err, tc.err), "got %v", err)
			}
		})
	}
}

func TestWriteSnapshot(t *testing.T) {
	is := is.New(t)
	b := emptyBoard(t, 6, 4, WordsquaredLayout())
	placeWord(t, b, 1, 2, Horizontal, "cAt")
	b.SetAlignment(7, 2)
	b.SetFirstMove(false)

	var buf bytes.Buffer
	is.NoErr(WriteSnapshot(&buf, b))
	assert.Contains(t, buf.String(), "first-move: false")

	got, err := ReadSnapshot(&buf, WordsquaredLayout())
	is.NoErr(err)
	is.Equal(got.Fingerprint(), b.Fingerprint())
	is.Equal(got.Start(), b.Start())
	is.True(!got.FirstMove())
}

func TestLoadSnapshot(t *testing.T) {
	is := is.New(t)
	filename := filepath.Join(t.TempDir(), "board.yaml")
	is.NoErr(os.WriteFile(filename, []byte(snapshotYAML), 0o644))

	b, err := LoadSnapshot(filename, WordsquaredLayout())
	is.NoErr(err)
	is.Equal(b.TileCount(), 4)

	_, err = LoadSnapshot(filepath.Join(t.TempDir(), "missing.yaml"), FlatLayout())
	is.True(errors.Is(err, os.ErrNotExist))
}
