package scrabble

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Snapshot is the YAML form of a board. Rows and Tiles may be combined;
// the size comes from Rows when it is given.
type Snapshot struct {
	Width     int            `yaml:"width,omitempty"`
	Height    int            `yaml:"height,omitempty"`
	Left      int            `yaml:"left"`
	Top       int            `yaml:"top"`
	Start     *Position      `yaml:"start,omitempty"`
	FirstMove *bool          `yaml:"first-move,omitempty"`
	Rows      []string       `yaml:"rows,omitempty"`
	Tiles     []SnapshotTile `yaml:"tiles,omitempty"`
}

type SnapshotTile struct {
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Letter string `yaml:"letter"`
}

// Board builds the board the snapshot describes
func (s *Snapshot) Board(layout PremiumLayout) (*Board, error) {
	var b *Board
	var err error
	if len(s.Rows) > 0 {
		b, err = NewBoardFromRows(s.Rows, layout)
		if err != nil {
			return nil, err
		}
		if (s.Width != 0 && s.Width != b.width) || (s.Height != 0 && s.Height != b.height) {
			return nil, fmt.Errorf("%w: rows are %dx%d, snapshot says %dx%d",
				ErrBoardSize, b.width, b.height, s.Width, s.Height)
		}
	} else {
		width, height := s.Width, s.Height
		if width == 0 {
			width = DefaultBoardSize
		}
		if height == 0 {
			height = DefaultBoardSize
		}
		if b, err = NewBoard(width, height, layout); err != nil {
			return nil, err
		}
	}

	for _, t := range s.Tiles {
		if len(t.Letter) != 1 {
			return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidTile, t.Letter, t.X, t.Y)
		}
		if err := b.PlaceTile(Position{X: t.X, Y: t.Y}, t.Letter[0]); err != nil {
			return nil, fmt.Errorf("tile at (%d,%d): %w", t.X, t.Y, err)
		}
	}

	b.SetAlignment(s.Left, s.Top)
	if s.Start != nil {
		if err := b.SetStart(*s.Start); err != nil {
			return nil, fmt.Errorf("start %v: %w", *s.Start, err)
		}
	}
	if s.FirstMove != nil {
		b.SetFirstMove(*s.FirstMove)
	}
	return b, nil
}

// NewSnapshot describes a board by its rows
func NewSnapshot(b *Board) *Snapshot {
	start := b.start
	firstMove := b.firstMove
	return &Snapshot{
		Width:     b.width,
		Height:    b.height,
		Left:      b.left,
		Top:       b.top,
		Start:     &start,
		FirstMove: &firstMove,
		Rows:      b.Rows(),
	}
}

// ReadSnapshot decodes a YAML board snapshot. Unknown keys are errors.
func ReadSnapshot(r io.Reader, layout PremiumLayout) (*Board, error) {
	var s Snapshot
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return s.Board(layout)
}

// LoadSnapshot reads a YAML board snapshot file
func LoadSnapshot(filename string, layout PremiumLayout) (*Board, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := ReadSnapshot(f, layout)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return b, nil
}

// WriteSnapshot encodes the board as YAML
func WriteSnapshot(w io.Writer, b *Board) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewSnapshot(b)); err != nil {
		return err
	}
	return enc.Close()
}
