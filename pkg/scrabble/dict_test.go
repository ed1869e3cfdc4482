package scrabble

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestReadWordList(t *testing.T) {
	is := is.New(t)
	words, err := ReadWordList(strings.NewReader("Cat\n  cats \n\nAT\r\n"))
	is.NoErr(err)
	is.Equal(words, []string{"cat", "cats", "at"})
}

func TestCompileWordList(t *testing.T) {
	is := is.New(t)
	filename := filepath.Join(t.TempDir(), "words.txt")
	is.NoErr(os.WriteFile(filename, []byte("cat\ncats\nat\n"), 0o644))

	d, data, err := CompileWordList(filename)
	is.NoErr(err)
	for _, w := range testWords {
		is.True(d.Contains(w))
	}
	is.True(!d.Contains("ca"))

	// The compiled bytes decode to the same dictionary
	reread, err := ReadDawg(bytes.NewReader(data))
	is.NoErr(err)
	is.Equal(reread.NumNodes(), d.NumNodes())

	_, _, err = CompileWordList(filepath.Join(t.TempDir(), "nope.txt"))
	is.True(errors.Is(err, os.ErrNotExist))

	empty := filepath.Join(t.TempDir(), "empty.txt")
	is.NoErr(os.WriteFile(empty, []byte("\n\n"), 0o644))
	_, _, err = CompileWordList(empty)
	is.True(errors.Is(err, ErrEmptyDictionary))
}
