package scrabble

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// ReadWordList reads one word per line. Words are trimmed and
// lowercased, blank lines are skipped.
func ReadWordList(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanLines)

	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// LoadWordList reads a word list file
func LoadWordList(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	words, err := ReadWordList(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	log.Debug().Str("filename", filename).Int("num-words", len(words)).Msg("loaded-word-list")
	return words, nil
}

// CompileWordList loads a word list file and decodes the dictionary
// built from it
func CompileWordList(filename string) (*DAWG, []byte, error) {
	words, err := LoadWordList(filename)
	if err != nil {
		return nil, nil, err
	}
	data, err := BuildDawg(words)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", filename, err)
	}
	d, err := DecodeDawg(data)
	if err != nil {
		return nil, nil, err
	}
	return d, data, nil
}
