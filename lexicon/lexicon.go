package lexicon

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// A Dictionary is a set of lowercase words. It is loaded once at startup
// and only ever queried after that.
type Dictionary struct {
	name  string
	words map[string]struct{}
}

// Load reads a word list from a text file, one word per line. Word lists
// that are not valid UTF-8 are assumed to be ISO 8859-1, which is what
// older lexicon files tend to ship as.
func Load(name string, filename string) (*Dictionary, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return FromReader(name, f)
}

// FromReader builds a Dictionary from a word list. It returns an error
// if the list contains no words at all; the game is unplayable without
// a dictionary and there is no fallback.
func FromReader(name string, reader io.Reader) (*Dictionary, error) {
	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(raw) {
		decoder := charmap.ISO8859_1.NewDecoder()
		raw, _, err = transform.Bytes(decoder, raw)
		if err != nil {
			return nil, err
		}
	}

	words := map[string]struct{}{}
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		words[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("lexicon %v contains no words", name)
	}
	log.Debug().Str("lexicon", name).Int("words", len(words)).Msg("loaded lexicon")
	return &Dictionary{name: name, words: words}, nil
}

func (d *Dictionary) Name() string {
	return d.name
}

// HasWord tests exact membership. Words are stored lowercased and the
// caller is expected to pass lowercased input.
func (d *Dictionary) HasWord(word string) bool {
	_, ok := d.words[word]
	return ok
}

func (d *Dictionary) Size() int {
	return len(d.words)
}
