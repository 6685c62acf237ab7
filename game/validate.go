package game

import (
	"strings"

	"github.com/domino14/grabbag/lexicon"
)

// Valid reports whether word is playable from the pool: every letter it
// uses must be drawn from the pool, respecting multiplicity, and the
// word must be in the dictionary. Pure function; word is expected to be
// lowercased already.
func Valid(word string, pool *lexicon.LetterPool, dict *lexicon.Dictionary) bool {
	// Presence test first. The per-letter count comparison at the end
	// subsumes this, but it stays a separate fast path.
	for _, letter := range word {
		if !pool.Contains(letter) {
			return false
		}
	}
	if !dict.HasWord(word) {
		return false
	}
	for _, letter := range word {
		if strings.Count(word, string(letter)) > pool.Count(letter) {
			return false
		}
	}
	return true
}
