// Package game ties one letter pool, one dictionary, and one high score
// table together into a playable session.
package game

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/grabbag/highscore"
	"github.com/domino14/grabbag/lexicon"
)

// A Session is the whole state of one game. The pool and dictionary are
// immutable for its lifetime; the score table is only mutated through
// SubmitWord. Everything is owned by the caller and single-threaded.
type Session struct {
	pool   *lexicon.LetterPool
	dict   *lexicon.Dictionary
	scores *highscore.Table
}

func NewSession(pool *lexicon.LetterPool, dict *lexicon.Dictionary, tableSize int) *Session {
	return &Session{
		pool:   pool,
		dict:   dict,
		scores: highscore.New(tableSize),
	}
}

// SubmitWord is the sole entry point between the game and the I/O loop.
// It returns the score for an accepted word (one point per letter), or
// 0 for an empty submission, an unplayable or unknown word, or a word
// already on the score table. It never fails.
func (s *Session) SubmitWord(word string) int {
	if word == "" {
		// Submitted before typing anything. Not scored.
		return 0
	}
	if !Valid(word, s.pool, s.dict) {
		log.Debug().Str("word", word).Msg("invalid word")
		return 0
	}
	score := len(word)
	res := s.scores.TryInsert(word, score)
	if !res.Accepted {
		log.Debug().Str("word", word).Msg("word already played")
		return 0
	}
	return score
}

func (s *Session) Pool() *lexicon.LetterPool {
	return s.pool
}

func (s *Session) Scores() *highscore.Table {
	return s.scores
}

// ToDisplayText renders the pool and the score table for the shell.
func (s *Session) ToDisplayText() string {
	var ss strings.Builder
	fmt.Fprintf(&ss, "Your letters: %v\n", s.pool)
	fmt.Fprintf(&ss, "Lexicon: %v (%d words)\n\n", s.dict.Name(), s.dict.Size())
	ss.WriteString(s.scores.ToDisplayText())
	return ss.String()
}
