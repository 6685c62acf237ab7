package lexicon

import (
	"strings"

	"lukechampine.com/frand"
)

// A LetterPool is the grab bag o'letters! It is the fixed multiset of
// lowercase letters available for forming words during one game, set up
// at game start and immutable afterwards.
type LetterPool struct {
	letters string
}

// PoolFromString makes a pool directly from the given letters.
func PoolFromString(letters string) *LetterPool {
	return &LetterPool{letters: letters}
}

// RandomPool draws exactly n lowercase letters, uniformly and with
// repeats allowed.
func RandomPool(n int) *LetterPool {
	letters := make([]byte, n)
	for i := range letters {
		letters[i] = byte('a' + frand.Intn(26))
	}
	return &LetterPool{letters: string(letters)}
}

// Contains reports whether the letter appears in the pool at all,
// without regard to multiplicity.
func (p *LetterPool) Contains(letter rune) bool {
	return strings.ContainsRune(p.letters, letter)
}

// Count returns how many times the letter occurs in the pool.
func (p *LetterPool) Count(letter rune) int {
	return strings.Count(p.letters, string(letter))
}

func (p *LetterPool) Len() int {
	return len(p.letters)
}

func (p *LetterPool) String() string {
	return p.letters
}
